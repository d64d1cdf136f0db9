package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/music-auth/internal/metrics"
	"github.com/MKhiriev/music-auth/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockAuthService struct {
	signupFn func(ctx context.Context, req models.SignupRequest) (models.SignupResponse, error)
	signinFn func(ctx context.Context, req models.SigninRequest) (models.AccessTokenResponse, error)
	fedFn    func(ctx context.Context, token string) (models.FederatedRegisterResponse, error)
}

func (m *mockAuthService) Signup(ctx context.Context, req models.SignupRequest) (models.SignupResponse, error) {
	return m.signupFn(ctx, req)
}
func (m *mockAuthService) Signin(ctx context.Context, req models.SigninRequest) (models.AccessTokenResponse, error) {
	return m.signinFn(ctx, req)
}
func (m *mockAuthService) FederatedRegister(ctx context.Context, token string) (models.FederatedRegisterResponse, error) {
	return m.fedFn(ctx, token)
}
func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return models.Token{UserID: "u"}, nil
}
func (m *mockAuthService) CurrentUser(ctx context.Context, userID string) (models.User, error) {
	return models.User{ID: userID}, nil
}

func TestAuthMetricsService(t *testing.T) {
	m := metrics.NewMetrics(prometheus.NewRegistry())
	inner := &mockAuthService{
		signupFn: func(context.Context, models.SignupRequest) (models.SignupResponse, error) {
			return models.SignupResponse{}, ErrDuplicateAccount
		},
		signinFn: func(context.Context, models.SigninRequest) (models.AccessTokenResponse, error) {
			return models.AccessTokenResponse{AccessToken: "t"}, nil
		},
		fedFn: func(context.Context, string) (models.FederatedRegisterResponse, error) {
			return models.FederatedRegisterResponse{}, errors.New("db down")
		},
	}
	svc := NewAuthMetricsService(m).Wrap(inner)
	ctx := context.Background()

	_, err := svc.Signup(ctx, models.SignupRequest{})
	assert.ErrorIs(t, err, ErrDuplicateAccount)

	resp, err := svc.Signin(ctx, models.SigninRequest{})
	require.NoError(t, err)
	assert.Equal(t, "t", resp.AccessToken)

	_, err = svc.FederatedRegister(ctx, "x")
	assert.Error(t, err)

	user, err := svc.CurrentUser(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", user.ID)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.AuthOperationsTotal.WithLabelValues(OperationSignup, metrics.OutcomeFailure, "duplicate_account")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AuthOperationsTotal.WithLabelValues(OperationSignin, metrics.OutcomeSuccess, "none")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AuthOperationsTotal.WithLabelValues(OperationFederatedRegister, metrics.OutcomeFailure, "internal")))
}

func TestFailureReason(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{err: nil, want: ""},
		{err: ErrInvalidCredentials, want: "invalid_credentials"},
		{err: ErrMissingCredential, want: "missing_credential"},
		{err: ErrExternalIdentity, want: "external_identity"},
		{err: ErrInvalidDataProvided, want: "invalid_data"},
		{err: context.DeadlineExceeded, want: "canceled"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, failureReason(tt.err))
	}
}
