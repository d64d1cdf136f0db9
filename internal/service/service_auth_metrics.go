package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/music-auth/internal/metrics"
	"github.com/MKhiriev/music-auth/models"
)

// Operation label values of auth metrics.
const (
	OperationSignup            = "signup"
	OperationSignin            = "signin"
	OperationFederatedRegister = "federated_register"
)

// AuthMetricsService records the outcome and latency of every Signup, Signin
// and FederatedRegister call of the wrapped AuthService.
type AuthMetricsService struct {
	inner   AuthService
	metrics *metrics.Metrics
}

func NewAuthMetricsService(m *metrics.Metrics) AuthServiceWrapper {
	return &AuthMetricsService{metrics: m}
}

func (s *AuthMetricsService) Wrap(inner AuthService) AuthService {
	s.inner = inner
	return s
}

func (s *AuthMetricsService) Signup(ctx context.Context, req models.SignupRequest) (models.SignupResponse, error) {
	start := time.Now()
	resp, err := s.inner.Signup(ctx, req)
	s.observe(OperationSignup, start, err)
	return resp, err
}

func (s *AuthMetricsService) Signin(ctx context.Context, req models.SigninRequest) (models.AccessTokenResponse, error) {
	start := time.Now()
	resp, err := s.inner.Signin(ctx, req)
	s.observe(OperationSignin, start, err)
	return resp, err
}

func (s *AuthMetricsService) FederatedRegister(ctx context.Context, externalToken string) (models.FederatedRegisterResponse, error) {
	start := time.Now()
	resp, err := s.inner.FederatedRegister(ctx, externalToken)
	s.observe(OperationFederatedRegister, start, err)
	return resp, err
}

func (s *AuthMetricsService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return s.inner.ParseToken(ctx, tokenString)
}

func (s *AuthMetricsService) CurrentUser(ctx context.Context, userID string) (models.User, error) {
	return s.inner.CurrentUser(ctx, userID)
}

func (s *AuthMetricsService) observe(operation string, start time.Time, err error) {
	outcome := metrics.OutcomeSuccess
	if err != nil {
		outcome = metrics.OutcomeFailure
	}
	s.metrics.ObserveAuth(operation, outcome, failureReason(err), time.Since(start).Seconds())
}

// failureReason maps err to a bounded label value.
func failureReason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrDuplicateAccount):
		return "duplicate_account"
	case errors.Is(err, ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, ErrMissingCredential):
		return "missing_credential"
	case errors.Is(err, ErrExternalIdentity):
		return "external_identity"
	case errors.Is(err, ErrInvalidDataProvided):
		return "invalid_data"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "internal"
	}
}
