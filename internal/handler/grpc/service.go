package grpc

import (
	"context"

	"github.com/MKhiriev/music-auth/models"
	"google.golang.org/grpc"
)

const ServiceName = "musicauth.AuthService"

// AuthServiceServer is the server side of musicauth.AuthService.
type AuthServiceServer interface {
	Signup(ctx context.Context, req *models.SignupRequest) (*models.SignupResponse, error)
	Signin(ctx context.Context, req *models.SigninRequest) (*models.AccessTokenResponse, error)
	FederatedRegister(ctx context.Context, req *models.FederatedRegisterRequest) (*models.FederatedRegisterResponse, error)
}

// RegisterAuthServiceServer registers srv on s.
func RegisterAuthServiceServer(s grpc.ServiceRegistrar, srv AuthServiceServer) {
	s.RegisterService(&authServiceDesc, srv)
}

var authServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AuthServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Signup", Handler: signupHandler},
		{MethodName: "Signin", Handler: signinHandler},
		{MethodName: "FederatedRegister", Handler: federatedRegisterHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "musicauth/auth.json",
}

func signupHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(models.SignupRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AuthServiceServer).Signup(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/Signup"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AuthServiceServer).Signup(ctx, req.(*models.SignupRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func signinHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(models.SigninRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AuthServiceServer).Signin(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/Signin"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AuthServiceServer).Signin(ctx, req.(*models.SigninRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func federatedRegisterHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(models.FederatedRegisterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AuthServiceServer).FederatedRegister(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/FederatedRegister"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AuthServiceServer).FederatedRegister(ctx, req.(*models.FederatedRegisterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// AuthServiceClient is the client side of musicauth.AuthService. Calls are
// sent with the JSON codec.
type AuthServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAuthServiceClient(cc grpc.ClientConnInterface) *AuthServiceClient {
	return &AuthServiceClient{cc: cc}
}

func (c *AuthServiceClient) Signup(ctx context.Context, in *models.SignupRequest, opts ...grpc.CallOption) (*models.SignupResponse, error) {
	out := new(models.SignupResponse)
	if err := c.invoke(ctx, "Signup", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *AuthServiceClient) Signin(ctx context.Context, in *models.SigninRequest, opts ...grpc.CallOption) (*models.AccessTokenResponse, error) {
	out := new(models.AccessTokenResponse)
	if err := c.invoke(ctx, "Signin", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *AuthServiceClient) FederatedRegister(ctx context.Context, in *models.FederatedRegisterRequest, opts ...grpc.CallOption) (*models.FederatedRegisterResponse, error) {
	out := new(models.FederatedRegisterResponse)
	if err := c.invoke(ctx, "FederatedRegister", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *AuthServiceClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...)
}
