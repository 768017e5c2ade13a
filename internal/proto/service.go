package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "lovesurprise.v1.LoveSurpriseService"

const (
	LoveSurpriseService_RegisterUser_FullMethodName         = "/" + ServiceName + "/RegisterUser"
	LoveSurpriseService_Login_FullMethodName                = "/" + ServiceName + "/Login"
	LoveSurpriseService_RefreshToken_FullMethodName         = "/" + ServiceName + "/RefreshToken"
	LoveSurpriseService_Logout_FullMethodName               = "/" + ServiceName + "/Logout"
	LoveSurpriseService_GetSession_FullMethodName           = "/" + ServiceName + "/GetSession"
	LoveSurpriseService_UpdateProfile_FullMethodName        = "/" + ServiceName + "/UpdateProfile"
	LoveSurpriseService_CreateSurprise_FullMethodName       = "/" + ServiceName + "/CreateSurprise"
	LoveSurpriseService_MarkUploaded_FullMethodName         = "/" + ServiceName + "/MarkUploaded"
	LoveSurpriseService_GetSurprise_FullMethodName          = "/" + ServiceName + "/GetSurprise"
	LoveSurpriseService_ListSurprises_FullMethodName        = "/" + ServiceName + "/ListSurprises"
	LoveSurpriseService_UpdateSurpriseStatus_FullMethodName = "/" + ServiceName + "/UpdateSurpriseStatus"
	LoveSurpriseService_ViewSurprise_FullMethodName         = "/" + ServiceName + "/ViewSurprise"
)

// LoveSurpriseServiceClient is the client API for LoveSurpriseService.
type LoveSurpriseServiceClient interface {
	RegisterUser(ctx context.Context, in *RegisterUserRequest, opts ...grpc.CallOption) (*RegisterUserResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
	RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*RefreshTokenResponse, error)
	Logout(ctx context.Context, in *LogoutRequest, opts ...grpc.CallOption) (*LogoutResponse, error)
	GetSession(ctx context.Context, in *GetSessionRequest, opts ...grpc.CallOption) (*GetSessionResponse, error)
	UpdateProfile(ctx context.Context, in *UpdateProfileRequest, opts ...grpc.CallOption) (*UpdateProfileResponse, error)
	CreateSurprise(ctx context.Context, in *CreateSurpriseRequest, opts ...grpc.CallOption) (*CreateSurpriseResponse, error)
	MarkUploaded(ctx context.Context, in *MarkUploadedRequest, opts ...grpc.CallOption) (*MarkUploadedResponse, error)
	GetSurprise(ctx context.Context, in *GetSurpriseRequest, opts ...grpc.CallOption) (*GetSurpriseResponse, error)
	ListSurprises(ctx context.Context, in *ListSurprisesRequest, opts ...grpc.CallOption) (*ListSurprisesResponse, error)
	UpdateSurpriseStatus(ctx context.Context, in *UpdateSurpriseStatusRequest, opts ...grpc.CallOption) (*UpdateSurpriseStatusResponse, error)
	ViewSurprise(ctx context.Context, in *ViewSurpriseRequest, opts ...grpc.CallOption) (*ViewSurpriseResponse, error)
}

type loveSurpriseServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewLoveSurpriseServiceClient(cc grpc.ClientConnInterface) LoveSurpriseServiceClient {
	return &loveSurpriseServiceClient{cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *loveSurpriseServiceClient) RegisterUser(ctx context.Context, in *RegisterUserRequest, opts ...grpc.CallOption) (*RegisterUserResponse, error) {
	return invoke[RegisterUserResponse](ctx, c.cc, LoveSurpriseService_RegisterUser_FullMethodName, in, opts)
}

func (c *loveSurpriseServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginResponse](ctx, c.cc, LoveSurpriseService_Login_FullMethodName, in, opts)
}

func (c *loveSurpriseServiceClient) RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*RefreshTokenResponse, error) {
	return invoke[RefreshTokenResponse](ctx, c.cc, LoveSurpriseService_RefreshToken_FullMethodName, in, opts)
}

func (c *loveSurpriseServiceClient) Logout(ctx context.Context, in *LogoutRequest, opts ...grpc.CallOption) (*LogoutResponse, error) {
	return invoke[LogoutResponse](ctx, c.cc, LoveSurpriseService_Logout_FullMethodName, in, opts)
}

func (c *loveSurpriseServiceClient) GetSession(ctx context.Context, in *GetSessionRequest, opts ...grpc.CallOption) (*GetSessionResponse, error) {
	return invoke[GetSessionResponse](ctx, c.cc, LoveSurpriseService_GetSession_FullMethodName, in, opts)
}

func (c *loveSurpriseServiceClient) UpdateProfile(ctx context.Context, in *UpdateProfileRequest, opts ...grpc.CallOption) (*UpdateProfileResponse, error) {
	return invoke[UpdateProfileResponse](ctx, c.cc, LoveSurpriseService_UpdateProfile_FullMethodName, in, opts)
}

func (c *loveSurpriseServiceClient) CreateSurprise(ctx context.Context, in *CreateSurpriseRequest, opts ...grpc.CallOption) (*CreateSurpriseResponse, error) {
	return invoke[CreateSurpriseResponse](ctx, c.cc, LoveSurpriseService_CreateSurprise_FullMethodName, in, opts)
}

func (c *loveSurpriseServiceClient) MarkUploaded(ctx context.Context, in *MarkUploadedRequest, opts ...grpc.CallOption) (*MarkUploadedResponse, error) {
	return invoke[MarkUploadedResponse](ctx, c.cc, LoveSurpriseService_MarkUploaded_FullMethodName, in, opts)
}

func (c *loveSurpriseServiceClient) GetSurprise(ctx context.Context, in *GetSurpriseRequest, opts ...grpc.CallOption) (*GetSurpriseResponse, error) {
	return invoke[GetSurpriseResponse](ctx, c.cc, LoveSurpriseService_GetSurprise_FullMethodName, in, opts)
}

func (c *loveSurpriseServiceClient) ListSurprises(ctx context.Context, in *ListSurprisesRequest, opts ...grpc.CallOption) (*ListSurprisesResponse, error) {
	return invoke[ListSurprisesResponse](ctx, c.cc, LoveSurpriseService_ListSurprises_FullMethodName, in, opts)
}

func (c *loveSurpriseServiceClient) UpdateSurpriseStatus(ctx context.Context, in *UpdateSurpriseStatusRequest, opts ...grpc.CallOption) (*UpdateSurpriseStatusResponse, error) {
	return invoke[UpdateSurpriseStatusResponse](ctx, c.cc, LoveSurpriseService_UpdateSurpriseStatus_FullMethodName, in, opts)
}

func (c *loveSurpriseServiceClient) ViewSurprise(ctx context.Context, in *ViewSurpriseRequest, opts ...grpc.CallOption) (*ViewSurpriseResponse, error) {
	return invoke[ViewSurpriseResponse](ctx, c.cc, LoveSurpriseService_ViewSurprise_FullMethodName, in, opts)
}

// LoveSurpriseServiceServer is the server API for LoveSurpriseService.
// Implementations should embed UnimplementedLoveSurpriseServiceServer.
type LoveSurpriseServiceServer interface {
	RegisterUser(context.Context, *RegisterUserRequest) (*RegisterUserResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	RefreshToken(context.Context, *RefreshTokenRequest) (*RefreshTokenResponse, error)
	Logout(context.Context, *LogoutRequest) (*LogoutResponse, error)
	GetSession(context.Context, *GetSessionRequest) (*GetSessionResponse, error)
	UpdateProfile(context.Context, *UpdateProfileRequest) (*UpdateProfileResponse, error)
	CreateSurprise(context.Context, *CreateSurpriseRequest) (*CreateSurpriseResponse, error)
	MarkUploaded(context.Context, *MarkUploadedRequest) (*MarkUploadedResponse, error)
	GetSurprise(context.Context, *GetSurpriseRequest) (*GetSurpriseResponse, error)
	ListSurprises(context.Context, *ListSurprisesRequest) (*ListSurprisesResponse, error)
	UpdateSurpriseStatus(context.Context, *UpdateSurpriseStatusRequest) (*UpdateSurpriseStatusResponse, error)
	ViewSurprise(context.Context, *ViewSurpriseRequest) (*ViewSurpriseResponse, error)
	mustEmbedUnimplementedLoveSurpriseServiceServer()
}

type UnimplementedLoveSurpriseServiceServer struct{}

func (UnimplementedLoveSurpriseServiceServer) RegisterUser(context.Context, *RegisterUserRequest) (*RegisterUserResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RegisterUser not implemented")
}
func (UnimplementedLoveSurpriseServiceServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}
func (UnimplementedLoveSurpriseServiceServer) RefreshToken(context.Context, *RefreshTokenRequest) (*RefreshTokenResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RefreshToken not implemented")
}
func (UnimplementedLoveSurpriseServiceServer) Logout(context.Context, *LogoutRequest) (*LogoutResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Logout not implemented")
}
func (UnimplementedLoveSurpriseServiceServer) GetSession(context.Context, *GetSessionRequest) (*GetSessionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetSession not implemented")
}
func (UnimplementedLoveSurpriseServiceServer) UpdateProfile(context.Context, *UpdateProfileRequest) (*UpdateProfileResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateProfile not implemented")
}
func (UnimplementedLoveSurpriseServiceServer) CreateSurprise(context.Context, *CreateSurpriseRequest) (*CreateSurpriseResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateSurprise not implemented")
}
func (UnimplementedLoveSurpriseServiceServer) MarkUploaded(context.Context, *MarkUploadedRequest) (*MarkUploadedResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method MarkUploaded not implemented")
}
func (UnimplementedLoveSurpriseServiceServer) GetSurprise(context.Context, *GetSurpriseRequest) (*GetSurpriseResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetSurprise not implemented")
}
func (UnimplementedLoveSurpriseServiceServer) ListSurprises(context.Context, *ListSurprisesRequest) (*ListSurprisesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListSurprises not implemented")
}
func (UnimplementedLoveSurpriseServiceServer) UpdateSurpriseStatus(context.Context, *UpdateSurpriseStatusRequest) (*UpdateSurpriseStatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateSurpriseStatus not implemented")
}
func (UnimplementedLoveSurpriseServiceServer) ViewSurprise(context.Context, *ViewSurpriseRequest) (*ViewSurpriseResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ViewSurprise not implemented")
}
func (UnimplementedLoveSurpriseServiceServer) mustEmbedUnimplementedLoveSurpriseServiceServer() {}

func RegisterLoveSurpriseServiceServer(s grpc.ServiceRegistrar, srv LoveSurpriseServiceServer) {
	s.RegisterService(&LoveSurpriseService_ServiceDesc, srv)
}

func unaryHandler[Req any, Resp any](fullMethod string, call func(LoveSurpriseServiceServer, context.Context, *Req) (*Resp, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		s := srv.(LoveSurpriseServiceServer)
		if interceptor == nil {
			return call(s, ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(s, ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var LoveSurpriseService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*LoveSurpriseServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "RegisterUser", Handler: unaryHandler(LoveSurpriseService_RegisterUser_FullMethodName, LoveSurpriseServiceServer.RegisterUser)},
		{MethodName: "Login", Handler: unaryHandler(LoveSurpriseService_Login_FullMethodName, LoveSurpriseServiceServer.Login)},
		{MethodName: "RefreshToken", Handler: unaryHandler(LoveSurpriseService_RefreshToken_FullMethodName, LoveSurpriseServiceServer.RefreshToken)},
		{MethodName: "Logout", Handler: unaryHandler(LoveSurpriseService_Logout_FullMethodName, LoveSurpriseServiceServer.Logout)},
		{MethodName: "GetSession", Handler: unaryHandler(LoveSurpriseService_GetSession_FullMethodName, LoveSurpriseServiceServer.GetSession)},
		{MethodName: "UpdateProfile", Handler: unaryHandler(LoveSurpriseService_UpdateProfile_FullMethodName, LoveSurpriseServiceServer.UpdateProfile)},
		{MethodName: "CreateSurprise", Handler: unaryHandler(LoveSurpriseService_CreateSurprise_FullMethodName, LoveSurpriseServiceServer.CreateSurprise)},
		{MethodName: "MarkUploaded", Handler: unaryHandler(LoveSurpriseService_MarkUploaded_FullMethodName, LoveSurpriseServiceServer.MarkUploaded)},
		{MethodName: "GetSurprise", Handler: unaryHandler(LoveSurpriseService_GetSurprise_FullMethodName, LoveSurpriseServiceServer.GetSurprise)},
		{MethodName: "ListSurprises", Handler: unaryHandler(LoveSurpriseService_ListSurprises_FullMethodName, LoveSurpriseServiceServer.ListSurprises)},
		{MethodName: "UpdateSurpriseStatus", Handler: unaryHandler(LoveSurpriseService_UpdateSurpriseStatus_FullMethodName, LoveSurpriseServiceServer.UpdateSurpriseStatus)},
		{MethodName: "ViewSurprise", Handler: unaryHandler(LoveSurpriseService_ViewSurprise_FullMethodName, LoveSurpriseServiceServer.ViewSurprise)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "lovesurprise/v1/lovesurprise.proto",
}
