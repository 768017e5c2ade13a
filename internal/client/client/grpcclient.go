package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/lovesurprise/internal/client/models"
	"github.com/dmitrijs2005/lovesurprise/internal/common"
	pb "github.com/dmitrijs2005/lovesurprise/internal/proto"
)

type healthChecker interface {
	Check(ctx context.Context, in *healthpb.HealthCheckRequest, opts ...grpc.CallOption) (*healthpb.HealthCheckResponse, error)
}

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      pb.LoveSurpriseServiceClient
	health      healthChecker

	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	if token != "" {
		md.Set(common.AccessTokenHeaderName, token)
	}

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) tokens() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken, s.refreshToken
}

func (s *GRPCClient) setTokens(access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken, s.refreshToken = access, refresh
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	access, refresh := s.tokens()

	err := invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.Unauthenticated || st.Message() != common.ErrTokenExpired.Error() {
		return err
	}
	if refresh == "" || method == pb.LoveSurpriseService_RefreshToken_FullMethodName {
		return err
	}

	resp, rerr := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refresh})
	if rerr != nil {
		return rerr
	}
	s.setTokens(resp.AccessToken, resp.RefreshToken)

	return invoker(withAccessToken(ctx, resp.AccessToken), method, req, reply, cc, opts...)
}

// NewGRPCClient dials endpointURL lazily. timeout bounds each call; zero
// means no per-call deadline.
func NewGRPCClient(endpointURL string, timeout time.Duration) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}
	if err := c.init(grpc.WithTransportCredentials(insecure.NewCredentials())); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) init(opts ...grpc.DialOption) error {
	opts = append(opts, grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewLoveSurpriseServiceClient(conn)
	s.health = healthpb.NewHealthClient(conn)
	return nil
}

func (s *GRPCClient) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.health.Check(ctx, &healthpb.HealthCheckRequest{Service: pb.ServiceName})
	if err != nil {
		return s.mapError(err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) Register(ctx context.Context, name, email, password string) error {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.RegisterUser(ctx, &pb.RegisterUserRequest{Name: name, Email: email, Password: password})
	if err != nil {
		return s.mapError(err)
	}
	s.setTokens(resp.AccessToken, resp.RefreshToken)
	return nil
}

func (s *GRPCClient) Login(ctx context.Context, email, password string) error {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.Login(ctx, &pb.LoginRequest{Email: email, Password: password})
	if err != nil {
		return s.mapError(err)
	}
	s.setTokens(resp.AccessToken, resp.RefreshToken)
	return nil
}

// Logout revokes the refresh token on the server and forgets both tokens
// locally, even when the server call fails.
func (s *GRPCClient) Logout(ctx context.Context) error {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	_, refresh := s.tokens()
	defer s.setTokens("", "")

	if refresh == "" {
		return nil
	}
	if _, err := s.client.Logout(ctx, &pb.LogoutRequest{RefreshToken: refresh}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) Session(ctx context.Context) (*models.Session, error) {
	if access, _ := s.tokens(); access == "" {
		return nil, ErrUnauthorized
	}

	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.GetSession(ctx, &pb.GetSessionRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &models.Session{UserID: resp.UserID, Name: resp.Name, Email: resp.Email}, nil
}

func (s *GRPCClient) UpdateProfile(ctx context.Context, currentPassword, newName, newPassword string) (*models.Session, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.UpdateProfile(ctx, &pb.UpdateProfileRequest{
		CurrentPassword: currentPassword,
		NewName:         newName,
		NewPassword:     newPassword,
	})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &models.Session{UserID: resp.UserID, Name: resp.Name, Email: resp.Email}, nil
}

func (s *GRPCClient) CreateSurprise(ctx context.Context, req models.NewSurprise) (*models.CreatedSurprise, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	photos := make([]pb.PhotoDescriptor, len(req.Photos))
	for i, p := range req.Photos {
		photos[i] = pb.PhotoDescriptor{Name: p.Name, ContentType: p.ContentType, Size: p.Size}
	}

	resp, err := s.client.CreateSurprise(ctx, &pb.CreateSurpriseRequest{
		CoupleName:  req.CoupleName,
		StartDate:   req.StartDate,
		Message:     req.Message,
		YoutubeLink: req.YoutubeLink,
		PlanID:      req.PlanID,
		Photos:      photos,
	})
	if err != nil {
		return nil, s.mapError(err)
	}

	out := &models.CreatedSurprise{ID: resp.ID, Uploads: make([]models.UploadTask, len(resp.Uploads))}
	for i, u := range resp.Uploads {
		out.Uploads[i] = models.UploadTask{PhotoID: u.PhotoID, OrderIndex: u.OrderIndex, URL: u.URL}
	}
	return out, nil
}

func (s *GRPCClient) MarkUploaded(ctx context.Context, surpriseID string, photoIDs []string) error {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	_, err := s.client.MarkUploaded(ctx, &pb.MarkUploadedRequest{SurpriseID: surpriseID, PhotoIDs: photoIDs})
	return s.mapError(err)
}

func (s *GRPCClient) GetSurprise(ctx context.Context, id string) (*models.Surprise, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.GetSurprise(ctx, &pb.GetSurpriseRequest{ID: id})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromProto(resp.Surprise)
}

func (s *GRPCClient) ListSurprises(ctx context.Context) ([]*models.Surprise, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.ListSurprises(ctx, &pb.ListSurprisesRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	out := make([]*models.Surprise, 0, len(resp.Surprises))
	for _, p := range resp.Surprises {
		m, err := fromProto(p)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func (s *GRPCClient) UpdateSurpriseStatus(ctx context.Context, id string, status string) error {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	_, err := s.client.UpdateSurpriseStatus(ctx, &pb.UpdateSurpriseStatusRequest{ID: id, Status: status})
	return s.mapError(err)
}

func (s *GRPCClient) ViewSurprise(ctx context.Context, id string) (*models.Surprise, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.ViewSurprise(ctx, &pb.ViewSurpriseRequest{ID: id})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromProto(resp.Surprise)
}

func fromProto(p *pb.Surprise) (*models.Surprise, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: empty surprise in response", ErrNotFound)
	}
	return &models.Surprise{
		ID:          p.ID,
		CoupleName:  p.CoupleName,
		StartDate:   p.StartDate,
		Message:     p.Message,
		YoutubeLink: p.YoutubeLink,
		PlanID:      p.PlanID,
		Status:      p.Status,
		PhotoURLs:   p.PhotoURLs,
		CreatedAt:   p.CreatedAt,
	}, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated:
		return ErrUnauthorized
	case codes.PermissionDenied:
		return ErrForbidden
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		return ErrNotFound
	case codes.AlreadyExists:
		return ErrAlreadyExists
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidArgument, st.Message())
	case codes.FailedPrecondition:
		return fmt.Errorf("%w: %s", ErrRejected, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
