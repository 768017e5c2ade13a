package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dmitrijs2005/lovesurprise/internal/logging"
	pb "github.com/dmitrijs2005/lovesurprise/internal/proto"
	"github.com/dmitrijs2005/lovesurprise/internal/server/models"
	"github.com/dmitrijs2005/lovesurprise/internal/server/services"
)

type userService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, *services.TokenPair, error)
	Login(ctx context.Context, email, password string) (*models.User, *services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	Session(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID, currentPassword, newName, newPassword string) (*models.User, error)
}

type surpriseService interface {
	Create(ctx context.Context, userID string, in services.CreateSurpriseInput) (*models.Surprise, []*models.PhotoUploadTask, error)
	MarkUploaded(ctx context.Context, userID, id string, photoIDs []string) error
	Get(ctx context.Context, userID, id string) (*services.SurpriseDetails, error)
	List(ctx context.Context, userID string) ([]*models.Surprise, error)
	UpdateStatus(ctx context.Context, userID, id, status string) error
	View(ctx context.Context, id string) (*services.SurpriseDetails, error)
}

type GRPCServer struct {
	pb.UnimplementedLoveSurpriseServiceServer
	address   string
	users     userService
	surprises surpriseService
	logger    logging.Logger
	jwtSecret []byte
	health    *health.Server
}

func NewGRPCServer(a string, l logging.Logger, us userService, ss surpriseService, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		surprises: ss,
		jwtSecret: []byte(secretKey),
		health:    health.NewServer(),
	}
}

// newServer builds a gRPC server with the service, the health service and
// the access token interceptor registered.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))
	pb.RegisterLoveSurpriseServiceServer(srv, s)
	healthpb.RegisterHealthServer(srv, s.health)
	s.health.SetServingStatus(pb.ServiceName, healthpb.HealthCheckResponse_SERVING)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.serve(ctx, listen)
}

func (s *GRPCServer) serve(ctx context.Context, listen net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		s.health.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil {
		return err
	}
	return nil
}
