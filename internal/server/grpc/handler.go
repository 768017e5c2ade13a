package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/lovesurprise/internal/common"
	pb "github.com/dmitrijs2005/lovesurprise/internal/proto"
	"github.com/dmitrijs2005/lovesurprise/internal/server/models"
	"github.com/dmitrijs2005/lovesurprise/internal/server/services"
	"github.com/dmitrijs2005/lovesurprise/internal/surprise"
)

// toStatus maps service errors onto gRPC codes. Unknown errors are logged
// and hidden behind codes.Internal.
func (s *GRPCServer) toStatus(ctx context.Context, op string, err error) error {
	var code codes.Code
	switch {
	case errors.Is(err, common.ErrorNotFound):
		code = codes.NotFound
	case errors.Is(err, common.ErrorAlreadyExists):
		code = codes.AlreadyExists
	case errors.Is(err, common.ErrorValidation),
		errors.Is(err, surprise.ErrInvalidDraft),
		errors.Is(err, surprise.ErrUnknownPlan),
		errors.Is(err, surprise.ErrUnknownStatus):
		code = codes.InvalidArgument
	case errors.Is(err, common.ErrInvalidStatus),
		errors.Is(err, surprise.ErrExpired):
		code = codes.FailedPrecondition
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrRefreshTokenExpired):
		code = codes.Unauthenticated
	case errors.Is(err, common.ErrorForbidden):
		code = codes.PermissionDenied
	default:
		s.logger.Error(ctx, op+" failed", "error", err)
		return status.Error(codes.Internal, "internal error")
	}
	return status.Error(code, err.Error())
}

func (s *GRPCServer) RegisterUser(ctx context.Context, req *pb.RegisterUserRequest) (*pb.RegisterUserResponse, error) {
	user, tokens, err := s.users.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, "register", err)
	}

	s.logger.Info(ctx, "Registered", "user_id", user.ID)
	return &pb.RegisterUserResponse{UserID: user.ID, AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	user, tokens, err := s.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, "login", err)
	}
	return &pb.LoginResponse{UserID: user.ID, AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {
	tokens, err := s.users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, status.Error(codes.Unauthenticated, common.ErrInvalidToken.Error())
		}
		return nil, s.toStatus(ctx, "refresh token", err)
	}
	return &pb.RefreshTokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) Logout(ctx context.Context, req *pb.LogoutRequest) (*pb.LogoutResponse, error) {
	if err := s.users.Logout(ctx, req.RefreshToken); err != nil {
		return nil, s.toStatus(ctx, "logout", err)
	}
	return &pb.LogoutResponse{}, nil
}

func (s *GRPCServer) GetSession(ctx context.Context, _ *pb.GetSessionRequest) (*pb.GetSessionResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	user, err := s.users.Session(ctx, userID)
	if err != nil {
		// a valid token for a deleted account
		if errors.Is(err, common.ErrorNotFound) {
			return nil, status.Error(codes.Unauthenticated, common.ErrInvalidToken.Error())
		}
		return nil, s.toStatus(ctx, "session", err)
	}
	return &pb.GetSessionResponse{UserID: user.ID, Name: user.Name, Email: user.Email}, nil
}

func (s *GRPCServer) UpdateProfile(ctx context.Context, req *pb.UpdateProfileRequest) (*pb.UpdateProfileResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	user, err := s.users.UpdateProfile(ctx, userID, req.CurrentPassword, req.NewName, req.NewPassword)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, status.Error(codes.Unauthenticated, common.ErrInvalidToken.Error())
		}
		return nil, s.toStatus(ctx, "update profile", err)
	}

	s.logger.Info(ctx, "Profile updated", "user_id", user.ID, "password_changed", req.NewPassword != "")
	return &pb.UpdateProfileResponse{UserID: user.ID, Name: user.Name, Email: user.Email}, nil
}

func (s *GRPCServer) CreateSurprise(ctx context.Context, req *pb.CreateSurpriseRequest) (*pb.CreateSurpriseResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	in := services.CreateSurpriseInput{Content: surprise.Content{
		CoupleName:  req.CoupleName,
		StartDate:   req.StartDate,
		Message:     req.Message,
		YoutubeLink: req.YoutubeLink,
		PlanID:      req.PlanID,
	}}
	for _, p := range req.Photos {
		in.Photos = append(in.Photos, services.PhotoInput{Name: p.Name, ContentType: p.ContentType, Size: p.Size})
	}

	sp, tasks, err := s.surprises.Create(ctx, userID, in)
	if err != nil {
		return nil, s.toStatus(ctx, "create surprise", err)
	}

	resp := &pb.CreateSurpriseResponse{ID: sp.ID, Uploads: make([]pb.UploadTarget, 0, len(tasks))}
	for _, t := range tasks {
		resp.Uploads = append(resp.Uploads, pb.UploadTarget{PhotoID: t.PhotoID, OrderIndex: t.OrderIndex, URL: t.URL})
	}
	return resp, nil
}

func (s *GRPCServer) MarkUploaded(ctx context.Context, req *pb.MarkUploadedRequest) (*pb.MarkUploadedResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.surprises.MarkUploaded(ctx, userID, req.SurpriseID, req.PhotoIDs); err != nil {
		return nil, s.toStatus(ctx, "mark uploaded", err)
	}
	return &pb.MarkUploadedResponse{}, nil
}

func (s *GRPCServer) GetSurprise(ctx context.Context, req *pb.GetSurpriseRequest) (*pb.GetSurpriseResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	d, err := s.surprises.Get(ctx, userID, req.ID)
	if err != nil {
		return nil, s.toStatus(ctx, "get surprise", err)
	}
	return &pb.GetSurpriseResponse{Surprise: toPBSurprise(d.Surprise, d.PhotoURLs)}, nil
}

func (s *GRPCServer) ListSurprises(ctx context.Context, _ *pb.ListSurprisesRequest) (*pb.ListSurprisesResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.surprises.List(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, "list surprises", err)
	}
	resp := &pb.ListSurprisesResponse{Surprises: make([]*pb.Surprise, 0, len(items))}
	for _, sp := range items {
		resp.Surprises = append(resp.Surprises, toPBSurprise(sp, nil))
	}
	return resp, nil
}

func (s *GRPCServer) UpdateSurpriseStatus(ctx context.Context, req *pb.UpdateSurpriseStatusRequest) (*pb.UpdateSurpriseStatusResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.surprises.UpdateStatus(ctx, userID, req.ID, req.Status); err != nil {
		return nil, s.toStatus(ctx, "update status", err)
	}
	return &pb.UpdateSurpriseStatusResponse{}, nil
}

func (s *GRPCServer) ViewSurprise(ctx context.Context, req *pb.ViewSurpriseRequest) (*pb.ViewSurpriseResponse, error) {
	d, err := s.surprises.View(ctx, req.ID)
	if err != nil {
		return nil, s.toStatus(ctx, "view surprise", err)
	}
	return &pb.ViewSurpriseResponse{Surprise: toPBSurprise(d.Surprise, d.PhotoURLs)}, nil
}

func toPBSurprise(sp *models.Surprise, urls []string) *pb.Surprise {
	return &pb.Surprise{
		ID:          sp.ID,
		CoupleName:  sp.CoupleName,
		StartDate:   sp.StartDate,
		Message:     sp.Message,
		YoutubeLink: sp.YoutubeLink,
		PlanID:      sp.PlanID,
		Status:      sp.Status,
		PhotoURLs:   urls,
		CreatedAt:   sp.CreatedAt,
	}
}
