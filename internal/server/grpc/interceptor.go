package grpc

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/lovesurprise/internal/common"
	pb "github.com/dmitrijs2005/lovesurprise/internal/proto"
	"github.com/dmitrijs2005/lovesurprise/internal/server/auth"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// publicMethods are served without an access token.
var publicMethods = map[string]bool{
	pb.LoveSurpriseService_RegisterUser_FullMethodName: true,
	pb.LoveSurpriseService_Login_FullMethodName:        true,
	pb.LoveSurpriseService_RefreshToken_FullMethodName: true,
	pb.LoveSurpriseService_ViewSurprise_FullMethodName: true,
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	if publicMethods[info.FullMethod] || !isServiceMethod(info.FullMethod) {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	userID, err := auth.GetUserIDFromToken(accessToken, s.jwtSecret)
	if err != nil {
		// the client refreshes only on this exact message
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
		}
		return nil, status.Error(codes.Unauthenticated, common.ErrInvalidToken.Error())
	}

	ctx = context.WithValue(ctx, userIDKey, userID)
	return handler(ctx, req)
}

// isServiceMethod reports whether m belongs to LoveSurpriseService, so that
// the health service stays reachable without a token.
func isServiceMethod(m string) bool {
	return strings.HasPrefix(m, "/"+pb.ServiceName+"/")
}

func userIDFromContext(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", status.Error(codes.Unauthenticated, "missing user")
	}
	return userID, nil
}
