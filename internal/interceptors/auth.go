package interceptors

import (
	"context"
	"strings"

	"github.com/umalmyha/taskdesk/internal/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const (
	authorizationHdr = "authorization"
	bearerPrefix     = "bearer "
)

type agentClaimsKey struct{}

// AuthUnaryInterceptor verifies that jwt is provided in metadata and valid, claims are put into context
func AuthUnaryInterceptor(validator *auth.JwtValidator, applicables ...UnaryInterceptorApplicable) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, h grpc.UnaryHandler) (any, error) {
		if !isUnaryInterceptorApplicable(info, applicables...) {
			return h(ctx, req)
		}

		headers, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "no auth info provided")
		}

		tokenHdr := headers.Get(authorizationHdr)
		if len(tokenHdr) == 0 {
			return nil, status.Error(codes.Unauthenticated, "authorization header is missing")
		}

		token := tokenHdr[0]
		if len(token) > len(bearerPrefix) && strings.EqualFold(token[:len(bearerPrefix)], bearerPrefix) {
			token = token[len(bearerPrefix):]
		}

		claims, err := validator.Verify(token)
		if err != nil {
			return nil, status.Errorf(codes.Unauthenticated, "invalid access token provided - %v", err)
		}

		return h(context.WithValue(ctx, agentClaimsKey{}, claims), req)
	}
}

// AgentClaims returns claims put by AuthUnaryInterceptor, ok is false when auth is not applied
func AgentClaims(ctx context.Context) (auth.AgentClaims, bool) {
	claims, ok := ctx.Value(agentClaimsKey{}).(auth.AgentClaims)
	return claims, ok
}
