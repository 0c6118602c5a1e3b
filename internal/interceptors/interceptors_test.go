package interceptors

import (
	"context"
	"crypto/ed25519"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"github.com/umalmyha/taskdesk/internal/auth"
	apperrors "github.com/umalmyha/taskdesk/internal/errors"
	"github.com/umalmyha/taskdesk/internal/validation"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const upsertMethod = "/taskdesk.v1.TaskService/UpsertAgentTask"

func failingHandler(err error) grpc.UnaryHandler {
	return func(context.Context, any) (any, error) {
		return nil, err
	}
}

func TestErrorUnaryInterceptor(t *testing.T) {
	interceptor := ErrorUnaryInterceptor()
	info := &grpc.UnaryServerInfo{FullMethod: upsertMethod}

	cases := []struct {
		err  error
		code codes.Code
		msg  string
	}{
		{err: validation.NewPayloadError("title", "title is a required field"), code: codes.InvalidArgument, msg: "title is a required field"},
		{err: fmt.Errorf("lookup - %w", apperrors.NewEntryNotFoundErr("task", "1")), code: codes.NotFound, msg: "lookup - task 1 not found"},
		{err: apperrors.NewConflictErr("task crm/1 was concurrently modified", nil), code: codes.AlreadyExists, msg: "task crm/1 was concurrently modified"},
		{err: echo.NewHTTPError(http.StatusForbidden, "token is not issued for source erp"), code: codes.PermissionDenied, msg: "token is not issued for source erp"},
		{err: echo.NewHTTPError(http.StatusBadRequest, "malformed"), code: codes.InvalidArgument, msg: "malformed"},
		{err: status.Error(codes.Unauthenticated, "no token"), code: codes.Unauthenticated, msg: "no token"},
		{err: errors.New("connection reset"), code: codes.Internal, msg: internalErrMsg},
	}

	for _, tc := range cases {
		_, err := interceptor(context.Background(), nil, info, failingHandler(tc.err))
		st, ok := status.FromError(err)
		require.True(t, ok, "status error is expected for %v", tc.err)
		require.Equal(t, tc.code, st.Code(), "wrong code for %v", tc.err)
		require.Equal(t, tc.msg, st.Message(), "wrong message for %v", tc.err)
	}

	t.Log("successful response is passed as is")
	{
		res, err := interceptor(context.Background(), nil, info, func(context.Context, any) (any, error) {
			return "ok", nil
		})
		require.NoError(t, err)
		require.Equal(t, "ok", res)
	}
}

func TestAuthUnaryInterceptor(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err, "failed to generate key pair")

	method := jwt.GetSigningMethod("EdDSA")
	issuer := auth.NewJwtIssuer("test-issuer", method, time.Minute, priv)
	interceptor := AuthUnaryInterceptor(auth.NewJwtValidator(method, pub), UnaryApplicableForMethods("UpsertAgentTask"))

	token, err := issuer.Sign("agent-id", "crm", time.Now().UTC())
	require.NoError(t, err, "failed to sign jwt")

	var seen auth.AgentClaims
	handler := func(ctx context.Context, _ any) (any, error) {
		seen, _ = AgentClaims(ctx)
		return nil, nil
	}

	t.Log("other methods are not protected")
	{
		_, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/taskdesk.v1.TaskService/ListTasks"}, handler)
		require.NoError(t, err)
	}

	info := &grpc.UnaryServerInfo{FullMethod: upsertMethod}

	t.Log("missing metadata is rejected")
	{
		_, err := interceptor(context.Background(), nil, info, handler)
		require.Equal(t, codes.Unauthenticated, status.Code(err))
	}

	t.Log("broken token is rejected")
	{
		ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer broken"))
		_, err := interceptor(ctx, nil, info, handler)
		require.Equal(t, codes.Unauthenticated, status.Code(err))
	}

	t.Log("token with and without bearer prefix is accepted")
	{
		for _, hdr := range []string{"Bearer " + token.Signed, "bearer " + token.Signed, token.Signed} {
			seen = auth.AgentClaims{}
			ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", hdr))
			_, err := interceptor(ctx, nil, info, handler)
			require.NoError(t, err)
			require.Equal(t, "crm", seen.Source(), "claims must be put into context")
		}
	}
}

func TestUnaryApplicable(t *testing.T) {
	info := &grpc.UnaryServerInfo{FullMethod: upsertMethod}

	require.True(t, UnaryApplicableForService("taskdesk.v1.TaskService")(info))
	require.False(t, UnaryApplicableForService("taskdesk.v1.Task")(info))
	require.True(t, UnaryApplicableForMethods("GetTask", "UpsertAgentTask")(info))
	require.False(t, UnaryApplicableForMethods("GetTask")(info))

	require.True(t, isUnaryInterceptorApplicable(info))
	require.False(t, isUnaryInterceptorApplicable(info,
		UnaryApplicableForService("taskdesk.v1.TaskService"),
		UnaryApplicableForMethods("GetTask"),
	))
}
