package interceptors

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	apperrors "github.com/umalmyha/taskdesk/internal/errors"
	"github.com/umalmyha/taskdesk/internal/validation"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const internalErrMsg = "Internal server error"

func httpToGrpcCode(s int) codes.Code {
	switch s {
	case http.StatusBadRequest:
		return codes.InvalidArgument
	case http.StatusUnauthorized:
		return codes.Unauthenticated
	case http.StatusForbidden:
		return codes.PermissionDenied
	case http.StatusNotFound:
		return codes.NotFound
	case http.StatusConflict:
		return codes.AlreadyExists
	default:
		return codes.Internal
	}
}

func errorCode(err error) codes.Code {
	var pldErr *validation.PayloadError
	var notFoundErr *apperrors.EntryNotFoundErr
	var conflictErr *apperrors.ConflictErr
	var echoErr *echo.HTTPError

	switch {
	case errors.As(err, &pldErr):
		return codes.InvalidArgument
	case errors.As(err, &notFoundErr):
		return codes.NotFound
	case errors.As(err, &conflictErr):
		return codes.AlreadyExists
	case errors.As(err, &echoErr):
		return httpToGrpcCode(echoErr.Code)
	default:
		return codes.Internal
	}
}

// ErrorUnaryInterceptor converts error retrieved from handler to gRPC error with corresponding code
func ErrorUnaryInterceptor(applicables ...UnaryInterceptorApplicable) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, h grpc.UnaryHandler) (any, error) {
		if !isUnaryInterceptorApplicable(info, applicables...) {
			return h(ctx, req)
		}

		res, err := h(ctx, req)
		if err == nil {
			return res, nil
		}

		if _, ok := status.FromError(err); ok { // it is already grpc status error
			return nil, err
		}

		code := errorCode(err)
		if code == codes.Internal {
			logrus.Errorf("error occurred on grpc request %s processing - %v", info.FullMethod, err)
			return nil, status.Error(code, internalErrMsg)
		}

		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) {
			if msg, ok := echoErr.Message.(string); ok {
				return nil, status.Error(code, msg)
			}
		}
		return nil, status.Error(code, err.Error())
	}
}
