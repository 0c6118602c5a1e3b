package infra

import (
	"github.com/labstack/echo/v4"
	"github.com/umalmyha/taskdesk/internal/handlers"
	"github.com/umalmyha/taskdesk/internal/interceptors"
	"github.com/umalmyha/taskdesk/proto"
	"google.golang.org/grpc"
)

// GrpcServer builds grpc server with task service registered
func GrpcServer(svcs *Services, v echo.Validator, a *Auth) *grpc.Server {
	chain := []grpc.UnaryServerInterceptor{
		interceptors.LoggingUnaryInterceptor(),
		interceptors.ErrorUnaryInterceptor(),
	}

	if a.Validator != nil {
		chain = append(chain, interceptors.AuthUnaryInterceptor(
			a.Validator,
			interceptors.UnaryApplicableForService(proto.TaskServiceName),
			interceptors.UnaryApplicableForMethods("UpsertAgentTask"),
		))
	}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(chain...))
	proto.RegisterTaskServiceServer(srv, handlers.NewTaskGrpcHandler(svcs.Task, v))
	return srv
}
