// Package proto declares taskdesk.v1.TaskService over protobuf well-known types.
package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// TaskServiceName is fully qualified service name
const TaskServiceName = "taskdesk.v1.TaskService"

const (
	upsertAgentTaskMethod = "/" + TaskServiceName + "/UpsertAgentTask"
	getTaskMethod         = "/" + TaskServiceName + "/GetTask"
	listTasksMethod       = "/" + TaskServiceName + "/ListTasks"
	previewDraftMethod    = "/" + TaskServiceName + "/PreviewDraft"
)

// TaskServiceServer is the server API for TaskService
type TaskServiceServer interface {
	UpsertAgentTask(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetTask(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListTasks(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	PreviewDraft(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// UnimplementedTaskServiceServer must be embedded by servers for forward compatibility
type UnimplementedTaskServiceServer struct{}

func (UnimplementedTaskServiceServer) UpsertAgentTask(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method UpsertAgentTask not implemented")
}

func (UnimplementedTaskServiceServer) GetTask(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetTask not implemented")
}

func (UnimplementedTaskServiceServer) ListTasks(context.Context, *emptypb.Empty) (*structpb.ListValue, error) {
	return nil, status.Error(codes.Unimplemented, "method ListTasks not implemented")
}

func (UnimplementedTaskServiceServer) PreviewDraft(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method PreviewDraft not implemented")
}

// RegisterTaskServiceServer registers srv on s
func RegisterTaskServiceServer(s grpc.ServiceRegistrar, srv TaskServiceServer) {
	s.RegisterService(&TaskServiceDesc, srv)
}

// TaskServiceDesc is grpc.ServiceDesc of TaskService
var TaskServiceDesc = grpc.ServiceDesc{
	ServiceName: TaskServiceName,
	HandlerType: (*TaskServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "UpsertAgentTask", Handler: upsertAgentTaskHandler},
		{MethodName: "GetTask", Handler: getTaskHandler},
		{MethodName: "ListTasks", Handler: listTasksHandler},
		{MethodName: "PreviewDraft", Handler: previewDraftHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "taskdesk/v1/task_service.proto",
}

func upsertAgentTaskHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TaskServiceServer).UpsertAgentTask(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: upsertAgentTaskMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TaskServiceServer).UpsertAgentTask(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func getTaskHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TaskServiceServer).GetTask(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: getTaskMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TaskServiceServer).GetTask(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func listTasksHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TaskServiceServer).ListTasks(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: listTasksMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TaskServiceServer).ListTasks(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func previewDraftHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TaskServiceServer).PreviewDraft(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: previewDraftMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TaskServiceServer).PreviewDraft(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// TaskServiceClient is the client API for TaskService
type TaskServiceClient interface {
	UpsertAgentTask(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetTask(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ListTasks(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error)
	PreviewDraft(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type taskServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewTaskServiceClient builds TaskServiceClient
func NewTaskServiceClient(cc grpc.ClientConnInterface) TaskServiceClient {
	return &taskServiceClient{cc: cc}
}

func (c *taskServiceClient) UpsertAgentTask(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, upsertAgentTaskMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *taskServiceClient) GetTask(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, getTaskMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *taskServiceClient) ListTasks(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, listTasksMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *taskServiceClient) PreviewDraft(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, previewDraftMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
