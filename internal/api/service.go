package api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "taskbalance.v1.TaskBalance"

// Full method names, as seen by interceptors.
const (
	MethodRegister                = "/" + ServiceName + "/Register"
	MethodLogin                   = "/" + ServiceName + "/Login"
	MethodRefreshToken            = "/" + ServiceName + "/RefreshToken"
	MethodListTasks               = "/" + ServiceName + "/ListTasks"
	MethodCreateTask              = "/" + ServiceName + "/CreateTask"
	MethodUpdateTask              = "/" + ServiceName + "/UpdateTask"
	MethodDeleteTask              = "/" + ServiceName + "/DeleteTask"
	MethodGetBalance              = "/" + ServiceName + "/GetBalance"
	MethodUpsertBalance           = "/" + ServiceName + "/UpsertBalance"
	MethodRequestAttachmentUpload = "/" + ServiceName + "/RequestAttachmentUpload"
	MethodMarkAttachmentUploaded  = "/" + ServiceName + "/MarkAttachmentUploaded"
	MethodGetAttachmentURL        = "/" + ServiceName + "/GetAttachmentURL"
	MethodListAttachments         = "/" + ServiceName + "/ListAttachments"
)

// TaskBalanceServer is implemented by the server side of the service.
type TaskBalanceServer interface {
	Register(context.Context, *RegisterRequest) (*RegisterResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	RefreshToken(context.Context, *RefreshTokenRequest) (*RefreshTokenResponse, error)

	ListTasks(context.Context, *ListTasksRequest) (*ListTasksResponse, error)
	CreateTask(context.Context, *CreateTaskRequest) (*CreateTaskResponse, error)
	UpdateTask(context.Context, *UpdateTaskRequest) (*UpdateTaskResponse, error)
	DeleteTask(context.Context, *DeleteTaskRequest) (*DeleteTaskResponse, error)

	GetBalance(context.Context, *GetBalanceRequest) (*GetBalanceResponse, error)
	UpsertBalance(context.Context, *UpsertBalanceRequest) (*UpsertBalanceResponse, error)

	RequestAttachmentUpload(context.Context, *RequestAttachmentUploadRequest) (*RequestAttachmentUploadResponse, error)
	MarkAttachmentUploaded(context.Context, *MarkAttachmentUploadedRequest) (*MarkAttachmentUploadedResponse, error)
	GetAttachmentURL(context.Context, *GetAttachmentURLRequest) (*GetAttachmentURLResponse, error)
	ListAttachments(context.Context, *ListAttachmentsRequest) (*ListAttachmentsResponse, error)
}

// UnimplementedTaskBalanceServer answers every method with codes.Unimplemented.
// Embed it to satisfy TaskBalanceServer partially.
type UnimplementedTaskBalanceServer struct{}

func unimplemented(name string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", name)
}

func (UnimplementedTaskBalanceServer) Register(context.Context, *RegisterRequest) (*RegisterResponse, error) {
	return nil, unimplemented("Register")
}
func (UnimplementedTaskBalanceServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, unimplemented("Login")
}
func (UnimplementedTaskBalanceServer) RefreshToken(context.Context, *RefreshTokenRequest) (*RefreshTokenResponse, error) {
	return nil, unimplemented("RefreshToken")
}
func (UnimplementedTaskBalanceServer) ListTasks(context.Context, *ListTasksRequest) (*ListTasksResponse, error) {
	return nil, unimplemented("ListTasks")
}
func (UnimplementedTaskBalanceServer) CreateTask(context.Context, *CreateTaskRequest) (*CreateTaskResponse, error) {
	return nil, unimplemented("CreateTask")
}
func (UnimplementedTaskBalanceServer) UpdateTask(context.Context, *UpdateTaskRequest) (*UpdateTaskResponse, error) {
	return nil, unimplemented("UpdateTask")
}
func (UnimplementedTaskBalanceServer) DeleteTask(context.Context, *DeleteTaskRequest) (*DeleteTaskResponse, error) {
	return nil, unimplemented("DeleteTask")
}
func (UnimplementedTaskBalanceServer) GetBalance(context.Context, *GetBalanceRequest) (*GetBalanceResponse, error) {
	return nil, unimplemented("GetBalance")
}
func (UnimplementedTaskBalanceServer) UpsertBalance(context.Context, *UpsertBalanceRequest) (*UpsertBalanceResponse, error) {
	return nil, unimplemented("UpsertBalance")
}
func (UnimplementedTaskBalanceServer) RequestAttachmentUpload(context.Context, *RequestAttachmentUploadRequest) (*RequestAttachmentUploadResponse, error) {
	return nil, unimplemented("RequestAttachmentUpload")
}
func (UnimplementedTaskBalanceServer) MarkAttachmentUploaded(context.Context, *MarkAttachmentUploadedRequest) (*MarkAttachmentUploadedResponse, error) {
	return nil, unimplemented("MarkAttachmentUploaded")
}
func (UnimplementedTaskBalanceServer) GetAttachmentURL(context.Context, *GetAttachmentURLRequest) (*GetAttachmentURLResponse, error) {
	return nil, unimplemented("GetAttachmentURL")
}
func (UnimplementedTaskBalanceServer) ListAttachments(context.Context, *ListAttachmentsRequest) (*ListAttachmentsResponse, error) {
	return nil, unimplemented("ListAttachments")
}

// unary adapts a typed server method to a grpc.MethodHandler.
func unary[Req, Resp any](fullMethod string, call func(TaskBalanceServer, context.Context, *Req) (*Resp, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(TaskBalanceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(TaskBalanceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TaskBalanceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Register", Handler: unary(MethodRegister, TaskBalanceServer.Register)},
		{MethodName: "Login", Handler: unary(MethodLogin, TaskBalanceServer.Login)},
		{MethodName: "RefreshToken", Handler: unary(MethodRefreshToken, TaskBalanceServer.RefreshToken)},
		{MethodName: "ListTasks", Handler: unary(MethodListTasks, TaskBalanceServer.ListTasks)},
		{MethodName: "CreateTask", Handler: unary(MethodCreateTask, TaskBalanceServer.CreateTask)},
		{MethodName: "UpdateTask", Handler: unary(MethodUpdateTask, TaskBalanceServer.UpdateTask)},
		{MethodName: "DeleteTask", Handler: unary(MethodDeleteTask, TaskBalanceServer.DeleteTask)},
		{MethodName: "GetBalance", Handler: unary(MethodGetBalance, TaskBalanceServer.GetBalance)},
		{MethodName: "UpsertBalance", Handler: unary(MethodUpsertBalance, TaskBalanceServer.UpsertBalance)},
		{MethodName: "RequestAttachmentUpload", Handler: unary(MethodRequestAttachmentUpload, TaskBalanceServer.RequestAttachmentUpload)},
		{MethodName: "MarkAttachmentUploaded", Handler: unary(MethodMarkAttachmentUploaded, TaskBalanceServer.MarkAttachmentUploaded)},
		{MethodName: "GetAttachmentURL", Handler: unary(MethodGetAttachmentURL, TaskBalanceServer.GetAttachmentURL)},
		{MethodName: "ListAttachments", Handler: unary(MethodListAttachments, TaskBalanceServer.ListAttachments)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "taskbalance/v1/taskbalance.json",
}

func RegisterTaskBalanceServer(s grpc.ServiceRegistrar, srv TaskBalanceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// TaskBalanceClient is the client side of the service.
type TaskBalanceClient interface {
	Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
	RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*RefreshTokenResponse, error)

	ListTasks(ctx context.Context, in *ListTasksRequest, opts ...grpc.CallOption) (*ListTasksResponse, error)
	CreateTask(ctx context.Context, in *CreateTaskRequest, opts ...grpc.CallOption) (*CreateTaskResponse, error)
	UpdateTask(ctx context.Context, in *UpdateTaskRequest, opts ...grpc.CallOption) (*UpdateTaskResponse, error)
	DeleteTask(ctx context.Context, in *DeleteTaskRequest, opts ...grpc.CallOption) (*DeleteTaskResponse, error)

	GetBalance(ctx context.Context, in *GetBalanceRequest, opts ...grpc.CallOption) (*GetBalanceResponse, error)
	UpsertBalance(ctx context.Context, in *UpsertBalanceRequest, opts ...grpc.CallOption) (*UpsertBalanceResponse, error)

	RequestAttachmentUpload(ctx context.Context, in *RequestAttachmentUploadRequest, opts ...grpc.CallOption) (*RequestAttachmentUploadResponse, error)
	MarkAttachmentUploaded(ctx context.Context, in *MarkAttachmentUploadedRequest, opts ...grpc.CallOption) (*MarkAttachmentUploadedResponse, error)
	GetAttachmentURL(ctx context.Context, in *GetAttachmentURLRequest, opts ...grpc.CallOption) (*GetAttachmentURLResponse, error)
	ListAttachments(ctx context.Context, in *ListAttachmentsRequest, opts ...grpc.CallOption) (*ListAttachmentsResponse, error)
}

type taskBalanceClient struct {
	cc grpc.ClientConnInterface
}

func NewTaskBalanceClient(cc grpc.ClientConnInterface) TaskBalanceClient {
	return &taskBalanceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *taskBalanceClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error) {
	return invoke[RegisterResponse](ctx, c.cc, MethodRegister, in, opts)
}

func (c *taskBalanceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginResponse](ctx, c.cc, MethodLogin, in, opts)
}

func (c *taskBalanceClient) RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*RefreshTokenResponse, error) {
	return invoke[RefreshTokenResponse](ctx, c.cc, MethodRefreshToken, in, opts)
}

func (c *taskBalanceClient) ListTasks(ctx context.Context, in *ListTasksRequest, opts ...grpc.CallOption) (*ListTasksResponse, error) {
	return invoke[ListTasksResponse](ctx, c.cc, MethodListTasks, in, opts)
}

func (c *taskBalanceClient) CreateTask(ctx context.Context, in *CreateTaskRequest, opts ...grpc.CallOption) (*CreateTaskResponse, error) {
	return invoke[CreateTaskResponse](ctx, c.cc, MethodCreateTask, in, opts)
}

func (c *taskBalanceClient) UpdateTask(ctx context.Context, in *UpdateTaskRequest, opts ...grpc.CallOption) (*UpdateTaskResponse, error) {
	return invoke[UpdateTaskResponse](ctx, c.cc, MethodUpdateTask, in, opts)
}

func (c *taskBalanceClient) DeleteTask(ctx context.Context, in *DeleteTaskRequest, opts ...grpc.CallOption) (*DeleteTaskResponse, error) {
	return invoke[DeleteTaskResponse](ctx, c.cc, MethodDeleteTask, in, opts)
}

func (c *taskBalanceClient) GetBalance(ctx context.Context, in *GetBalanceRequest, opts ...grpc.CallOption) (*GetBalanceResponse, error) {
	return invoke[GetBalanceResponse](ctx, c.cc, MethodGetBalance, in, opts)
}

func (c *taskBalanceClient) UpsertBalance(ctx context.Context, in *UpsertBalanceRequest, opts ...grpc.CallOption) (*UpsertBalanceResponse, error) {
	return invoke[UpsertBalanceResponse](ctx, c.cc, MethodUpsertBalance, in, opts)
}

func (c *taskBalanceClient) RequestAttachmentUpload(ctx context.Context, in *RequestAttachmentUploadRequest, opts ...grpc.CallOption) (*RequestAttachmentUploadResponse, error) {
	return invoke[RequestAttachmentUploadResponse](ctx, c.cc, MethodRequestAttachmentUpload, in, opts)
}

func (c *taskBalanceClient) MarkAttachmentUploaded(ctx context.Context, in *MarkAttachmentUploadedRequest, opts ...grpc.CallOption) (*MarkAttachmentUploadedResponse, error) {
	return invoke[MarkAttachmentUploadedResponse](ctx, c.cc, MethodMarkAttachmentUploaded, in, opts)
}

func (c *taskBalanceClient) GetAttachmentURL(ctx context.Context, in *GetAttachmentURLRequest, opts ...grpc.CallOption) (*GetAttachmentURLResponse, error) {
	return invoke[GetAttachmentURLResponse](ctx, c.cc, MethodGetAttachmentURL, in, opts)
}

func (c *taskBalanceClient) ListAttachments(ctx context.Context, in *ListAttachmentsRequest, opts ...grpc.CallOption) (*ListAttachmentsResponse, error) {
	return invoke[ListAttachmentsResponse](ctx, c.cc, MethodListAttachments, in, opts)
}
