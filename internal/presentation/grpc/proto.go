package grpc

// proto.go defines the gRPC server interface for the calculation service.
// The service uses a JSON codec, so the message types are the application
// DTOs themselves; this file serves as a stand-in for generated code until
// a proto definition exists for the public API.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/kreditwerk/tilgung-service/internal/application/dto"
)

// Message aliases: the wire format is JSON, so the DTOs double as messages.
type (
	CalculatePaymentRequest   = dto.CalculateLoanRequest
	CalculatePaymentResponse  = dto.PaymentBreakdownResponse
	SolveTermRequest          = dto.SolveTermRequest
	SolveTermResponse         = dto.TermResponse
	SolveRateRequest          = dto.SolveRateRequest
	SolveRateResponse         = dto.RateResponse
	GenerateScheduleRequest   = dto.GenerateScheduleRequest
	GenerateScheduleResponse  = dto.ScheduleResponse
	AnalyzeImpactRequest      = dto.AnalyzeImpactRequest
	AnalyzeImpactResponse     = dto.ImpactResponse
	CompareStrategiesRequest  = dto.CompareStrategiesRequest
	CompareStrategiesResponse = dto.CompareStrategiesResponse
	SensitivityRequest        = dto.SensitivityRequest
	SensitivityResponse       = dto.SensitivityResponse
	PaymentScenariosRequest   = dto.PaymentScenariosRequest
	PaymentScenariosResponse  = dto.PaymentScenariosResponse
)

// TilgungServiceServer is the server API for the calculation service.
type TilgungServiceServer interface {
	CalculatePayment(context.Context, *CalculatePaymentRequest) (*CalculatePaymentResponse, error)
	SolveTerm(context.Context, *SolveTermRequest) (*SolveTermResponse, error)
	SolveRate(context.Context, *SolveRateRequest) (*SolveRateResponse, error)
	GenerateSchedule(context.Context, *GenerateScheduleRequest) (*GenerateScheduleResponse, error)
	AnalyzeImpact(context.Context, *AnalyzeImpactRequest) (*AnalyzeImpactResponse, error)
	CompareStrategies(context.Context, *CompareStrategiesRequest) (*CompareStrategiesResponse, error)
	InterestSensitivity(context.Context, *SensitivityRequest) (*SensitivityResponse, error)
	PaymentScenarios(context.Context, *PaymentScenariosRequest) (*PaymentScenariosResponse, error)
	mustEmbedUnimplementedTilgungServiceServer()
}

// UnimplementedTilgungServiceServer provides forward-compatible default
// implementations.
type UnimplementedTilgungServiceServer struct{}

func (UnimplementedTilgungServiceServer) CalculatePayment(context.Context, *CalculatePaymentRequest) (*CalculatePaymentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CalculatePayment not implemented")
}
func (UnimplementedTilgungServiceServer) SolveTerm(context.Context, *SolveTermRequest) (*SolveTermResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SolveTerm not implemented")
}
func (UnimplementedTilgungServiceServer) SolveRate(context.Context, *SolveRateRequest) (*SolveRateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SolveRate not implemented")
}
func (UnimplementedTilgungServiceServer) GenerateSchedule(context.Context, *GenerateScheduleRequest) (*GenerateScheduleResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GenerateSchedule not implemented")
}
func (UnimplementedTilgungServiceServer) AnalyzeImpact(context.Context, *AnalyzeImpactRequest) (*AnalyzeImpactResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AnalyzeImpact not implemented")
}
func (UnimplementedTilgungServiceServer) CompareStrategies(context.Context, *CompareStrategiesRequest) (*CompareStrategiesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CompareStrategies not implemented")
}
func (UnimplementedTilgungServiceServer) InterestSensitivity(context.Context, *SensitivityRequest) (*SensitivityResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method InterestSensitivity not implemented")
}
func (UnimplementedTilgungServiceServer) PaymentScenarios(context.Context, *PaymentScenariosRequest) (*PaymentScenariosResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PaymentScenarios not implemented")
}
func (UnimplementedTilgungServiceServer) mustEmbedUnimplementedTilgungServiceServer() {}

// RegisterTilgungServiceServer registers the server implementation.
func RegisterTilgungServiceServer(s *grpclib.Server, srv TilgungServiceServer) {
	s.RegisterService(&_TilgungService_serviceDesc, srv)
}

var _TilgungService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "kreditwerk.tilgung.v1.TilgungService",
	HandlerType: (*TilgungServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "CalculatePayment", Handler: _TilgungService_CalculatePayment_Handler},
		{MethodName: "SolveTerm", Handler: _TilgungService_SolveTerm_Handler},
		{MethodName: "SolveRate", Handler: _TilgungService_SolveRate_Handler},
		{MethodName: "GenerateSchedule", Handler: _TilgungService_GenerateSchedule_Handler},
		{MethodName: "AnalyzeImpact", Handler: _TilgungService_AnalyzeImpact_Handler},
		{MethodName: "CompareStrategies", Handler: _TilgungService_CompareStrategies_Handler},
		{MethodName: "InterestSensitivity", Handler: _TilgungService_InterestSensitivity_Handler},
		{MethodName: "PaymentScenarios", Handler: _TilgungService_PaymentScenarios_Handler},
	},
	Streams: []grpclib.StreamDesc{},
}

func _TilgungService_CalculatePayment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CalculatePaymentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TilgungServiceServer).CalculatePayment(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/kreditwerk.tilgung.v1.TilgungService/CalculatePayment",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TilgungServiceServer).CalculatePayment(ctx, req.(*CalculatePaymentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TilgungService_SolveTerm_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(SolveTermRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TilgungServiceServer).SolveTerm(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/kreditwerk.tilgung.v1.TilgungService/SolveTerm",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TilgungServiceServer).SolveTerm(ctx, req.(*SolveTermRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TilgungService_SolveRate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(SolveRateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TilgungServiceServer).SolveRate(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/kreditwerk.tilgung.v1.TilgungService/SolveRate",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TilgungServiceServer).SolveRate(ctx, req.(*SolveRateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TilgungService_GenerateSchedule_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GenerateScheduleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TilgungServiceServer).GenerateSchedule(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/kreditwerk.tilgung.v1.TilgungService/GenerateSchedule",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TilgungServiceServer).GenerateSchedule(ctx, req.(*GenerateScheduleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TilgungService_AnalyzeImpact_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(AnalyzeImpactRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TilgungServiceServer).AnalyzeImpact(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/kreditwerk.tilgung.v1.TilgungService/AnalyzeImpact",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TilgungServiceServer).AnalyzeImpact(ctx, req.(*AnalyzeImpactRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TilgungService_CompareStrategies_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CompareStrategiesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TilgungServiceServer).CompareStrategies(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/kreditwerk.tilgung.v1.TilgungService/CompareStrategies",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TilgungServiceServer).CompareStrategies(ctx, req.(*CompareStrategiesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TilgungService_InterestSensitivity_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(SensitivityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TilgungServiceServer).InterestSensitivity(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/kreditwerk.tilgung.v1.TilgungService/InterestSensitivity",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TilgungServiceServer).InterestSensitivity(ctx, req.(*SensitivityRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TilgungService_PaymentScenarios_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(PaymentScenariosRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TilgungServiceServer).PaymentScenarios(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/kreditwerk.tilgung.v1.TilgungService/PaymentScenarios",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TilgungServiceServer).PaymentScenarios(ctx, req.(*PaymentScenariosRequest))
	}
	return interceptor(ctx, in, info, handler)
}
