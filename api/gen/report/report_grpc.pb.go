package report

import (
	context "context"

	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

type ReportServiceClient interface {
	ScoreAccount(ctx context.Context, in *ScoreAccountRequest, opts ...grpc.CallOption) (*ScoreAccountResponse, error)
	GetSuspiciousTransactions(ctx context.Context, in *GetSuspiciousTransactionsRequest, opts ...grpc.CallOption) (*GetSuspiciousTransactionsResponse, error)
	GetDashboardStats(ctx context.Context, in *GetDashboardStatsRequest, opts ...grpc.CallOption) (*GetDashboardStatsResponse, error)
	GetKPISummary(ctx context.Context, in *GetKPISummaryRequest, opts ...grpc.CallOption) (*GetKPISummaryResponse, error)
	GetTransactionTrends(ctx context.Context, in *GetTransactionTrendsRequest, opts ...grpc.CallOption) (*GetTransactionTrendsResponse, error)
	GetTopTransactions(ctx context.Context, in *GetTopTransactionsRequest, opts ...grpc.CallOption) (*GetTopTransactionsResponse, error)
	GenerateReport(ctx context.Context, in *GenerateReportRequest, opts ...grpc.CallOption) (*GenerateReportResponse, error)
	GetComplianceMetrics(ctx context.Context, in *GetComplianceMetricsRequest, opts ...grpc.CallOption) (*GetComplianceMetricsResponse, error)
	CheckThresholds(ctx context.Context, in *CheckThresholdsRequest, opts ...grpc.CallOption) (*CheckThresholdsResponse, error)
	GetComplianceScore(ctx context.Context, in *GetComplianceScoreRequest, opts ...grpc.CallOption) (*GetComplianceScoreResponse, error)
	GetComplianceDashboard(ctx context.Context, in *GetComplianceDashboardRequest, opts ...grpc.CallOption) (*GetComplianceDashboardResponse, error)
}

type reportServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewReportServiceClient(cc grpc.ClientConnInterface) ReportServiceClient {
	return &reportServiceClient{cc: cc}
}

func (c *reportServiceClient) ScoreAccount(ctx context.Context, in *ScoreAccountRequest, opts ...grpc.CallOption) (*ScoreAccountResponse, error) {
	out := new(ScoreAccountResponse)
	err := c.cc.Invoke(ctx, "/report.ReportService/ScoreAccount", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reportServiceClient) GetSuspiciousTransactions(ctx context.Context, in *GetSuspiciousTransactionsRequest, opts ...grpc.CallOption) (*GetSuspiciousTransactionsResponse, error) {
	out := new(GetSuspiciousTransactionsResponse)
	err := c.cc.Invoke(ctx, "/report.ReportService/GetSuspiciousTransactions", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reportServiceClient) GetDashboardStats(ctx context.Context, in *GetDashboardStatsRequest, opts ...grpc.CallOption) (*GetDashboardStatsResponse, error) {
	out := new(GetDashboardStatsResponse)
	err := c.cc.Invoke(ctx, "/report.ReportService/GetDashboardStats", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reportServiceClient) GetKPISummary(ctx context.Context, in *GetKPISummaryRequest, opts ...grpc.CallOption) (*GetKPISummaryResponse, error) {
	out := new(GetKPISummaryResponse)
	err := c.cc.Invoke(ctx, "/report.ReportService/GetKPISummary", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reportServiceClient) GetTransactionTrends(ctx context.Context, in *GetTransactionTrendsRequest, opts ...grpc.CallOption) (*GetTransactionTrendsResponse, error) {
	out := new(GetTransactionTrendsResponse)
	err := c.cc.Invoke(ctx, "/report.ReportService/GetTransactionTrends", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reportServiceClient) GetTopTransactions(ctx context.Context, in *GetTopTransactionsRequest, opts ...grpc.CallOption) (*GetTopTransactionsResponse, error) {
	out := new(GetTopTransactionsResponse)
	err := c.cc.Invoke(ctx, "/report.ReportService/GetTopTransactions", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reportServiceClient) GenerateReport(ctx context.Context, in *GenerateReportRequest, opts ...grpc.CallOption) (*GenerateReportResponse, error) {
	out := new(GenerateReportResponse)
	err := c.cc.Invoke(ctx, "/report.ReportService/GenerateReport", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reportServiceClient) GetComplianceMetrics(ctx context.Context, in *GetComplianceMetricsRequest, opts ...grpc.CallOption) (*GetComplianceMetricsResponse, error) {
	out := new(GetComplianceMetricsResponse)
	err := c.cc.Invoke(ctx, "/report.ReportService/GetComplianceMetrics", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reportServiceClient) CheckThresholds(ctx context.Context, in *CheckThresholdsRequest, opts ...grpc.CallOption) (*CheckThresholdsResponse, error) {
	out := new(CheckThresholdsResponse)
	err := c.cc.Invoke(ctx, "/report.ReportService/CheckThresholds", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reportServiceClient) GetComplianceScore(ctx context.Context, in *GetComplianceScoreRequest, opts ...grpc.CallOption) (*GetComplianceScoreResponse, error) {
	out := new(GetComplianceScoreResponse)
	err := c.cc.Invoke(ctx, "/report.ReportService/GetComplianceScore", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reportServiceClient) GetComplianceDashboard(ctx context.Context, in *GetComplianceDashboardRequest, opts ...grpc.CallOption) (*GetComplianceDashboardResponse, error) {
	out := new(GetComplianceDashboardResponse)
	err := c.cc.Invoke(ctx, "/report.ReportService/GetComplianceDashboard", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

type ReportServiceServer interface {
	ScoreAccount(context.Context, *ScoreAccountRequest) (*ScoreAccountResponse, error)
	GetSuspiciousTransactions(context.Context, *GetSuspiciousTransactionsRequest) (*GetSuspiciousTransactionsResponse, error)
	GetDashboardStats(context.Context, *GetDashboardStatsRequest) (*GetDashboardStatsResponse, error)
	GetKPISummary(context.Context, *GetKPISummaryRequest) (*GetKPISummaryResponse, error)
	GetTransactionTrends(context.Context, *GetTransactionTrendsRequest) (*GetTransactionTrendsResponse, error)
	GetTopTransactions(context.Context, *GetTopTransactionsRequest) (*GetTopTransactionsResponse, error)
	GenerateReport(context.Context, *GenerateReportRequest) (*GenerateReportResponse, error)
	GetComplianceMetrics(context.Context, *GetComplianceMetricsRequest) (*GetComplianceMetricsResponse, error)
	CheckThresholds(context.Context, *CheckThresholdsRequest) (*CheckThresholdsResponse, error)
	GetComplianceScore(context.Context, *GetComplianceScoreRequest) (*GetComplianceScoreResponse, error)
	GetComplianceDashboard(context.Context, *GetComplianceDashboardRequest) (*GetComplianceDashboardResponse, error)
	mustEmbedUnimplementedReportServiceServer()
}

type UnimplementedReportServiceServer struct{}

func (UnimplementedReportServiceServer) ScoreAccount(context.Context, *ScoreAccountRequest) (*ScoreAccountResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ScoreAccount not implemented")
}
func (UnimplementedReportServiceServer) GetSuspiciousTransactions(context.Context, *GetSuspiciousTransactionsRequest) (*GetSuspiciousTransactionsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetSuspiciousTransactions not implemented")
}
func (UnimplementedReportServiceServer) GetDashboardStats(context.Context, *GetDashboardStatsRequest) (*GetDashboardStatsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDashboardStats not implemented")
}
func (UnimplementedReportServiceServer) GetKPISummary(context.Context, *GetKPISummaryRequest) (*GetKPISummaryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetKPISummary not implemented")
}
func (UnimplementedReportServiceServer) GetTransactionTrends(context.Context, *GetTransactionTrendsRequest) (*GetTransactionTrendsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetTransactionTrends not implemented")
}
func (UnimplementedReportServiceServer) GetTopTransactions(context.Context, *GetTopTransactionsRequest) (*GetTopTransactionsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetTopTransactions not implemented")
}
func (UnimplementedReportServiceServer) GenerateReport(context.Context, *GenerateReportRequest) (*GenerateReportResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GenerateReport not implemented")
}
func (UnimplementedReportServiceServer) GetComplianceMetrics(context.Context, *GetComplianceMetricsRequest) (*GetComplianceMetricsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetComplianceMetrics not implemented")
}
func (UnimplementedReportServiceServer) CheckThresholds(context.Context, *CheckThresholdsRequest) (*CheckThresholdsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CheckThresholds not implemented")
}
func (UnimplementedReportServiceServer) GetComplianceScore(context.Context, *GetComplianceScoreRequest) (*GetComplianceScoreResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetComplianceScore not implemented")
}
func (UnimplementedReportServiceServer) GetComplianceDashboard(context.Context, *GetComplianceDashboardRequest) (*GetComplianceDashboardResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetComplianceDashboard not implemented")
}
func (UnimplementedReportServiceServer) mustEmbedUnimplementedReportServiceServer() {}

type UnsafeReportServiceServer interface {
	mustEmbedUnimplementedReportServiceServer()
}

func RegisterReportServiceServer(s grpc.ServiceRegistrar, srv ReportServiceServer) {
	s.RegisterService(&ReportService_ServiceDesc, srv)
}

func _ReportService_ScoreAccount_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ScoreAccountRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReportServiceServer).ScoreAccount(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/report.ReportService/ScoreAccount",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReportServiceServer).ScoreAccount(ctx, req.(*ScoreAccountRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReportService_GetSuspiciousTransactions_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetSuspiciousTransactionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReportServiceServer).GetSuspiciousTransactions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/report.ReportService/GetSuspiciousTransactions",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReportServiceServer).GetSuspiciousTransactions(ctx, req.(*GetSuspiciousTransactionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReportService_GetDashboardStats_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDashboardStatsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReportServiceServer).GetDashboardStats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/report.ReportService/GetDashboardStats",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReportServiceServer).GetDashboardStats(ctx, req.(*GetDashboardStatsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReportService_GetKPISummary_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetKPISummaryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReportServiceServer).GetKPISummary(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/report.ReportService/GetKPISummary",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReportServiceServer).GetKPISummary(ctx, req.(*GetKPISummaryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReportService_GetTransactionTrends_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetTransactionTrendsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReportServiceServer).GetTransactionTrends(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/report.ReportService/GetTransactionTrends",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReportServiceServer).GetTransactionTrends(ctx, req.(*GetTransactionTrendsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReportService_GetTopTransactions_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetTopTransactionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReportServiceServer).GetTopTransactions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/report.ReportService/GetTopTransactions",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReportServiceServer).GetTopTransactions(ctx, req.(*GetTopTransactionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReportService_GenerateReport_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GenerateReportRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReportServiceServer).GenerateReport(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/report.ReportService/GenerateReport",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReportServiceServer).GenerateReport(ctx, req.(*GenerateReportRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReportService_GetComplianceMetrics_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetComplianceMetricsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReportServiceServer).GetComplianceMetrics(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/report.ReportService/GetComplianceMetrics",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReportServiceServer).GetComplianceMetrics(ctx, req.(*GetComplianceMetricsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReportService_CheckThresholds_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CheckThresholdsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReportServiceServer).CheckThresholds(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/report.ReportService/CheckThresholds",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReportServiceServer).CheckThresholds(ctx, req.(*CheckThresholdsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReportService_GetComplianceScore_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetComplianceScoreRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReportServiceServer).GetComplianceScore(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/report.ReportService/GetComplianceScore",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReportServiceServer).GetComplianceScore(ctx, req.(*GetComplianceScoreRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReportService_GetComplianceDashboard_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetComplianceDashboardRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReportServiceServer).GetComplianceDashboard(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/report.ReportService/GetComplianceDashboard",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReportServiceServer).GetComplianceDashboard(ctx, req.(*GetComplianceDashboardRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var ReportService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "report.ReportService",
	HandlerType: (*ReportServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ScoreAccount",
			Handler:    _ReportService_ScoreAccount_Handler,
		},
		{
			MethodName: "GetSuspiciousTransactions",
			Handler:    _ReportService_GetSuspiciousTransactions_Handler,
		},
		{
			MethodName: "GetDashboardStats",
			Handler:    _ReportService_GetDashboardStats_Handler,
		},
		{
			MethodName: "GetKPISummary",
			Handler:    _ReportService_GetKPISummary_Handler,
		},
		{
			MethodName: "GetTransactionTrends",
			Handler:    _ReportService_GetTransactionTrends_Handler,
		},
		{
			MethodName: "GetTopTransactions",
			Handler:    _ReportService_GetTopTransactions_Handler,
		},
		{
			MethodName: "GenerateReport",
			Handler:    _ReportService_GenerateReport_Handler,
		},
		{
			MethodName: "GetComplianceMetrics",
			Handler:    _ReportService_GetComplianceMetrics_Handler,
		},
		{
			MethodName: "CheckThresholds",
			Handler:    _ReportService_CheckThresholds_Handler,
		},
		{
			MethodName: "GetComplianceScore",
			Handler:    _ReportService_GetComplianceScore_Handler,
		},
		{
			MethodName: "GetComplianceDashboard",
			Handler:    _ReportService_GetComplianceDashboard_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "report.proto",
}
