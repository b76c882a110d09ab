package service

import (
	"context"

	"campus-show/biz/adaptor"
	"campus-show/biz/application/dto/campus/lms"
	"campus-show/biz/application/dto/campus/show"
	"campus-show/biz/infrastructure/consts"
	"campus-show/biz/infrastructure/util"
	"campus-show/biz/infrastructure/util/log"
	"campus-show/biz/infrastructure/util/permission"

	"github.com/google/wire"
	"github.com/spf13/cast"
)

type IEnrollmentService interface {
	ListAllEnrollments(ctx context.Context, req *show.ListAllEnrollmentsReq) (*show.ListEnrollmentsResp, error)
	GetStudentEnrollments(ctx context.Context, req *show.GetStudentEnrollmentsReq) (*show.ListEnrollmentsResp, error)
	GetCourseEnrollments(ctx context.Context, req *show.GetCourseEnrollmentsReq) (*show.ListEnrollmentsResp, error)
	EnrollCourse(ctx context.Context, req *show.EnrollCourseReq) (*show.EnrollCourseResp, error)
	ApproveEnrollment(ctx context.Context, req *show.ApproveEnrollmentReq) (*show.Response, error)
	RejectEnrollment(ctx context.Context, req *show.RejectEnrollmentReq) (*show.Response, error)
	BulkEnroll(ctx context.Context, req *show.BulkEnrollReq) (*show.BulkEnrollResp, error)
	UpdateEnrollment(ctx context.Context, req *show.UpdateEnrollmentReq) (*show.Response, error)
	CancelEnrollment(ctx context.Context, req *show.CancelEnrollmentReq) (*show.Response, error)
	GetEnrollmentStats(ctx context.Context, req *show.ListAllEnrollmentsReq) (*show.GetEnrollmentStatsResp, error)
}

type EnrollmentService struct {
	HttpClient *util.HttpClient
}

var EnrollmentServiceSet = wire.NewSet(
	wire.Struct(new(EnrollmentService), "*"),
	wire.Bind(new(IEnrollmentService), new(*EnrollmentService)),
)

// ListAllEnrollments 查看全部报名记录，仅管理员可用
func (s *EnrollmentService) ListAllEnrollments(ctx context.Context, req *show.ListAllEnrollmentsReq) (*show.ListEnrollmentsResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	perm := permission.New(meta.GetRole(), meta.GetUserId())
	if !perm.CanManageStudents() {
		return nil, consts.ErrForbidden
	}

	data, err := s.HttpClient.ListAllEnrollments(ctx)
	if err != nil {
		log.CtxError(ctx, "获取报名记录失败: %v", err)
		return nil, err
	}
	return decodeEnrollments(data)
}

// GetStudentEnrollments 查看某学生的报名记录，本人或管理员可用
func (s *EnrollmentService) GetStudentEnrollments(ctx context.Context, req *show.GetStudentEnrollmentsReq) (*show.ListEnrollmentsResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	perm := permission.New(meta.GetRole(), meta.GetUserId())
	if req.StudentId != meta.GetUserId() && !perm.CanManageStudents() {
		return nil, consts.ErrForbidden
	}

	data, err := s.HttpClient.GetStudentEnrollments(ctx, req.StudentId)
	if err != nil {
		log.CtxError(ctx, "获取学生报名记录失败: %v", err)
		return nil, err
	}
	return decodeEnrollments(data)
}

// GetCourseEnrollments 查看课程报名记录，教师/管理员可用
func (s *EnrollmentService) GetCourseEnrollments(ctx context.Context, req *show.GetCourseEnrollmentsReq) (*show.ListEnrollmentsResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	perm := permission.New(meta.GetRole(), meta.GetUserId())
	if !perm.CanApproveEnrollments() {
		return nil, consts.ErrForbidden
	}

	data, err := s.HttpClient.GetEnrollmentsByCourse(ctx, req.CourseId)
	if err != nil {
		log.CtxError(ctx, "获取课程报名记录失败: %v", err)
		return nil, err
	}
	return decodeEnrollments(data)
}

// EnrollCourse 学生报名课程
func (s *EnrollmentService) EnrollCourse(ctx context.Context, req *show.EnrollCourseReq) (*show.EnrollCourseResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	perm := permission.New(meta.GetRole(), meta.GetUserId())
	if !perm.CanEnroll() {
		return nil, consts.ErrForbidden
	}

	data, err := s.HttpClient.EnrollCourse(ctx, req.CourseId)
	if err != nil {
		log.CtxError(ctx, "报名课程失败: %v", err)
		return nil, err
	}

	enrollment := new(lms.Enrollment)
	if err := lms.Decode(data["enrollment"], enrollment); err != nil {
		return nil, consts.ErrEnroll
	}
	return &show.EnrollCourseResp{
		EnrollmentId: enrollment.Id,
		Status:       enrollment.Status,
	}, nil
}

// ApproveEnrollment 审批通过报名
func (s *EnrollmentService) ApproveEnrollment(ctx context.Context, req *show.ApproveEnrollmentReq) (*show.Response, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	perm := permission.New(meta.GetRole(), meta.GetUserId())
	if !perm.CanApproveEnrollments() {
		return nil, consts.ErrForbidden
	}

	if _, err := s.HttpClient.ApproveEnrollment(ctx, req.Id); err != nil {
		log.CtxError(ctx, "审批报名失败: %v", err)
		return nil, err
	}

	log.CtxInfo(ctx, "报名已通过 [EnrollmentId: %s, OperatorId: %s]", req.Id, meta.GetUserId())
	return &show.Response{Success: true, Msg: "审批通过"}, nil
}

// RejectEnrollment 驳回报名
func (s *EnrollmentService) RejectEnrollment(ctx context.Context, req *show.RejectEnrollmentReq) (*show.Response, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	perm := permission.New(meta.GetRole(), meta.GetUserId())
	if !perm.CanApproveEnrollments() {
		return nil, consts.ErrForbidden
	}

	if _, err := s.HttpClient.RejectEnrollment(ctx, req.Id, req.Reason); err != nil {
		log.CtxError(ctx, "驳回报名失败: %v", err)
		return nil, err
	}

	log.CtxInfo(ctx, "报名已驳回 [EnrollmentId: %s, OperatorId: %s]", req.Id, meta.GetUserId())
	return &show.Response{Success: true, Msg: "已驳回"}, nil
}

// BulkEnroll 批量报名，返回成功和失败的条数
func (s *EnrollmentService) BulkEnroll(ctx context.Context, req *show.BulkEnrollReq) (*show.BulkEnrollResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	perm := permission.New(meta.GetRole(), meta.GetUserId())
	if !perm.CanApproveEnrollments() {
		return nil, consts.ErrForbidden
	}
	if req.CourseId == "" || len(req.StudentIds) == 0 {
		return nil, consts.ErrInvalidParams
	}

	data, err := s.HttpClient.BulkEnroll(ctx, req.CourseId, req.StudentIds)
	if err != nil {
		log.CtxError(ctx, "批量报名失败: %v", err)
		return nil, err
	}

	return &show.BulkEnrollResp{
		Enrolled: cast.ToInt64(data["enrolled"]),
		Failed:   cast.ToInt64(data["failed"]),
	}, nil
}

// UpdateEnrollment 修改报名状态
func (s *EnrollmentService) UpdateEnrollment(ctx context.Context, req *show.UpdateEnrollmentReq) (*show.Response, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	perm := permission.New(meta.GetRole(), meta.GetUserId())
	if !perm.CanApproveEnrollments() {
		return nil, consts.ErrForbidden
	}
	switch req.Status {
	case consts.EnrollmentPending, consts.EnrollmentApproved, consts.EnrollmentRejected:
	default:
		return nil, consts.ErrInvalidParams
	}

	if _, err := s.HttpClient.UpdateEnrollment(ctx, req.Id, req.Status); err != nil {
		log.CtxError(ctx, "更新报名状态失败: %v", err)
		return nil, err
	}
	return &show.Response{Success: true, Msg: "更新成功"}, nil
}

// CancelEnrollment 取消报名，本人取消或管理端移除都走这里，归属校验由上游负责
func (s *EnrollmentService) CancelEnrollment(ctx context.Context, req *show.CancelEnrollmentReq) (*show.Response, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	if _, err := s.HttpClient.DeleteEnrollment(ctx, req.Id); err != nil {
		log.CtxError(ctx, "取消报名失败: %v", err)
		return nil, err
	}
	return &show.Response{Success: true, Msg: "已取消"}, nil
}

// GetEnrollmentStats 获取报名统计
func (s *EnrollmentService) GetEnrollmentStats(ctx context.Context, req *show.ListAllEnrollmentsReq) (*show.GetEnrollmentStatsResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	perm := permission.New(meta.GetRole(), meta.GetUserId())
	if !perm.CanApproveEnrollments() {
		return nil, consts.ErrForbidden
	}

	data, err := s.HttpClient.GetEnrollmentStats(ctx)
	if err != nil {
		log.CtxError(ctx, "获取报名统计失败: %v", err)
		return nil, err
	}

	stats := new(lms.EnrollmentStats)
	if err := lms.Decode(data["stats"], stats); err != nil {
		return nil, consts.ErrGetStats
	}
	return &show.GetEnrollmentStatsResp{Stats: stats}, nil
}

func decodeEnrollments(data map[string]any) (*show.ListEnrollmentsResp, error) {
	var enrollments []*lms.Enrollment
	if err := lms.Decode(data["enrollments"], &enrollments); err != nil {
		return nil, consts.ErrGetEnrollments
	}
	return &show.ListEnrollmentsResp{
		Total:       int64(len(enrollments)),
		Enrollments: enrollments,
	}, nil
}
