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
	"github.com/jinzhu/copier"
	"github.com/spf13/cast"
)

type ICourseService interface {
	ListCourses(ctx context.Context, req *show.ListCoursesReq) (*show.ListCoursesResp, error)
	CreateCourse(ctx context.Context, req *show.CreateCourseReq) (*show.CreateCourseResp, error)
	GetCourse(ctx context.Context, req *show.GetCourseReq) (*show.GetCourseResp, error)
	UpdateCourse(ctx context.Context, req *show.UpdateCourseReq) (*show.Response, error)
	DeleteCourse(ctx context.Context, req *show.DeleteCourseReq) (*show.Response, error)
	EnrollInCourse(ctx context.Context, req *show.EnrollInCourseReq) (*show.EnrollInCourseResp, error)
	GetCourseEnrollments(ctx context.Context, req *show.GetCourseEnrollmentsReq) (*show.ListEnrollmentsResp, error)
	GetCourseAssignments(ctx context.Context, req *show.GetCourseRelationReq) (*show.GetCourseAssignmentsResp, error)
	GetCourseProgress(ctx context.Context, req *show.GetCourseRelationReq) (*show.GetCourseProgressResp, error)
	GetCourseCertificates(ctx context.Context, req *show.GetCourseRelationReq) (*show.GetCourseCertificatesResp, error)
	GetCourseVirtualClasses(ctx context.Context, req *show.GetCourseRelationReq) (*show.GetCourseVirtualClassesResp, error)
}

type CourseService struct {
	HttpClient *util.HttpClient
}

var CourseServiceSet = wire.NewSet(
	wire.Struct(new(CourseService), "*"),
	wire.Bind(new(ICourseService), new(*CourseService)),
)

// ListCourses 获取课程列表，每门课带上当前用户对它的能力开关
func (s *CourseService) ListCourses(ctx context.Context, req *show.ListCoursesReq) (*show.ListCoursesResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	data, err := s.HttpClient.ListCourses(ctx)
	if err != nil {
		log.CtxError(ctx, "获取课程列表失败: %v", err)
		return nil, err
	}

	var courses []*lms.Course
	if err := lms.Decode(data["courses"], &courses); err != nil {
		log.CtxError(ctx, "解析课程列表失败: %v", err)
		return nil, consts.ErrGetCourseList
	}

	perm := permission.New(meta.GetRole(), meta.GetUserId())
	infos := make([]*show.CourseInfo, 0, len(courses))
	for _, c := range courses {
		infos = append(infos, courseInfo(c, perm))
	}

	return &show.ListCoursesResp{
		Total:   int64(len(infos)),
		Courses: infos,
	}, nil
}

// CreateCourse 创建课程
func (s *CourseService) CreateCourse(ctx context.Context, req *show.CreateCourseReq) (*show.CreateCourseResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	if req.Title == "" {
		return nil, consts.ErrInvalidParams
	}
	perm := permission.New(meta.GetRole(), meta.GetUserId())
	if !perm.CanCreateCourse() {
		return nil, consts.ErrForbidden
	}

	data, err := s.HttpClient.CreateCourse(ctx, map[string]any{
		"title":       req.Title,
		"description": req.Description,
	})
	if err != nil {
		log.CtxError(ctx, "创建课程失败: %v", err)
		return nil, err
	}

	courseId := cast.ToString(data["course_id"])
	log.CtxInfo(ctx, "课程创建成功 [CourseId: %s, InstructorId: %s]", courseId, meta.GetUserId())
	return &show.CreateCourseResp{CourseId: courseId}, nil
}

// GetCourse 获取课程详情
func (s *CourseService) GetCourse(ctx context.Context, req *show.GetCourseReq) (*show.GetCourseResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	course, err := s.fetchCourse(ctx, req.Id)
	if err != nil {
		return nil, err
	}

	perm := permission.New(meta.GetRole(), meta.GetUserId())
	return &show.GetCourseResp{
		Course:      courseInfo(course, perm),
		Permissions: permissionInfo(perm, course.InstructorId),
	}, nil
}

// UpdateCourse 更新课程，仅课程所有者或管理员可操作
func (s *CourseService) UpdateCourse(ctx context.Context, req *show.UpdateCourseReq) (*show.Response, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	course, err := s.fetchCourse(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	perm := permission.New(meta.GetRole(), meta.GetUserId())
	if !perm.CanEditCourse(course.InstructorId) {
		return nil, consts.ErrForbidden
	}

	body := make(map[string]any)
	if req.Title != nil {
		body["title"] = *req.Title
	}
	if req.Description != nil {
		body["description"] = *req.Description
	}
	if req.IsPublished != nil {
		body["is_published"] = *req.IsPublished
	}
	if len(body) == 0 {
		return nil, consts.ErrInvalidParams
	}

	if _, err := s.HttpClient.UpdateCourse(ctx, req.Id, body); err != nil {
		log.CtxError(ctx, "更新课程失败: %v", err)
		return nil, err
	}
	return &show.Response{Success: true, Msg: "更新成功"}, nil
}

// DeleteCourse 删除课程
func (s *CourseService) DeleteCourse(ctx context.Context, req *show.DeleteCourseReq) (*show.Response, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	course, err := s.fetchCourse(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	perm := permission.New(meta.GetRole(), meta.GetUserId())
	if !perm.CanDeleteCourse(course.InstructorId) {
		return nil, consts.ErrForbidden
	}

	if _, err := s.HttpClient.DeleteCourse(ctx, req.Id); err != nil {
		log.CtxError(ctx, "删除课程失败: %v", err)
		return nil, err
	}

	log.CtxInfo(ctx, "课程已删除 [CourseId: %s, OperatorId: %s]", req.Id, meta.GetUserId())
	return &show.Response{Success: true, Msg: "删除成功"}, nil
}

// EnrollInCourse 学生报名课程，报名后进入待审批状态
func (s *CourseService) EnrollInCourse(ctx context.Context, req *show.EnrollInCourseReq) (*show.EnrollInCourseResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	perm := permission.New(meta.GetRole(), meta.GetUserId())
	if !perm.CanEnroll() {
		return nil, consts.ErrForbidden
	}

	data, err := s.HttpClient.EnrollInCourse(ctx, req.Id)
	if err != nil {
		log.CtxError(ctx, "报名课程失败: %v", err)
		return nil, err
	}

	enrollment := new(lms.Enrollment)
	if err := lms.Decode(data["enrollment"], enrollment); err != nil {
		log.CtxError(ctx, "解析报名结果失败: %v", err)
		return nil, consts.ErrEnroll
	}

	log.CtxInfo(ctx, "课程报名成功 [CourseId: %s, StudentId: %s, EnrollmentId: %s]",
		req.Id, meta.GetUserId(), enrollment.Id)
	return &show.EnrollInCourseResp{
		EnrollmentId: enrollment.Id,
		Status:       enrollment.Status,
	}, nil
}

// GetCourseEnrollments 课程视角查看报名记录，仅课程所有者或管理员可看
func (s *CourseService) GetCourseEnrollments(ctx context.Context, req *show.GetCourseEnrollmentsReq) (*show.ListEnrollmentsResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	course, err := s.fetchCourse(ctx, req.CourseId)
	if err != nil {
		return nil, err
	}
	perm := permission.New(meta.GetRole(), meta.GetUserId())
	if !perm.CanManageEnrollments(course.InstructorId) {
		return nil, consts.ErrForbidden
	}

	data, err := s.HttpClient.GetCourseEnrollments(ctx, req.CourseId)
	if err != nil {
		log.CtxError(ctx, "获取课程报名记录失败: %v", err)
		return nil, err
	}
	return decodeEnrollments(data)
}

// GetCourseAssignments 获取课程下的测评原始列表，不做状态推导
func (s *CourseService) GetCourseAssignments(ctx context.Context, req *show.GetCourseRelationReq) (*show.GetCourseAssignmentsResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	data, err := s.HttpClient.GetCourseAssignments(ctx, req.Id)
	if err != nil {
		log.CtxError(ctx, "获取课程测评失败: %v", err)
		return nil, err
	}

	var assignments []*lms.Assignment
	if err := lms.Decode(data["assignments"], &assignments); err != nil {
		return nil, consts.ErrGetAssignmentList
	}
	return &show.GetCourseAssignmentsResp{Assignments: assignments}, nil
}

// GetCourseProgress 获取课程学习进度
func (s *CourseService) GetCourseProgress(ctx context.Context, req *show.GetCourseRelationReq) (*show.GetCourseProgressResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	data, err := s.HttpClient.GetCourseProgress(ctx, req.Id)
	if err != nil {
		log.CtxError(ctx, "获取学习进度失败: %v", err)
		return nil, err
	}

	var progress []*lms.Progress
	if err := lms.Decode(data["progress"], &progress); err != nil {
		return nil, consts.ErrGetProgress
	}
	return &show.GetCourseProgressResp{Progress: progress}, nil
}

// GetCourseCertificates 获取课程证书
func (s *CourseService) GetCourseCertificates(ctx context.Context, req *show.GetCourseRelationReq) (*show.GetCourseCertificatesResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	data, err := s.HttpClient.GetCourseCertificates(ctx, req.Id)
	if err != nil {
		log.CtxError(ctx, "获取证书失败: %v", err)
		return nil, err
	}

	var certificates []*lms.Certificate
	if err := lms.Decode(data["certificates"], &certificates); err != nil {
		return nil, consts.ErrGetCertificates
	}
	return &show.GetCourseCertificatesResp{Certificates: certificates}, nil
}

// GetCourseVirtualClasses 获取课程在线课堂
func (s *CourseService) GetCourseVirtualClasses(ctx context.Context, req *show.GetCourseRelationReq) (*show.GetCourseVirtualClassesResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	data, err := s.HttpClient.GetCourseVirtualClasses(ctx, req.Id)
	if err != nil {
		log.CtxError(ctx, "获取在线课堂失败: %v", err)
		return nil, err
	}

	var classes []*lms.VirtualClass
	if err := lms.Decode(data["virtual_classes"], &classes); err != nil {
		return nil, consts.ErrCall
	}
	return &show.GetCourseVirtualClassesResp{VirtualClasses: classes}, nil
}

// fetchCourse 获取课程详情的公共路径，所有者校验前都要先拿到课程
func (s *CourseService) fetchCourse(ctx context.Context, id string) (*lms.Course, error) {
	data, err := s.HttpClient.GetCourse(ctx, id)
	if err != nil {
		log.CtxError(ctx, "获取课程详情失败: %v", err)
		return nil, err
	}

	course := new(lms.Course)
	if err := lms.Decode(data["course"], course); err != nil {
		log.CtxError(ctx, "解析课程详情失败: %v", err)
		return nil, consts.ErrGetCourseList
	}
	return course, nil
}

func courseInfo(c *lms.Course, perm *permission.Resolver) *show.CourseInfo {
	info := new(show.CourseInfo)
	_ = copier.Copy(info, c)
	if c.CreatedAt != nil {
		info.CreateTime = c.CreatedAt.Unix()
	}
	info.Permissions = permissionInfo(perm, c.InstructorId)
	return info
}

// permissionInfo 能力开关展开成响应结构
func permissionInfo(perm *permission.Resolver, ownerId string) *show.PermissionInfo {
	info := new(show.PermissionInfo)
	_ = copier.Copy(info, perm.Flags(ownerId))
	return info
}
