package service

import (
	"context"
	"fmt"
	"time"

	"campus-show/biz/adaptor"
	"campus-show/biz/application/dto/campus/lms"
	"campus-show/biz/application/dto/campus/show"
	"campus-show/biz/infrastructure/cache"
	"campus-show/biz/infrastructure/consts"
	"campus-show/biz/infrastructure/lock"
	"campus-show/biz/infrastructure/util"
	"campus-show/biz/infrastructure/util/assignment"
	"campus-show/biz/infrastructure/util/countdown"
	"campus-show/biz/infrastructure/util/log"
	"campus-show/biz/infrastructure/util/permission"

	"github.com/google/wire"
	"github.com/samber/lo"
	"github.com/spf13/cast"
	gozero_redis "github.com/zeromicro/go-zero/core/stores/redis"
)

type IAssignmentService interface {
	ListAllAssignments(ctx context.Context, req *show.ListAllAssignmentsReq) (*show.ListAllAssignmentsResp, error)
	ListCourseAssignments(ctx context.Context, req *show.ListCourseAssignmentsReq) (*show.ListCourseAssignmentsResp, error)
	GetAssignment(ctx context.Context, req *show.GetAssignmentReq) (*show.GetAssignmentResp, error)
	UpdateAssignment(ctx context.Context, req *show.UpdateAssignmentReq) (*show.Response, error)
	DeleteAssignment(ctx context.Context, req *show.DeleteAssignmentReq) (*show.Response, error)
	StartAttempt(ctx context.Context, req *show.StartAttemptReq) (*show.StartAttemptResp, error)
	SubmitAttempt(ctx context.Context, req *show.SubmitAttemptReq) (*show.SubmitAttemptResp, error)
	GetMyAttempts(ctx context.Context, req *show.GetMyAttemptsReq) (*show.GetMyAttemptsResp, error)
	GetAttempts(ctx context.Context, req *show.GetAttemptsReq) (*show.GetAttemptsResp, error)
	GetPendingReviews(ctx context.Context, req *show.GetPendingReviewsReq) (*show.GetPendingReviewsResp, error)
	ManualGrade(ctx context.Context, req *show.ManualGradeReq) (*show.Response, error)
	SaveDraft(ctx context.Context, req *show.SaveDraftReq) (*show.Response, error)
	GetDraft(ctx context.Context, req *show.GetDraftReq) (*show.GetDraftResp, error)
}

type AssignmentService struct {
	HttpClient       *util.HttpClient
	DraftCacheMapper *cache.DraftCacheMapper
	Countdowns       *countdown.Registry
	Redis            *gozero_redis.Redis
}

var AssignmentServiceSet = wire.NewSet(
	wire.Struct(new(AssignmentService), "*"),
	wire.Bind(new(IAssignmentService), new(*AssignmentService)),
)

// ListAllAssignments 批量获取全部测评(教师/管理员)
// 上游返回扁平行，这里聚合成 测评->作答列表 并统计人数
func (s *AssignmentService) ListAllAssignments(ctx context.Context, req *show.ListAllAssignmentsReq) (*show.ListAllAssignmentsResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	perm := permission.New(meta.GetRole(), meta.GetUserId())
	if !perm.CanViewAllAssignments() {
		return nil, consts.ErrForbidden
	}

	data, err := s.HttpClient.ListAllAssignments(ctx)
	if err != nil {
		log.CtxError(ctx, "获取测评批量数据失败: %v", err)
		return nil, err
	}

	var rows []*lms.AssignmentRow
	if err := lms.Decode(data["assignments"], &rows); err != nil {
		log.CtxError(ctx, "解析测评批量数据失败: %v", err)
		return nil, consts.ErrGetAssignmentList
	}

	groups := assignment.Flatten(rows)
	overviews := lo.Map(groups, func(g *assignment.Group, _ int) *show.AssignmentOverview {
		return &show.AssignmentOverview{
			Assignment:        g.Assignment,
			Attempts:          g.Attempts,
			TotalAttempts:     g.TotalAttempts,
			StudentsAttempted: g.StudentsAttempted,
		}
	})

	return &show.ListAllAssignmentsResp{
		Total:       int64(len(overviews)),
		Assignments: overviews,
	}, nil
}

// ListCourseAssignments 获取课程下的测评列表
// 学生视角附带按本人作答推导出的状态
func (s *AssignmentService) ListCourseAssignments(ctx context.Context, req *show.ListCourseAssignmentsReq) (*show.ListCourseAssignmentsResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	data, err := s.HttpClient.GetAssignmentsByCourse(ctx, req.CourseId)
	if err != nil {
		log.CtxError(ctx, "获取课程测评列表失败: %v", err)
		return nil, err
	}

	var assignments []*lms.Assignment
	if err := lms.Decode(data["assignments"], &assignments); err != nil {
		log.CtxError(ctx, "解析课程测评列表失败: %v", err)
		return nil, consts.ErrGetAssignmentList
	}

	perm := permission.New(meta.GetRole(), meta.GetUserId())
	now := time.Now()
	infos := make([]*show.AssignmentWithStatus, 0, len(assignments))
	for _, a := range assignments {
		attempts := make([]*lms.Attempt, 0)
		// 只有学生需要用本人作答推导状态
		if perm.CanTakeAssignment() {
			atData, err := s.HttpClient.GetMyAttempts(ctx, a.Id)
			if err != nil {
				log.CtxError(ctx, "获取本人作答失败 [AssignmentId: %s]: %v", a.Id, err)
				return nil, err
			}
			if err := lms.Decode(atData["attempts"], &attempts); err != nil {
				log.CtxError(ctx, "解析本人作答失败: %v", err)
				return nil, consts.ErrGetAttempts
			}
		}
		infos = append(infos, &show.AssignmentWithStatus{
			Assignment: a,
			Status:     toStatusInfo(assignment.ResolveStatus(a, attempts, now)),
		})
	}

	return &show.ListCourseAssignmentsResp{Assignments: infos}, nil
}

// GetAssignment 获取测评详情
func (s *AssignmentService) GetAssignment(ctx context.Context, req *show.GetAssignmentReq) (*show.GetAssignmentResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	data, err := s.HttpClient.GetAssignment(ctx, req.Id)
	if err != nil {
		log.CtxError(ctx, "获取测评详情失败: %v", err)
		return nil, err
	}

	a := new(lms.Assignment)
	if err := lms.Decode(data["assignment"], a); err != nil {
		log.CtxError(ctx, "解析测评详情失败: %v", err)
		return nil, consts.ErrGetAssignment
	}

	perm := permission.New(meta.GetRole(), meta.GetUserId())
	resp := &show.GetAssignmentResp{
		Assignment:  a,
		Permissions: permissionInfo(perm, a.CreatedBy),
	}

	// 学生视角附带状态
	if perm.CanTakeAssignment() {
		atData, err := s.HttpClient.GetMyAttempts(ctx, req.Id)
		if err != nil {
			return nil, err
		}
		var attempts []*lms.Attempt
		if err := lms.Decode(atData["attempts"], &attempts); err != nil {
			return nil, consts.ErrGetAttempts
		}
		resp.Status = toStatusInfo(assignment.ResolveStatus(a, attempts, time.Now()))
	}

	return resp, nil
}

// UpdateAssignment 更新测评，题目整体替换以保持下标与题目的对应关系
func (s *AssignmentService) UpdateAssignment(ctx context.Context, req *show.UpdateAssignmentReq) (*show.Response, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	perm := permission.New(meta.GetRole(), meta.GetUserId())
	if !perm.CanManageAssignments() {
		return nil, consts.ErrForbidden
	}

	body := make(map[string]any)
	if req.Title != nil {
		body["title"] = *req.Title
	}
	if req.Description != nil {
		body["description"] = *req.Description
	}
	if req.DueDate != nil {
		body["due_date"] = *req.DueDate
	}
	if req.IsPublished != nil {
		body["is_published"] = *req.IsPublished
	}
	if req.MaxAttempts != nil {
		body["max_attempts"] = *req.MaxAttempts
	}
	if req.PassScore != nil {
		body["pass_score"] = *req.PassScore
	}
	if req.Questions != nil {
		body["questions"] = req.Questions
	}
	if len(body) == 0 {
		return nil, consts.ErrInvalidParams
	}

	if _, err := s.HttpClient.UpdateAssignment(ctx, req.Id, body); err != nil {
		log.CtxError(ctx, "更新测评失败: %v", err)
		return nil, err
	}
	return &show.Response{Success: true, Msg: "更新成功"}, nil
}

// DeleteAssignment 删除测评
func (s *AssignmentService) DeleteAssignment(ctx context.Context, req *show.DeleteAssignmentReq) (*show.Response, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	perm := permission.New(meta.GetRole(), meta.GetUserId())
	if !perm.CanManageAssignments() {
		return nil, consts.ErrForbidden
	}

	if _, err := s.HttpClient.DeleteAssignment(ctx, req.Id); err != nil {
		log.CtxError(ctx, "删除测评失败: %v", err)
		return nil, err
	}
	return &show.Response{Success: true, Msg: "删除成功"}, nil
}

// StartAttempt 学生开始作答
// 先用状态推导确认可作答，限时测评同时登记到期自动提交
func (s *AssignmentService) StartAttempt(ctx context.Context, req *show.StartAttemptReq) (*show.StartAttemptResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	perm := permission.New(meta.GetRole(), meta.GetUserId())
	if !perm.CanTakeAssignment() {
		return nil, consts.ErrForbidden
	}

	aData, err := s.HttpClient.GetAssignment(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	a := new(lms.Assignment)
	if err := lms.Decode(aData["assignment"], a); err != nil {
		return nil, consts.ErrGetAssignment
	}

	atData, err := s.HttpClient.GetMyAttempts(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	var attempts []*lms.Attempt
	if err := lms.Decode(atData["attempts"], &attempts); err != nil {
		return nil, consts.ErrGetAttempts
	}

	st := assignment.ResolveStatus(a, attempts, time.Now())
	if !st.CanAttempt {
		log.CtxInfo(ctx, "测评不可作答 [AssignmentId: %s, State: %s]", req.Id, st.State)
		return nil, consts.ErrAttemptNotAllowed
	}

	data, err := s.HttpClient.StartAttempt(ctx, req.Id)
	if err != nil {
		log.CtxError(ctx, "开始测评失败: %v", err)
		return nil, err
	}

	resp := &show.StartAttemptResp{
		AttemptId:    cast.ToString(data["attempt_id"]),
		SessionToken: cast.ToString(data["session_token"]),
	}

	// 限时测评登记倒计时，到点自动提交草稿
	if a.TimeLimitMinutes != nil && *a.TimeLimitMinutes > 0 {
		userId := meta.GetUserId()
		sessionToken := resp.SessionToken
		deadline := time.Now().Add(time.Duration(*a.TimeLimitMinutes) * time.Minute)
		runner := countdown.New(deadline, nil, nil)
		s.Countdowns.Put(countdownKey(userId, req.Id), runner)
		runner.Start(func() {
			s.autoSubmit(userId, req.Id, sessionToken)
		})
		remaining := int64(runner.Remaining().Seconds())
		resp.RemainingSeconds = &remaining
	}

	log.CtxInfo(ctx, "测评开始作答 [AttemptId: %s, StudentId: %s, AssignmentId: %s]",
		resp.AttemptId, meta.GetUserId(), req.Id)
	return resp, nil
}

// SubmitAttempt 学生手动提交
func (s *AssignmentService) SubmitAttempt(ctx context.Context, req *show.SubmitAttemptReq) (*show.SubmitAttemptResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	perm := permission.New(meta.GetRole(), meta.GetUserId())
	if !perm.CanTakeAssignment() {
		return nil, consts.ErrForbidden
	}
	if req.SessionToken == "" {
		return nil, consts.ErrInvalidParams
	}

	data, err := s.submit(ctx, meta.GetUserId(), req.Id, req.SessionToken, req.Answers)
	if err != nil {
		log.CtxError(ctx, "提交测评失败: %v", err)
		return nil, err
	}

	at := new(lms.Attempt)
	if err := lms.Decode(data["attempt"], at); err != nil {
		return nil, consts.ErrSubmitAttempt
	}
	return &show.SubmitAttemptResp{
		AttemptId: at.Id,
		Status:    at.Status,
		Score:     at.Score,
	}, nil
}

// submit 提交的公共路径，自动提交和手动提交都走这里
// redis互斥锁保证同一测评同一时刻只有一次提交落到上游
func (s *AssignmentService) submit(ctx context.Context, userId, assignmentId, sessionToken string, answers []any) (map[string]any, error) {
	mutex := lock.NewSubmitMutex(ctx, s.Redis, "submit:"+userId+":"+assignmentId, consts.SubmitLockTTLSeconds)
	if err := mutex.Lock(); err != nil {
		return nil, err
	}
	defer func() {
		if err := mutex.Unlock(); err != nil || mutex.Expired() {
			log.Error("unlock error: %v, lock expired: %v", err, mutex.Expired())
		}
	}()

	data, err := s.HttpClient.SubmitAttempt(ctx, assignmentId, answers, sessionToken)
	if err != nil {
		return nil, err
	}

	// 提交成功后清掉草稿并停掉倒计时
	if err := s.DraftCacheMapper.Delete(ctx, userId, assignmentId); err != nil {
		log.Error("清除草稿失败 [UserId: %s, AssignmentId: %s]: %v", userId, assignmentId, err)
	}
	s.Countdowns.Cancel(countdownKey(userId, assignmentId))
	return data, nil
}

// autoSubmit 限时到期的自动提交，交草稿里的答案，没有草稿就交空卷
func (s *AssignmentService) autoSubmit(userId, assignmentId, sessionToken string) {
	ctx := context.Background()
	defer s.Countdowns.Remove(countdownKey(userId, assignmentId))

	answers, err := s.DraftCacheMapper.Get(ctx, userId, assignmentId)
	if err != nil {
		answers = []any{}
	}
	if _, err := s.submit(ctx, userId, assignmentId, sessionToken, answers); err != nil {
		log.Error("自动提交失败 [UserId: %s, AssignmentId: %s]: %v", userId, assignmentId, err)
		return
	}
	log.Info("限时到期已自动提交 [UserId: %s, AssignmentId: %s]", userId, assignmentId)
}

// GetMyAttempts 获取本人作答记录及推导状态
func (s *AssignmentService) GetMyAttempts(ctx context.Context, req *show.GetMyAttemptsReq) (*show.GetMyAttemptsResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	aData, err := s.HttpClient.GetAssignment(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	a := new(lms.Assignment)
	if err := lms.Decode(aData["assignment"], a); err != nil {
		return nil, consts.ErrGetAssignment
	}

	data, err := s.HttpClient.GetMyAttempts(ctx, req.Id)
	if err != nil {
		log.CtxError(ctx, "获取作答记录失败: %v", err)
		return nil, err
	}
	var attempts []*lms.Attempt
	if err := lms.Decode(data["attempts"], &attempts); err != nil {
		return nil, consts.ErrGetAttempts
	}

	return &show.GetMyAttemptsResp{
		Attempts: attempts,
		Status:   toStatusInfo(assignment.ResolveStatus(a, attempts, time.Now())),
	}, nil
}

// GetAttempts 教师查看某测评的全部作答
func (s *AssignmentService) GetAttempts(ctx context.Context, req *show.GetAttemptsReq) (*show.GetAttemptsResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	perm := permission.New(meta.GetRole(), meta.GetUserId())
	if !perm.CanReviewAttempts() {
		return nil, consts.ErrForbidden
	}

	data, err := s.HttpClient.GetAttempts(ctx, req.Id)
	if err != nil {
		log.CtxError(ctx, "获取作答记录失败: %v", err)
		return nil, err
	}
	var attempts []*lms.Attempt
	if err := lms.Decode(data["attempts"], &attempts); err != nil {
		return nil, consts.ErrGetAttempts
	}

	return &show.GetAttemptsResp{
		Total:    int64(len(attempts)),
		Attempts: attempts,
	}, nil
}

// GetPendingReviews 获取待人工评分的作答
func (s *AssignmentService) GetPendingReviews(ctx context.Context, req *show.GetPendingReviewsReq) (*show.GetPendingReviewsResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	perm := permission.New(meta.GetRole(), meta.GetUserId())
	if !perm.CanReviewAttempts() {
		return nil, consts.ErrForbidden
	}

	data, err := s.HttpClient.GetPendingReviews(ctx, req.Id)
	if err != nil {
		log.CtxError(ctx, "获取待评分作答失败: %v", err)
		return nil, err
	}
	var attempts []*lms.Attempt
	if err := lms.Decode(data["attempts"], &attempts); err != nil {
		return nil, consts.ErrGetAttempts
	}

	return &show.GetPendingReviewsResp{Attempts: attempts}, nil
}

// ManualGrade 人工评分
func (s *AssignmentService) ManualGrade(ctx context.Context, req *show.ManualGradeReq) (*show.Response, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	perm := permission.New(meta.GetRole(), meta.GetUserId())
	if !perm.CanReviewAttempts() {
		return nil, consts.ErrForbidden
	}
	if req.Score < 0 {
		return nil, consts.ErrInvalidParams
	}

	if _, err := s.HttpClient.ManualGrade(ctx, req.AttemptId, req.Score, req.GeneralFeedback); err != nil {
		log.CtxError(ctx, "人工评分失败: %v", err)
		return nil, err
	}

	log.CtxInfo(ctx, "人工评分完成 [AttemptId: %s, Score: %v, GraderId: %s]",
		req.AttemptId, req.Score, meta.GetUserId())
	return &show.Response{Success: true, Msg: "评分完成"}, nil
}

// SaveDraft 保存作答草稿
func (s *AssignmentService) SaveDraft(ctx context.Context, req *show.SaveDraftReq) (*show.Response, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	perm := permission.New(meta.GetRole(), meta.GetUserId())
	if !perm.CanTakeAssignment() {
		return nil, consts.ErrForbidden
	}

	if err := s.DraftCacheMapper.Set(ctx, meta.GetUserId(), req.Id, req.Answers); err != nil {
		log.CtxError(ctx, "保存草稿失败: %v", err)
		return nil, consts.ErrSaveDraft
	}
	return &show.Response{Success: true, Msg: "草稿已保存"}, nil
}

// GetDraft 读取作答草稿，没有草稿返回空答案
func (s *AssignmentService) GetDraft(ctx context.Context, req *show.GetDraftReq) (*show.GetDraftResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	answers, err := s.DraftCacheMapper.Get(ctx, meta.GetUserId(), req.Id)
	if err != nil {
		return &show.GetDraftResp{Answers: []any{}}, nil
	}
	return &show.GetDraftResp{Answers: answers}, nil
}

func countdownKey(userId, assignmentId string) string {
	return fmt.Sprintf("%s:%s", userId, assignmentId)
}

// toStatusInfo 推导结果转响应结构
func toStatusInfo(st *assignment.Status) *show.AssignmentStatus {
	return &show.AssignmentStatus{
		State:       st.State,
		Label:       st.Label,
		CanAttempt:  st.CanAttempt,
		Description: st.Description,
	}
}
