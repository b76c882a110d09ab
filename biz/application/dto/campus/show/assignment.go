package show

import (
	"campus-show/biz/application/dto/campus/lms"
)

// AssignmentStatus 测评状态描述，告诉学生当前可以做什么
type AssignmentStatus struct {
	State       string `json:"state"` // draft | expired | completed | in_progress | failed | available
	Label       string `json:"label"`
	CanAttempt  bool   `json:"canAttempt"`
	Description string `json:"description"`
}

// AssignmentOverview 批量接口扁平行聚合后的测评概览（教师/管理员视角）
type AssignmentOverview struct {
	Assignment        *lms.Assignment `json:"assignment"`
	Attempts          []*lms.Attempt  `json:"attempts"`
	TotalAttempts     int64           `json:"total_attempts"`
	StudentsAttempted int64           `json:"students_attempted"`
}

type ListAllAssignmentsReq struct {
}

type ListAllAssignmentsResp struct {
	Total       int64                 `json:"total"`
	Assignments []*AssignmentOverview `json:"assignments"`
}

type ListCourseAssignmentsReq struct {
	CourseId string `path:"id" json:"courseId"`
}

// AssignmentWithStatus 学生视角的测评及其状态
type AssignmentWithStatus struct {
	Assignment *lms.Assignment   `json:"assignment"`
	Status     *AssignmentStatus `json:"status"`
}

type ListCourseAssignmentsResp struct {
	Assignments []*AssignmentWithStatus `json:"assignments"`
}

type GetAssignmentReq struct {
	Id string `path:"id" json:"id"`
}

type GetAssignmentResp struct {
	Assignment  *lms.Assignment   `json:"assignment"`
	Status      *AssignmentStatus `json:"status,omitempty"`
	Permissions *PermissionInfo   `json:"permissions,omitempty"`
}

type UpdateAssignmentReq struct {
	Id          string           `path:"id" json:"id"`
	Title       *string          `json:"title,omitempty"`
	Description *string          `json:"description,omitempty"`
	DueDate     *string          `json:"due_date,omitempty"`
	IsPublished *bool            `json:"is_published,omitempty"`
	MaxAttempts *int64           `json:"max_attempts,omitempty"`
	PassScore   *float64         `json:"pass_score,omitempty"`
	// 题目顺序就是题目身份，整体替换而不做局部重排
	Questions []*lms.Question `json:"questions,omitempty"`
}

type DeleteAssignmentReq struct {
	Id string `path:"id" json:"id"`
}

type StartAttemptReq struct {
	Id string `path:"id" json:"id"`
}

type StartAttemptResp struct {
	AttemptId    string `json:"attemptId"`
	SessionToken string `json:"sessionToken"`
	// 限时测评的剩余秒数，不限时为空
	RemainingSeconds *int64 `json:"remainingSeconds,omitempty"`
}

type SubmitAttemptReq struct {
	Id           string `path:"id" json:"id"`
	Answers      []any  `json:"answers"`
	SessionToken string `json:"session_token"`
}

type SubmitAttemptResp struct {
	AttemptId string   `json:"attemptId"`
	Status    string   `json:"status"`
	Score     *float64 `json:"score,omitempty"`
}

type GetMyAttemptsReq struct {
	Id string `path:"id" json:"id"`
}

type GetMyAttemptsResp struct {
	Attempts []*lms.Attempt    `json:"attempts"`
	Status   *AssignmentStatus `json:"status"`
}

type GetAttemptsReq struct {
	Id string `path:"id" json:"id"`
}

type GetAttemptsResp struct {
	Total    int64          `json:"total"`
	Attempts []*lms.Attempt `json:"attempts"`
}

type GetPendingReviewsReq struct {
	Id string `path:"id" json:"id"`
}

type GetPendingReviewsResp struct {
	Attempts []*lms.Attempt `json:"attempts"`
}

type ManualGradeReq struct {
	AttemptId       string  `path:"id" json:"attemptId"`
	Score           float64 `json:"score"`
	GeneralFeedback string  `json:"general_feedback,omitempty"`
}

type SaveDraftReq struct {
	Id      string `path:"id" json:"id"`
	Answers []any  `json:"answers"`
}

type GetDraftReq struct {
	Id string `path:"id" json:"id"`
}

type GetDraftResp struct {
	Answers []any `json:"answers"`
}
