package lms

import "time"

// 上游LMS后端返回的测评相关数据结构
// 字段是否存在取决于上游join情况，可空字段一律用指针表达，使用前必须判空

type Question struct {
	Id       string  `json:"id"`
	Type     string  `json:"type"` // multiple_choice | true_false | short_text | essay
	Question string  `json:"question"`
	Points   float64 `json:"points"`
	// 选项可能是字符串数组，也可能是{id,label}对象数组，原样透传给前端
	Options      []any `json:"options,omitempty"`
	CorrectIndex *int  `json:"correct_index,omitempty"`
	MinWords     *int  `json:"min_words,omitempty"`
}

type Assignment struct {
	Id          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	CourseId    string  `json:"course_id"`
	// 上游冗余下发的创建者id，可能为空
	CreatedBy string  `json:"created_by,omitempty"`
	MaxPoints float64 `json:"max_points"`
	// 为空表示不限时
	TimeLimitMinutes *int64     `json:"time_limit_minutes,omitempty"`
	DueDate          *time.Time `json:"due_date,omitempty"`
	IsPublished      bool       `json:"is_published"`
	// 为空或非正数表示不限次数
	MaxAttempts *int64   `json:"max_attempts,omitempty"`
	PassScore   *float64 `json:"pass_score,omitempty"`
	// 题目顺序即题目身份，作答按下标对应
	Questions []*Question `json:"questions,omitempty"`
}

type AnswerDetail struct {
	QuestionIndex int      `json:"question_index"`
	Answer        any      `json:"answer,omitempty"`
	Correct       *bool    `json:"correct,omitempty"`
	Points        *float64 `json:"points,omitempty"`
	Feedback      string   `json:"feedback,omitempty"`
}

type AttemptMetadata struct {
	GeneralFeedback string          `json:"general_feedback,omitempty"`
	AnswerDetails   []*AnswerDetail `json:"answer_details,omitempty"`
}

type Attempt struct {
	Id           string `json:"id"`
	AssignmentId string `json:"assignment_id"`
	StudentId    string `json:"student_id"`
	Status       string `json:"status"` // in_progress | submitted | pending_review | completed
	// 仅在status为completed时有意义，评分前不可当作成绩读取
	Score       *float64         `json:"score,omitempty"`
	StartedAt   *time.Time       `json:"started_at,omitempty"`
	SubmittedAt *time.Time       `json:"submitted_at,omitempty"`
	Metadata    *AttemptMetadata `json:"metadata,omitempty"`
}

// AssignmentRow 批量接口返回的扁平行
// 测评级字段在同一测评的多行间重复出现，作答级字段在无作答的行里为空
type AssignmentRow struct {
	AssignmentId     string     `json:"assignment_id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	CourseId         string     `json:"course_id"`
	MaxPoints        float64    `json:"max_points"`
	TimeLimitMinutes *int64     `json:"time_limit_minutes,omitempty"`
	DueDate          *time.Time `json:"due_date,omitempty"`
	IsPublished      bool       `json:"is_published"`
	MaxAttempts      *int64     `json:"max_attempts,omitempty"`
	PassScore        *float64   `json:"pass_score,omitempty"`

	AttemptId     *string    `json:"attempt_id,omitempty"`
	StudentId     *string    `json:"student_id,omitempty"`
	AttemptStatus *string    `json:"attempt_status,omitempty"`
	Score         *float64   `json:"score,omitempty"`
	StartedAt     *time.Time `json:"started_at,omitempty"`
	SubmittedAt   *time.Time `json:"submitted_at,omitempty"`
}
