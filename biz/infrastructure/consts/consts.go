package consts

var PageSize int64 = 10

// 角色
const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

// 测评记录状态
const (
	AttemptInProgress    = "in_progress"
	AttemptSubmitted     = "submitted"
	AttemptPendingReview = "pending_review"
	AttemptCompleted     = "completed"
)

// 报名审批状态
const (
	EnrollmentPending  = "pending"
	EnrollmentApproved = "approved"
	EnrollmentRejected = "rejected"
)

// 题目类型
const (
	QuestionMultipleChoice = "multiple_choice"
	QuestionTrueFalse      = "true_false"
	QuestionShortText      = "short_text"
	QuestionEssay          = "essay"
)

// http
const (
	Get             = "GET"
	Post            = "POST"
	Put             = "PUT"
	Patch           = "PATCH"
	Delete          = "DELETE"
	ContentTypeJson = "application/json"
	CharSetUTF8     = "UTF-8"
	HeaderRequestId = "X-Request-Id"
)

// 默认值
const (
	DefaultPassScore     = 60
	DraftCacheExpire     = 7 * 24 * 3600 // 草稿保留7天
	SubmitLockTTLSeconds = 30
)
