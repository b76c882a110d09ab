package lms

import "time"

type Course struct {
	Id           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	InstructorId string     `json:"instructor_id"`
	IsPublished  bool       `json:"is_published"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
}

type Enrollment struct {
	Id         string     `json:"id"`
	CourseId   string     `json:"course_id"`
	StudentId  string     `json:"student_id"`
	Status     string     `json:"status"` // pending | approved | rejected
	EnrolledAt *time.Time `json:"enrolled_at,omitempty"`
}

type EnrollmentStats struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

type Progress struct {
	CourseId          string  `json:"course_id"`
	StudentId         string  `json:"student_id"`
	CompletedLessons  int64   `json:"completed_lessons"`
	TotalLessons      int64   `json:"total_lessons"`
	ProgressPercent   float64 `json:"progress_percent"`
	CompletedAt       *string `json:"completed_at,omitempty"`
	CertificateIssued bool    `json:"certificate_issued"`
}

type Certificate struct {
	Id        string     `json:"id"`
	CourseId  string     `json:"course_id"`
	StudentId string     `json:"student_id"`
	IssuedAt  *time.Time `json:"issued_at,omitempty"`
	Url       string     `json:"url,omitempty"`
}

type VirtualClass struct {
	Id          string     `json:"id"`
	CourseId    string     `json:"course_id"`
	Title       string     `json:"title"`
	MeetingUrl  string     `json:"meeting_url"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
}
