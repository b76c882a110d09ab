package show

import (
	"campus-show/biz/application/dto/basic"
	"campus-show/biz/application/dto/campus/lms"
)

type ListAllEnrollmentsReq struct {
	PaginationOptions *basic.PaginationOptions `form:"paginationOptions" json:"paginationOptions,omitempty" query:"paginationOptions"`
}

type ListEnrollmentsResp struct {
	Total       int64             `json:"total"`
	Enrollments []*lms.Enrollment `json:"enrollments"`
}

type GetStudentEnrollmentsReq struct {
	StudentId string `path:"id" json:"studentId"`
}

type GetCourseEnrollmentsReq struct {
	CourseId string `path:"id" json:"courseId"`
}

type EnrollCourseReq struct {
	CourseId string `path:"id" json:"courseId"`
}

type EnrollCourseResp struct {
	EnrollmentId string `json:"enrollmentId"`
	Status       string `json:"status"`
}

type ApproveEnrollmentReq struct {
	Id string `path:"id" json:"id"`
}

type RejectEnrollmentReq struct {
	Id     string `path:"id" json:"id"`
	Reason string `json:"reason,omitempty"`
}

type BulkEnrollReq struct {
	CourseId   string   `json:"courseId"`
	StudentIds []string `json:"studentIds"`
}

type BulkEnrollResp struct {
	Enrolled int64 `json:"enrolled"`
	Failed   int64 `json:"failed"`
}

type UpdateEnrollmentReq struct {
	Id     string `path:"id" json:"id"`
	Status string `json:"status"`
}

type CancelEnrollmentReq struct {
	Id string `path:"id" json:"id"`
}

type GetEnrollmentStatsResp struct {
	Stats *lms.EnrollmentStats `json:"stats"`
}
