package show

import (
	"campus-show/biz/application/dto/basic"
	"campus-show/biz/application/dto/campus/lms"
)

type ListCoursesReq struct {
	PaginationOptions *basic.PaginationOptions `form:"paginationOptions" json:"paginationOptions,omitempty" query:"paginationOptions"`
}

type CourseInfo struct {
	Id           string          `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	InstructorId string          `json:"instructor_id"`
	IsPublished  bool            `json:"is_published"`
	CreateTime   int64           `json:"create_time,omitempty"`
	Permissions  *PermissionInfo `json:"permissions,omitempty"`
}

type ListCoursesResp struct {
	Total   int64         `json:"total"`
	Courses []*CourseInfo `json:"courses"`
}

type CreateCourseReq struct {
	Title       string `form:"title" json:"title" query:"title"`
	Description string `form:"description" json:"description" query:"description"`
}

type CreateCourseResp struct {
	CourseId string `json:"courseId"`
}

type GetCourseReq struct {
	Id string `path:"id" json:"id"`
}

type GetCourseResp struct {
	Course      *CourseInfo `json:"course"`
	Permissions *PermissionInfo `json:"permissions"`
}

type UpdateCourseReq struct {
	Id          string  `path:"id" json:"id"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	IsPublished *bool   `json:"is_published,omitempty"`
}

type DeleteCourseReq struct {
	Id string `path:"id" json:"id"`
}

type EnrollInCourseReq struct {
	Id string `path:"id" json:"id"`
}

type EnrollInCourseResp struct {
	EnrollmentId string `json:"enrollmentId"`
	Status       string `json:"status"`
}

type GetCourseRelationReq struct {
	Id string `path:"id" json:"id"`
}

type GetCourseAssignmentsResp struct {
	Assignments []*lms.Assignment `json:"assignments"`
}

type GetCourseProgressResp struct {
	Progress []*lms.Progress `json:"progress"`
}

type GetCourseCertificatesResp struct {
	Certificates []*lms.Certificate `json:"certificates"`
}

type GetCourseVirtualClassesResp struct {
	VirtualClasses []*lms.VirtualClass `json:"virtual_classes"`
}
