package show

import (
	"campus-show/biz/application/dto/campus/lms"
)

type SignInReq struct {
	Email    string `form:"email" json:"email" query:"email"`
	Password string `form:"password" json:"password" query:"password"`
}

type SignInResp struct {
	Id           string `json:"id"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	AccessToken  string `json:"accessToken"`
	AccessExpire int64  `json:"accessExpire"`
}

type SignOutReq struct {
}

type ListAllStudentsReq struct {
}

type ListAllStudentsResp struct {
	Total    int64       `json:"total"`
	Students []*lms.User `json:"students"`
}

type ResetStudentPasswordReq struct {
	StudentId string `json:"studentId"`
}

type GetMyProfileReq struct {
}

type GetMyProfileResp struct {
	User        *lms.User       `json:"user"`
	Permissions *PermissionInfo `json:"permissions"`
}

type UpdateProfileReq struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}
