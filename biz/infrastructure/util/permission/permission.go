package permission

import (
	"campus-show/biz/infrastructure/consts"
)

// Resolver 由登录用户的角色推导界面能力开关
// 纯计算、无IO，只用于前端展示，真正的鉴权在上游后端重新校验
type Resolver struct {
	role   string
	userId string
}

func New(role, userId string) *Resolver {
	return &Resolver{role: role, userId: userId}
}

// 未登录或未知角色一律失败
func (r *Resolver) known() bool {
	if r.userId == "" {
		return false
	}
	switch r.role {
	case consts.RoleStudent, consts.RoleInstructor, consts.RoleAdmin:
		return true
	default:
		return false
	}
}

func (r *Resolver) isAdmin() bool {
	return r.known() && r.role == consts.RoleAdmin
}

func (r *Resolver) isInstructor() bool {
	return r.known() && r.role == consts.RoleInstructor
}

func (r *Resolver) isStudent() bool {
	return r.known() && r.role == consts.RoleStudent
}

// owns 所有者校验，管理员不受限制
func (r *Resolver) owns(ownerId string) bool {
	if r.isAdmin() {
		return true
	}
	return r.isInstructor() && ownerId != "" && ownerId == r.userId
}

// ===== 角色级能力 =====

func (r *Resolver) CanCreateCourse() bool {
	return r.isAdmin() || r.isInstructor()
}

func (r *Resolver) CanViewAllAssignments() bool {
	return r.isAdmin() || r.isInstructor()
}

func (r *Resolver) CanReviewAttempts() bool {
	return r.isAdmin() || r.isInstructor()
}

func (r *Resolver) CanManageAssignments() bool {
	return r.isAdmin() || r.isInstructor()
}

func (r *Resolver) CanApproveEnrollments() bool {
	return r.isAdmin() || r.isInstructor()
}

func (r *Resolver) CanManageStudents() bool {
	return r.isAdmin()
}

// ===== 所有者级能力 =====

func (r *Resolver) CanEditCourse(ownerId string) bool {
	return r.owns(ownerId)
}

func (r *Resolver) CanDeleteCourse(ownerId string) bool {
	return r.owns(ownerId)
}

func (r *Resolver) CanManageEnrollments(ownerId string) bool {
	return r.owns(ownerId)
}

func (r *Resolver) CanGradeAttempts(ownerId string) bool {
	return r.owns(ownerId)
}

func (r *Resolver) CanViewAttempts(ownerId string) bool {
	return r.owns(ownerId)
}

// ===== 学生级能力 =====

func (r *Resolver) CanEnroll() bool {
	return r.isStudent()
}

func (r *Resolver) CanTakeAssignment() bool {
	return r.isStudent()
}

func (r *Resolver) CanViewOwnProgress() bool {
	return r.isStudent()
}

func (r *Resolver) CanViewCertificates() bool {
	return r.isStudent()
}

// Flags 一次性展开全部能力开关，方便塞进响应里
type Flags struct {
	CanCreateCourse       bool
	CanEditCourse         bool
	CanDeleteCourse       bool
	CanManageEnrollments  bool
	CanGradeAttempts      bool
	CanViewAttempts       bool
	CanViewAllAssignments bool
	CanManageStudents     bool
	CanEnroll             bool
	CanTakeAssignment     bool
	CanViewOwnProgress    bool
	CanViewCertificates   bool
}

func (r *Resolver) Flags(ownerId string) *Flags {
	return &Flags{
		CanCreateCourse:       r.CanCreateCourse(),
		CanEditCourse:         r.CanEditCourse(ownerId),
		CanDeleteCourse:       r.CanDeleteCourse(ownerId),
		CanManageEnrollments:  r.CanManageEnrollments(ownerId),
		CanGradeAttempts:      r.CanGradeAttempts(ownerId),
		CanViewAttempts:       r.CanViewAttempts(ownerId),
		CanViewAllAssignments: r.CanViewAllAssignments(),
		CanManageStudents:     r.CanManageStudents(),
		CanEnroll:             r.CanEnroll(),
		CanTakeAssignment:     r.CanTakeAssignment(),
		CanViewOwnProgress:    r.CanViewOwnProgress(),
		CanViewCertificates:   r.CanViewCertificates(),
	}
}
