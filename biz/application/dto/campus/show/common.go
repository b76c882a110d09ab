package show

// Response 通用应答
type Response struct {
	Success bool   `form:"success" json:"success" query:"success"`
	Msg     string `form:"msg" json:"msg" query:"msg"`
}

// PermissionInfo 返回给前端的能力开关，仅用于界面展示
// 真正的鉴权由上游后端完成，这里的值不可作为安全依据
type PermissionInfo struct {
	CanCreateCourse      bool `json:"canCreateCourse"`
	CanEditCourse        bool `json:"canEditCourse"`
	CanDeleteCourse      bool `json:"canDeleteCourse"`
	CanManageEnrollments bool `json:"canManageEnrollments"`
	CanGradeAttempts     bool `json:"canGradeAttempts"`
	CanViewAttempts      bool `json:"canViewAttempts"`
	CanViewAllAssignments bool `json:"canViewAllAssignments"`
	CanManageStudents    bool `json:"canManageStudents"`
	CanEnroll            bool `json:"canEnroll"`
	CanTakeAssignment    bool `json:"canTakeAssignment"`
	CanViewOwnProgress   bool `json:"canViewOwnProgress"`
	CanViewCertificates  bool `json:"canViewCertificates"`
}
