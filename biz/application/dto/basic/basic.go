package basic

type PaginationOptions struct {
	Page  *int64 `form:"page" json:"page,omitempty" query:"page"`
	Limit *int64 `form:"limit" json:"limit,omitempty" query:"limit"`
}

// UserMeta 从网关jwt中解析出来的用户信息
type UserMeta struct {
	UserId   string `form:"userId" json:"userId" query:"userId"`
	Role     string `form:"role" json:"role" query:"role"`
	DeviceId string `form:"deviceId" json:"deviceId" query:"deviceId"`
}

func (m *UserMeta) GetUserId() string {
	if m == nil {
		return ""
	}
	return m.UserId
}

func (m *UserMeta) GetRole() string {
	if m == nil {
		return ""
	}
	return m.Role
}
