package permission

import (
	"testing"

	"campus-show/biz/infrastructure/consts"

	"github.com/stretchr/testify/assert"
)

func TestAdminHasAllCapabilities(t *testing.T) {
	r := New(consts.RoleAdmin, "u-admin")

	assert.True(t, r.CanCreateCourse())
	assert.True(t, r.CanViewAllAssignments())
	assert.True(t, r.CanReviewAttempts())
	assert.True(t, r.CanManageStudents())
	// 管理员不受所有者限制
	assert.True(t, r.CanEditCourse("someone-else"))
	assert.True(t, r.CanDeleteCourse(""))
}

func TestInstructorOwnerScoped(t *testing.T) {
	r := New(consts.RoleInstructor, "u-teacher")

	assert.True(t, r.CanCreateCourse())
	assert.True(t, r.CanReviewAttempts())
	assert.False(t, r.CanManageStudents())

	// 只能操作自己的课程
	assert.True(t, r.CanEditCourse("u-teacher"))
	assert.False(t, r.CanEditCourse("u-other"))
	assert.False(t, r.CanManageEnrollments("u-other"))
	// 所有者为空视为不归属
	assert.False(t, r.CanEditCourse(""))
}

func TestStudentCapabilities(t *testing.T) {
	r := New(consts.RoleStudent, "u-student")

	assert.True(t, r.CanEnroll())
	assert.True(t, r.CanTakeAssignment())
	assert.True(t, r.CanViewOwnProgress())
	assert.True(t, r.CanViewCertificates())

	assert.False(t, r.CanCreateCourse())
	assert.False(t, r.CanViewAllAssignments())
	assert.False(t, r.CanEditCourse("u-student"))
}

func TestUnknownRoleFailsClosed(t *testing.T) {
	for _, r := range []*Resolver{
		New("superuser", "u1"),
		New("", "u1"),
		New(consts.RoleAdmin, ""), // 没有用户id同样拒绝
	} {
		flags := r.Flags("owner")
		assert.Equal(t, Flags{}, *flags)
	}
}
