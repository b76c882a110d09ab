package assignment

import (
	"testing"
	"time"

	"campus-show/biz/application/dto/campus/lms"
	"campus-show/biz/infrastructure/consts"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rowOf(assignmentId string) *lms.AssignmentRow {
	return &lms.AssignmentRow{
		AssignmentId: assignmentId,
		Title:        "测评" + assignmentId,
		CourseId:     "c1",
		MaxPoints:    100,
		IsPublished:  true,
	}
}

func rowWithAttempt(assignmentId, attemptId, studentId string, score float64) *lms.AssignmentRow {
	row := rowOf(assignmentId)
	row.AttemptId = lo.ToPtr(attemptId)
	row.StudentId = lo.ToPtr(studentId)
	row.AttemptStatus = lo.ToPtr(consts.AttemptCompleted)
	row.Score = lo.ToPtr(score)
	return row
}

func TestFlattenGroupsByFirstSight(t *testing.T) {
	rows := []*lms.AssignmentRow{
		rowWithAttempt("a2", "t1", "s1", 80),
		rowOf("a1"),
		rowWithAttempt("a2", "t2", "s2", 60),
	}

	groups := Flatten(rows)
	require.Len(t, groups, 2)
	// 输出顺序是测评id首次出现的顺序
	assert.Equal(t, "a2", groups[0].Assignment.Id)
	assert.Equal(t, "a1", groups[1].Assignment.Id)
	assert.Len(t, groups[0].Attempts, 2)
	assert.Empty(t, groups[1].Attempts)
}

func TestFlattenNullAttemptRowsOnlyMaterialize(t *testing.T) {
	// 无作答的行只落地测评本身，不计入任何计数
	rows := []*lms.AssignmentRow{rowOf("a1"), rowOf("a1")}

	groups := Flatten(rows)
	require.Len(t, groups, 1)
	assert.Equal(t, int64(0), groups[0].TotalAttempts)
	assert.Equal(t, int64(0), groups[0].StudentsAttempted)
	assert.Empty(t, groups[0].Attempts)
}

func TestFlattenCountsDistinctStudents(t *testing.T) {
	rows := []*lms.AssignmentRow{
		rowWithAttempt("a1", "t1", "s1", 30),
		rowWithAttempt("a1", "t2", "s1", 80),
		rowOf("a1"),
	}

	groups := Flatten(rows)
	require.Len(t, groups, 1)
	// 同一学生两次作答，次数计2，人数计1
	assert.Equal(t, int64(2), groups[0].TotalAttempts)
	assert.Equal(t, int64(1), groups[0].StudentsAttempted)
}

func TestFlattenMaterializesAssignmentFields(t *testing.T) {
	due := time.Now().Add(time.Hour)
	row := rowWithAttempt("a1", "t1", "s1", 90)
	row.DueDate = &due
	row.MaxAttempts = lo.ToPtr(int64(3))

	groups := Flatten([]*lms.AssignmentRow{row})
	require.Len(t, groups, 1)

	a := groups[0].Assignment
	assert.Equal(t, "a1", a.Id)
	assert.Equal(t, "测评a1", a.Title)
	assert.Equal(t, "c1", a.CourseId)
	require.NotNil(t, a.MaxAttempts)
	assert.Equal(t, int64(3), *a.MaxAttempts)

	at := groups[0].Attempts[0]
	assert.Equal(t, "t1", at.Id)
	assert.Equal(t, "a1", at.AssignmentId)
	assert.Equal(t, "s1", at.StudentId)
	assert.Equal(t, consts.AttemptCompleted, at.Status)
	require.NotNil(t, at.Score)
	assert.Equal(t, float64(90), *at.Score)
}
