package assignment

import (
	"campus-show/biz/application/dto/campus/lms"

	"github.com/jinzhu/copier"
)

// Group 批量接口扁平行聚合后的一份测评及其全部作答
type Group struct {
	Assignment        *lms.Assignment
	Attempts          []*lms.Attempt
	TotalAttempts     int64
	StudentsAttempted int64

	students map[string]struct{}
}

// Flatten 把上游批量接口的扁平行聚合成 测评->作答列表 的结构
// 首次出现的测评id用该行的测评级字段落地，作答按输入顺序追加
// attempt_id为空的行只贡献测评身份，不计入任何计数
func Flatten(rows []*lms.AssignmentRow) []*Group {
	groups := make(map[string]*Group, len(rows))
	order := make([]string, 0, len(rows))

	for _, row := range rows {
		g, ok := groups[row.AssignmentId]
		if !ok {
			g = &Group{
				Assignment: assignmentFromRow(row),
				Attempts:   []*lms.Attempt{},
				students:   make(map[string]struct{}),
			}
			groups[row.AssignmentId] = g
			order = append(order, row.AssignmentId)
		}

		if row.AttemptId == nil {
			continue
		}
		g.Attempts = append(g.Attempts, attemptFromRow(row))
		if row.StudentId != nil {
			g.students[*row.StudentId] = struct{}{}
		}
		g.TotalAttempts++
	}

	out := make([]*Group, 0, len(order))
	for _, id := range order {
		g := groups[id]
		g.StudentsAttempted = int64(len(g.students))
		out = append(out, g)
	}
	return out
}

func assignmentFromRow(row *lms.AssignmentRow) *lms.Assignment {
	a := new(lms.Assignment)
	// 除了id以外测评级字段同名，直接拷贝
	_ = copier.Copy(a, row)
	a.Id = row.AssignmentId
	return a
}

func attemptFromRow(row *lms.AssignmentRow) *lms.Attempt {
	at := &lms.Attempt{
		Id:           *row.AttemptId,
		AssignmentId: row.AssignmentId,
		Score:        row.Score,
		StartedAt:    row.StartedAt,
		SubmittedAt:  row.SubmittedAt,
	}
	if row.StudentId != nil {
		at.StudentId = *row.StudentId
	}
	if row.AttemptStatus != nil {
		at.Status = *row.AttemptStatus
	}
	return at
}
