package assignment

import (
	"fmt"
	"time"

	"campus-show/biz/application/dto/campus/lms"
	"campus-show/biz/infrastructure/consts"

	"github.com/samber/lo"
)

// 测评状态
const (
	StateDraft      = "draft"
	StateExpired    = "expired"
	StateCompleted  = "completed"
	StateInProgress = "in_progress"
	StateFailed     = "failed"
	StateAvailable  = "available"
)

// Status 测评状态描述，告诉学生当前能对这份测评做什么
type Status struct {
	State       string
	Label       string
	CanAttempt  bool
	Description string
}

// ResolveStatus 由测评定义和作答记录推导状态
// 规则按顺序匹配，先命中者生效；规则之间并不互斥，顺序不可调整
func ResolveStatus(a *lms.Assignment, attempts []*lms.Attempt, now time.Time) *Status {
	// 未发布的测评不可见不可答
	if !a.IsPublished {
		return &Status{State: StateDraft, Label: "未发布", CanAttempt: false, Description: "该测评尚未开放"}
	}

	// 截止时间优先于作答历史，过期后即使还有剩余次数也不可作答
	if a.DueDate != nil && now.After(*a.DueDate) {
		return &Status{State: StateExpired, Label: "已截止", CanAttempt: false, Description: "已过截止时间"}
	}

	// 只有已提交的作答计入次数，进行中的作答对状态推导不可见
	counted := lo.Filter(attempts, func(at *lms.Attempt, _ int) bool {
		return at.Status == consts.AttemptCompleted || at.Status == consts.AttemptPendingReview
	})
	completedCount := int64(len(counted))
	hasRemaining := unlimitedAttempts(a) || completedCount < *a.MaxAttempts

	if completedCount > 0 {
		// 取分数最高的一次，未评分按0分比较，平分保留先出现的那次
		best := lo.MaxBy(counted, func(x *lms.Attempt, max *lms.Attempt) bool {
			return scoreOf(x) > scoreOf(max)
		})
		passScore := float64(consts.DefaultPassScore)
		if a.PassScore != nil {
			passScore = *a.PassScore
		}
		fraction := attemptFraction(completedCount, a)

		switch {
		case scoreOf(best) >= passScore:
			return &Status{
				State:       StateCompleted,
				Label:       "已通过",
				CanAttempt:  hasRemaining,
				Description: fmt.Sprintf("最高分 %s，已用次数 %s", formatScore(scoreOf(best)), fraction),
			}
		case hasRemaining:
			return &Status{
				State:       StateInProgress,
				Label:       "未通过，可重试",
				CanAttempt:  true,
				Description: fmt.Sprintf("最高分 %s，已用次数 %s", formatScore(scoreOf(best)), fraction),
			}
		default:
			return &Status{
				State:       StateFailed,
				Label:       "未通过",
				CanAttempt:  false,
				Description: fmt.Sprintf("最终得分 %s，次数已用完 %s", formatScore(scoreOf(best)), fraction),
			}
		}
	}

	// 还没有计入的作答
	if a.DueDate != nil {
		return &Status{
			State:       StateAvailable,
			Label:       "可作答",
			CanAttempt:  true,
			Description: fmt.Sprintf("开放至 %s", a.DueDate.Local().Format("2006-01-02 15:04")),
		}
	}
	return &Status{State: StateAvailable, Label: "可作答", CanAttempt: true, Description: "可随时作答"}
}

// unlimitedAttempts 只有正整数才限制次数，缺省、0或负数都按不限处理
func unlimitedAttempts(a *lms.Assignment) bool {
	return a.MaxAttempts == nil || *a.MaxAttempts <= 0
}

// scoreOf 未评分的作答按0分参与比较
func scoreOf(at *lms.Attempt) float64 {
	if at.Score == nil {
		return 0
	}
	return *at.Score
}

// attemptFraction 已用次数/总次数，不限次数时渲染为∞
func attemptFraction(used int64, a *lms.Assignment) string {
	if unlimitedAttempts(a) {
		return fmt.Sprintf("%d/∞", used)
	}
	return fmt.Sprintf("%d/%d", used, *a.MaxAttempts)
}

func formatScore(score float64) string {
	if score == float64(int64(score)) {
		return fmt.Sprintf("%d", int64(score))
	}
	return fmt.Sprintf("%.1f", score)
}
