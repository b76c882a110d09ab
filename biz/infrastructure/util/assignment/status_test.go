package assignment

import (
	"testing"
	"time"

	"campus-show/biz/application/dto/campus/lms"
	"campus-show/biz/infrastructure/consts"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func publishedAssignment() *lms.Assignment {
	return &lms.Assignment{
		Id:          "a1",
		Title:       "期中测评",
		IsPublished: true,
	}
}

func completedAttempt(score float64) *lms.Attempt {
	return &lms.Attempt{Status: consts.AttemptCompleted, Score: lo.ToPtr(score)}
}

func TestResolveStatusDraft(t *testing.T) {
	a := publishedAssignment()
	a.IsPublished = false
	// 未发布优先于一切，连截止时间都不看
	a.DueDate = lo.ToPtr(time.Now().Add(-time.Hour))

	st := ResolveStatus(a, nil, time.Now())
	assert.Equal(t, StateDraft, st.State)
	assert.False(t, st.CanAttempt)
}

func TestResolveStatusExpired(t *testing.T) {
	a := publishedAssignment()
	a.DueDate = lo.ToPtr(time.Now().Add(-time.Minute))
	a.MaxAttempts = lo.ToPtr(int64(3))

	// 过期后即使还有剩余次数也不可作答
	st := ResolveStatus(a, []*lms.Attempt{completedAttempt(90)}, time.Now())
	assert.Equal(t, StateExpired, st.State)
	assert.False(t, st.CanAttempt)
}

func TestResolveStatusCompleted(t *testing.T) {
	a := publishedAssignment()
	a.MaxAttempts = lo.ToPtr(int64(3))
	a.PassScore = lo.ToPtr(float64(60))

	st := ResolveStatus(a, []*lms.Attempt{completedAttempt(30), completedAttempt(80)}, time.Now())
	assert.Equal(t, StateCompleted, st.State)
	assert.True(t, st.CanAttempt)
	assert.Contains(t, st.Description, "80")
	assert.Contains(t, st.Description, "2/3")
}

func TestResolveStatusCompletedExhausted(t *testing.T) {
	a := publishedAssignment()
	a.MaxAttempts = lo.ToPtr(int64(1))

	// 通过但次数用完，状态是completed但不能再答
	st := ResolveStatus(a, []*lms.Attempt{completedAttempt(80)}, time.Now())
	assert.Equal(t, StateCompleted, st.State)
	assert.False(t, st.CanAttempt)
}

func TestResolveStatusRetry(t *testing.T) {
	a := publishedAssignment()
	a.MaxAttempts = lo.ToPtr(int64(3))

	st := ResolveStatus(a, []*lms.Attempt{completedAttempt(30)}, time.Now())
	assert.Equal(t, StateInProgress, st.State)
	assert.True(t, st.CanAttempt)
	assert.Contains(t, st.Description, "1/3")
}

func TestResolveStatusFailed(t *testing.T) {
	a := publishedAssignment()
	a.MaxAttempts = lo.ToPtr(int64(2))

	st := ResolveStatus(a, []*lms.Attempt{completedAttempt(30), completedAttempt(40)}, time.Now())
	assert.Equal(t, StateFailed, st.State)
	assert.False(t, st.CanAttempt)
	assert.Contains(t, st.Description, "40")
}

func TestResolveStatusAvailable(t *testing.T) {
	a := publishedAssignment()

	st := ResolveStatus(a, nil, time.Now())
	assert.Equal(t, StateAvailable, st.State)
	assert.True(t, st.CanAttempt)
	assert.Equal(t, "可随时作答", st.Description)
}

func TestResolveStatusAvailableWithDueDate(t *testing.T) {
	a := publishedAssignment()
	a.DueDate = lo.ToPtr(time.Now().Add(24 * time.Hour))

	st := ResolveStatus(a, nil, time.Now())
	assert.Equal(t, StateAvailable, st.State)
	assert.Contains(t, st.Description, "开放至")
}

func TestResolveStatusIgnoresInProgressAttempts(t *testing.T) {
	a := publishedAssignment()
	a.MaxAttempts = lo.ToPtr(int64(1))

	// 进行中和刚提交未入库的作答不计入次数
	attempts := []*lms.Attempt{
		{Status: consts.AttemptInProgress},
		{Status: consts.AttemptSubmitted},
	}
	st := ResolveStatus(a, attempts, time.Now())
	assert.Equal(t, StateAvailable, st.State)
	assert.True(t, st.CanAttempt)
}

func TestResolveStatusPendingReviewCountsAsZero(t *testing.T) {
	a := publishedAssignment()
	a.MaxAttempts = lo.ToPtr(int64(3))

	// 待评分计入次数，分数按0参与比较
	attempts := []*lms.Attempt{{Status: consts.AttemptPendingReview}}
	st := ResolveStatus(a, attempts, time.Now())
	assert.Equal(t, StateInProgress, st.State)
	assert.Contains(t, st.Description, "0")
}

func TestResolveStatusDefaultPassScore(t *testing.T) {
	a := publishedAssignment()

	// 未配置及格线时默认60，60分恰好通过
	st := ResolveStatus(a, []*lms.Attempt{completedAttempt(60)}, time.Now())
	assert.Equal(t, StateCompleted, st.State)
}

func TestResolveStatusUnlimitedAttempts(t *testing.T) {
	for _, max := range []*int64{nil, lo.ToPtr(int64(0)), lo.ToPtr(int64(-1))} {
		a := publishedAssignment()
		a.MaxAttempts = max

		st := ResolveStatus(a, []*lms.Attempt{completedAttempt(30)}, time.Now())
		assert.Equal(t, StateInProgress, st.State)
		assert.Contains(t, st.Description, "∞")
	}
}
