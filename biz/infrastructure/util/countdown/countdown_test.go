package countdown

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/zeromicro/go-zero/core/timex"
)

func TestRunnerFiresOnceAfterDeadline(t *testing.T) {
	base := time.Now()
	var current atomic.Int64
	current.Store(base.UnixNano())
	nowFn := func() time.Time { return time.Unix(0, current.Load()) }

	ticker := timex.NewFakeTicker()
	r := New(base.Add(time.Minute), nowFn, ticker)

	var fired int32
	done := make(chan struct{})
	r.Start(func() {
		atomic.AddInt32(&fired, 1)
		close(done)
	})

	// 未到期的tick不触发
	ticker.Tick()
	select {
	case <-done:
		t.Fatal("fired before deadline")
	case <-time.After(50 * time.Millisecond):
	}

	current.Store(base.Add(2 * time.Minute).UnixNano())
	ticker.Tick()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("did not fire after deadline")
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&fired))
}

func TestRunnerCancelPreventsFire(t *testing.T) {
	base := time.Now()
	nowFn := func() time.Time { return base.Add(2 * time.Minute) }

	ticker := timex.NewFakeTicker()
	r := New(base.Add(time.Minute), nowFn, ticker)

	var fired int32
	r.Start(func() { atomic.AddInt32(&fired, 1) })
	r.Cancel()

	// 取消后即使已过期也不再触发
	ticker.Tick()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&fired))
}

func TestRunnerRemaining(t *testing.T) {
	base := time.Now()
	var current atomic.Int64
	current.Store(base.UnixNano())
	nowFn := func() time.Time { return time.Unix(0, current.Load()) }

	r := New(base.Add(time.Minute), nowFn, timex.NewFakeTicker())
	assert.Equal(t, time.Minute, r.Remaining())

	// 到期后恒为0，不出现负数
	current.Store(base.Add(2 * time.Minute).UnixNano())
	assert.Equal(t, time.Duration(0), r.Remaining())
}

func TestRegistryCancelInsideExpiryCallback(t *testing.T) {
	base := time.Now()
	nowFn := func() time.Time { return base.Add(2 * time.Minute) }

	g := NewRegistry()
	ticker := timex.NewFakeTicker()
	r := New(base.Add(time.Minute), nowFn, ticker)
	g.Put("u1:a1", r)

	// 自动提交成功后会回头注销自己的倒计时，回调里的取消不能卡住
	done := make(chan struct{})
	r.Start(func() {
		g.Cancel("u1:a1")
		g.Remove("u1:a1")
		close(done)
	})

	ticker.Tick()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expiry callback blocked on its own cancellation")
	}

	// 注销完成后登记表可以继续用
	g.Put("u1:a2", New(base.Add(time.Hour), nowFn, timex.NewFakeTicker()))
	g.Cancel("u1:a2")
}

func TestRegistryPutReplacesOldRunner(t *testing.T) {
	base := time.Now()
	nowFn := func() time.Time { return base.Add(2 * time.Minute) }

	g := NewRegistry()
	ticker := timex.NewFakeTicker()
	old := New(base.Add(time.Minute), nowFn, ticker)

	var fired int32
	old.Start(func() { atomic.AddInt32(&fired, 1) })
	g.Put("u1:a1", old)

	// 同键再登记，旧倒计时被取消
	g.Put("u1:a1", New(base.Add(time.Hour), nowFn, timex.NewFakeTicker()))
	ticker.Tick()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&fired))

	g.Cancel("u1:a1")
	// 键不存在时为空操作
	g.Cancel("u1:a1")
	g.Remove("missing")
}
