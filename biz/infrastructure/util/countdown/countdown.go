package countdown

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/zeromicro/go-zero/core/timex"
)

// Runner 限时测评的倒计时
// 到点后恰好触发一次到期回调，手动提交先到则不再触发
// Remaining是剩余时间的唯一数据源，界面展示不要自己算
type Runner struct {
	deadline time.Time
	now      func() time.Time
	ticker   timex.Ticker

	// 到期回调内部会经由Registry.Cancel再次调用Cancel，
	// 所以触发和取消用同一个标志位抢占，不能互相等待
	canceled atomic.Bool
	stopOnce sync.Once
	stopped  chan struct{}
}

// New 构造倒计时，now和ticker可注入以便测试
func New(deadline time.Time, now func() time.Time, ticker timex.Ticker) *Runner {
	if now == nil {
		now = time.Now
	}
	if ticker == nil {
		ticker = timex.NewTicker(time.Second)
	}
	return &Runner{
		deadline: deadline,
		now:      now,
		ticker:   ticker,
		stopped:  make(chan struct{}),
	}
}

// Start 启动倒计时，onExpire最多执行一次
func (r *Runner) Start(onExpire func()) {
	go func() {
		defer r.ticker.Stop()
		for {
			select {
			case <-r.stopped:
				return
			case <-r.ticker.Chan():
				if !r.now().Before(r.deadline) {
					if r.canceled.CompareAndSwap(false, true) {
						onExpire()
					}
					return
				}
			}
		}
	}()
}

// Cancel 取消倒计时，之后到期回调不会再触发
// 可重入：在到期回调内部调用也不会阻塞
func (r *Runner) Cancel() {
	r.canceled.Store(true)
	r.stopOnce.Do(func() { close(r.stopped) })
}

// Remaining 剩余时间，到期后恒为0
func (r *Runner) Remaining() time.Duration {
	d := r.deadline.Sub(r.now())
	if d < 0 {
		return 0
	}
	return d
}

// Registry 按 用户:测评 维护正在进行的倒计时
type Registry struct {
	mu      sync.Mutex
	runners map[string]*Runner
}

func NewRegistry() *Registry {
	return &Registry{runners: make(map[string]*Runner)}
}

// Put 登记一个倒计时，同键的旧倒计时先取消
func (g *Registry) Put(key string, r *Runner) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if old, ok := g.runners[key]; ok {
		old.Cancel()
	}
	g.runners[key] = r
}

// Cancel 取消并移除倒计时，键不存在时为空操作
func (g *Registry) Cancel(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if r, ok := g.runners[key]; ok {
		r.Cancel()
		delete(g.runners, key)
	}
}

// Remove 只移除不取消，到期回调自行清理时使用
func (g *Registry) Remove(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.runners, key)
}
