package lock

import (
	"context"
	"time"

	"campus-show/biz/infrastructure/consts"

	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

// SubmitMutex 基于redis的提交互斥锁
// 倒计时自动提交和手动提交可能落在同一秒，持锁方才允许真正提交
type SubmitMutex struct {
	ctx        context.Context
	rds        *redis.Redis
	key        string
	value      string
	ttl        int
	acquiredAt time.Time
}

func NewSubmitMutex(ctx context.Context, rds *redis.Redis, key string, ttlSeconds int) *SubmitMutex {
	return &SubmitMutex{
		ctx:   ctx,
		rds:   rds,
		key:   "lock:" + key,
		value: uuid.New().String(),
		ttl:   ttlSeconds,
	}
}

// Lock 抢锁失败说明同一测评已有提交在进行中
func (m *SubmitMutex) Lock() error {
	ok, err := m.rds.SetnxExCtx(m.ctx, m.key, m.value, m.ttl)
	if err != nil {
		return err
	}
	if !ok {
		return consts.ErrOneSubmit
	}
	m.acquiredAt = time.Now()
	return nil
}

// Unlock 只释放自己持有的锁，过期后被别人抢走的不动
func (m *SubmitMutex) Unlock() error {
	val, err := m.rds.GetCtx(m.ctx, m.key)
	if err != nil {
		return err
	}
	if val != m.value {
		return nil
	}
	_, err = m.rds.DelCtx(m.ctx, m.key)
	return err
}

// Expired 锁是否已超过TTL
func (m *SubmitMutex) Expired() bool {
	return time.Since(m.acquiredAt) >= time.Duration(m.ttl)*time.Second
}
