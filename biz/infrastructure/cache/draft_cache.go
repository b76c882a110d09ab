package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"campus-show/biz/infrastructure/config"
	"campus-show/biz/infrastructure/consts"
	"campus-show/biz/infrastructure/redis"

	gozero_redis "github.com/zeromicro/go-zero/core/stores/redis"
)

const (
	draftCachePrefix = "draft_answers"
	draftCacheExpire = consts.DraftCacheExpire
)

type IDraftCacheMapper interface {
	Get(ctx context.Context, userId, assignmentId string) ([]any, error)
	Set(ctx context.Context, userId, assignmentId string, answers []any) error
	Delete(ctx context.Context, userId, assignmentId string) error
}

// DraftCacheMapper 按 用户+测评 缓存作答草稿，提交成功后清除
type DraftCacheMapper struct {
	rds *gozero_redis.Redis
}

func NewDraftCacheMapper(config *config.Config) *DraftCacheMapper {
	return &DraftCacheMapper{
		rds: redis.GetRedis(config),
	}
}

// Get 读取草稿，没有草稿返回cache miss
func (m *DraftCacheMapper) Get(ctx context.Context, userId, assignmentId string) ([]any, error) {
	cacheKey := m.buildCacheKey(userId, assignmentId)

	cachedData, err := m.rds.GetCtx(ctx, cacheKey)
	if err != nil {
		return nil, err
	}
	if cachedData == "" {
		return nil, fmt.Errorf("cache miss")
	}

	var answers []any
	if err := json.Unmarshal([]byte(cachedData), &answers); err != nil {
		return nil, fmt.Errorf("unmarshal cached data failed: %w", err)
	}
	return answers, nil
}

// Set 保存草稿
func (m *DraftCacheMapper) Set(ctx context.Context, userId, assignmentId string, answers []any) error {
	cacheKey := m.buildCacheKey(userId, assignmentId)

	resultBytes, err := json.Marshal(answers)
	if err != nil {
		return fmt.Errorf("marshal data failed: %w", err)
	}
	return m.rds.SetexCtx(ctx, cacheKey, string(resultBytes), draftCacheExpire)
}

// Delete 清除草稿
func (m *DraftCacheMapper) Delete(ctx context.Context, userId, assignmentId string) error {
	cacheKey := m.buildCacheKey(userId, assignmentId)
	_, err := m.rds.DelCtx(ctx, cacheKey)
	return err
}

// buildCacheKey 构造缓存key
func (m *DraftCacheMapper) buildCacheKey(userId, assignmentId string) string {
	return fmt.Sprintf("%s:%s:%s", draftCachePrefix, userId, assignmentId)
}
