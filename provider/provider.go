package provider

import (
	"campus-show/biz/application/service"
	"campus-show/biz/infrastructure/cache"
	"campus-show/biz/infrastructure/config"
	"campus-show/biz/infrastructure/redis"
	"campus-show/biz/infrastructure/storage"
	"campus-show/biz/infrastructure/util"
	"campus-show/biz/infrastructure/util/countdown"

	"github.com/google/wire"
)

var provider *Provider

func Init() {
	var err error
	provider, err = NewProvider()
	if err != nil {
		panic(err)
	}
}

// Provider 提供controller依赖的对象
type Provider struct {
	Config            *config.Config
	CourseService     service.CourseService
	EnrollmentService service.EnrollmentService
	AssignmentService service.AssignmentService
	UserConfigService service.UserConfigService
}

func Get() *Provider {
	return provider
}

var ApplicationSet = wire.NewSet(
	service.CourseServiceSet,
	service.EnrollmentServiceSet,
	service.AssignmentServiceSet,
	service.UserConfigServiceSet,
)

var InfrastructureSet = wire.NewSet(
	config.NewConfig,
	redis.GetRedis,
	storage.NewSessionStore,
	util.NewHttpClient,
	cache.NewDraftCacheMapper,
	countdown.NewRegistry,
)

var AllProvider = wire.NewSet(
	ApplicationSet,
	InfrastructureSet,
)
