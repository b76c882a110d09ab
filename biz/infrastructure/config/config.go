package config

import (
	"campus-show/biz/infrastructure/util/log"
	_ "embed"
	"os"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/service"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

// //go:embed config.local.yaml
var embeddedConfig []byte

var config *Config

type Auth struct {
	SecretKey    string
	PublicKey    string
	AccessExpire int64
}

type Config struct {
	service.ServiceConf
	ListenOn string
	State    string
	Auth     Auth
	Redis    *redis.RedisConf
	Api      API
	Storage  Storage
}

// API 上游LMS后端的地址配置
type API struct {
	BackendURL string
	MetricsOn  string `json:",optional"`
}

// Storage 本地持久化配置
type Storage struct {
	SessionFile string
}

func NewConfig() (*Config, error) {
	c := new(Config)

	if len(embeddedConfig) == 0 {
		path := os.Getenv("CONFIG_PATH")
		log.Info("NewConfig load config from path: %s", path)
		err := conf.Load(path, c)
		if err != nil {
			return nil, err
		}
	} else {
		err := conf.LoadFromYamlBytes(embeddedConfig, c)
		if err != nil {
			return nil, err
		}
	}

	err := c.SetUp()
	if err != nil {
		return nil, err
	}
	config = c
	return c, nil
}

func GetConfig() *Config {
	return config
}
