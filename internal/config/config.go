package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"

	pkgconfig "portfolio-admin/pkg/config"
)

type Config struct {
	Server    pkgconfig.ServerConfig    `yaml:"server"`
	DB        pkgconfig.DBConfig        `yaml:"db"`
	Redis     pkgconfig.RedisConfig     `yaml:"redis"`
	MQ        pkgconfig.MQConfig        `yaml:"mq"`
	JWT       pkgconfig.JWTConfig       `yaml:"jwt"`
	Media     pkgconfig.MediaConfig     `yaml:"media"`
	Analytics pkgconfig.AnalyticsConfig `yaml:"analytics"`
}

// Load reads config.yaml and applies environment overrides on top.
func Load() *Config {
	path := pkgconfig.GetEnv("CONFIG_PATH", "config.yaml")

	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("failed to open %s: %v", path, err)
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		log.Fatalf("failed to decode %s: %v", path, err)
	}

	pkgconfig.OverrideServerFromEnv(&cfg.Server)
	pkgconfig.OverrideDBFromEnv(&cfg.DB)
	pkgconfig.OverrideRedisFromEnv(&cfg.Redis)
	pkgconfig.OverrideMQFromEnv(&cfg.MQ)
	pkgconfig.OverrideJWTFromEnv(&cfg.JWT)
	pkgconfig.OverrideMediaFromEnv(&cfg.Media)
	pkgconfig.OverrideAnalyticsFromEnv(&cfg.Analytics)

	return &cfg
}
