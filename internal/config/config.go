// Package config 提供配置管理
package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

// Config 应用配置（从环境变量加载）
type Config struct {
	App struct {
		Name     string `env:"NAME" envDefault:"youban"`
		Env      string `env:"ENV" envDefault:"development"`
		Port     string `env:"PORT" envDefault:"7021"`
		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	} `envPrefix:"APP_"`

	Server struct {
		ReadTimeout     int `env:"READ_TIMEOUT" envDefault:"30"`
		WriteTimeout    int `env:"WRITE_TIMEOUT" envDefault:"60"`
		IdleTimeout     int `env:"IDLE_TIMEOUT" envDefault:"120"`
		ShutdownTimeout int `env:"SHUTDOWN_TIMEOUT" envDefault:"10"`
	} `envPrefix:"SERVER_"`

	Optimizer struct {
		MaxGenerations int   `env:"MAX_GENERATIONS" envDefault:"100"`
		MaxIterations  int   `env:"MAX_ITERATIONS" envDefault:"1000"`
		PopulationSize int   `env:"POPULATION_SIZE" envDefault:"50"`
		SwarmSize      int   `env:"SWARM_SIZE" envDefault:"30"`
		Seed           int64 `env:"SEED" envDefault:"0"`

		// DefaultTimeout 单次优化的默认超时（秒）
		DefaultTimeout int `env:"DEFAULT_TIMEOUT" envDefault:"30"`

		// AllowSampleFallback 输入为空时是否回退到示例数据
		AllowSampleFallback bool `env:"ALLOW_SAMPLE_FALLBACK" envDefault:"false"`
	} `envPrefix:"OPTIMIZER_"`
}

// Load 从环境变量加载配置
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok {
			// 只返回第一个错误使得日志更清晰
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}

	return cfg, nil
}
