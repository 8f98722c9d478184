package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App      *App      `json:"app" yaml:"app"`
	Server   *Server   `json:"server" yaml:"server"`
	Database *Database `json:"database" yaml:"database"`
	Redis    *Redis    `json:"redis" yaml:"redis"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

// New 读取 yaml 配置，文件不存在时使用默认值，最后用环境变量覆盖
func New(filename string) *Config {
	conf := Default()

	content, err := os.ReadFile(filename)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}
	if err == nil {
		if err := yaml.Unmarshal(content, conf); err != nil {
			panic(fmt.Sprintf("解析 %s 读取错误: %v", filename, err))
		}
	}

	conf.applyEnv(os.Getenv)
	return conf
}

// Default 默认配置
func Default() *Config {
	return &Config{
		App:    &App{Env: "dev"},
		Server: &Server{Http: 8080},
		Database: &Database{
			Driver:       DriverMySQL,
			Port:         3306,
			Charset:      "utf8mb4",
			MaxOpenConns: 20,
			MaxIdleConns: 5,
		},
	}
}

// applyEnv DATABASE_URL / PORT / REDIS_ADDR 优先于配置文件
func (c *Config) applyEnv(getenv func(string) string) {
	if v := getenv("DATABASE_URL"); v != "" {
		c.Database.URL = v
	}
	if v := getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Http = port
		}
	}
	if v := getenv("REDIS_ADDR"); v != "" {
		if c.Redis == nil {
			c.Redis = &Redis{}
		}
		c.Redis.Address = v
	}
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App != nil && c.App.Debug
}
