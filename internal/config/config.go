/**
 * Portsy 配置管理
 * @author: sun977
 * @date: 2026.02.10
 * @description: CLI 配置结构定义，负责扫描/探测/日志的默认参数
 */
package config

import (
	"fmt"
	"time"
)

// Config Portsy 配置
type Config struct {
	// 应用配置
	App *AppConfig `yaml:"app" mapstructure:"app"`

	// 日志配置
	Log *LogConfig `yaml:"log" mapstructure:"log"`

	// 端口扫描配置
	Scan *ScanConfig `yaml:"scan" mapstructure:"scan"`

	// 路由发现配置
	Discover *DiscoverConfig `yaml:"discover" mapstructure:"discover"`
}

// AppConfig 应用配置
type AppConfig struct {
	Name        string `yaml:"name" mapstructure:"name"`               // 应用名称
	Environment string `yaml:"environment" mapstructure:"environment"` // 运行环境
	Debug       bool   `yaml:"debug" mapstructure:"debug"`             // 调试模式
}

// LogConfig 日志配置
type LogConfig struct {
	Level      string `yaml:"level" mapstructure:"level"`             // 日志级别 (debug/info/warn/error)
	Format     string `yaml:"format" mapstructure:"format"`           // 日志格式 (json/text)
	Output     string `yaml:"output" mapstructure:"output"`           // 日志输出 (stdout/stderr/file)
	FilePath   string `yaml:"file_path" mapstructure:"file_path"`     // 日志文件路径
	MaxSize    int    `yaml:"max_size" mapstructure:"max_size"`       // 最大文件大小（MB）
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"` // 最大备份数
	MaxAge     int    `yaml:"max_age" mapstructure:"max_age"`         // 最大保留天数
	Compress   bool   `yaml:"compress" mapstructure:"compress"`       // 是否压缩
	Caller     bool   `yaml:"caller" mapstructure:"caller"`           // 是否显示调用者信息
}

// ScanConfig 端口存活扫描配置
type ScanConfig struct {
	Timeout        time.Duration `yaml:"timeout" mapstructure:"timeout"`                 // 单端口 TCP 连接超时
	Workers        int           `yaml:"workers" mapstructure:"workers"`                 // 存活探测并发数（宽池）
	IncludeUnowned bool          `yaml:"include_unowned" mapstructure:"include_unowned"` // 是否保留无法归属进程的开放端口
}

// DiscoverConfig HTTP 路由发现配置
type DiscoverConfig struct {
	Timeout       time.Duration `yaml:"timeout" mapstructure:"timeout"`             // 单次 HTTP 请求超时
	Workers       int           `yaml:"workers" mapstructure:"workers"`             // 路由发现并发数（窄池）
	Comprehensive bool          `yaml:"comprehensive" mapstructure:"comprehensive"` // 是否使用全框架路径集
	Catalog       string        `yaml:"catalog" mapstructure:"catalog"`             // 外部路径目录文件 (yaml)，为空则使用内置目录
}

// Validate 校验配置合法性
func (c *Config) Validate() error {
	if c.Scan != nil {
		if c.Scan.Timeout <= 0 {
			return fmt.Errorf("scan.timeout must be positive")
		}
		if c.Scan.Workers <= 0 {
			return fmt.Errorf("scan.workers must be positive")
		}
	}
	if c.Discover != nil {
		if c.Discover.Timeout <= 0 {
			return fmt.Errorf("discover.timeout must be positive")
		}
		if c.Discover.Workers <= 0 {
			return fmt.Errorf("discover.workers must be positive")
		}
	}
	return nil
}

// Default 返回内置默认配置
// 宽池 100 / 窄池 10 的差异是刻意的: TCP 连接便宜，HTTP 探测重且目标进程可能脆弱
func Default() *Config {
	return &Config{
		App: &AppConfig{
			Name:        "portsy",
			Environment: "production",
		},
		Log: &LogConfig{
			Level:  "fatal",
			Format: "text",
			Output: "stdout",
		},
		Scan: &ScanConfig{
			Timeout: 500 * time.Millisecond,
			Workers: 100,
		},
		Discover: &DiscoverConfig{
			Timeout: 2 * time.Second,
			Workers: 10,
		},
	}
}
