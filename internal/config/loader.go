package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// ConfigLoader 配置加载器
type ConfigLoader struct {
	configPath string
	envPrefix  string
	viper      *viper.Viper
}

// NewConfigLoader 创建配置加载器
func NewConfigLoader(configPath string) *ConfigLoader {
	return &ConfigLoader{
		configPath: configPath,
		envPrefix:  "PORTSY",
		viper:      viper.New(),
	}
}

// LoadConfig 加载配置
// 优先级: 环境变量 > 配置文件 > 内置默认值
// 配置文件缺失不是错误: Portsy 作为单文件 CLI 必须可以零配置运行
func (cl *ConfigLoader) LoadConfig() (*Config, error) {
	cl.viper.SetConfigType("yaml")

	// 环境变量 PORTSY_SCAN_WORKERS 等
	cl.viper.SetEnvPrefix(cl.envPrefix)
	cl.viper.AutomaticEnv()
	cl.viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cl.setDefaults()

	if err := cl.loadConfigFile(); err != nil {
		return nil, err
	}

	var config Config
	if err := cl.viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// loadConfigFile 加载配置文件
func (cl *ConfigLoader) loadConfigFile() error {
	if cl.configPath != "" {
		// 显式指定的配置文件必须存在
		cl.viper.SetConfigFile(cl.configPath)
		if err := cl.viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", cl.configPath, err)
		}
		return nil
	}

	if envPath := os.Getenv("PORTSY_CONFIG_PATH"); envPath != "" {
		cl.viper.SetConfigFile(envPath)
		if err := cl.viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", envPath, err)
		}
		return nil
	}

	// 默认搜索路径，找不到就回落到默认值
	cl.viper.AddConfigPath("./configs")
	cl.viper.AddConfigPath(".")
	cl.viper.SetConfigName("config")
	if err := cl.viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// setDefaults 设置默认值
func (cl *ConfigLoader) setDefaults() {
	def := Default()

	cl.viper.SetDefault("app.name", def.App.Name)
	cl.viper.SetDefault("app.environment", def.App.Environment)
	cl.viper.SetDefault("app.debug", def.App.Debug)

	cl.viper.SetDefault("log.level", def.Log.Level)
	cl.viper.SetDefault("log.format", def.Log.Format)
	cl.viper.SetDefault("log.output", def.Log.Output)
	cl.viper.SetDefault("log.max_size", 10)
	cl.viper.SetDefault("log.max_backups", 3)
	cl.viper.SetDefault("log.max_age", 7)

	cl.viper.SetDefault("scan.timeout", def.Scan.Timeout)
	cl.viper.SetDefault("scan.workers", def.Scan.Workers)
	cl.viper.SetDefault("scan.include_unowned", def.Scan.IncludeUnowned)

	cl.viper.SetDefault("discover.timeout", def.Discover.Timeout)
	cl.viper.SetDefault("discover.workers", def.Discover.Workers)
	cl.viper.SetDefault("discover.comprehensive", def.Discover.Comprehensive)
	cl.viper.SetDefault("discover.catalog", "")
}
