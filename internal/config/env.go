package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadEnvFile 加载 .env 文件到进程环境变量
// .env 不存在不是错误，viper 的 AutomaticEnv 会在之后读取这些变量
func LoadEnvFile(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return err
		}
	}
	return nil
}
