/*
 * @author: sun977
 * @date: 2026.02.12
 * @description: Cobra Root Command 定义
 */

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/CrazyDubya/portsy/internal/config"
	"github.com/CrazyDubya/portsy/internal/pkg/logger"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	appConfig *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "portsy",
	Short: "Portsy 本机端口与路由分析工具",
	Long: `Portsy 扫描本机 TCP 端口，解析端口归属进程，
探测 HTTP 路由签名，并将疑似重复的开发服务分组报告。

示例:
  1.快速扫描常用开发端口
	portsy scan --preset quick
  2.扫描指定范围并导出 JSON
	portsy scan --start 3000 --end 9000 --output-json result.json
  3.全框架路径集探测
	portsy scan --preset dev --comprehensive-routes
`,
	// PersistentPreRun: 全局初始化逻辑，确保所有子命令都能使用配置和日志
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initAppConfig()
		initCLILogger(cmd)
	},
}

func Execute() {
	// 全局 Panic Recovery
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n[FATAL] portsy crashed unexpectedly: %v\n", r)
			os.Exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// 全局 Flag
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "配置文件路径 (默认: ./configs/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "日志级别 (debug, info, warn, error)")

	// 注册子命令
	rootCmd.AddCommand(newScanCmd())
	rootCmd.AddCommand(newPresetsCmd())
}

// initAppConfig 读取 .env、配置文件和环境变量
func initAppConfig() {
	// .env 可选，失败时静默使用进程环境
	_ = config.LoadEnvFile()

	cfg, err := config.NewConfigLoader(cfgFile).LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	appConfig = cfg
}

// initCLILogger 初始化 CLI 模式下的日志
// CLI 默认只输出 Fatal，过程信息由 pterm 负责；--log-level 打开 logrus 细节
func initCLILogger(cmd *cobra.Command) {
	level := appConfig.Log.Level
	if flag := cmd.Flags().Lookup("log-level"); flag != nil && flag.Changed {
		level = flag.Value.String()
	}

	switch level {
	case "debug":
		pterm.EnableDebugMessages()
	case "info":
		pterm.DisableDebugMessages()
	case "warn", "error", "fatal":
		pterm.DisableDebugMessages()
		pterm.Info = *pterm.Info.WithWriter(io.Discard)
	}

	logConfig := &config.LogConfig{
		Level:      level,
		Format:     appConfig.Log.Format,
		Output:     appConfig.Log.Output,
		FilePath:   appConfig.Log.FilePath,
		MaxSize:    appConfig.Log.MaxSize,
		MaxBackups: appConfig.Log.MaxBackups,
		MaxAge:     appConfig.Log.MaxAge,
		Compress:   appConfig.Log.Compress,
		Caller:     appConfig.Log.Caller,
	}

	if _, err := logger.InitLogger(logConfig); err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
	}
}
