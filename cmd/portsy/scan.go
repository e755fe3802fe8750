/*
 * @author: sun977
 * @date: 2026.02.12
 * @description: scan 子命令 (核心管线入口)
 */

package main

import (
	"context"

	"github.com/CrazyDubya/portsy/internal/core/options"
	"github.com/CrazyDubya/portsy/internal/core/pipeline"

	"github.com/spf13/cobra"
)

func newScanCmd() *cobra.Command {
	opts := options.NewScanOptions()

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "扫描本机端口并分析服务",
		Long: `扫描本机 TCP 端口，对开放端口做进程归属，
并发探测 HTTP 路由签名，最后报告疑似重复的服务组。

示例:
  portsy scan --preset quick
  portsy scan --start 3000 --end 3100 --comprehensive-routes
  portsy scan --preset dev --output-json scan.json --output-csv scan.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// 配置文件提供默认值，显式 flag 覆盖
			applyConfigDefaults(cmd, opts)

			runner := pipeline.NewRunner(opts)
			return runner.Run(context.Background())
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.StartPort, "start", opts.StartPort, "起始端口")
	flags.IntVar(&opts.EndPort, "end", opts.EndPort, "结束端口")
	flags.StringVarP(&opts.Preset, "preset", "P", "", "使用命名预设 (见 portsy presets)")
	flags.DurationVar(&opts.Timeout, "timeout", opts.Timeout, "单端口 TCP 连接超时")
	flags.IntVar(&opts.Workers, "workers", opts.Workers, "存活探测并发数")
	flags.BoolVar(&opts.IncludeUnowned, "include-unowned", false, "保留无法归属进程的开放端口")
	flags.BoolVar(&opts.NoRoutes, "no-routes", false, "跳过 HTTP 路由发现")
	flags.BoolVar(&opts.Comprehensive, "comprehensive-routes", false, "使用全框架候选路径集")
	flags.DurationVar(&opts.RouteTimeout, "route-timeout", opts.RouteTimeout, "单次 HTTP 请求超时")
	flags.IntVar(&opts.RouteWorkers, "route-workers", opts.RouteWorkers, "路由发现并发数")
	flags.StringVar(&opts.PathCatalog, "path-catalog", "", "外部候选路径目录文件 (yaml)")
	flags.BoolVar(&opts.NoDuplicates, "no-duplicates", false, "跳过重复服务聚类")
	flags.StringVar(&opts.Output.OutputJSON, "output-json", "", "导出 JSON 文件路径 (alias: --oj)")
	flags.StringVar(&opts.Output.OutputCSV, "output-csv", "", "导出 CSV 文件路径 (alias: --oc)")

	// 注册别名 (Hidden flags) 方便用户使用简短命令
	flags.StringVar(&opts.Output.OutputJSON, "oj", "", "output-json 简写")
	flags.Lookup("oj").Hidden = true
	flags.StringVar(&opts.Output.OutputCSV, "oc", "", "output-csv 简写")
	flags.Lookup("oc").Hidden = true

	return cmd
}

// applyConfigDefaults 把配置文件里的默认值应用到未显式设置的 flag 上
func applyConfigDefaults(cmd *cobra.Command, opts *options.ScanOptions) {
	if appConfig == nil {
		return
	}
	flags := cmd.Flags()

	if !flags.Changed("timeout") && appConfig.Scan.Timeout > 0 {
		opts.Timeout = appConfig.Scan.Timeout
	}
	if !flags.Changed("workers") && appConfig.Scan.Workers > 0 {
		opts.Workers = appConfig.Scan.Workers
	}
	if !flags.Changed("include-unowned") {
		opts.IncludeUnowned = appConfig.Scan.IncludeUnowned
	}
	if !flags.Changed("route-timeout") && appConfig.Discover.Timeout > 0 {
		opts.RouteTimeout = appConfig.Discover.Timeout
	}
	if !flags.Changed("route-workers") && appConfig.Discover.Workers > 0 {
		opts.RouteWorkers = appConfig.Discover.Workers
	}
	if !flags.Changed("comprehensive-routes") {
		opts.Comprehensive = appConfig.Discover.Comprehensive
	}
	if !flags.Changed("path-catalog") && appConfig.Discover.Catalog != "" {
		opts.PathCatalog = appConfig.Discover.Catalog
	}
}
