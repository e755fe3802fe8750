/**
 * 扫描管线编排
 * @author: sun977
 * @date: 2026.02.12
 * @description: 串联 存活扫描 -> 进程归属 -> 路由发现 -> 重复聚类 -> 输出 的全流程
 */

package pipeline

import (
	"context"

	"github.com/CrazyDubya/portsy/internal/core/duplicate"
	"github.com/CrazyDubya/portsy/internal/core/model"
	"github.com/CrazyDubya/portsy/internal/core/options"
	"github.com/CrazyDubya/portsy/internal/core/reporter"
	"github.com/CrazyDubya/portsy/internal/core/scanner/port"
	"github.com/CrazyDubya/portsy/internal/core/scanner/route"
	"github.com/CrazyDubya/portsy/internal/pkg/logger"

	"github.com/pterm/pterm"
)

// Runner 管线运行器
type Runner struct {
	opts     *options.ScanOptions
	reporter reporter.Reporter
}

// NewRunner 创建管线运行器
// 控制台输出始终存在，JSON/CSV 导出按参数挂到同一个组合 Reporter 上
func NewRunner(opts *options.ScanOptions) *Runner {
	reporters := []reporter.Reporter{reporter.NewConsoleReporter()}
	if path := opts.Output.OutputJSON; path != "" {
		reporters = append(reporters, reporter.NewJSONReporter(path))
	}
	if path := opts.Output.OutputCSV; path != "" {
		reporters = append(reporters, reporter.NewCSVReporter(path))
	}
	return &Runner{
		opts:     opts,
		reporter: reporter.NewMultiReporter(reporters...),
	}
}

// Run 执行完整管线
// 返回错误的只有输入校验和导出写文件；所有单项探测失败都已在下层吸收
func (r *Runner) Run(ctx context.Context) error {
	if err := r.opts.Validate(); err != nil {
		return err
	}

	ports := r.opts.Ports()
	pterm.Info.Printfln("Scanning %s (%d ports)...", r.opts.Description(), len(ports))
	if len(ports) > 20000 {
		// 不设隐藏上限，只提醒操作者全量扫描就是慢
		pterm.Warning.Println("Large port range, this may take several minutes...")
	}

	// 阶段一/二: 端口存活 + 进程归属
	registry := r.scan(ctx, ports)
	pterm.Info.Printfln("Found %d attributable services", len(registry))

	// 阶段三: 路由发现
	if !r.opts.NoRoutes {
		r.discoverRoutes(ctx, registry)
	}

	// 阶段四: 重复聚类
	var groups []*model.DuplicateGroup
	if !r.opts.NoDuplicates {
		groups = duplicate.FindDuplicates(registry)
		logger.Debugf("[Pipeline] clustering produced %d groups", len(groups))
	}

	return r.reporter.Report(registry, groups)
}

// scan 存活 + 归属两阶段
func (r *Runner) scan(ctx context.Context, ports []int) model.Registry {
	coordinator := port.NewCoordinator(port.Options{
		Timeout:        r.opts.Timeout,
		Workers:        r.opts.Workers,
		IncludeUnowned: r.opts.IncludeUnowned,
	})
	return coordinator.Scan(ctx, ports)
}

// discoverRoutes 窄池并发的 HTTP 路由发现
func (r *Runner) discoverRoutes(ctx context.Context, registry model.Registry) {
	catalog := route.DefaultCatalog()
	if r.opts.PathCatalog != "" {
		loaded, err := route.LoadCatalog(r.opts.PathCatalog)
		if err != nil {
			// 外部目录坏了退回内置目录，扫描继续
			pterm.Warning.Printfln("Failed to load path catalog: %v (using built-in)", err)
		} else {
			catalog = loaded
		}
	}

	paths := catalog.Common()
	mode := "standard"
	if r.opts.Comprehensive {
		paths = catalog.All()
		mode = "comprehensive"
	}
	pterm.Info.Printfln("Discovering HTTP routes (%s mode, %d candidate paths)...", mode, len(paths))

	prober := route.NewProber(r.opts.RouteTimeout, paths)
	route.DiscoverAll(ctx, registry, prober, r.opts.RouteWorkers)
}
