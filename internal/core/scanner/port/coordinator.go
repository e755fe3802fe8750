/**
 * 端口扫描协调器
 * @author: sun977
 * @date: 2026.02.11
 * @description: 两阶段扫描编排，存活探测走宽并发池，进程归属串行执行
 */

package port

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/CrazyDubya/portsy/internal/core/model"
	"github.com/CrazyDubya/portsy/internal/pkg/logger"
)

// DefaultWorkers 存活探测默认并发数
// TCP 连接便宜，池子开得宽；路由发现另有自己的窄池
const DefaultWorkers = 100

// Options 协调器参数
type Options struct {
	Timeout        time.Duration // 单端口连接超时
	Workers        int           // 存活探测并发数
	IncludeUnowned bool          // 保留无法归属进程的开放端口
}

// Coordinator 编排 Probe 与 ProcessResolver，产出服务注册表
type Coordinator struct {
	opts     Options
	probe    *Probe
	resolver ProcessResolver
}

// NewCoordinator 创建协调器
func NewCoordinator(opts Options) *Coordinator {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Workers <= 0 {
		opts.Workers = DefaultWorkers
	}
	return &Coordinator{
		opts:     opts,
		probe:    NewProbe(opts.Timeout),
		resolver: NewSystemResolver(),
	}
}

// WithResolver 替换进程解析器（测试注入用）
func (c *Coordinator) WithResolver(r ProcessResolver) *Coordinator {
	c.resolver = r
	return c
}

// probeResult 存活探测结果，worker 只返回值不写共享状态
type probeResult struct {
	port int
	open bool
}

// Scan 执行两阶段扫描
// 阶段一: 宽池并发探测端口存活，结果按完成顺序到达
// 阶段二: 对开放端口按升序串行做进程归属（便宜且测试需要确定顺序）
// 除每次探测自身的超时外没有总截止时间，全量扫描预期就是慢
func (c *Coordinator) Scan(ctx context.Context, ports []int) model.Registry {
	openPorts := c.scanAlive(ctx, ports)

	logger.Debugf("[Coordinator] liveness phase done: %d/%d ports open", len(openPorts), len(ports))

	registry := make(model.Registry)
	for _, p := range openPorts {
		info, err := c.resolver.Resolve(p)
		if err != nil {
			logger.Debugf("[Coordinator] process resolution failed for port %d: %v", p, err)
			info = nil
		}
		if info == nil {
			if !c.opts.IncludeUnowned {
				// 默认行为: 无归属的开放端口整个丢弃
				logger.Debugf("[Coordinator] dropping unattributed open port %d", p)
				continue
			}
			registry[p] = model.NewService(p, 0, model.UnknownProcess, "")
			continue
		}
		registry[p] = model.NewService(p, info.PID, info.Name, info.Cmdline)
	}

	return registry
}

// scanAlive 存活探测阶段
// 信号量限宽，worker 把结果丢进 channel，由当前 goroutine 单写者收集
func (c *Coordinator) scanAlive(ctx context.Context, ports []int) []int {
	sem := make(chan struct{}, c.opts.Workers)
	results := make(chan probeResult, len(ports))

	var wg sync.WaitGroup
	for _, p := range ports {
		wg.Add(1)
		sem <- struct{}{}
		go func(p int) {
			defer wg.Done()
			defer func() { <-sem }()
			results <- probeResult{port: p, open: c.probe.Alive(ctx, p)}
		}(p)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var open []int
	for res := range results {
		if res.open {
			open = append(open, res.port)
		}
	}

	sort.Ints(open)
	return open
}
