package port

import (
	"fmt"

	psnet "github.com/shirou/gopsutil/v3/net"
	"github.com/shirou/gopsutil/v3/process"
)

// ProcessInfo 端口归属的进程信息
type ProcessInfo struct {
	PID     int32
	Name    string
	Cmdline string
}

// ProcessResolver 将一个已确认开放的端口映射到其监听进程
// 返回 (nil, nil) 表示查不到归属；错误和查不到在调用方视角等价，
// 都会导致该端口的发现被丢弃（除非配置保留无归属端口）
type ProcessResolver interface {
	Resolve(port int) (*ProcessInfo, error)
}

// SystemResolver 基于 gopsutil 的默认实现
// 多个进程监听同一端口时取系统返回的第一个匹配，顺序不可依赖
type SystemResolver struct{}

// NewSystemResolver 创建系统进程解析器
func NewSystemResolver() *SystemResolver {
	return &SystemResolver{}
}

// Resolve 查询监听指定 TCP 端口的进程
func (r *SystemResolver) Resolve(port int) (*ProcessInfo, error) {
	conns, err := psnet.Connections("tcp")
	if err != nil {
		return nil, fmt.Errorf("failed to list tcp connections: %w", err)
	}

	for _, conn := range conns {
		if conn.Status != "LISTEN" || conn.Laddr.Port != uint32(port) {
			continue
		}
		if conn.Pid <= 0 {
			// 内核 socket 或权限不足，视为无归属
			continue
		}

		proc, err := process.NewProcess(conn.Pid)
		if err != nil {
			return nil, fmt.Errorf("failed to open process %d: %w", conn.Pid, err)
		}

		name, err := proc.Name()
		if err != nil {
			return nil, fmt.Errorf("failed to read process name for pid %d: %w", conn.Pid, err)
		}

		// cmdline 读取失败不致命，保留空串
		cmdline, _ := proc.Cmdline()

		return &ProcessInfo{
			PID:     conn.Pid,
			Name:    name,
			Cmdline: cmdline,
		}, nil
	}

	return nil, nil
}
