/**
 * 服务模型定义 (Core Domain)
 * @author: sun977
 * @date: 2026.02.10
 * @description: 单次扫描中发现的本机服务及其 HTTP 探测快照
 */

package model

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ServiceState 服务状态
// 状态机: Discovered -> Probed，单次运行内终止，不跨运行持久化
type ServiceState string

const (
	StateDiscovered ServiceState = "discovered" // 端口开放且进程已归属
	StateProbed     ServiceState = "probed"     // 路由/指纹探测完成
)

// UnknownProcess 保留无归属端口时使用的占位进程名
// 占位名不是真实身份，不参与按进程名的重复划分
const UnknownProcess = "unknown"

// Discovery 路由发现快照
// Routes/Headers/Fingerprint/ResponseTime 要么全部填充要么全部缺失，
// 作为一个不可变整体挂到 Service 上，避免读者观察到半成品
type Discovery struct {
	Routes       []string          // 确认存在的路径集合（去重、升序）
	Headers      map[string]string // 根路径响应头
	Fingerprint  string            // 短指纹（完整摘要的前缀）
	FullDigest   string            // 完整摘要，聚类只用短指纹，保留完整值备用
	ResponseTime time.Duration     // 根路径请求耗时
}

// Service 本机一个开放端口上的服务
// Port 是注册表主键，单次运行内唯一
type Service struct {
	Port        int
	PID         int32
	ProcessName string
	ProcessCmd  string
	Protocol    string // 本工具只做 TCP

	discovery *Discovery
}

// NewService 创建一个已归属进程的服务
func NewService(port int, pid int32, name, cmdline string) *Service {
	return &Service{
		Port:        port,
		PID:         pid,
		ProcessName: name,
		ProcessCmd:  cmdline,
		Protocol:    "tcp",
	}
}

// AttachDiscovery 原子挂载探测快照
// 每个服务只会被一个 worker 探测，整体指针赋值保证不会出现部分填充
func (s *Service) AttachDiscovery(d *Discovery) {
	s.discovery = d
}

// Discovery 返回探测快照，未探测成功时为 nil
func (s *Service) Discovery() *Discovery {
	return s.discovery
}

// Probed 根路径探测是否成功
func (s *Service) Probed() bool {
	return s.discovery != nil
}

// State 当前状态
func (s *Service) State() ServiceState {
	if s.Probed() {
		return StateProbed
	}
	return StateDiscovered
}

// Routes 已确认路径，未探测时为空
func (s *Service) Routes() []string {
	if s.discovery == nil {
		return nil
	}
	return s.discovery.Routes
}

// Fingerprint 短指纹，未探测时为空串
func (s *Service) Fingerprint() string {
	if s.discovery == nil {
		return ""
	}
	return s.discovery.Fingerprint
}

// serviceJSON 导出文档中的服务记录
// 所有字段始终出现，未探测的服务 routes 为空数组、fingerprint 为空串
type serviceJSON struct {
	Port         int               `json:"port"`
	PID          int32             `json:"pid"`
	ProcessName  string            `json:"process_name"`
	ProcessCmd   string            `json:"process_cmd"`
	Protocol     string            `json:"protocol"`
	Routes       []string          `json:"routes"`
	Headers      map[string]string `json:"headers"`
	Fingerprint  string            `json:"fingerprint"`
	ResponseTime float64           `json:"response_time"` // 秒
}

// MarshalJSON 展平探测快照
func (s *Service) MarshalJSON() ([]byte, error) {
	out := serviceJSON{
		Port:        s.Port,
		PID:         s.PID,
		ProcessName: s.ProcessName,
		ProcessCmd:  s.ProcessCmd,
		Protocol:    s.Protocol,
		Routes:      []string{},
		Headers:     map[string]string{},
	}
	if d := s.discovery; d != nil {
		if len(d.Routes) > 0 {
			out.Routes = d.Routes
		}
		if len(d.Headers) > 0 {
			out.Headers = d.Headers
		}
		out.Fingerprint = d.Fingerprint
		out.ResponseTime = d.ResponseTime.Seconds()
	}
	return json.Marshal(out)
}

// TableHeaders 实现 TabularData 接口
// Port | PID  | Process    | Routes              | Response Time
// 3001 | 555  | dev-server | /, /api (+2 more)   | 12.5ms
func (s *Service) TableHeaders() []string {
	return []string{"Port", "PID", "Process", "Routes", "Response Time"}
}

// TableRows 实现 TabularData 接口
func (s *Service) TableRows() [][]string {
	routes := "N/A"
	respTime := "N/A"
	if d := s.discovery; d != nil {
		shown := d.Routes
		more := ""
		if len(shown) > 3 {
			more = fmt.Sprintf(" (+%d more)", len(shown)-3)
			shown = shown[:3]
		}
		routes = strings.Join(shown, ", ") + more
		if routes == "" {
			routes = "-"
		}
		respTime = fmt.Sprintf("%.1fms", float64(d.ResponseTime.Microseconds())/1000.0)
	}
	return [][]string{{
		fmt.Sprintf("%d", s.Port),
		fmt.Sprintf("%d", s.PID),
		s.ProcessName,
		routes,
		respTime,
	}}
}

// Registry 端口 -> 服务 的注册表，单次扫描的产物
type Registry map[int]*Service

// Ports 升序端口列表
func (r Registry) Ports() []int {
	ports := make([]int, 0, len(r))
	for p := range r {
		ports = append(ports, p)
	}
	sort.Ints(ports)
	return ports
}

// Services 按端口升序返回服务列表
func (r Registry) Services() []*Service {
	out := make([]*Service, 0, len(r))
	for _, p := range r.Ports() {
		out = append(out, r[p])
	}
	return out
}
