package options

import (
	"fmt"
	"sort"
	"time"

	"github.com/CrazyDubya/portsy/internal/core/preset"
)

// OutputOptions 定义结果输出的通用参数
type OutputOptions struct {
	OutputJSON string // --output-json
	OutputCSV  string // --output-csv
}

// ScanOptions 定义 scan 命令的完整参数
type ScanOptions struct {
	StartPort int
	EndPort   int
	Preset    string

	Timeout        time.Duration
	Workers        int
	IncludeUnowned bool

	NoRoutes      bool
	Comprehensive bool
	RouteTimeout  time.Duration
	RouteWorkers  int
	PathCatalog   string

	NoDuplicates bool

	Output OutputOptions
}

// NewScanOptions 创建带默认值的参数
func NewScanOptions() *ScanOptions {
	return &ScanOptions{
		StartPort:    1,
		EndPort:      65535,
		Timeout:      500 * time.Millisecond,
		Workers:      100,
		RouteTimeout: 2 * time.Second,
		RouteWorkers: 10,
	}
}

// Validate 校验参数
// 这是管线里唯一同步失败的地方: 结构非法的输入在派发任何任务前报错，
// 之后的单项探测失败全部就地吸收
func (o *ScanOptions) Validate() error {
	if o.Preset != "" {
		if _, ok := preset.Lookup(o.Preset); !ok {
			return fmt.Errorf("unknown preset %q (available: %v)", o.Preset, preset.Names())
		}
		return nil
	}

	if o.StartPort < 1 || o.StartPort > 65535 {
		return fmt.Errorf("start port %d out of range [1, 65535]", o.StartPort)
	}
	if o.EndPort < 1 || o.EndPort > 65535 {
		return fmt.Errorf("end port %d out of range [1, 65535]", o.EndPort)
	}
	if o.StartPort > o.EndPort {
		return fmt.Errorf("inverted port range [%d, %d]", o.StartPort, o.EndPort)
	}
	return nil
}

// Ports 解析参数为待扫描端口列表（去重、升序）
// 必须在 Validate 之后调用
func (o *ScanOptions) Ports() []int {
	if o.Preset != "" {
		p, _ := preset.Lookup(o.Preset)
		return p.Ports()
	}

	ports := make([]int, 0, o.EndPort-o.StartPort+1)
	for p := o.StartPort; p <= o.EndPort; p++ {
		ports = append(ports, p)
	}
	sort.Ints(ports)
	return ports
}

// Description 扫描目标的人类可读描述
func (o *ScanOptions) Description() string {
	if o.Preset != "" {
		p, _ := preset.Lookup(o.Preset)
		return fmt.Sprintf("preset %q (%s)", o.Preset, p.Description)
	}
	return fmt.Sprintf("ports %d-%d", o.StartPort, o.EndPort)
}
