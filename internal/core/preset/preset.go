/**
 * 扫描预设目录
 * @author: sun977
 * @date: 2026.02.10
 * @description: 静态的命名端口范围目录，预设是配置不是派生数据
 */

package preset

import (
	"sort"
)

// PortRange 闭区间端口范围 [Start, End]
type PortRange struct {
	Start int
	End   int
}

// Preset 一个命名预设: 若干端口范围 + 描述
type Preset struct {
	Ranges      []PortRange
	Description string
}

// catalog 内置预设目录
// 范围可以重叠，注册表以端口为主键，重叠是无害的
var catalog = map[string]Preset{
	"quick": {
		Ranges:      []PortRange{{3000, 9000}, {8000, 8100}},
		Description: "Common dev server ports",
	},
	"dev": {
		Ranges: []PortRange{
			{3000, 3100}, {4000, 4100}, {5000, 5100},
			{8000, 8100}, {9000, 9100}, {8080, 8090},
		},
		Description: "Extended dev server ranges",
	},
	"web": {
		Ranges: []PortRange{
			{80, 80}, {443, 443}, {8080, 8080}, {8443, 8443},
			{3000, 3100}, {8000, 8100}, {9000, 9100},
		},
		Description: "Web server ports",
	},
	"full": {
		Ranges:      []PortRange{{1, 65535}},
		Description: "Complete port range (slow)",
	},
	"services": {
		Ranges: []PortRange{
			{21, 25}, {53, 53}, {80, 80}, {110, 110}, {143, 143},
			{443, 443}, {993, 993}, {995, 995}, {1433, 1433},
			{3306, 3306}, {5432, 5432}, {6379, 6379}, {27017, 27017},
		},
		Description: "Common service ports",
	},
}

// Lookup 按名称查找预设
func Lookup(name string) (Preset, bool) {
	p, ok := catalog[name]
	return p, ok
}

// Names 返回所有预设名称（升序）
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Ports 展开预设为去重后的升序端口列表
func (p Preset) Ports() []int {
	seen := make(map[int]struct{})
	for _, r := range p.Ranges {
		for port := r.Start; port <= r.End; port++ {
			seen[port] = struct{}{}
		}
	}
	ports := make([]int, 0, len(seen))
	for port := range seen {
		ports = append(ports, port)
	}
	sort.Ints(ports)
	return ports
}
