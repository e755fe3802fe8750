package model

import (
	"fmt"
	"strings"
)

// GroupCriterion 分组判据
type GroupCriterion string

const (
	CriterionProcess     GroupCriterion = "process"     // 按进程名分组
	CriterionFingerprint GroupCriterion = "fingerprint" // 按指纹分组
)

// DuplicateGroup 疑似重复服务组
// Services 是共享引用，一个服务可以同时出现在进程组和指纹组里
type DuplicateGroup struct {
	Criterion     GroupCriterion
	Discriminator string     // 判据取值（进程名或指纹）
	Sequence      int        // 单次运行内单调递增的消歧序号
	Services      []*Service // 按端口升序
}

// Label 组标签，如 process_node_1 / fingerprint_a3f9c2d1_2
func (g *DuplicateGroup) Label() string {
	return fmt.Sprintf("%s_%s_%d", g.Criterion, g.Discriminator, g.Sequence)
}

// TableHeaders 实现 TabularData 接口
func (g *DuplicateGroup) TableHeaders() []string {
	return []string{"Group", "Port", "Process", "PID"}
}

// TableRows 实现 TabularData 接口
func (g *DuplicateGroup) TableRows() [][]string {
	rows := make([][]string, 0, len(g.Services))
	for _, svc := range g.Services {
		rows = append(rows, []string{
			g.Label(),
			fmt.Sprintf("%d", svc.Port),
			svc.ProcessName,
			fmt.Sprintf("%d", svc.PID),
		})
	}
	return rows
}

// String 人类可读的组描述
func (g *DuplicateGroup) String() string {
	ports := make([]string, 0, len(g.Services))
	for _, svc := range g.Services {
		ports = append(ports, fmt.Sprintf("%d", svc.Port))
	}
	return fmt.Sprintf("%s [ports %s]", g.Label(), strings.Join(ports, ", "))
}
