/**
 * 结果输出接口定义
 * @author: sun977
 * @date: 2026.02.12
 * @description: 定义结果输出的通用接口，解耦 Console/CSV/JSON 输出
 */

package reporter

import (
	"github.com/CrazyDubya/portsy/internal/core/model"
)

// TabularData 可以被渲染为表格的数据
// 任何想要在控制台漂亮打印的结果都应该实现此接口
type TabularData interface {
	TableHeaders() []string
	TableRows() [][]string
}

// Reporter 定义扫描结果的输出行为
type Reporter interface {
	// Report 输出一次扫描的完整结果
	Report(registry model.Registry, groups []*model.DuplicateGroup) error
}

// MultiReporter 同时向多个目标输出 (e.g. Console + JSON 文件)
type MultiReporter struct {
	reporters []Reporter
}

func NewMultiReporter(reporters ...Reporter) *MultiReporter {
	return &MultiReporter{reporters: reporters}
}

func (m *MultiReporter) Report(registry model.Registry, groups []*model.DuplicateGroup) error {
	var firstErr error
	for _, r := range m.reporters {
		if err := r.Report(registry, groups); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
