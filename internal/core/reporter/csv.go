package reporter

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/CrazyDubya/portsy/internal/core/model"

	"github.com/pterm/pterm"
)

// SaveCSVResult 一次性将服务注册表保存为 CSV
// CSV 是扁平视图，只包含服务表，重复组信息走 JSON 导出
// 零发现的干净运行也产出只含表头的文件，不算错误
func SaveCSVResult(path string, registry model.Registry) error {
	items := make([]TabularData, 0, len(registry))
	for _, svc := range registry.Services() {
		items = append(items, svc)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create csv file: %w", err)
	}
	defer f.Close()

	// 写入 UTF-8 BOM，防止 Excel 打开乱码
	f.WriteString("\xEF\xBB\xBF")

	w := csv.NewWriter(f)
	defer w.Flush()

	headers := new(model.Service).TableHeaders()
	if len(items) > 0 {
		headers = items[0].TableHeaders()
	}
	if err := w.Write(headers); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}

	for _, item := range items {
		for _, row := range item.TableRows() {
			if err := w.Write(row); err != nil {
				return fmt.Errorf("failed to write row: %w", err)
			}
		}
	}

	return nil
}

// CSVReporter 把 CSV 导出挂到 Reporter 接口上，便于和控制台输出组合
type CSVReporter struct {
	Path string
}

func NewCSVReporter(path string) *CSVReporter {
	return &CSVReporter{Path: path}
}

func (r *CSVReporter) Report(registry model.Registry, _ []*model.DuplicateGroup) error {
	if err := SaveCSVResult(r.Path, registry); err != nil {
		return fmt.Errorf("csv export failed: %w", err)
	}
	pterm.Success.Printfln("Results exported to %s", r.Path)
	return nil
}
