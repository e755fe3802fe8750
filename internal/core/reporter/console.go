package reporter

import (
	"fmt"

	"github.com/CrazyDubya/portsy/internal/core/model"

	"github.com/pterm/pterm" // 引入 pterm 库用于控制台输出
)

// ConsoleReporter 控制台输出
type ConsoleReporter struct{}

func NewConsoleReporter() *ConsoleReporter {
	return &ConsoleReporter{}
}

func (r *ConsoleReporter) Report(registry model.Registry, groups []*model.DuplicateGroup) error {
	if len(registry) == 0 {
		pterm.Warning.Println("No attributable services found.")
		return nil
	}

	pterm.DefaultSection.Println("Running Services")
	items := make([]TabularData, 0, len(registry))
	for _, svc := range registry.Services() {
		items = append(items, svc)
	}
	if err := r.printTable(items); err != nil {
		return err
	}

	if groups == nil {
		return nil
	}
	if len(groups) == 0 {
		pterm.Success.Println("No potential duplicates detected.")
		return nil
	}

	pterm.DefaultSection.Println("Potential Duplicate Services")
	for _, g := range groups {
		pterm.Warning.Printfln("%s:", g.Label())
		for _, svc := range g.Services {
			pterm.Printfln("  - Port %d: %s (PID: %d)", svc.Port, svc.ProcessName, svc.PID)
		}
	}
	return nil
}

// printTable 渲染任意 TabularData 集合，表头取自第一个元素
func (r *ConsoleReporter) printTable(items []TabularData) error {
	if len(items) == 0 {
		return nil
	}

	tableData := pterm.TableData{items[0].TableHeaders()}
	for _, item := range items {
		tableData = append(tableData, item.TableRows()...)
	}

	err := pterm.DefaultTable.
		WithHasHeader(true).
		WithBoxed(false). // 简洁风格
		WithData(tableData).
		Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}
