package main

import (
	"fmt"

	"github.com/CrazyDubya/portsy/internal/core/preset"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "列出可用的扫描预设",
		Run: func(cmd *cobra.Command, args []string) {
			tableData := pterm.TableData{{"Name", "Ranges", "Description"}}
			for _, name := range preset.Names() {
				p, _ := preset.Lookup(name)
				ranges := ""
				for i, r := range p.Ranges {
					if i > 0 {
						ranges += ", "
					}
					ranges += fmt.Sprintf("%d-%d", r.Start, r.End)
				}
				tableData = append(tableData, []string{name, ranges, p.Description})
			}

			if err := pterm.DefaultTable.WithHasHeader(true).WithData(tableData).Render(); err != nil {
				// 渲染失败退回普通打印
				for _, row := range tableData {
					fmt.Println(row)
				}
			}
			fmt.Println("\nUsage: portsy scan --preset <name>")
		},
	}
}
