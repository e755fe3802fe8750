package reporter

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/CrazyDubya/portsy/internal/core/model"

	"github.com/pterm/pterm"
)

// ScanDocument JSON 导出文档
// services 以端口字符串为键，包含完整服务记录，
// 未完成探测的服务保留空 routes 和空指纹
type ScanDocument struct {
	ScanTime string                    `json:"scan_time"`
	Services map[string]*model.Service `json:"services"`
}

// NewScanDocument 从注册表构建导出文档
func NewScanDocument(registry model.Registry) *ScanDocument {
	services := make(map[string]*model.Service, len(registry))
	for port, svc := range registry {
		services[strconv.Itoa(port)] = svc
	}
	return &ScanDocument{
		ScanTime: time.Now().Format("2006-01-02 15:04:05"),
		Services: services,
	}
}

// SaveJSONResult 将扫描结果保存为 JSON 文件
func SaveJSONResult(path string, registry model.Registry) error {
	doc := NewScanDocument(registry)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal scan document: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write json file: %w", err)
	}
	return nil
}

// JSONReporter 把 JSON 导出挂到 Reporter 接口上，便于和控制台输出组合
type JSONReporter struct {
	Path string
}

func NewJSONReporter(path string) *JSONReporter {
	return &JSONReporter{Path: path}
}

func (r *JSONReporter) Report(registry model.Registry, _ []*model.DuplicateGroup) error {
	if err := SaveJSONResult(r.Path, registry); err != nil {
		return fmt.Errorf("json export failed: %w", err)
	}
	pterm.Success.Printfln("Results exported to %s", r.Path)
	return nil
}
