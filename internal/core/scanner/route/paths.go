/**
 * 候选路径目录
 * @author: sun977
 * @date: 2026.02.11
 * @description: 按框架组织的已知路径签名，支持从外部 yaml 目录加载
 */

package route

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Catalog 框架名 -> 候选路径 的目录
// 目录是配置不是行为: common/comprehensive 两种模式消费同一份数据
type Catalog map[string][]string

// defaultCatalog 内置路径目录
var defaultCatalog = Catalog{
	"common": {
		"/", "/api", "/api/v1", "/api/v2", "/health", "/status",
		"/metrics", "/swagger", "/docs", "/graphql", "/admin",
		"/login", "/register", "/dashboard", "/home", "/about",
		"/.well-known", "/robots.txt", "/sitemap.xml", "/favicon.ico",
	},
	"flask": {
		"/static", "/_debug", "/api/health", "/flask-admin",
		"/admin/static", "/debug", "/blueprint", "/api/v1", "/api/v2",
		"/health", "/status", "/metrics", "/ping", "/info", "/version",
		"/api/status", "/api/info", "/api/ping", "/api/version",
		"/api/docs", "/api/spec", "/api/swagger", "/routes",
	},
	"django": {
		"/django-admin", "/static", "/media", "/admin/login",
		"/api-auth", "/api/schema", "/dj-rest-auth", "/accounts",
	},
	"fastapi": {
		"/docs", "/redoc", "/openapi.json", "/api/docs",
		"/health", "/metrics", "/status", "/api/v1/health",
	},
	"express": {
		"/api", "/users", "/auth", "/public", "/assets",
		"/socket.io", "/webpack-dev-server", "/hmr", "/api/health",
		"/api/status", "/api/info", "/api/version", "/routes",
	},
	"rails": {
		"/rails/info", "/rails/mailers", "/assets", "/admin",
		"/api/v1", "/users", "/sessions", "/devise",
	},
	"laravel": {
		"/api", "/admin", "/telescope", "/horizon", "/nova",
		"/broadcasting/auth", "/sanctum", "/passport",
	},
	"gin": {
		"/ping", "/health", "/metrics", "/api/v1",
		"/swagger", "/debug/pprof", "/static",
	},
	"gorilla": {
		"/api", "/health", "/metrics", "/static",
		"/ws", "/websocket", "/debug",
	},
	"fiber": {
		"/api", "/health", "/metrics", "/swagger",
		"/static", "/ws", "/monitor",
	},
	"spring": {
		"/actuator", "/actuator/health", "/actuator/metrics",
		"/actuator/info", "/api", "/swagger-ui", "/h2-console",
	},
	"quarkus": {
		"/q/health", "/q/metrics", "/q/openapi", "/q/swagger-ui",
		"/q/dev", "/api", "/health/live", "/health/ready",
	},
	"ollama": {
		"/api/tags", "/api/generate", "/api/chat", "/api/embeddings",
		"/api/create", "/api/show", "/api/copy", "/api/delete",
		"/api/pull", "/api/push", "/api/version", "/v1/chat/completions",
	},
	"jupyter": {
		"/api", "/api/kernels", "/api/sessions", "/api/contents",
		"/tree", "/notebooks", "/terminals", "/lab", "/static",
	},
	"vscode": {
		"/vscode-remote-resource", "/$vscode-remote",
		"/static", "/workbench", "/api",
	},
	"streamlit": {
		"/_stcore", "/healthz", "/static", "/media",
		"/_stcore/health", "/_stcore/stream",
	},
	"gradio": {
		"/api", "/api/predict", "/queue/join", "/queue/data",
		"/static", "/file", "/upload", "/component_server",
	},
	"nginx": {
		"/nginx_status", "/status", "/server-status",
		"/server-info", "/stats",
	},
	"apache": {
		"/server-status", "/server-info", "/stats",
		"/cgi-bin", "/icons",
	},
	"dev_servers": {
		"/webpack-dev-server", "/__webpack_dev_server__",
		"/sockjs-node", "/__dev__", "/hot-update",
		"/hmr", "/__vite_ping", "/__vite_client",
	},
}

// DefaultCatalog 返回内置目录的副本
func DefaultCatalog() Catalog {
	out := make(Catalog, len(defaultCatalog))
	for k, v := range defaultCatalog {
		paths := make([]string, len(v))
		copy(paths, v)
		out[k] = paths
	}
	return out
}

// LoadCatalog 从 yaml 文件加载外部目录
// 文件格式: 框架名到路径列表的映射，整体替换内置目录
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read path catalog %s: %w", path, err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse path catalog %s: %w", path, err)
	}
	if len(c) == 0 {
		return nil, fmt.Errorf("path catalog %s is empty", path)
	}
	return c, nil
}

// Common 精选公共路径集
func (c Catalog) Common() []string {
	return c["common"]
}

// All 全框架路径集（去重、升序）
func (c Catalog) All() []string {
	seen := make(map[string]struct{})
	for _, paths := range c {
		for _, p := range paths {
			seen[p] = struct{}{}
		}
	}
	all := make([]string, 0, len(seen))
	for p := range seen {
		all = append(all, p)
	}
	sort.Strings(all)
	return all
}
