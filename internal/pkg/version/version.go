package version

var (
	Version   = "1.2.0" // 版本号 -- 发布时候更新版本号
	BuildTime string
	GitCommit string
	GoVersion string
)

func GetVersion() string {
	return Version
}

// GetUserAgent 探测请求使用的 UA
// 本工具只探测本机回环地址，UA 仅用于在目标服务日志中标识自己
func GetUserAgent() string {
	return "Portsy/" + Version + " (local service discovery; +https://github.com/CrazyDubya/portsy)"
}
