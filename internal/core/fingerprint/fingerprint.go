/**
 * HTTP 指纹引擎
 * @author: sun977
 * @date: 2026.02.11
 * @description: 从可观测的 HTTP 信号推导确定性短签名，只做聚类键，不做安全边界
 */

package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// ShortLen 短指纹长度（十六进制字符数）
// 截断牺牲了抗碰撞性换取紧凑的聚类键，指纹只用于启发式分组
const ShortLen = 8

// Compute 计算短指纹
// 输入三元组: Server 头、X-Powered-By 头、排序后的路由集合
// 相同三元组必然得到相同指纹
func Compute(server, poweredBy string, routes []string) string {
	return Digest(server, poweredBy, routes)[:ShortLen]
}

// Digest 计算完整摘要（十六进制）
// 聚类只消费 Compute 的前缀，完整值保留给需要更强保证的调用方
func Digest(server, poweredBy string, routes []string) string {
	sorted := make([]string, len(routes))
	copy(sorted, routes)
	sort.Strings(sorted)

	var b strings.Builder
	b.WriteString(strings.TrimSpace(server))
	b.WriteString(strings.TrimSpace(poweredBy))
	b.WriteString(strings.Join(sorted, ","))

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
