package port

import (
	"context"
	"net"
	"strconv"
	"time"
)

// DefaultTimeout 单端口探测默认超时
const DefaultTimeout = 500 * time.Millisecond

// Probe 单端口 TCP 存活探测器
// 无共享状态，可以在不相交的端口上任意并发
type Probe struct {
	Timeout time.Duration
}

// NewProbe 创建探测器
func NewProbe(timeout time.Duration) *Probe {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Probe{Timeout: timeout}
}

// Alive 对回环地址上的端口做一次短连接探测
// 超时、拒绝和其它连接错误一律视为关闭，不做区分，不重试
func (p *Probe) Alive(ctx context.Context, port int) bool {
	d := net.Dialer{Timeout: p.Timeout}
	address := net.JoinHostPort("127.0.0.1", strconv.Itoa(port))

	conn, err := d.DialContext(ctx, "tcp", address)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}
