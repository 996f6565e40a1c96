// Package client 执行 HTTP 请求
package client

import (
	"context"
	"fmt"
	"github.com/donething/utils-go/dohttp"
	"golang.org/x/time/rate"
	"time"
)

// 请求的超时时间
const timeout = 30 * time.Second

// Client 执行 HTTP 请求的客户端，调用 Init 后按配置重新创建
var Client = New(dohttp.New(timeout, false, false), 0)

// HTTPGetter 执行 GET 请求
type HTTPGetter interface {
	Get(u string, headers map[string]string) ([]byte, error)
}

// Downloader 限制请求频率的下载器，可并发使用
type Downloader struct {
	http    HTTPGetter
	limiter *rate.Limiter
}

// New 创建下载器。ratePerSec 不大于 0 时不限制频率
func New(h HTTPGetter, ratePerSec float64) *Downloader {
	d := &Downloader{http: h}
	if ratePerSec > 0 {
		d.limiter = rate.NewLimiter(rate.Limit(ratePerSec), 1)
	}
	return d
}

// Init 按配置创建客户端
func Init(proxy string, ratePerSec float64) error {
	c := dohttp.New(timeout, false, false)
	// 如果配置中指定了代理，需要设置
	if proxy != "" {
		if err := c.SetProxy(proxy); err != nil {
			return fmt.Errorf("设置代理'%s'出错：%w", proxy, err)
		}
	}
	Client = New(c, ratePerSec)
	return nil
}

// Get 等待频率限制后下载链接的数据
func (d *Downloader) Get(ctx context.Context, u string, headers map[string]string) ([]byte, error) {
	if d.limiter != nil {
		if err := d.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	} else if err := ctx.Err(); err != nil {
		return nil, err
	}
	return d.http.Get(u, headers)
}
