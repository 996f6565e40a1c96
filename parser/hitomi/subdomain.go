package hitomi

import (
	"regexp"
	"strconv"
)

const (
	// DefaultDomain 图片所在的主机域名
	DefaultDomain = "hitomi.la"
	// DefaultFrontends 默认的前端（子域名）数量
	DefaultFrontends = 3

	// 分片值小于 fewerFrontendsBelow 时只有两个前端
	fewerFrontendsBelow = 0x30
	// 分片值小于 clampBelow 时按 1 计算
	clampBelow = 0x09
	// 子域名的固定后缀，如 "ab"、"bb"
	shardSuffix = "b"
)

// 路径中形如 "/c/12/" 的部分，第二段的两位十六进制数即分片值
var shardPattern = regexp.MustCompile(`/[0-9a-f]/([0-9a-f]{2})/`)

// Resolver 生成图片链接。创建后不再修改，可并发使用
type Resolver struct {
	domain    string
	frontends int
	hostRe    *regexp.Regexp
}

// NewResolver 创建 Resolver
//
// domain 为空时使用 DefaultDomain，frontends 不大于 0 时使用 DefaultFrontends
func NewResolver(domain string, frontends int) *Resolver {
	if domain == "" {
		domain = DefaultDomain
	}
	if frontends <= 0 {
		frontends = DefaultFrontends
	}
	return &Resolver{
		domain:    domain,
		frontends: frontends,
		hostRe:    regexp.MustCompile(`//..?\.` + regexp.QuoteMeta(domain) + `/`),
	}
}

// Domain 主机域名
func (r *Resolver) Domain() string {
	return r.domain
}

// ShardFromValue 根据分片值选择子域名的首字母
func (r *Resolver) ShardFromValue(g uint64) byte {
	n := uint64(r.frontends)
	if g < fewerFrontendsBelow {
		n = 2
	}
	if g < clampBelow {
		g = 1
	}
	return byte('a' + g%n)
}

// ShardFromURL 从链接的路径中提取分片值，返回子域名，如 "ab"
//
// 路径中没有形如 "/c/12/" 的部分时返回 false
func (r *Resolver) ShardFromURL(u string) (string, bool) {
	m := shardPattern.FindStringSubmatch(u)
	if m == nil {
		return "", false
	}
	g, err := strconv.ParseUint(m[1], 16, 64)
	if err != nil {
		return "", false
	}
	return string(r.ShardFromValue(g)) + shardSuffix, true
}

// RewriteHost 将链接中主机的子域名替换为 code
func (r *Resolver) RewriteHost(u, code string) string {
	return r.hostRe.ReplaceAllLiteralString(u, "//"+code+"."+r.domain+"/")
}
