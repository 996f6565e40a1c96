package hitomi

import "strings"

const (
	// 默认的图片目录
	imagesDir = "images"
	// webp 格式的目录，同时也是扩展名
	webpDir = "webp"
)

// FullPathFromHash 根据哈希的末 3 位生成两级目录，如 "...ab12c" => "c/12/...ab12c"
//
// 哈希不足 3 位时原样返回
func FullPathFromHash(hash string) string {
	if len(hash) < 3 {
		return hash
	}
	tail := hash[len(hash)-3:]
	return tail[2:] + "/" + tail[:2] + "/" + hash
}

// ResolveURL 生成图片的完整链接
//
// dir 非空时同时作为目录和扩展名；否则 ext 非空时作为扩展名。
// 图片有 webp 格式且 noWebp 为 false 时，使用 webp 目录
func (r *Resolver) ResolveURL(galleryID int, img Image, dir, ext string, noWebp bool) (string, error) {
	if img.HasWebp && img.Hash != "" && !noWebp {
		dir = webpDir
	}

	e := ext
	if e == "" {
		if i := strings.LastIndexByte(img.Name, '.'); i >= 0 {
			e = img.Name[i+1:]
		}
	}

	d := imagesDir
	if dir != "" {
		d = dir
		e = dir
	}
	if e == "" {
		return "", &URLConstructionError{Name: img.Name, Err: ErrNoExtension}
	}

	// 先生成路径，子域名由路径中的分片值决定
	raw := "https://a." + r.domain + "/" + d + "/" + FullPathFromHash(img.Hash) + "." + e
	code, ok := r.ShardFromURL(raw)
	if !ok {
		return raw, nil
	}
	return r.RewriteHost(raw, code), nil
}
