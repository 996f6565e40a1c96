package hitomi

import (
	"context"
	"fmt"
	"ht-pics-go/comm"
	"strconv"
	"time"
)

const (
	// 图集信息的 API
	galleryInfoAPI = "https://ltn.%s/galleries/%d.js"

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/83.0.4103.97 Safari/537.36"

	// 图集日期的格式，如 "2020-06-09 04:26:00-05"
	dateLayout = "2006-01-02 15:04:05-07"
)

// Getter 下载链接的数据
type Getter interface {
	Get(ctx context.Context, u string, headers map[string]string) ([]byte, error)
}

// Fetcher 获取图集信息并生成下载任务
type Fetcher struct {
	resolver *Resolver
	getter   Getter
}

// NewFetcher 创建 Fetcher
func NewFetcher(r *Resolver, g Getter) *Fetcher {
	return &Fetcher{resolver: r, getter: g}
}

// Headers 请求图集信息和图片时需要的请求头
func (f *Fetcher) Headers() map[string]string {
	return map[string]string{
		"User-Agent": userAgent,
		"Referer":    "https://" + f.resolver.Domain(),
	}
}

// GalleryInfo 获取并解析图集信息
func (f *Fetcher) GalleryInfo(ctx context.Context, id int) (*GalleryInfo, error) {
	bs, err := f.getter.Get(ctx, fmt.Sprintf(galleryInfoAPI, f.resolver.Domain(), id), f.Headers())
	if err != nil {
		return nil, fmt.Errorf("获取图集'%d'的信息出错：%w", id, err)
	}
	info, err := ParseJSON(bs)
	if err != nil {
		return nil, fmt.Errorf("解析图集'%d'的信息出错：%w", id, err)
	}
	return info, nil
}

// Album 生成图集的下载任务
func (f *Fetcher) Album(ctx context.Context, id int, noWebp bool) (comm.Album, error) {
	info, err := f.GalleryInfo(ctx, id)
	if err != nil {
		return comm.Album{}, err
	}
	pages, err := f.resolver.BuildPages(info, noWebp)
	if err != nil {
		return comm.Album{}, fmt.Errorf("生成图集'%d'的图片链接出错：%w", id, err)
	}

	album := comm.Album{
		Tag:     comm.TagHitomi,
		Caption: deref(info.Title),
		ID:      strconv.Itoa(id),
		URLs:    make([]string, len(pages)),
		Names:   make([]string, len(pages)),
		Meta:    toMeta(info, len(pages)),
		Header:  f.Headers(),
	}
	if t, err := time.Parse(dateLayout, deref(info.Date)); err == nil {
		album.Created = t.Unix()
	}
	for i, p := range pages {
		album.URLs[i] = p.URL
		album.Names[i] = p.Name
	}
	return album, nil
}

func toMeta(info *GalleryInfo, pages int) *comm.Meta {
	meta := &comm.Meta{
		ID:            *info.GalleryID,
		Title:         deref(info.Title),
		JapaneseTitle: deref(info.JapaneseTitle),
		Language:      deref(info.Language),
		Type:          deref(info.Type),
		Date:          deref(info.Date),
		Pages:         pages,
	}
	for _, t := range info.Tags {
		meta.Tags = append(meta.Tags, t.Label)
	}
	return meta
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
