package tolocal

import (
	"context"
	"fmt"
	"github.com/donething/utils-go/dofile"
	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
	"ht-pics-go/client"
	"ht-pics-go/comm"
	"ht-pics-go/conf"
	"ht-pics-go/logger"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync/atomic"
)

// InfoName 保存图集描述的文件名
const InfoName = "info.yaml"

// Getter 下载链接的数据
type Getter interface {
	Get(ctx context.Context, u string, headers map[string]string) ([]byte, error)
}

// Save 按配置保存到本地
func Save(ctx context.Context, album comm.Album) error {
	conf.Mu.Lock()
	root, limit := conf.Conf.LocalRoot, conf.Conf.PageConcurrency
	conf.Mu.Unlock()
	return SaveTo(ctx, client.Client, root, limit, album)
}

// SaveTo 将图集保存到 root/图集 ID 目录下，同时最多下载 limit 张图片
//
// 已存在的文件会被跳过，以便中断后继续下载
func SaveTo(ctx context.Context, g Getter, root string, limit int, album comm.Album) error {
	// 保存到本地文件时，先创建目录
	destDir := filepath.Join(root, album.ID)
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return fmt.Errorf("创建目录'%s'出错：%w", destDir, err)
	}

	var total int64
	eg, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		eg.SetLimit(limit)
	}
	for i, u := range album.URLs {
		i, u := i, u
		eg.Go(func() error {
			dest := filepath.Join(destDir, FileName(album, i))
			exists, err := dofile.Exists(dest)
			if err != nil {
				return fmt.Errorf("判断文件'%s'是否存在时出错：%w", dest, err)
			}
			if exists {
				return nil
			}

			// 下载链接，获取二进制数组数据
			bs, err := g.Get(ctx, u, album.Header)
			if err != nil {
				return fmt.Errorf("下载文件'%s'出错：%w", u, err)
			}

			// 写入文件
			_, err = dofile.Write(bs, dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
			if err != nil {
				return fmt.Errorf("将数据保存到文件'%s'时出错：%w", dest, err)
			}
			atomic.AddInt64(&total, int64(len(bs)))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	if album.Meta != nil {
		if err := writeInfo(filepath.Join(destDir, InfoName), album.Meta); err != nil {
			return err
		}
	}

	logger.Info.Printf("[%s] 已保存图集'%s'的 %d 张图片（%s）到'%s'\n", album.Tag, album.ID, len(album.URLs),
		humanize.Bytes(uint64(total)), destDir)
	return nil
}

// FileName 第 i 页图片保存的文件名
//
// 优先使用原始文件名，扩展名以链接的为准（如 webp）。没有原始文件名时使用链接中的文件名
func FileName(album comm.Album, i int) string {
	u := album.URLs[i]
	if q := strings.Index(u, "?"); q >= 0 {
		u = u[:q]
	}
	if i >= len(album.Names) || album.Names[i] == "" {
		return path.Base(u)
	}

	name := filepath.Base(album.Names[i])
	ext := path.Ext(u)
	if ext == "" {
		return name
	}
	return strings.TrimSuffix(name, filepath.Ext(name)) + ext
}

func writeInfo(dest string, meta *comm.Meta) error {
	bs, err := yaml.Marshal(meta)
	if err != nil {
		return fmt.Errorf("文本化图集描述出错：%w", err)
	}
	_, err = dofile.Write(bs, dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("保存图集描述到'%s'出错：%w", dest, err)
	}
	return nil
}
