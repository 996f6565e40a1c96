// Package parser 管理各站点的解析器，并将图集提交到 worker
package parser

import (
	"context"
	"fmt"
	"ht-pics-go/comm"
	"ht-pics-go/logger"
	"ht-pics-go/worker"
	"sort"
	"strconv"
	"sync"
)

// Extractor 站点的解析器
type Extractor interface {
	// Album 获取图集 id 的下载任务
	Album(ctx context.Context, id int, noWebp bool) (comm.Album, error)
	// Headers 下载该站点的图片时需要的请求头
	Headers() map[string]string
}

var (
	extractors = make(map[string]Extractor)
	mu         sync.RWMutex
)

// Register 注册站点的解析器，同名的会被覆盖
func Register(name string, e Extractor) {
	mu.Lock()
	extractors[name] = e
	mu.Unlock()
}

// Get 获取站点的解析器
func Get(name string) (Extractor, bool) {
	mu.RLock()
	defer mu.RUnlock()
	e, ok := extractors[name]
	return e, ok
}

// Names 已注册的站点
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(extractors))
	for name := range extractors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DownloadAll 先重试上次失败的图集，再将 ids 中的图集提交到 worker
func DownloadAll(ctx context.Context, name string, ids []int, noWebp bool) error {
	e, ok := Get(name)
	if !ok {
		return fmt.Errorf("未知的站点：%s", name)
	}

	// 先下载之前失败的图集
	retried := make(map[string]bool)
	retryTasks := logger.GetFailLog()
	logger.Info.Printf("[%s] 重试下载 %d 个图集\n", name, len(retryTasks))
	for _, task := range retryTasks {
		if task.Tag != name {
			continue
		}
		retried[task.ID] = true

		// 获取图集信息时就失败的任务，需要重新获取
		if len(task.URLs) == 0 {
			id, err := strconv.Atoi(task.ID)
			if err != nil {
				logger.Warn.Printf("[%s] 失败记录中的图集 ID'%s'无效\n", name, task.ID)
				continue
			}
			album, err := e.Album(ctx, id, noWebp)
			if err != nil {
				logger.Error.Printf("[%s] 重新获取图集'%s'出错：%s\n", name, task.ID, err)
				continue
			}
			task = album
		}

		// 重试时设置标志为重试，以在下载成功后删除失败记录中该图集的记录
		task.IsRetry = true
		task.Header = e.Headers()
		logger.Info.Printf("[%s] 重试下载图集'%s'\n", name, task.ID)
		if err := submit(ctx, task); err != nil {
			return err
		}
	}

	logger.Info.Printf("[%s] 已重发上次失败的图集，将开始继续下载新图集\n", name)

	count := 0
	for _, id := range ids {
		if retried[strconv.Itoa(id)] {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		album, err := e.Album(ctx, id, noWebp)
		if err != nil {
			logger.Error.Printf("[%s] %s\n", name, err)
			logger.LogFail(comm.Album{Tag: name, ID: strconv.Itoa(id)})
			continue
		}
		if err = submit(ctx, album); err != nil {
			return err
		}
		count++
	}

	// 任务完成
	logger.Info.Printf("[%s] 已提交所有任务，新添加 %d 个图集\n", name, count)
	return nil
}

func submit(ctx context.Context, task comm.Album) error {
	select {
	case worker.TasksCh <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
