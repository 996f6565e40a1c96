package worker

import (
	"context"
	"fmt"
	"ht-pics-go/client"
	"ht-pics-go/comm"
	"ht-pics-go/conf"
	"ht-pics-go/handlers/tolocal"
	"ht-pics-go/handlers/totg"
	"ht-pics-go/logger"
	"os"
	"sync"
)

// Handler 处理一个图集
type Handler func(ctx context.Context, album comm.Album) error

var (
	// TasksCh 任务通道
	TasksCh chan comm.Album
	WG      sync.WaitGroup
)

// HandlerFor 根据配置中 Handler 的值选择处理方法
func HandlerFor(name string) (Handler, error) {
	switch name {
	case conf.HandlerToLocal:
		return tolocal.Save, nil
	case conf.HandlerToTG:
		return totg.Send, nil
	}
	return nil, fmt.Errorf("未知的 Handler：%s", name)
}

// InitWorker 初始化工作协程
func InitWorker(ctx context.Context, workerCount int) error {
	conf.Mu.Lock()
	name := conf.Conf.Handler
	conf.Mu.Unlock()

	handle, err := HandlerFor(name)
	if err != nil {
		return err
	}
	start(ctx, workerCount, handle)
	return nil
}

func start(ctx context.Context, workerCount int, handle Handler) {
	if workerCount <= 0 {
		workerCount = 1
	}
	// 创建一个有缓冲的通道来管理工作
	TasksCh = make(chan comm.Album, workerCount)

	// 启动 goroutine 来完成工作
	WG.Add(workerCount)
	for id := 1; id <= workerCount; id++ {
		go worker(ctx, id, handle)
	}
	logger.Info.Println("[worker] 工作 goroutine 已准备就绪")
}

// Wait 关闭任务通道，等待所有工作完成
func Wait() {
	close(TasksCh)
	WG.Wait()
}

// 工作
func worker(ctx context.Context, id int, handle Handler) {
	defer WG.Done()
	// 当程序崩溃时保存进度
	defer func() {
		if err := recover(); err != nil {
			logger.Error.Printf("程序崩溃，将保存记录后退出：%s\n", err)
			logger.SaveWhenExit()
			os.Exit(1)
		}
	}()

	for {
		// 等待分配工作
		task, ok := <-TasksCh
		if !ok {
			// 这意味着通道已经空了，并且已被关闭
			logger.Info.Printf("[Worker%d] 通道已关闭，完成任务\n", id)
			return
		}
		// 已中断时只排空通道，不再处理
		if ctx.Err() != nil {
			continue
		}

		if err := handle(ctx, task); err != nil {
			logger.Error.Printf("[Worker%d][%s] 处理图集'%s'出错：%s\n", id, task.Tag, task.ID, err)
			logger.LogFail(task)
			if err = client.Notify(fmt.Sprintf("[%s] 图集'%s'处理失败：%s", task.Tag, task.ID, err)); err != nil {
				logger.Warn.Printf("发送 TG 通知出错：%s\n", err)
			}
			continue
		}

		// 仅当成功完成本次下载、发送任务时，才保存进度
		conf.MarkDone(task.ID)

		// 从失败记录中删除
		if task.IsRetry {
			logger.LogRmFail(task)
		}

		logger.Info.Printf("[Worker%d][%s] 已完成图集'%s'\n", id, task.Tag, task.ID)
	}
}
