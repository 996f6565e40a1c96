package cmd

import (
	"ht-pics-go/comm"
	"ht-pics-go/conf"
	"ht-pics-go/logger"
	"ht-pics-go/parser"
	"ht-pics-go/worker"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var downloadCmd = &cobra.Command{
	Use:   "download [id...]",
	Short: "下载配置中未完成的图集，以及指定的图集",
	RunE:  runDownload,
}

func runDownload(cmd *cobra.Command, args []string) error {
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}
	conf.AddGalleries(ids)

	logger.Init(logger.LogName)

	// 收到中断信号时停止提交任务，保存进度后退出
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 保存进度
	defer func() {
		if r := recover(); r != nil {
			logger.Error.Printf("程序崩溃，将保存记录后退出：%v\n", r)
			logger.SaveWhenExit()
			panic(r)
		}
	}()

	conf.Mu.Lock()
	workerCount := conf.Conf.WorkerCount
	conf.Mu.Unlock()
	if err = worker.InitWorker(ctx, workerCount); err != nil {
		return err
	}

	err = parser.DownloadAll(ctx, comm.TagHitomi, conf.Pending(), noWebp)
	worker.Wait()
	if ctx.Err() != nil {
		logger.Info.Printf("已收到中断信号，将保存进度后退出程序\n")
	}
	logger.SaveWhenExit()
	return err
}
