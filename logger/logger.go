package logger

import (
	"github.com/donething/utils-go/dolog"
	"ht-pics-go/conf"
	"log"
	"os"
)

var (
	// Info Warn Error 在调用 Init 前输出到标准错误
	Info  = log.New(os.Stderr, "[Info] ", log.LstdFlags)
	Warn  = log.New(os.Stderr, "[Warn] ", log.LstdFlags)
	Error = log.New(os.Stderr, "[Error] ", log.LstdFlags)
)

const LogName = "run.log"

// Init 初始化日志，同时输出到文件 name
func Init(name string) {
	Info, Warn, Error = dolog.InitLog(name, dolog.DefaultFormat)
}

// SaveWhenExit 当退出或崩溃时保存记录
func SaveWhenExit() {
	// 保存图集的进度
	if err := conf.Save(); err != nil {
		Error.Printf("保存进度出错：%s\n", err)
	}

	// 保存失败的记录到文件
	if err := logFailToFile(); err != nil {
		Error.Printf("保存失败记录出错：%s\n", err)
	}
}

func Fatal(err error) {
	if err != nil {
		panic(err)
	}
}
