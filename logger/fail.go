package logger

import (
	"encoding/json"
	"github.com/donething/utils-go/dofile"
	"ht-pics-go/comm"
	"os"
	"sync"
)

// 记录执行下载、发送任务失败的操作
const failLogName = "fail.log"

var (
	failLog  = make([]comm.Album, 0)
	failPath = failLogName
	mu       sync.Mutex
)

// InitFail 设置失败记录的文件路径
func InitFail(path string) {
	mu.Lock()
	failPath = path
	failLog = make([]comm.Album, 0)
	mu.Unlock()
}

// GetFailLog 读取上次运行时失败的任务
//
// 读取的任务保留在记录中，直到重试成功后调用 LogRmFail 删除
func GetFailLog() []comm.Album {
	mu.Lock()
	defer mu.Unlock()

	exist, err := dofile.Exists(failPath)
	Fatal(err)
	if !exist {
		return nil
	}
	bs, err := dofile.Read(failPath)
	Fatal(err)
	if len(bs) == 0 {
		return nil
	}

	var logs []comm.Album
	Fatal(json.Unmarshal(bs, &logs))
	failLog = logs

	tasks := make([]comm.Album, len(logs))
	copy(tasks, logs)
	return tasks
}

// LogFail 记录出错。同一图集只保留最新的一条
func LogFail(task comm.Album) {
	// 不需要记录请求头
	task.Header = nil
	task.IsRetry = false

	mu.Lock()
	defer mu.Unlock()
	replaced := false
	for i, t := range failLog {
		if t.Tag == task.Tag && t.ID == task.ID {
			failLog[i] = task
			replaced = true
			break
		}
	}
	if !replaced {
		failLog = append(failLog, task)
	}
	Fatal(saveFail())
}

// LogRmFail 从失败记录中删除
func LogRmFail(task comm.Album) {
	mu.Lock()
	defer mu.Unlock()
	logs := failLog[:0]
	for _, t := range failLog {
		if t.Tag == task.Tag && t.ID == task.ID {
			continue
		}
		logs = append(logs, t)
	}
	failLog = logs
	Fatal(saveFail())
}

func logFailToFile() error {
	mu.Lock()
	defer mu.Unlock()
	return saveFail()
}

// 调用前需持有 mu
func saveFail() error {
	bs, err := json.MarshalIndent(failLog, "", "  ")
	if err != nil {
		return err
	}
	_, err = dofile.Write(bs, failPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	return err
}
