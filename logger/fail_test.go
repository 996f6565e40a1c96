package logger

import (
	"ht-pics-go/comm"
	"path/filepath"
	"testing"
)

func TestFailLog(t *testing.T) {
	InitFail(filepath.Join(t.TempDir(), failLogName))

	if tasks := GetFailLog(); len(tasks) != 0 {
		t.Fatalf("没有失败记录时应返回空，实际为 %+v", tasks)
	}

	LogFail(comm.Album{Tag: comm.TagHitomi, ID: "1", Header: map[string]string{"Referer": "x"}})
	LogFail(comm.Album{Tag: comm.TagHitomi, ID: "2"})
	// 同一图集只保留最新的一条
	LogFail(comm.Album{Tag: comm.TagHitomi, ID: "1", URLs: []string{"u"}, IsRetry: true})

	tasks := GetFailLog()
	if len(tasks) != 2 {
		t.Fatalf("失败记录应有 2 条，实际为 %d", len(tasks))
	}
	if tasks[0].ID != "1" || len(tasks[0].URLs) != 1 || tasks[0].Header != nil || tasks[0].IsRetry {
		t.Fatalf("失败记录不正确：%+v", tasks[0])
	}

	LogRmFail(comm.Album{Tag: comm.TagHitomi, ID: "1"})
	tasks = GetFailLog()
	if len(tasks) != 1 || tasks[0].ID != "2" {
		t.Fatalf("删除后的失败记录不正确：%+v", tasks)
	}
	t.Logf("失败记录：%+v\n", tasks)
}
