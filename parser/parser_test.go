package parser

import (
	"context"
	"errors"
	"ht-pics-go/comm"
	"ht-pics-go/logger"
	"ht-pics-go/worker"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExtractor struct {
	fail  map[int]bool
	calls []int
}

func (e *fakeExtractor) Album(_ context.Context, id int, _ bool) (comm.Album, error) {
	e.calls = append(e.calls, id)
	if e.fail[id] {
		return comm.Album{}, errors.New("获取失败")
	}
	return comm.Album{Tag: "fake", ID: strconv.Itoa(id), URLs: []string{"u"}, Names: []string{"n"}}, nil
}

func (e *fakeExtractor) Headers() map[string]string {
	return map[string]string{"Referer": "https://fake"}
}

func drain() []comm.Album {
	var tasks []comm.Album
	for {
		select {
		case t := <-worker.TasksCh:
			tasks = append(tasks, t)
		default:
			return tasks
		}
	}
}

func TestRegistry(t *testing.T) {
	e := &fakeExtractor{}
	Register("fake", e)
	got, ok := Get("fake")
	assert.True(t, ok)
	assert.Equal(t, e, got)
	assert.Contains(t, Names(), "fake")

	_, ok = Get("missing")
	assert.False(t, ok)
}

func TestDownloadAll(t *testing.T) {
	logger.InitFail(filepath.Join(t.TempDir(), "fail.log"))
	worker.TasksCh = make(chan comm.Album, 10)
	e := &fakeExtractor{fail: map[int]bool{2: true}}
	Register("fake", e)

	require.NoError(t, DownloadAll(context.Background(), "fake", []int{1, 2, 3}, false))
	tasks := drain()
	require.Len(t, tasks, 2)
	assert.Equal(t, "1", tasks[0].ID)
	assert.Equal(t, "3", tasks[1].ID)

	fails := logger.GetFailLog()
	require.Len(t, fails, 1)
	assert.Equal(t, "2", fails[0].ID)
	assert.Empty(t, fails[0].URLs)

	// 再次运行时重新获取失败的图集，且不重复提交
	e.fail[2] = false
	e.calls = nil
	require.NoError(t, DownloadAll(context.Background(), "fake", []int{2, 4}, false))
	tasks = drain()
	require.Len(t, tasks, 2)
	assert.Equal(t, "2", tasks[0].ID)
	assert.True(t, tasks[0].IsRetry)
	assert.Equal(t, "https://fake", tasks[0].Header["Referer"])
	assert.Equal(t, "4", tasks[1].ID)
	assert.False(t, tasks[1].IsRetry)
	assert.Equal(t, []int{2, 4}, e.calls)
}

func TestDownloadAllErrors(t *testing.T) {
	logger.InitFail(filepath.Join(t.TempDir(), "fail.log"))
	assert.Error(t, DownloadAll(context.Background(), "missing", []int{1}, false))

	// 通道已满且已中断时返回
	worker.TasksCh = make(chan comm.Album)
	Register("fake", &fakeExtractor{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := DownloadAll(ctx, "fake", []int{1}, false)
	assert.True(t, errors.Is(err, context.Canceled))
}
