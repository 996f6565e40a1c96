package worker

import (
	"context"
	"errors"
	"ht-pics-go/comm"
	"ht-pics-go/conf"
	"ht-pics-go/logger"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerFor(t *testing.T) {
	h, err := HandlerFor(conf.HandlerToLocal)
	require.NoError(t, err)
	assert.NotNil(t, h)

	h, err = HandlerFor(conf.HandlerToTG)
	require.NoError(t, err)
	assert.NotNil(t, h)

	_, err = HandlerFor("ToYike")
	assert.Error(t, err)
}

func TestWorker(t *testing.T) {
	logger.InitFail(filepath.Join(t.TempDir(), "fail.log"))
	conf.Conf = conf.Default()
	conf.AddGalleries([]int{1, 2, 3})
	logger.LogFail(comm.Album{Tag: comm.TagHitomi, ID: "3"})

	var mu sync.Mutex
	handled := make(map[string]bool)
	start(context.Background(), 2, func(_ context.Context, album comm.Album) error {
		mu.Lock()
		handled[album.ID] = true
		mu.Unlock()
		if album.ID == "2" {
			return errors.New("下载失败")
		}
		return nil
	})

	TasksCh <- comm.Album{Tag: comm.TagHitomi, ID: "1"}
	TasksCh <- comm.Album{Tag: comm.TagHitomi, ID: "2"}
	TasksCh <- comm.Album{Tag: comm.TagHitomi, ID: "3", IsRetry: true}
	Wait()

	assert.Len(t, handled, 3)
	assert.Equal(t, []int{2}, conf.Pending())

	fails := logger.GetFailLog()
	require.Len(t, fails, 1)
	assert.Equal(t, "2", fails[0].ID)
}

func TestWorkerCanceled(t *testing.T) {
	logger.InitFail(filepath.Join(t.TempDir(), "fail.log"))
	conf.Conf = conf.Default()
	conf.AddGalleries([]int{1})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	start(ctx, 1, func(context.Context, comm.Album) error {
		called = true
		return nil
	})
	TasksCh <- comm.Album{Tag: comm.TagHitomi, ID: "1"}
	Wait()

	assert.False(t, called)
	assert.Equal(t, []int{1}, conf.Pending())
}
