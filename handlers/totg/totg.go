package totg

import (
	"context"
	"fmt"
	"github.com/donething/utils-go/dotgpush"
	"ht-pics-go/client"
	"ht-pics-go/comm"
	"ht-pics-go/conf"
)

// Telegram 每个媒体组最多包含的文件数
const maxGroupSize = 10

// Send 发送到 PicTG
func Send(ctx context.Context, album comm.Album) error {
	conf.Mu.Lock()
	token, chatID := conf.Conf.TG.PicSaveToken, conf.Conf.TG.PicSaveChatID
	conf.Mu.Unlock()
	if token == "" || chatID == "" {
		return fmt.Errorf("没有设置 PicTG 的 token 或 chat id")
	}
	tg := dotgpush.NewTGBot(token)

	for _, group := range Groups(len(album.URLs), maxGroupSize) {
		// 下载图集的该组图片
		medias := make([]dotgpush.Media, 0, group[1]-group[0])
		for i := group[0]; i < group[1]; i++ {
			// 将下载链接转为对应文件的二进制数组数据
			bs, err := client.Client.Get(ctx, album.URLs[i], album.Header)
			if err != nil {
				return fmt.Errorf("下载文件'%s'出错：%w", album.URLs[i], err)
			}
			medias = append(medias, dotgpush.Media{
				Type:    dotgpush.Photo,
				Media:   bs,
				Caption: "",
			})
		}

		// 设置每组的标题
		if len(medias) > 0 {
			medias[0].Caption = fmt.Sprintf("%s #%s %d-%d/%d", album.Caption, album.ID,
				group[0]+1, group[1], len(album.URLs))
		}

		// 发送图集
		msg, err := tg.SendMediaGroup(chatID, medias)
		if err != nil {
			return fmt.Errorf("发送图集'%s'出错：%w", album.ID, err)
		}
		if msg == nil || !msg.Ok {
			desc := ""
			if msg != nil {
				desc = msg.Description
			}
			return fmt.Errorf("发送图集'%s'失败：%s", album.ID, desc)
		}
	}
	return nil
}

// Groups 将 n 张图片按每组最多 size 张分组，返回每组的 [起始, 结束) 索引
func Groups(n int, size int) [][2]int {
	if size <= 0 {
		size = maxGroupSize
	}
	groups := make([][2]int, 0, (n+size-1)/size)
	for start := 0; start < n; start += size {
		end := start + size
		if end > n {
			end = n
		}
		groups = append(groups, [2]int{start, end})
	}
	return groups
}
