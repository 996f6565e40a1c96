package cmd

import (
	"fmt"
	"ht-pics-go/client"
	"ht-pics-go/comm"
	"ht-pics-go/conf"
	"ht-pics-go/parser"
	"ht-pics-go/parser/hitomi"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	noWebp  bool
)

var rootCmd = &cobra.Command{
	Use:   "ht-pics-go",
	Short: "下载 hitomi 图集",
	Long: `根据图集 ID 获取图集信息，生成每页图片的链接，
并保存到本地或发送到 Telegram。`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "配置文件 (默认为 ./"+conf.Name+")")
	rootCmd.PersistentFlags().BoolVar(&noWebp, "no-webp", false, "下载原格式的图片，不使用 webp")
	rootCmd.AddCommand(downloadCmd, urlsCmd)
}

// setup 读取配置，创建客户端，注册解析器
func setup(cmd *cobra.Command, _ []string) error {
	if err := conf.Load(cfgFile); err != nil {
		return err
	}

	conf.Mu.Lock()
	c := conf.Conf
	conf.Mu.Unlock()

	if !cmd.Flags().Changed("no-webp") {
		noWebp = c.NoWebp
	}
	if err := client.Init(c.Proxy, c.RatePerSec); err != nil {
		return err
	}
	client.InitNotify(c.TG.NoToken, c.TG.NoChatID)

	resolver := hitomi.NewResolver(c.Domain, c.Frontends)
	parser.Register(comm.TagHitomi, hitomi.NewFetcher(resolver, client.Client))
	return nil
}

// parseIDs 解析命令行中的图集 ID
func parseIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, a := range args {
		id, err := strconv.Atoi(a)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("无效的图集 ID：%s", a)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
