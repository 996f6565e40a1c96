package cmd

import (
	"fmt"
	"ht-pics-go/comm"
	"ht-pics-go/parser"

	"github.com/spf13/cobra"
)

var urlsCmd = &cobra.Command{
	Use:   "urls <id>",
	Short: "输出图集每页图片的链接和文件名，不下载",
	Args:  cobra.ExactArgs(1),
	RunE:  runURLs,
}

func runURLs(cmd *cobra.Command, args []string) error {
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}
	e, ok := parser.Get(comm.TagHitomi)
	if !ok {
		return fmt.Errorf("未注册的站点：%s", comm.TagHitomi)
	}

	album, err := e.Album(cmd.Context(), ids[0], noWebp)
	if err != nil {
		return err
	}
	for i, u := range album.URLs {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", u, album.Names[i])
	}
	return nil
}
