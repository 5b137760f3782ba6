package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yeisme/docvault/pkg/configs"
	"github.com/yeisme/docvault/pkg/internal/index"
)

var (
	indexCmd = &cobra.Command{
		Use:   "index",
		Short: "Document catalog related commands",
	}

	// 扫描一次本地目录并打印文档数，便于排查目录布局问题.
	indexScanCmd = &cobra.Command{
		Use:   "scan",
		Short: "scan the local OCR directories once and print a summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := configs.InitConfig(configPath); err != nil {
				return err
			}

			cfg := configs.GetConfig().Index
			if cfg.RemoteEnabled() {
				return fmt.Errorf("remote mode is configured (index.remote_url=%s), nothing to scan locally", cfg.RemoteURL)
			}

			local, err := index.NewLocalSource(cfg.BasePath)
			if err != nil {
				return err
			}

			records, err := local.List(context.Background())
			if err != nil {
				return err
			}

			completed := 0
			for _, rec := range records {
				if rec.Status == index.StatusCompleted {
					completed++
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Base path:", local.BasePath())
			fmt.Fprintln(out, "Documents:", len(records))
			fmt.Fprintln(out, "  fully indexed:    ", completed)
			fmt.Fprintln(out, "  partially indexed:", len(records)-completed)

			return nil
		},
	}
)

// registerIndexCommands 注册目录相关命令.
func registerIndexCommands() {
	rootCmd.AddCommand(indexCmd)
	indexCmd.AddCommand(indexScanCmd)
}
