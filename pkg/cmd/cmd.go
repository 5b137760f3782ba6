// Package cmd contains the command line applications for the project.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/yeisme/docvault/pkg/app"
)

var (
	// configPath 配置文件或其所在目录.
	configPath string
	// debug 额外打印 viper 的内部状态.
	debug bool

	rootCmd = &cobra.Command{
		Use:   "docvault",
		Short: "A department-scoped document portal over an external OCR pipeline",
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.NewApp(configPath).Run()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "./", "config file or directory")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "print extra debug output")

	rootCmd.AddCommand(serveCmd)

	registerConfigsCommands()
	registerDBCommands()
	registerKVCommands()
	registerMQCommands()
	registerIndexCommands()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
