package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/anytypeio/go-notion-export/config"
	"github.com/anytypeio/go-notion-export/notion"
	"github.com/anytypeio/go-notion-export/notion/api/client"
	"github.com/anytypeio/go-notion-export/pkg/logging"
)

var (
	saveToken     bool
	outputDir     string
	pageSize      int64
	downloadFiles bool
)

var rootCmd = &cobra.Command{
	Use:          "notion-export",
	Short:        "Export a Notion workspace to markdown files",
	Long:         `Enumerates every page shared with the integration and writes each one as a markdown file named after its title.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().BoolVar(&saveToken, "save-token", false, "prompt for a Notion api key, store it and exit")
	rootCmd.Flags().StringVar(&outputDir, "output", config.DefaultConfig.OutputDir, "directory the markdown files are written to")
	rootCmd.Flags().Int64Var(&pageSize, "page-size", config.DefaultConfig.PageSize, "how many results to request per api call")
	rootCmd.Flags().BoolVar(&downloadFiles, "download-files", false, "fetch referenced media next to the exported pages")
}

// Execute runs the root command.
func Execute() {
	logging.ApplyLevelsFromEnv()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if saveToken {
		return promptAndSaveToken()
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("output") {
		config.WithOutputDir(outputDir)(cfg)
	}
	if cmd.Flags().Changed("page-size") {
		config.WithPageSize(pageSize)(cfg)
	}
	if cmd.Flags().Changed("download-files") {
		config.WithDownloadFiles(downloadFiles)(cfg)
	}
	if cfg.Token == "" {
		return fmt.Errorf("no api token configured, run with --save-token first")
	}

	exporter := notion.NewExporter(client.NewClient(), notion.Options{
		APIKey:        cfg.Token,
		OutputDir:     cfg.OutputDir,
		PageSize:      cfg.PageSize,
		DownloadFiles: cfg.DownloadFiles,
	})
	return exporter.Export(context.Background())
}

func promptAndSaveToken() error {
	fmt.Print("Notion api key: ")
	keyBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("read api key: %w", err)
	}
	fmt.Println()
	token := strings.TrimSpace(string(keyBytes))
	if token == "" {
		return fmt.Errorf("api key required")
	}
	if err := config.New(config.WithToken(token)).Save(); err != nil {
		return err
	}
	path, err := config.Path()
	if err != nil {
		return err
	}
	fmt.Printf("Token saved to %s\n", path)
	return nil
}
