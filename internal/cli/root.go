package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"newsbrief/config"
	"newsbrief/internal/adapter/embedding"
	"newsbrief/internal/logger"
	"newsbrief/internal/usecase"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
)

var rootCmd = &cobra.Command{
	Use:   "newsbrief",
	Short: "newsbrief - extractive news summarization with TextRank",
	Long: `newsbrief summarizes news articles by ranking their sentences with
TextRank over word embeddings and keeping the most central ones.

Example usage:
  newsbrief summarize article.txt            # Summarize a text file
  newsbrief summarize --sentences 3 "*.txt"  # Batch summarize
  newsbrief digest                           # Fetch, summarize, and mail a digest
  newsbrief archive                          # List archived digests`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger.Init(cfg.Logging.Level)

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./newsbrief.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}

// loadSummarizer loads the embedding table and builds the summarization
// pipeline. The table load is the one expensive startup step, so it
// happens here, once per invocation.
func loadSummarizer() (*usecase.SummarizeUseCase, error) {
	table, err := embedding.Load(cfg.Embedding.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load embedding table: %w", err)
	}
	if cfg.Embedding.Dimension > 0 && table.Dimension() != cfg.Embedding.Dimension {
		return nil, fmt.Errorf("embedding dimension %d does not match configured %d", table.Dimension(), cfg.Embedding.Dimension)
	}

	fmt.Printf("Loaded %d embeddings (%d dimensions)\n", table.Size(), table.Dimension())

	return usecase.NewSummarizeUseCase(table, usecase.Options{
		Damping:       cfg.Summary.Damping,
		MaxIter:       cfg.Summary.MaxIter,
		Tol:           cfg.Summary.Tol,
		DropStopwords: cfg.Summary.DropStopwords,
	}), nil
}
