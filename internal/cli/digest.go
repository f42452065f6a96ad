package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"newsbrief/config"
	"newsbrief/internal/adapter/guardian"
	"newsbrief/internal/adapter/mailer"
	"newsbrief/internal/adapter/rss"
	"newsbrief/internal/adapter/store"
	"newsbrief/internal/port"
	"newsbrief/internal/usecase"
)

var (
	digestNoSend   bool
	digestArticles int
)

var digestCmd = &cobra.Command{
	Use:   "digest",
	Short: "Fetch articles, summarize them, and deliver an HTML digest",
	Long: `Fetch articles from the configured sources (Guardian API, RSS feeds),
summarize each with TextRank, archive the result, and email the digest.

Examples:
  newsbrief digest               # full run per config
  newsbrief digest --no-send     # archive only, skip email`,
	RunE: runDigest,
}

func init() {
	rootCmd.AddCommand(digestCmd)
	digestCmd.Flags().BoolVar(&digestNoSend, "no-send", false, "skip email delivery")
	digestCmd.Flags().IntVar(&digestArticles, "articles", 0, "articles per digest (default from config)")
}

func runDigest(cmd *cobra.Command, args []string) error {
	sources, err := buildSources()
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		return fmt.Errorf("no sources enabled; set guardian.enabled or feeds.enabled in config")
	}

	summarizer, err := loadSummarizer()
	if err != nil {
		return err
	}

	if err := config.EnsureArchiveDir(GetRootDir(), cfg); err != nil {
		return fmt.Errorf("failed to create archive directory: %w", err)
	}
	archive, err := store.NewArchive(config.ArchivePath(GetRootDir(), cfg))
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	defer archive.Close()

	var sender port.Sender
	if cfg.Email.Enabled && !digestNoSend {
		sender, err = mailer.NewSMTPSender(cfg.Email)
		if err != nil {
			return fmt.Errorf("failed to set up email delivery: %w", err)
		}
	}

	maxArticles := cfg.Archive.Articles
	if digestArticles > 0 {
		maxArticles = digestArticles
	}

	digestUC := usecase.NewDigestUseCase(sources, summarizer, archive, sender, cfg.Summary.Sentences, maxArticles)

	fmt.Println("Fetching articles...")

	var bar *progressbar.ProgressBar
	progress := func(done, total int) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("[cyan]Summarizing[reset]"),
				progressbar.OptionOnCompletion(func() {
					fmt.Println()
				}),
			)
		}
		bar.Set(done)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
	defer cancel()

	result, err := digestUC.Run(ctx, progress)
	if err != nil {
		return fmt.Errorf("digest failed: %w", err)
	}

	fmt.Printf("\nDigest complete:\n")
	fmt.Printf("  Articles fetched:    %d\n", result.ArticlesFetched)
	fmt.Printf("  Articles skipped:    %d (empty or already digested)\n", result.ArticlesSkipped)
	fmt.Printf("  Articles summarized: %d\n", result.ArticlesSummarized)
	if result.Sent {
		fmt.Printf("  Delivered to:        %d recipients\n", len(cfg.Email.Recipients))
	}

	if len(result.Errors) > 0 {
		fmt.Printf("\nWarnings:\n")
		for _, e := range result.Errors {
			fmt.Printf("  - %s\n", e)
		}
	}

	return nil
}

func buildSources() ([]port.Source, error) {
	var sources []port.Source

	if cfg.Guardian.Enabled {
		client, err := guardian.NewClient(cfg.Guardian)
		if err != nil {
			return nil, fmt.Errorf("guardian source: %w", err)
		}
		sources = append(sources, client)
	}

	if cfg.Feeds.Enabled && len(cfg.Feeds.URLs) > 0 {
		sources = append(sources, rss.NewSource(cfg.Feeds.URLs))
	}

	return sources, nil
}
