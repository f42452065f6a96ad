package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"newsbrief/config"
	"newsbrief/internal/adapter/store"
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "List archived digests and articles",
	RunE:  runArchive,
}

var archiveShowCmd = &cobra.Command{
	Use:   "show [article-id]",
	Short: "Show an archived article's summary",
	Args:  cobra.ExactArgs(1),
	RunE:  runArchiveShow,
}

func init() {
	rootCmd.AddCommand(archiveCmd)
	archiveCmd.AddCommand(archiveShowCmd)
}

func openArchive() (*store.Archive, error) {
	path := config.ArchivePath(GetRootDir(), cfg)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("no archive found at %s; run 'newsbrief digest' first", path)
	}
	return store.NewArchive(path)
}

func runArchive(cmd *cobra.Command, args []string) error {
	archive, err := openArchive()
	if err != nil {
		return err
	}
	defer archive.Close()

	digests, err := archive.ListDigests()
	if err != nil {
		return fmt.Errorf("failed to list digests: %w", err)
	}
	sort.Slice(digests, func(i, j int) bool {
		return digests[i].CreatedAt.After(digests[j].CreatedAt)
	})

	articles, err := archive.ListArticles()
	if err != nil {
		return fmt.Errorf("failed to list articles: %w", err)
	}
	byID := make(map[string]store.StoredArticle, len(articles))
	for _, a := range articles {
		byID[a.ID] = a
	}

	if len(digests) == 0 {
		fmt.Println("Archive is empty.")
		return nil
	}

	for _, d := range digests {
		fmt.Printf("%s  (%d articles)\n", d.CreatedAt.Format("2006-01-02 15:04"), len(d.ArticleIDs))
		for _, id := range d.ArticleIDs {
			if a, ok := byID[id]; ok {
				fmt.Printf("  [%s] %s\n", id, a.Article.Title)
			}
		}
	}

	stats, err := archive.GetStats()
	if err == nil && stats.TotalArticles > 0 {
		fmt.Printf("\nTotal: %d digests, %d articles, avg summary %.0f chars\n",
			stats.TotalDigests, stats.TotalArticles, stats.AvgSummaryChars)
	}

	return nil
}

func runArchiveShow(cmd *cobra.Command, args []string) error {
	archive, err := openArchive()
	if err != nil {
		return err
	}
	defer archive.Close()

	a, err := archive.GetArticle(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", a.Article.Title)
	fmt.Printf("%s | %s\n", a.Article.Section, a.Article.PublishedAt.Format("2006-01-02 15:04"))
	fmt.Printf("%s\n\n", a.Article.URL)
	fmt.Println(a.Summary)

	return nil
}
