package rss

import (
	"context"
	"time"

	"github.com/mmcdole/gofeed"

	"newsbrief/internal/adapter/scraper"
	"newsbrief/internal/domain"
	"newsbrief/internal/logger"
)

// Source fetches articles from a set of RSS feeds. Feed items rarely
// carry full article bodies, so short items are completed by scraping
// the linked page.
type Source struct {
	urls    []string
	parser  *gofeed.Parser
	scraper *scraper.Scraper
}

// minBodyRunes is the length under which a feed item's own content is
// considered a teaser rather than the article.
const minBodyRunes = 400

func NewSource(urls []string) *Source {
	return &Source{
		urls:    urls,
		parser:  gofeed.NewParser(),
		scraper: scraper.New(),
	}
}

func (s *Source) Name() string {
	return "rss"
}

// Fetch parses all configured feeds. A feed that fails to parse is
// logged and skipped rather than failing the whole fetch.
func (s *Source) Fetch(ctx context.Context) ([]domain.Article, error) {
	var articles []domain.Article

	for _, feedURL := range s.urls {
		feed, err := s.parser.ParseURLWithContext(feedURL, ctx)
		if err != nil {
			logger.Warn("failed to parse feed", "url", feedURL, "error", err)
			continue
		}

		for _, item := range feed.Items {
			body := item.Content
			if body == "" {
				body = item.Description
			}

			if len([]rune(body)) < minBodyRunes && item.Link != "" {
				if full, err := s.scraper.Extract(ctx, item.Link); err == nil && full != "" {
					body = full
				}
			}

			published := time.Time{}
			if item.PublishedParsed != nil {
				published = *item.PublishedParsed
			}

			articles = append(articles, domain.Article{
				Title:       item.Title,
				Section:     feed.Title,
				URL:         item.Link,
				PublishedAt: published,
				Body:        body,
			})
		}

		logger.Debug("feed parsed", "url", feedURL, "items", len(feed.Items))
	}

	return articles, nil
}
