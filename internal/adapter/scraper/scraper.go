package scraper

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Scraper extracts article body text from a web page.
type Scraper struct {
	client *http.Client
}

func New() *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// selectors tried in order; the first that yields paragraphs wins.
var selectors = []string{
	"article p",
	".article-body p",
	".article-content p",
	".content p",
	"main p",
}

// Extract fetches url and returns the article's paragraph text joined
// by blank lines.
func (s *Scraper) Extract(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to load page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP error: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	return ExtractFromDocument(doc), nil
}

// ExtractFromDocument pulls paragraph text out of an already parsed
// page. Exported separately so tests can feed static HTML.
func ExtractFromDocument(doc *goquery.Document) string {
	var paragraphs []string

	for _, selector := range selectors {
		doc.Find(selector).Each(func(i int, sel *goquery.Selection) {
			text := strings.TrimSpace(sel.Text())
			// Skip captions and bylines.
			if len(text) > 30 {
				paragraphs = append(paragraphs, text)
			}
		})
		if len(paragraphs) > 0 {
			break
		}
	}

	return strings.Join(paragraphs, "\n\n")
}
