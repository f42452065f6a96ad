package usecase

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"sync"
	"time"

	"newsbrief/internal/adapter/cache"
	"newsbrief/internal/adapter/store"
	"newsbrief/internal/domain"
	"newsbrief/internal/logger"
	"newsbrief/internal/port"
)

// DigestUseCase fetches fresh articles, summarizes each one, renders an
// HTML digest, archives it, and hands it to the sender.
type DigestUseCase struct {
	sources     []port.Source
	summarizer  port.Summarizer
	archive     *store.Archive
	sender      port.Sender // nil disables delivery
	seen        *cache.SeenCache
	sentences   int
	maxArticles int
	workers     int
}

// NewDigestUseCase creates a digest pipeline. sentences is the summary
// length per article, maxArticles caps the digest size.
func NewDigestUseCase(
	sources []port.Source,
	summarizer port.Summarizer,
	archive *store.Archive,
	sender port.Sender,
	sentences int,
	maxArticles int,
) *DigestUseCase {
	return &DigestUseCase{
		sources:     sources,
		summarizer:  summarizer,
		archive:     archive,
		sender:      sender,
		seen:        cache.NewSeenCache(500, 24*time.Hour),
		sentences:   sentences,
		maxArticles: maxArticles,
		workers:     4,
	}
}

// DigestResult reports what a digest run did.
type DigestResult struct {
	Digest             domain.Digest
	ArticlesFetched    int
	ArticlesSkipped    int
	ArticlesSummarized int
	Sent               bool
	Errors             []string
}

// Run executes one digest cycle. progress, if non-nil, is called after
// each article is summarized.
func (u *DigestUseCase) Run(ctx context.Context, progress func(done, total int)) (*DigestResult, error) {
	result := &DigestResult{}

	var articles []domain.Article
	for _, src := range u.sources {
		fetched, err := src.Fetch(ctx)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("fetch from %s failed: %v", src.Name(), err))
			continue
		}
		logger.Info("articles fetched", "source", src.Name(), "count", len(fetched))
		articles = append(articles, fetched...)
	}
	result.ArticlesFetched = len(articles)

	// Drop empty bodies, repeats within the run, and recently digested
	// stories.
	fresh := make([]domain.Article, 0, len(articles))
	for _, a := range articles {
		if a.Body == "" || a.URL == "" {
			result.ArticlesSkipped++
			continue
		}
		if u.seen.Seen(a.URL) || u.archive.HasArticle(a.URL) {
			result.ArticlesSkipped++
			continue
		}
		u.seen.Mark(a.URL)
		fresh = append(fresh, a)
		if len(fresh) >= u.maxArticles {
			break
		}
	}

	if len(fresh) == 0 {
		logger.Info("no fresh articles, skipping digest")
		return result, nil
	}

	summarized, errs := u.summarizeAll(fresh, progress)
	result.Errors = append(result.Errors, errs...)
	result.ArticlesSummarized = len(summarized)

	if len(summarized) == 0 {
		return result, fmt.Errorf("all %d articles failed to summarize", len(fresh))
	}

	now := time.Now()
	digest := domain.Digest{
		ID:        now.UTC().Format("20060102T150405Z"),
		CreatedAt: now,
		Articles:  summarized,
	}
	result.Digest = digest

	for _, sa := range summarized {
		if err := u.archive.PutArticle(sa); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("archive article %s: %v", sa.Article.URL, err))
		}
	}
	if err := u.archive.PutDigest(digest); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("archive digest: %v", err))
	}
	u.updateStats(summarized)

	if u.sender != nil {
		subject := fmt.Sprintf("News summary for %s", now.Format("02/01/2006 15:04"))
		body, err := RenderHTML(digest)
		if err != nil {
			return result, fmt.Errorf("failed to render digest: %w", err)
		}
		if err := u.sender.Send(subject, body); err != nil {
			return result, fmt.Errorf("failed to deliver digest: %w", err)
		}
		result.Sent = true
		logger.Info("digest sent", "articles", len(summarized))
	}

	return result, nil
}

// summarizeAll runs the summarizer over the articles with a small worker
// pool. The embedding table is read-only, so concurrent calls need no
// coordination. Input order is preserved in the output.
func (u *DigestUseCase) summarizeAll(articles []domain.Article, progress func(done, total int)) ([]domain.SummarizedArticle, []string) {
	type slot struct {
		sa  domain.SummarizedArticle
		err error
	}
	slots := make([]slot, len(articles))

	var wg sync.WaitGroup
	var mu sync.Mutex
	done := 0

	jobs := make(chan int)
	workers := u.workers
	if workers > len(articles) {
		workers = len(articles)
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				summary, err := u.summarizer.Summarize(articles[i].Body, u.sentences)
				slots[i] = slot{
					sa:  domain.SummarizedArticle{Article: articles[i], Summary: summary},
					err: err,
				}

				mu.Lock()
				done++
				if progress != nil {
					progress(done, len(articles))
				}
				mu.Unlock()
			}
		}()
	}

	for i := range articles {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	var summarized []domain.SummarizedArticle
	var errs []string
	for i, s := range slots {
		if s.err != nil {
			errs = append(errs, fmt.Sprintf("summarize %s: %v", articles[i].URL, s.err))
			continue
		}
		if len(s.sa.Summary.Sentences) == 0 {
			errs = append(errs, fmt.Sprintf("summarize %s: empty summary", articles[i].URL))
			continue
		}
		summarized = append(summarized, s.sa)
	}
	return summarized, errs
}

func (u *DigestUseCase) updateStats(summarized []domain.SummarizedArticle) {
	stats, err := u.archive.GetStats()
	if err != nil {
		return
	}

	totalChars := stats.AvgSummaryChars * float64(stats.TotalArticles)
	for _, sa := range summarized {
		totalChars += float64(len(sa.Summary.Text()))
	}
	stats.TotalArticles += len(summarized)
	stats.TotalDigests++
	if stats.TotalArticles > 0 {
		stats.AvgSummaryChars = totalChars / float64(stats.TotalArticles)
	}

	if err := u.archive.UpdateStats(stats); err != nil {
		logger.Warn("failed to update archive stats", "error", err)
	}
}

var digestTemplate = template.Must(template.New("digest").Parse(`<!DOCTYPE html>
<html>
<head></head>
<body>
  <h1>Summary from {{.CreatedAt.Format "02/01/2006 15:04"}}.</h1>
{{- range .Articles}}
  <h2><a href="{{.Article.URL}}">{{.Article.Title}}</a></h2>
  <i>{{.Article.PublishedAt.Format "2006-01-02 15:04"}}</i>
  <p>{{.Summary.Text}}</p>
{{- end}}
</body>
</html>
`))

// RenderHTML renders a digest as a standalone HTML document.
func RenderHTML(d domain.Digest) (string, error) {
	var buf bytes.Buffer
	if err := digestTemplate.Execute(&buf, d); err != nil {
		return "", err
	}
	return buf.String(), nil
}
