package rss

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const articlePage = `<html><body><article>
<p>The full story text lives on the article page and is long enough to keep.</p>
</article></body></html>`

func feedXML(serverURL string) string {
	longBody := strings.Repeat("A complete article body carried inline in the feed item. ", 10)
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>Example News</title>
<item>
<title>Inline story</title>
<link>%s/inline</link>
<pubDate>Tue, 05 Mar 2024 09:00:00 GMT</pubDate>
<description>%s</description>
</item>
<item>
<title>Teaser story</title>
<link>%s/article</link>
<description>Read more on our site.</description>
</item>
</channel>
</rss>`, serverURL, longBody, serverURL)
}

func newFeedServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	var server *httptest.Server
	mux.HandleFunc("/feed", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, feedXML(server.URL))
	})
	mux.HandleFunc("/article", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, articlePage)
	})
	server = httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestFetch(t *testing.T) {
	server := newFeedServer(t)

	src := NewSource([]string{server.URL + "/feed"})
	articles, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	if len(articles) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(articles))
	}

	inline := articles[0]
	if inline.Title != "Inline story" {
		t.Errorf("unexpected title: %q", inline.Title)
	}
	if inline.Section != "Example News" {
		t.Errorf("unexpected section: %q", inline.Section)
	}
	if !strings.Contains(inline.Body, "carried inline in the feed item") {
		t.Errorf("expected inline body kept, got %q", inline.Body)
	}
	if inline.PublishedAt.IsZero() {
		t.Error("expected publication date parsed")
	}

	// The teaser item is completed by scraping the linked page.
	teaser := articles[1]
	if !strings.Contains(teaser.Body, "full story text lives on the article page") {
		t.Errorf("expected scraped body, got %q", teaser.Body)
	}
}

func TestFetch_BrokenFeedIsSkipped(t *testing.T) {
	server := newFeedServer(t)

	src := NewSource([]string{"http://127.0.0.1:1/feed", server.URL + "/feed"})
	articles, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(articles) != 2 {
		t.Errorf("expected articles from the working feed, got %d", len(articles))
	}
}

func TestName(t *testing.T) {
	if got := NewSource(nil).Name(); got != "rss" {
		t.Errorf("Name = %q, want rss", got)
	}
}
