package guardian

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"newsbrief/config"
	"newsbrief/internal/domain"
)

const defaultBaseURL = "https://content.guardianapis.com"

// Client fetches article bodies from the Guardian content API.
type Client struct {
	apiKey      string
	baseURL     string
	section     string
	pageSize    int
	orderBy     string
	fromLastDay bool
	client      *http.Client
}

type searchResponse struct {
	Response struct {
		Status  string         `json:"status"`
		Message string         `json:"message"`
		Results []searchResult `json:"results"`
	} `json:"response"`
}

type searchResult struct {
	WebTitle           string `json:"webTitle"`
	SectionName        string `json:"sectionName"`
	WebURL             string `json:"webUrl"`
	WebPublicationDate string `json:"webPublicationDate"`
	Fields             struct {
		BodyText string `json:"bodyText"`
	} `json:"fields"`
}

// NewClient creates a Guardian client from config. The API key is read
// from the configured environment variable.
func NewClient(cfg config.GuardianConfig) (*Client, error) {
	apiKey := os.Getenv(cfg.APIKeyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("API key not found in environment variable: %s", cfg.APIKeyEnv)
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}

	return &Client{
		apiKey:      apiKey,
		baseURL:     defaultBaseURL,
		section:     cfg.Section,
		pageSize:    pageSize,
		orderBy:     cfg.OrderBy,
		fromLastDay: cfg.FromLastDay,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// NewClientWithBaseURL is used by tests to point the client at a stub
// server.
func NewClientWithBaseURL(apiKey, baseURL string, pageSize int) *Client {
	return &Client{
		apiKey:   apiKey,
		baseURL:  baseURL,
		pageSize: pageSize,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) Name() string {
	return "guardian"
}

// Fetch requests articles from the search endpoint with body text
// included.
func (c *Client) Fetch(ctx context.Context) ([]domain.Article, error) {
	q := url.Values{}
	q.Set("api-key", c.apiKey)
	q.Set("show-fields", "bodyText")
	q.Set("page-size", strconv.Itoa(c.pageSize))
	if c.section != "" {
		q.Set("section", c.section)
	}
	if c.orderBy != "" {
		q.Set("order-by", c.orderBy)
	}
	if c.fromLastDay {
		now := time.Now().UTC()
		q.Set("from-date", now.Add(-24*time.Hour).Format("2006-01-02"))
		q.Set("to-date", now.Format("2006-01-02"))
	}

	reqURL := c.baseURL + "/search?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("guardian request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read guardian response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("guardian API returned status %d: %s", resp.StatusCode, string(body))
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode guardian response: %w", err)
	}
	if parsed.Response.Status != "ok" {
		return nil, fmt.Errorf("guardian API error: %s", parsed.Response.Message)
	}

	articles := make([]domain.Article, 0, len(parsed.Response.Results))
	for _, r := range parsed.Response.Results {
		published, _ := time.Parse(time.RFC3339, r.WebPublicationDate)
		articles = append(articles, domain.Article{
			Title:       cleanString(r.WebTitle),
			Section:     cleanString(r.SectionName),
			URL:         r.WebURL,
			PublishedAt: published,
			Body:        cleanString(r.Fields.BodyText),
		})
	}

	return articles, nil
}

// cleanString drops non-ASCII runes, newlines, and tabs from API
// strings.
func cleanString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r > 127 || r == '\n' || r == '\t' {
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}
