package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"newsbrief/internal/domain"
)

var (
	bucketArticles = []byte("articles")
	bucketDigests  = []byte("digests")
	bucketStats    = []byte("stats")
	keyStats       = []byte("archive_stats")
)

// Archive persists summarized articles and assembled digests in a
// BoltDB file.
type Archive struct {
	db *bbolt.DB
}

func NewArchive(path string) (*Archive, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		buckets := [][]byte{bucketArticles, bucketDigests, bucketStats}
		for _, b := range buckets {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Archive{db: db}, nil
}

type articleMeta struct {
	Title       string `json:"title"`
	Section     string `json:"section"`
	URL         string `json:"url"`
	PublishedAt int64  `json:"published_at"`
	Summary     string `json:"summary"`
	ArchivedAt  int64  `json:"archived_at"`
}

type digestMeta struct {
	CreatedAt  int64    `json:"created_at"`
	ArticleIDs []string `json:"article_ids"`
}

// StoredArticle is an archived article with its summary text.
type StoredArticle struct {
	ID         string
	Article    domain.Article
	Summary    string
	ArchivedAt time.Time
}

// ArticleID derives the archive key for an article URL.
func ArticleID(url string) string {
	hash := sha256.Sum256([]byte(url))
	return hex.EncodeToString(hash[:8])
}

func (a *Archive) PutArticle(sa domain.SummarizedArticle) error {
	return a.db.Update(func(tx *bbolt.Tx) error {
		meta := articleMeta{
			Title:       sa.Article.Title,
			Section:     sa.Article.Section,
			URL:         sa.Article.URL,
			PublishedAt: sa.Article.PublishedAt.Unix(),
			Summary:     sa.Summary.Text(),
			ArchivedAt:  time.Now().Unix(),
		}
		data, err := json.Marshal(meta)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketArticles).Put([]byte(ArticleID(sa.Article.URL)), data)
	})
}

func (a *Archive) GetArticle(id string) (StoredArticle, error) {
	var stored StoredArticle
	err := a.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketArticles).Get([]byte(id))
		if data == nil {
			return fmt.Errorf("article not found: %s", id)
		}
		var meta articleMeta
		if err := json.Unmarshal(data, &meta); err != nil {
			return err
		}
		stored = fromMeta(id, meta)
		return nil
	})
	return stored, err
}

// HasArticle reports whether an article with this URL is archived.
func (a *Archive) HasArticle(url string) bool {
	found := false
	a.db.View(func(tx *bbolt.Tx) error {
		found = tx.Bucket(bucketArticles).Get([]byte(ArticleID(url))) != nil
		return nil
	})
	return found
}

func (a *Archive) ListArticles() ([]StoredArticle, error) {
	var articles []StoredArticle
	err := a.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketArticles)
		return b.ForEach(func(k, v []byte) error {
			var meta articleMeta
			if err := json.Unmarshal(v, &meta); err != nil {
				return err
			}
			articles = append(articles, fromMeta(string(k), meta))
			return nil
		})
	})
	return articles, err
}

func (a *Archive) PutDigest(d domain.Digest) error {
	return a.db.Update(func(tx *bbolt.Tx) error {
		ids := make([]string, 0, len(d.Articles))
		for _, sa := range d.Articles {
			ids = append(ids, ArticleID(sa.Article.URL))
		}
		meta := digestMeta{
			CreatedAt:  d.CreatedAt.Unix(),
			ArticleIDs: ids,
		}
		data, err := json.Marshal(meta)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketDigests).Put([]byte(d.ID), data)
	})
}

// DigestEntry is a digest reference as stored, without article bodies.
type DigestEntry struct {
	ID         string
	CreatedAt  time.Time
	ArticleIDs []string
}

func (a *Archive) ListDigests() ([]DigestEntry, error) {
	var digests []DigestEntry
	err := a.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketDigests)
		return b.ForEach(func(k, v []byte) error {
			var meta digestMeta
			if err := json.Unmarshal(v, &meta); err != nil {
				return err
			}
			digests = append(digests, DigestEntry{
				ID:         string(k),
				CreatedAt:  time.Unix(meta.CreatedAt, 0),
				ArticleIDs: meta.ArticleIDs,
			})
			return nil
		})
	})
	return digests, err
}

func (a *Archive) GetStats() (domain.Stats, error) {
	var stats domain.Stats
	err := a.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketStats).Get(keyStats)
		if data == nil {
			return nil
		}
		return json.Unmarshal(data, &stats)
	})
	return stats, err
}

func (a *Archive) UpdateStats(stats domain.Stats) error {
	return a.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(stats)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketStats).Put(keyStats, data)
	})
}

func (a *Archive) Close() error {
	return a.db.Close()
}

func fromMeta(id string, meta articleMeta) StoredArticle {
	return StoredArticle{
		ID: id,
		Article: domain.Article{
			Title:       meta.Title,
			Section:     meta.Section,
			URL:         meta.URL,
			PublishedAt: time.Unix(meta.PublishedAt, 0),
		},
		Summary:    meta.Summary,
		ArchivedAt: time.Unix(meta.ArchivedAt, 0),
	}
}
