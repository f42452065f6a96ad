package port

import (
	"context"

	"newsbrief/internal/domain"
)

// Source fetches article bodies from somewhere out on the network.
type Source interface {
	// Fetch returns articles in the source's own order, newest first
	// where the backend supports it.
	Fetch(ctx context.Context) ([]domain.Article, error)

	// Name identifies the source in logs and digests.
	Name() string
}
