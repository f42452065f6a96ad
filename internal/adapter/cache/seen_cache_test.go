package cache

import (
	"fmt"
	"testing"
	"time"
)

func TestSeenCache_MarkAndSeen(t *testing.T) {
	c := NewSeenCache(10, time.Hour)

	url := "https://example.com/story"
	if c.Seen(url) {
		t.Error("expected Seen false before Mark")
	}

	c.Mark(url)
	if !c.Seen(url) {
		t.Error("expected Seen true after Mark")
	}
	if c.Seen("https://example.com/other") {
		t.Error("expected Seen false for unmarked URL")
	}
}

func TestSeenCache_TTLExpiry(t *testing.T) {
	c := NewSeenCache(10, 10*time.Millisecond)

	url := "https://example.com/story"
	c.Mark(url)
	if !c.Seen(url) {
		t.Fatal("expected Seen true right after Mark")
	}

	time.Sleep(20 * time.Millisecond)
	if c.Seen(url) {
		t.Error("expected Seen false after TTL expiry")
	}
	if c.Len() != 0 {
		t.Errorf("expected expired entry removed, Len = %d", c.Len())
	}
}

func TestSeenCache_EvictsOldest(t *testing.T) {
	c := NewSeenCache(3, time.Hour)

	for i := 0; i < 3; i++ {
		c.Mark(fmt.Sprintf("https://example.com/%d", i))
	}
	if c.Len() != 3 {
		t.Fatalf("Len = %d, want 3", c.Len())
	}

	c.Mark("https://example.com/3")
	if c.Len() != 3 {
		t.Errorf("Len = %d after eviction, want 3", c.Len())
	}
	if c.Seen("https://example.com/0") {
		t.Error("expected oldest entry evicted")
	}
	if !c.Seen("https://example.com/3") {
		t.Error("expected newest entry retained")
	}
}

func TestSeenCache_SeenRefreshesOrder(t *testing.T) {
	c := NewSeenCache(2, time.Hour)

	c.Mark("https://example.com/a")
	c.Mark("https://example.com/b")

	// Touching a makes b the eviction candidate.
	c.Seen("https://example.com/a")
	c.Mark("https://example.com/c")

	if !c.Seen("https://example.com/a") {
		t.Error("expected recently touched entry retained")
	}
	if c.Seen("https://example.com/b") {
		t.Error("expected least-recently-seen entry evicted")
	}
}

func TestSeenCache_DefaultBounds(t *testing.T) {
	c := NewSeenCache(0, 0)
	if c.maxSize != 500 {
		t.Errorf("maxSize = %d, want 500", c.maxSize)
	}
	if c.ttl != 24*time.Hour {
		t.Errorf("ttl = %v, want 24h", c.ttl)
	}
}
