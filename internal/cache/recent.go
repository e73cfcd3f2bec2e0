package cache

import (
	"sync"
	"time"

	"forumapp/internal/models"
	"forumapp/internal/observability"
)

// DefaultRecentCount is the slot invalidated when a post is created or updated.
const DefaultRecentCount = 10

const (
	recentAbsoluteTTL = 5 * time.Minute
	recentSlidingTTL  = 2 * time.Minute
)

type recentEntry struct {
	posts []models.Post
	// absolute is the hard deadline set at insertion; sliding moves forward
	// on each hit but never past absolute.
	absolute time.Time
	sliding  time.Time
}

// RecentPosts is an in-process cache of recent-post listings keyed by the
// requested count. It is intentionally local to the process and is never the
// system of record; a stale or missing entry only costs a database read.
type RecentPosts struct {
	mu      sync.Mutex
	entries map[int]*recentEntry
	now     func() time.Time
}

// NewRecentPosts returns an empty cache using the wall clock.
func NewRecentPosts() *RecentPosts {
	return &RecentPosts{
		entries: make(map[int]*recentEntry),
		now:     time.Now,
	}
}

// NewRecentPostsWithClock returns a cache driven by the given clock. Tests use
// this to exercise expiry without sleeping.
func NewRecentPostsWithClock(now func() time.Time) *RecentPosts {
	return &RecentPosts{
		entries: make(map[int]*recentEntry),
		now:     now,
	}
}

// Get returns the cached listing for count, if present and unexpired. A hit
// resets the sliding deadline, capped at the absolute one.
func (c *RecentPosts) Get(count int) ([]models.Post, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	entry, ok := c.entries[count]
	if !ok || now.After(entry.sliding) || now.After(entry.absolute) {
		if ok {
			delete(c.entries, count)
		}
		observability.RecentPostsCacheMisses.Inc()
		return nil, false
	}

	sliding := now.Add(recentSlidingTTL)
	if sliding.After(entry.absolute) {
		sliding = entry.absolute
	}
	entry.sliding = sliding

	observability.RecentPostsCacheHits.Inc()
	return entry.posts, true
}

// Set stores the listing for count, replacing any previous entry and starting
// both expiration windows from now.
func (c *RecentPosts) Set(count int, posts []models.Post) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	absolute := now.Add(recentAbsoluteTTL)
	sliding := now.Add(recentSlidingTTL)
	if sliding.After(absolute) {
		sliding = absolute
	}

	c.entries[count] = &recentEntry{
		posts:    posts,
		absolute: absolute,
		sliding:  sliding,
	}
}

// Invalidate drops the entry for count. Other slots are left to age out.
func (c *RecentPosts) Invalidate(count int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[count]; ok {
		delete(c.entries, count)
		observability.RecentPostsCacheInvalidations.Inc()
	}
}
