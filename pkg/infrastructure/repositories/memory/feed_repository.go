package memory

import (
	"fmt"

	"github.com/veldman/rantsoen/pkg/domain/entities"
	"github.com/veldman/rantsoen/pkg/domain/repositories"
)

// FeedRepository provides in-memory feed library storage
type FeedRepository struct {
	feeds    []entities.Feed
	feedsMap map[entities.FeedID]int
}

// NewFeedRepository creates a new in-memory feed repository
func NewFeedRepository(expectedFeeds int) *FeedRepository {
	return &FeedRepository{
		feeds:    make([]entities.Feed, 0, expectedFeeds),
		feedsMap: make(map[entities.FeedID]int, expectedFeeds),
	}
}

// Verify interface compliance
var _ repositories.FeedRepository = (*FeedRepository)(nil)

// LoadFeeds loads feeds into the repository
func (r *FeedRepository) LoadFeeds(feeds []*entities.Feed) error {
	for _, feed := range feeds {
		if err := feed.Validate(); err != nil {
			return fmt.Errorf("failed to load feed %s: %w", feed.ID, err)
		}
		r.AddFeed(*feed)
	}
	return nil
}

// AddFeed adds a feed to the repository
func (r *FeedRepository) AddFeed(feed entities.Feed) {
	if index, exists := r.feedsMap[feed.ID]; exists {
		r.feeds[index] = feed
		return
	}
	r.feedsMap[feed.ID] = len(r.feeds)
	r.feeds = append(r.feeds, feed)
}

// GetFeed returns the feed record for an id
func (r *FeedRepository) GetFeed(id entities.FeedID) (*entities.Feed, error) {
	index, exists := r.feedsMap[id]
	if !exists {
		return nil, fmt.Errorf("feed not found: %s", id)
	}
	return &r.feeds[index], nil
}

// GetAllFeeds returns all feeds
func (r *FeedRepository) GetAllFeeds() ([]*entities.Feed, error) {
	var feeds []*entities.Feed
	for i := range r.feeds {
		feeds = append(feeds, &r.feeds[i])
	}
	return feeds, nil
}
