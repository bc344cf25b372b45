package repositories

import "github.com/veldman/rantsoen/pkg/domain/entities"

// FeedRepository provides access to the feed library
type FeedRepository interface {
	GetFeed(id entities.FeedID) (*entities.Feed, error)
	GetAllFeeds() ([]*entities.Feed, error)
	LoadFeeds(feeds []*entities.Feed) error
}
