package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldman/rantsoen/pkg/domain/entities"
)

func testFeed(id, name string) *entities.Feed {
	return &entities.Feed{
		ID: entities.FeedID(id), Name: name,
		VEMPerKgDS: 960, DVEPerKgDS: 70, DefaultDSPercent: 45,
		Basis: entities.BasisPerKgProduct, Category: entities.CategoryRoughage,
	}
}

func TestFeedRepository_LoadAndGet(t *testing.T) {
	repo := NewFeedRepository(2)

	err := repo.LoadFeeds([]*entities.Feed{
		testFeed("graskuil", "Graskuil"),
		testFeed("snijmais", "Snijmaïs"),
	})
	require.NoError(t, err)

	feed, err := repo.GetFeed("graskuil")
	require.NoError(t, err)
	assert.Equal(t, "Graskuil", feed.Name)

	all, err := repo.GetAllFeeds()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestFeedRepository_GetUnknownFeed(t *testing.T) {
	repo := NewFeedRepository(0)

	_, err := repo.GetFeed("bestaat-niet")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "bestaat-niet")
}

func TestFeedRepository_AddFeedReplacesExisting(t *testing.T) {
	repo := NewFeedRepository(1)
	repo.AddFeed(*testFeed("graskuil", "Graskuil voorjaar"))
	repo.AddFeed(*testFeed("graskuil", "Graskuil najaar"))

	feed, err := repo.GetFeed("graskuil")
	require.NoError(t, err)
	assert.Equal(t, "Graskuil najaar", feed.Name)

	all, err := repo.GetAllFeeds()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestFeedRepository_LoadFeedsRejectsInvalid(t *testing.T) {
	repo := NewFeedRepository(1)

	invalid := testFeed("kapot", "Kapot voer")
	invalid.VEMPerKgDS = -100

	err := repo.LoadFeeds([]*entities.Feed{invalid})
	assert.Error(t, err)
}
