package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFeedCategory(t *testing.T) {
	testCases := []struct {
		label    string
		expected FeedCategory
		wantErr  bool
	}{
		{"", CategoryRoughage, false},
		{"ruwvoer", CategoryRoughage, false},
		{"roughage", CategoryRoughage, false},
		{"krachtvoer", CategoryConcentrate, false},
		{"concentrate", CategoryConcentrate, false},
		{"bijproduct", CategoryByproduct, false},
		{"mineraal", CategoryMineral, false},
		{"frisdrank", CategoryRoughage, true},
	}

	for _, tc := range testCases {
		category, err := ParseFeedCategory(tc.label)
		if tc.wantErr {
			assert.Error(t, err, tc.label)
			continue
		}
		require.NoError(t, err, tc.label)
		assert.Equal(t, tc.expected, category, tc.label)
	}
}

func TestParseFeedBasis(t *testing.T) {
	basis, err := ParseFeedBasis("")
	require.NoError(t, err)
	assert.Equal(t, BasisPerKgDryMatter, basis)

	basis, err = ParseFeedBasis("product")
	require.NoError(t, err)
	assert.Equal(t, BasisPerKgProduct, basis)

	_, err = ParseFeedBasis("per liter")
	assert.Error(t, err)
}

func TestFeedValidate(t *testing.T) {
	valid := Feed{ID: "graskuil", Name: "Graskuil", VEMPerKgDS: 960, DefaultDSPercent: 45}
	assert.NoError(t, valid.Validate())

	testCases := []struct {
		name   string
		mutate func(*Feed)
	}{
		{"empty id", func(f *Feed) { f.ID = "" }},
		{"empty name", func(f *Feed) { f.Name = "" }},
		{"negative VEM", func(f *Feed) { f.VEMPerKgDS = -1 }},
		{"DS percent above 100", func(f *Feed) { f.DefaultDSPercent = 101 }},
		{"negative structure value", func(f *Feed) { f.StructuurPerKgDS = -0.1 }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			feed := valid
			tc.mutate(&feed)
			assert.Error(t, feed.Validate())
		})
	}
}

func TestParsedFeedData_ToFeed(t *testing.T) {
	parsed := ParsedFeedData{
		ProductName: "Graskuil voorjaar",
		ProductType: "ruwvoer",
		VEM:         960, DVE: 70, OEB: 45, DSPercent: 45, SW: 1.25,
	}

	feed, err := parsed.ToFeed("graskuil-2026-1")
	require.NoError(t, err)
	assert.Equal(t, FeedID("graskuil-2026-1"), feed.ID)
	assert.Equal(t, CategoryRoughage, feed.Category)
	assert.Equal(t, BasisPerKgProduct, feed.Basis)
	assert.Nil(t, feed.FillingPerKgDS)
}

func TestParsedFeedData_ToFeed_UnknownTypeDefaultsToRoughage(t *testing.T) {
	parsed := ParsedFeedData{ProductName: "Onbekend product", ProductType: "iets-nieuws", VEM: 800, DSPercent: 40}

	feed, err := parsed.ToFeed("onbekend")
	require.NoError(t, err)
	assert.Equal(t, CategoryRoughage, feed.Category)
}

func TestParsedFeedData_ToFeed_RequiresProductName(t *testing.T) {
	_, err := ParsedFeedData{VEM: 800}.ToFeed("x")
	assert.Error(t, err)
}

func TestLactationStateValidate(t *testing.T) {
	valid := LactationState{Parity: 2, DaysInMilk: 120, DaysPregnant: 40, Lactating: true}
	assert.NoError(t, valid.Validate())

	assert.Error(t, LactationState{Parity: 0, DaysInMilk: 10}.Validate())
	assert.Error(t, LactationState{Parity: 1, DaysInMilk: -1}.Validate())
	assert.Error(t, LactationState{Parity: 1, DaysInMilk: 10, DaysPregnant: 284}.Validate())
}
