package languageutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanQuery(t *testing.T) {
	assert.Equal(t, "wedding saree", CleanQuery("Weding sare"))
	assert.Equal(t, "show me a silk lehenga", CleanQuery("Show me a slk lehnga!"))
	assert.Equal(t, "cotton kurta pajama", CleanQuery("ctn kurtha pajma"))
	assert.Equal(t, "", CleanQuery("  !?  "))
}

func TestExtractKeywords(t *testing.T) {
	keywords := ExtractKeywords("silk sarees for wedding")
	assert.Equal(t, []string{"silk", "saree", "wedding"}, keywords)

	// duplicates collapse, first-seen order is kept
	keywords = ExtractKeywords("saree saree silk saree")
	assert.Equal(t, []string{"saree", "silk"}, keywords)

	assert.Empty(t, ExtractKeywords("hello there"))
}

func TestExtractKeywordsMultiWordGarment(t *testing.T) {
	// multi-word garment names surface both of their words
	keywords := ExtractKeywords("show me a nehru jacket")
	assert.Contains(t, keywords, "nehru")
	assert.Contains(t, keywords, "jacket")

	filter := ParseFilters("a nehru jacket for diwali")
	require.NotNil(t, filter.Category)
	assert.Equal(t, "Nehru Jacket", *filter.Category)
}

func TestExtractKeywordsFuzzy(t *testing.T) {
	// close misspellings still resolve to the vocabulary term
	keywords := ExtractKeywords("a nice lehanga with a cholli")
	assert.Contains(t, keywords, "lehenga")
	assert.Contains(t, keywords, "choli")
}

func TestParseFilters(t *testing.T) {
	filter := ParseFilters("silk sarees for wedding")
	require.NotNil(t, filter.Category)
	assert.Equal(t, "Saree", *filter.Category)
	require.NotNil(t, filter.Occasion)
	assert.Equal(t, "Wedding", *filter.Occasion)
	require.NotNil(t, filter.Fabric)
	assert.Equal(t, "Silk", *filter.Fabric)
	assert.Nil(t, filter.Region)
	assert.Nil(t, filter.Gender)
}

func TestParseFiltersRegionAndGender(t *testing.T) {
	filter := ParseFilters("punjabi suit for the groom")
	require.NotNil(t, filter.Region)
	assert.Equal(t, "North", *filter.Region)
	require.NotNil(t, filter.Gender)
	assert.Equal(t, "Men", *filter.Gender)
}

func TestParseFiltersEmpty(t *testing.T) {
	filter := ParseFilters("hello, how are you?")
	assert.True(t, filter.Empty())
}

func TestNormalizeQuery(t *testing.T) {
	assert.Equal(t, "silk saree for wedding", NormalizeQuery("  Silk   Saree  for WEDDING  "))
	assert.Equal(t, NormalizeQuery("Silk Saree"), NormalizeQuery("silk saree"))
}

func TestClosestTerm(t *testing.T) {
	vocabulary := []string{"saree", "lehenga", "sherwani"}
	assert.Equal(t, "saree", ClosestTerm("sarees", vocabulary, 0.75))
	assert.Equal(t, "lehenga", ClosestTerm("lehanga", vocabulary, 0.75))
	assert.Equal(t, "sherwani", ClosestTerm("sherwani", vocabulary, 0.75))
	assert.Equal(t, "", ClosestTerm("tuxedo", vocabulary, 0.75))
	assert.Equal(t, "", ClosestTerm("", vocabulary, 0.75))
}
