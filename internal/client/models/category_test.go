package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCategory_UnmarshalJSON_StringList(t *testing.T) {
	var got []Category
	err := json.Unmarshal([]byte(`["beauty","fragrances"]`), &got)
	require.NoError(t, err)
	require.Equal(t, []Category{{Slug: "beauty", Name: "beauty"}, {Slug: "fragrances", Name: "fragrances"}}, got)
}

func TestCategory_UnmarshalJSON_ObjectList(t *testing.T) {
	var got []Category
	err := json.Unmarshal([]byte(`[{"slug":"home-decoration","name":"Home Decoration","url":"https://example.com"}]`), &got)
	require.NoError(t, err)
	require.Equal(t, []Category{{Slug: "home-decoration", Name: "Home Decoration"}}, got)
}

func TestCategory_UnmarshalJSON_ObjectWithoutName(t *testing.T) {
	var got Category
	err := json.Unmarshal([]byte(`{"slug":"laptops"}`), &got)
	require.NoError(t, err)
	require.Equal(t, "laptops", got.Name)
}

func TestCategory_Display(t *testing.T) {
	require.Equal(t, "Beauty", Category{Name: "beauty"}.Display())
	require.Equal(t, "", Category{}.Display())
}

func TestContainsCategory(t *testing.T) {
	vocab := []Category{{Name: "beauty"}, {Name: "laptops"}}
	require.True(t, ContainsCategory(vocab, "laptops"))
	require.False(t, ContainsCategory(vocab, "Food"))
}
