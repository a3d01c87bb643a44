package facets_test

import (
	"testing"

	"github.com/ruminaider/jobfilter/internal/facets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChips_OnePerActiveFacetPlusQuery(t *testing.T) {
	s := facets.NewState(defs)
	assert.Empty(t, facets.Chips(defs, s))
	assert.False(t, facets.ClearAllVisible(s))

	s.SetFacet("type", "Contract")
	s.SetFacet("location", "Remote")
	s.SetQuery("ux")

	chips := facets.Chips(defs, s)
	require.Len(t, chips, 3)
	// Definition order, not selection order.
	assert.Equal(t, "Location: Remote", chips[0].Text())
	assert.Equal(t, "Type: Contract", chips[1].Text())
	assert.Equal(t, facets.ChipQuery, chips[2].Kind)
	assert.Equal(t, `"ux"`, chips[2].Text())
	assert.True(t, facets.ClearAllVisible(s))
}

func TestChips_QueryOnly(t *testing.T) {
	s := facets.NewState(defs)
	s.SetQuery("eng")
	chips := facets.Chips(defs, s)
	require.Len(t, chips, 1)
	assert.Equal(t, facets.ChipQuery, chips[0].Kind)
	assert.True(t, facets.ClearAllVisible(s))
}

func TestChips_UndefinedKeyIsStillShown(t *testing.T) {
	s := facets.NewState(defs)
	s.SetFacet("seniority", "Senior")
	chips := facets.Chips(defs, s)
	require.Len(t, chips, 1)
	assert.Equal(t, "seniority: Senior", chips[0].Text())
}

func TestChip_DismissResetsOnlyItsPiece(t *testing.T) {
	s := facets.NewState(defs)
	s.SetFacet("location", "Remote")
	s.SetFacet("type", "Contract")
	s.SetQuery("ux")

	chips := facets.Chips(defs, s)
	require.Len(t, chips, 3)

	chips[0].Dismiss(s)
	assert.Equal(t, "", s.Selected("location"))
	assert.Equal(t, "Contract", s.Selected("type"))
	assert.Equal(t, "ux", s.Query())

	chips[2].Dismiss(s)
	assert.Equal(t, "", s.Query())
	assert.Equal(t, "Contract", s.Selected("type"))

	remaining := facets.Chips(defs, s)
	require.Len(t, remaining, 1)
	assert.Equal(t, "type", remaining[0].Key)
}
