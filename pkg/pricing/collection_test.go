package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCollectionStartsWithOneDraft(t *testing.T) {
	c := NewCollection()

	require.Equal(t, 1, c.Len())
	draft := c.Drafts()[0]
	assert.NotEmpty(t, draft.ID)
	assert.Equal(t, "", draft.Description)
	assert.Equal(t, "1", draft.Quantity)
	assert.Equal(t, "0", draft.UnitPrice)
}

func TestAddGeneratesUniqueIDs(t *testing.T) {
	c := NewCollection()
	seen := map[string]bool{c.Drafts()[0].ID: true}

	for i := 0; i < 20; i++ {
		draft := c.Add()
		assert.False(t, seen[draft.ID], "draft id reused: %s", draft.ID)
		seen[draft.ID] = true
	}
	assert.Equal(t, 21, c.Len())
}

func TestRemoveLastDraftIsNoOp(t *testing.T) {
	c := NewCollection()
	id := c.Drafts()[0].ID

	assert.False(t, c.Remove(id))
	assert.Equal(t, 1, c.Len())
}

func TestRemove(t *testing.T) {
	c := NewCollection()
	second := c.Add()

	assert.True(t, c.Remove(second.ID))
	assert.Equal(t, 1, c.Len())

	// Unknown id is a no-op.
	c.Add()
	assert.False(t, c.Remove("missing"))
	assert.Equal(t, 2, c.Len())
}

func TestUpdate(t *testing.T) {
	c := NewCollection()
	id := c.Drafts()[0].ID

	assert.True(t, c.Update(id, FieldDescription, "Design work"))
	assert.True(t, c.Update(id, FieldQuantity, "3"))
	assert.True(t, c.Update(id, FieldUnitPrice, "120.50"))

	draft := c.Drafts()[0]
	assert.Equal(t, "Design work", draft.Description)
	assert.Equal(t, "3", draft.Quantity)
	assert.Equal(t, "120.50", draft.UnitPrice)

	assert.False(t, c.Update("missing", FieldDescription, "x"))
	assert.False(t, c.Update(id, "bogus_field", "x"))
}

func TestSubmissionItemsFiltering(t *testing.T) {
	c := NewCollection()
	first := c.Drafts()[0].ID
	c.Update(first, FieldDescription, "")
	c.Update(first, FieldQuantity, "1")

	second := c.Add()
	c.Update(second.ID, FieldDescription, "Design")
	c.Update(second.ID, FieldQuantity, "0")

	third := c.Add()
	c.Update(third.ID, FieldDescription, "  Build  ")
	c.Update(third.ID, FieldQuantity, "2")
	c.Update(third.ID, FieldUnitPrice, "100")

	items := c.SubmissionItems()

	require.Len(t, items, 1)
	assert.Equal(t, "Build", items[0].Description)
	assert.Equal(t, 2.0, items[0].Quantity)
	assert.Equal(t, 100.0, items[0].UnitPrice)
}

func TestSubmissionItemsAllFilteredMeansInvalid(t *testing.T) {
	c := NewCollection()

	assert.Empty(t, c.SubmissionItems())
}

func TestNewCollectionFromItems(t *testing.T) {
	c := NewCollectionFromItems([]SubmissionItem{
		{Description: "Consulting", Quantity: 4, UnitPrice: 75.5},
	})

	require.Equal(t, 1, c.Len())
	draft := c.Drafts()[0]
	assert.Equal(t, "Consulting", draft.Description)
	assert.Equal(t, "4", draft.Quantity)
	assert.Equal(t, "75.5", draft.UnitPrice)

	empty := NewCollectionFromItems(nil)
	assert.Equal(t, 1, empty.Len())
}

func TestCollectionTotals(t *testing.T) {
	c := NewCollectionFromItems([]SubmissionItem{
		{Description: "A", Quantity: 2, UnitPrice: 100},
		{Description: "B", Quantity: 1, UnitPrice: 50},
	})

	totals := c.Totals("10", "5")

	assert.Equal(t, 250.0, totals.Subtotal)
	assert.Equal(t, 262.5, totals.GrandTotal)
}

func TestSanitizeNumeric(t *testing.T) {
	assert.Equal(t, "12.5", SanitizeNumeric("12.5"))
	assert.Equal(t, "12.5", SanitizeNumeric("1a2.5%"))
	assert.Equal(t, "12.55", SanitizeNumeric("12.5.5"))
	assert.Equal(t, "3.5", SanitizeNumeric("3,5"))
	assert.Equal(t, "", SanitizeNumeric("abc"))
}
