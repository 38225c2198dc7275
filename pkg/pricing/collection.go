package pricing

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Draft field names accepted by Collection.Update.
const (
	FieldDescription = "description"
	FieldQuantity    = "quantity"
	FieldUnitPrice   = "unit_price"
)

// Draft represents one editable line item. Quantity and unit price are kept
// as the raw text the user typed; parsing happens at computation and
// submission time.
type Draft struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
}

// SubmissionItem is a draft normalized for submission.
type SubmissionItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// Collection is an ordered, mutable set of line-item drafts. It is never
// empty while being edited: removal of the last remaining draft is a no-op.
type Collection struct {
	drafts []Draft
}

// newDraftID generates a stable draft identifier. IDs are never reused
// after removal.
func newDraftID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.New().String()[:8])
}

// NewCollection creates a collection seeded with a single blank draft.
func NewCollection() *Collection {
	c := &Collection{}
	c.Add()
	return c
}

// NewCollectionFromItems hydrates a collection from previously submitted
// items, for edit sessions. An empty input still yields one blank draft.
func NewCollectionFromItems(items []SubmissionItem) *Collection {
	if len(items) == 0 {
		return NewCollection()
	}
	c := &Collection{drafts: make([]Draft, 0, len(items))}
	for _, item := range items {
		c.drafts = append(c.drafts, Draft{
			ID:          newDraftID(),
			Description: item.Description,
			Quantity:    formatAmount(item.Quantity),
			UnitPrice:   formatAmount(item.UnitPrice),
		})
	}
	return c
}

func formatAmount(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Add appends a new blank draft with quantity "1" and unit price "0" and
// returns it.
func (c *Collection) Add() Draft {
	draft := Draft{
		ID:          newDraftID(),
		Description: "",
		Quantity:    "1",
		UnitPrice:   "0",
	}
	c.drafts = append(c.drafts, draft)
	return draft
}

// Remove deletes the draft with the given id. Removing the last remaining
// draft or an unknown id is a no-op; the return value reports whether a
// draft was removed.
func (c *Collection) Remove(id string) bool {
	if len(c.drafts) <= 1 {
		return false
	}
	for i, draft := range c.drafts {
		if draft.ID == id {
			c.drafts = append(c.drafts[:i], c.drafts[i+1:]...)
			return true
		}
	}
	return false
}

// Update replaces one field of the draft with the given id. Unknown ids and
// unknown field names are no-ops. Numeric fields are expected to be
// pre-filtered with SanitizeNumeric at the input boundary.
func (c *Collection) Update(id, field, value string) bool {
	for i := range c.drafts {
		if c.drafts[i].ID != id {
			continue
		}
		switch field {
		case FieldDescription:
			c.drafts[i].Description = value
		case FieldQuantity:
			c.drafts[i].Quantity = value
		case FieldUnitPrice:
			c.drafts[i].UnitPrice = value
		default:
			return false
		}
		return true
	}
	return false
}

// Len returns the number of drafts.
func (c *Collection) Len() int {
	return len(c.drafts)
}

// Drafts returns a copy of the drafts in display order.
func (c *Collection) Drafts() []Draft {
	out := make([]Draft, len(c.drafts))
	copy(out, c.drafts)
	return out
}

// Totals computes the current pricing breakdown over all drafts, including
// ones that would be filtered at submission.
func (c *Collection) Totals(taxRate, discountRate string) Totals {
	return Calculate(c.drafts, taxRate, discountRate)
}

// SubmissionItems normalizes the collection for submission: descriptions
// are trimmed, amounts parsed, and items with an empty description or a
// quantity of zero or less are dropped. An empty result means the caller
// must treat the submission as invalid.
func (c *Collection) SubmissionItems() []SubmissionItem {
	items := make([]SubmissionItem, 0, len(c.drafts))
	for _, draft := range c.drafts {
		description := strings.TrimSpace(draft.Description)
		quantity := ParseAmount(draft.Quantity)
		if description == "" || quantity <= 0 {
			continue
		}
		items = append(items, SubmissionItem{
			Description: description,
			Quantity:    quantity,
			UnitPrice:   ParseAmount(draft.UnitPrice),
		})
	}
	return items
}

// SanitizeNumeric strips everything but digits and the first decimal
// separator from text input. Callers apply it before Update on quantity and
// unit price fields.
func SanitizeNumeric(s string) string {
	var b strings.Builder
	seenDot := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case (r == '.' || r == ',') && !seenDot:
			b.WriteByte('.')
			seenDot = true
		}
	}
	return b.String()
}
