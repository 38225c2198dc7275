// Package envelope normalizes the wire shapes produced by the legacy
// business-management API. List and detail payloads may be wrapped under
// "data" (sometimes doubly nested), pagination metadata may live under
// "pagination" or "meta" with varying field names, and created-entity
// identifiers may be "_id" or "id". All of that defensiveness is isolated
// here so consumers see one canonical form.
package envelope

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Document is a decoded legacy response.
type Document struct {
	root map[string]interface{}
}

// Parse decodes a legacy JSON document. Only malformed JSON or a non-object
// root is an error; missing payloads degrade to empty values on access.
func Parse(data []byte) (*Document, error) {
	var root map[string]interface{}
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("invalid legacy document: %w", err)
	}
	return &Document{root: root}, nil
}

// object returns m[key] as an object, or nil.
func object(m map[string]interface{}, key string) map[string]interface{} {
	if m == nil {
		return nil
	}
	child, _ := m[key].(map[string]interface{})
	return child
}

// list returns m[key] as a slice of objects, or nil.
func list(m map[string]interface{}, key string) []map[string]interface{} {
	if m == nil {
		return nil
	}
	raw, ok := m[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]map[string]interface{}, 0, len(raw))
	for _, el := range raw {
		if obj, ok := el.(map[string]interface{}); ok {
			out = append(out, obj)
		}
	}
	return out
}

// Records extracts the record list for an entity, probing data.data.<plural>,
// data.<plural> and <plural> in that order. Absence yields an empty list.
func (d *Document) Records(plural string) []map[string]interface{} {
	data := object(d.root, "data")
	if records := list(object(data, "data"), plural); records != nil {
		return records
	}
	if records := list(data, plural); records != nil {
		return records
	}
	if records := list(d.root, plural); records != nil {
		return records
	}
	return []map[string]interface{}{}
}

// Entity extracts a single created/fetched entity object, probing
// data.<name> and <name>. Absence yields nil.
func (d *Document) Entity(name string) map[string]interface{} {
	if obj := object(object(d.root, "data"), name); obj != nil {
		return obj
	}
	return object(d.root, name)
}

// RecordID extracts the identifier of a record, accepting "_id" and "id"
// holding either a string or a number. The second return reports whether
// any identifier was found; callers without one fall back to list
// navigation.
func RecordID(record map[string]interface{}) (string, bool) {
	for _, key := range []string{"_id", "id"} {
		switch v := record[key].(type) {
		case string:
			if v != "" {
				return v, true
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64), true
		}
	}
	return "", false
}

// String returns a trimmed string field from a record, or "".
func String(record map[string]interface{}, key string) string {
	v, _ := record[key].(string)
	return strings.TrimSpace(v)
}

// Number returns a numeric field from a record. String-encoded numbers are
// tolerated; anything else yields 0.
func Number(record map[string]interface{}, key string) float64 {
	switch v := record[key].(type) {
	case float64:
		return v
	case string:
		var f float64
		if _, err := fmt.Sscanf(strings.TrimSpace(v), "%g", &f); err == nil {
			return f
		}
	}
	return 0
}

// Meta is normalized pagination metadata.
type Meta struct {
	Page       int
	TotalPages int
	Total      int64
}

// Pagination extracts pagination metadata, probing "pagination" then
// "meta". The total may appear as total, totalDocs or total<Entity>
// (e.g. totalClients); when totalPages is absent it is derived as
// ceil(total/pageSize).
func (d *Document) Pagination(entity string, pageSize int) Meta {
	meta := object(d.root, "pagination")
	if meta == nil {
		meta = object(d.root, "meta")
	}

	m := Meta{Page: 1}
	if meta == nil {
		return m
	}

	if page := int(Number(meta, "page")); page > 0 {
		m.Page = page
	}

	total := Number(meta, "total")
	if total == 0 {
		total = Number(meta, "totalDocs")
	}
	if total == 0 && entity != "" {
		key := "total" + strings.ToUpper(entity[:1]) + entity[1:]
		total = Number(meta, key)
	}
	m.Total = int64(total)

	if pages := int(Number(meta, "totalPages")); pages > 0 {
		m.TotalPages = pages
	} else if pageSize > 0 {
		m.TotalPages = int(math.Ceil(total / float64(pageSize)))
	}

	return m
}

// ErrorMessage extracts the best human-readable message from a failed
// legacy call: a server-provided message field first, then the transport
// error text, then the static fallback.
func ErrorMessage(body []byte, err error, fallback string) string {
	if len(body) > 0 {
		if doc, perr := Parse(body); perr == nil {
			if msg := String(doc.root, "message"); msg != "" {
				return msg
			}
			if msg := String(object(doc.root, "data"), "message"); msg != "" {
				return msg
			}
		}
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return fallback
}
