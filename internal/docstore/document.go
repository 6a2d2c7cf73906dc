package docstore

import (
	"encoding/json"
	"math"
	"strconv"
)

// Document is a single record in the store: its attributes plus the
// store-managed $-prefixed fields ($id, $createdAt, ...).
type Document map[string]any

// ID returns the store-assigned document identifier
func (d Document) ID() string {
	return d.String("$id")
}

// String returns a text attribute, or "" when missing or not text
func (d Document) String(key string) string {
	if v, ok := d[key].(string); ok {
		return v
	}
	return ""
}

// Int returns an integer attribute. Missing, null or non-numeric values are 0.
func (d Document) Int(key string) int {
	switch v := d[key].(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return int(i)
		}
		if f, err := v.Float64(); err == nil {
			return int(math.Trunc(f))
		}
	case float64:
		return int(math.Trunc(v))
	case int:
		return v
	case int64:
		return int(v)
	case bool:
		if v {
			return 1
		}
	case string:
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return 0
}

// listResponse is the body of a list-documents call
type listResponse struct {
	Total     int        `json:"total"`
	Documents []Document `json:"documents"`
}

// createRequest is the body of a create-document call
type createRequest struct {
	DocumentID string         `json:"documentId"`
	Data       map[string]any `json:"data"`
}

// updateRequest is the body of an update-document call
type updateRequest struct {
	Data map[string]any `json:"data"`
}

// errorResponse is the error body the store returns with non-2xx statuses
type errorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
	Type    string `json:"type"`
}

// healthVersion is the body of /health/version
type healthVersion struct {
	Version string `json:"version"`
}
