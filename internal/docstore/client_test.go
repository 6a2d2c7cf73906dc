package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/revenland/revenland/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDocs = `{"total":2,"documents":[
  {"$id":"p1","name":"Leadership","date":"2025-03-04","day":"Tuesday","liked":1},
  {"$id":"p2","name":"Interviews","date":"2025-04-10","day":"Thursday","liked":null}
]}`

func TestListDocuments(t *testing.T) {
	var gotPath, gotProject string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotProject = r.Header.Get("X-Appwrite-Project")
		assert.Equal(t, http.MethodGet, r.Method)
		w.Write([]byte(testDocs))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/v1/", "proj", nil)
	docs, err := c.List(context.Background(), "db", "213")
	require.NoError(t, err)

	assert.Equal(t, "/v1/databases/db/collections/213/documents", gotPath)
	assert.Equal(t, "proj", gotProject)
	require.Len(t, docs, 2)
	assert.Equal(t, "p1", docs[0].ID())
	assert.Equal(t, "Leadership", docs[0].String("name"))
	assert.Equal(t, 1, docs[0].Int("liked"))
	assert.Equal(t, 0, docs[1].Int("liked"))
	assert.Equal(t, 0, docs[1].Int("missing"))
}

func TestCreateGeneratesID(t *testing.T) {
	var got createRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &got))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"$id":"` + got.DocumentID + `","name":"Jo","email":"jo@example.com"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "proj", nil, WithIDGenerator(func() string { return "generated-1" }))
	doc, err := c.Create(context.Background(), "db", "564", AutoID, map[string]any{
		"name":  "Jo",
		"email": "jo@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "generated-1", got.DocumentID)
	assert.Equal(t, map[string]any{"name": "Jo", "email": "jo@example.com"}, got.Data)
	assert.Equal(t, "generated-1", doc.ID())
}

func TestCreateDefaultIDIsUUID(t *testing.T) {
	var got createRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &got)
		w.Write([]byte(`{"$id":"x"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "proj", nil).Create(context.Background(), "db", "564", AutoID, nil)
	require.NoError(t, err)
	assert.Len(t, got.DocumentID, 36)
}

func TestUpdateSendsPartialFields(t *testing.T) {
	var gotPath string
	var got updateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &got))
		w.Write([]byte(`{"$id":"p1","liked":1}`))
	}))
	defer srv.Close()

	doc, err := NewClient(srv.URL, "proj", nil).Update(context.Background(), "db", "213", "p1", map[string]any{"liked": 1})
	require.NoError(t, err)

	assert.Equal(t, "/databases/db/collections/213/documents/p1", gotPath)
	assert.Equal(t, map[string]any{"liked": float64(1)}, got.Data)
	assert.Equal(t, 1, doc.Int("liked"))
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"unauthorized", http.StatusUnauthorized, domain.ErrAuthFailed},
		{"not found", http.StatusNotFound, domain.ErrNotFound},
		{"bad request", http.StatusBadRequest, domain.ErrRequestRejected},
		{"server error", http.StatusInternalServerError, domain.ErrRequestRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				w.WriteHeader(tt.status)
				w.Write([]byte(`{"message":"Document is invalid","code":400,"type":"document_invalid_structure"}`))
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL, "proj", nil).List(context.Background(), "db", "213")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, domain.ErrRequestRejected)

			var reqErr *RequestError
			require.True(t, errors.As(err, &reqErr))
			assert.Equal(t, tt.status, reqErr.Status)
			assert.Equal(t, "document_invalid_structure", reqErr.Type)
			assert.Equal(t, 1, calls, "failed requests are not retried")
		})
	}
}

func TestServerOffline(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, "proj", nil).List(context.Background(), "db", "213")
	assert.ErrorIs(t, err, domain.ErrServerOffline)
}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health/version" {
			w.Write([]byte(`{"version":"1.6.0"}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	version, err := NewClient(srv.URL, "", nil).Ping(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.6.0", version)
}

func TestPingRejectsOtherServers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>hello</html>`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "", nil).Ping(context.Background())
	assert.Error(t, err)
}
