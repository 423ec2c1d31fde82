package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"emojournal/internal/client/models"
	"emojournal/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalOnlyMode_AllCallsAreNoops(t *testing.T) {
	ctx := context.Background()
	g := New("", nil)

	assert.False(t, g.Remote())

	entries, err := g.FetchAll(ctx)
	require.NoError(t, err)
	assert.Nil(t, entries)

	in := models.JournalEntry{Id: "local-1", Title: "draft"}
	out, err := g.Create(ctx, in, nil)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	out, err = g.Update(ctx, in, nil)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	require.NoError(t, g.Delete(ctx, "local-1"))
}

func TestFetchAll_MapsWireEntries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/journal/entries/", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"id": 2, "title": "b", "text": "second", "created_at": "2026-08-02T00:00:00Z"},
			{"id": 1, "title": "a", "text": "first", "created_at": "2026-08-01T00:00:00Z"}
		]`))
	}))
	defer srv.Close()

	g := New(srv.URL, srv.Client())
	entries, err := g.FetchAll(context.Background())
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, "2", entries[0].Id)
	assert.Equal(t, "b", entries[0].Title)
	assert.Equal(t, "1", entries[1].Id)
}

func TestCreate_JSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/journal/entries/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"title": "hello", "text": "world"}, body)

		_, _ = w.Write([]byte(`{"id": 10, "title": "hello", "text": "world", "created_at": "2026-08-01T00:00:00Z"}`))
	}))
	defer srv.Close()

	g := New(srv.URL, srv.Client())
	saved, err := g.Create(context.Background(), models.JournalEntry{
		Id: "b3c1d0b4-uuid", Title: "hello", Content: "world",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "10", saved.Id)
	assert.Equal(t, "hello", saved.Title)
}

func TestCreate_MultipartWithAudio(t *testing.T) {
	audio := []byte{0x1a, 0x45, 0xdf, 0xa3}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "recorded", r.FormValue("title"))
		assert.Equal(t, "notes", r.FormValue("text"))

		f, hdr, err := r.FormFile("audio_file")
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, "journal-audio.webm", hdr.Filename)

		_, _ = w.Write([]byte(`{"id": 11, "title": "recorded", "audio_file": "/media/11.webm"}`))
	}))
	defer srv.Close()

	g := New(srv.URL, srv.Client())
	saved, err := g.Create(context.Background(), models.JournalEntry{
		Title: "recorded", Content: "notes",
	}, audio)
	require.NoError(t, err)

	assert.Equal(t, "11", saved.Id)
	assert.Equal(t, models.ModeVoice, saved.Mode)
	assert.Equal(t, "/media/11.webm", saved.AudioURL)
}

func TestUpdate_NumericIdIssuesPut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/journal/entries/5/", r.URL.Path)
		_, _ = w.Write([]byte(`{"id": 5, "title": "edited"}`))
	}))
	defer srv.Close()

	g := New(srv.URL, srv.Client())
	saved, err := g.Update(context.Background(), models.JournalEntry{Id: "5", Title: "edited"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "5", saved.Id)
}

func TestUpdate_DraftIdFallsBackToCreate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// never-persisted entries go through a create
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/journal/entries/", r.URL.Path)
		_, _ = w.Write([]byte(`{"id": 12, "title": "draft"}`))
	}))
	defer srv.Close()

	g := New(srv.URL, srv.Client())
	saved, err := g.Update(context.Background(), models.JournalEntry{
		Id: "2fbf4b0c-0000-0000-0000-000000000000", Title: "draft",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "12", saved.Id)
}

func TestDelete_NumericId(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/journal/entries/9/", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	g := New(srv.URL, srv.Client())
	require.NoError(t, g.Delete(context.Background(), "9"))
	assert.True(t, called)
}

func TestDelete_DraftIdIsNoop(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for a never-persisted id")
	}))
	defer srv.Close()

	g := New(srv.URL, srv.Client())
	require.NoError(t, g.Delete(context.Background(), "2fbf4b0c-0000-0000-0000-000000000000"))
}

func TestStatusErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"unauthorized", http.StatusUnauthorized, common.ErrUnauthorized},
		{"forbidden", http.StatusForbidden, common.ErrUnauthorized},
		{"bad gateway", http.StatusBadGateway, common.ErrUnavailable},
		{"unavailable", http.StatusServiceUnavailable, common.ErrUnavailable},
		{"gateway timeout", http.StatusGatewayTimeout, common.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			g := New(srv.URL, srv.Client())
			_, err := g.FetchAll(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
