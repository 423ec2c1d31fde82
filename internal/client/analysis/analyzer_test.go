package analysis

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"emojournal/internal/client/models"
	"emojournal/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestAnalyzeText_NoBackendUsesHeuristic(t *testing.T) {
	a := New("", nil, testLogger())

	got := a.AnalyzeText(context.Background(), "offline entry")
	assert.Equal(t, TextHeuristic("offline entry"), got)
}

func TestAnalyzeText_RemoteResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/machine_learning/analyze/text/", r.URL.Path)
		_, _ = w.Write([]byte(`{"emotion": {"joy": 0.9, "sadness": 0.05}, "sentiment": 0.8}`))
	}))
	defer srv.Close()

	a := New(srv.URL, srv.Client(), testLogger())
	got := a.AnalyzeText(context.Background(), "a fine day")

	assert.Equal(t, models.EmotionScores{"joy": 0.9, "sadness": 0.05}, got.Emotion)
	assert.InDelta(t, 0.8, got.Sentiment, 1e-9)
}

func TestAnalyzeText_MalformedResponseFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// sentiment missing: response counts as malformed
		_, _ = w.Write([]byte(`{"emotion": {"joy": 0.9}}`))
	}))
	defer srv.Close()

	a := New(srv.URL, srv.Client(), testLogger())
	got := a.AnalyzeText(context.Background(), "text")

	assert.Equal(t, TextHeuristic("text"), got)
}

func TestAnalyzeText_ServerErrorFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := New(srv.URL, srv.Client(), testLogger())
	got := a.AnalyzeText(context.Background(), "text")

	assert.Equal(t, TextHeuristic("text"), got)
}

func TestAnalyzeAudio_CombinedPrefersRawScores(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/machine_learning/analyze/combined/", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, _, err := r.FormFile("audio")
		require.NoError(t, err)

		_, _ = w.Write([]byte(`{
			"speech": {
				"emotion": {"happy": 0.7},
				"sentiment": 0.4,
				"raw": {"scores": {"happy": 0.7, "calm": 0.2, "angry": 0.05}}
			}
		}`))
	}))
	defer srv.Close()

	a := New(srv.URL, srv.Client(), testLogger())
	got := a.AnalyzeAudio(context.Background(), []byte{0x01})

	// raw speech scores carry the extended label set
	assert.Equal(t, models.EmotionScores{"happy": 0.7, "calm": 0.2, "angry": 0.05}, got.Emotion)
	assert.InDelta(t, 0.4, got.Sentiment, 1e-9)
}

func TestAnalyzeAudio_CombinedFailsSpeechOnlySucceeds(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/machine_learning/analyze/combined/":
			w.WriteHeader(http.StatusInternalServerError)
		case "/machine_learning/analyze/speech/":
			_, _ = w.Write([]byte(`{"emotion": {"calm": 0.6}, "sentiment": 0.1}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	a := New(srv.URL, srv.Client(), testLogger())
	got := a.AnalyzeAudio(context.Background(), []byte{0x01})

	assert.Equal(t, models.EmotionScores{"calm": 0.6}, got.Emotion)
	assert.InDelta(t, 0.1, got.Sentiment, 1e-9)
}

func TestAnalyzeAudio_AllRemotesFailFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	audio := []byte{0x01, 0x02, 0x03}
	a := New(srv.URL, srv.Client(), testLogger())
	got := a.AnalyzeAudio(context.Background(), audio)

	assert.Equal(t, AudioHeuristic(len(audio)), got)
}

func TestAnalyzeAudio_NoBackendUsesHeuristic(t *testing.T) {
	audio := make([]byte, 2048)
	a := New("", nil, testLogger())

	got := a.AnalyzeAudio(context.Background(), audio)
	assert.Equal(t, AudioHeuristic(len(audio)), got)
}
