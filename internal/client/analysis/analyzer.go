// Package analysis produces approximate emotion/sentiment feedback for a
// journal entry. The remote models are preferred; any transport failure or
// malformed response silently degrades to a deterministic local heuristic,
// so analysis never fails the caller.
package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"emojournal/internal/client/models"
	"emojournal/internal/logging"
	"emojournal/internal/metrics"
)

// Analyzer calls {base}/machine_learning/analyze/... endpoints.
type Analyzer struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

// New constructs an Analyzer. httpClient should carry the refresh
// transport: the analysis endpoints require authentication.
func New(baseURL string, httpClient *http.Client, log logging.Logger) *Analyzer {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Analyzer{baseURL: baseURL, http: httpClient, log: log}
}

// AnalyzeText scores the given text. Falls back to the local heuristic
// when no backend is configured or the remote call fails.
func (a *Analyzer) AnalyzeText(ctx context.Context, text string) models.AnalysisResult {
	if a.baseURL != "" {
		res, err := a.remoteText(ctx, text)
		if err == nil {
			return res
		}
		a.log.Warn(ctx, "text analysis API failed, falling back to local", "error", err)
	}
	metrics.AnalysisFallbackTotal.WithLabelValues("text").Inc()
	return TextHeuristic(text)
}

// AnalyzeAudio scores a recorded payload. The combined endpoint is tried
// first (it exposes the full speech label set), then the speech-only
// endpoint, then the local heuristic.
func (a *Analyzer) AnalyzeAudio(ctx context.Context, audio []byte) models.AnalysisResult {
	if a.baseURL != "" {
		res, err := a.remoteCombined(ctx, audio)
		if err != nil {
			a.log.Warn(ctx, "combined analysis API failed, trying speech-only", "error", err)
			res, err = a.remoteSpeech(ctx, audio)
		}
		if err == nil {
			return res
		}
		a.log.Warn(ctx, "audio analysis API failed, falling back to local", "error", err)
	}
	metrics.AnalysisFallbackTotal.WithLabelValues("audio").Inc()
	return AudioHeuristic(len(audio))
}

// analysisPayload is the {emotion, sentiment} shape shared by the text and
// speech-only endpoints. Decoding into float64 maps doubles as validation:
// non-numeric scores count as a malformed response.
type analysisPayload struct {
	Emotion   models.EmotionScores `json:"emotion"`
	Sentiment *float64             `json:"sentiment"`
}

func (p analysisPayload) result() (models.AnalysisResult, error) {
	if p.Emotion == nil || p.Sentiment == nil {
		return models.AnalysisResult{}, fmt.Errorf("malformed analysis response")
	}
	return models.AnalysisResult{Emotion: p.Emotion, Sentiment: *p.Sentiment}, nil
}

func (a *Analyzer) remoteText(ctx context.Context, text string) (models.AnalysisResult, error) {
	body, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return models.AnalysisResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		a.baseURL+"/machine_learning/analyze/text/", bytes.NewReader(body))
	if err != nil {
		return models.AnalysisResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	var p analysisPayload
	if err := a.do(req, &p); err != nil {
		return models.AnalysisResult{}, err
	}
	return p.result()
}

func (a *Analyzer) remoteSpeech(ctx context.Context, audio []byte) (models.AnalysisResult, error) {
	req, err := a.audioRequest(ctx, "/machine_learning/analyze/speech/", audio)
	if err != nil {
		return models.AnalysisResult{}, err
	}

	var p analysisPayload
	if err := a.do(req, &p); err != nil {
		return models.AnalysisResult{}, err
	}
	return p.result()
}

func (a *Analyzer) remoteCombined(ctx context.Context, audio []byte) (models.AnalysisResult, error) {
	req, err := a.audioRequest(ctx, "/machine_learning/analyze/combined/", audio)
	if err != nil {
		return models.AnalysisResult{}, err
	}

	var wire struct {
		Speech *struct {
			analysisPayload
			Raw struct {
				Scores models.EmotionScores `json:"scores"`
			} `json:"raw"`
		} `json:"speech"`
	}
	if err := a.do(req, &wire); err != nil {
		return models.AnalysisResult{}, err
	}
	if wire.Speech == nil {
		return models.AnalysisResult{}, fmt.Errorf("malformed combined response: no speech block")
	}

	res, err := wire.Speech.result()
	if err != nil {
		return models.AnalysisResult{}, err
	}
	// The raw speech scores carry the extended label set; prefer them.
	if len(wire.Speech.Raw.Scores) > 0 {
		res.Emotion = wire.Speech.Raw.Scores
	}
	return res, nil
}

func (a *Analyzer) audioRequest(ctx context.Context, path string, audio []byte) (*http.Request, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("audio", "journal-audio.webm")
	if err != nil {
		return nil, err
	}
	if _, err := fw.Write(audio); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+path, bytes.NewReader(buf.Bytes()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req, nil
}

func (a *Analyzer) do(req *http.Request, out any) error {
	resp, err := a.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<10))
		return fmt.Errorf("status %d: %s", resp.StatusCode, bytes.TrimSpace(b))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
