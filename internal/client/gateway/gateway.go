// Package gateway talks to the remote journal backend: it maps between the
// wire representation and the local models, and wraps every call in the
// token-refresh protocol.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"emojournal/internal/client/models"
	"emojournal/internal/common"
	"emojournal/internal/metrics"
)

// audioFileName is the filename sent for recorded audio payloads.
const audioFileName = "journal-audio.webm"

// Gateway performs journal entry CRUD against {base}/journal/entries/.
//
// An empty base URL puts the client in local-only mode: FetchAll returns
// nothing, Create/Update return their input unchanged and Delete is a
// no-op, so the caller's store remains the sole source of truth.
type Gateway struct {
	baseURL string
	http    *http.Client
}

// New constructs a Gateway. httpClient is expected to carry a *Transport
// so the refresh protocol applies uniformly to every call.
func New(baseURL string, httpClient *http.Client) *Gateway {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Gateway{baseURL: baseURL, http: httpClient}
}

// Remote reports whether a backend is configured.
func (g *Gateway) Remote() bool { return g.baseURL != "" }

func (g *Gateway) entriesURL() string {
	return g.baseURL + "/journal/entries/"
}

func (g *Gateway) entryURL(id int64) string {
	return fmt.Sprintf("%s/journal/entries/%d/", g.baseURL, id)
}

// FetchAll lists all remote entries, mapped to the local representation.
func (g *Gateway) FetchAll(ctx context.Context) ([]models.JournalEntry, error) {
	if !g.Remote() {
		return nil, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.entriesURL(), nil)
	if err != nil {
		return nil, err
	}

	var wires []wireEntry
	if err := g.do("fetch_all", req, &wires); err != nil {
		return nil, err
	}

	entries := make([]models.JournalEntry, 0, len(wires))
	for _, w := range wires {
		entries = append(entries, mapWireEntry(w))
	}
	return entries, nil
}

// Create persists a new entry remotely. When audio is present the request
// is multipart (title, text, audio_file); otherwise it is plain JSON.
// Returns the mapped, server-assigned entry.
func (g *Gateway) Create(ctx context.Context, entry models.JournalEntry, audio []byte) (models.JournalEntry, error) {
	if !g.Remote() {
		return entry, nil
	}
	return g.write(ctx, "create", http.MethodPost, g.entriesURL(), entry, audio)
}

// Update issues a full replace of the entry's remote resource. An entry
// whose id is not a server-assigned numeric id has never been persisted
// remotely, so Update transparently falls back to Create.
func (g *Gateway) Update(ctx context.Context, entry models.JournalEntry, audio []byte) (models.JournalEntry, error) {
	if !g.Remote() {
		return entry, nil
	}
	id, ok := serverID(entry.Id)
	if !ok {
		return g.Create(ctx, entry, audio)
	}
	return g.write(ctx, "update", http.MethodPut, g.entryURL(id), entry, audio)
}

// Delete removes the remote resource. Ids that were never persisted
// remotely (non-numeric) and local-only mode are both no-ops.
func (g *Gateway) Delete(ctx context.Context, id string) error {
	if !g.Remote() {
		return nil
	}
	n, ok := serverID(id)
	if !ok {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, g.entryURL(n), nil)
	if err != nil {
		return err
	}
	return g.do("delete", req, nil)
}

func (g *Gateway) write(ctx context.Context, op, method, url string, entry models.JournalEntry, audio []byte) (models.JournalEntry, error) {
	var (
		body        []byte
		contentType string
		err         error
	)
	if len(audio) > 0 {
		body, contentType, err = multipartBody(entry.Title, entry.Content, audio)
	} else {
		body, err = json.Marshal(map[string]string{"title": entry.Title, "text": entry.Content})
		contentType = "application/json"
	}
	if err != nil {
		return models.JournalEntry{}, fmt.Errorf("error building %s request: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return models.JournalEntry{}, err
	}
	req.Header.Set("Content-Type", contentType)

	var w wireEntry
	if err := g.do(op, req, &w); err != nil {
		return models.JournalEntry{}, err
	}
	return mapWireEntry(w), nil
}

// do sends the request, maps failures to sentinels, and decodes the
// response into out when it is non-nil.
func (g *Gateway) do(op string, req *http.Request, out any) error {
	resp, err := g.http.Do(req)
	if err != nil {
		metrics.GatewayRequestsTotal.WithLabelValues(op, "error").Inc()
		return mapTransportError(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.GatewayRequestsTotal.WithLabelValues(op, "error").Inc()
		return statusError(op, resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			metrics.GatewayRequestsTotal.WithLabelValues(op, "error").Inc()
			return fmt.Errorf("error decoding %s response: %w", op, err)
		}
	} else {
		_, _ = io.Copy(io.Discard, resp.Body)
	}

	metrics.GatewayRequestsTotal.WithLabelValues(op, "ok").Inc()
	return nil
}

func multipartBody(title, text string, audio []byte) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("title", title); err != nil {
		return nil, "", err
	}
	if err := w.WriteField("text", text); err != nil {
		return nil, "", err
	}
	fw, err := w.CreateFormFile("audio_file", audioFileName)
	if err != nil {
		return nil, "", err
	}
	if _, err := fw.Write(audio); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

func statusError(op string, resp *http.Response) error {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%s: %w: %s", op, common.ErrUnauthorized, bytes.TrimSpace(b))
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return fmt.Errorf("%s: %w", op, common.ErrUnavailable)
	default:
		return fmt.Errorf("%s: unexpected status %d: %s", op, resp.StatusCode, bytes.TrimSpace(b))
	}
}

// mapTransportError keeps sentinel errors produced inside the refresh
// transport visible through the url.Error wrapping added by http.Client.
func mapTransportError(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
