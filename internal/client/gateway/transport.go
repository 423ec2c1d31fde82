package gateway

import (
	"context"
	"fmt"
	"net/http"

	"emojournal/internal/common"
	"emojournal/internal/metrics"

	"golang.org/x/sync/singleflight"
)

// Session is the slice of the credential store the transport needs.
type Session interface {
	AccessToken() string
	RefreshToken() string
	SetTokens(ctx context.Context, access, refresh string) error
	Clear(ctx context.Context) error
}

// RefreshFunc exchanges a refresh token for a new access token (and
// possibly a new refresh token).
type RefreshFunc func(ctx context.Context, refreshToken string) (access, refresh string, err error)

// Transport injects the bearer token into every request and recovers from
// authentication expiry: a 401 response triggers exactly one refresh
// exchange, after which the original request is retried once with the new
// token. Concurrent 401s share a single in-flight exchange.
//
// A failed exchange (or a missing refresh token) purges the whole session
// and surfaces common.ErrSessionExpired; the retry is abandoned.
type Transport struct {
	base    http.RoundTripper
	session Session
	refresh RefreshFunc

	sf singleflight.Group
}

// NewTransport wraps base (http.DefaultTransport when nil).
func NewTransport(base http.RoundTripper, session Session, refresh RefreshFunc) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{base: base, session: session, refresh: refresh}
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.send(req, t.session.AccessToken())
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}
	resp.Body.Close()

	access, err := t.refreshOnce(req.Context())
	if err != nil {
		return nil, err
	}
	return t.send(req, access)
}

// send issues a clone of req carrying the given token. The body is rewound
// through GetBody so the same request can be sent twice.
func (t *Transport) send(req *http.Request, token string) (*http.Response, error) {
	clone := req.Clone(req.Context())
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, fmt.Errorf("error rewinding request body: %w", err)
		}
		clone.Body = body
	}
	if token != "" {
		clone.Header.Set("Authorization", "Bearer "+token)
	}
	return t.base.RoundTrip(clone)
}

// refreshOnce performs the refresh exchange, coalescing concurrent callers
// into one flight. On success the new tokens are persisted and the access
// token returned; on failure the session is purged.
func (t *Transport) refreshOnce(ctx context.Context) (string, error) {
	v, err, _ := t.sf.Do("refresh", func() (any, error) {
		rt := t.session.RefreshToken()
		if rt == "" {
			_ = t.session.Clear(ctx)
			metrics.TokenRefreshTotal.WithLabelValues("error").Inc()
			return nil, fmt.Errorf("%w: %w", common.ErrSessionExpired, common.ErrNoRefreshToken)
		}

		access, refresh, err := t.refresh(ctx, rt)
		if err != nil {
			_ = t.session.Clear(ctx)
			metrics.TokenRefreshTotal.WithLabelValues("error").Inc()
			return nil, fmt.Errorf("%w: %w", common.ErrSessionExpired, err)
		}

		if err := t.session.SetTokens(ctx, access, refresh); err != nil {
			return nil, fmt.Errorf("error saving refreshed tokens: %w", err)
		}
		metrics.TokenRefreshTotal.WithLabelValues("ok").Inc()
		return access, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}
