// Package spotify adapts the Spotify Web API to the AlbumCatalog port.
package spotify

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/stridelabs/albumwalk/internal/core/ports"
)

const (
	defaultBaseURL = "https://api.spotify.com/v1"
	tokenURL       = "https://accounts.spotify.com/api/token"
)

// Client is an HTTP client for the Spotify catalog adapter.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	maxRetries  int
	baseBackoff time.Duration
	log         *zap.Logger
}

// compile-time interface assertion
var _ ports.AlbumCatalog = (*Client)(nil)

// NewClient constructs a catalog client. httpClient should already
// carry authorization (see NewAuthenticatedHTTPClient); nil falls back
// to http.DefaultClient. An empty baseURL targets the real API.
func NewClient(httpClient *http.Client, baseURL string, log *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		log:        log,
	}
}

// NewAuthenticatedHTTPClient returns an *http.Client that obtains and
// refreshes an app token via the client-credentials flow. Tokens are
// fetched lazily on first use.
func NewAuthenticatedHTTPClient(ctx context.Context, clientID, clientSecret string) *http.Client {
	conf := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     tokenURL,
	}
	return conf.Client(ctx)
}
