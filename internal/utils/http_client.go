package utils

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a resty client preconfigured with a base URL and timeout.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient builds an HTTPClient on top of hc. A nil hc uses a fresh
// http.Client; a non-positive timeout leaves resty's default (none).
func NewHTTPClient(baseURL string, timeout time.Duration, hc *http.Client) *HTTPClient {
	var cli *resty.Client
	if hc != nil {
		cli = resty.NewWithClient(hc)
	} else {
		cli = resty.New()
	}

	if baseURL != "" {
		cli.SetBaseURL(strings.TrimRight(baseURL, "/"))
	}
	if timeout > 0 {
		cli.SetTimeout(timeout)
	}

	return &HTTPClient{Client: cli}
}
