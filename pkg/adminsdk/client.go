package adminsdk

import (
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the admin service. It provides transport for
// Sessions; all admin operations require an access token.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client

	// Locale is sent as the Accept-Language header so the service localizes
	// its messages. Empty means the service default.
	Locale string
}

// NewSDKClient creates a new admin service client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewSession wraps an access token issued by the auth service. The token is
// used as-is; refreshing it is the caller's concern.
func (c *SDKClient) NewSession(accessToken string) *Session {
	return &Session{
		client:      c,
		accessToken: accessToken,
	}
}
