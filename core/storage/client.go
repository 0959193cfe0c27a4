package storage

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode"
)

// defaultTimeout bounds connection setup, TLS handshake and first response byte.
const defaultTimeout = 30 * time.Second

// ListPage is a single page of a prefix listing.
type ListPage struct {
	// Keys holds the object keys returned in this page.
	Keys []string
	// IsTruncated reports whether more pages follow.
	IsTruncated bool
	// NextContinuationToken is passed back to fetch the next page.
	NextContinuationToken string
}

// Client defines the interface for storage operations.
//
// Implementations are safe for concurrent use; a single Client is shared by
// every request handler.
type Client interface {
	// BucketExists checks if a bucket exists.
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	// ListObjectsV2 fetches one page of the objects whose key starts with prefix.
	// An empty continuationToken requests the first page.
	ListObjectsV2(ctx context.Context, bucketName, prefix, continuationToken string) (ListPage, error)
}

// NewClient builds the client for the configured driver.
//
// Malformed key material fails with ErrInvalidCredentials, an unusable
// region or endpoint with ErrConnection.
func NewClient(ctx context.Context, cfg Config) (Client, error) {
	if err := validateCredentials(cfg.Credentials); err != nil {
		return nil, err
	}

	endpoint, err := parseEndpoint(cfg.Region.Endpoint)
	if err != nil {
		return nil, connectionError(err)
	}
	if strings.TrimSpace(cfg.Region.Region) == "" {
		return nil, connectionError(fmt.Errorf("region identifier is empty"))
	}

	switch cfg.DriverName() {
	case DriverMinio:
		return newMinioClient(cfg, endpoint)
	case DriverS3:
		return newS3Client(ctx, cfg, endpoint)
	default:
		return nil, connectionError(fmt.Errorf("unknown storage driver %q", cfg.Driver))
	}
}

func validateCredentials(c Credentials) error {
	if c.AccessKey == "" {
		return invalidCredentials("access key is empty")
	}
	if c.SecretKey == "" {
		return invalidCredentials("secret key is empty")
	}
	if strings.IndexFunc(c.AccessKey, notKeyRune) >= 0 {
		return invalidCredentials("access key contains whitespace or control characters")
	}
	if strings.IndexFunc(c.SecretKey, notKeyRune) >= 0 {
		return invalidCredentials("secret key contains whitespace or control characters")
	}
	return nil
}

func notKeyRune(r rune) bool {
	return r > unicode.MaxASCII || !unicode.IsPrint(r) || unicode.IsSpace(r)
}

// parseEndpoint accepts a full URL (https://host[:port]) or a bare host[:port],
// which is treated as https.
func parseEndpoint(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("endpoint is empty")
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported endpoint scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("endpoint %q has no host", raw)
	}
	if u.Path != "" && u.Path != "/" {
		return nil, fmt.Errorf("endpoint %q must not contain a path", raw)
	}
	return u, nil
}

// newTransport creates a transport with strict timeouts.
func newTransport() *http.Transport {
	tr := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   defaultTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2: true,
		MaxIdleConns:      100,
	}
	strictTimeouts(tr)
	return tr
}

// strictTimeouts bounds every phase of a request up to the first response byte.
func strictTimeouts(tr *http.Transport) {
	tr.IdleConnTimeout = 90 * time.Second
	tr.TLSHandshakeTimeout = defaultTimeout
	tr.ExpectContinueTimeout = 1 * time.Second
	tr.ResponseHeaderTimeout = defaultTimeout
}
