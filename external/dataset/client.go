// Package dataset downloads remote CSV snapshots to local disk.
package dataset

import (
	"context"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/draft-prospects/internal/platform/logging"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type ClientConfig struct {
	HTTPClient *http.Client
	Logger     *logging.Logger
}

type Client struct {
	httpClient *http.Client
	logger     *logging.Logger
}

// NewClient builds a client without a request timeout; the caller's context
// is the only bound on a download.
func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if httpClient.Transport == nil {
		httpClient.Transport = otelhttp.NewTransport(http.DefaultTransport)
	}

	return &Client{
		httpClient: httpClient,
		logger:     logger,
	}
}

// Download fetches sourceURL once and writes the body verbatim to
// directory/fileName, creating directory if needed and overwriting any
// existing file. It returns fileName.
//
// The response status is not checked: a non-2xx body is written like any
// other and only logged.
func (c *Client) Download(ctx context.Context, sourceURL, fileName, directory string) (string, error) {
	if err := validateSourceURL(sourceURL); err != nil {
		return "", crerr.Wrap(err, "invalid source url")
	}
	if strings.TrimSpace(fileName) == "" {
		return "", crerr.New("file name is required")
	}

	if err := os.MkdirAll(directory, 0o755); err != nil {
		return "", crerr.Wrapf(err, "create download directory %s", directory)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return "", crerr.Wrap(err, "create dataset request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", crerr.Wrapf(err, "fetch dataset url=%s", sourceURL)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode/100 != 2 {
		c.logger.WarnContext(ctx, "dataset responded with non-success status", "url", sourceURL, "status", resp.StatusCode)
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return "", crerr.Wrapf(err, "read dataset body url=%s", sourceURL)
	}

	target := filepath.Join(directory, fileName)
	if err := os.WriteFile(target, buf.B, 0o644); err != nil {
		return "", crerr.Wrapf(err, "write dataset file %s", target)
	}

	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.SetAttributes(
			attribute.String("dataset.url", sourceURL),
			attribute.String("dataset.file", target),
			attribute.Int("dataset.bytes", buf.Len()),
		)
	}
	c.logger.InfoContext(ctx, "dataset downloaded", "url", sourceURL, "file", target, "bytes", buf.Len())
	return fileName, nil
}

func validateSourceURL(raw string) error {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return crerr.New("value is empty")
	}

	parsed, err := url.Parse(candidate)
	if err != nil {
		return crerr.Wrapf(err, "parse %q", candidate)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return crerr.Newf("%q uses unsupported scheme=%q; expected http or https", candidate, parsed.Scheme)
	}
	if strings.TrimSpace(parsed.Host) == "" {
		return crerr.Newf("%q has empty host", candidate)
	}
	return nil
}
