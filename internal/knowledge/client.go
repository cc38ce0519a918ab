// Package knowledge fetches descriptive text about majors from the web and
// builds catalog snapshots from it.
package knowledge

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/major-advisor/internal/catalog"
	"github.com/spigell/major-advisor/internal/logger"
	"github.com/spigell/major-advisor/internal/utils"
)

const (
	defaultURLTemplate = "https://id.wikipedia.org/wiki/%s"
	defaultUserAgent   = "spigell/major-advisor"
	defaultTimeout     = 10 * time.Second
	defaultMaxChars    = 1500
	defaultConcurrency = 4

	contentEncoding = "gzip"
	maxBodyBytes    = 2 << 20
)

// ErrNoDescription is returned when a page has no usable paragraph text.
var ErrNoDescription = errors.New("no description found")

// Config is the knowledge section of the application config.
type Config struct {
	Enabled     bool          `mapstructure:"enabled"`
	URLTemplate string        `mapstructure:"url-template"`
	UserAgent   string        `mapstructure:"user-agent"`
	Timeout     time.Duration `mapstructure:"timeout"`
	MaxChars    int           `mapstructure:"max-chars"`
	Concurrency int           `mapstructure:"concurrency"`
}

// Client downloads a page per major and keeps its paragraph text.
type Client struct {
	logger      *zap.Logger
	HTTPClient  *http.Client
	UserAgent   string
	URLTemplate string
	MaxChars    int
}

func New(log *zap.Logger, cfg Config) *Client {
	c := &Client{
		logger:      logger.WithFields(log, zap.String("component", "knowledge")),
		HTTPClient:  &http.Client{Timeout: defaultTimeout},
		UserAgent:   defaultUserAgent,
		URLTemplate: defaultURLTemplate,
		MaxChars:    defaultMaxChars,
	}

	if cfg.Timeout > 0 {
		c.HTTPClient.Timeout = cfg.Timeout
	}
	if ua := strings.TrimSpace(cfg.UserAgent); ua != "" {
		c.UserAgent = ua
	}
	if tmpl := strings.TrimSpace(cfg.URLTemplate); tmpl != "" {
		c.URLTemplate = tmpl
	}
	if cfg.MaxChars > 0 {
		c.MaxChars = cfg.MaxChars
	}

	return c
}

// PageURL returns the page to fetch for seed. An explicit seed URL wins over the template.
func (c *Client) PageURL(seed catalog.Seed) string {
	if u := strings.TrimSpace(seed.URL); u != "" {
		return u
	}
	title := strings.ReplaceAll(strings.TrimSpace(seed.Name), " ", "_")
	return fmt.Sprintf(c.URLTemplate, url.PathEscape(title))
}

// Fetch downloads the page of seed and returns its description text.
func (c *Client) Fetch(ctx context.Context, seed catalog.Seed) (string, error) {
	pageURL := c.PageURL(seed)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", err
	}
	c.setHeaders(req)

	resp, err := c.request(req)
	if err != nil {
		return "", err
	}

	text, err := c.parseResponse(resp)
	if err != nil {
		return "", fmt.Errorf("%s: %w", pageURL, err)
	}

	c.logger.Debug("description fetched",
		zap.String(logger.FieldMajor, seed.Name),
		zap.String("url", pageURL),
		zap.String("description_preview", utils.TruncateForLog(text, 80)),
	)

	return text, nil
}

// FetchFunc adapts Fetch to the catalog memoization callback.
func (c *Client) FetchFunc(seed catalog.Seed) catalog.FetchFunc {
	return func(ctx context.Context) (string, error) {
		return c.Fetch(ctx, seed)
	}
}

func (c *Client) parseResponse(resp *http.Response) (string, error) {
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return "", fmt.Errorf("bad status: %s", resp.Status)
	}

	var body io.ReadCloser
	var err error
	switch resp.Header.Get("Content-Encoding") {
	case "gzip":
		body, err = gzip.NewReader(resp.Body)
		if err != nil {
			resp.Body.Close()
			return "", err
		}
		defer resp.Body.Close()
		defer body.Close()
	default:
		body = resp.Body
		defer body.Close()
	}

	data, err := io.ReadAll(io.LimitReader(body, maxBodyBytes))
	if err != nil {
		return "", err
	}

	var text string
	if strings.Contains(resp.Header.Get("Content-Type"), "text/plain") {
		text = strings.Join(strings.Fields(string(data)), " ")
	} else {
		text, err = Paragraphs(string(data))
		if err != nil {
			return "", err
		}
	}

	text = truncate(text, c.MaxChars)
	if text == "" {
		return "", ErrNoDescription
	}
	return text, nil
}

func (c *Client) request(req *http.Request) (*http.Response, error) {
	c.logger.Debug("make request", zap.String("url", req.URL.String()))
	return c.HTTPClient.Do(req)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "text/html,text/plain;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Encoding", contentEncoding)
}

// truncate cuts s to at most limit runes, preferring a word boundary.
func truncate(s string, limit int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if limit <= 0 || len(runes) <= limit {
		return s
	}
	cut := string(runes[:limit])
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return strings.TrimSpace(cut)
}
