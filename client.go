package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"github.com/kawakaze/hltv-api/domain"
)

const (
	defaultBaseURL      = "https://www.hltv.org"
	defaultFetchTimeout = time.Second * 15

	// HLTV serves an interstitial to clients that do not look like a
	// desktop browser, so the UA has to stay a current mainstream one.
	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"
)

// HLTVClient fetches and extracts HLTV pages. It holds no state besides
// the preconfigured outbound client, so a single instance is safe to
// share between requests.
type HLTVClient struct {
	http    *resty.Client
	baseURL string
}

func NewHLTVClient(baseURL string, timeout time.Duration) *HLTVClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}

	client := resty.New()
	client.SetTimeout(timeout)
	client.SetHeader("User-Agent", browserUserAgent)
	client.SetHeader("Accept-Language", "en-US,en;q=0.9")
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	return &HLTVClient{
		http:    client,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// fetchRaw performs a single GET against baseURL+path. No retries and no
// caching, a failed page load surfaces to the caller as-is.
func (c *HLTVClient) fetchRaw(ctx context.Context, path string) (string, error) {
	resp, errGet := c.http.R().SetContext(ctx).Get(c.baseURL + path)
	if errGet != nil {
		return "", errors.Wrapf(domain.ErrRequestPerform, "%s: %v", path, errGet)
	}

	if !resp.IsSuccess() {
		return "", fmt.Errorf("%w: HTTP %d", domain.ErrResponseStatus, resp.StatusCode())
	}

	return resp.String(), nil
}

func (c *HLTVClient) fetch(ctx context.Context, path string) (*goquery.Document, error) {
	body, errBody := c.fetchRaw(ctx, path)
	if errBody != nil {
		return nil, errBody
	}

	doc, errDoc := goquery.NewDocumentFromReader(strings.NewReader(body))
	if errDoc != nil {
		return nil, errors.Wrapf(domain.ErrGoQueryDocument, "%s: %v", path, errDoc)
	}

	return doc, nil
}

func (c *HLTVClient) absoluteURL(href string) string {
	if href == "" {
		return ""
	}

	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}

	return c.baseURL + href
}
