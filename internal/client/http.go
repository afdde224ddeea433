package client

import (
	"bytes"
	"compress/gzip"
	"context"
	"crypto/tls"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/offersleuth/internal/models"
)

const defaultTimeout = 30 * time.Second

var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:121.0) Gecko/20100101 Firefox/121.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.1 Safari/605.1.15",
}

// CreateHTTPClient creates an HTTP client, routed through proxyURL when set.
// An unparsable proxy URL falls back to a direct connection.
func CreateHTTPClient(proxyURL string, timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConnsPerHost: 2,
		ForceAttemptHTTP2:   true,
	}

	if proxyURL != "" {
		proxy, err := url.Parse(proxyURL)
		if err != nil {
			pterm.Warning.Printfln("Ignoring invalid proxy URL %q: %v", proxyURL, err)
		} else {
			transport.Proxy = http.ProxyURL(proxy)
		}
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}

// GetHeaders returns browser-like request headers for a JSON API call
func GetHeaders() http.Header {
	headers := http.Header{}
	headers.Set("User-Agent", userAgents[rand.Intn(len(userAgents))])
	headers.Set("Accept", "application/json, text/plain, */*")
	headers.Set("Accept-Language", "en-US,en;q=0.9,pl;q=0.8")
	headers.Set("Accept-Encoding", "gzip")
	headers.Set("Connection", "keep-alive")
	return headers
}

// ReadResponseBody reads the response body, handling gzip compression if necessary
func ReadResponseBody(resp *http.Response) ([]byte, error) {
	var reader io.ReadCloser
	var err error

	switch resp.Header.Get("Content-Encoding") {
	case "gzip":
		reader, err = gzip.NewReader(resp.Body)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create gzip reader")
		}
		defer reader.Close()
	default:
		reader = resp.Body
	}

	return io.ReadAll(reader)
}

// FetchOffers downloads the raw offers payload from apiURL.
// All failures are reported as *models.FetchError.
func FetchOffers(ctx context.Context, httpClient *http.Client, apiURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, &models.FetchError{URL: apiURL, Reason: "invalid request", Err: err}
	}
	for key, values := range GetHeaders() {
		req.Header[key] = values
	}

	pterm.Debug.Printfln("GET %s", apiURL)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, &models.FetchError{URL: apiURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &models.FetchError{URL: apiURL, StatusCode: resp.StatusCode}
	}

	body, err := ReadResponseBody(resp)
	if err != nil {
		return nil, &models.FetchError{URL: apiURL, Reason: "failed to read response body", Err: err}
	}

	if isHTMLResponse(resp, body) {
		return nil, &models.FetchError{URL: apiURL, Reason: blockedPageReason(body)}
	}

	pterm.Debug.Printfln("Received %d bytes from %s", len(body), apiURL)
	return body, nil
}

func isHTMLResponse(resp *http.Response, body []byte) bool {
	if strings.Contains(resp.Header.Get("Content-Type"), "text/html") {
		return true
	}
	trimmed := bytes.TrimSpace(body)
	return bytes.HasPrefix(trimmed, []byte("<"))
}

// blockedPageReason describes an HTML page served instead of JSON, which is
// what bot protection and maintenance pages look like
func blockedPageReason(body []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "endpoint returned HTML instead of JSON"
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if doc.Find("#challenge-form, .cf-browser-verification, iframe[src*='captcha']").Length() > 0 {
		return "endpoint returned a bot challenge page: " + title
	}
	if title == "" {
		return "endpoint returned HTML instead of JSON"
	}
	return "endpoint returned HTML page: " + title
}
