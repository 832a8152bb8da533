// Package metascrape fetches basic HTML metadata for a URL on a best-effort
// basis: title, description, keywords and favicon.
package metascrape

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"
)

const (
	fetchTimeout = 10 * time.Second
	userAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	maxBodySize  = 2 << 20
)

// Info is the metadata extracted from a page.
type Info struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	MetaKeywords string `json:"meta_keywords"`
	Favicon      string `json:"favicon"`
}

// Fetcher retrieves page metadata over HTTP.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a Fetcher with a bounded request timeout.
func NewFetcher() *Fetcher {
	return &Fetcher{client: &http.Client{Timeout: fetchTimeout}}
}

// Fetch downloads the page at rawURL and extracts its metadata. A non-2xx
// response or network failure is returned as an error; parse problems are
// not, the result simply has empty fields.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Info, error) {
	base, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid url %q", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	info := Parse(http.MaxBytesReader(nil, resp.Body, maxBodySize), base)
	return info, nil
}

// Parse tokenizes an HTML document and pulls out the metadata fields.
// The favicon link is resolved against base; when the page declares none,
// the conventional /favicon.ico path is assumed.
func Parse(r io.Reader, base *url.URL) *Info {
	info := &Info{}
	tokenizer := html.NewTokenizer(r)

	inTitle := false
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			if info.Favicon == "" {
				info.Favicon = base.Scheme + "://" + base.Host + "/favicon.ico"
			}
			return info
		case html.StartTagToken, html.SelfClosingTagToken:
			token := tokenizer.Token()
			switch token.Data {
			case "title":
				inTitle = true
			case "meta":
				name, content := attr(token, "name"), attr(token, "content")
				switch strings.ToLower(name) {
				case "description":
					info.Description = strings.TrimSpace(content)
				case "keywords":
					info.MetaKeywords = strings.TrimSpace(content)
				}
			case "link":
				rel := strings.ToLower(attr(token, "rel"))
				if rel == "icon" || rel == "shortcut icon" {
					if href := strings.TrimSpace(attr(token, "href")); href != "" {
						if resolved, err := base.Parse(href); err == nil {
							info.Favicon = resolved.String()
						}
					}
				}
			case "body":
				// Metadata lives in <head>; stop once the body starts.
				if info.Favicon == "" {
					info.Favicon = base.Scheme + "://" + base.Host + "/favicon.ico"
				}
				return info
			}
		case html.TextToken:
			if inTitle && info.Title == "" {
				info.Title = strings.TrimSpace(string(tokenizer.Text()))
			}
		case html.EndTagToken:
			if token := tokenizer.Token(); token.Data == "title" {
				inTitle = false
			}
		}
	}
}

func attr(token html.Token, key string) string {
	for _, a := range token.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
