package images

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// Resolver finds a representative image URL for a product title. Lookups are
// best-effort: an empty string means no image, and implementations never
// fail. One call per product per run; the reconciler only asks again on a
// later run if the product is still imageless.
type Resolver interface {
	Resolve(ctx context.Context, query string) string
}

const defaultTimeout = 10 * time.Second

// GoogleResolver scrapes the Google image search result page and picks the
// first usable thumbnail.
type GoogleResolver struct {
	client  *http.Client
	baseURL string
	timeout time.Duration
	log     *zap.SugaredLogger
}

func NewGoogleResolver(timeout time.Duration, log *zap.SugaredLogger) *GoogleResolver {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &GoogleResolver{
		client:  &http.Client{Timeout: timeout},
		baseURL: "https://www.google.com/search",
		timeout: timeout,
		log:     log,
	}
}

// Resolve fetches the search page and returns the first <img> whose src is
// an http(s) URL and does not look like a site logo. Any error, timeout or
// empty result page yields "".
func (r *GoogleResolver) Resolve(ctx context.Context, query string) string {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	searchURL := fmt.Sprintf("%s?tbm=isch&q=%s", r.baseURL, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "tr-TR,tr;q=0.7")

	resp, err := r.client.Do(req)
	if err != nil {
		r.log.Debugw("image lookup failed", "query", query, "err", err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		r.log.Debugw("image lookup rejected", "query", query, "status", resp.StatusCode)
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		r.log.Debugw("image page parse failed", "query", query, "err", err)
		return ""
	}

	var found string
	doc.Find("img").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		src, ok := sel.Attr("src")
		if ok && strings.HasPrefix(src, "http") && !strings.Contains(src, "logo") {
			found = src
			return false
		}
		return true
	})
	return found
}

// NopResolver always reports no image. Used for dry runs.
type NopResolver struct{}

func (NopResolver) Resolve(context.Context, string) string { return "" }
