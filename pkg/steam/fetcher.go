package steam

import (
	"context"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sgc-cli/sgc/pkg/whttp"
)

// HTTPFetcher is the production Fetcher, backed by whttp. A nil
// Client uses whttp's package default.
type HTTPFetcher struct {
	Client    *retryablehttp.Client
	UserAgent string
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*Page, error) {
	var headers []whttp.WHTTPHeader
	if f.UserAgent != "" {
		headers = append(headers, whttp.WHTTPHeader{Name: "User-Agent", Value: f.UserAgent})
	}

	res, err := whttp.SendHTTPRequest(ctx, &whttp.WHTTPReq{
		Method:  "GET",
		URL:     url,
		Headers: headers,
	}, f.Client)
	if err != nil {
		return nil, err
	}

	return &Page{
		StatusCode:  res.StatusCode,
		ContentType: res.ContentType,
		Body:        res.BodyString,
		Title:       res.HTTPTitle,
	}, nil
}
