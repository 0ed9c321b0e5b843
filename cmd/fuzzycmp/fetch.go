package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/errgroup"
)

// page is a fetched HTTP response whose body has not been read yet.
type page struct {
	URL    string
	Status int
	Body   io.ReadCloser
}

func newFetcher(timeout time.Duration) *resty.Client {
	return resty.New().
		SetTimeout(timeout).
		SetRetryCount(1).
		SetHeader("User-Agent", "fuzzycmp/1.0")
}

// fetchPair requests both URLs concurrently and returns the unread bodies,
// so the caller reads them under its own size limit. Non-2xx responses are
// kept: error pages are bodies worth comparing too. The caller closes the
// bodies; on error they are already closed.
func fetchPair(ctx context.Context, client *resty.Client, urlA, urlB string) ([2]page, error) {
	var pages [2]page
	// A plain group: the bodies are read after Wait, so the request context
	// must outlive it.
	var g errgroup.Group
	for i, u := range []string{urlA, urlB} {
		g.Go(func() error {
			resp, err := client.R().
				SetContext(ctx).
				SetDoNotParseResponse(true).
				Get(u)
			if err != nil {
				return fmt.Errorf("failed to fetch %s: %w", u, err)
			}
			pages[i] = page{URL: u, Status: resp.StatusCode(), Body: resp.RawBody()}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		closePages(pages)
		return pages, err
	}
	return pages, nil
}

func closePages(pages [2]page) {
	for _, p := range pages {
		if p.Body != nil {
			p.Body.Close()
		}
	}
}
