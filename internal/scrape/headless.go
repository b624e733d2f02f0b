package scrape

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// HeadlessFetcher renders a page in headless Chrome before extracting its
// text. Slow, so only used when the plain HTTP path comes up empty.
type HeadlessFetcher struct {
	timeout time.Duration
}

func NewHeadlessFetcher(timeout time.Duration) *HeadlessFetcher {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &HeadlessFetcher{timeout: timeout}
}

func (f *HeadlessFetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, chromedp.DefaultExecAllocatorOptions[:]...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, f.timeout)
	defer cancelRun()

	var text string
	err := chromedp.Run(runCtx,
		chromedp.Navigate(pageURL),
		chromedp.Text("body", &text, chromedp.ByQuery),
	)
	if err != nil {
		return "", fmt.Errorf("headless render failed: %w", err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", errEmptyPage
	}
	return text, nil
}
