package terminal

import (
	"context"
	"fmt"
	"net/url"

	"github.com/myanmartools/zuc-cli/internal/core/domain"
	"github.com/myanmartools/zuc-cli/internal/core/ports/driven"
)

// Ensure StaticLinks implements the interface.
var _ driven.DynamicLinks = (*StaticLinks)(nil)

// StaticLinks delivers deep links given on the command line.
type StaticLinks struct {
	urls []string
}

// NewStaticLinks creates a link source for urls.
func NewStaticLinks(urls ...string) *StaticLinks {
	return &StaticLinks{urls: urls}
}

// Links delivers each URL, reporting unparsable ones on the error channel.
// Both channels are closed once every URL was delivered or ctx is done.
func (s *StaticLinks) Links(ctx context.Context) (<-chan domain.DeepLink, <-chan error) {
	links := make(chan domain.DeepLink)
	errs := make(chan error, len(s.urls))

	go func() {
		defer close(links)
		defer close(errs)
		for _, raw := range s.urls {
			u, err := url.Parse(raw)
			if err != nil || u.Scheme == "" || u.Host == "" {
				errs <- fmt.Errorf("%w: deep link %q", domain.ErrInvalidInput, raw)
				continue
			}
			select {
			case links <- domain.DeepLink{URL: u.String()}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return links, errs
}
