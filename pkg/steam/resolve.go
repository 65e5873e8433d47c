package steam

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/sgc-cli/sgc/internal/utils"
)

// DefaultBaseURL is the Steam community site all candidate addresses
// are resolved against unless overridden.
const DefaultBaseURL = "https://steamcommunity.com"

// gamesPath is appended to every candidate profile address; the games
// tab is the only page carrying both the display name and the full
// game list.
const gamesPath = "/games/?tab=all"

// Page is the raw result of fetching one candidate address.
type Page struct {
	StatusCode  int
	ContentType string
	Body        string
	Title       string
}

// Fetcher is the injected HTTP capability used to probe candidate
// addresses. The call blocks; timeout and cancellation policy belong
// to the implementation and the supplied context.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*Page, error)
}

// Resolver turns raw user-entered identifiers into resolution
// outcomes. It is stateless and safe to reuse across identifiers.
type Resolver struct {
	BaseURL string
	Fetcher Fetcher
}

func NewResolver(f Fetcher) *Resolver {
	return &Resolver{BaseURL: DefaultBaseURL, Fetcher: f}
}

type classification int

const (
	classAbsent classification = iota
	classViable
	classRestricted
)

func (c classification) String() string {
	switch c {
	case classViable:
		return "viable"
	case classRestricted:
		return "restricted"
	default:
		return "absent"
	}
}

// Resolve is the sole entry point of the resolution pipeline. It
// normalizes the raw identifier, probes every candidate address, and
// produces exactly one Outcome.
//
// Profile-state results (resolved, restricted, not-found, ambiguous,
// malformed) come back as Outcome variants. Transport faults and
// extraction failures come back as errors: their remediation differs,
// so they are never folded into an outcome. Resolve performs no
// retries; retry-or-skip decisions belong to the caller, for whom the
// call is idempotent.
func (r *Resolver) Resolve(ctx context.Context, raw string) (*Outcome, error) {
	candidates, err := Normalize(raw)
	if err != nil {
		if errors.Is(err, ErrMalformed) {
			return &Outcome{Kind: KindMalformed}, nil
		}
		return nil, err
	}

	type hit struct {
		class classification
		doc   *goquery.Document
	}
	var hits []hit

	for _, cand := range candidates {
		url := cand.URL(r.BaseURL) + gamesPath

		page, err := r.Fetcher.Fetch(ctx, url)
		if err != nil {
			return nil, fmt.Errorf("fetching %s: %w", url, err)
		}
		if page.StatusCode != http.StatusOK || !strings.Contains(page.ContentType, "text/html") {
			return nil, &TransportError{
				URL:         url,
				StatusCode:  page.StatusCode,
				ContentType: page.ContentType,
			}
		}

		doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.Body))
		if err != nil {
			return nil, fmt.Errorf("parsing document from %s: %w", url, err)
		}

		class := classify(doc)
		utils.Log.Debug("Probed ", url, " (", page.Title, "): class ", class)

		if class != classAbsent {
			hits = append(hits, hit{class: class, doc: doc})
		}
	}

	switch {
	case len(hits) == 0:
		return &Outcome{Kind: KindNotFound}, nil
	case len(hits) > 1:
		return &Outcome{Kind: KindAmbiguous, Matches: len(hits)}, nil
	}

	if hits[0].class == classRestricted {
		return &Outcome{Kind: KindAccessRestricted}, nil
	}

	profile, err := ExtractProfile(hits[0].doc)
	if err != nil {
		return nil, err
	}
	return &Outcome{Kind: KindResolved, Profile: profile}, nil
}

// classify inspects the structural markers of a fetched document. A
// games-list container means the profile is public and viable; the
// private-info container means it exists but is restricted; neither
// means no profile lives at this address.
func classify(doc *goquery.Document) classification {
	if doc.Find("div.games_list").Length() > 0 {
		return classViable
	}
	if doc.Find("div.profile_private_info").Length() > 0 {
		return classRestricted
	}
	return classAbsent
}
