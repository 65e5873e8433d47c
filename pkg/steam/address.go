package steam

import (
	"regexp"
	"strings"
)

// AddressStyle identifies one of the two canonical Steam profile URL
// shapes.
type AddressStyle int

const (
	// StyleProfileID is the numeric form: steamcommunity.com/profiles/<id64>
	StyleProfileID AddressStyle = iota
	// StyleVanity is the custom-name form: steamcommunity.com/id/<name>
	StyleVanity
)

func (s AddressStyle) String() string {
	if s == StyleProfileID {
		return "profiles"
	}
	return "id"
}

// CandidateAddress is one canonical address shape to probe for a raw
// identifier. It lives only for the duration of a single resolution
// attempt.
type CandidateAddress struct {
	Style AddressStyle
	ID    string
}

// URL joins the candidate onto a community base URL, e.g.
// https://steamcommunity.com/profiles/76561197960287930.
func (c CandidateAddress) URL(base string) string {
	return strings.TrimSuffix(base, "/") + "/" + c.Style.String() + "/" + c.ID
}

var recognizedPrefixes = []struct {
	prefix string
	style  AddressStyle
}{
	{"https://steamcommunity.com/profiles/", StyleProfileID},
	{"http://steamcommunity.com/profiles/", StyleProfileID},
	{"steamcommunity.com/profiles/", StyleProfileID},
	{"https://steamcommunity.com/id/", StyleVanity},
	{"http://steamcommunity.com/id/", StyleVanity},
	{"steamcommunity.com/id/", StyleVanity},
}

var bareIdentifier = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Normalize turns a raw user-entered identifier into the candidate
// addresses to probe.
//
// A recognized prefixed form yields exactly one candidate, with any
// path segments after the identifier truncated. A bare segment (no
// prefix, no slashes) cannot be classified from the string alone, so
// it yields exactly two candidates, numeric-profile style first and
// vanity style second. Anything else fails with ErrMalformed.
func Normalize(raw string) ([]CandidateAddress, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrMalformed
	}

	for _, p := range recognizedPrefixes {
		if !strings.HasPrefix(raw, p.prefix) {
			continue
		}
		id := raw[len(p.prefix):]
		// Truncate trailing path segments after the identifier.
		if slash := strings.IndexByte(id, '/'); slash >= 0 {
			id = id[:slash]
		}
		if id == "" {
			return nil, ErrMalformed
		}
		return []CandidateAddress{{Style: p.style, ID: id}}, nil
	}

	if bareIdentifier.MatchString(raw) {
		return []CandidateAddress{
			{Style: StyleProfileID, ID: raw},
			{Style: StyleVanity, ID: raw},
		}, nil
	}

	return nil, ErrMalformed
}
