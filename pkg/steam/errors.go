package steam

import (
	"errors"
	"fmt"
)

// ErrMalformed is returned by Normalize when a raw identifier matches
// no recognized profile URL shape.
var ErrMalformed = errors.New("unrecognized steam profile URL format")

// ErrNoOverlap is returned by Aggregator.CommonGames when no game is
// owned by more than one player. It distinguishes a genuine empty
// result from a comparison that was never computed.
var ErrNoOverlap = errors.New("no games owned in common")

// TransportError reports a fetch that did not yield a usable HTML
// document: a non-200 status or an unexpected content type. It is a
// hard failure for the resolution attempt, never mapped to a
// profile-state outcome.
type TransportError struct {
	URL         string
	StatusCode  int
	ContentType string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport fault fetching %s: status %d, content type %q",
		e.URL, e.StatusCode, e.ContentType)
}

// NameExtractionError reports that the display-name definition could
// not be located or decoded in an otherwise viable profile page.
type NameExtractionError struct {
	Reason string
}

func (e *NameExtractionError) Error() string {
	return "could not extract player name: " + e.Reason
}

// GameListExtractionError reports that the game-list definition could
// not be located, delimiter-matched, or decoded in an otherwise
// viable profile page.
type GameListExtractionError struct {
	Reason string
}

func (e *GameListExtractionError) Error() string {
	return "could not extract game list: " + e.Reason
}
