package steam

// GameID is a Steam appid. Appids are stable and never reused for a
// different game, so they can be compared across profiles directly.
type GameID int64

// Game is one (appid, title) record as it appears in a profile's game
// list.
type Game struct {
	ID    GameID
	Title string
}

// PlayerProfile holds a resolved player's display name and owned
// games. It is built once per resolved profile and never mutated
// afterwards.
type PlayerProfile struct {
	Name  string
	Games []Game

	owned map[GameID]struct{}
}

// NewPlayerProfile builds a profile from extracted game records.
// Duplicate appids collapse; the first record for an appid wins and
// extraction order is preserved.
func NewPlayerProfile(name string, games []Game) *PlayerProfile {
	p := &PlayerProfile{
		Name:  name,
		owned: make(map[GameID]struct{}, len(games)),
	}
	for _, g := range games {
		if _, ok := p.owned[g.ID]; ok {
			continue
		}
		p.owned[g.ID] = struct{}{}
		p.Games = append(p.Games, g)
	}
	return p
}

// Owns reports whether the player owns the given game.
func (p *PlayerProfile) Owns(id GameID) bool {
	_, ok := p.owned[id]
	return ok
}

// GameCount returns the number of distinct games the player owns.
func (p *PlayerProfile) GameCount() int {
	return len(p.Games)
}

// OutcomeKind classifies the result of resolving one raw identifier.
type OutcomeKind int

const (
	// KindResolved means the profile was public and its game list was
	// extracted successfully.
	KindResolved OutcomeKind = iota
	// KindAccessRestricted means the profile exists but its game list
	// is private or friends-only.
	KindAccessRestricted
	// KindNotFound means no profile exists at any candidate address.
	KindNotFound
	// KindAmbiguous means more than one candidate address led to an
	// existing profile. This indicates a normalization or data-source
	// inconsistency and is never silently resolved by picking one.
	KindAmbiguous
	// KindMalformed means the raw identifier did not match any
	// recognized profile URL shape.
	KindMalformed
)

func (k OutcomeKind) String() string {
	switch k {
	case KindResolved:
		return "resolved"
	case KindAccessRestricted:
		return "access-restricted"
	case KindNotFound:
		return "not-found"
	case KindAmbiguous:
		return "ambiguous"
	case KindMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Outcome is the result of resolving one raw identifier. Exactly one
// Outcome is produced per identifier; transport and extraction
// failures are returned as errors instead.
type Outcome struct {
	Kind OutcomeKind

	// Profile is set only when Kind is KindResolved.
	Profile *PlayerProfile

	// Matches is set only when Kind is KindAmbiguous and holds the
	// number of candidate addresses that led to an existing profile.
	Matches int
}
