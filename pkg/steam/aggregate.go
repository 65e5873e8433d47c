package steam

// Catalog accumulates the GameID to title mapping across every
// resolved player in one comparison run. It grows monotonically and
// preserves insertion order, so report output is reproducible given
// the same input order.
type Catalog struct {
	titles map[GameID]string
	order  []GameID
}

func NewCatalog() *Catalog {
	return &Catalog{titles: make(map[GameID]string)}
}

// Add merges one record into the catalog. The first title observed
// for an appid wins; later, possibly inconsistent, observations never
// overwrite it.
func (c *Catalog) Add(g Game) {
	if _, ok := c.titles[g.ID]; ok {
		return
	}
	c.titles[g.ID] = g.Title
	c.order = append(c.order, g.ID)
}

// Title returns the catalog title for an appid.
func (c *Catalog) Title(id GameID) (string, bool) {
	title, ok := c.titles[id]
	return title, ok
}

// Len returns the number of distinct games seen across all players.
func (c *Catalog) Len() int {
	return len(c.order)
}

// GameIDs returns every known appid in insertion order.
func (c *Catalog) GameIDs() []GameID {
	ids := make([]GameID, len(c.order))
	copy(ids, c.order)
	return ids
}

// Ownership is the shared-ownership index over the games owned by
// more than one player. GameIDs follows catalog insertion order;
// Owners holds one entry per resolved player, in resolution order.
type Ownership struct {
	GameIDs []GameID
	Owners  map[GameID][]bool
}

// Aggregator owns the ordered player list and the catalog for one
// comparison run. It is created fresh per run and discarded once the
// report is produced.
type Aggregator struct {
	catalog *Catalog
	players []*PlayerProfile
}

func NewAggregator() *Aggregator {
	return &Aggregator{catalog: NewCatalog()}
}

// AddPlayer appends a resolved player and merges their game records
// into the catalog. Profiles are never mutated after insertion.
func (a *Aggregator) AddPlayer(p *PlayerProfile) {
	a.players = append(a.players, p)
	for _, g := range p.Games {
		a.catalog.Add(g)
	}
}

// Players returns the resolved players in resolution order.
func (a *Aggregator) Players() []*PlayerProfile {
	players := make([]*PlayerProfile, len(a.players))
	copy(players, a.players)
	return players
}

// Catalog exposes the run's accumulated game catalog to the renderer.
func (a *Aggregator) Catalog() *Catalog {
	return a.catalog
}

// CommonGames computes the shared-ownership index from scratch: for
// every cataloged game, an ordered per-player membership list, kept
// only when more than one player owns the game. It returns
// ErrNoOverlap when nothing qualifies, which is a distinguishable
// empty result rather than a failure.
func (a *Aggregator) CommonGames() (*Ownership, error) {
	own := &Ownership{Owners: make(map[GameID][]bool)}

	for _, id := range a.catalog.order {
		marks := make([]bool, 0, len(a.players))
		owners := 0
		for _, p := range a.players {
			owns := p.Owns(id)
			if owns {
				owners++
			}
			marks = append(marks, owns)
		}
		if owners > 1 {
			own.GameIDs = append(own.GameIDs, id)
			own.Owners[id] = marks
		}
	}

	if len(own.GameIDs) == 0 {
		return nil, ErrNoOverlap
	}
	return own, nil
}
