package entities

// Genre is the closed set of play classifications the pricing rules understand.
//
// Plays arrive with a raw type tag (JSON, catalog seeds); the tag is only turned into a
// Genre when a charge is computed, so an unknown tag surfaces as UnknownPlayTypeError at
// calculation time rather than when the catalog is built.
type Genre string

const (
	GenreTragedy Genre = "tragedy"
	GenreComedy  Genre = "comedy"
)

// Genres lists every recognized genre in declaration order.
func Genres() []Genre {
	return []Genre{GenreTragedy, GenreComedy}
}

// ParseGenre converts a raw play type tag into a Genre.
func ParseGenre(raw string) (Genre, error) {
	switch g := Genre(raw); g {
	case GenreTragedy, GenreComedy:
		return g, nil
	}
	return "", &UnknownPlayTypeError{Type: raw}
}

func (g Genre) String() string {
	return string(g)
}

// Play is a named theatrical work. Type holds the raw genre tag.
type Play struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Genre resolves the play's raw type tag.
func (p Play) Genre() (Genre, error) {
	return ParseGenre(p.Type)
}

// PlayCatalog maps play identifiers to plays.
type PlayCatalog map[string]Play

// Lookup resolves a play by identifier.
func (c PlayCatalog) Lookup(playID string) (Play, error) {
	p, ok := c[playID]
	if !ok {
		return Play{}, &MissingPlayError{PlayID: playID}
	}
	return p, nil
}

// Clone returns a shallow copy that callers may modify freely.
func (c PlayCatalog) Clone() PlayCatalog {
	out := make(PlayCatalog, len(c))
	for id, p := range c {
		out[id] = p
	}
	return out
}
