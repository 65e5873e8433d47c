package steam

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/tidwall/gjson"
)

// Markers for the two script-level definitions embedded in a profile's
// games page.
const (
	nameMarker  = "personaName"
	gamesMarker = "rgGames"
)

// ExtractProfile pulls the display name and the owned-game records out
// of a games page already classified as viable.
//
// Both values are embedded as JavaScript variable definitions inside
// otherwise unstructured markup. Each is located by its marker and then
// delimiter-matched into a self-contained JSON fragment: the name by
// its enclosing quotes, the game list by its enclosing bracket pair.
// The scanners track string literals and backslash escapes, so titles
// containing brackets or quotes do not break the match.
func ExtractProfile(doc *goquery.Document) (*PlayerProfile, error) {
	content, err := doc.Html()
	if err != nil {
		return nil, fmt.Errorf("rendering document: %w", err)
	}

	name, err := extractName(content)
	if err != nil {
		return nil, err
	}

	games, err := extractGames(content)
	if err != nil {
		return nil, err
	}

	return NewPlayerProfile(name, games), nil
}

func extractName(content string) (string, error) {
	at := strings.Index(content, nameMarker)
	if at < 0 {
		return "", &NameExtractionError{Reason: "marker not found"}
	}

	frag, ok := quotedFragment(content[at+len(nameMarker):])
	if !ok {
		return "", &NameExtractionError{Reason: "name string is unterminated"}
	}

	if !gjson.Valid(frag) {
		return "", &NameExtractionError{Reason: "name fragment is not a valid JSON string"}
	}
	v := gjson.Parse(frag)
	if v.Type != gjson.String {
		return "", &NameExtractionError{Reason: "name fragment did not decode to a string"}
	}
	return v.String(), nil
}

func extractGames(content string) ([]Game, error) {
	at := strings.Index(content, gamesMarker)
	if at < 0 {
		return nil, &GameListExtractionError{Reason: "marker not found"}
	}

	frag, ok := bracketFragment(content[at+len(gamesMarker):])
	if !ok {
		return nil, &GameListExtractionError{Reason: "game array is unterminated"}
	}

	if !gjson.Valid(frag) {
		return nil, &GameListExtractionError{Reason: "game array fragment is not valid JSON"}
	}
	parsed := gjson.Parse(frag)
	if !parsed.IsArray() {
		return nil, &GameListExtractionError{Reason: "game fragment did not decode to an array"}
	}

	var games []Game
	var badRecord *GameListExtractionError
	parsed.ForEach(func(_, rec gjson.Result) bool {
		if !rec.IsObject() {
			badRecord = &GameListExtractionError{Reason: "game record is not an object"}
			return false
		}
		id := rec.Get("appid")
		title := rec.Get("name")
		if !id.Exists() || id.Type != gjson.Number {
			badRecord = &GameListExtractionError{Reason: "game record has no numeric appid"}
			return false
		}
		if !title.Exists() || title.Type != gjson.String {
			badRecord = &GameListExtractionError{Reason: "game record has no title"}
			return false
		}
		games = append(games, Game{ID: GameID(id.Int()), Title: title.String()})
		return true
	})
	if badRecord != nil {
		return nil, badRecord
	}

	return games, nil
}

// quotedFragment returns the first double-quoted JSON string in s,
// quotes included. Backslash escapes inside the string are respected.
func quotedFragment(s string) (string, bool) {
	start := strings.IndexByte(s, '"')
	if start < 0 {
		return "", false
	}

	escaped := false
	for i := start + 1; i < len(s); i++ {
		if escaped {
			escaped = false
			continue
		}
		switch s[i] {
		case '\\':
			escaped = true
		case '"':
			return s[start : i+1], true
		}
	}
	return "", false
}

// bracketFragment returns the first balanced bracket-delimited array
// in s, brackets included. Nested brackets and bracket characters
// inside string literals are handled, unlike a naive scan to the first
// closing bracket.
func bracketFragment(s string) (string, bool) {
	start := strings.IndexByte(s, '[')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
