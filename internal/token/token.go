package token

import (
	"regexp"
	"strconv"
	"strings"
)

// Grammar selects the character class accepted for course codes and
// sections. Timetable exports disagree between institutions: older ones
// use short uppercase-only codes with letter sections, newer ones allow
// mixed-case alphanumerics in both fields.
type Grammar int

const (
	// AlphaNumeric accepts alphanumeric codes and sections of any length.
	AlphaNumeric Grammar = iota
	// LettersOnly accepts 2-5 uppercase-letter codes and uppercase-letter
	// sections.
	LettersOnly
)

func (g Grammar) String() string {
	if g == LettersOnly {
		return "letters"
	}
	return "alnum"
}

// ClassToken is one decoded class-session entry from a timetable cell:
// CODE-SECTION(SESSION#)-FACULTY{VENUE}. Every field is non-empty; a cell
// either decodes completely or not at all.
type ClassToken struct {
	CourseCode string
	Section    string
	SessionNum int
	Faculty    string // may contain "/" for co-taught slots, never split
	Venue      string
}

var grammarPatterns = map[Grammar]*regexp.Regexp{
	AlphaNumeric: regexp.MustCompile(`\b([A-Za-z0-9]+)-([A-Za-z0-9]+)\((\d+)\)-([A-Z/]+)\s*\{([^}]*)\}`),
	LettersOnly:  regexp.MustCompile(`\b([A-Z]{2,5})-([A-Z]+)\((\d+)\)-([A-Z/]+)\s*\{([^}]*)\}`),
}

// Parser recognizes class-session entries inside arbitrary text. It holds
// no state beyond the compiled grammar and is safe for concurrent use.
type Parser struct {
	re *regexp.Regexp
}

func NewParser(g Grammar) *Parser {
	re, ok := grammarPatterns[g]
	if !ok {
		re = grammarPatterns[AlphaNumeric]
	}
	return &Parser{re: re}
}

// Parse returns every complete entry in text, in order of appearance.
// Text with no entries yields nil; malformed or unrelated text is common
// and never an error.
func (p *Parser) Parse(text string) []ClassToken {
	matches := p.re.FindAllStringSubmatch(text, -1)
	var tokens []ClassToken
	for _, m := range matches {
		venue := strings.TrimSpace(m[5])
		if venue == "" {
			continue
		}
		n, err := strconv.Atoi(m[3])
		if err != nil {
			continue
		}
		tokens = append(tokens, ClassToken{
			CourseCode: m[1],
			Section:    m[2],
			SessionNum: n,
			Faculty:    m[4],
			Venue:      venue,
		})
	}
	return tokens
}

// ParseGrammar maps a config/flag value to a Grammar.
func ParseGrammar(s string) (Grammar, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "alnum", "alphanumeric":
		return AlphaNumeric, true
	case "letters", "letters-only":
		return LettersOnly, true
	}
	return AlphaNumeric, false
}
