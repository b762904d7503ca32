package layout

import "github.com/hfaheem/ttg/internal/token"

// Word is a positioned piece of text extracted from a document page.
// Coordinates follow the extractor's page space: x grows rightward.
type Word struct {
	X0   float64
	Y0   float64
	X1   float64
	Y1   float64
	Text string
}

// Document is the extracted form of a timetable, in reading order.
// Line-based layouts fill Lines, position-based layouts fill Words;
// a resolver uses whichever form it understands.
type Document struct {
	Lines []string
	Words []Word
}

// LocatedSession is a decoded class token placed in the week grid.
// Day is the full weekday name; Date is empty when the layout carries no
// date row. CourseName is filled only by resolvers that look up the
// catalog during the scan (the word resolver), with the raw course code
// as fallback.
type LocatedSession struct {
	Day        string
	Date       string
	TimeSlot   string
	Token      token.ClassToken
	CourseName string
}

// Resolver assigns each class token in a document its day and time slot.
// Resolution is strictly causal in scan order: a token seen before any
// day marker cannot be oriented and is dropped, and malformed documents
// produce wrong-but-never-crashing output rather than errors.
type Resolver interface {
	Resolve(doc Document) []LocatedSession
}

// NameLookup resolves a course code to its full name.
type NameLookup interface {
	CourseName(code string) (string, bool)
}
