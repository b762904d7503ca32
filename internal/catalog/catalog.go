package catalog

import (
	"bytes"
	"crypto/sha256"
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
)

// Entry describes one course in the institutional catalog.
type Entry struct {
	FullName string
	Area     string
	Sections []string
}

// Catalog is the read-only course lookup: code to full name, area and
// valid sections. It is never mutated after Load and safe to share
// across goroutines.
type Catalog struct {
	entries map[string]Entry
	codes   []string // file order, for stable listings
}

func (c *Catalog) Lookup(code string) (Entry, bool) {
	e, ok := c.entries[code]
	return e, ok
}

// CourseName satisfies layout.NameLookup.
func (c *Catalog) CourseName(code string) (string, bool) {
	e, ok := c.entries[code]
	if !ok {
		return "", false
	}
	return e.FullName, true
}

// ValidSections returns the catalog's section list for code, or nil for
// unknown codes.
func (c *Catalog) ValidSections(code string) []string {
	return c.entries[code].Sections
}

// HasSection reports whether section is valid for code.
func (c *Catalog) HasSection(code, section string) bool {
	for _, s := range c.entries[code].Sections {
		if s == section {
			return true
		}
	}
	return false
}

// Codes returns every course code in file order.
func (c *Catalog) Codes() []string {
	out := make([]string, len(c.codes))
	copy(out, c.codes)
	return out
}

// Areas returns the distinct areas, sorted.
func (c *Catalog) Areas() []string {
	seen := make(map[string]struct{})
	var areas []string
	for _, code := range c.codes {
		a := c.entries[code].Area
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		areas = append(areas, a)
	}
	sort.Strings(areas)
	return areas
}

// CodesInArea returns course codes belonging to area, in file order.
func (c *Catalog) CodesInArea(area string) []string {
	var codes []string
	for _, code := range c.codes {
		if c.entries[code].Area == area {
			codes = append(codes, code)
		}
	}
	return codes
}

func (c *Catalog) Len() int {
	return len(c.codes)
}

// memo caches the last parsed catalog keyed by path and content hash, so
// repeated runs against an unchanged file skip the re-parse. A changed
// hash invalidates the entry.
var memo struct {
	sync.Mutex
	path string
	hash [sha256.Size]byte
	cat  *Catalog
}

// Load reads the catalog CSV at path. The header must carry the columns
// Abbreviation, Area, Course Name and Sections; the Sections field is
// comma-separated. Load failures are fatal to the caller's pipeline and
// returned immediately, never retried.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	sum := sha256.Sum256(data)

	memo.Lock()
	defer memo.Unlock()
	if memo.cat != nil && memo.path == path && memo.hash == sum {
		return memo.cat, nil
	}

	cat, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	memo.path = path
	memo.hash = sum
	memo.cat = cat
	return cat, nil
}

func parse(data []byte) (*Catalog, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty catalog")
	}

	col := make(map[string]int)
	for i, name := range records[0] {
		col[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"Abbreviation", "Area", "Course Name", "Sections"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}

	cat := &Catalog{entries: make(map[string]Entry)}
	for _, rec := range records[1:] {
		code := strings.TrimSpace(rec[col["Abbreviation"]])
		if code == "" {
			continue
		}
		var sections []string
		for _, s := range strings.Split(rec[col["Sections"]], ",") {
			if s = strings.TrimSpace(s); s != "" {
				sections = append(sections, s)
			}
		}
		if _, dup := cat.entries[code]; !dup {
			cat.codes = append(cat.codes, code)
		}
		cat.entries[code] = Entry{
			FullName: strings.TrimSpace(rec[col["Course Name"]]),
			Area:     strings.TrimSpace(rec[col["Area"]]),
			Sections: sections,
		}
	}
	return cat, nil
}
