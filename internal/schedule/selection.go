package schedule

import (
	"fmt"
	"sort"
	"strings"
)

// SelectionKey identifies one enrolled course-section pair.
type SelectionKey struct {
	CourseCode string
	Section    string
}

// Selection is the student's chosen set of course-section pairs.
type Selection map[SelectionKey]struct{}

func (s Selection) Add(code, section string) {
	s[SelectionKey{CourseCode: code, Section: section}] = struct{}{}
}

func (s Selection) Remove(code, section string) {
	delete(s, SelectionKey{CourseCode: code, Section: section})
}

func (s Selection) Contains(code, section string) bool {
	_, ok := s[SelectionKey{CourseCode: code, Section: section}]
	return ok
}

// Keys returns the selection in deterministic order.
func (s Selection) Keys() []SelectionKey {
	keys := make([]SelectionKey, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].CourseCode != keys[j].CourseCode {
			return keys[i].CourseCode < keys[j].CourseCode
		}
		return keys[i].Section < keys[j].Section
	})
	return keys
}

// ParseSelection decodes the --select flag form "CODE:SEC,CODE:SEC".
func ParseSelection(expr string) (Selection, error) {
	sel := make(Selection)
	if strings.TrimSpace(expr) == "" {
		return sel, nil
	}
	for _, pair := range strings.Split(expr, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		code, section, ok := strings.Cut(pair, ":")
		code = strings.TrimSpace(code)
		section = strings.TrimSpace(section)
		if !ok || code == "" || section == "" {
			return nil, fmt.Errorf("bad selection %q: want CODE:SECTION", pair)
		}
		sel.Add(code, section)
	}
	return sel, nil
}
