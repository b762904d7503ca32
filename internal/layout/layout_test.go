package layout

import (
	"reflect"
	"testing"

	"github.com/hfaheem/ttg/internal/token"
)

type nameMap map[string]string

func (m nameMap) CourseName(code string) (string, bool) {
	name, ok := m[code]
	return name, ok
}

func TestLineResolverAssignsDayDateAndSlots(t *testing.T) {
	r := &LineResolver{Parser: token.NewParser(token.AlphaNumeric)}

	doc := Document{Lines: []string{
		"Mon 21 Jul 2025",
		"MFS-A(6)-AB {C-402}",
		"OB-B(2)-CD {C-101}",
		"Tue 22 Jul 2025",
		"MFS-A(7)-AB {C-402}",
	}}

	sessions := r.Resolve(doc)
	if len(sessions) != 3 {
		t.Fatalf("got %d sessions, want 3", len(sessions))
	}

	first := sessions[0]
	if first.Day != "Monday" {
		t.Errorf("day = %q, want Monday", first.Day)
	}
	if first.Date != "21 Jul 2025" {
		t.Errorf("date = %q, want 21 Jul 2025", first.Date)
	}
	if first.TimeSlot != SlotCatalog[0] {
		t.Errorf("slot = %q, want %q", first.TimeSlot, SlotCatalog[0])
	}

	if sessions[1].TimeSlot != SlotCatalog[1] {
		t.Errorf("second line slot = %q, want %q", sessions[1].TimeSlot, SlotCatalog[1])
	}

	// day marker resets the slot counter
	tue := sessions[2]
	if tue.Day != "Tuesday" || tue.TimeSlot != SlotCatalog[0] {
		t.Errorf("after day marker got day=%q slot=%q, want Tuesday %q", tue.Day, tue.TimeSlot, SlotCatalog[0])
	}
}

func TestLineResolverClampsOverflowRows(t *testing.T) {
	r := &LineResolver{Parser: token.NewParser(token.AlphaNumeric)}

	lines := []string{"Mon 21 Jul 2025"}
	for i := 0; i < 8; i++ {
		lines = append(lines, "MFS-A(1)-AB {C-402}")
	}

	sessions := r.Resolve(Document{Lines: lines})
	if len(sessions) != 8 {
		t.Fatalf("got %d sessions, want 8", len(sessions))
	}

	last := SlotCatalog[len(SlotCatalog)-1]
	if sessions[6].TimeSlot != last {
		t.Errorf("7th row slot = %q, want %q", sessions[6].TimeSlot, last)
	}
	if sessions[7].TimeSlot != last {
		t.Errorf("8th row must clamp to %q, got %q", last, sessions[7].TimeSlot)
	}
}

func TestLineResolverDropsUnorientedTokens(t *testing.T) {
	r := &LineResolver{Parser: token.NewParser(token.AlphaNumeric)}

	doc := Document{Lines: []string{
		"MFS-A(6)-AB {C-402}", // before any day marker
		"Mon 21 Jul 2025",
		"OB-B(2)-CD {C-101}",
	}}

	sessions := r.Resolve(doc)
	if len(sessions) != 1 {
		t.Fatalf("got %d sessions, want 1 (unoriented token dropped)", len(sessions))
	}
	if sessions[0].Token.CourseCode != "OB" {
		t.Errorf("kept token = %q, want OB", sessions[0].Token.CourseCode)
	}
}

func TestLineResolverSkipsTrivialLines(t *testing.T) {
	r := &LineResolver{Parser: token.NewParser(token.AlphaNumeric)}

	doc := Document{Lines: []string{
		"Mon 21 Jul 2025",
		"",
		"----",
		"MFS-A(6)-AB {C-402}",
	}}

	sessions := r.Resolve(doc)
	if len(sessions) != 1 {
		t.Fatalf("got %d sessions, want 1", len(sessions))
	}
	// blank and rule lines must not consume slots
	if sessions[0].TimeSlot != SlotCatalog[0] {
		t.Errorf("slot = %q, want %q", sessions[0].TimeSlot, SlotCatalog[0])
	}
}

func TestWordResolverSlotBuckets(t *testing.T) {
	r := &WordResolver{
		Parser: token.NewParser(token.AlphaNumeric),
		Names:  nameMap{"SMMT": "Strategic Marketing Management"},
	}

	doc := Document{Words: []Word{
		{X0: 10, Y0: 20, X1: 40, Y1: 30, Text: "Monday"},
		{X0: 140, Y0: 50, X1: 220, Y1: 60, Text: "SMMT-Exc(1)-AP/PD{Lab 3}"},
		{X0: 1000, Y0: 50, X1: 1080, Y1: 60, Text: "SMMT-Exc(2)-AP/PD{Lab 3}"},
	}}

	sessions := r.Resolve(doc)
	if len(sessions) != 2 {
		t.Fatalf("got %d sessions, want 2", len(sessions))
	}

	if sessions[0].TimeSlot != "9:30-10:45 am" {
		t.Errorf("x=140 slot = %q, want %q", sessions[0].TimeSlot, "9:30-10:45 am")
	}
	if sessions[1].TimeSlot != UnknownSlot {
		t.Errorf("x=1000 slot = %q, want %q", sessions[1].TimeSlot, UnknownSlot)
	}
	if sessions[0].CourseName != "Strategic Marketing Management" {
		t.Errorf("course name = %q", sessions[0].CourseName)
	}
	if sessions[0].Token.Faculty != "AP/PD" {
		t.Errorf("faculty = %q, want AP/PD", sessions[0].Token.Faculty)
	}
}

func TestWordResolverNameFallback(t *testing.T) {
	r := &WordResolver{
		Parser: token.NewParser(token.AlphaNumeric),
		Names:  nameMap{},
	}

	doc := Document{Words: []Word{
		{X0: 10, Text: "Mon"},
		{X0: 140, Text: "XYZ-A(1)-AB{C-1}"},
	}}

	sessions := r.Resolve(doc)
	if len(sessions) != 1 {
		t.Fatalf("got %d sessions, want 1", len(sessions))
	}
	if sessions[0].CourseName != "XYZ" {
		t.Errorf("fallback name = %q, want raw code XYZ", sessions[0].CourseName)
	}
}

func TestWordResolverDropsUnorientedAndStripsNewlines(t *testing.T) {
	r := &WordResolver{Parser: token.NewParser(token.AlphaNumeric), Names: nameMap{}}

	doc := Document{Words: []Word{
		{X0: 140, Text: "MFS-A(1)-AB{C-1}"}, // before any day word
		{X0: 10, Text: "wed"},
		{X0: 140, Text: "MFS-A(2)-\nAB{C-1}"},
	}}

	sessions := r.Resolve(doc)
	if len(sessions) != 1 {
		t.Fatalf("got %d sessions, want 1", len(sessions))
	}
	if sessions[0].Day != "Wednesday" {
		t.Errorf("day = %q, want Wednesday", sessions[0].Day)
	}
	if sessions[0].Token.SessionNum != 2 {
		t.Errorf("kept session = %d, want the newline-spanning token", sessions[0].Token.SessionNum)
	}
}

func TestWordResolverSortsByDayThenSlot(t *testing.T) {
	r := &WordResolver{Parser: token.NewParser(token.AlphaNumeric), Names: nameMap{}}

	doc := Document{Words: []Word{
		{X0: 10, Text: "Tue"},
		{X0: 330, Text: "AA-A(1)-AB{R1}"},
		{X0: 130, Text: "BB-A(1)-AB{R2}"},
		{X0: 10, Text: "Mon"},
		{X0: 230, Text: "CC-A(1)-AB{R3}"},
	}}

	sessions := r.Resolve(doc)
	if len(sessions) != 3 {
		t.Fatalf("got %d sessions, want 3", len(sessions))
	}

	var got []string
	for _, s := range sessions {
		got = append(got, s.Day+"/"+s.Token.CourseCode)
	}
	want := []string{"Monday/CC", "Tuesday/BB", "Tuesday/AA"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestFullDayName(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"Mon", "Monday", true},
		{"sun", "Sunday", true},
		{"Friday", "Friday", true},
		{"Funday", "", false},
	}
	for _, tc := range cases {
		got, ok := FullDayName(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("FullDayName(%q) = %q, %v; want %q, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestSlotCatalogShape(t *testing.T) {
	if len(SlotCatalog) != 7 {
		t.Fatalf("slot catalog has %d entries, want 7", len(SlotCatalog))
	}
	if len(slotColumns) != len(SlotCatalog) {
		t.Fatalf("column bounds (%d) out of step with catalog (%d)", len(slotColumns), len(SlotCatalog))
	}
	for i, c := range slotColumns {
		if c.label != SlotCatalog[i] {
			t.Errorf("column %d label %q != catalog %q", i, c.label, SlotCatalog[i])
		}
	}
}
