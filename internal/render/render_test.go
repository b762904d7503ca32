package render

import (
	"strings"
	"testing"

	"github.com/hfaheem/ttg/internal/schedule"
)

func sampleSchedule() []schedule.PersonalSession {
	return []schedule.PersonalSession{
		{
			Day:        "Monday",
			Date:       "21 Jul 2025",
			TimeSlot:   "8:00-9:15 am",
			CourseName: "Managing Financial Strategy",
			Area:       "Finance",
			Faculty:    "AB",
			Venue:      "C-402",
			Section:    "A",
		},
		{
			Day:        "Monday",
			Date:       "21 Jul 2025",
			TimeSlot:   "9:30-10:45 am",
			CourseName: "Strategic Marketing Management",
			Faculty:    "AP/PD",
			Venue:      "Lab 3",
			Section:    "Exc",
		},
		{
			Day:        "Tuesday",
			Date:       "22 Jul 2025",
			TimeSlot:   "8:00-9:15 am",
			CourseName: "unknown course (XYZ)",
			Faculty:    "CD",
			Venue:      "C-101",
			Section:    "B",
			Unknown:    true,
		},
	}
}

func TestTSVFieldOrder(t *testing.T) {
	var b strings.Builder
	TSV(&b, sampleSchedule())

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}

	fields := strings.Split(lines[0], "\t")
	want := []string{"Monday", "21 Jul 2025", "8:00-9:15 am", "Managing Financial Strategy", "AB", "C-402", "A"}
	if len(fields) != len(want) {
		t.Fatalf("got %d fields, want %d", len(fields), len(want))
	}
	for i := range want {
		if fields[i] != want[i] {
			t.Errorf("field %d = %q, want %q", i, fields[i], want[i])
		}
	}
}

func TestTableGroupsByDay(t *testing.T) {
	out := Table(sampleSchedule(), Options{})

	if strings.Count(out, "Monday") != 1 {
		t.Errorf("Monday header should appear once:\n%s", out)
	}
	if !strings.Contains(out, "Tuesday") {
		t.Errorf("missing Tuesday header:\n%s", out)
	}
	if !strings.Contains(out, "AP/PD") {
		t.Errorf("co-taught faculty missing:\n%s", out)
	}
	if !strings.Contains(out, "unknown course (XYZ)") {
		t.Errorf("unknown marker missing:\n%s", out)
	}
}

func TestTableEmpty(t *testing.T) {
	out := Table(nil, Options{})
	if !strings.Contains(out, "empty schedule") {
		t.Errorf("empty placeholder missing: %q", out)
	}
}
