package schedule

import (
	"errors"
	"testing"
	"time"

	"child-immunization-tracker/internal/domain/catalog"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}

func TestGenerate_OneEventPerDefinitionInCatalogOrder(t *testing.T) {
	c := catalog.Default()
	dob := mustDate(t, "2024-01-01")

	events := Generate(c, dob)
	if len(events) != len(c) {
		t.Fatalf("expected %d events, got %d", len(c), len(events))
	}

	for i, v := range c {
		e := events[i]
		if e.Name != v.Name {
			t.Fatalf("event %d: expected %q, got %q", i, v.Name, e.Name)
		}
		want := dob.AddDate(0, 0, v.OffsetDays)
		if !e.DueDate.Equal(want) {
			t.Fatalf("%s: expected due %s, got %s", v.Name, FormatDate(want), FormatDate(e.DueDate))
		}
		if e.Status != StatusDue {
			t.Fatalf("%s: expected status Due, got %s", v.Name, e.Status)
		}
		if e.GivenDate != nil {
			t.Fatalf("%s: expected no given date", v.Name)
		}
	}
}

func TestGenerate_KnownDueDates(t *testing.T) {
	events := Generate(catalog.Default(), mustDate(t, "2024-01-01"))

	byName := map[string]Event{}
	for _, e := range events {
		byName[e.Name] = e
	}

	cases := map[string]string{
		"BCG":             "2024-01-01",
		"Pentavalent - 1": "2024-02-12",
		"Pentavalent - 2": "2024-03-11",
		"MMR - 1":         "2024-09-27",
		"Td-TT":           "2033-12-29",
	}
	for name, want := range cases {
		got := FormatDate(byName[name].DueDate)
		if got != want {
			t.Fatalf("%s: expected %s, got %s", name, want, got)
		}
	}
}

func TestGenerate_IgnoresTimeOfDay(t *testing.T) {
	c := catalog.Catalog{{Name: "X", OffsetDays: 1}}
	loc := time.FixedZone("UTC-5", -5*3600)

	events := Generate(c, time.Date(2024, 3, 10, 23, 30, 0, 0, loc))
	if got := FormatDate(events[0].DueDate); got != "2024-03-11" {
		t.Fatalf("expected 2024-03-11, got %s", got)
	}
}

func TestGenerate_EmptyCatalog(t *testing.T) {
	if got := Generate(nil, mustDate(t, "2024-01-01")); len(got) != 0 {
		t.Fatalf("expected no events, got %d", len(got))
	}
}

func TestGenerateFromString_RejectsInvalidDOB(t *testing.T) {
	for _, in := range []string{"", "01/01/2024", "2024-13-01", "2024-02-30", "tomorrow"} {
		_, err := GenerateFromString(catalog.Default(), in)
		if !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("%q: expected ErrInvalidDate, got %v", in, err)
		}
	}
}

func TestGenerateFromString_TrimsInput(t *testing.T) {
	events, err := GenerateFromString(catalog.Default(), " 2024-01-01 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if FormatDate(events[0].DueDate) != "2024-01-01" {
		t.Fatalf("unexpected due date %s", FormatDate(events[0].DueDate))
	}
}
