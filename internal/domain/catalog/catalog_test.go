package catalog

import "testing"

func TestDefault_NamesAreUnique(t *testing.T) {
	seen := map[string]struct{}{}
	for _, v := range Default() {
		if _, ok := seen[v.Name]; ok {
			t.Fatalf("duplicate vaccine name %q", v.Name)
		}
		seen[v.Name] = struct{}{}
	}
	if len(seen) != 21 {
		t.Fatalf("expected 21 vaccines, got %d", len(seen))
	}
}

func TestDefault_OffsetsAreNonNegative(t *testing.T) {
	for _, v := range Default() {
		if v.OffsetDays < 0 || v.MinGapDays < 0 {
			t.Fatalf("%s: negative offset/gap (%d/%d)", v.Name, v.OffsetDays, v.MinGapDays)
		}
	}
}

func TestDefault_ReturnsCopy(t *testing.T) {
	a := Default()
	a[0].Name = "mutated"

	b := Default()
	if b[0].Name != "BCG" {
		t.Fatalf("expected fresh copy, got %q", b[0].Name)
	}
}

func TestCatalog_LookupAndIndex(t *testing.T) {
	c := Default()

	v, ok := c.Lookup("Pentavalent - 1")
	if !ok {
		t.Fatalf("expected Pentavalent - 1 in catalog")
	}
	if v.OffsetDays != 42 || v.MinGapDays != 28 {
		t.Fatalf("unexpected definition %#v", v)
	}

	if _, ok := c.Lookup("Unknown"); ok {
		t.Fatalf("expected lookup miss")
	}

	if i := c.Index("BCG"); i != 0 {
		t.Fatalf("expected BCG at 0, got %d", i)
	}
	if i := c.Index("Td-TT"); i != len(c)-1 {
		t.Fatalf("expected Td-TT last, got %d", i)
	}
	if i := c.Index("nope"); i != -1 {
		t.Fatalf("expected -1, got %d", i)
	}

	names := c.Names()
	if len(names) != len(c) || names[3] != "Pentavalent - 1" {
		t.Fatalf("unexpected names %v", names)
	}
}
