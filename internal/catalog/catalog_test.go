package catalog

import "testing"

func TestBuiltinHasSevenUniquePieces(t *testing.T) {
	pieces := Builtin()
	if len(pieces) != 7 {
		t.Fatalf("expected 7 tetromino pieces, got %d", len(pieces))
	}
	seen := map[string]bool{}
	for _, p := range pieces {
		if p.ID == "" {
			t.Fatalf("piece with empty id: %+v", p)
		}
		if seen[p.ID] {
			t.Fatalf("duplicate piece id %q", p.ID)
		}
		seen[p.ID] = true
		if p.Name == "" || p.Image == "" {
			t.Fatalf("piece %s missing display data: %+v", p.ID, p)
		}
		if p.DefaultCount < 0 {
			t.Fatalf("piece %s has negative default count %d", p.ID, p.DefaultCount)
		}
	}
}

func TestBuiltinReturnsACopy(t *testing.T) {
	a := Builtin()
	a[0].DefaultCount = 999
	b := Builtin()
	if b[0].DefaultCount == 999 {
		t.Fatalf("Builtin exposed shared backing storage")
	}
}

func TestParseRejectsBadDocuments(t *testing.T) {
	cases := map[string]string{
		"not yaml":     "{{{",
		"empty":        "pieces: []",
		"blank id":     "pieces:\n  - id: \"  \"\n",
		"duplicate id": "pieces:\n  - id: i\n  - id: i\n",
		"negative":     "pieces:\n  - id: i\n    default_count: -1\n",
	}
	for name, doc := range cases {
		if _, err := parse([]byte(doc)); err == nil {
			t.Fatalf("%s: expected parse error", name)
		}
	}
}

func TestParseDefaultsNameFromID(t *testing.T) {
	pieces, err := parse([]byte("pieces:\n  - id: i\n    default_count: 3\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if pieces[0].Name != "I" {
		t.Fatalf("expected name defaulted from id, got %q", pieces[0].Name)
	}
}
