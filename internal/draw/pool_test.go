package draw

import (
	"math"
	"math/rand"
	"testing"
)

func testCategories() []Category {
	return []Category{
		{ID: "i", Name: "I-Piece", Starting: 6},
		{ID: "o", Name: "O-Piece", Starting: 6},
		{ID: "t", Name: "T-Piece", Starting: 6},
		{ID: "s", Name: "S-Piece", Starting: 6},
		{ID: "z", Name: "Z-Piece", Starting: 6},
		{ID: "j", Name: "J-Piece", Starting: 6},
		{ID: "l", Name: "L-Piece", Starting: 6},
	}
}

func TestNewPoolFillsRemainingFromStarting(t *testing.T) {
	p := NewPool([]Category{
		{ID: "i", Starting: 4},
		{ID: "o", Starting: -3},
	})
	cats := p.Categories()
	if cats[0].Remaining != 4 || cats[0].Starting != 4 {
		t.Fatalf("expected i to start at 4/4, got %d/%d", cats[0].Remaining, cats[0].Starting)
	}
	if cats[1].Remaining != 0 || cats[1].Starting != 0 {
		t.Fatalf("expected negative starting count clamped to 0, got %d/%d", cats[1].Remaining, cats[1].Starting)
	}
}

func TestDrawDecrementsExactlyOne(t *testing.T) {
	p := NewPool(testCategories())
	r := rand.New(rand.NewSource(42))

	before := p.TotalRemaining()
	picked, ok := p.Draw(r)
	if !ok {
		t.Fatalf("expected a pick from a full pool")
	}
	if p.TotalRemaining() != before-1 {
		t.Fatalf("expected total to drop by 1, got %d -> %d", before, p.TotalRemaining())
	}
	for _, c := range p.Categories() {
		want := 6
		if c.ID == picked.ID {
			want = 5
		}
		if c.Remaining != want {
			t.Fatalf("category %s: expected remaining %d, got %d", c.ID, want, c.Remaining)
		}
	}
}

func TestDrawNeverGoesNegativeAndExhausts(t *testing.T) {
	p := NewPool(testCategories())
	r := rand.New(rand.NewSource(7))

	total := p.TotalRemaining()
	for i := 0; i < total; i++ {
		if _, ok := p.Draw(r); !ok {
			t.Fatalf("expected pick %d of %d to succeed", i+1, total)
		}
		for _, c := range p.Categories() {
			if c.Remaining < 0 {
				t.Fatalf("category %s went negative", c.ID)
			}
		}
	}
	if p.TotalRemaining() != 0 {
		t.Fatalf("expected exhausted pool, total %d", p.TotalRemaining())
	}

	// Further draws are no-ops that alter nothing.
	snapshot := p.Categories()
	if _, ok := p.Draw(r); ok {
		t.Fatalf("expected no pick from an exhausted pool")
	}
	after := p.Categories()
	for i := range snapshot {
		if snapshot[i] != after[i] {
			t.Fatalf("exhausted draw mutated category %s", after[i].ID)
		}
	}
}

func TestDrawWeightedFairness(t *testing.T) {
	// Heavily skewed pool; frequencies over many one-draw trials must track
	// remaining/total within a loose tolerance on a fixed seed.
	r := rand.New(rand.NewSource(1234))
	counts := map[string]int{}
	const trials = 20000
	for i := 0; i < trials; i++ {
		p := NewPool([]Category{
			{ID: "i", Starting: 8},
			{ID: "o", Starting: 1},
			{ID: "t", Starting: 1},
		})
		picked, ok := p.Draw(r)
		if !ok {
			t.Fatalf("trial %d: expected a pick", i)
		}
		counts[picked.ID]++
	}
	expect := map[string]float64{"i": 0.8, "o": 0.1, "t": 0.1}
	for id, want := range expect {
		got := float64(counts[id]) / trials
		if math.Abs(got-want) > 0.02 {
			t.Fatalf("category %s: expected frequency near %.2f, got %.4f", id, want, got)
		}
	}
}

func TestDrawSkipsDepletedCategories(t *testing.T) {
	p := NewPool([]Category{
		{ID: "i", Starting: 0},
		{ID: "o", Starting: 3},
		{ID: "t", Starting: 0},
	})
	r := rand.New(rand.NewSource(9))
	for i := 0; i < 3; i++ {
		picked, ok := p.Draw(r)
		if !ok || picked.ID != "o" {
			t.Fatalf("expected o on draw %d, got %q ok=%v", i+1, picked.ID, ok)
		}
	}
}

func TestSingleRemaining(t *testing.T) {
	p := NewPool([]Category{
		{ID: "i", Starting: 0},
		{ID: "o", Starting: 2},
	})
	cat, ok := p.SingleRemaining()
	if !ok || cat.ID != "o" {
		t.Fatalf("expected single remaining o, got %q ok=%v", cat.ID, ok)
	}

	p = NewPool(testCategories())
	if _, ok := p.SingleRemaining(); ok {
		t.Fatalf("expected no single remaining with a full pool")
	}

	p = NewPool([]Category{{ID: "i", Starting: 0}})
	if _, ok := p.SingleRemaining(); ok {
		t.Fatalf("expected no single remaining with an empty pool")
	}
}

func TestResetIsIdempotent(t *testing.T) {
	p := NewPool(testCategories())
	r := rand.New(rand.NewSource(11))
	for i := 0; i < 10; i++ {
		p.Draw(r)
	}

	baseline := map[string]int{"i": 3, "o": 6, "t": 6, "s": 6, "z": 6, "j": 6, "l": 6}
	for i := 0; i < 3; i++ {
		p.Reset(baseline)
		for _, c := range p.Categories() {
			if c.Remaining != c.Starting {
				t.Fatalf("reset %d: category %s remaining %d != starting %d", i, c.ID, c.Remaining, c.Starting)
			}
			if c.Remaining != baseline[c.ID] {
				t.Fatalf("reset %d: category %s expected %d, got %d", i, c.ID, baseline[c.ID], c.Remaining)
			}
		}
	}
}

func TestResetKeepsPriorBaselineForMissingIDs(t *testing.T) {
	p := NewPool([]Category{
		{ID: "i", Starting: 6},
		{ID: "o", Starting: 4},
	})
	p.Reset(map[string]int{"i": 2})
	cats := p.Categories()
	if cats[0].Starting != 2 || cats[0].Remaining != 2 {
		t.Fatalf("expected i rebased to 2, got %d/%d", cats[0].Remaining, cats[0].Starting)
	}
	if cats[1].Starting != 4 || cats[1].Remaining != 4 {
		t.Fatalf("expected o to keep its baseline 4, got %d/%d", cats[1].Remaining, cats[1].Starting)
	}
}

func TestSetStartingCountRefillsLiveCount(t *testing.T) {
	p := NewPool([]Category{{ID: "i", Starting: 6}, {ID: "o", Starting: 6}})
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 5; i++ {
		p.Draw(r)
	}

	if !p.SetStartingCount("i", 9) {
		t.Fatalf("expected known id to be accepted")
	}
	for _, c := range p.Categories() {
		if c.ID == "i" && (c.Starting != 9 || c.Remaining != 9) {
			t.Fatalf("expected i refilled to 9/9, got %d/%d", c.Remaining, c.Starting)
		}
	}

	if p.SetStartingCount("stale", 5) {
		t.Fatalf("expected unknown id to be rejected")
	}
	if !p.SetStartingCount("o", -4) {
		t.Fatalf("expected negative edit to be accepted after coercion")
	}
	for _, c := range p.Categories() {
		if c.ID == "o" && (c.Starting != 0 || c.Remaining != 0) {
			t.Fatalf("expected negative edit coerced to 0, got %d/%d", c.Remaining, c.Starting)
		}
	}
}

func TestAvailableIDsPreservesPoolOrder(t *testing.T) {
	p := NewPool([]Category{
		{ID: "i", Starting: 1},
		{ID: "o", Starting: 0},
		{ID: "t", Starting: 2},
	})
	ids := p.AvailableIDs()
	if len(ids) != 2 || ids[0] != "i" || ids[1] != "t" {
		t.Fatalf("expected [i t], got %v", ids)
	}
}
