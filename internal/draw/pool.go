package draw

import "math/rand"

// Category is one drawable block kind. The set of categories is fixed at
// startup; only the counts change afterwards.
type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	Starting  int    `json:"starting"`
	Remaining int    `json:"remaining"`
}

// Pool holds the working counts for a session. It is the only place
// remaining counts are mutated.
type Pool struct {
	cats []Category
}

// NewPool copies the given categories and fills every remaining count from
// its starting count. Negative starting counts are clamped to zero.
func NewPool(cats []Category) *Pool {
	out := make([]Category, len(cats))
	copy(out, cats)
	for i := range out {
		if out[i].Starting < 0 {
			out[i].Starting = 0
		}
		out[i].Remaining = out[i].Starting
	}
	return &Pool{cats: out}
}

// Categories returns a copy of the pool in display order.
func (p *Pool) Categories() []Category {
	return append([]Category(nil), p.cats...)
}

// TotalRemaining recomputes the live sum on every call; it is never cached.
func (p *Pool) TotalRemaining() int {
	total := 0
	for i := range p.cats {
		total += p.cats[i].Remaining
	}
	return total
}

// AvailableIDs returns the ids with stock left, in pool order.
func (p *Pool) AvailableIDs() []string {
	ids := make([]string, 0, len(p.cats))
	for i := range p.cats {
		if p.cats[i].Remaining > 0 {
			ids = append(ids, p.cats[i].ID)
		}
	}
	return ids
}

// SingleRemaining reports the one category that still has stock, if and only
// if exactly one such category exists.
func (p *Pool) SingleRemaining() (Category, bool) {
	idx := -1
	for i := range p.cats {
		if p.cats[i].Remaining <= 0 {
			continue
		}
		if idx >= 0 {
			return Category{}, false
		}
		idx = i
	}
	if idx < 0 {
		return Category{}, false
	}
	return p.cats[idx], true
}

// Draw picks one category with probability proportional to its remaining
// count and decrements it. It reports false, with no state change, when the
// pool is exhausted.
func (p *Pool) Draw(r *rand.Rand) (Category, bool) {
	total := p.TotalRemaining()
	if total <= 0 {
		return Category{}, false
	}
	target := r.Intn(total)
	idx := -1
	running := 0
	for i := range p.cats {
		w := p.cats[i].Remaining
		if w <= 0 {
			continue
		}
		running += w
		if target < running {
			idx = i
			break
		}
	}
	if idx < 0 {
		// Unreachable with integer weights, but never let a bad roll pick
		// nothing: take the last category with stock.
		for i := len(p.cats) - 1; i >= 0; i-- {
			if p.cats[i].Remaining > 0 {
				idx = i
				break
			}
		}
	}
	if idx < 0 {
		return Category{}, false
	}
	if p.cats[idx].Remaining > 0 {
		p.cats[idx].Remaining--
	}
	return p.cats[idx], true
}

// Reset restores every category to its baseline starting count. Ids missing
// from the baseline keep their previous starting count.
func (p *Pool) Reset(baseline map[string]int) {
	for i := range p.cats {
		if v, ok := baseline[p.cats[i].ID]; ok {
			if v < 0 {
				v = 0
			}
			p.cats[i].Starting = v
		}
		p.cats[i].Remaining = p.cats[i].Starting
	}
}

// SetStartingCount updates a category's baseline and refills its remaining
// count to match. Changing a count mid-session intentionally redefines the
// live count too, not just the next-reset baseline.
func (p *Pool) SetStartingCount(id string, n int) bool {
	if n < 0 {
		n = 0
	}
	for i := range p.cats {
		if p.cats[i].ID != id {
			continue
		}
		p.cats[i].Starting = n
		p.cats[i].Remaining = n
		return true
	}
	return false
}
