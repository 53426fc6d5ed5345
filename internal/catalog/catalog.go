// Package catalog declares the authoritative built-in piece list. The
// persisted configuration only overrides starting counts; the id set and
// display order always come from here.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed pieces.yaml
var builtinYAML []byte

// Piece is one built-in block category.
type Piece struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	Image        string `yaml:"image"`
	Color        string `yaml:"color"`
	DefaultCount int    `yaml:"default_count"`
}

type document struct {
	FormatVersion int     `yaml:"format_version"`
	Pieces        []Piece `yaml:"pieces"`
}

var (
	once    sync.Once
	pieces  []Piece
	loadErr error
)

// Builtin returns the fixed piece list in display order. The embedded
// document is validated once; a broken build asset is a programmer error and
// panics rather than limping along with an empty widget.
func Builtin() []Piece {
	once.Do(func() {
		pieces, loadErr = parse(builtinYAML)
	})
	if loadErr != nil {
		panic("catalog: embedded piece list invalid: " + loadErr.Error())
	}
	return append([]Piece(nil), pieces...)
}

func parse(data []byte) ([]Piece, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Pieces) == 0 {
		return nil, fmt.Errorf("no pieces declared")
	}
	seen := make(map[string]bool, len(doc.Pieces))
	for i := range doc.Pieces {
		p := &doc.Pieces[i]
		p.ID = strings.TrimSpace(p.ID)
		if p.ID == "" {
			return nil, fmt.Errorf("piece %d: empty id", i)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("piece %d: duplicate id %q", i, p.ID)
		}
		seen[p.ID] = true
		if strings.TrimSpace(p.Name) == "" {
			p.Name = strings.ToUpper(p.ID)
		}
		if p.DefaultCount < 0 {
			return nil, fmt.Errorf("piece %q: negative default count %d", p.ID, p.DefaultCount)
		}
	}
	return doc.Pieces, nil
}
