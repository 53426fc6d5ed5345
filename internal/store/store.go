// Package store persists the per-piece starting counts in a flat key-value
// JSON record file. The widget owns a single namespaced key; anything else in
// the file is left untouched. Every failure path degrades to built-in
// defaults or to in-memory-only configuration, never to an error the widget
// has to surface.
package store

import (
	"encoding/json"
	"os"
)

// ConfigKey is the record this widget reads and writes.
const ConfigKey = "tetris-block-randomizer.config.v1"

// DefaultFile is the record file used when no path is configured.
const DefaultFile = "tetris-block-randomizer-config.json"

// Entry is one persisted per-piece override. Unknown extra fields in the
// stored objects are tolerated and dropped on rewrite.
type Entry struct {
	ID      string `json:"id"`
	Initial int    `json:"initial"`
}

type Store struct {
	path string
}

func New(path string) *Store {
	if path == "" {
		path = DefaultFile
	}
	return &Store{path: path}
}

// Load reconciles the persisted record against the built-in defaults: a
// persisted entry overrides the default for its id when the value is a
// non-negative number; stale ids are dropped; built-in ordering is
// preserved. A missing, unreadable, or malformed record yields the defaults
// unchanged.
func (s *Store) Load(defaults []Entry) []Entry {
	out := append([]Entry(nil), defaults...)
	overrides := make(map[string]int)
	for _, e := range s.readRecord() {
		if e.ID == "" || e.Initial < 0 {
			continue
		}
		overrides[e.ID] = e.Initial
	}
	for i := range out {
		if v, ok := overrides[out[i].ID]; ok {
			out[i].Initial = v
		}
	}
	return out
}

// Save merges the given entries by id into the persisted record and writes
// it back. Entries already in the record but absent from the input are kept,
// so partial saves never clobber. The caller may ignore the returned error;
// a failed write just leaves this session in-memory-only.
func (s *Store) Save(entries []Entry) error {
	record := s.readRecord()
	index := make(map[string]int, len(record))
	for i, e := range record {
		index[e.ID] = i
	}
	for _, e := range entries {
		if e.ID == "" {
			continue
		}
		if e.Initial < 0 {
			e.Initial = 0
		}
		if i, ok := index[e.ID]; ok {
			record[i] = e
			continue
		}
		index[e.ID] = len(record)
		record = append(record, e)
	}

	flat := s.readFlat()
	value, err := json.Marshal(record)
	if err != nil {
		return err
	}
	flat[ConfigKey] = value
	data, err := json.MarshalIndent(flat, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// readFlat returns the whole key-value file, or a fresh map when the file is
// missing or unreadable.
func (s *Store) readFlat() map[string]json.RawMessage {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return map[string]json.RawMessage{}
	}
	var flat map[string]json.RawMessage
	if err := json.Unmarshal(data, &flat); err != nil || flat == nil {
		return map[string]json.RawMessage{}
	}
	return flat
}

// readRecord returns the stored entry list for this widget's key. Entries
// that do not decode individually are skipped so one junk object cannot
// poison the rest of the record.
func (s *Store) readRecord() []Entry {
	raw, ok := s.readFlat()[ConfigKey]
	if !ok {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	entries := make([]Entry, 0, len(items))
	for _, item := range items {
		var e Entry
		if err := json.Unmarshal(item, &e); err != nil {
			continue
		}
		entries = append(entries, e)
	}
	return entries
}
