// Package persistence stores the last safe ground position of a character
// slot between runs, so a restarted host can respawn where the character
// last stood.
package persistence

import (
	"encoding/json"
	"fmt"

	"github.com/quasilyte/gdata"
)

// ItemStore is the subset of *gdata.Manager the store needs.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

type SafePoint struct {
	Level string  `json:"level"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

type Store struct {
	items ItemStore
}

// Open uses gdata's per-user storage for appName.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open persistence for %s: %w", appName, err)
	}
	return NewStore(m), nil
}

func NewStore(items ItemStore) *Store {
	return &Store{items: items}
}

func itemKey(slot string) string {
	return "safepoint_" + slot
}

// Load returns false when nothing was saved for slot.
func (s *Store) Load(slot string) (SafePoint, bool, error) {
	data, err := s.items.LoadItem(itemKey(slot))
	if err != nil {
		return SafePoint{}, false, fmt.Errorf("load safe point %s: %w", slot, err)
	}
	if len(data) == 0 {
		return SafePoint{}, false, nil
	}

	var p SafePoint
	if err := json.Unmarshal(data, &p); err != nil {
		return SafePoint{}, false, fmt.Errorf("parse safe point %s: %w", slot, err)
	}
	return p, true, nil
}

func (s *Store) Save(slot string, p SafePoint) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	if err := s.items.SaveItem(itemKey(slot), data); err != nil {
		return fmt.Errorf("save safe point %s: %w", slot, err)
	}
	return nil
}

// Clear saves empty data, which Load treats as absent.
func (s *Store) Clear(slot string) error {
	return s.items.SaveItem(itemKey(slot), nil)
}
