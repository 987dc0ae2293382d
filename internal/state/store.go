// Package state owns the in-memory application state and the mutation rules
// that keep the journal in sync with the property list.
package state

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rentledger-dev/rentledger/internal/codec"
	"github.com/rentledger-dev/rentledger/internal/journal"
	"github.com/rentledger-dev/rentledger/internal/model"
)

// Store is the single owner of application state. It is not safe for
// concurrent use; all operations run on one goroutine in practice.
type Store struct {
	Properties []model.Property
	Entries    []model.JournalEntry
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// Find returns the property with the given ID.
func (s *Store) Find(propertyID string) (model.Property, bool) {
	for _, p := range s.Properties {
		if p.ID == propertyID {
			return p, true
		}
	}
	return model.Property{}, false
}

// Save inserts or replaces a property and refreshes its journal rows.
// Non-positive expenses are dropped before the record is stored. On edit,
// rows generated under the property's previous name are purged before the
// re-expansion is appended, so a rename does not strand old rows.
func (s *Store) Save(p model.Property) {
	var kept []model.Expense
	for _, e := range p.Expenses {
		if e.Amount.IsPositive() {
			kept = append(kept, e)
		}
	}
	p.Expenses = kept

	replaced := false
	for i, existing := range s.Properties {
		if existing.ID == p.ID {
			s.Entries = journal.PurgeClass(s.Entries, existing.Name)
			s.Properties[i] = p
			replaced = true
			break
		}
	}
	if !replaced {
		s.Properties = append(s.Properties, p)
	}

	s.Entries = append(s.Entries, journal.Expand(p)...)
}

// Delete removes a property by ID along with every journal row whose
// description mentions its name. Returns the removed property.
func (s *Store) Delete(propertyID string) (model.Property, bool) {
	for i, p := range s.Properties {
		if p.ID == propertyID {
			s.Properties = append(s.Properties[:i], s.Properties[i+1:]...)
			s.Entries = journal.PurgeMentions(s.Entries, p.Name)
			return p, true
		}
	}
	return model.Property{}, false
}

// Replace swaps in a whole new state, e.g. after an import. The journal is
// taken as given, not re-derived.
func (s *Store) Replace(state model.State) {
	s.Properties = state.Properties
	s.Entries = state.JournalEntries
}

// Rebuild regenerates the journal from the current property list.
func (s *Store) Rebuild() {
	s.Entries = journal.Rebuild(s.Properties)
}

// State returns the store contents as a value.
func (s *Store) State() model.State {
	return model.State{Properties: s.Properties, JournalEntries: s.Entries}
}

// Load reads a database file into a new store. A missing file is the normal
// first-run case and yields an empty store.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading database %s: %w", path, err)
	}

	state, err := codec.Import(data)
	if err != nil {
		return nil, fmt.Errorf("loading database %s: %w", path, err)
	}

	store := New()
	store.Replace(*state)
	return store, nil
}

// Write persists the store to a database file in the verbose export format.
func (s *Store) Write(path string) error {
	data, err := codec.Export(s.State())
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing database %s: %w", path, err)
	}
	return nil
}
