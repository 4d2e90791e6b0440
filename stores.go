package portafolio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// Store is the sidecar persistence layer: a directory of small JSON files,
// each read fully, mutated in memory, and written back in full. One
// interactive session owns the directory, so there is no locking.
type Store struct {
	path string
}

// NewStore returns a store rooted at the given directory. The directory is
// created on first save, not here.
func NewStore(path string) *Store { return &Store{path: path} }

// Path returns the store's root directory.
func (s *Store) Path() string { return s.path }

// File names inside the store. The names are the ones the user's existing
// data files carry.
const (
	goalFile      = "meta.json"
	liabilityFile = "pasivos.json"
	riskFile      = "riesgos.json"
	assetFile     = "activos.json"
	expenseFile   = "gastos.json"
	historyFile   = "historial.json"
	portfolioFile = "portafolio.csv"
)

// loadJSON reads one sidecar file into v. A missing file is not an error:
// the caller's defaults stand and the user is warned once on the log.
func (s *Store) loadJSON(name string, v any) error {
	b, err := os.ReadFile(filepath.Join(s.path, name))
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("no %s yet, starting from defaults", name)
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not read %s: %w", name, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("could not decode %s: %w", name, err)
	}
	return nil
}

// saveJSON writes one sidecar file in full, creating the store directory if
// needed.
func (s *Store) saveJSON(name string, v any) error {
	if err := os.MkdirAll(s.path, 0755); err != nil {
		return fmt.Errorf("could not create store directory %q: %w", s.path, err)
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(s.path, name), append(b, '\n'), 0644); err != nil {
		return fmt.Errorf("could not write %s: %w", name, err)
	}
	return nil
}

// Goal returns the persisted goal parameters, or the defaults.
func (s *Store) Goal() (GoalParameters, error) {
	p := DefaultGoalParameters()
	err := s.loadJSON(goalFile, &p)
	return p, err
}

// SaveGoal persists the goal parameters.
func (s *Store) SaveGoal(p GoalParameters) error { return s.saveJSON(goalFile, p) }

// Liabilities returns the persisted liability list, empty by default.
func (s *Store) Liabilities() ([]LiabilityRecord, error) {
	var list []LiabilityRecord
	err := s.loadJSON(liabilityFile, &list)
	return list, err
}

// SaveLiabilities persists the liability list in full.
func (s *Store) SaveLiabilities(list []LiabilityRecord) error {
	return s.saveJSON(liabilityFile, list)
}

// DeleteLiability removes one liability by id and persists the rest.
func (s *Store) DeleteLiability(id string) error {
	list, err := s.Liabilities()
	if err != nil {
		return err
	}
	kept := list[:0]
	for _, l := range list {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	if len(kept) == len(list) {
		return fmt.Errorf("no liability with id %q", id)
	}
	return s.SaveLiabilities(kept)
}

// RiskLevels returns the persisted per-type risk levels, empty by default.
func (s *Store) RiskLevels() (RiskLevels, error) {
	levels := make(RiskLevels)
	err := s.loadJSON(riskFile, &levels)
	return levels, err
}

// SaveRiskLevels persists the risk level map.
func (s *Store) SaveRiskLevels(levels RiskLevels) error { return s.saveJSON(riskFile, levels) }

// Assets returns the persisted physical assets, empty by default.
func (s *Store) Assets() ([]PhysicalAsset, error) {
	var list []PhysicalAsset
	err := s.loadJSON(assetFile, &list)
	return list, err
}

// SaveAssets persists the physical asset registry in full.
func (s *Store) SaveAssets(list []PhysicalAsset) error { return s.saveJSON(assetFile, list) }

// Expenses returns the persisted expense book, empty by default.
func (s *Store) Expenses() (ExpenseBook, error) {
	book := ExpenseBook{Budgets: make(map[string]Money)}
	err := s.loadJSON(expenseFile, &book)
	if book.Budgets == nil {
		book.Budgets = make(map[string]Money)
	}
	return book, err
}

// SaveExpenses persists the expense book in full.
func (s *Store) SaveExpenses(book ExpenseBook) error { return s.saveJSON(expenseFile, book) }

// History returns the persisted capital history, empty by default.
func (s *Store) History() (CapitalHistory, error) {
	var h CapitalHistory
	err := s.loadJSON(historyFile, &h)
	return h, err
}

// SaveHistory persists the capital history in full.
func (s *Store) SaveHistory(h CapitalHistory) error { return s.saveJSON(historyFile, h) }

// Rows reads the portfolio table from the store's CSV snapshot. A missing
// file yields an empty portfolio with a warning, like the JSON stores.
func (s *Store) Rows() ([]InvestmentRow, error) {
	f, err := os.Open(filepath.Join(s.path, portfolioFile))
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("no %s yet, portfolio is empty", portfolioFile)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", portfolioFile, err)
	}
	defer f.Close()
	rows, err := ReadRows(f)
	if err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", portfolioFile, err)
	}
	return rows, nil
}

// SaveRows writes the portfolio table back as CSV, used by imports.
func (s *Store) SaveRows(rows []InvestmentRow) error {
	if err := os.MkdirAll(s.path, 0755); err != nil {
		return fmt.Errorf("could not create store directory %q: %w", s.path, err)
	}
	f, err := os.Create(filepath.Join(s.path, portfolioFile))
	if err != nil {
		return fmt.Errorf("could not create %s: %w", portfolioFile, err)
	}
	defer f.Close()
	return WriteRows(f, rows)
}
