// Package store owns the authoritative set of expenses and keeps the backing
// CSV file in step with it: every mutation rewrites the whole file.
package store

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"fjacquet/expense-tracker/internal/fileutils"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/parsererror"

	"github.com/google/uuid"
)

// DefaultFile is the backing file used when none is configured.
const DefaultFile = "expenses.csv"

// ErrDuplicateID is returned by Add when the id is already present.
var ErrDuplicateID = errors.New("expense id already exists")

// ExpenseStore holds expenses in insertion order and persists them to a CSV file.
//
// All methods are safe for concurrent use. Mutations hold an exclusive lock
// across "mutate, then rewrite the file", readers share a read lock.
type ExpenseStore struct {
	mu           sync.RWMutex
	path         string
	legacyEscape bool
	logger       logging.Logger
	expenses     []models.Expense
}

// Option configures an ExpenseStore.
type Option func(*ExpenseStore)

// WithLogger sets the logger that receives load and save failures.
func WithLogger(logger logging.Logger) Option {
	return func(s *ExpenseStore) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithLegacyEscape switches to the legacy unquoted line format: commas of
// descriptions are written as semicolons and every semicolon is read back as
// a comma. A description that really contains a semicolon comes back with a
// comma.
func WithLegacyEscape(enabled bool) Option {
	return func(s *ExpenseStore) {
		s.legacyEscape = enabled
	}
}

// NewExpenseStore creates an empty store backed by path. Call Load to read
// existing data.
func NewExpenseStore(path string, opts ...Option) *ExpenseStore {
	if path == "" {
		path = DefaultFile
	}
	s := &ExpenseStore{
		path:     path,
		logger:   logging.NewLogrusAdapter("info", "text"),
		expenses: []models.Expense{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open creates a store for path and loads it.
func Open(path string, opts ...Option) (*ExpenseStore, error) {
	s := NewExpenseStore(path, opts...)
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the backing file.
func (s *ExpenseStore) Path() string {
	return s.path
}

// Load replaces the in-memory set with the content of the backing file.
//
// A missing file yields an empty store. Lines that cannot be decoded, and
// lines repeating an id seen earlier, are skipped and logged. Only a file
// that exists but cannot be read is an error.
func (s *ExpenseStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.logger.WithField(logging.FieldFile, s.path)

	file, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Info("No expense file found, starting empty")
			s.expenses = []models.Expense{}
			return nil
		}
		log.WithError(err).Error("Failed to open expense file")
		return fmt.Errorf("error opening expense file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	decoded, skipped, err := decode(file, s.legacyEscape)
	if err != nil {
		log.WithError(err).Error("Failed to read expense file")
		return err
	}

	for _, sk := range skipped {
		log.WithError(sk.Err).Warn("Skipping malformed expense line",
			logging.F(logging.FieldLine, sk.Line))
	}

	seen := make(map[uuid.UUID]bool, len(decoded))
	expenses := make([]models.Expense, 0, len(decoded))
	for _, e := range decoded {
		if seen[e.ID] {
			log.Warn("Skipping expense with duplicate id",
				logging.F(logging.FieldExpenseID, e.ID.String()))
			continue
		}
		seen[e.ID] = true
		if err := e.Validate(); err != nil {
			log.WithError(err).Warn("Loaded expense violates record rules",
				logging.F(logging.FieldExpenseID, e.ID.String()))
		}
		expenses = append(expenses, e)
	}
	s.expenses = expenses

	log.Info("Loaded expenses",
		logging.F(logging.FieldCount, len(expenses)),
		logging.F(logging.FieldSkipped, len(decoded)-len(expenses)+len(skipped)))
	return nil
}

// Save rewrites the backing file from the in-memory set.
func (s *ExpenseStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

// saveLocked rewrites the file; s.mu must be held. Failures are logged and
// returned as *parsererror.SaveError; the in-memory set is left as is.
func (s *ExpenseStore) saveLocked() error {
	data, err := encode(s.expenses, s.legacyEscape)
	if err == nil {
		err = fileutils.WriteFileAtomic(s.path, data, fileutils.DefaultFilePerm)
	}
	if err != nil {
		s.logger.WithError(err).Error("Failed to save expenses",
			logging.F(logging.FieldFile, s.path))
		return &parsererror.SaveError{Path: s.path, Err: err}
	}

	s.logger.Debug("Saved expenses",
		logging.F(logging.FieldFile, s.path),
		logging.F(logging.FieldCount, len(s.expenses)))
	return nil
}

// Add appends e and saves. The caller supplies e.ID, normally from
// models.NewExpense. If the save fails e stays in memory and the returned
// error wraps *parsererror.SaveError.
func (s *ExpenseStore) Add(e models.Expense) error {
	if err := e.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexLocked(e.ID) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateID, e.ID)
	}
	s.expenses = append(s.expenses, e)
	return s.saveLocked()
}

// GetAll returns a copy of all expenses in insertion order.
func (s *ExpenseStore) GetAll() []models.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Expense, len(s.expenses))
	copy(out, s.expenses)
	return out
}

// GetByID returns the expense with id, and false when there is none.
func (s *ExpenseStore) GetByID(id uuid.UUID) (models.Expense, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexLocked(id)
	if i < 0 {
		return models.Expense{}, false
	}
	return s.expenses[i], true
}

// Len returns the number of expenses.
func (s *ExpenseStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.expenses)
}

// Update overwrites date, category, description and amount of the stored
// expense with e.ID and saves. An unknown id is a no-op: nothing is written
// and false is returned with a nil error.
func (s *ExpenseStore) Update(e models.Expense) (bool, error) {
	if err := e.Validate(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(e.ID)
	if i < 0 {
		s.logger.Debug("Update of unknown expense ignored",
			logging.F(logging.FieldExpenseID, e.ID.String()))
		return false, nil
	}
	s.expenses[i] = s.expenses[i].WithInput(e.Input())
	return true, s.saveLocked()
}

// Delete removes the expense with id, if any, and saves either way.
// It reports whether something was removed.
func (s *ExpenseStore) Delete(id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := false
	if i := s.indexLocked(id); i >= 0 {
		s.expenses = append(s.expenses[:i], s.expenses[i+1:]...)
		removed = true
	}
	return removed, s.saveLocked()
}

func (s *ExpenseStore) indexLocked(id uuid.UUID) int {
	for i := range s.expenses {
		if s.expenses[i].ID == id {
			return i
		}
	}
	return -1
}
