package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Strum355/log"
)

// Assignment is one user's study-room slot and whether they have booked it
// on the sheet yet.
type Assignment struct {
	Time   string `json:"time"`
	Booked bool   `json:"booked"`
}

// Store is the JSON-file-backed map of user ID to assignment. Reads and
// writes are whole-file; there is no locking, so two simultaneous writers
// race and the last write wins. Fine for a handful of users, known
// limitation otherwise.
type Store struct {
	path string
}

// New returns a store backed by the file at path. The file is created on
// first write.
func New(path string) *Store {
	return &Store{path: path}
}

// Assignments loads every assignment. A missing or empty file is an empty
// store; corrupt content is logged and treated as empty rather than
// propagated.
func (s *Store) Assignments() (map[string]Assignment, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return map[string]Assignment{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading assignment store: %w", err)
	}
	if len(raw) == 0 {
		return map[string]Assignment{}, nil
	}
	assignments := map[string]Assignment{}
	if err := json.Unmarshal(raw, &assignments); err != nil {
		log.WithFields(log.Fields{
			"path": s.path,
		}).WithError(err).Error("Assignment store is corrupt, starting from empty")
		return map[string]Assignment{}, nil
	}
	return assignments, nil
}

// AssignSlot records a slot for the user, replacing any previous assignment
// and resetting the booked flag.
func (s *Store) AssignSlot(userID, timeLabel string) error {
	assignments, err := s.Assignments()
	if err != nil {
		return err
	}
	assignments[userID] = Assignment{Time: timeLabel, Booked: false}
	return s.save(assignments)
}

// MarkBooked flips the user's booked flag, leaving their slot alone. Returns
// false if the user has no assignment.
func (s *Store) MarkBooked(userID string) (bool, error) {
	assignments, err := s.Assignments()
	if err != nil {
		return false, err
	}
	assignment, ok := assignments[userID]
	if !ok {
		return false, nil
	}
	assignment.Booked = true
	assignments[userID] = assignment
	return true, s.save(assignments)
}

func (s *Store) save(assignments map[string]Assignment) error {
	raw, err := json.MarshalIndent(assignments, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding assignment store: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0644); err != nil {
		return fmt.Errorf("writing assignment store: %w", err)
	}
	return nil
}
