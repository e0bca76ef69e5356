package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sandeepkv93/vaultos/internal/model"
	"go.uber.org/zap"
)

// Store owns the live AppState. Every read goes through Snapshot and every
// write through Mutate, which persists the full document afterwards.
type Store struct {
	mu      sync.Mutex
	backend StateBackend
	taskIDs []string
	state   model.AppState
	logger  *zap.Logger
}

func NewStore(backend StateBackend, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		backend: backend,
		taskIDs: model.DefaultTaskIDs,
		state:   model.DefaultState(),
		logger:  logger.Named("store"),
	}
}

func (s *Store) BackendName() string {
	return s.backend.Name()
}

func (s *Store) TaskIDs() []string {
	return append([]string(nil), s.taskIDs...)
}

// Load replaces the in-memory state with the persisted one. A missing document
// is created from the default state. A backend failure leaves the default state
// in place and is returned wrapped in ErrPersistence.
func (s *Store) Load(ctx context.Context) (model.AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loaded, err := s.backend.Load(ctx)
	switch {
	case errors.Is(err, ErrNotFound):
		s.state = model.DefaultState()
		s.state.EnsureTasks(s.taskIDs)
		s.logger.Info("no persisted state, writing default", zap.String("backend", s.backend.Name()))
		if saveErr := s.backend.Save(ctx, s.state); saveErr != nil {
			s.logger.Error("persist default state failed", zap.Error(saveErr))
			return s.state.Clone(), fmt.Errorf("%w: %w", ErrPersistence, saveErr)
		}
		return s.state.Clone(), nil
	case err != nil:
		s.state = model.DefaultState()
		s.logger.Error("load state failed, using default", zap.String("backend", s.backend.Name()), zap.Error(err))
		return s.state.Clone(), fmt.Errorf("%w: load: %w", ErrPersistence, err)
	}

	loaded.EnsureTasks(s.taskIDs)
	s.state = loaded
	s.logger.Debug("state loaded",
		zap.String("backend", s.backend.Name()),
		zap.Int("decisions", len(loaded.DecisionLog)),
		zap.Int("parked", len(loaded.ParkingLot)),
	)
	return s.state.Clone(), nil
}

func (s *Store) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(ctx)
}

func (s *Store) Snapshot() model.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Mutate applies fn to a copy of the state. If fn fails nothing changes. If
// the save fails the change is kept in memory and the error is returned.
func (s *Store) Mutate(ctx context.Context, fn func(*model.AppState) error) (model.AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	if err := fn(&next); err != nil {
		return s.state.Clone(), err
	}
	s.state = next
	if err := s.saveLocked(ctx); err != nil {
		return s.state.Clone(), err
	}
	return s.state.Clone(), nil
}

func (s *Store) saveLocked(ctx context.Context) error {
	if err := s.backend.Save(ctx, s.state); err != nil {
		s.logger.Error("save state failed", zap.String("backend", s.backend.Name()), zap.Error(err))
		return fmt.Errorf("%w: save: %w", ErrPersistence, err)
	}
	return nil
}
