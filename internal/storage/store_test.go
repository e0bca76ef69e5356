package storage

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sandeepkv93/vaultos/internal/model"
	"github.com/stretchr/testify/require"
)

type memoryBackend struct {
	mu      sync.Mutex
	doc     *model.AppState
	loadErr error
	saveErr error
	saves   int
}

func (m *memoryBackend) Name() string { return "memory" }

func (m *memoryBackend) Load(context.Context) (model.AppState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return model.AppState{}, m.loadErr
	}
	if m.doc == nil {
		return model.AppState{}, ErrNotFound
	}
	return m.doc.Clone(), nil
}

func (m *memoryBackend) Save(_ context.Context, state model.AppState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	c := state.Clone()
	m.doc = &c
	m.saves++
	return nil
}

func TestStoreLoadSynthesizesAndPersistsDefault(t *testing.T) {
	backend := &memoryBackend{}
	store := NewStore(backend, nil)

	state, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, model.DefaultState(), state)
	require.Equal(t, 1, backend.saves)
	require.NotNil(t, backend.doc)
}

func TestStoreLoadFailureFallsBackToDefault(t *testing.T) {
	backend := &memoryBackend{loadErr: errors.New("connection refused")}
	store := NewStore(backend, nil)

	state, err := store.Load(context.Background())
	require.ErrorIs(t, err, ErrPersistence)
	require.Equal(t, model.DefaultState(), state)

	// Mutations keep working after a failed load.
	backend.loadErr = nil
	_, err = store.Mutate(context.Background(), func(s *model.AppState) error { return s.SetTask("1", true) })
	require.NoError(t, err)
	require.True(t, backend.doc.Tasks["1"])
}

func TestStoreSaveAfterLoadIsIdempotent(t *testing.T) {
	persisted := model.DefaultState()
	persisted.Tasks["2"] = true
	require.NoError(t, persisted.Record(model.LogParking, model.LogEntry{ID: "x", Idea: "nft", Decision: model.TagDiscarded, Timestamp: "ts"}))
	backend := &memoryBackend{doc: &persisted}
	store := NewStore(backend, nil)

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background()))

	if diff := cmp.Diff(loaded, *backend.doc); diff != "" {
		t.Fatalf("save(load()) changed the document (-loaded +saved):\n%s", diff)
	}
}

func TestStoreLoadInitializesMissingTaskIDs(t *testing.T) {
	partial := model.AppState{Tasks: map[string]bool{"1": true}}
	store := NewStore(&memoryBackend{doc: &partial}, nil)

	state, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, map[string]bool{"1": true, "2": false, "3": false, "4": false}, state.Tasks)
	require.NotNil(t, state.DecisionLog)
}

func TestStoreMutateErrorLeavesStateUnchanged(t *testing.T) {
	backend := &memoryBackend{}
	store := NewStore(backend, nil)
	_, err := store.Load(context.Background())
	require.NoError(t, err)
	before := store.Snapshot()

	boom := errors.New("rejected")
	_, err = store.Mutate(context.Background(), func(s *model.AppState) error {
		s.Tasks["1"] = true
		return boom
	})
	require.ErrorIs(t, err, boom)
	require.Equal(t, before, store.Snapshot())
	require.Equal(t, 1, backend.saves)
}

func TestStoreMutateSaveFailureKeepsChange(t *testing.T) {
	backend := &memoryBackend{}
	store := NewStore(backend, nil)
	_, err := store.Load(context.Background())
	require.NoError(t, err)

	backend.saveErr = errors.New("timeout")
	state, err := store.Mutate(context.Background(), func(s *model.AppState) error { return s.SetTask("4", true) })
	require.ErrorIs(t, err, ErrPersistence)
	require.True(t, state.Tasks["4"])
	require.True(t, store.Snapshot().Tasks["4"])
	require.False(t, backend.doc.Tasks["4"])
}

func TestStoreConcurrentMutationsAreSerialized(t *testing.T) {
	backend := &memoryBackend{}
	store := NewStore(backend, nil)
	_, err := store.Load(context.Background())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.Mutate(context.Background(), func(s *model.AppState) error {
				return s.Record(model.LogDecision, model.LogEntry{Idea: "idea", Decision: model.TagAdopted})
			})
		}()
	}
	wg.Wait()

	require.Len(t, store.Snapshot().DecisionLog, 20)
	require.Len(t, backend.doc.DecisionLog, 20)
}
