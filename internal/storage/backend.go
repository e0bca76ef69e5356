package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sandeepkv93/vaultos/internal/model"
)

var (
	ErrNotFound    = errors.New("storage: not found")
	ErrPersistence = errors.New("storage: persistence failed")
)

// LocalStateKey is the versioned key the local backends store the document under.
const LocalStateKey = "vaultOSState_v2.6"

// StateBackend persists the whole AppState document. Save always overwrites
// the previous value; Load returns ErrNotFound when nothing was saved yet.
type StateBackend interface {
	Name() string
	Load(ctx context.Context) (model.AppState, error)
	Save(ctx context.Context, state model.AppState) error
}

func encodeState(state model.AppState) ([]byte, error) {
	normalized := state.Clone()
	payload, err := json.Marshal(normalized)
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return payload, nil
}

func decodeState(raw []byte) (model.AppState, error) {
	var state model.AppState
	if err := json.Unmarshal(raw, &state); err != nil {
		return model.AppState{}, fmt.Errorf("decode state: %w", err)
	}
	return state.Clone(), nil
}
