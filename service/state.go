package service

import (
	"context"
	"encoding/json"
	"errors"

	"golang.org/x/xerrors"
	"gorm.io/gorm"

	"github.com/ipfs-force-community/sophon-filsnap/config"
	"github.com/ipfs-force-community/sophon-filsnap/log"
	"github.com/ipfs-force-community/sophon-filsnap/metrics"
	"github.com/ipfs-force-community/sophon-filsnap/models/repo"
	"github.com/ipfs-force-community/sophon-filsnap/schema"
	"github.com/ipfs-force-community/sophon-filsnap/types"
)

// HostStore is the single state cell the host keeps for the snap. Get returns
// nil when nothing was written yet.
type HostStore interface {
	Get(ctx context.Context) ([]byte, error)
	Update(ctx context.Context, state []byte) error
}

var _ HostStore = (*RepoStore)(nil)

// RepoStore serves the state cell of one snap id out of a StateRepo.
type RepoStore struct {
	id   string
	repo repo.StateRepo
}

func NewRepoStore(id string, stateRepo repo.StateRepo) *RepoStore {
	return &RepoStore{id: id, repo: stateRepo}
}

func (rs *RepoStore) Get(_ context.Context) ([]byte, error) {
	state, err := rs.repo.GetState(rs.id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return state, nil
}

func (rs *RepoStore) Update(_ context.Context, state []byte) error {
	return rs.repo.SaveState(rs.id, state)
}

var persistedStateSchema = schema.MustReflect(&types.PersistedState{})

// StateStore reads and writes the whole snap state, callers do their own
// read-modify-write.
type StateStore struct {
	host HostStore
	log  *log.Logger
}

func NewStateStore(host HostStore, logger *log.Logger) *StateStore {
	return &StateStore{host: host, log: logger}
}

// ReadState returns the stored state. A missing or invalid value is replaced
// by the initial state, which is written back and returned.
func (ss *StateStore) ReadState(ctx context.Context) (*types.PersistedState, error) {
	raw, err := ss.host.Get(ctx)
	if err != nil {
		return nil, xerrors.Errorf("get state: %w", err)
	}

	var state types.PersistedState
	verr := persistedStateSchema.Parse(raw, &state)
	if verr == nil {
		return &state, nil
	}

	// first run and corrupted state end up here alike, whatever was stored is lost
	if len(raw) != 0 {
		ss.log.Warnf("stored state is invalid, reset to initial state: %v", verr)
		metrics.RecordStateReset(ctx)
	}
	initial := config.InitialState()
	if err := ss.WriteState(ctx, initial); err != nil {
		return nil, err
	}
	return initial, nil
}

// WriteState replaces the stored state.
func (ss *StateStore) WriteState(ctx context.Context, state *types.PersistedState) error {
	if state.Filecoin.Messages == nil {
		state.Filecoin.Messages = []types.MessageStatus{}
	}
	raw, err := json.Marshal(state)
	if err != nil {
		return xerrors.Errorf("marshal state: %w", err)
	}
	if err := ss.host.Update(ctx, raw); err != nil {
		return xerrors.Errorf("update state: %w", err)
	}
	return nil
}

// UpdateMessage replaces the stored status with the same cid in place, or
// appends status when its cid is new.
func (ss *StateStore) UpdateMessage(ctx context.Context, status types.MessageStatus) error {
	state, err := ss.ReadState(ctx)
	if err != nil {
		return err
	}

	idx := -1
	for i, msg := range state.Filecoin.Messages {
		if msg.Cid == status.Cid {
			idx = i
			break
		}
	}
	if idx >= 0 {
		state.Filecoin.Messages[idx] = status
	} else {
		state.Filecoin.Messages = append(state.Filecoin.Messages, status)
	}

	return ss.WriteState(ctx, state)
}
