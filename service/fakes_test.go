package service

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/beka-birhanu/icare/domain"
	"github.com/beka-birhanu/icare/identity"
	"github.com/beka-birhanu/icare/infrastruture/draftstore"
	"github.com/beka-birhanu/icare/route"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type memoryPlayers struct {
	sync.Mutex
	byID map[uuid.UUID]*identity.Player
}

func newMemoryPlayers() *memoryPlayers {
	return &memoryPlayers{byID: map[uuid.UUID]*identity.Player{}}
}

func (m *memoryPlayers) Save(_ context.Context, p *identity.Player) error {
	m.Lock()
	defer m.Unlock()
	for _, existing := range m.byID {
		if existing.Name == p.Name {
			return identity.ErrPlayerNameTaken
		}
	}
	cp := *p
	m.byID[p.ID] = &cp
	return nil
}

func (m *memoryPlayers) ByID(_ context.Context, id uuid.UUID) (*identity.Player, error) {
	m.Lock()
	defer m.Unlock()
	p, ok := m.byID[id]
	if !ok {
		return nil, identity.ErrPlayerNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memoryPlayers) ByName(_ context.Context, name string) (*identity.Player, error) {
	m.Lock()
	defer m.Unlock()
	for _, p := range m.byID {
		if p.Name == name {
			cp := *p
			return &cp, nil
		}
	}
	return nil, identity.ErrPlayerNotFound
}

func (m *memoryPlayers) IncrementSolved(_ context.Context, id uuid.UUID) error {
	m.Lock()
	defer m.Unlock()
	p, ok := m.byID[id]
	if !ok {
		return identity.ErrPlayerNotFound
	}
	p.Solved++
	return nil
}

type memoryAttempts struct {
	sync.Mutex
	saved []*domain.Attempt
}

func (m *memoryAttempts) Save(_ context.Context, a *domain.Attempt) error {
	m.Lock()
	defer m.Unlock()
	m.saved = append(m.saved, a)
	return nil
}

func (m *memoryAttempts) ByPlayer(_ context.Context, playerID uuid.UUID, limit int64) ([]*domain.Attempt, error) {
	m.Lock()
	defer m.Unlock()
	var out []*domain.Attempt
	for _, a := range m.saved {
		if a.PlayerID == playerID {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SubmittedAt.After(out[j].SubmittedAt) })
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

type recordingVerdicts struct {
	verdicts []route.Verdict
}

func (r *recordingVerdicts) RecordVerdict(v route.Verdict, _ route.Steps) {
	r.verdicts = append(r.verdicts, v)
}

type memoryBoard struct {
	best map[uuid.UUID]int
}

func (m *memoryBoard) Submit(_ context.Context, playerID uuid.UUID, moves int) error {
	if best, ok := m.best[playerID]; !ok || moves < best {
		m.best[playerID] = moves
	}
	return nil
}

func (m *memoryBoard) Top(_ context.Context, n int64) ([]domain.Standing, error) {
	out := []domain.Standing{}
	for id, moves := range m.best {
		out = append(out, domain.Standing{PlayerID: id, Moves: moves})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Moves < out[j].Moves })
	if int64(len(out)) > n {
		out = out[:n]
	}
	return out, nil
}

type discardLogger struct{}

func (discardLogger) Info(string)    {}
func (discardLogger) Warning(string) {}
func (discardLogger) Error(string)   {}

func newDraftStore(t *testing.T) *draftstore.RedisDraftStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store, err := draftstore.NewRedisDraftStore(client, draftstore.Options{TTL: time.Hour})
	require.NoError(t, err)
	return store
}
