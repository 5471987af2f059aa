// Package draftstore keeps players' proposal drafts in Redis.
package draftstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/icare/domain"
	"github.com/beka-birhanu/icare/route"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const (
	defaultPrefix     = "icare"
	defaultLockTries  = 32
	defaultLockExpiry = 5 * time.Second
	defaultRetryDelay = 20 * time.Millisecond

	draftKeyFmt = "%s:draft:%s"
)

// Options tunes the store. Zero values fall back to defaults.
type Options struct {
	Prefix     string        // Key prefix.
	TTL        time.Duration // Lifetime of an idle draft, zero keeps drafts forever.
	LockTries  int           // Attempts to take the draft lock before giving up.
	LockExpiry time.Duration // Lock lifetime if the holder dies.
	RetryDelay time.Duration // Pause between lock attempts.
}

// RedisDraftStore stores each draft as a JSON list of steps.
// Writers are serialized per draft with a redsync mutex.
type RedisDraftStore struct {
	client *redis.Client
	locker *redsync.Redsync
	opts   Options
}

// NewRedisDraftStore initializes a RedisDraftStore on top of client.
func NewRedisDraftStore(client *redis.Client, opts Options) (*RedisDraftStore, error) {
	if client == nil {
		return nil, errors.New("redis client is nil")
	}
	if opts.Prefix == "" {
		opts.Prefix = defaultPrefix
	}
	if opts.LockTries <= 0 {
		opts.LockTries = defaultLockTries
	}
	if opts.LockExpiry <= 0 {
		opts.LockExpiry = defaultLockExpiry
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = defaultRetryDelay
	}

	return &RedisDraftStore{
		client: client,
		locker: redsync.New(goredis.NewPool(client)),
		opts:   opts,
	}, nil
}

// Load implements i.DraftStore.
func (s *RedisDraftStore) Load(ctx context.Context, key string) (route.Steps, error) {
	return s.read(ctx, s.draftKey(key))
}

// Take implements i.DraftStore.
func (s *RedisDraftStore) Take(ctx context.Context, key string) (route.Steps, error) {
	draftKey := s.draftKey(key)
	unlock, err := s.lock(ctx, draftKey)
	if err != nil {
		return nil, err
	}
	defer unlock()

	return s.read(ctx, draftKey)
}

// Update implements i.DraftStore.
func (s *RedisDraftStore) Update(ctx context.Context, key string, edit func(*route.Proposal) error) (route.Steps, error) {
	draftKey := s.draftKey(key)
	unlock, err := s.lock(ctx, draftKey)
	if err != nil {
		return nil, err
	}
	defer unlock()

	steps, err := s.read(ctx, draftKey)
	if err != nil {
		return nil, err
	}

	proposal, err := route.NewProposal(steps)
	if err != nil {
		return nil, fmt.Errorf("stored draft %s: %w", key, err)
	}
	if err := edit(proposal); err != nil {
		return nil, err
	}

	snapshot := proposal.Snapshot()
	if len(snapshot) == 0 {
		if err := s.client.Del(ctx, draftKey).Err(); err != nil {
			return nil, err
		}
		return snapshot, nil
	}

	payload, err := json.Marshal(snapshot)
	if err != nil {
		return nil, err
	}
	if err := s.client.Set(ctx, draftKey, payload, s.opts.TTL).Err(); err != nil {
		return nil, err
	}
	return snapshot, nil
}

func (s *RedisDraftStore) read(ctx context.Context, draftKey string) (route.Steps, error) {
	payload, err := s.client.Get(ctx, draftKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return route.Steps{}, nil
	}
	if err != nil {
		return nil, err
	}

	var steps route.Steps
	if err := json.Unmarshal(payload, &steps); err != nil {
		return nil, fmt.Errorf("decoding draft %s: %w", draftKey, err)
	}
	return steps, nil
}

func (s *RedisDraftStore) lock(ctx context.Context, draftKey string) (func(), error) {
	mutex := s.locker.NewMutex(draftKey+":lock",
		redsync.WithTries(s.opts.LockTries),
		redsync.WithExpiry(s.opts.LockExpiry),
		redsync.WithRetryDelay(s.opts.RetryDelay),
	)
	if err := mutex.LockContext(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDraftBusy, err)
	}

	return func() {
		_, _ = mutex.UnlockContext(context.WithoutCancel(ctx))
	}, nil
}

func (s *RedisDraftStore) draftKey(key string) string {
	return fmt.Sprintf(draftKeyFmt, s.opts.Prefix, key)
}
