package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fitplan-app/fitplan-backend/internal/fitness/domain"
)

const (
	sessionProfileKey = "userProfile"     // JSON UserProfile of the current session, absent when logged out
	directoryKey      = "allFitnessUsers" // JSON array of every registered UserProfile
	snapshotKeyPrefix = "allFitnessUsers:snapshot:"
	snapshotTTL       = 30 * 24 * time.Hour
)

// StateRepository persists the session profile and the user directory in a
// key-value store. Both values are computed by the reconciler before either
// write happens; SaveBoth sequences the two writes in one pipeline.
type StateRepository struct {
	client *redis.Client
	ctx    context.Context
}

// NewStateRepository creates a new StateRepository.
func NewStateRepository(client *redis.Client) *StateRepository {
	return &StateRepository{
		client: client,
		ctx:    context.Background(),
	}
}

// LoadSessionProfile returns the persisted logged-in profile, or
// domain.ErrProfileNotFound when nobody is logged in.
func (r *StateRepository) LoadSessionProfile() (*domain.UserProfile, error) {
	data, err := r.client.Get(r.ctx, sessionProfileKey).Result()
	if err == redis.Nil {
		return nil, domain.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session profile: %w", err)
	}

	var profile domain.UserProfile
	if err := json.Unmarshal([]byte(data), &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session profile: %w", err)
	}

	return &profile, nil
}

// SaveSessionProfile stores the logged-in profile.
func (r *StateRepository) SaveSessionProfile(profile domain.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal session profile: %w", err)
	}

	if err := r.client.Set(r.ctx, sessionProfileKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save session profile: %w", err)
	}

	return nil
}

// ClearSessionProfile removes the logged-in profile. The directory is
// untouched; logout never deletes accounts.
func (r *StateRepository) ClearSessionProfile() error {
	if err := r.client.Del(r.ctx, sessionProfileKey).Err(); err != nil {
		return fmt.Errorf("failed to clear session profile: %w", err)
	}
	return nil
}

// LoadDirectory returns every registered profile. A missing key is an empty
// directory, not an error.
func (r *StateRepository) LoadDirectory() ([]domain.UserProfile, error) {
	data, err := r.client.Get(r.ctx, directoryKey).Result()
	if err == redis.Nil {
		return []domain.UserProfile{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user directory: %w", err)
	}

	var dir []domain.UserProfile
	if err := json.Unmarshal([]byte(data), &dir); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user directory: %w", err)
	}

	return dir, nil
}

// SaveDirectory stores the full user directory.
func (r *StateRepository) SaveDirectory(dir []domain.UserProfile) error {
	data, err := json.Marshal(dir)
	if err != nil {
		return fmt.Errorf("failed to marshal user directory: %w", err)
	}

	if err := r.client.Set(r.ctx, directoryKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save user directory: %w", err)
	}

	return nil
}

// SaveBoth writes the session profile and the directory together. Callers
// hand in a pair computed by one reconciler operation so the two values can
// never diverge across the writes.
func (r *StateRepository) SaveBoth(profile domain.UserProfile, dir []domain.UserProfile) error {
	profileData, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal session profile: %w", err)
	}
	dirData, err := json.Marshal(dir)
	if err != nil {
		return fmt.Errorf("failed to marshal user directory: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(r.ctx, sessionProfileKey, profileData, 0)
	pipe.Set(r.ctx, directoryKey, dirData, 0)

	if _, err := pipe.Exec(r.ctx); err != nil {
		return fmt.Errorf("failed to save session state: %w", err)
	}

	return nil
}

// SnapshotDirectory copies the current directory value under a dated key.
// Used by the nightly snapshot job; snapshots expire after 30 days.
func (r *StateRepository) SnapshotDirectory(now time.Time) (string, error) {
	data, err := r.client.Get(r.ctx, directoryKey).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read user directory for snapshot: %w", err)
	}

	key := snapshotKeyPrefix + now.Format("2006-01-02")
	if err := r.client.Set(r.ctx, key, data, snapshotTTL).Err(); err != nil {
		return "", fmt.Errorf("failed to write directory snapshot: %w", err)
	}

	return key, nil
}
