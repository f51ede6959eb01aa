package user

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CachedRepository keeps profile reads off the primary store. Writes go
// straight through and drop the cached entry.
type CachedRepository struct {
	Repository
	rdb *redis.Client
	ttl time.Duration
}

func NewCachedRepository(inner Repository, rdb *redis.Client) *CachedRepository {
	return &CachedRepository{Repository: inner, rdb: rdb, ttl: 5 * time.Minute}
}

func profileKey(id string) string { return fmt.Sprintf("user:profile:%s", id) }

// envelope restores the password hash, which User itself never serializes.
type envelope struct {
	User
	Hash string `json:"hash"`
}

func (c *CachedRepository) GetByID(id string) (*User, error) {
	ctx := context.Background()
	if raw, err := c.rdb.Get(ctx, profileKey(id)).Result(); err == nil {
		var e envelope
		if json.Unmarshal([]byte(raw), &e) == nil {
			e.User.Password = e.Hash
			return &e.User, nil
		}
	}
	u, err := c.Repository.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b, err := json.Marshal(envelope{User: *u, Hash: u.Password}); err == nil {
		_ = c.rdb.Set(ctx, profileKey(id), b, c.ttl).Err()
	}
	return u, nil
}

func (c *CachedRepository) Update(u *User) error {
	if err := c.Repository.Update(u); err != nil {
		return err
	}
	_ = c.rdb.Del(context.Background(), profileKey(u.ID)).Err()
	return nil
}
