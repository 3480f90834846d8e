package user

import (
	"context"
	"time"

	"github.com/fkhayef/usersapi/pkg/cache"
)

// CachedStore is a Store that serves email lookups from Redis and
// invalidates them on every write. Keys are dropped both before and after a
// write; a lookup that read the row before the write may still repopulate
// the key, and that entry lives until the cache TTL expires.
type CachedStore struct {
	Store
	byEmail *cache.ViewCache[User]
}

// NewCachedStore wraps store with the given cache.
func NewCachedStore(store Store, byEmail *cache.ViewCache[User]) *CachedStore {
	return &CachedStore{Store: store, byEmail: byEmail}
}

var _ Store = (*CachedStore)(nil)

func (c *CachedStore) GetByEmail(ctx context.Context, email string) (*User, error) {
	if user, ok := c.byEmail.Get(ctx, email); ok {
		return user, nil
	}

	user, err := c.Store.GetByEmail(ctx, email)
	if err != nil || user == nil {
		return user, err
	}

	c.byEmail.Set(ctx, email, user)
	return user, nil
}

func (c *CachedStore) Create(ctx context.Context, user *User) error {
	c.byEmail.Delete(ctx, user.Email)
	return c.Store.Create(ctx, user)
}

func (c *CachedStore) UpdateUsername(ctx context.Context, email, username string, updatedAt time.Time) (*User, error) {
	c.byEmail.Delete(ctx, email)
	defer c.byEmail.Delete(ctx, email)
	return c.Store.UpdateUsername(ctx, email, username, updatedAt)
}

func (c *CachedStore) DeleteByEmail(ctx context.Context, email string) (bool, error) {
	c.byEmail.Delete(ctx, email)
	defer c.byEmail.Delete(ctx, email)
	return c.Store.DeleteByEmail(ctx, email)
}

func (c *CachedStore) DeleteAll(ctx context.Context) (int64, error) {
	c.byEmail.Flush(ctx)
	defer c.byEmail.Flush(ctx)
	return c.Store.DeleteAll(ctx)
}
