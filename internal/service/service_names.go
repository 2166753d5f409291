package service

import (
	"context"

	"github.com/evaldesk/evaldesk/internal/store"
	"github.com/evaldesk/evaldesk/models"
)

// nameResolver resolves user display names for list enrichment, caching
// lookups for the lifetime of one request. A missing account resolves to an
// empty name instead of failing the whole listing.
type nameResolver struct {
	users store.UserRepository
	cache map[int64]*models.User
}

func newNameResolver(users store.UserRepository) *nameResolver {
	return &nameResolver{
		users: users,
		cache: make(map[int64]*models.User),
	}
}

func (r *nameResolver) user(ctx context.Context, id int64) (models.User, bool) {
	if cached, ok := r.cache[id]; ok {
		if cached == nil {
			return models.User{}, false
		}
		return *cached, true
	}

	user, err := r.users.GetUserByID(ctx, id)
	if err != nil {
		r.cache[id] = nil
		return models.User{}, false
	}

	r.cache[id] = &user
	return user, true
}

func (r *nameResolver) fullName(ctx context.Context, id int64) string {
	user, ok := r.user(ctx, id)
	if !ok {
		return ""
	}
	return user.FullName()
}
