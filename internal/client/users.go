// Package client provides the SkillShare API client.
package client

import (
	"context"
	"net/url"

	"github.com/skillshare/skillshare-go/internal/core/domain"
)

const usersPath = "/api/users"

// UserClient wraps the user and social-graph endpoints.
type UserClient struct {
	t *Transport
}

// NewUserClient creates a user client.
func NewUserClient(t *Transport) *UserClient {
	return &UserClient{t: t}
}

// Get fetches a user profile by ID.
func (c *UserClient) Get(ctx context.Context, id string) (*domain.User, error) {
	var u domain.User
	if err := c.t.Get(ctx, usersPath+"/"+id, nil, true, &u); err != nil {
		return nil, mapNotFound(err, domain.ErrUserNotFound)
	}
	return &u, nil
}

// Search finds users by name.
func (c *UserClient) Search(ctx context.Context, query string, page, size int) (Page[domain.User], error) {
	q := pageQuery(page, size)
	q.Set("query", query)

	body, err := c.t.GetRaw(ctx, usersPath+"/search", q, true)
	if err != nil {
		return Page[domain.User]{}, err
	}
	return DecodePage[domain.User](body)
}

// UpdateProfile modifies the caller's own profile. The profile is
// validated locally before any network call.
func (c *UserClient) UpdateProfile(ctx context.Context, u domain.User) (*domain.User, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}

	var updated domain.User
	if err := c.t.Put(ctx, usersPath+"/"+url.PathEscape(u.ID), u, true, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Follow makes followerID a follower of id and returns the followed
// user with updated counts.
func (c *UserClient) Follow(ctx context.Context, id, followerID string) (*domain.User, error) {
	return c.setFollower(ctx, id, "follow", followerID)
}

// Unfollow removes followerID from id's followers.
func (c *UserClient) Unfollow(ctx context.Context, id, followerID string) (*domain.User, error) {
	return c.setFollower(ctx, id, "unfollow", followerID)
}

func (c *UserClient) setFollower(ctx context.Context, id, action, followerID string) (*domain.User, error) {
	path := usersPath + "/" + url.PathEscape(id) + "/" + action + "/" + url.PathEscape(followerID)

	var u domain.User
	if err := c.t.Post(ctx, path, nil, true, &u); err != nil {
		return nil, mapNotFound(err, domain.ErrUserNotFound)
	}
	return &u, nil
}

// Followers lists a user's followers.
func (c *UserClient) Followers(ctx context.Context, id string, page, size int) (Page[domain.User], error) {
	return c.listRelation(ctx, id, "followers", page, size)
}

// Following lists who a user follows.
func (c *UserClient) Following(ctx context.Context, id string, page, size int) (Page[domain.User], error) {
	return c.listRelation(ctx, id, "following", page, size)
}

func (c *UserClient) listRelation(ctx context.Context, id, relation string, page, size int) (Page[domain.User], error) {
	body, err := c.t.GetRaw(ctx, usersPath+"/"+id+"/"+relation, pageQuery(page, size), true)
	if err != nil {
		return Page[domain.User]{}, mapNotFound(err, domain.ErrUserNotFound)
	}
	return DecodePage[domain.User](body)
}
