// Package client provides the SkillShare API client.
package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/skillshare/skillshare-go/internal/core/domain"
)

const postsPath = "/api/posts"

// PostClient wraps the community feed endpoints.
type PostClient struct {
	t *Transport
}

// NewPostClient creates a post client.
func NewPostClient(t *Transport) *PostClient {
	return &PostClient{t: t}
}

// Feed fetches a page of the user's community feed.
func (c *PostClient) Feed(ctx context.Context, userID string, page, size int) (Page[domain.Post], error) {
	return c.list(ctx, postsPath+"/feed/"+url.PathEscape(userID), pageQuery(page, size))
}

// Search fetches posts matching a keyword.
func (c *PostClient) Search(ctx context.Context, keyword string, page, size int) (Page[domain.Post], error) {
	q := pageQuery(page, size)
	q.Set("keyword", keyword)
	return c.list(ctx, postsPath+"/search", q)
}

// ByUser fetches posts authored by a user.
func (c *PostClient) ByUser(ctx context.Context, userID string, page, size int) (Page[domain.Post], error) {
	return c.list(ctx, postsPath+"/user/"+url.PathEscape(userID), pageQuery(page, size))
}

// OpenCommitments fetches posts whose commitment window is still open.
func (c *PostClient) OpenCommitments(ctx context.Context, page, size int) (Page[domain.Post], error) {
	return c.list(ctx, postsPath+"/open-commitments", pageQuery(page, size))
}

// Committed fetches posts the caller has committed to.
func (c *PostClient) Committed(ctx context.Context, page, size int) (Page[domain.Post], error) {
	return c.list(ctx, postsPath+"/committed", pageQuery(page, size))
}

func (c *PostClient) list(ctx context.Context, path string, q url.Values) (Page[domain.Post], error) {
	body, err := c.t.GetRaw(ctx, path, q, true)
	if err != nil {
		return Page[domain.Post]{}, err
	}
	return DecodePage[domain.Post](body)
}

// Get fetches a single post by ID.
func (c *PostClient) Get(ctx context.Context, id string) (*domain.Post, error) {
	var p domain.Post
	if err := c.t.Get(ctx, postsPath+"/"+id, nil, true, &p); err != nil {
		return nil, mapNotFound(err, domain.ErrPostNotFound)
	}
	return &p, nil
}

// Create publishes a post. The post is validated locally before any
// network call.
func (c *PostClient) Create(ctx context.Context, p domain.Post) (*domain.Post, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var created domain.Post
	if err := c.t.Post(ctx, postsPath, p, true, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update modifies an owned post. The post is validated locally before
// any network call.
func (c *PostClient) Update(ctx context.Context, id string, p domain.Post) (*domain.Post, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var updated domain.Post
	if err := c.t.Put(ctx, postsPath+"/"+id, p, true, &updated); err != nil {
		return nil, mapNotFound(err, domain.ErrPostNotFound)
	}
	return &updated, nil
}

// Delete removes an owned post.
func (c *PostClient) Delete(ctx context.Context, id string) error {
	return mapNotFound(c.t.Delete(ctx, postsPath+"/"+id, true), domain.ErrPostNotFound)
}

// Like likes a post on behalf of the given user. The backend returns
// no body; callers refetch when they need the updated counts.
func (c *PostClient) Like(ctx context.Context, id, userID string) error {
	err := c.t.Post(ctx, postsPath+"/"+id+"/like/"+url.PathEscape(userID), nil, true, nil)
	return mapNotFound(err, domain.ErrPostNotFound)
}

// Unlike removes the given user's like.
func (c *PostClient) Unlike(ctx context.Context, id, userID string) error {
	err := c.t.Post(ctx, postsPath+"/"+id+"/unlike/"+url.PathEscape(userID), nil, true, nil)
	return mapNotFound(err, domain.ErrPostNotFound)
}

// Commit joins a post's commitment and returns the updated post.
func (c *PostClient) Commit(ctx context.Context, id string) (*domain.Post, error) {
	return c.toggle(ctx, id, "commit")
}

// WithdrawCommitment leaves a post's commitment.
func (c *PostClient) WithdrawCommitment(ctx context.Context, id string) (*domain.Post, error) {
	return c.toggle(ctx, id, "withdraw-commitment")
}

func (c *PostClient) toggle(ctx context.Context, id, action string) (*domain.Post, error) {
	var p domain.Post
	if err := c.t.Post(ctx, postsPath+"/"+id+"/"+action, nil, true, &p); err != nil {
		return nil, mapNotFound(err, domain.ErrPostNotFound)
	}
	return &p, nil
}

// AddComment appends a comment to a post and returns the updated post.
func (c *PostClient) AddComment(ctx context.Context, id, content string) (*domain.Post, error) {
	body := map[string]string{"content": content}

	var p domain.Post
	if err := c.t.Post(ctx, postsPath+"/"+id+"/comments", body, true, &p); err != nil {
		return nil, mapNotFound(err, domain.ErrPostNotFound)
	}
	return &p, nil
}

func pageQuery(page, size int) url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(page))
	if size > 0 {
		v.Set("size", strconv.Itoa(size))
	}
	return v
}
