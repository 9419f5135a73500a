// Package client provides the SkillShare API client.
package client

import (
	"context"
	"errors"
	"net/url"
	"strconv"

	"github.com/skillshare/skillshare-go/internal/core/domain"
	"github.com/skillshare/skillshare-go/internal/state"
)

const resourcesPath = "/api/resources"

// ResourceClient wraps the resource-library endpoints.
//
// List and search reads go through the local page cache when one is
// configured; a cache hit after a transport failure lets the CLI show
// the last known page offline.
type ResourceClient struct {
	t     *Transport
	cache *state.PageCache
}

// NewResourceClient creates a resource client. cache may be nil.
func NewResourceClient(t *Transport, cache *state.PageCache) *ResourceClient {
	return &ResourceClient{t: t, cache: cache}
}

// ListQuery selects a page of the resource library.
type ListQuery struct {
	Page     int
	Size     int
	Keyword  string
	Category string
	Type     domain.ResourceType
}

func (q ListQuery) values() url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))
	if q.Size > 0 {
		v.Set("size", strconv.Itoa(q.Size))
	}
	if q.Keyword != "" {
		v.Set("keyword", q.Keyword)
	}
	return v
}

// path selects the backend route. Category and type filters are path
// segments, not query parameters; keyword goes to the search route.
func (q ListQuery) path() string {
	switch {
	case q.Keyword != "":
		return resourcesPath + "/search"
	case q.Category != "":
		return resourcesPath + "/category/" + url.PathEscape(q.Category)
	case q.Type != "":
		return resourcesPath + "/type/" + url.PathEscape(string(q.Type))
	}
	return resourcesPath
}

// List fetches a page of resources, reading through the cache.
func (c *ResourceClient) List(ctx context.Context, q ListQuery) (Page[domain.Resource], error) {
	return c.listPath(ctx, q.path(), q)
}

// Search fetches resources matching a keyword.
func (c *ResourceClient) Search(ctx context.Context, keyword string, page, size int) (Page[domain.Resource], error) {
	return c.List(ctx, ListQuery{Page: page, Size: size, Keyword: keyword})
}

func (c *ResourceClient) listPath(ctx context.Context, path string, q ListQuery) (Page[domain.Resource], error) {
	query := q.values()
	key := state.Key(path, query.Encode())

	body, err := c.t.GetRaw(ctx, path, query, true)
	if err != nil {
		// Transport failure: fall back to the last cached page.
		if c.cache != nil && errors.Is(err, domain.ErrTransport) {
			if cached, cerr := c.cache.Get(key); cerr == nil {
				return DecodePage[domain.Resource](cached)
			}
		}
		return Page[domain.Resource]{}, err
	}

	if c.cache != nil {
		// Cache write failures never fail the read.
		_ = c.cache.Put(key, body)
	}
	return DecodePage[domain.Resource](body)
}

// Get fetches a single resource by ID.
func (c *ResourceClient) Get(ctx context.Context, id string) (*domain.Resource, error) {
	var r domain.Resource
	if err := c.t.Get(ctx, resourcesPath+"/"+id, nil, true, &r); err != nil {
		return nil, mapNotFound(err, domain.ErrResourceNotFound)
	}
	return &r, nil
}

// Create shares a new resource. The resource is validated locally
// before any network call.
func (c *ResourceClient) Create(ctx context.Context, r domain.Resource) (*domain.Resource, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	var created domain.Resource
	if err := c.t.Post(ctx, resourcesPath, r, true, &created); err != nil {
		return nil, err
	}
	c.invalidate()
	return &created, nil
}

// Update modifies an owned resource.
func (c *ResourceClient) Update(ctx context.Context, id string, r domain.Resource) (*domain.Resource, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	var updated domain.Resource
	if err := c.t.Put(ctx, resourcesPath+"/"+id, r, true, &updated); err != nil {
		return nil, mapNotFound(err, domain.ErrResourceNotFound)
	}
	c.invalidate()
	return &updated, nil
}

// Delete removes an owned resource.
func (c *ResourceClient) Delete(ctx context.Context, id string) error {
	if err := c.t.Delete(ctx, resourcesPath+"/"+id, true); err != nil {
		return mapNotFound(err, domain.ErrResourceNotFound)
	}
	c.invalidate()
	return nil
}

// Like toggles the caller's like on a resource and returns the
// updated resource.
func (c *ResourceClient) Like(ctx context.Context, id string) (*domain.Resource, error) {
	var r domain.Resource
	if err := c.t.Post(ctx, resourcesPath+"/"+id+"/like", nil, true, &r); err != nil {
		return nil, mapNotFound(err, domain.ErrResourceNotFound)
	}
	c.invalidate()
	return &r, nil
}

// invalidate drops all cached library pages; search, category and type
// routes live under the same prefix.
func (c *ResourceClient) invalidate() {
	if c.cache == nil {
		return
	}
	_ = c.cache.Invalidate(resourcesPath)
}
