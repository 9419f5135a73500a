// Package client provides the SkillShare API client.
package client

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/skillshare/skillshare-go/internal/core/domain"
	"github.com/skillshare/skillshare-go/internal/telemetry/logger"
)

const notificationsPath = "/api/notifications"

// watchLimit caps notification polling at one request per interval
// with a small burst for the initial fetch.
var watchLimit = rate.Every(10 * time.Second)

// NotificationClient wraps the notification endpoints.
type NotificationClient struct {
	t      *Transport
	logger logger.Logger
}

// NewNotificationClient creates a notification client.
func NewNotificationClient(t *Transport, log logger.Logger) *NotificationClient {
	if log == nil {
		log = logger.Default()
	}
	return &NotificationClient{t: t, logger: log}
}

// List fetches a page of the caller's notifications.
func (c *NotificationClient) List(ctx context.Context, page, size int) (Page[domain.Notification], error) {
	body, err := c.t.GetRaw(ctx, notificationsPath, pageQuery(page, size), true)
	if err != nil {
		return Page[domain.Notification]{}, err
	}
	return DecodePage[domain.Notification](body)
}

// UnreadCount returns the number of unread notifications.
func (c *NotificationClient) UnreadCount(ctx context.Context) (int, error) {
	var resp struct {
		Count int `json:"count"`
	}
	if err := c.t.Get(ctx, notificationsPath+"/unread-count", nil, true, &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

// MarkRead marks one notification read.
func (c *NotificationClient) MarkRead(ctx context.Context, id string) error {
	return c.t.Put(ctx, notificationsPath+"/"+id+"/read", nil, true, nil)
}

// MarkAllRead marks every notification read.
func (c *NotificationClient) MarkAllRead(ctx context.Context) error {
	return c.t.Put(ctx, notificationsPath+"/read-all", nil, true, nil)
}

// Watch polls for new notifications until ctx is cancelled, invoking
// fn for each notification not seen before. Polling is rate limited;
// transient failures are logged and retried on the next tick.
func (c *NotificationClient) Watch(ctx context.Context, fn func(domain.Notification)) error {
	limiter := rate.NewLimiter(watchLimit, 1)
	seen := make(map[string]bool)

	for {
		if err := limiter.Wait(ctx); err != nil {
			// Context cancelled: normal shutdown path.
			return ctx.Err()
		}

		page, err := c.List(ctx, 0, 50)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.logger.Warn("notification poll failed", "error", err)
			continue
		}

		for _, n := range page.Items {
			if seen[n.ID] {
				continue
			}
			seen[n.ID] = true
			fn(n)
		}
	}
}
