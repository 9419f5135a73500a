// Package domain defines the core domain models for the SkillShare client.
package domain

import (
	"strings"
	"time"
)

// Post constraints.
const (
	MaxPostTitleLength   = 150
	MaxPostContentLength = 5000
	MaxPostImages        = 4
)

// Comment is a user comment on a post.
type Comment struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	Author    *User  `json:"user,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// CreatedAtTime parses CreatedAt. Returns the zero time when absent.
func (c *Comment) CreatedAtTime() time.Time {
	return parseBackendTime(c.CreatedAt)
}

// Post is a feed post. Posts may carry a time commitment: a goal number of
// participants who commit before a deadline.
type Post struct {
	ID                   string    `json:"id"`
	Title                string    `json:"title"`
	Content              string    `json:"content"`
	Images               []string  `json:"images,omitempty"`
	VideoURL             string    `json:"videoUrl,omitempty"`
	Author               *User     `json:"user,omitempty"`
	Comments             []Comment `json:"comments,omitempty"`
	LikeCount            int       `json:"likeCount"`
	LikedByMe            bool      `json:"likedByCurrentUser"`
	CommitCount          int       `json:"commitCount"`
	CommittedByMe        bool      `json:"committedByCurrentUser"`
	CommitmentGoal       int       `json:"commitmentGoal,omitempty"`
	CommitmentDeadline   string    `json:"commitmentDeadline,omitempty"`
	IsCommitmentComplete bool      `json:"isCommitmentComplete"`
	CreatedAt            string    `json:"createdAt,omitempty"`
	UpdatedAt            string    `json:"updatedAt,omitempty"`
}

// CreatedAtTime parses CreatedAt. Returns the zero time when absent.
func (p *Post) CreatedAtTime() time.Time {
	return parseBackendTime(p.CreatedAt)
}

// CommitmentDeadlineTime parses CommitmentDeadline. Returns the zero time
// when the post has no commitment.
func (p *Post) CommitmentDeadlineTime() time.Time {
	return parseBackendTime(p.CommitmentDeadline)
}

// CommitmentOpen reports whether the post still accepts commitments.
func (p *Post) CommitmentOpen() bool {
	if p.CommitmentGoal <= 0 || p.IsCommitmentComplete {
		return false
	}
	deadline := p.CommitmentDeadlineTime()
	return deadline.IsZero() || time.Now().Before(deadline)
}

// Validate validates post fields against backend constraints.
func (p *Post) Validate() error {
	var violations []string

	if strings.TrimSpace(p.Title) == "" {
		violations = append(violations, "title is required")
	} else if len(p.Title) > MaxPostTitleLength {
		violations = append(violations, "title exceeds 150 characters")
	}

	if strings.TrimSpace(p.Content) == "" {
		violations = append(violations, "content is required")
	} else if len(p.Content) > MaxPostContentLength {
		violations = append(violations, "content exceeds 5000 characters")
	}

	if len(p.Images) > MaxPostImages {
		violations = append(violations, "too many images")
	}

	if p.CommitmentGoal < 0 {
		violations = append(violations, "commitment goal must not be negative")
	}

	if len(violations) > 0 {
		return ErrValidation.WithDetails(strings.Join(violations, "; "))
	}
	return nil
}
