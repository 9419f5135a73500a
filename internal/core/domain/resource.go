// Package domain defines the core domain models for the SkillShare client.
package domain

import (
	"strings"
	"time"
)

// ResourceType classifies entries in the shared resource library.
type ResourceType string

// Resource types recognized by the backend.
const (
	ResourceVideo   ResourceType = "VIDEO"
	ResourceArticle ResourceType = "ARTICLE"
	ResourceCourse  ResourceType = "COURSE"
	ResourceBook    ResourceType = "BOOK"
	ResourcePodcast ResourceType = "PODCAST"
	ResourceOther   ResourceType = "OTHER"
)

// Resource constraints enforced before a create/update request is issued.
const (
	MaxResourceTitleLength       = 120
	MaxResourceDescriptionLength = 2000
)

// ValidResourceType reports whether t is a type the backend accepts.
func ValidResourceType(t ResourceType) bool {
	switch t {
	case ResourceVideo, ResourceArticle, ResourceCourse, ResourceBook, ResourcePodcast, ResourceOther:
		return true
	}
	return false
}

// Resource is an entry in the shared resource library.
type Resource struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description,omitempty"`
	URL           string       `json:"url"`
	ResourceType  ResourceType `json:"resourceType"`
	SkillCategory string       `json:"skillCategory,omitempty"`
	Owner         *User        `json:"user,omitempty"`
	LikeCount     int          `json:"likeCount"`
	LikedByMe     bool         `json:"likedByCurrentUser"`
	CreatedAt     string       `json:"createdAt,omitempty"`
	UpdatedAt     string       `json:"updatedAt,omitempty"`
}

// CreatedAtTime parses CreatedAt. Returns the zero time when absent.
func (r *Resource) CreatedAtTime() time.Time {
	return parseBackendTime(r.CreatedAt)
}

// Validate validates resource fields against backend constraints.
func (r *Resource) Validate() error {
	var violations []string

	if strings.TrimSpace(r.Title) == "" {
		violations = append(violations, "title is required")
	} else if len(r.Title) > MaxResourceTitleLength {
		violations = append(violations, "title exceeds 120 characters")
	}

	if strings.TrimSpace(r.URL) == "" {
		violations = append(violations, "url is required")
	}

	if len(r.Description) > MaxResourceDescriptionLength {
		violations = append(violations, "description exceeds 2000 characters")
	}

	if r.ResourceType != "" && !ValidResourceType(r.ResourceType) {
		violations = append(violations, "unknown resource type "+string(r.ResourceType))
	}

	if len(violations) > 0 {
		return ErrValidation.WithDetails(strings.Join(violations, "; "))
	}
	return nil
}
