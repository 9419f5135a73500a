// Package client provides the SkillShare API client.
package client

import (
	"encoding/json"
	"fmt"

	"github.com/skillshare/skillshare-go/internal/core/domain"
)

// Page is the normalized list shape every paged endpoint decodes into.
// The backend sometimes returns a bare JSON array and sometimes a
// Spring-style {content: [...]} envelope; both land here.
type Page[T any] struct {
	Items         []T
	Number        int
	Size          int
	TotalElements int64
	TotalPages    int
	Last          bool
}

// pageEnvelope mirrors the Spring Data page JSON shape.
type pageEnvelope[T any] struct {
	Content       []T   `json:"content"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Last          bool  `json:"last"`
}

// DecodePage normalizes a list payload into a Page.
//
// A bare array becomes a single complete page; an envelope keeps its
// pagination fields. Anything else is a transport error.
func DecodePage[T any](data []byte) (Page[T], error) {
	trimmed := firstNonSpace(data)

	switch trimmed {
	case '[':
		var items []T
		if err := json.Unmarshal(data, &items); err != nil {
			return Page[T]{}, domain.ErrTransport.WithCause(fmt.Errorf("parse list: %w", err))
		}
		return Page[T]{
			Items:         items,
			Size:          len(items),
			TotalElements: int64(len(items)),
			TotalPages:    1,
			Last:          true,
		}, nil

	case '{':
		var env pageEnvelope[T]
		if err := json.Unmarshal(data, &env); err != nil {
			return Page[T]{}, domain.ErrTransport.WithCause(fmt.Errorf("parse page envelope: %w", err))
		}
		items := env.Content
		if items == nil {
			items = []T{}
		}
		return Page[T]{
			Items:         items,
			Number:        env.Number,
			Size:          env.Size,
			TotalElements: env.TotalElements,
			TotalPages:    env.TotalPages,
			Last:          env.Last,
		}, nil

	default:
		return Page[T]{}, domain.ErrTransport.WithDetails("list payload is neither array nor page envelope")
	}
}

func firstNonSpace(data []byte) byte {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return b
	}
	return 0
}
