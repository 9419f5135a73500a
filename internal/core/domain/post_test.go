package domain

import (
	"strings"
	"testing"
	"time"
)

func TestPost_CommitmentOpen(t *testing.T) {
	future := time.Now().Add(24 * time.Hour).Format(time.RFC3339)
	past := time.Now().Add(-24 * time.Hour).Format(time.RFC3339)

	tests := []struct {
		name string
		post Post
		want bool
	}{
		{"no commitment goal", Post{}, false},
		{"open with future deadline", Post{CommitmentGoal: 5, CommitmentDeadline: future}, true},
		{"open without deadline", Post{CommitmentGoal: 5}, true},
		{"past deadline", Post{CommitmentGoal: 5, CommitmentDeadline: past}, false},
		{"already complete", Post{CommitmentGoal: 5, CommitmentDeadline: future, IsCommitmentComplete: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.post.CommitmentOpen(); got != tt.want {
				t.Errorf("CommitmentOpen() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPost_Validate(t *testing.T) {
	valid := Post{Title: "Week 1 progress", Content: "Finished the tour."}

	tests := []struct {
		name    string
		mutate  func(*Post)
		wantErr bool
	}{
		{"valid", func(p *Post) {}, false},
		{"blank title", func(p *Post) { p.Title = "" }, true},
		{"blank content", func(p *Post) { p.Content = "  " }, true},
		{"title too long", func(p *Post) { p.Title = strings.Repeat("t", 151) }, true},
		{"too many images", func(p *Post) { p.Images = []string{"a", "b", "c", "d", "e"} }, true},
		{"negative goal", func(p *Post) { p.CommitmentGoal = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			if err := p.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
