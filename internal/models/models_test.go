package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEpisodeIsPublished(t *testing.T) {
	past := time.Now().UTC().Add(-time.Hour)
	future := time.Now().UTC().Add(time.Hour)

	tests := []struct {
		name        string
		publishedAt *time.Time
		want        bool
	}{
		{"draft without timestamp", nil, false},
		{"published in the past", &past, true},
		{"scheduled for the future", &future, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Episode{PublishedAt: tt.publishedAt}
			assert.Equal(t, tt.want, e.IsPublished())
		})
	}
}
