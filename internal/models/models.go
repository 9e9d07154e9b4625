package models

import (
	"time"

	"gorm.io/gorm"
)

// Podcast represents a podcast series. Episodes belong to it and are
// published independently.
type Podcast struct {
	gorm.Model
	Title         string    `json:"title" gorm:"not null"`
	Slug          string    `json:"slug" gorm:"uniqueIndex;not null"`
	Description   string    `json:"description" gorm:"type:text"`
	Category      string    `json:"category"`
	AuthorName    string    `json:"author_name"`
	AuthorEmail   string    `json:"author_email"`
	Explicit      bool      `json:"explicit" gorm:"default:false"`
	Copyright     string    `json:"copyright"`
	ImageURL      string    `json:"image_url"`
	FeedburnerURL string    `json:"feedburner_url"`
	Language      string    `json:"language"`

	// Denormalized count of published episodes, maintained by the podcast
	// service whenever episodes change.
	EpisodeCount int `json:"episode_count" gorm:"default:0"`

	Episodes []Episode `json:"episodes,omitempty" gorm:"foreignKey:PodcastID"`
}

// Episode represents a single media item belonging to a podcast
type Episode struct {
	gorm.Model
	PodcastID   uint   `json:"podcast_id" gorm:"not null;index"`
	Title       string `json:"title" gorm:"not null"`
	Slug        string `json:"slug" gorm:"index;not null"`
	GUID        string `json:"guid" gorm:"uniqueIndex"`
	Description string `json:"description" gorm:"type:text"`

	// Enclosure
	AudioURL        string `json:"audio_url" gorm:"not null"`
	EnclosureType   string `json:"enclosure_type"`
	EnclosureLength int64  `json:"enclosure_length"`
	Duration        *int   `json:"duration"` // Seconds, nullable

	Explicit bool `json:"explicit" gorm:"default:false"`

	// Nil means draft; a future timestamp means scheduled.
	PublishedAt *time.Time `json:"published_at" gorm:"index"`
}

// IsPublished reports whether the episode is visible to listeners
func (e *Episode) IsPublished() bool {
	return e.PublishedAt != nil && !e.PublishedAt.After(time.Now().UTC())
}
