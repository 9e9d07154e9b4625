package types

// Core data types used across API responses

// Podcast is the wire representation of a podcast
type Podcast struct {
	ID            uint   `json:"id" example:"1"`
	Title         string `json:"title" example:"The Tech Show"`
	Slug          string `json:"slug" example:"the-tech-show"`
	Description   string `json:"description,omitempty"`
	Category      string `json:"category,omitempty" example:"Technology"`
	AuthorName    string `json:"authorName,omitempty" example:"Ada Example"`
	AuthorEmail   string `json:"authorEmail,omitempty" example:"ada@example.com"`
	Explicit      bool   `json:"explicit"`
	Copyright     string `json:"copyright,omitempty"`
	ImageURL      string `json:"imageUrl,omitempty"`
	FeedburnerURL string `json:"feedburnerUrl,omitempty"`
	Language      string `json:"language,omitempty" example:"en"`
	EpisodeCount  int    `json:"episodeCount"`
	CreatedAt     int64  `json:"createdAt"` // Unix timestamp
	UpdatedAt     int64  `json:"updatedAt"` // Unix timestamp
}

// Episode is the wire representation of an episode
type Episode struct {
	ID              uint   `json:"id" example:"1"`
	PodcastID       uint   `json:"podcastId" example:"1"`
	Title           string `json:"title" example:"Pilot"`
	Slug            string `json:"slug" example:"pilot"`
	GUID            string `json:"guid,omitempty"`
	Description     string `json:"description,omitempty"`
	AudioURL        string `json:"audioUrl"`
	EnclosureType   string `json:"enclosureType,omitempty" example:"audio/mpeg"`
	EnclosureLength int64  `json:"enclosureLength,omitempty"`
	Duration        *int   `json:"duration,omitempty"` // Seconds
	Explicit        bool   `json:"explicit"`
	PublishedAt     int64  `json:"publishedAt,omitempty"` // Unix timestamp, 0 for drafts
}

// PodcastRequest is the write payload for creating or updating a podcast
type PodcastRequest struct {
	Title         string `json:"title" binding:"required" example:"The Tech Show"`
	Slug          string `json:"slug,omitempty"`
	Description   string `json:"description,omitempty"`
	Category      string `json:"category,omitempty"`
	AuthorName    string `json:"authorName,omitempty"`
	AuthorEmail   string `json:"authorEmail,omitempty"`
	Explicit      bool   `json:"explicit,omitempty"`
	Copyright     string `json:"copyright,omitempty"`
	ImageURL      string `json:"imageUrl,omitempty"`
	FeedburnerURL string `json:"feedburnerUrl,omitempty"`
	Language      string `json:"language,omitempty"`
}

// EpisodeRequest is the write payload for creating or updating an episode
type EpisodeRequest struct {
	Title           string `json:"title" binding:"required" example:"Pilot"`
	Slug            string `json:"slug,omitempty"`
	Description     string `json:"description,omitempty"`
	AudioURL        string `json:"audioUrl" binding:"required"`
	EnclosureType   string `json:"enclosureType,omitempty"`
	EnclosureLength int64  `json:"enclosureLength,omitempty"`
	Duration        *int   `json:"duration,omitempty"`
	Explicit        bool   `json:"explicit,omitempty"`
	PublishedAt     *int64 `json:"publishedAt,omitempty"` // Unix timestamp
}
