package types

import "github.com/castkeep/castkeep/pkg/pagination"

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// PodcastsResponse for paginated podcast lists
type PodcastsResponse struct {
	BaseResponse
	Podcasts []Podcast       `json:"podcasts"`
	Page     pagination.Page `json:"pagination"`
}

// SinglePodcastResponse for getting a single podcast
type SinglePodcastResponse struct {
	BaseResponse
	Podcast *Podcast `json:"podcast"`
}

// EpisodesResponse for paginated episode lists
type EpisodesResponse struct {
	BaseResponse
	Episodes []Episode       `json:"episodes"`
	Page     pagination.Page `json:"pagination"`
}

// SingleEpisodeResponse for getting a single episode
type SingleEpisodeResponse struct {
	BaseResponse
	Episode *Episode `json:"episode"`
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// HealthResponse for health check endpoint
type HealthResponse struct {
	BaseResponse
	Version  string                 `json:"version,omitempty"`
	Services map[string]interface{} `json:"services,omitempty"`
}
