package types

import (
	"time"

	"github.com/castkeep/castkeep/internal/models"
	"github.com/castkeep/castkeep/internal/services/podcasts"
)

// FromModelPodcast transforms a stored podcast to its wire representation
func FromModelPodcast(p *models.Podcast) *Podcast {
	if p == nil {
		return nil
	}
	return &Podcast{
		ID:            p.ID,
		Title:         p.Title,
		Slug:          p.Slug,
		Description:   p.Description,
		Category:      p.Category,
		AuthorName:    p.AuthorName,
		AuthorEmail:   p.AuthorEmail,
		Explicit:      p.Explicit,
		Copyright:     p.Copyright,
		ImageURL:      p.ImageURL,
		FeedburnerURL: p.FeedburnerURL,
		Language:      p.Language,
		EpisodeCount:  p.EpisodeCount,
		CreatedAt:     p.CreatedAt.Unix(),
		UpdatedAt:     p.UpdatedAt.Unix(),
	}
}

// FromModelPodcastList transforms a list of stored podcasts
func FromModelPodcastList(list []models.Podcast) []Podcast {
	result := make([]Podcast, 0, len(list))
	for i := range list {
		result = append(result, *FromModelPodcast(&list[i]))
	}
	return result
}

// FromModelEpisode transforms a stored episode to its wire representation
func FromModelEpisode(e *models.Episode) *Episode {
	if e == nil {
		return nil
	}
	var publishedAt int64
	if e.PublishedAt != nil {
		publishedAt = e.PublishedAt.Unix()
	}
	return &Episode{
		ID:              e.ID,
		PodcastID:       e.PodcastID,
		Title:           e.Title,
		Slug:            e.Slug,
		GUID:            e.GUID,
		Description:     e.Description,
		AudioURL:        e.AudioURL,
		EnclosureType:   e.EnclosureType,
		EnclosureLength: e.EnclosureLength,
		Duration:        e.Duration,
		Explicit:        e.Explicit,
		PublishedAt:     publishedAt,
	}
}

// FromModelEpisodeList transforms a list of stored episodes
func FromModelEpisodeList(list []models.Episode) []Episode {
	result := make([]Episode, 0, len(list))
	for i := range list {
		result = append(result, *FromModelEpisode(&list[i]))
	}
	return result
}

// ApplyPodcastRequest copies a write payload onto a podcast model
func ApplyPodcastRequest(req *PodcastRequest, p *models.Podcast) {
	p.Title = req.Title
	if req.Slug != "" {
		p.Slug = req.Slug
	}
	p.Description = req.Description
	p.Category = req.Category
	p.AuthorName = req.AuthorName
	p.AuthorEmail = req.AuthorEmail
	p.Explicit = req.Explicit
	p.Copyright = req.Copyright
	p.ImageURL = req.ImageURL
	p.FeedburnerURL = req.FeedburnerURL
	p.Language = req.Language
}

// ApplyEpisodeRequest copies a write payload onto an episode model
func ApplyEpisodeRequest(req *EpisodeRequest, e *models.Episode) {
	e.Title = req.Title
	if req.Slug != "" {
		e.Slug = podcasts.Slugify(req.Slug)
	} else if e.Slug == "" {
		e.Slug = podcasts.Slugify(req.Title)
	}
	e.Description = req.Description
	e.AudioURL = req.AudioURL
	e.EnclosureType = req.EnclosureType
	e.EnclosureLength = req.EnclosureLength
	e.Duration = req.Duration
	e.Explicit = req.Explicit
	if req.PublishedAt != nil {
		ts := time.Unix(*req.PublishedAt, 0).UTC()
		e.PublishedAt = &ts
	}
}
