package views

import (
	"fmt"

	"github.com/castkeep/castkeep/internal/models"
	"github.com/castkeep/castkeep/pkg/pagination"
)

// DefaultTableID is the element id used when the caller does not pick one
const DefaultTableID = "media-table"

// PlaceholderThumb is shown for podcasts without cover art
const PlaceholderThumb = "/static/images/podcast-thumb-s.png"

// tableColumns is the column count the footer and placeholder rows span
const tableColumns = 3

// PodcastRow is the view model for one podcast in the admin table
type PodcastRow struct {
	ID              uint
	Title           string
	DescriptionHTML string
	Category        string
	AuthorDisplay   string
	AuthorEmail     string
	Explicit        bool
	Copyright       string
	ThumbURL        string
	EpisodeCount    int

	EditURL       string
	AddEpisodeURL string
	EpisodesURL   string
}

// TableData drives the podcasts_table template
type TableData struct {
	Rows        []PodcastRow
	IncludeHead bool
	TableID     string
	ColSpan     int
	Page        pagination.Page
	PageWindow  []int
	BaseURL     string
}

// IndexData drives the full admin podcasts page
type IndexData struct {
	Table         TableData
	NewPodcastURL string
}

// NewPodcastRow builds the view model for one podcast. firstEpisodeID is
// the oldest published episode, used as the link target when the podcast
// has exactly one episode; pass 0 when there is none.
func NewPodcastRow(p models.Podcast, firstEpisodeID uint, basePath string) PodcastRow {
	row := PodcastRow{
		ID:              p.ID,
		Title:           p.Title,
		DescriptionHTML: p.Description,
		Category:        p.Category,
		AuthorEmail:     p.AuthorEmail,
		Explicit:        p.Explicit,
		Copyright:       p.Copyright,
		ThumbURL:        p.ImageURL,
		EpisodeCount:    p.EpisodeCount,
		EditURL:         fmt.Sprintf("%s/podcasts/%d/edit", basePath, p.ID),
		AddEpisodeURL:   fmt.Sprintf("%s/episodes/new?podcast_id=%d", basePath, p.ID),
	}

	row.AuthorDisplay = p.AuthorName
	if row.AuthorDisplay == "" {
		row.AuthorDisplay = p.AuthorEmail
	}

	if row.ThumbURL == "" {
		row.ThumbURL = PlaceholderThumb
	}

	switch {
	case p.EpisodeCount == 1 && firstEpisodeID != 0:
		row.EpisodesURL = fmt.Sprintf("%s/episodes/%d/edit", basePath, firstEpisodeID)
	case p.EpisodeCount > 0:
		row.EpisodesURL = fmt.Sprintf("%s/podcasts/%d/episodes", basePath, p.ID)
	}

	return row
}

// NewTableData assembles the fragment input with its defaults: thead on,
// the shared element id, and a pagination window around the current page.
func NewTableData(rows []PodcastRow, page pagination.Page, basePath string, window int) TableData {
	return TableData{
		Rows:        rows,
		IncludeHead: true,
		TableID:     DefaultTableID,
		ColSpan:     tableColumns,
		Page:        page,
		PageWindow:  page.Window(window),
		BaseURL:     basePath + "/podcasts",
	}
}
