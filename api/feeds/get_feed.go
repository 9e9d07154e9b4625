package feeds

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/castkeep/castkeep/api/types"
	"github.com/castkeep/castkeep/internal/models"
	"github.com/gin-gonic/gin"
)

const feedContentType = "application/rss+xml; charset=utf-8"

// GetFeed handles GET /podcasts/:slug/feed.xml
//
//	@Summary		Podcast RSS feed
//	@Description	Returns the RSS 2.0 feed for a podcast. Redirects to FeedBurner when one is configured.
//	@Tags			feeds
//	@Produce		xml
//	@Param			slug	path		string	true	"Podcast slug"
//	@Param			limit	query		int		false	"Maximum number of episodes"	default(25)
//	@Success		200		{string}	string	"RSS document"
//	@Failure		404		{object}	types.ErrorResponse
//	@Failure		500		{object}	types.ErrorResponse
//	@Router			/podcasts/{slug}/feed.xml [get]
func GetFeed(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		podcast, err := deps.PodcastService.GetBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			types.RespondError(c, err)
			return
		}

		// Aggregators that proxy the feed through FeedBurner get
		// redirected there, except FeedBurner itself fetching the
		// source, or explicit bypass for debugging.
		if podcast.FeedburnerURL != "" && !fetchedByFeedburner(c) {
			c.Redirect(http.StatusFound, podcast.FeedburnerURL)
			return
		}

		limit := clampLimit(c.Query("limit"), deps.Config.Feeds.DefaultLimit, deps.Config.Feeds.MaxLimit)

		cacheKey := fmt.Sprintf("feed:%s:%d", podcast.Slug, limit)
		if deps.FeedCache != nil {
			if body, ok := deps.FeedCache.Get(c.Request.Context(), cacheKey); ok {
				c.Data(http.StatusOK, feedContentType, body)
				return
			}
		}

		episodes, err := deps.EpisodeService.Latest(c.Request.Context(), podcast.ID, limit)
		if err != nil {
			types.RespondError(c, err)
			return
		}

		body, err := buildFeed(podcast, episodes, deps.Config.Feeds.BaseURL)
		if err != nil {
			types.RespondError(c, err)
			return
		}

		if deps.FeedCache != nil {
			_ = deps.FeedCache.Set(c.Request.Context(), cacheKey, body, deps.Config.Feeds.CacheTTL)
		}

		c.Data(http.StatusOK, feedContentType, body)
	}
}

// fetchedByFeedburner reports whether this request should skip the
// FeedBurner redirect: FeedBurner pulling the source feed, or a
// caller passing feedburner_bypass.
func fetchedByFeedburner(c *gin.Context) bool {
	if strings.Contains(strings.ToLower(c.GetHeader("User-Agent")), "feedburner") {
		return true
	}
	_, bypass := c.GetQuery("feedburner_bypass")
	return bypass
}

func clampLimit(raw string, defaultLimit, maxLimit int) int {
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}

func buildFeed(podcast *models.Podcast, episodes []models.Episode, baseURL string) ([]byte, error) {
	channel := Channel{
		Title:          podcast.Title,
		Link:           fmt.Sprintf("%s/podcasts/%s", baseURL, podcast.Slug),
		Description:    podcast.Description,
		Language:       podcast.Language,
		Copyright:      podcast.Copyright,
		LastBuildDate:  time.Now().UTC().Format(time.RFC1123Z),
		ItunesAuthor:   podcast.AuthorName,
		ItunesExplicit: explicitTag(podcast.Explicit),
		Category:       podcast.Category,
	}
	if podcast.ImageURL != "" {
		channel.ItunesImage = &ItunesImage{Href: podcast.ImageURL}
	}
	if podcast.AuthorEmail != "" {
		channel.ItunesOwner = &ItunesOwner{Name: podcast.AuthorName, Email: podcast.AuthorEmail}
	}

	for i := range episodes {
		channel.Items = append(channel.Items, buildItem(&episodes[i]))
	}

	rss := RSS{
		Version:      "2.0",
		ItunesXMLNS:  "http://www.itunes.com/dtds/podcast-1.0.dtd",
		ContentXMLNS: "http://purl.org/rss/1.0/modules/content/",
		Channel:      channel,
	}

	body, err := xml.MarshalIndent(rss, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

func buildItem(episode *models.Episode) Item {
	item := Item{
		Title:          episode.Title,
		GUID:           GUID{Value: episode.GUID, IsPermaLink: "false"},
		Description:    episode.Description,
		ItunesExplicit: explicitTag(episode.Explicit),
	}
	if episode.PublishedAt != nil {
		item.PubDate = episode.PublishedAt.UTC().Format(time.RFC1123Z)
	}
	if episode.AudioURL != "" {
		item.Enclosure = &Enclosure{
			URL:    episode.AudioURL,
			Type:   enclosureType(episode.EnclosureType),
			Length: episode.EnclosureLength,
		}
	}
	if episode.Duration != nil {
		item.ItunesDuration = formatDuration(*episode.Duration)
	}
	return item
}

func enclosureType(mime string) string {
	if mime == "" {
		return "audio/mpeg"
	}
	return mime
}

func formatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
