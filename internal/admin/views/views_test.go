package views

import (
	"bytes"
	"strings"
	"testing"

	"github.com/castkeep/castkeep/internal/models"
	"github.com/castkeep/castkeep/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer(0)
	require.NoError(t, err)
	return r
}

func podcastFixture(id uint, title string) models.Podcast {
	p := models.Podcast{
		Title:       title,
		Description: "<p>A show about things.</p>",
		Category:    "Technology",
		AuthorName:  "Ada Example",
		AuthorEmail: "ada@example.com",
		Copyright:   "2026 Example Media",
		ImageURL:    "https://cdn.example.com/art.jpg",
	}
	p.ID = id
	return p
}

func renderTable(t *testing.T, r *Renderer, data TableData) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, r.PodcastTable(&buf, data))
	return buf.String()
}

func TestPodcastTableEmptyCollection(t *testing.T) {
	r := newTestRenderer(t)
	data := NewTableData(nil, pagination.New(1, 25, 0), "/admin", 2)

	out := renderTable(t, r, data)

	assert.Equal(t, 1, strings.Count(out, "None Found"))
	assert.Contains(t, out, `class="empty-row"`)
	assert.NotContains(t, out, `class="podcast-heading"`)
	assert.NotContains(t, out, `class="podcast-row"`)
}

func TestPodcastTableRowCounts(t *testing.T) {
	r := newTestRenderer(t)

	rows := []PodcastRow{
		NewPodcastRow(podcastFixture(1, "First Cast"), 0, "/admin"),
		NewPodcastRow(podcastFixture(2, "Second Cast"), 0, "/admin"),
		NewPodcastRow(podcastFixture(3, "Third Cast"), 0, "/admin"),
	}
	data := NewTableData(rows, pagination.New(1, 25, 3), "/admin", 2)

	out := renderTable(t, r, data)

	assert.Equal(t, 3, strings.Count(out, `class="podcast-heading"`))
	assert.Equal(t, 3, strings.Count(out, `class="podcast-row"`))
	assert.NotContains(t, out, "None Found")
	assert.Contains(t, out, `id="media-table"`)
	assert.Contains(t, out, `href="/admin/podcasts/1/edit"`)
}

func TestPodcastTableHeadToggle(t *testing.T) {
	r := newTestRenderer(t)
	data := NewTableData(nil, pagination.New(1, 25, 0), "/admin", 2)

	assert.Contains(t, renderTable(t, r, data), "<thead>")

	data.IncludeHead = false
	assert.NotContains(t, renderTable(t, r, data), "<thead>")
}

func TestPodcastTableExplicitBadge(t *testing.T) {
	r := newTestRenderer(t)

	explicit := podcastFixture(1, "Explicit Cast")
	explicit.Explicit = true
	clean := podcastFixture(2, "Clean Cast")

	t.Run("explicit podcast", func(t *testing.T) {
		rows := []PodcastRow{NewPodcastRow(explicit, 0, "/admin")}
		out := renderTable(t, r, NewTableData(rows, pagination.New(1, 25, 1), "/admin", 2))
		assert.Contains(t, out, ">Explicit</span>")
		assert.NotContains(t, out, ">Clean</span>")
	})

	t.Run("clean podcast", func(t *testing.T) {
		rows := []PodcastRow{NewPodcastRow(clean, 0, "/admin")}
		out := renderTable(t, r, NewTableData(rows, pagination.New(1, 25, 1), "/admin", 2))
		assert.Contains(t, out, ">Clean</span>")
		assert.NotContains(t, out, ">Explicit</span>")
	})
}

func TestPodcastTableEpisodeLinks(t *testing.T) {
	r := newTestRenderer(t)

	t.Run("single episode links to it directly", func(t *testing.T) {
		p := podcastFixture(1, "One Episode")
		p.EpisodeCount = 1
		rows := []PodcastRow{NewPodcastRow(p, 42, "/admin")}
		out := renderTable(t, r, NewTableData(rows, pagination.New(1, 25, 1), "/admin", 2))

		assert.Contains(t, out, "View First Episode")
		assert.Contains(t, out, `href="/admin/episodes/42/edit"`)
		assert.NotContains(t, out, "View All")
	})

	t.Run("several episodes link to the list", func(t *testing.T) {
		p := podcastFixture(2, "Many Episodes")
		p.EpisodeCount = 7
		rows := []PodcastRow{NewPodcastRow(p, 0, "/admin")}
		out := renderTable(t, r, NewTableData(rows, pagination.New(1, 25, 1), "/admin", 2))

		assert.Contains(t, out, "View All 7 Episodes")
		assert.Contains(t, out, `href="/admin/podcasts/2/episodes"`)
		assert.NotContains(t, out, "View First Episode")
	})

	t.Run("no episodes means no listing link", func(t *testing.T) {
		p := podcastFixture(3, "Empty")
		rows := []PodcastRow{NewPodcastRow(p, 0, "/admin")}
		out := renderTable(t, r, NewTableData(rows, pagination.New(1, 25, 1), "/admin", 2))

		assert.NotContains(t, out, `class="episode-count"`)
		assert.Contains(t, out, "Add episode")
	})
}

func TestPodcastTableAuthorMailto(t *testing.T) {
	r := newTestRenderer(t)

	t.Run("with email", func(t *testing.T) {
		rows := []PodcastRow{NewPodcastRow(podcastFixture(1, "Mailable"), 0, "/admin")}
		out := renderTable(t, r, NewTableData(rows, pagination.New(1, 25, 1), "/admin", 2))
		assert.Contains(t, out, `href="mailto:ada@example.com"`)
		assert.Contains(t, out, "Ada Example")
	})

	t.Run("without email", func(t *testing.T) {
		p := podcastFixture(2, "Unmailable")
		p.AuthorEmail = ""
		rows := []PodcastRow{NewPodcastRow(p, 0, "/admin")}
		out := renderTable(t, r, NewTableData(rows, pagination.New(1, 25, 1), "/admin", 2))
		assert.NotContains(t, out, "mailto:")
		assert.Contains(t, out, "Ada Example")
	})
}

func TestPodcastTableOptionalFields(t *testing.T) {
	r := newTestRenderer(t)

	p := podcastFixture(1, "Sparse")
	p.Copyright = ""
	p.Category = ""
	p.ImageURL = ""
	rows := []PodcastRow{NewPodcastRow(p, 0, "/admin")}
	out := renderTable(t, r, NewTableData(rows, pagination.New(1, 25, 1), "/admin", 2))

	assert.NotContains(t, out, "Copyright:")
	assert.Contains(t, out, "Category: None")
	assert.Contains(t, out, PlaceholderThumb)
}

func TestPaginationFooter(t *testing.T) {
	r := newTestRenderer(t)

	rows := []PodcastRow{NewPodcastRow(podcastFixture(1, "Paged"), 0, "/admin")}
	data := NewTableData(rows, pagination.New(3, 10, 95), "/admin", 2)
	out := renderTable(t, r, data)

	assert.Contains(t, out, `class="page-link current"`)
	assert.Contains(t, out, `href="/admin/podcasts?page=2"`)
	assert.Contains(t, out, `href="/admin/podcasts?page=4"`)
	assert.Contains(t, out, "Previous")
	assert.Contains(t, out, "Next")
	assert.Contains(t, out, "21&ndash;30 of 95")
}

func TestPodcastsIndexWrapsTable(t *testing.T) {
	r := newTestRenderer(t)

	rows := []PodcastRow{NewPodcastRow(podcastFixture(1, "Wrapped"), 0, "/admin")}
	data := IndexData{
		Table:         NewTableData(rows, pagination.New(1, 25, 1), "/admin", 2),
		NewPodcastURL: "/admin/podcasts/new",
	}

	var buf bytes.Buffer
	require.NoError(t, r.PodcastsIndex(&buf, data))
	out := buf.String()

	assert.Contains(t, out, "<h1>Podcasts</h1>")
	assert.Contains(t, out, `href="/admin/podcasts/new"`)
	assert.Contains(t, out, `id="media-table"`)
	assert.Contains(t, out, "Wrapped")
}

func TestEpisodeLabel(t *testing.T) {
	assert.Equal(t, "View First Episode", EpisodeLabel(1))
	assert.Equal(t, "View All 2 Episodes", EpisodeLabel(2))
	assert.Equal(t, "View All 120 Episodes", EpisodeLabel(120))
}

func TestExcerpt(t *testing.T) {
	t.Run("strips markup", func(t *testing.T) {
		got := Excerpt("<p>Hello <strong>world</strong></p>", 100)
		assert.Equal(t, "Hello world", got)
	})

	t.Run("drops script bodies", func(t *testing.T) {
		got := Excerpt("<p>Safe</p><script>alert('x')</script>", 100)
		assert.Equal(t, "Safe", got)
	})

	t.Run("collapses whitespace", func(t *testing.T) {
		got := Excerpt("<p>one</p>\n\n<p>two</p>", 100)
		assert.Equal(t, "one two", got)
	})

	t.Run("truncates at a word boundary with ellipsis", func(t *testing.T) {
		got := Excerpt("alpha beta gamma delta", 12)
		assert.Equal(t, "alpha beta…", got)
	})

	t.Run("short text untouched", func(t *testing.T) {
		got := Excerpt("short", 250)
		assert.Equal(t, "short", got)
	})
}

func TestNewPodcastRowAuthorFallback(t *testing.T) {
	p := podcastFixture(1, "Fallback")
	p.AuthorName = ""

	row := NewPodcastRow(p, 0, "/admin")
	assert.Equal(t, "ada@example.com", row.AuthorDisplay)
}
