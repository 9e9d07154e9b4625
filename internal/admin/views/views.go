// Package views renders the admin HTML views. The podcast table is built
// as a standalone fragment so it can be embedded in the admin index page
// and tested in isolation.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// DefaultExcerptLength bounds the plain-text description excerpt shown in
// table rows.
const DefaultExcerptLength = 250

const episodeLabelKey = "episode-count-link"

func init() {
	// One published episode gets a direct link, more get the full list.
	_ = message.Set(language.English, episodeLabelKey,
		plural.Selectf(1, "",
			plural.One, "View First Episode",
			plural.Other, "View All %[1]d Episodes"))
}

var episodePrinter = message.NewPrinter(language.English)

// EpisodeLabel returns the listing link text for a published episode count
func EpisodeLabel(count int) string {
	return episodePrinter.Sprintf(episodeLabelKey, count)
}

// Renderer holds the parsed admin template set
type Renderer struct {
	tmpl       *template.Template
	excerptLen int
}

// NewRenderer parses the embedded templates. excerptLen <= 0 falls back to
// DefaultExcerptLength.
func NewRenderer(excerptLen int) (*Renderer, error) {
	if excerptLen <= 0 {
		excerptLen = DefaultExcerptLength
	}

	r := &Renderer{excerptLen: excerptLen}

	tmpl, err := template.New("admin").Funcs(template.FuncMap{
		"excerpt": func(s string) string {
			return Excerpt(s, r.excerptLen)
		},
		"episodeLabel": EpisodeLabel,
		"pageURL": func(base string, page int) string {
			return fmt.Sprintf("%s?page=%d", base, page)
		},
	}).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing admin templates: %w", err)
	}

	r.tmpl = tmpl
	return r, nil
}

// Templates exposes the parsed set for gin's SetHTMLTemplate
func (r *Renderer) Templates() *template.Template {
	return r.tmpl
}

// PodcastTable renders just the table fragment
func (r *Renderer) PodcastTable(w io.Writer, data TableData) error {
	return r.tmpl.ExecuteTemplate(w, "podcasts_table", data)
}

// PodcastsIndex renders the full admin podcasts page
func (r *Renderer) PodcastsIndex(w io.Writer, data IndexData) error {
	return r.tmpl.ExecuteTemplate(w, "podcasts_index", data)
}

// Excerpt strips markup from rich text and truncates the remainder at a
// word boundary, appending an ellipsis when anything was cut.
func Excerpt(richText string, maxLen int) string {
	text := stripTags(richText)
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}

	cut := string(runes[:maxLen])
	if idx := strings.LastIndexByte(cut, ' '); idx > 0 {
		cut = cut[:idx]
	}
	return strings.TrimRight(cut, " .,;:") + "…"
}

// stripTags reduces an HTML fragment to its text content with whitespace
// collapsed. Script and style bodies are dropped entirely.
func stripTags(fragment string) string {
	tokenizer := html.NewTokenizer(strings.NewReader(fragment))
	var b strings.Builder
	skipDepth := 0

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(b.String()), " ")
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if tag := string(name); tag == "script" || tag == "style" {
				skipDepth++
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if tag := string(name); (tag == "script" || tag == "style") && skipDepth > 0 {
				skipDepth--
			}
		case html.TextToken:
			if skipDepth == 0 {
				b.Write(tokenizer.Text())
				b.WriteByte(' ')
			}
		}
	}
}
