// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"

	"github.com/Sam-M345/Factify/feed"
	"github.com/Sam-M345/Factify/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// DateFormat is the strftime layout for fact and comment dates
const DateFormat = "%b %e, %Y %H:%M"

// Page is everything the full page template reads
type Page struct {
	// View is nil when loading failed
	View *feed.View
	// LoadError replaces the list with a single error row
	LoadError string
	// Alert is a one-shot banner from a rejected form submission
	Alert string

	Sort      models.SortPreference
	TextLimit int
	FormOpen  bool
	Form      models.CreateFactRequest
}

// DirectLink reports whether the page shows a single linked fact
func (p Page) DirectLink() bool {
	return p.View != nil && p.View.Query.DirectLink()
}

// Category is the active filter, "all" when none
func (p Page) Category() string {
	if p.View == nil || p.View.Query.Category == "" {
		return models.CategoryAll
	}
	return p.View.Query.Category
}

type Renderer struct {
	tmpl    *template.Template
	loc     *time.Location
	baseURL string
}

// New parses the embedded templates. Dates render in loc; share links are
// built on baseURL.
func New(loc *time.Location, baseURL string) (*Renderer, error) {
	if loc == nil {
		loc = time.UTC
	}
	r := &Renderer{loc: loc, baseURL: strings.TrimRight(baseURL, "/")}

	tmpl, err := template.New("").Funcs(r.funcs()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	r.tmpl = tmpl

	return r, nil
}

func (r *Renderer) funcs() template.FuncMap {
	return template.FuncMap{
		"color":      models.CategoryColor,
		"categories": func() []models.Category { return models.Categories },
		"anchor":     feed.Anchor,
		"shareURL":   r.ShareURL,
		"date":       r.Date,
		"iso": func(t time.Time) string {
			return t.UTC().Format(time.RFC3339)
		},
		"emoji": func(v models.VoteType) string { return v.Emoji() },
		"verb":  func(v models.VoteType) string { return v.Verb() },
	}
}

// Date formats t in the configured zone
func (r *Renderer) Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return strftime.Format(DateFormat, t.In(r.loc))
}

// ShareURL is the direct link for a fact
func (r *Renderer) ShareURL(id int64) string {
	return r.baseURL + "/#" + feed.Anchor(id)
}

// ShareText is the message handed to the share sheet
func ShareText(f models.Fact) string {
	return f.Text
}

// Page renders the full document. Output is buffered so a template error
// never leaves a half-written page.
func (r *Renderer) Page(w io.Writer, p Page) error {
	return r.execute(w, "layout", p)
}

// Facts renders only the list, as it appears inside the page
func (r *Renderer) Facts(w io.Writer, p Page) error {
	return r.execute(w, "facts", p)
}

func (r *Renderer) execute(w io.Writer, name string, data any) error {
	buf := new(bytes.Buffer)
	if err := r.tmpl.ExecuteTemplate(buf, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
