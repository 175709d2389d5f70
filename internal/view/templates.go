package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Assets returns the embedded static files, rooted so that the default
// avatar lives at images/default-avatar.svg.
func Assets() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

var pageTitles = map[Page]string{
	PageIndex:          "Home",
	PageSignup:         "Join",
	PageLogin:          "Login",
	PageUserDashboard:  "Dashboard",
	PageAdminDashboard: "Admin Dashboard",
}

// PageData is what a page template receives.
type PageData struct {
	Page   Page
	Title  string
	Doc    *Document
	Notice string
	Error  string
}

// Templates draws pages.
type Templates struct {
	set *template.Template
}

// LoadTemplates parses the embedded page templates.
func LoadTemplates() (*Templates, error) {
	set, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Templates{set: set}, nil
}

// Execute draws page p. A nil doc draws every target blank.
func (t *Templates) Execute(w io.Writer, p Page, doc *Document, notice, errMsg string) error {
	if doc == nil {
		doc = NewPageDocument(p)
	}
	return t.set.ExecuteTemplate(w, string(p), PageData{
		Page:   p,
		Title:  pageTitles[p],
		Doc:    doc,
		Notice: notice,
		Error:  errMsg,
	})
}
