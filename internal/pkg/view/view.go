package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"github.com/labstack/echo/v4"
)

//go:embed templates
var templateFS embed.FS

const baseFilename = "base.html"

// Renderer parses the embedded page templates and serves as the echo
// Renderer. Every page template is combined with the shared base layout.
type Renderer struct {
	views map[string]*template.Template
}

// NewRenderer parses all embedded page templates
func NewRenderer() (*Renderer, error) {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("failed to subtree template FS: %w", err)
	}

	pages, err := fs.Glob(sub, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to glob templates: %w", err)
	}

	views := make(map[string]*template.Template)
	for _, page := range pages {
		if page == baseFilename {
			continue
		}

		t, err := template.New(baseFilename).ParseFS(sub, baseFilename, page)
		if err != nil {
			return nil, fmt.Errorf("failed to parse view %s: %w", page, err)
		}

		name := page[:len(page)-len(".html")]
		views[name] = t
	}

	return &Renderer{views: views}, nil
}

// Render renders the named view with data, implementing echo.Renderer
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	t, ok := r.views[name]
	if !ok {
		return fmt.Errorf("unknown view: %s", name)
	}
	return t.Execute(w, data)
}
