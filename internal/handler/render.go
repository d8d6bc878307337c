package handler

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/chetan-code/todoweb/internal/models"
	"github.com/chetan-code/todoweb/internal/session"
)

//go:embed templates
var templatesFS embed.FS

// pageTemplates are the files that define a "content" block.
var pageTemplates = []string{
	"auth/login.html",
	"auth/register.html",
	"todos/list.html",
	"todos/detail.html",
	"todos/new.html",
	"user.html",
}

// renderer holds one template set per page. Each set is the base layout and
// partials with a single page's "content" block parsed on top.
type renderer struct {
	pages map[string]*template.Template
}

func newRenderer() *renderer {
	base := template.Must(template.New("").
		Funcs(templateFuncs()).
		ParseFS(templatesFS, "templates/base.html", "templates/partials/*.html"))

	pages := make(map[string]*template.Template, len(pageTemplates))
	for _, name := range pageTemplates {
		tmpl := template.Must(base.Clone())
		pages[name] = template.Must(tmpl.ParseFS(templatesFS, "templates/"+name))
	}
	return &renderer{pages: pages}
}

// PageData contains common data for all pages.
type PageData struct {
	Title         string
	CurrentPath   string
	Authenticated bool
	Account       string
	Flashes       []session.Notification
	Notice        *Notice
	Data          any
}

// Notice is a banner explaining why a page is missing its data.
type Notice struct {
	Kind    string // "not_found", "unauthorized", "unreachable", "error"
	Message string
}

// page describes one render.
type page struct {
	Template string
	Title    string
	Status   int
	Notice   *Notice
	Data     any
}

// render executes the page into a buffer first so a template failure becomes a
// clean 500 instead of a half-written page. Pending flashes are consumed here.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, sess session.Session, p page) {
	tmpl, ok := h.renderer.pages[p.Template]
	if !ok {
		slog.Error("template_not_found", "template", p.Template)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := PageData{
		Title:         p.Title,
		CurrentPath:   r.URL.Path,
		Authenticated: sess.Authenticated(),
		Flashes:       h.flashes.Pop(w, r),
		Notice:        p.Notice,
		Data:          p.Data,
	}
	if claims, ok := sess.Claims(); ok {
		data.Account = claims.Email
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		slog.Error("template_render_failed", "template", p.Template, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	status := p.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Warn("response_write_failed", "path", r.URL.Path, "error", err)
	}
}

// templateFuncs returns custom template functions.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"markdown":    markdown,
		"formatTime":  formatTime,
		"formatDate":  models.FormatSQLDate,
		"statusClass": statusClass,
		"dict":        dictFunc,
	}
}

var (
	markdownRenderer = goldmark.New(goldmark.WithExtensions(extension.GFM))
	markdownPolicy   = bluemonday.UGCPolicy()
)

// markdown renders todo descriptions. Output is sanitized, so it is safe to
// mark as HTML.
func markdown(s string) template.HTML {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := markdownRenderer.Convert([]byte(s), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(s))
	}
	return template.HTML(markdownPolicy.SanitizeBytes(buf.Bytes()))
}

func formatTime(s string) string {
	if s == "" {
		return "-"
	}
	t, ok := models.ParseTimestamp(s)
	if !ok {
		return s
	}
	return t.Format("2006-01-02 15:04")
}

func statusClass(s models.Status) string {
	switch s {
	case models.StatusNotStarted:
		return "status-not-started"
	case models.StatusInProgress:
		return "status-in-progress"
	case models.StatusDone:
		return "status-done"
	default:
		return "status-unknown"
	}
}

// dictFunc creates a map from key-value pairs for use in templates.
// Usage: {{template "todos" (dict "Name" "All Todos" "Todos" .Todos)}}
func dictFunc(values ...any) (map[string]any, error) {
	if len(values)%2 != 0 {
		return nil, fmt.Errorf("dict: odd number of arguments")
	}
	dict := make(map[string]any, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		key, ok := values[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", values[i])
		}
		dict[key] = values[i+1]
	}
	return dict, nil
}
