package server

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/jacksonlee411/Leadership-Explorer/internal/routing"
	"github.com/jacksonlee411/Leadership-Explorer/modules/directory/services"
	"go.uber.org/zap"
)

//go:embed assets/*
var embeddedAssets embed.FS

//go:embed templates/explorer.html
var explorerTemplateText string

const msgLoadFailed = "Failed to load data. Please try again later."

var explorerTemplate = template.Must(template.New("explorer").Funcs(template.FuncMap{
	"lines": func(s string) []string { return strings.Split(s, "\n") },
}).Parse(explorerTemplateText))

type explorerUI struct {
	facade services.DirectoryFacade
	logger *zap.Logger
}

type explorerPage struct {
	Query    string
	Tab      string
	Facets   []facetSelect
	Message  string
	Tabs     []tabLink
	Active   *services.Tab
	ResetURL string
	Error    string
	RetryURL string
}

type facetSelect struct {
	Param    string
	Label    string
	Selected string
	Options  []services.FacetOption
}

type tabLink struct {
	Name   string
	URL    string
	Active bool
}

func (u explorerUI) handlePage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := strings.TrimSpace(q.Get("q"))
	filters := services.Filters{
		Hometown:       filterParam(q, "hometown"),
		EducationLevel: filterParam(q, "education_level"),
		EducationType:  filterParam(q, "education_type"),
		Generation:     filterParam(q, "generation"),
	}

	snap, err := u.facade.Load(r.Context())
	if err != nil {
		u.logger.Error(msgLoadFailed, append([]zap.Field{
			zap.String("request_id", requestIDFromContext(r.Context())),
		}, dbErrorFields(err)...)...)
		renderExplorer(w, http.StatusInternalServerError, explorerPage{Error: msgLoadFailed, RetryURL: r.URL.RequestURI()})
		return
	}

	h := services.RenderHierarchy(snap.Bodies, snap.Officials, query, filters)
	page := explorerPage{Query: query, Message: h.Message, ResetURL: "/"}
	for _, f := range services.ComputeFacets(snap.Officials).List() {
		page.Facets = append(page.Facets, facetSelect{
			Param:    f.Key,
			Label:    f.Label,
			Selected: selectedValue(filters, f.Key),
			Options:  f.Options,
		})
	}

	active := h.DefaultTab
	if id, err := strconv.ParseInt(q.Get("tab"), 10, 64); err == nil {
		if _, ok := h.Tab(id); ok {
			active = id
		}
	}
	for i, t := range h.Tabs {
		id := strconv.FormatInt(t.ID, 10)
		page.Tabs = append(page.Tabs, tabLink{Name: t.Name, URL: withParam(q, "tab", id), Active: t.ID == active})
		if t.ID == active {
			page.Active = &h.Tabs[i]
			page.Tab = id
			page.ResetURL = "/?tab=" + id
		}
	}

	renderExplorer(w, http.StatusOK, page)
}

func renderExplorer(w http.ResponseWriter, status int, page explorerPage) {
	var buf bytes.Buffer
	if err := explorerTemplate.Execute(&buf, page); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// filterParam reads a facet filter; "all" and "" both mean no filter.
func filterParam(q url.Values, key string) string {
	v := strings.TrimSpace(q.Get(key))
	if strings.EqualFold(v, "all") {
		return ""
	}
	return v
}

func selectedValue(f services.Filters, key string) string {
	switch key {
	case "hometown":
		return f.Hometown
	case "education_level":
		return f.EducationLevel
	case "education_type":
		return f.EducationType
	case "generation":
		return f.Generation
	}
	return ""
}

func withParam(q url.Values, key, value string) string {
	next := url.Values{}
	for k, vs := range q {
		next[k] = append([]string(nil), vs...)
	}
	next.Set(key, value)
	return "/?" + next.Encode()
}

func handleAsset(w http.ResponseWriter, r *http.Request) {
	serveAsset(w, r, path.Base(r.URL.Path))
}

// handlePlaceholder serves the leader portrait placeholder; size query parameters are ignored.
func handlePlaceholder(w http.ResponseWriter, r *http.Request) {
	serveAsset(w, r, "placeholder.svg")
}

func serveAsset(w http.ResponseWriter, r *http.Request, name string) {
	p := "assets/" + name
	if _, err := fs.Stat(embeddedAssets, p); err != nil {
		routing.WriteError(w, r, routing.RouteClassStatic, http.StatusNotFound, "not found", "")
		return
	}
	http.ServeFileFS(w, r, embeddedAssets, p)
}
