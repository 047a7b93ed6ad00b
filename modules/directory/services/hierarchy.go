package services

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/jacksonlee411/Leadership-Explorer/modules/directory/domain/types"
)

const (
	MessageNoData      = "No organizational data available."
	MessageNoTopLevel  = "No top-level organizations found."
	NoteCardEmpty      = "No members or sub-committees listed."
	noteTabEmptyPrefix = "No members or sub-committees listed for "
)

// Leader is an official as shown inside one body.
type Leader struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	ChineseName         string `json:"chineseName,omitempty"`
	Age                 string `json:"age,omitempty"`
	Generation          string `json:"generation,omitempty"`
	Hometown            string `json:"hometown,omitempty"`
	Title               string `json:"title,omitempty"`
	SpecificTitleInBody string `json:"specificTitleInBody,omitempty"`
	Education           string `json:"education,omitempty"`
	Visible             bool   `json:"visible"`
	Highlight           bool   `json:"highlight"`
}

// Hierarchy is the rendered organization chart: one tab per root body.
type Hierarchy struct {
	Message    string `json:"message,omitempty"`
	DefaultTab int64  `json:"default_tab,omitempty"`
	Tabs       []Tab  `json:"tabs"`
}

type Tab struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Caption   string   `json:"caption,omitempty"`
	Leaders   []Leader `json:"leaders"`
	Cards     []Card   `json:"cards"`
	EmptyNote string   `json:"empty_note,omitempty"`
}

// Card is a first-level child of a root body.
type Card struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Caption   string    `json:"caption,omitempty"`
	Leaders   []Leader  `json:"leaders"`
	Sections  []Section `json:"sections"`
	EmptyNote string    `json:"empty_note,omitempty"`
}

// Section is a body nested two or more levels below a root.
type Section struct {
	ID       int64     `json:"id"`
	Name     string    `json:"name"`
	Caption  string    `json:"caption,omitempty"`
	Leaders  []Leader  `json:"leaders"`
	Children []Section `json:"children"`
}

// Tab returns the tab for id, or false.
func (h Hierarchy) Tab(id int64) (Tab, bool) {
	for _, t := range h.Tabs {
		if t.ID == id {
			return t, true
		}
	}
	return Tab{}, false
}

// Leaders returns every leader in the tree in render order.
func (h Hierarchy) Leaders() []Leader {
	var out []Leader
	var walk func([]Section)
	walk = func(ss []Section) {
		for _, s := range ss {
			out = append(out, s.Leaders...)
			walk(s.Children)
		}
	}
	for _, t := range h.Tabs {
		out = append(out, t.Leaders...)
		for _, c := range t.Cards {
			out = append(out, c.Leaders...)
			walk(c.Sections)
		}
	}
	return out
}

type hierarchyRenderer struct {
	children  map[int64][]types.Body
	officials map[int64]types.Official
	query     string
	filters   Filters
}

// RenderHierarchy resolves body members against officials and computes per-leader visibility
// for the search query and filters. Member ids without an official are dropped.
func RenderHierarchy(bodies []types.Body, officials []types.Official, query string, filters Filters) Hierarchy {
	if len(bodies) == 0 {
		return Hierarchy{Message: MessageNoData, Tabs: []Tab{}}
	}

	r := hierarchyRenderer{
		children:  make(map[int64][]types.Body),
		officials: make(map[int64]types.Official, len(officials)),
		query:     query,
		filters:   filters,
	}
	for _, o := range officials {
		if _, ok := r.officials[o.ID]; !ok {
			r.officials[o.ID] = o
		}
	}

	var roots []types.Body
	for _, b := range bodies {
		if b.Parent == nil {
			roots = append(roots, b)
			continue
		}
		r.children[*b.Parent] = append(r.children[*b.Parent], b)
	}
	sortByOrder(roots)
	for id := range r.children {
		sortByOrder(r.children[id])
	}

	if len(roots) == 0 {
		return Hierarchy{Message: MessageNoTopLevel, Tabs: []Tab{}}
	}

	h := Hierarchy{DefaultTab: roots[0].ID, Tabs: make([]Tab, 0, len(roots))}
	for _, root := range roots {
		h.Tabs = append(h.Tabs, r.tab(root))
	}
	return h
}

func (r hierarchyRenderer) tab(root types.Body) Tab {
	t := Tab{
		ID:      root.ID,
		Name:    root.Name,
		Caption: root.CaptionText(),
		Leaders: r.members(root),
		Cards:   []Card{},
	}
	path := map[int64]bool{root.ID: true}
	for _, child := range r.children[root.ID] {
		if path[child.ID] {
			continue
		}
		t.Cards = append(t.Cards, r.card(child, path))
	}
	if len(t.Leaders) == 0 && len(t.Cards) == 0 && t.Caption == "" {
		t.EmptyNote = noteTabEmptyPrefix + root.Name + "."
	}
	return t
}

func (r hierarchyRenderer) card(b types.Body, path map[int64]bool) Card {
	path[b.ID] = true
	defer delete(path, b.ID)

	c := Card{
		ID:       b.ID,
		Name:     b.Name,
		Caption:  b.CaptionText(),
		Leaders:  r.members(b),
		Sections: []Section{},
	}
	grandchildren := r.children[b.ID]
	for _, gc := range grandchildren {
		if s, ok := r.section(gc, path); ok {
			c.Sections = append(c.Sections, s)
		}
	}
	if len(c.Leaders) == 0 && len(grandchildren) == 0 {
		c.EmptyNote = NoteCardEmpty
	}
	return c
}

// section renders b and its descendants. It reports false for a body with no name, no
// resolvable members and no children, and for a body already on the current path.
func (r hierarchyRenderer) section(b types.Body, path map[int64]bool) (Section, bool) {
	if path[b.ID] {
		return Section{}, false
	}
	path[b.ID] = true
	defer delete(path, b.ID)

	nested := r.children[b.ID]
	leaders := r.members(b)
	if b.Name == "" && len(leaders) == 0 && len(nested) == 0 {
		return Section{}, false
	}

	s := Section{
		ID:       b.ID,
		Name:     b.Name,
		Caption:  b.CaptionText(),
		Leaders:  leaders,
		Children: []Section{},
	}
	for _, n := range nested {
		if child, ok := r.section(n, path); ok {
			s.Children = append(s.Children, child)
		}
	}
	return s, true
}

func (r hierarchyRenderer) members(b types.Body) []Leader {
	out := make([]Leader, 0, len(b.Members))
	for _, m := range b.Members {
		o, ok := r.officials[m.ID]
		if !ok {
			continue
		}
		role := ""
		if m.Title != nil {
			role = *m.Title
		}
		out = append(out, r.leader(o, role))
	}
	return out
}

func (r hierarchyRenderer) leader(o types.Official, role string) Leader {
	searchMatch := MatchSearch(o, r.query)
	active := r.filters.Active()
	filterMatch := MatchFilters(o, r.filters)

	return Leader{
		ID:                  strconv.FormatInt(o.ID, 10),
		Name:                o.NameEN,
		ChineseName:         o.NameCN,
		Age:                 o.AgeLabel(),
		Generation:          o.GenerationLabel(),
		Hometown:            o.HomeProvince,
		Title:               strings.Join(o.Positions, "\n"),
		SpecificTitleInBody: role,
		Education:           educationText(o.Degrees),
		Visible:             searchMatch && (!active || filterMatch),
		Highlight:           searchMatch && active && filterMatch,
	}
}

func educationText(degrees []types.Degree) string {
	if len(degrees) == 0 {
		return ""
	}
	names := make([]string, 0, len(degrees))
	for _, d := range degrees {
		if d.Name == "" {
			names = append(names, "N/A")
			continue
		}
		names = append(names, d.Name)
	}
	return strings.Join(names, "\n")
}

func sortByOrder(bodies []types.Body) {
	slices.SortStableFunc(bodies, func(a, b types.Body) int {
		oa, ob := orderKey(a), orderKey(b)
		switch {
		case oa < ob:
			return -1
		case oa > ob:
			return 1
		default:
			return 0
		}
	})
}

func orderKey(b types.Body) float64 {
	if b.Order == nil {
		return math.Inf(1)
	}
	return float64(*b.Order)
}
