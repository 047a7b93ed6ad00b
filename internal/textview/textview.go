// Package textview renders the explorer hierarchy, facets and leadership aggregation for
// terminals.
package textview

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jacksonlee411/Leadership-Explorer/modules/directory/domain/types"
	"github.com/jacksonlee411/Leadership-Explorer/modules/directory/services"
)

const indentUnit = "  "

type Renderer struct {
	out       io.Writer
	heading   lipgloss.Style
	subtitle  lipgloss.Style
	caption   lipgloss.Style
	dim       lipgloss.Style
	highlight lipgloss.Style
	note      lipgloss.Style
}

// New returns a Renderer whose styles adapt to the color support of out.
func New(out io.Writer) *Renderer {
	r := lipgloss.NewRenderer(out)
	return &Renderer{
		out:       out,
		heading:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#991b1b")),
		subtitle:  r.NewStyle().Bold(true),
		caption:   r.NewStyle().Italic(true).Foreground(lipgloss.Color("#6b7280")),
		dim:       r.NewStyle().Faint(true),
		highlight: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#f59e0b")),
		note:      r.NewStyle().Foreground(lipgloss.Color("#6b7280")),
	}
}

// Hierarchy writes the tab with id tabID, or every tab when tabID is 0. It reports false when
// tabID names no tab.
func (r *Renderer) Hierarchy(h services.Hierarchy, tabID int64) bool {
	if h.Message != "" {
		r.line(0, r.note.Render(h.Message))
		return true
	}
	if tabID != 0 {
		t, ok := h.Tab(tabID)
		if !ok {
			return false
		}
		r.tab(t)
		return true
	}
	for i, t := range h.Tabs {
		if i > 0 {
			r.line(0, "")
		}
		r.tab(t)
	}
	return true
}

func (r *Renderer) tab(t services.Tab) {
	r.line(0, r.heading.Render(fmt.Sprintf("%s [%d]", t.Name, t.ID)))
	if t.Caption != "" {
		r.line(0, r.caption.Render(t.Caption))
	}
	r.leaders(1, t.Leaders)
	for _, c := range t.Cards {
		r.line(1, r.subtitle.Render(c.Name))
		if c.Caption != "" {
			r.line(1, r.caption.Render(c.Caption))
		}
		r.leaders(2, c.Leaders)
		for _, s := range c.Sections {
			r.section(2, s)
		}
		if c.EmptyNote != "" {
			r.line(2, r.note.Render(c.EmptyNote))
		}
	}
	if t.EmptyNote != "" {
		r.line(1, r.note.Render(t.EmptyNote))
	}
}

func (r *Renderer) section(depth int, s services.Section) {
	if s.Name != "" {
		r.line(depth, r.subtitle.Render(s.Name))
	}
	if s.Caption != "" {
		r.line(depth, r.caption.Render(s.Caption))
	}
	r.leaders(depth+1, s.Leaders)
	for _, c := range s.Children {
		r.section(depth+1, c)
	}
}

func (r *Renderer) leaders(depth int, leaders []services.Leader) {
	for _, l := range leaders {
		r.line(depth, r.leader(l))
	}
}

// leader formats one entry: "*" marks a filter match, "-" an official hidden by the
// current search or filters.
func (r *Renderer) leader(l services.Leader) string {
	text := l.Name
	if l.ChineseName != "" {
		text += " " + l.ChineseName
	}
	if l.SpecificTitleInBody != "" {
		text += " (" + l.SpecificTitleInBody + ")"
	}
	switch {
	case l.Highlight:
		return r.highlight.Render("* " + text)
	case !l.Visible:
		return r.dim.Render("- " + text)
	default:
		return "  " + text
	}
}

// Facets writes every facet with its options and counts.
func (r *Renderer) Facets(f services.Facets) {
	for i, facet := range f.List() {
		if i > 0 {
			r.line(0, "")
		}
		r.line(0, r.heading.Render(facet.Label)+r.note.Render(" ("+facet.Key+")"))
		for _, o := range facet.Options {
			r.line(1, fmt.Sprintf("%s (%d)", o.Value, o.Count))
		}
	}
}

// Leaders writes the branch/body/group aggregation.
func (r *Renderer) Leaders(branches []types.LeadershipBranch) {
	for i, b := range branches {
		if i > 0 {
			r.line(0, "")
		}
		r.line(0, r.heading.Render(b.Name))
		for _, body := range b.Bodies {
			r.line(1, r.subtitle.Render(body.Name))
			for _, g := range body.Groups {
				r.line(2, g.Name)
				if len(g.Leaders) == 0 {
					r.line(3, r.note.Render("No leaders listed."))
				}
				for _, l := range g.Leaders {
					text := l.Name
					if l.ChineseName != "" {
						text += " " + l.ChineseName
					}
					r.line(3, text)
					for _, title := range strings.Split(l.Title, "\n") {
						if title != "" {
							r.line(4, r.caption.Render(title))
						}
					}
				}
			}
		}
	}
}

func (r *Renderer) line(depth int, s string) {
	_, _ = fmt.Fprintln(r.out, strings.Repeat(indentUnit, depth)+s)
}
