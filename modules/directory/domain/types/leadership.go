package types

import (
	"regexp"
	"strings"
)

const LeaderPlaceholderImage = "/placeholder.svg?height=200&width=150"

type LeadershipBranch struct {
	ID     string           `json:"id"`
	Name   string           `json:"name"`
	Type   string           `json:"type"`
	Bodies []LeadershipBody `json:"bodies"`
}

type LeadershipBody struct {
	ID     string               `json:"id"`
	Name   string               `json:"name"`
	Groups []LeadershipCategory `json:"groups"`
}

type LeadershipCategory struct {
	ID      string             `json:"id"`
	Name    string             `json:"name"`
	Type    string             `json:"type"`
	Leaders []AggregatedLeader `json:"leaders"`
}

// AggregatedLeader is one person inside a leadership group. Title and Education hold the
// deduplicated values joined by newlines.
type AggregatedLeader struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ChineseName string `json:"chineseName"`
	Title       string `json:"title"`
	Image       string `json:"image"`
	Hometown    string `json:"hometown"`
	Education   string `json:"education"`
	Generation  string `json:"generation"`
	Visible     bool   `json:"visible"`
}

type BranchBody struct {
	Branch string
	Body   string
}

type BranchBodyGroup struct {
	Branch string
	Body   string
	Group  string
}

// LeaderRow is one row of the people/groups/positions/education join. Branch, Body and
// Group are nil for people without a group membership.
type LeaderRow struct {
	NameEN     string
	NameCN     string
	Generation string
	Hometown   string
	Branch     *string
	Body       *string
	Group      *string
	Position   string
	Degree     string
}

type LeadershipRows struct {
	Branches []string
	Bodies   []BranchBody
	Groups   []BranchBodyGroup
	Leaders  []LeaderRow
}

var whitespaceRunRe = regexp.MustCompile(`\s+`)

// Slug lower-cases s and replaces every whitespace run with a dash.
func Slug(s string) string {
	return whitespaceRunRe.ReplaceAllString(strings.ToLower(s), "-")
}
