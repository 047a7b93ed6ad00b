package services

import (
	"slices"
	"strings"

	"github.com/jacksonlee411/Leadership-Explorer/modules/directory/domain/types"
)

type leaderAcc struct {
	leader    types.AggregatedLeader
	titles    []string
	education []string
}

type categoryAcc struct {
	category types.LeadershipCategory
	leaders  []*leaderAcc
	byID     map[string]*leaderAcc
}

// AggregateLeaders nests the join rows under branch -> body -> group. Within a group each
// person appears once, with their distinct positions and degrees joined by newlines in
// first-seen order. Rows without a group membership are skipped.
func AggregateLeaders(rows types.LeadershipRows) []types.LeadershipBranch {
	groups := make(map[types.BranchBodyGroup]*categoryAcc)

	for _, row := range rows.Leaders {
		if row.Branch == nil || row.Body == nil || row.Group == nil {
			continue
		}
		key := types.BranchBodyGroup{Branch: *row.Branch, Body: *row.Body, Group: *row.Group}
		acc, ok := groups[key]
		if !ok {
			acc = &categoryAcc{
				category: emptyCategory(key),
				byID:     make(map[string]*leaderAcc),
			}
			groups[key] = acc
		}

		id := types.Slug(row.NameEN)
		l, ok := acc.byID[id]
		if !ok {
			l = &leaderAcc{leader: types.AggregatedLeader{
				ID:          id,
				Name:        row.NameEN,
				ChineseName: row.NameCN,
				Image:       types.LeaderPlaceholderImage,
				Hometown:    row.Hometown,
				Generation:  row.Generation,
				Visible:     true,
			}}
			acc.byID[id] = l
			acc.leaders = append(acc.leaders, l)
		}
		if row.Position != "" && !slices.Contains(l.titles, row.Position) {
			l.titles = append(l.titles, row.Position)
		}
		if row.Degree != "" && !slices.Contains(l.education, row.Degree) {
			l.education = append(l.education, row.Degree)
		}
	}

	bodiesByBranch := make(map[string][]string)
	for _, b := range rows.Bodies {
		bodiesByBranch[b.Branch] = append(bodiesByBranch[b.Branch], b.Body)
	}
	groupsByBody := make(map[types.BranchBody][]string)
	for _, g := range rows.Groups {
		k := types.BranchBody{Branch: g.Branch, Body: g.Body}
		groupsByBody[k] = append(groupsByBody[k], g.Group)
	}

	out := make([]types.LeadershipBranch, 0, len(rows.Branches))
	for _, branch := range rows.Branches {
		lb := types.LeadershipBranch{
			ID:     strings.ToLower(branch),
			Name:   branch,
			Type:   strings.ToLower(branch),
			Bodies: []types.LeadershipBody{},
		}
		for _, body := range bodiesByBranch[branch] {
			bb := types.LeadershipBody{
				ID:     types.Slug(branch + "-" + body),
				Name:   body,
				Groups: []types.LeadershipCategory{},
			}
			for _, group := range groupsByBody[types.BranchBody{Branch: branch, Body: body}] {
				key := types.BranchBodyGroup{Branch: branch, Body: body, Group: group}
				if acc, ok := groups[key]; ok {
					bb.Groups = append(bb.Groups, acc.finish())
					continue
				}
				bb.Groups = append(bb.Groups, emptyCategory(key))
			}
			lb.Bodies = append(lb.Bodies, bb)
		}
		out = append(out, lb)
	}
	return out
}

func emptyCategory(key types.BranchBodyGroup) types.LeadershipCategory {
	return types.LeadershipCategory{
		ID:      types.Slug(key.Branch + "-" + key.Body + "-" + key.Group),
		Name:    key.Group,
		Type:    strings.ToLower(key.Branch),
		Leaders: []types.AggregatedLeader{},
	}
}

func (c *categoryAcc) finish() types.LeadershipCategory {
	out := c.category
	out.Leaders = make([]types.AggregatedLeader, 0, len(c.leaders))
	for _, l := range c.leaders {
		leader := l.leader
		leader.Title = strings.Join(l.titles, "\n")
		leader.Education = strings.Join(l.education, "\n")
		out.Leaders = append(out.Leaders, leader)
	}
	return out
}
