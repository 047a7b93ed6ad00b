package services

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jacksonlee411/Leadership-Explorer/modules/directory/domain/types"
)

func leaderRow(name, branch, body, group, position, degree string) types.LeaderRow {
	return types.LeaderRow{
		NameEN:     name,
		Generation: "5",
		Hometown:   "Shaanxi",
		Branch:     ptr(branch),
		Body:       ptr(body),
		Group:      ptr(group),
		Position:   position,
		Degree:     degree,
	}
}

func TestAggregateLeaders(t *testing.T) {
	t.Parallel()

	rows := types.LeadershipRows{
		Branches: []string{"Party", "State"},
		Bodies: []types.BranchBody{
			{Branch: "Party", Body: "Central Committee"},
			{Branch: "State", Body: "State Council"},
		},
		Groups: []types.BranchBodyGroup{
			{Branch: "Party", Body: "Central Committee", Group: "Politburo Standing Committee"},
			{Branch: "Party", Body: "Central Committee", Group: "Secretariat"},
			{Branch: "State", Body: "State Council", Group: "Executive Meeting"},
		},
		Leaders: []types.LeaderRow{
			leaderRow("Xi Jinping", "Party", "Central Committee", "Politburo Standing Committee", "General Secretary", "PhD in Law"),
			leaderRow("Xi Jinping", "Party", "Central Committee", "Politburo Standing Committee", "General Secretary", "BS in Chemical Engineering"),
			leaderRow("Xi Jinping", "Party", "Central Committee", "Politburo Standing Committee", "President", "PhD in Law"),
			leaderRow("Li  Qiang", "Party", "Central Committee", "Politburo Standing Committee", "", ""),
			leaderRow("Li Qiang", "State", "State Council", "Executive Meeting", "Premier", ""),
			{NameEN: "Unassigned Person"},
		},
	}

	got := AggregateLeaders(rows)

	xi := types.AggregatedLeader{
		ID:         "xi-jinping",
		Name:       "Xi Jinping",
		Title:      "General Secretary\nPresident",
		Image:      types.LeaderPlaceholderImage,
		Hometown:   "Shaanxi",
		Education:  "PhD in Law\nBS in Chemical Engineering",
		Generation: "5",
		Visible:    true,
	}
	li := types.AggregatedLeader{ID: "li-qiang", Name: "Li  Qiang", Image: types.LeaderPlaceholderImage, Hometown: "Shaanxi", Generation: "5", Visible: true}
	premier := types.AggregatedLeader{ID: "li-qiang", Name: "Li Qiang", Title: "Premier", Image: types.LeaderPlaceholderImage, Hometown: "Shaanxi", Generation: "5", Visible: true}

	want := []types.LeadershipBranch{
		{
			ID: "party", Name: "Party", Type: "party",
			Bodies: []types.LeadershipBody{{
				ID: "party-central-committee", Name: "Central Committee",
				Groups: []types.LeadershipCategory{
					{ID: "party-central-committee-politburo-standing-committee", Name: "Politburo Standing Committee", Type: "party", Leaders: []types.AggregatedLeader{xi, li}},
					{ID: "party-central-committee-secretariat", Name: "Secretariat", Type: "party", Leaders: []types.AggregatedLeader{}},
				},
			}},
		},
		{
			ID: "state", Name: "State", Type: "state",
			Bodies: []types.LeadershipBody{{
				ID: "state-state-council", Name: "State Council",
				Groups: []types.LeadershipCategory{
					{ID: "state-state-council-executive-meeting", Name: "Executive Meeting", Type: "state", Leaders: []types.AggregatedLeader{premier}},
				},
			}},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregateLeaders_SameNameDedupedWithinGroup(t *testing.T) {
	t.Parallel()

	rows := types.LeadershipRows{
		Branches: []string{"Party"},
		Bodies:   []types.BranchBody{{Branch: "Party", Body: "CC"}},
		Groups:   []types.BranchBodyGroup{{Branch: "Party", Body: "CC", Group: "PSC"}},
		Leaders: []types.LeaderRow{
			leaderRow("Li Qiang", "Party", "CC", "PSC", "Premier", ""),
			leaderRow("li qiang", "Party", "CC", "PSC", "Member", ""),
		},
	}
	got := AggregateLeaders(rows)
	leaders := got[0].Bodies[0].Groups[0].Leaders
	if len(leaders) != 1 {
		t.Fatalf("leaders=%+v", leaders)
	}
	if leaders[0].Name != "Li Qiang" || leaders[0].Title != "Premier\nMember" {
		t.Fatalf("leader=%+v", leaders[0])
	}
}

func TestAggregateLeaders_Empty(t *testing.T) {
	t.Parallel()

	got := AggregateLeaders(types.LeadershipRows{Branches: []string{"Military"}})
	if len(got) != 1 || got[0].Bodies == nil || len(got[0].Bodies) != 0 {
		t.Fatalf("got=%+v", got)
	}
	if got := AggregateLeaders(types.LeadershipRows{}); got == nil || len(got) != 0 {
		t.Fatalf("got=%+v", got)
	}
}
