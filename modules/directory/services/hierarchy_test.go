package services

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jacksonlee411/Leadership-Explorer/modules/directory/domain/types"
)

func TestRenderHierarchy_Structure(t *testing.T) {
	t.Parallel()

	h := RenderHierarchy(testBodies(), testOfficials(), "", Filters{})
	if h.Message != "" {
		t.Fatalf("message=%q", h.Message)
	}
	if h.DefaultTab != 3 {
		t.Fatalf("default_tab=%d", h.DefaultTab)
	}

	var tabIDs []int64
	for _, tab := range h.Tabs {
		tabIDs = append(tabIDs, tab.ID)
	}
	if diff := cmp.Diff([]int64{3, 1, 4}, tabIDs); diff != "" {
		t.Fatalf("tab order (-want +got):\n%s", diff)
	}

	party, ok := h.Tab(1)
	if !ok {
		t.Fatal("missing tab 1")
	}
	if len(party.Leaders) != 1 || party.Leaders[0].SpecificTitleInBody != "General Secretary" {
		t.Fatalf("leaders=%+v", party.Leaders)
	}
	if len(party.Cards) != 1 || party.Cards[0].ID != 2 {
		t.Fatalf("cards=%+v", party.Cards)
	}
	psc := party.Cards[0]
	if len(psc.Leaders) != 3 {
		t.Fatalf("psc leaders=%d", len(psc.Leaders))
	}
	if psc.Leaders[1].SpecificTitleInBody != "" {
		t.Fatalf("role=%q", psc.Leaders[1].SpecificTitleInBody)
	}
	if len(psc.Sections) != 1 || psc.Sections[0].Name != "Secretariat" {
		t.Fatalf("sections=%+v", psc.Sections)
	}
	secretariat := psc.Sections[0]
	if len(secretariat.Children) != 1 || secretariat.Children[0].Name != "General Office" {
		t.Fatalf("children=%+v", secretariat.Children)
	}
	if len(secretariat.Children[0].Leaders) != 0 {
		t.Fatalf("leaders=%+v", secretariat.Children[0].Leaders)
	}

	npc, _ := h.Tab(4)
	if npc.EmptyNote != "" || len(npc.Cards) != 0 {
		t.Fatalf("npc=%+v", npc)
	}
}

func TestRenderHierarchy_LeaderFields(t *testing.T) {
	t.Parallel()

	h := RenderHierarchy(testBodies(), testOfficials(), "", Filters{})
	party, _ := h.Tab(1)
	want := Leader{
		ID:                  "1",
		Name:                "Xi Jinping",
		ChineseName:         "习近平",
		Age:                 "70",
		Generation:          "5",
		Hometown:            "Shaanxi",
		Title:               "General Secretary\nPresident",
		SpecificTitleInBody: "General Secretary",
		Education:           "PhD in Law\nBS in Chemical Engineering",
		Visible:             true,
	}
	if diff := cmp.Diff(want, party.Leaders[0]); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}

	zhao := party.Cards[0].Leaders[2]
	if zhao.Education != "N/A" || zhao.Age != "" || zhao.Title != "" {
		t.Fatalf("zhao=%+v", zhao)
	}
}

func TestRenderHierarchy_SearchWithoutMatchHidesEveryone(t *testing.T) {
	t.Parallel()

	h := RenderHierarchy(testBodies(), testOfficials(), "nobody-by-this-name", Filters{})
	leaders := h.Leaders()
	if len(leaders) == 0 {
		t.Fatal("expected leaders")
	}
	for _, l := range leaders {
		if l.Visible || l.Highlight {
			t.Fatalf("leader %s visible=%v highlight=%v", l.ID, l.Visible, l.Highlight)
		}
	}
}

func TestRenderHierarchy_SearchMatchesChineseNameCaseInsensitive(t *testing.T) {
	t.Parallel()

	h := RenderHierarchy(testBodies(), testOfficials(), "LI QIANG", Filters{})
	for _, l := range h.Leaders() {
		if l.Visible != (l.ID == "2") {
			t.Fatalf("leader %s visible=%v", l.ID, l.Visible)
		}
	}

	h = RenderHierarchy(testBodies(), testOfficials(), "乐际", Filters{})
	for _, l := range h.Leaders() {
		if l.Visible != (l.ID == "3") {
			t.Fatalf("leader %s visible=%v", l.ID, l.Visible)
		}
		if l.Highlight {
			t.Fatalf("leader %s highlighted without filters", l.ID)
		}
	}
}

func TestRenderHierarchy_HometownFilterHighlights(t *testing.T) {
	t.Parallel()

	officials := []types.Official{{ID: 1, HomeProvince: "Shaanxi", Degrees: []types.Degree{{Level: "bachelors"}}}}
	bodies := []types.Body{{ID: 1, Name: "Root", Members: []types.Member{{ID: 1}}}}

	h := RenderHierarchy(bodies, officials, "", Filters{Hometown: "Shaanxi"})
	leaders := h.Leaders()
	if len(leaders) != 1 {
		t.Fatalf("leaders=%+v", leaders)
	}
	if leaders[0].ID != "1" || !leaders[0].Visible || !leaders[0].Highlight {
		t.Fatalf("leader=%+v", leaders[0])
	}
}

func TestRenderHierarchy_FilterMismatch(t *testing.T) {
	t.Parallel()

	h := RenderHierarchy(testBodies(), testOfficials(), "", Filters{Generation: "6"})
	for _, l := range h.Leaders() {
		if l.ID == "3" {
			if !l.Visible || !l.Highlight {
				t.Fatalf("leader=%+v", l)
			}
			continue
		}
		if l.Visible || l.Highlight {
			t.Fatalf("leader=%+v", l)
		}
	}

	h = RenderHierarchy(testBodies(), testOfficials(), "", Filters{EducationLevel: UnknownOption, EducationType: UnknownOption})
	for _, l := range h.Leaders() {
		want := l.ID == "3" || l.ID == "4"
		if l.Visible != want || l.Highlight != want {
			t.Fatalf("leader=%+v", l)
		}
	}
}

func TestRenderHierarchy_UnknownMemberOmitted(t *testing.T) {
	t.Parallel()

	bodies := []types.Body{
		{ID: 1, Name: "Root"},
		{ID: 2, Name: "Child", Parent: ptr(int64(1)), Members: []types.Member{{ID: 99}}},
	}
	h := RenderHierarchy(bodies, testOfficials(), "", Filters{})
	root, _ := h.Tab(1)
	if len(root.Cards) != 1 {
		t.Fatalf("cards=%+v", root.Cards)
	}
	card := root.Cards[0]
	if len(card.Leaders) != 0 {
		t.Fatalf("leaders=%+v", card.Leaders)
	}
	if card.EmptyNote != NoteCardEmpty {
		t.Fatalf("empty_note=%q", card.EmptyNote)
	}
	if root.EmptyNote != "" {
		t.Fatalf("root empty_note=%q", root.EmptyNote)
	}
}

func TestRenderHierarchy_Messages(t *testing.T) {
	t.Parallel()

	if h := RenderHierarchy(nil, testOfficials(), "", Filters{}); h.Message != MessageNoData {
		t.Fatalf("message=%q", h.Message)
	}

	orphans := []types.Body{{ID: 2, Name: "Orphan", Parent: ptr(int64(1))}}
	if h := RenderHierarchy(orphans, testOfficials(), "", Filters{}); h.Message != MessageNoTopLevel {
		t.Fatalf("message=%q", h.Message)
	}

	empty := []types.Body{{ID: 1, Name: "Empty"}}
	h := RenderHierarchy(empty, nil, "", Filters{})
	if h.Tabs[0].EmptyNote != "No members or sub-committees listed for Empty." {
		t.Fatalf("empty_note=%q", h.Tabs[0].EmptyNote)
	}
}

func TestRenderHierarchy_DeepNestingAndCycles(t *testing.T) {
	t.Parallel()

	bodies := []types.Body{{ID: 1, Name: "L0"}}
	for i := int64(2); i <= 7; i++ {
		bodies = append(bodies, types.Body{ID: i, Name: "L", Parent: ptr(i - 1), Members: []types.Member{{ID: 1}}})
	}
	bodies = append(bodies, types.Body{ID: 8, Name: "Loop", Parent: ptr(int64(9))}, types.Body{ID: 9, Name: "Loop", Parent: ptr(int64(8))})

	h := RenderHierarchy(bodies, testOfficials(), "", Filters{})
	if len(h.Tabs) != 1 {
		t.Fatalf("tabs=%d", len(h.Tabs))
	}
	depth := 0
	sections := h.Tabs[0].Cards[0].Sections
	for len(sections) > 0 {
		depth++
		sections = sections[0].Children
	}
	if depth != 5 {
		t.Fatalf("depth=%d", depth)
	}
	if got := len(h.Leaders()); got != 6 {
		t.Fatalf("leaders=%d", got)
	}
}
