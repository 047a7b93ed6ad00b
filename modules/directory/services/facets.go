package services

import (
	"slices"
	"strconv"

	"github.com/jacksonlee411/Leadership-Explorer/modules/directory/domain/types"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type FacetOption struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

type Facet struct {
	Key     string        `json:"key"`
	Label   string        `json:"label"`
	Options []FacetOption `json:"options"`
}

// Count returns the number of officials for value, 0 when value is not an option.
func (f Facet) Count(value string) int {
	for _, o := range f.Options {
		if o.Value == value {
			return o.Count
		}
	}
	return 0
}

func (f Facet) Values() []string {
	out := make([]string, 0, len(f.Options))
	for _, o := range f.Options {
		out = append(out, o.Value)
	}
	return out
}

type Facets struct {
	EducationLevel Facet `json:"education_level"`
	EducationType  Facet `json:"education_type"`
	Generation     Facet `json:"generation"`
	Hometown       Facet `json:"hometown"`
}

// List returns the facets in display order.
func (f Facets) List() []Facet {
	return []Facet{f.EducationLevel, f.EducationType, f.Generation, f.Hometown}
}

// ComputeFacets derives the option values of every facet from officials and counts, for
// each option independently, how many officials match it.
func ComputeFacets(officials []types.Official) Facets {
	hometowns := distinct(officials, func(o types.Official) []string {
		if o.HomeProvince == "" {
			return []string{UnknownOption}
		}
		return []string{o.HomeProvince}
	})
	generations := distinct(officials, func(o types.Official) []string {
		if g := o.GenerationLabel(); g != "" {
			return []string{g}
		}
		return []string{UnknownOption}
	})
	levels := distinct(officials, func(o types.Official) []string {
		if len(o.Degrees) == 0 {
			return []string{UnknownOption}
		}
		out := make([]string, 0, len(o.Degrees))
		for _, d := range o.Degrees {
			out = append(out, NormalizeEducationLevel(d.Level))
		}
		return out
	})
	kinds := distinct(officials, func(o types.Official) []string {
		if len(o.Degrees) == 0 {
			return []string{UnknownOption}
		}
		out := make([]string, 0, len(o.Degrees))
		for _, d := range o.Degrees {
			out = append(out, NormalizeEducationType(d.Type))
		}
		return out
	})

	sortOptions(hometowns, false)
	sortOptions(generations, true)
	sortOptions(levels, false)
	sortOptions(kinds, false)

	return Facets{
		EducationLevel: buildFacet("education_level", "Education Level", levels, officials, func(o types.Official, v string) bool {
			return matchEducationLevel(o, v)
		}),
		EducationType: buildFacet("education_type", "Education Type", kinds, officials, func(o types.Official, v string) bool {
			return matchEducationType(o, v)
		}),
		Generation: buildFacet("generation", "Generation", generations, officials, func(o types.Official, v string) bool {
			return matchGeneration(o, v)
		}),
		Hometown: buildFacet("hometown", "Hometown", hometowns, officials, func(o types.Official, v string) bool {
			return matchHometown(o, v)
		}),
	}
}

func distinct(officials []types.Official, values func(types.Official) []string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, o := range officials {
		for _, v := range values(o) {
			if v == "" {
				continue
			}
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}

func buildFacet(key, label string, values []string, officials []types.Official, match func(types.Official, string) bool) Facet {
	f := Facet{Key: key, Label: label, Options: make([]FacetOption, 0, len(values))}
	for _, v := range values {
		n := 0
		for _, o := range officials {
			if match(o, v) {
				n++
			}
		}
		f.Options = append(f.Options, FacetOption{Value: v, Count: n})
	}
	return f
}

// sortOptions orders values alphabetically (numerically for generations when both sides
// are numbers) and always moves UnknownOption to the end.
func sortOptions(values []string, numeric bool) {
	c := collate.New(language.English)
	slices.SortStableFunc(values, func(a, b string) int {
		if a == UnknownOption && b == UnknownOption {
			return 0
		}
		if a == UnknownOption {
			return 1
		}
		if b == UnknownOption {
			return -1
		}
		if numeric {
			fa, errA := strconv.ParseFloat(a, 64)
			fb, errB := strconv.ParseFloat(b, 64)
			if errA == nil && errB == nil {
				switch {
				case fa < fb:
					return -1
				case fa > fb:
					return 1
				default:
					return 0
				}
			}
		}
		return c.CompareString(a, b)
	})
}
