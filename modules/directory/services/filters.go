package services

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jacksonlee411/Leadership-Explorer/modules/directory/domain/types"
)

// UnknownOption is the facet value for officials missing the attribute.
const UnknownOption = "Unknown"

const (
	EducationLevelBachelor  = "Bachelor's"
	EducationLevelMaster    = "Master's"
	EducationLevelDoctor    = "Doctor's"
	EducationLevelAssociate = "Associate's"
	EducationSTEM           = "STEM"
)

type Filters struct {
	Hometown       string `json:"hometown"`
	EducationLevel string `json:"education_level"`
	EducationType  string `json:"education_type"`
	Generation     string `json:"generation"`
}

func (f Filters) Active() bool {
	return f.Hometown != "" || f.EducationLevel != "" || f.EducationType != "" || f.Generation != ""
}

// MatchSearch reports whether the English or Chinese name contains query, ignoring case.
// An empty query matches everyone.
func MatchSearch(o types.Official, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(o.NameEN), q) {
		return true
	}
	return o.NameCN != "" && strings.Contains(strings.ToLower(o.NameCN), q)
}

// MatchFilters reports whether o satisfies every non-empty filter.
func MatchFilters(o types.Official, f Filters) bool {
	return matchHometown(o, f.Hometown) &&
		matchGeneration(o, f.Generation) &&
		matchEducationLevel(o, f.EducationLevel) &&
		matchEducationType(o, f.EducationType)
}

func matchHometown(o types.Official, want string) bool {
	if want == UnknownOption {
		return o.HomeProvince == ""
	}
	return want == "" || o.HomeProvince == want
}

func matchGeneration(o types.Official, want string) bool {
	if want == UnknownOption {
		return o.GenerationLabel() == ""
	}
	return want == "" || o.GenerationLabel() == want
}

func matchEducationLevel(o types.Official, want string) bool {
	if want == UnknownOption {
		return lacksDegreeField(o, func(d types.Degree) string { return d.Level })
	}
	if want == "" {
		return true
	}
	for _, d := range o.Degrees {
		if degreeLevelMatches(d.Level, want) {
			return true
		}
	}
	return false
}

func matchEducationType(o types.Official, want string) bool {
	if want == UnknownOption {
		return lacksDegreeField(o, func(d types.Degree) string { return d.Type })
	}
	if want == "" {
		return true
	}
	for _, d := range o.Degrees {
		if degreeTypeMatches(d.Type, want) {
			return true
		}
	}
	return false
}

func lacksDegreeField(o types.Official, field func(types.Degree) string) bool {
	for _, d := range o.Degrees {
		if strings.TrimSpace(field(d)) != "" {
			return false
		}
	}
	return true
}

// NormalizeEducationLevel maps a free-text degree level onto the facet vocabulary.
func NormalizeEducationLevel(raw string) string {
	level := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case level == "":
		return UnknownOption
	case strings.Contains(level, "bachelor"):
		return EducationLevelBachelor
	case strings.Contains(level, "master"):
		return EducationLevelMaster
	case strings.Contains(level, "doctor"), strings.Contains(level, "phd"):
		return EducationLevelDoctor
	case strings.Contains(level, "stem"):
		return EducationSTEM
	case strings.Contains(level, "associate"):
		return EducationLevelAssociate
	default:
		return capitalize(level)
	}
}

// NormalizeEducationType maps a free-text degree type onto the facet vocabulary.
func NormalizeEducationType(raw string) string {
	typ := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case typ == "":
		return UnknownOption
	case strings.Contains(typ, "stem"):
		return EducationSTEM
	default:
		return capitalize(typ)
	}
}

func degreeLevelMatches(rawLevel string, option string) bool {
	level := strings.ToLower(strings.TrimSpace(rawLevel))
	if level == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(option)) {
	case "bachelor's":
		return strings.Contains(level, "bachelor")
	case "master's":
		return strings.Contains(level, "master")
	case "doctor's":
		return strings.Contains(level, "doctor") || strings.Contains(level, "phd")
	case "stem":
		return strings.Contains(level, "stem")
	case "associate's":
		return strings.Contains(level, "associate")
	}
	return capitalize(level) == option
}

func degreeTypeMatches(rawType string, option string) bool {
	typ := strings.ToLower(strings.TrimSpace(rawType))
	if typ == "" {
		return false
	}
	if strings.EqualFold(strings.TrimSpace(option), EducationSTEM) {
		return strings.Contains(typ, "stem")
	}
	return typ == strings.ToLower(strings.TrimSpace(option))
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
