package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

type Official struct {
	ID           int64          `json:"id"`
	NameEN       string         `json:"name_en"`
	NameCN       string         `json:"name_cn"`
	Age          *int           `json:"age"`
	Generation   *float64       `json:"generation"`
	HomeProvince string         `json:"home_province"`
	Positions    PositionTitles `json:"positions"`
	Degrees      []Degree       `json:"degrees"`
}

type Degree struct {
	Name  string `json:"name"`
	Level string `json:"level"`
	Type  string `json:"type"`
}

// GenerationLabel formats the generation the way the explorer displays and filters it:
// 5.0 -> "5", 5.5 -> "5.5". A missing or zero generation yields "".
func (o Official) GenerationLabel() string {
	if o.Generation == nil || *o.Generation == 0 {
		return ""
	}
	return strconv.FormatFloat(*o.Generation, 'f', -1, 64)
}

func (o Official) AgeLabel() string {
	if o.Age == nil {
		return ""
	}
	return strconv.Itoa(*o.Age)
}

// PositionTitles accepts either plain strings or {title, institution} objects.
type PositionTitles []string

type positionObject struct {
	Title       string `json:"title"`
	Institution string `json:"institution"`
}

func (p *PositionTitles) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*p = nil
		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	out := make(PositionTitles, 0, len(raw))
	for _, item := range raw {
		item = bytes.TrimSpace(item)
		if len(item) == 0 {
			continue
		}
		switch item[0] {
		case '"':
			var s string
			if err := json.Unmarshal(item, &s); err != nil {
				return err
			}
			out = append(out, s)
		case '{':
			var obj positionObject
			if err := json.Unmarshal(item, &obj); err != nil {
				return err
			}
			title := strings.TrimSpace(obj.Title)
			inst := strings.TrimSpace(obj.Institution)
			switch {
			case title != "" && inst != "":
				out = append(out, title+", "+inst)
			case title != "":
				out = append(out, title)
			case inst != "":
				out = append(out, inst)
			}
		case 'n':
			continue
		default:
			return errors.New("positions: unsupported element")
		}
	}
	*p = out
	return nil
}
