package types

type Body struct {
	ID      int64    `json:"id"`
	Name    string   `json:"name"`
	Members []Member `json:"members"`
	Parent  *int64   `json:"parent"`
	Caption *string  `json:"caption"`
	Order   *int     `json:"order"`
}

type Member struct {
	ID    int64   `json:"id"`
	Title *string `json:"title"`
}

func (b Body) IsRoot() bool { return b.Parent == nil }

func (b Body) CaptionText() string {
	if b.Caption == nil {
		return ""
	}
	return *b.Caption
}
