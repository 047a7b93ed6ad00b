package routing

import (
	"encoding/json"
	"html/template"
	"net/http"
)

// ErrorEnvelope is the JSON body of every error response.
type ErrorEnvelope struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

var errorPage = template.Must(template.New("error").Parse(
	`<!doctype html><html><head><meta charset="utf-8"><title>{{.Error}}</title></head>` +
		`<body><p>{{.Error}}</p>{{if .Details}}<pre>{{.Details}}</pre>{{end}}</body></html>`))

func WriteError(w http.ResponseWriter, r *http.Request, rc RouteClass, status int, message string, details string) {
	env := ErrorEnvelope{Error: message, Details: details}
	if isJSONOnly(rc) || wantsJSON(r) {
		WriteJSON(w, status, env)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = errorPage.Execute(w, env)
}

// WriteJSON encodes v as the response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func wantsJSON(r *http.Request) bool {
	return r.Header.Get("Accept") == "application/json" || r.Header.Get("Accept") == "application/json; charset=utf-8"
}

func isJSONOnly(rc RouteClass) bool {
	return rc == RouteClassAPI || rc == RouteClassOps
}
