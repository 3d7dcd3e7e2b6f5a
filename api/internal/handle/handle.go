package handle

import (
	"encoding/json"
	"net/http"

	"adcheck/api/internal/factcheck"
)

type Handle struct {
	engine factcheck.Engine
}

func New(engine factcheck.Engine) *Handle {
	return &Handle{engine: engine}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError emits the {"error": ...} envelope every failure uses, whether
// the payload is a plain message or a field-error list.
func writeError(w http.ResponseWriter, code int, payload any) {
	writeJSON(w, code, map[string]any{"error": payload})
}
