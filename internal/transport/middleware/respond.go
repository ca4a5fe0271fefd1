package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
)

// errorBody has the same shape as the REST error responses so terminals
// parse middleware rejections the same way.
type errorBody struct {
	Error string           `json:"error"`
	Kind  domain.ErrorKind `json:"kind"`
}

func writeError(w http.ResponseWriter, status int, kind domain.ErrorKind, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: msg, Kind: kind})
}
