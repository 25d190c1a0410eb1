package playerhandlers

import "net/http"

// Handlers serves the player HTTP endpoints.
type Handlers interface {
	HandleCreatePlayer(w http.ResponseWriter, r *http.Request)
	HandleAdjustScore(w http.ResponseWriter, r *http.Request)
}
