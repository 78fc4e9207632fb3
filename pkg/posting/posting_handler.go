package posting

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

type PostingHandler struct {
	poster Poster
}

func NewPostingHandler(poster Poster) *PostingHandler {
	return &PostingHandler{poster: poster}
}

type PostResultDTO struct {
	Posted int `json:"posted"`
}

// PostDue posts all subscription charges due this month and reports how
// many transactions were appended.
func (h *PostingHandler) PostDue(w http.ResponseWriter, r *http.Request) {
	posted, err := h.poster.PostDue(r.Context())
	if err != nil {
		log.Errorf("Error posting due subscriptions: %v", err)
		http.Error(w, "Failed to post due subscriptions", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(PostResultDTO{Posted: posted}); err != nil {
		log.Errorf("Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}
