package handler

import (
	"bytes"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/yusufkecer/bmi-analyzer/internal/domain"
	"github.com/yusufkecer/bmi-analyzer/internal/service"
)

type AvatarHandler struct {
	avatars *service.AvatarService
}

func NewAvatarHandler(avatars *service.AvatarService) *AvatarHandler {
	return &AvatarHandler{avatars: avatars}
}

func (h *AvatarHandler) Get(w http.ResponseWriter, r *http.Request) {
	key, err := domain.ParseAvatarKey(mux.Vars(r)["key"])
	if err != nil {
		writeError(w, http.StatusNotFound, "avatar not found")
		return
	}

	var buf bytes.Buffer
	err = h.avatars.Encode(&buf, key)
	if errors.Is(err, domain.ErrResourceMissing) {
		log.Printf("[avatar] %v", err)
		writeError(w, http.StatusBadGateway, "avatar image unavailable")
		return
	}
	if err != nil {
		log.Printf("[avatar] %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load avatar")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}
