package audio

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	pkgLog "multi-tenant-bot-relay/pkg/log"
)

// Handler serves stored audio blobs over HTTP.
type Handler struct {
	store *Store
	l     pkgLog.Logger
}

// NewHandler creates the audio delivery handler.
func NewHandler(store *Store, l pkgLog.Logger) *Handler {
	return &Handler{store: store, l: l}
}

// Serve handles GET /audio/:blobID. The id is accepted with or without a
// trailing ".mp3" suffix; both name the same blob.
func (h *Handler) Serve(c *gin.Context) {
	id := strings.TrimSuffix(c.Param("blobID"), ".mp3")

	data, ok := h.store.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "audio not found or expired"})
		return
	}

	c.Data(http.StatusOK, "audio/mpeg", data)
}
