package httpapi

import (
	"embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed web
var webFS embed.FS

func (h *Handler) GetPage(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"View":     h.sessions.Get(sessionID(c)),
		"Provider": h.provider,
	})
}

func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Provider: h.provider})
}
