package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nguyentantai21042004/script-refine/internal/export"
	"github.com/nguyentantai21042004/script-refine/internal/session"
	"github.com/nguyentantai21042004/script-refine/internal/state"
)

const (
	sessionCookie = "sr_session"
	sessionKey    = "sessionID"
)

// withSession resolves the session cookie, issuing a new id when absent
func (h *Handler) withSession(c *gin.Context) {
	id, err := c.Cookie(sessionCookie)
	if err != nil || id == "" {
		id = session.NewID()
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(sessionCookie, id, 0, "/", "", false, true)
	}
	c.Set(sessionKey, id)
	c.Next()
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}

func (h *Handler) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, h.sessions.Get(sessionID(c)))
}

func (h *Handler) PutInput(c *gin.Context) {
	var req InputRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	view := h.sessions.Dispatch(c.Request.Context(), sessionID(c), state.InputChanged{Text: req.Transcript})
	c.JSON(http.StatusOK, view)
}

func (h *Handler) PostToggleOption(c *gin.Context) {
	view := h.sessions.Dispatch(c.Request.Context(), sessionID(c), state.OptionToggled{Name: c.Param("name")})
	c.JSON(http.StatusOK, view)
}

// PostSubmit blocks until the refine call settles and returns the final view.
// A blank input or a submit during Loading returns the unchanged view.
func (h *Handler) PostSubmit(c *gin.Context) {
	c.JSON(http.StatusOK, h.sessions.Submit(c.Request.Context(), sessionID(c)))
}

func (h *Handler) PostDiscard(c *gin.Context) {
	h.sessions.Discard(sessionID(c))
	c.Status(http.StatusNoContent)
}

func (h *Handler) GetDownload(c *gin.Context) {
	format, err := export.ParseFormat(c.DefaultQuery("format", "txt"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, ok := h.sessions.Result(sessionID(c))
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "No result available"})
		return
	}

	data, err := export.Render(format, "Refined Script", result)
	if err != nil {
		h.logger.Error(c.Request.Context(), "Failed to render %s export: %v", format, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Export failed"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="refined-script%s"`, format.Extension()))
	c.Data(http.StatusOK, format.ContentType(), data)
}
