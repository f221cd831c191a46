package httpapi

import (
	"errors"
	"net/http"
	"strings"

	goerrors "github.com/agilira/go-errors"
	"github.com/gin-gonic/gin"

	"github.com/nguyentantai21042004/script-refine/internal/refiner"
)

// PostRefine is the stateless form of submit for API clients
func (h *Handler) PostRefine(c *gin.Context) {
	var req RefineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}
	if strings.TrimSpace(req.Transcript) == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Transcript is required"})
		return
	}

	opts := h.defaults
	if req.Options != nil {
		opts = *req.Options
	}

	result, err := h.refiner.Process(c.Request.Context(), req.Transcript, opts)
	if err != nil {
		res := ErrorResponse{Error: refiner.GenericErrorMessage}
		var coded *goerrors.Error
		if errors.As(err, &coded) {
			res.Code = string(coded.ErrorCode())
		}
		c.JSON(http.StatusBadGateway, res)
		return
	}

	c.JSON(http.StatusOK, result)
}
