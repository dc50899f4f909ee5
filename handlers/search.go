package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"campusspots/utils"
)

// SearchResultHandler serves cached search-result bundles by ID, backing the
// loading-page to results-page hand-off.
type SearchResultHandler struct {
	Cache ResultCache
}

func NewSearchResultHandler(cache ResultCache) *SearchResultHandler {
	return &SearchResultHandler{Cache: cache}
}

func (h *SearchResultHandler) GetSearchResultHandler(c *gin.Context) {
	resultID := c.Param("resultId")
	if resultID == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing result id", "")
		return
	}

	payload, err := h.Cache.GetResult(c.Request.Context(), resultID)
	if err != nil {
		if errors.Is(err, ErrResultNotFound) {
			utils.JSONError(c, http.StatusNotFound, "search result not found or expired", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load search result", err.Error())
		return
	}
	c.Data(http.StatusOK, "application/json", payload)
}
