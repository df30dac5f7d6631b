package controllers

import (
	"net/http"
	"strconv"

	"github.com/4GeeksAcademy/PabloBalle-SW-Rest-API/utils"

	"github.com/gin-gonic/gin"
)

// uintParam parses a numeric path parameter. On failure it records a 400
// APIError on the context and reports false.
func uintParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		c.Error(utils.NewAPIError("invalid id", http.StatusBadRequest))
		return 0, false
	}
	return uint(id), true
}
