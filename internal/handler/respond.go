package handler

import (
	"time"

	"github.com/gin-gonic/gin"
)

const dateParamLayout = "2006-01-02"

type errorResponse struct {
	Error string `json:"error"`
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, errorResponse{Error: message})
}

func parseDateParam(value string) (time.Time, error) {
	return time.ParseInLocation(dateParamLayout, value, time.UTC)
}
