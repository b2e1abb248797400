package handler

import (
	"github.com/gin-gonic/gin"
)

type CorsHandler struct {
	origin string
}

func NewCorsHandler(origin string) *CorsHandler {
	if origin == "" {
		origin = "*"
	}
	return &CorsHandler{origin: origin}
}

func (h *CorsHandler) CorsMiddleware(c *gin.Context) {
	c.Writer.Header().Set("Access-Control-Allow-Origin", h.origin)
	c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

	if c.Request.Method == "OPTIONS" {
		c.AbortWithStatus(200)
		return
	}
	c.Next()
}
