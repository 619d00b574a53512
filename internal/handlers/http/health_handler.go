package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger verifica se uma dependência está acessível
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse é o corpo de /health
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// HealthHandler responde ao health check
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler cria um novo HealthHandler
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health verifica a aplicação e o banco
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if h.db != nil {
		if err := h.db.PingContext(ctx); err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "degraded", Database: "down"})
			return
		}
	}

	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Database: "up"})
}
