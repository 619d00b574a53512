package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/hiresphere-backend/internal/domain/ports"
)

// StatusStream entrega notificações de candidatura por WebSocket
type StatusStream interface {
	ServeWS(w http.ResponseWriter, r *http.Request, userID string) error
}

// WebSocketHandler faz o upgrade da conexão do usuário autenticado
type WebSocketHandler struct {
	stream StatusStream
	logger ports.Logger
}

// NewWebSocketHandler cria um novo WebSocketHandler
func NewWebSocketHandler(stream StatusStream, logger ports.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		stream: stream,
		logger: logger.With("handler", "websocket"),
	}
}

// Applications abre o canal de notificações de status das candidaturas
// @Summary Notificações de candidaturas (WebSocket)
// @Tags applications
// @Security BearerAuth
// @Param access_token query string false "Token de acesso para clientes sem cabeçalho"
// @Success 101
// @Failure 401 {object} dto.ErrorResponse
// @Router /ws/applications [get]
func (h *WebSocketHandler) Applications(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	// Após o upgrade a resposta pertence ao websocket; erros só podem ser logados.
	if err := h.stream.ServeWS(c.Writer, c.Request, a.UserID); err != nil {
		h.logger.Warn("websocket upgrade failed", "user_id", a.UserID, "error", err)
		c.Abort()
	}
}
