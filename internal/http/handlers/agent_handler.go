// README: Agent invocation handler.
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"aura/internal/agent"
)

// invokeTimeout bounds one full pipeline run, including every generation call.
const invokeTimeout = 90 * time.Second

type AgentHandler struct {
	router *agent.Router
}

func NewAgentHandler(router *agent.Router) *AgentHandler {
	return &AgentHandler{router: router}
}

// Invoke handles POST /api/agent/invoke.
func (h *AgentHandler) Invoke(c *gin.Context) {
	var req agent.QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req.Prompt = strings.TrimSpace(req.Prompt)
	if req.Prompt == "" && !(req.Structured && req.Data != nil) {
		writeError(c, http.StatusBadRequest, "missing prompt or structured data")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), invokeTimeout)
	defer cancel()

	// Route never fails: degraded results come back as valid envelopes.
	writeJSON(c, http.StatusOK, h.router.Route(ctx, req))
}
