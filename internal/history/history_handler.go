package history

import (
	"net/http"
	"time"

	"willowy/internal/shared/apperror"
	"willowy/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EntryResponse is one materialized lifecycle event in read form.
type EntryResponse struct {
	Action     string `json:"action"`
	Email      string `json:"email"`
	RequestID  string `json:"request_id,omitempty"`
	OccurredAt string `json:"occurred_at"`
}

type Handler struct {
	repo   Repository
	logger *zap.Logger
}

func NewHandler(repo Repository, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("history.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("history.handler")
	}
	return &Handler{repo: repo, logger: l}
}

// GetByEmployee lists the recorded lifecycle events for one employee,
// oldest first. An employee with no recorded events lists as empty; the
// history survives the employee row's deletion.
func (h *Handler) GetByEmployee(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.Error(c, http.StatusNotFound, apperror.CodeNotFound, "Employee not found", nil)
		return
	}

	entries, err := h.repo.FindByEmployee(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("list employee history failed",
			zap.String("employee_id", id),
			zap.Error(err),
		)
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	resp := make([]EntryResponse, len(entries))
	for i, e := range entries {
		resp[i] = EntryResponse{
			Action:     e.Action,
			Email:      e.Email,
			RequestID:  e.RequestID,
			OccurredAt: e.OccurredAt.Format(time.RFC3339),
		}
	}
	response.Success(c, http.StatusOK, resp, nil)
}
