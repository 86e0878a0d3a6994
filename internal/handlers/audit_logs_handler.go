package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/land-broker/internal/audit"
	"github.com/BruksfildServices01/land-broker/internal/dto"
	"github.com/BruksfildServices01/land-broker/internal/httperr"
	"github.com/BruksfildServices01/land-broker/internal/httpresp"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	reader audit.Reader
}

func NewAuditLogsHandler(reader audit.Reader) *AuditLogsHandler {
	return &AuditLogsHandler{reader: reader}
}

// List only ever shows the caller's own events.
func (h *AuditLogsHandler) List(c *gin.Context) {
	id, ok := currentIdentity(c)
	if !ok {
		return
	}

	q := audit.Query{
		UserID: id.UserID,
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Page:   queryInt(c, "page"),
		Limit:  queryInt(c, "limit"),
	}

	// Malformed dates are ignored rather than rejected.
	if from, err := time.Parse(time.DateOnly, c.Query("from")); err == nil {
		q.From = from
	}
	if to, err := time.Parse(time.DateOnly, c.Query("to")); err == nil {
		q.To = to
	}

	q = q.Normalize()

	logs, total, err := h.reader.List(c.Request.Context(), q)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.AuditLogListDTO{
		Page:  q.Page,
		Limit: q.Limit,
		Total: total,
		Logs:  logs,
	})
}
