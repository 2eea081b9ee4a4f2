package handler

import (
	"encoding/json"
	"net/http"

	"wayfare-sync-server/internal/domain"
	"wayfare-sync-server/internal/service"
	"wayfare-sync-server/pkg/response"
)

type ExportHandler struct {
	service *service.ExportService
}

func NewExportHandler(service *service.ExportService) *ExportHandler {
	return &ExportHandler{
		service: service,
	}
}

func (h *ExportHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	var req domain.ExportCalendarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if len(req.Trips) == 0 && len(req.Events) == 0 {
		response.BadRequest(w, "Nothing to export")
		return
	}

	calendar := h.service.Calendar(&req)

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="wayfare.ics"`)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(calendar))
}
