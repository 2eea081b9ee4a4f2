package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"wayfare-sync-server/internal/domain"
	"wayfare-sync-server/internal/repository"
	"wayfare-sync-server/internal/service"
	"wayfare-sync-server/pkg/response"

	"github.com/gorilla/mux"
)

type SyncHandler struct {
	syncService     *service.SyncService
	conflictService *service.ConflictService
}

func NewSyncHandler(syncService *service.SyncService, conflictService *service.ConflictService) *SyncHandler {
	return &SyncHandler{
		syncService:     syncService,
		conflictService: conflictService,
	}
}

func (h *SyncHandler) CheckConflicts(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	syncID := vars["syncId"]

	var req domain.ConflictCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	res, err := h.conflictService.Check(syncID, &req.Snapshot)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSyncID) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, err.Error())
		return
	}

	response.JSON(w, http.StatusOK, res)
}

func (h *SyncHandler) Backup(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	syncID := vars["syncId"]

	var req domain.BackupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	res, err := h.syncService.Backup(syncID, req.DeviceID, &req.Snapshot, req.Resolutions)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSyncID) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, err.Error())
		return
	}

	response.JSON(w, http.StatusOK, res)
}

func (h *SyncHandler) Restore(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	syncID := vars["syncId"]

	record, err := h.syncService.Restore(syncID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidSyncID):
			response.BadRequest(w, err.Error())
		case errors.Is(err, repository.ErrBackupNotFound):
			response.NotFound(w, "no backup found for this sync id")
		case errors.Is(err, repository.ErrCorruptBackup):
			response.Error(w, http.StatusUnprocessableEntity, "stored backup is corrupt")
		default:
			response.InternalError(w, err.Error())
		}
		return
	}

	response.JSON(w, http.StatusOK, record)
}

func (h *SyncHandler) Status(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	syncID := vars["syncId"]

	status, err := h.syncService.Status(syncID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidSyncID):
			response.BadRequest(w, err.Error())
		case errors.Is(err, repository.ErrBackupNotFound):
			response.NotFound(w, "no backups recorded for this sync id")
		default:
			response.InternalError(w, err.Error())
		}
		return
	}

	response.JSON(w, http.StatusOK, status)
}
