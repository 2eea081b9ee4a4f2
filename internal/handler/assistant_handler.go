package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"wayfare-sync-server/internal/domain"
	"wayfare-sync-server/internal/service"
	"wayfare-sync-server/pkg/jsonx"
	"wayfare-sync-server/pkg/response"

	"github.com/go-playground/validator/v10"
)

type AssistantHandler struct {
	service  *service.AssistantService
	validate *validator.Validate
}

func NewAssistantHandler(service *service.AssistantService) *AssistantHandler {
	return &AssistantHandler{
		service:  service,
		validate: validator.New(),
	}
}

func (h *AssistantHandler) SuggestItinerary(w http.ResponseWriter, r *http.Request) {
	var req domain.SuggestItineraryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	res, err := h.service.SuggestItinerary(r.Context(), &req)
	if err != nil {
		if errors.Is(err, jsonx.ErrNoJSON) {
			response.Error(w, http.StatusBadGateway, "assistant returned no usable suggestion")
			return
		}
		response.Error(w, http.StatusBadGateway, err.Error())
		return
	}

	response.Success(w, res)
}
