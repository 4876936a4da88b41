package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/issouftoure58-design/nexus-sub008/internal/domain/contribution"
	"github.com/issouftoure58-design/nexus-sub008/internal/handler/http/response"
)

type ContributionHandler interface {
	CreateParameterSet(w http.ResponseWriter, r *http.Request)
	GetParameterSet(w http.ResponseWriter, r *http.Request)
	ListParameterSets(w http.ResponseWriter, r *http.Request)
	Simulate(w http.ResponseWriter, r *http.Request)
}

type contributionHandlerImpl struct {
	contributionService contribution.ContributionService
}

func NewContributionHandler(contributionService contribution.ContributionService) ContributionHandler {
	return &contributionHandlerImpl{contributionService: contributionService}
}

func (h *contributionHandlerImpl) CreateParameterSet(w http.ResponseWriter, r *http.Request) {
	var req contribution.CreateParameterSetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.contributionService.CreateParameterSet(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Parameter set created", result)
}

func (h *contributionHandlerImpl) GetParameterSet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.contributionService.GetParameterSet(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *contributionHandlerImpl) ListParameterSets(w http.ResponseWriter, r *http.Request) {
	result, err := h.contributionService.ListParameterSets(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *contributionHandlerImpl) Simulate(w http.ResponseWriter, r *http.Request) {
	var req contribution.SimulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.contributionService.Simulate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
