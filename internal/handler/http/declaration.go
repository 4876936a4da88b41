package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/issouftoure58-design/nexus-sub008/internal/domain/declaration"
	"github.com/issouftoure58-design/nexus-sub008/internal/handler/http/response"
)

type DeclarationHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	GetDeclaration(w http.ResponseWriter, r *http.Request)
	GetByPeriod(w http.ResponseWriter, r *http.Request)
	MarkValidated(w http.ResponseWriter, r *http.Request)
	MarkTransmitted(w http.ResponseWriter, r *http.Request)
}

type declarationHandlerImpl struct {
	declarationService declaration.DeclarationService
}

func NewDeclarationHandler(declarationService declaration.DeclarationService) DeclarationHandler {
	return &declarationHandlerImpl{declarationService: declarationService}
}

func (h *declarationHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req declaration.GenerateDeclarationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.declarationService.Generate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Declaration generated", result)
}

func (h *declarationHandlerImpl) GetDeclaration(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.declarationService.GetDeclaration(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *declarationHandlerImpl) GetByPeriod(w http.ResponseWriter, r *http.Request) {
	year, month, ok := periodParams(r)
	if !ok {
		response.BadRequest(w, "Invalid period parameters", nil)
		return
	}

	result, err := h.declarationService.GetByPeriod(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *declarationHandlerImpl) MarkValidated(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.declarationService.MarkValidated(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Declaration validated", result)
}

func (h *declarationHandlerImpl) MarkTransmitted(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.declarationService.MarkTransmitted(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Declaration marked transmitted", result)
}
