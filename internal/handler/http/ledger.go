package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/issouftoure58-design/nexus-sub008/internal/domain/ledger"
	"github.com/issouftoure58-design/nexus-sub008/internal/handler/http/response"
)

type LedgerHandler interface {
	PostDocument(w http.ResponseWriter, r *http.Request)
	RetractDocument(w http.ResponseWriter, r *http.Request)
	GetDocumentEntries(w http.ResponseWriter, r *http.Request)
	ListPeriodEntries(w http.ResponseWriter, r *http.Request)
	CheckPeriodBalance(w http.ResponseWriter, r *http.Request)
}

type ledgerHandlerImpl struct {
	ledgerService ledger.LedgerService
}

func NewLedgerHandler(ledgerService ledger.LedgerService) LedgerHandler {
	return &ledgerHandlerImpl{ledgerService: ledgerService}
}

func (h *ledgerHandlerImpl) PostDocument(w http.ResponseWriter, r *http.Request) {
	var req ledger.PostDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.ledgerService.PostDocument(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Document posted", result)
}

func (h *ledgerHandlerImpl) RetractDocument(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "ref")

	if err := h.ledgerService.RetractDocument(r.Context(), ref); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Document retracted", nil)
}

func (h *ledgerHandlerImpl) GetDocumentEntries(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "ref")

	result, err := h.ledgerService.GetDocumentEntries(r.Context(), ref)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *ledgerHandlerImpl) ListPeriodEntries(w http.ResponseWriter, r *http.Request) {
	year, month, ok := periodParams(r)
	if !ok {
		response.BadRequest(w, "Invalid period parameters", nil)
		return
	}

	if journal := r.URL.Query().Get("journal"); journal != "" {
		result, err := h.ledgerService.ListJournalEntries(r.Context(), journal, year, month)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, result)
		return
	}

	result, err := h.ledgerService.ListPeriodEntries(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *ledgerHandlerImpl) CheckPeriodBalance(w http.ResponseWriter, r *http.Request) {
	year, month, ok := periodParams(r)
	if !ok {
		response.BadRequest(w, "Invalid period parameters", nil)
		return
	}

	result, err := h.ledgerService.CheckPeriodBalance(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
