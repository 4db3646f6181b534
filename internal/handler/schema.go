package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	ddl "github.com/dangerclosesec/schemagen/ddl/model"
	"github.com/dangerclosesec/schemagen/ddl/parser"
	"github.com/dangerclosesec/schemagen/internal/domain"
	"github.com/dangerclosesec/schemagen/internal/model"
	"github.com/dangerclosesec/schemagen/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// maxSourceBytes bounds the request body of a parse request
const maxSourceBytes = 1 << 20

// SchemaHandler handles API requests for parsing DDL
type SchemaHandler struct {
	schemaService *service.SchemaService
}

// NewSchemaHandler creates a new schema handler
func NewSchemaHandler(schemaService *service.SchemaService) *SchemaHandler {
	return &SchemaHandler{
		schemaService: schemaService,
	}
}

type ParseResponse struct { // TypeGen: ParseResponse
	BaseResponse
	RecordID *uuid.UUID  `json:"record_id,omitempty"`
	Cached   bool        `json:"cached"`
	Schema   *ddl.Schema `json:"schema"`
}

type HistoryResponse struct { // TypeGen: HistoryResponse
	BaseResponse
	Records []*model.ParseRecord `json:"records"`
}

// Parse handles POST /api/schemas/parse
func (h *SchemaHandler) Parse(w http.ResponseWriter, r *http.Request) {
	var input service.ParseInput
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSourceBytes)).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	out, err := h.schemaService.Parse(r.Context(), input)
	if err != nil {
		var syntaxErr *parser.SyntaxError
		switch {
		case errors.As(err, &syntaxErr):
			details := []string{
				"state: " + syntaxErr.State,
				"token: " + syntaxErr.Token,
				fmt.Sprintf("line: %d", syntaxErr.Line),
				fmt.Sprintf("column: %d", syntaxErr.Column),
			}
			respondWithCodedError(w, http.StatusBadRequest, "syntax_error", syntaxErr.Error(), details)
		case errors.Is(err, domain.ErrInvalidInput):
			respondWithCodedError(w, http.StatusBadRequest, "invalid_input", err.Error(), nil)
		default:
			respondWithError(w, http.StatusInternalServerError, "Failed to parse schema")
		}
		return
	}

	resp := ParseResponse{
		BaseResponse: BaseResponse{Ok: true},
		Cached:       out.Cached,
		Schema:       out.Schema,
	}
	if out.RecordID != uuid.Nil {
		resp.RecordID = &out.RecordID
	}
	respondWithJSON(w, http.StatusOK, resp)
}

// History handles GET /api/schemas/history
func (h *SchemaHandler) History(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n <= 0 {
			respondWithError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	records, err := h.schemaService.History(r.Context(), limit)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load history")
		return
	}

	respondWithJSON(w, http.StatusOK, HistoryResponse{
		BaseResponse: BaseResponse{Ok: true},
		Records:      records,
	})
}

// Record handles GET /api/schemas/history/{id}
func (h *SchemaHandler) Record(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid record ID")
		return
	}

	record, err := h.schemaService.Record(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Record not found")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to load record")
		return
	}

	respondWithJSON(w, http.StatusOK, record)
}
