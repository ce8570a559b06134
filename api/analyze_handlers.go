package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"deeptrace/analyze"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// maxAnalyzeBodyBytes caps the analyze request body size.
const maxAnalyzeBodyBytes = 64 * 1024

var validate = validator.New()

// AnalysisRequestBody is the POST /api/analyze payload. All fields are
// optional; absent fields fall back to the defaults below.
type AnalysisRequestBody struct {
	Source    string   `json:"source" validate:"omitempty,max=64"`
	Keywords  []string `json:"keywords" validate:"omitempty,max=20,dive,min=1,max=128"`
	TimeRange string   `json:"time_range" validate:"omitempty,oneof=24h 7d 30d all"`
}

// startAnalysis godoc
//
//	@Summary		Start an analysis
//	@Description	Creates an asynchronous analysis job and returns it immediately with status pending
//	@Tags			analysis
//	@Accept			json
//	@Produce		json
//	@Param			request	body		AnalysisRequestBody	true	"Analysis parameters"
//	@Success		202		{object}	envelope
//	@Failure		400		{object}	errorEnvelope
//	@Router			/api/analyze [post]
func (a *API) startAnalysis(w http.ResponseWriter, r *http.Request) {
	var body AnalysisRequestBody

	r.Body = http.MaxBytesReader(w, r.Body, maxAnalyzeBodyBytes)
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&body); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid_body", "Invalid JSON body", err)
		return
	}

	if err := validate.Struct(&body); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid_body", "Invalid analysis request: "+err.Error(), nil)
		return
	}

	if body.Source == "" {
		body.Source = "all"
	}
	if body.TimeRange == "" {
		body.TimeRange = "24h"
	}

	job := a.analyzer.Start(analyze.Request{
		Source:    body.Source,
		Keywords:  body.Keywords,
		TimeRange: body.TimeRange,
	})
	a.respondData(w, job, http.StatusAccepted)
}

// getAnalysis godoc
//
//	@Summary		Poll an analysis
//	@Description	Returns an analysis job by id; results are present once the job completes
//	@Tags			analysis
//	@Produce		json
//	@Param			id	path		string	true	"Analysis ID"
//	@Success		200	{object}	envelope
//	@Failure		404	{object}	errorEnvelope
//	@Router			/api/analyze/{id} [get]
func (a *API) getAnalysis(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	job, err := a.analyzer.Get(id)
	if err != nil {
		if errors.Is(err, analyze.ErrJobNotFound) {
			a.writeError(w, http.StatusNotFound, "not_found", "Analysis not found", nil)
			return
		}
		a.writeError(w, http.StatusInternalServerError, "internal_error", "Failed to get analysis", err)
		return
	}
	a.respondData(w, job, http.StatusOK)
}
