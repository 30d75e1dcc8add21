// Inflection - Call Volume Seasonality Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/inflection

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/inflection/internal/analysis"
	"github.com/tomtom215/inflection/internal/logging"
	"github.com/tomtom215/inflection/internal/metrics"
	"github.com/tomtom215/inflection/internal/models"
	"github.com/tomtom215/inflection/internal/validation"
)

// Companies lists every company present in the cached calls table, sorted by name.
//
// GET /api/companies
func (h *Handler) Companies(w http.ResponseWriter, r *http.Request) {
	table, err := h.tables.Table(r.Context())
	if err != nil {
		respondError(w, r, analysis.Upstream(err))
		return
	}

	if table.Len() == 0 {
		logging.Ctx(r.Context()).Warn().Msg("Calls table is empty")
		writeError(w, r, http.StatusInternalServerError, CodeNoData, msgNoData, "")
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=60")
	respondJSON(w, http.StatusOK, &models.CompaniesResponse{
		Companies: analysis.ListCompanies(table),
	})
}

// InflectionAnalysis runs the inflection analysis for one company.
//
// POST /api/inflection-analysis (and the legacy POST /api/analysis)
//
//	{"company_id": "1001", "detection_method": "Hybrid (3-4 months)", "analysis_mode": "percentages"}
//
// companyId is accepted when company_id is absent or empty. Numeric ids are
// accepted and normalized so that 1001 and "1001" address the same company.
func (h *Handler) InflectionAnalysis(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	body, err := decodeJSONObject(w, r)
	if err != nil {
		h.finishAnalysis(w, r, start, analysis.DefaultMethod, analysis.DefaultMode, nil, err)
		return
	}

	method := analysis.NormalizeMethod(stringField(body, "detection_method"))
	mode := analysis.NormalizeMode(stringField(body, "analysis_mode"))

	companyID, err := companyIDFromBody(body)
	if err != nil {
		h.finishAnalysis(w, r, start, method, mode, nil, err)
		return
	}

	req := validation.AnalysisRequest{
		CompanyID:       companyID,
		DetectionMethod: string(method),
		AnalysisMode:    string(mode),
	}
	if verr := req.Validate(); verr != nil {
		h.finishAnalysis(w, r, start, method, mode, nil, analysis.Validation("%s", verr.Error()))
		return
	}

	table, err := h.tables.Table(r.Context())
	if err != nil {
		h.finishAnalysis(w, r, start, method, mode, nil, analysis.Upstream(err))
		return
	}

	payload, err := analysis.BuildAnalysisPayload(table, req.CompanyID, req.DetectionMethod, req.AnalysisMode)
	h.finishAnalysis(w, r, start, method, mode, payload, err)
}

// finishAnalysis records metrics and writes either the payload or the error.
func (h *Handler) finishAnalysis(w http.ResponseWriter, r *http.Request, start time.Time, method analysis.Method, mode analysis.Mode, payload *models.AnalysisPayload, err error) {
	outcome := "ok"
	if err != nil {
		outcome = analysis.KindOf(err).String()
	}
	metrics.RecordAnalysis(string(method), string(mode), outcome, time.Since(start))

	if err != nil {
		respondError(w, r, err)
		return
	}

	logging.Ctx(r.Context()).Debug().
		Str("company_id", sanitizeLogValue(payload.CompanyID)).
		Str("method", string(method)).
		Str("mode", string(mode)).
		Dur("duration", time.Since(start)).
		Msg("Analysis served")

	respondJSON(w, http.StatusOK, payload)
}

// companyIDFromBody reads company_id, falling back to companyId when the
// former is missing, null, "" or []. Only scalar ids are accepted.
func companyIDFromBody(body map[string]any) (string, error) {
	raw := body["company_id"]
	if blankID(raw) {
		raw = body["companyId"]
	}
	if blankID(raw) {
		return "", analysis.Validation("Missing company_id parameter")
	}

	switch raw.(type) {
	case []any, map[string]any:
		return "", analysis.Validation("company_id must be a string or number")
	}

	id := analysis.NormalizeCompanyID(raw)
	if id == "" {
		return "", analysis.Validation("Missing company_id parameter")
	}
	return id, nil
}

func blankID(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	}
	return false
}
