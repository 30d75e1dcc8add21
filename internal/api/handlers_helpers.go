// Inflection - Call Volume Seasonality Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/inflection

package api

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/inflection/internal/analysis"
	"github.com/tomtom215/inflection/internal/logging"
	"github.com/tomtom215/inflection/internal/middleware"
	"github.com/tomtom215/inflection/internal/models"
)

// maxRequestBodyBytes caps analysis request bodies.
const maxRequestBodyBytes = 1 << 20

// Error codes carried in ErrorResponse.Code.
const (
	CodeNotFound    = "NOT_FOUND"
	CodeValidation  = "VALIDATION_ERROR"
	CodeUpstream    = "UPSTREAM_ERROR"
	CodeInternal    = "INTERNAL_ERROR"
	CodeNoData      = "NO_DATA"
	CodeRateLimited = "RATE_LIMITED"
)

const (
	msgInternalError   = "Internal server error"
	msgCompanyNotFound = "No data found for the requested company"
	msgNoData          = "No data available"
)

var errNoSource = errors.New("no data source configured")

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with proper headers. Handlers may set
// Cache-Control beforehand; otherwise responses are not cached.
func respondJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if w.Header().Get("Cache-Control") == "" {
		w.Header().Set("Cache-Control", "no-cache")
	}
	w.Header().Set("ETag", generateETag(data))

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// generateETag creates a simple ETag from data using FNV-1a hash
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return `"` + strconv.FormatUint(uint64(hash), 16) + `"`
}

// writeError sends an ErrorResponse tagged with the request ID.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message, details string) {
	w.Header().Set("Cache-Control", "no-store")
	respondJSON(w, status, &models.ErrorResponse{
		Error:     message,
		Details:   details,
		Code:      code,
		RequestID: middleware.GetRequestID(r.Context()),
	})
}

// respondError maps err to a status code by its analysis.Kind and writes it.
// Every kind is handled explicitly; anything unclassified is a 500.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	logger := logging.Ctx(r.Context())

	var aerr *analysis.Error
	if !errors.As(err, &aerr) {
		logger.Error().Str("error", sanitizeLogValue(err.Error())).Str("path", r.URL.Path).Msg("Unhandled API error")
		writeError(w, r, http.StatusInternalServerError, CodeInternal, msgInternalError, err.Error())
		return
	}

	switch aerr.Kind {
	case analysis.KindNotFound:
		logger.Warn().Str("error", sanitizeLogValue(aerr.Message)).Msg("Company not found")
		writeError(w, r, http.StatusNotFound, CodeNotFound, msgCompanyNotFound, aerr.Message)
	case analysis.KindValidation:
		logger.Debug().Str("error", sanitizeLogValue(aerr.Message)).Msg("Rejected invalid request")
		writeError(w, r, http.StatusBadRequest, CodeValidation, aerr.Message, "")
	case analysis.KindUpstream:
		logger.Error().Str("error", sanitizeLogValue(aerr.Error())).Msg("Data source failure")
		writeError(w, r, http.StatusInternalServerError, CodeUpstream, msgInternalError, aerr.Error())
	case analysis.KindUnknown:
		logger.Error().Str("error", sanitizeLogValue(aerr.Error())).Msg("Unclassified analysis error")
		writeError(w, r, http.StatusInternalServerError, CodeInternal, msgInternalError, aerr.Error())
	default:
		logger.Error().Str("error", sanitizeLogValue(aerr.Error())).Msg("Unknown error kind")
		writeError(w, r, http.StatusInternalServerError, CodeInternal, msgInternalError, aerr.Error())
	}
}

// decodeJSONObject reads a JSON object body with numbers kept as json.Number.
// An empty or null body decodes to an empty map.
func decodeJSONObject(w http.ResponseWriter, r *http.Request) (map[string]any, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, analysis.Validation("Request body exceeds %d bytes", tooLarge.Limit)
		}
		return nil, analysis.Validation("Failed to read request body")
	}

	body := map[string]any{}
	if len(bytes.TrimSpace(data)) == 0 {
		return body, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		return nil, analysis.Validation("Invalid JSON body")
	}
	if body == nil {
		body = map[string]any{}
	}
	return body, nil
}

// stringField returns body[key] when it is a string, else "".
func stringField(body map[string]any, key string) string {
	if s, ok := body[key].(string); ok {
		return s
	}
	return ""
}
