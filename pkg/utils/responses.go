package utils

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the JSON body written for every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// Common error codes
const (
	CodeInvalidInput  = "INVALID_INPUT"
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeForbidden     = "FORBIDDEN"
	CodeNotFound      = "NOT_FOUND"
	CodeEmailExists   = "EMAIL_EXISTS"
	CodeExpiredToken  = "EXPIRED_TOKEN"
	CodeInvalidToken  = "INVALID_TOKEN"
	CodeInternalError = "INTERNAL_ERROR"
)

// ResponseJSON writes payload as JSON with the given status code.
func ResponseJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, payload any) {
	ResponseJSON(w, http.StatusOK, payload)
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, payload any) {
	ResponseJSON(w, http.StatusCreated, payload)
}

// ------------- Error responses -------------

// ResponseError writes a structured JSON error body.
func ResponseError(w http.ResponseWriter, status int, message, code string) {
	ResponseJSON(w, status, ErrorResponse{Error: message, Code: code})
}

// ResponseErrorWithDetails includes a debug detail field alongside the message.
func ResponseErrorWithDetails(w http.ResponseWriter, status int, message, code, details string) {
	ResponseJSON(w, status, ErrorResponse{Error: message, Code: code, Details: details})
}

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusBadRequest, message, CodeInvalidInput)
}

// returns 401 Unauthorized
func ResponseUnauthorized(w http.ResponseWriter, message, code string) {
	ResponseError(w, http.StatusUnauthorized, message, code)
}

// returns 403 Forbidden
func ResponseForbidden(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusForbidden, message, CodeForbidden)
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusNotFound, message, CodeNotFound)
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, details string) {
	ResponseErrorWithDetails(w, http.StatusInternalServerError, "Internal server error", CodeInternalError, details)
}
