package util

import (
	"encoding/json"
	"net/http"
)

// MessageResponse is the body of every error and confirmation response.
type MessageResponse struct {
	Message string `json:"message"`
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, errorMessage string) {
	WriteJSON(w, statusCode, MessageResponse{Message: errorMessage})
}

func WriteSuccessResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	WriteJSON(w, statusCode, data)
}

// WriteMessage sends a confirmation such as "Course deleted successfully".
func WriteMessage(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, MessageResponse{Message: message})
}

// WriteText sends a plain text body.
func WriteText(w http.ResponseWriter, statusCode int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write([]byte(text))
}

func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(append(body, '\n'))
}
