package pkg

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

var ContentType = struct {
	JSON string
	Text string
	HTML string
}{
	JSON: "application/json",
	Text: "text/plain",
	HTML: "text/html",
}

func WriteResponse(w http.ResponseWriter, contentType, message string) {
	WriteResponseBytes(w, contentType, []byte(message))
}

func WriteResponseBytes(w http.ResponseWriter, contentType string, message []byte) {
	if contentType != "" {
		w.Header().Add("Content-Type", contentType)
	}

	if _, err := w.Write(message); err != nil {
		log.Errorf("failed to write response [%s]: %s", message, err)
	}
}

func WriteTextResponseOK(w http.ResponseWriter, message string) {
	WriteResponse(w, ContentType.Text, message)
}

// SendJsonResponse marshals the given object and writes it with the given status code
func SendJsonResponse(w http.ResponseWriter, statusCode int, obj any) {
	respBytes, err := json.Marshal(obj)
	if err != nil {
		log.Errorf("send json response, marshal object: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", ContentType.JSON)
	w.WriteHeader(statusCode)
	if _, err := w.Write(respBytes); err != nil {
		log.Errorf("send json response, write bytes: %s", err)
	}
}
