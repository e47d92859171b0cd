package utils

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
)

func WriteJSON(w http.ResponseWriter, payload any, code int) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(payload)
}

func WriteText(w http.ResponseWriter, text string, code int) error {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	_, err := w.Write([]byte(text))
	return err
}

const maxMemory = 1 << 20

// DecodeBody accepts JSON, url-encoded and multipart forms. Form values are decoded
// as JSON strings into the matching json-tagged fields of v.
func DecodeBody(r *http.Request, v any) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		var err error
		if mediaType == "multipart/form-data" {
			err = r.ParseMultipartForm(maxMemory)
		} else {
			err = r.ParseForm()
		}
		if err != nil {
			return fmt.Errorf("failed to parse form: %w", err)
		}
		values := make(map[string]string, len(r.PostForm))
		for key := range r.PostForm {
			values[key] = r.PostForm.Get(key)
		}
		data, err := json.Marshal(values)
		if err != nil {
			return err
		}
		return json.Unmarshal(data, v)
	default:
		return json.NewDecoder(r.Body).Decode(v)
	}
}

// ErrorResponse describes a standard error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	Message string `json:"message"`
}

func WriteError(w http.ResponseWriter, message string, code int) error {
	return WriteJSON(w, ErrorResponse{Message: message}, code)
}
