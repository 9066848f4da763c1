// Package httpx shapes every response as the API envelope:
// {success:true, data:..., count?:n} on success, {success:false, msg}
// on failure.
package httpx

import (
	"encoding/json"
	"net/http"
)

type envelope struct {
	Success bool   `json:"success"`
	Count   *int   `json:"count,omitempty"`
	Data    any    `json:"data,omitempty"`
	Msg     string `json:"msg,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func Data(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelope{Success: true, Data: data})
}

// List includes a count alongside the data, zero included.
func List(w http.ResponseWriter, count int, data any) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Count: &count, Data: data})
}

// ListMsg is List with an informational message.
func ListMsg(w http.ResponseWriter, count int, data any, msg string) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Count: &count, Data: data, Msg: msg})
}

func Fail(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, envelope{Success: false, Msg: msg})
}
