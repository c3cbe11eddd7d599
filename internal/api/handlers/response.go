package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const (
	msgInternalError  = "Something went wrong. Please try again."
	msgInvalidBody    = "Invalid request body."
	msgTooManyRequest = "Too many requests. Please slow down."
)

// maxBodyBytes ограничение на размер тела запроса
const maxBodyBytes = 1 << 20

// ActionResult единый формат ответа: success=true с данными или success=false с сообщением
type ActionResult struct {
	Success bool        `json:"success"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// RespondJSON отправляет JSON ответ
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondSuccess отправляет {"success": true} с данными, если они есть
func RespondSuccess(w http.ResponseWriter, status int, data interface{}) {
	RespondJSON(w, status, ActionResult{Success: true, Data: data})
}

// RespondError отправляет {"success": false, "error": message}
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ActionResult{Success: false, Error: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondInvalidBody(w http.ResponseWriter) {
	RespondError(w, http.StatusBadRequest, msgInvalidBody)
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

func RespondTooManyRequests(w http.ResponseWriter) {
	RespondError(w, http.StatusTooManyRequests, msgTooManyRequest)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// RespondUpstream отправляет 502 с сообщением первопричины ошибки хранилища
func RespondUpstream(w http.ResponseWriter, err error) {
	RespondError(w, http.StatusBadGateway, RootCause(err).Error())
}

// RootCause разворачивает цепочку ошибок до самой глубокой
// Для ошибок, обёрнутых несколькими %w, идёт по последней: первым идёт sentinel пакета, последней причина
func RootCause(err error) error {
	for err != nil {
		var next error
		switch e := err.(type) {
		case interface{ Unwrap() []error }:
			if errs := e.Unwrap(); len(errs) > 0 {
				next = errs[len(errs)-1]
			}
		case interface{ Unwrap() error }:
			next = e.Unwrap()
		}
		if next == nil {
			return err
		}
		err = next
	}
	return err
}

// DecodeJSON декодирует тело запроса, неизвестные поля запрещены
func DecodeJSON(r *http.Request, dest interface{}) error {
	if r.Body == nil {
		return errors.New("empty body")
	}

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}

	return nil
}
