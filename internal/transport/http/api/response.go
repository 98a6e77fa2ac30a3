package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"workforce/internal/apperror"
	"workforce/internal/requestctx"
)

type Envelope struct {
	IsV1 bool `json:"is_v1"`
	Data any  `json:"data"`
}

type ErrorBody struct {
	Error  string                `json:"error"`
	Fields []apperror.FieldIssue `json:"fields,omitempty"`
}

type Result struct {
	Status int
	Data   any
}

func OK(data any) Result {
	return Result{Status: http.StatusOK, Data: data}
}

func Created(data any) Result {
	return Result{Status: http.StatusCreated, Data: data}
}

const internalErrorBody = `{"is_v1":true,"data":{"error":"internal server error"}}`

// WriteJSON marshals before touching the response.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	body, err := json.Marshal(Envelope{IsV1: true, Data: data})
	if err != nil {
		slog.Error("encode response failed", "err", err)
		status = http.StatusInternalServerError
		body = []byte(internalErrorBody)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		slog.Warn("write json failed", "err", err)
	}
}

func Success(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, data)
}

func Fail(w http.ResponseWriter, status int, message string, fields ...apperror.FieldIssue) {
	WriteJSON(w, status, ErrorBody{Error: message, Fields: fields})
}

func StatusFor(err error) int {
	switch apperror.GetCode(err) {
	case apperror.CodeValidation:
		return http.StatusBadRequest
	case apperror.CodeNotFound:
		return http.StatusNotFound
	case apperror.CodeConflict:
		return http.StatusConflict
	case apperror.CodeUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		slog.Error("request failed", "err", err, "path", r.URL.Path, "requestId", requestctx.RequestID(r.Context()))
		Fail(w, status, "internal server error")
		return
	}
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		Fail(w, status, appErr.Message, appErr.Fields...)
		return
	}
	Fail(w, status, err.Error())
}

type HandlerFunc func(r *http.Request) (Result, error)

func Handle(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := fn(r)
		if err != nil {
			WriteError(w, r, err)
			return
		}
		WriteJSON(w, res.Status, res.Data)
	}
}

// HandleList reports any error as a 500 carrying the error text.
func HandleList(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := fn(r)
		if err != nil {
			slog.Warn("list request failed", "err", err, "path", r.URL.Path, "requestId", requestctx.RequestID(r.Context()))
			Fail(w, http.StatusInternalServerError, err.Error())
			return
		}
		WriteJSON(w, res.Status, res.Data)
	}
}

type File struct {
	Name        string
	ContentType string
	Body        []byte
}

type FileHandlerFunc func(r *http.Request) (File, error)

func HandleFile(fn FileHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, err := fn(r)
		if err != nil {
			WriteError(w, r, err)
			return
		}
		w.Header().Set("Content-Type", file.ContentType)
		w.Header().Set("Content-Disposition", `attachment; filename="`+file.Name+`"`)
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(file.Body); err != nil {
			slog.Warn("write file failed", "err", err)
		}
	}
}
