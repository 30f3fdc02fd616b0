package routes

import (
	"errors"
	"io"
	"net/http"

	"partialdate/calendar"
	"partialdate/isodate"
	"partialdate/oops"

	"github.com/goccy/go-json"
)

var parser = isodate.NewParser(calendar.NewSystem())

func Health(w http.ResponseWriter, _ *http.Request) {
	mustWriteJson(w, http.StatusOK, map[string]any{"status": "ok"})
}

func ParseDate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		panic(oops.Wrap(err))
	}

	var req struct {
		Input string `json:"input"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		mustWriteJson(w, http.StatusBadRequest, map[string]any{"error": "malformed request body"})
		return
	}

	result, err := parser.Parse(req.Input)
	switch {
	case errors.Is(err, isodate.ErrNoMatch):
		mustWriteJson(w, http.StatusBadRequest, map[string]any{"error": oops.Message(err)})
	case errors.Is(err, calendar.ErrInvalidDate):
		mustWriteJson(w, http.StatusUnprocessableEntity, map[string]any{"error": oops.Message(err)})
	case err != nil:
		panic(oops.Wrap(err))
	default:
		mustWriteJson(w, http.StatusOK, map[string]any{
			"date":    result.Date,
			"missing": result.Missing,
		})
	}
}

func mustWriteJson(w http.ResponseWriter, statusCode int, data map[string]any) {
	bytes, err := json.Marshal(data)
	if err != nil {
		panic(oops.Wrap(err))
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	if _, err := w.Write(bytes); err != nil {
		panic(oops.Wrap(err))
	}
}
