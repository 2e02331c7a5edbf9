package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// setupTestLogger creates a logger for testing
func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newAuthedRequest собирает запрос так, как его видит handler после AuthMiddleware и ServeMux
func newAuthedRequest(method, target, body, userID string, pathValues map[string]string) *http.Request {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req, _ := http.NewRequest(method, target, r)
	for k, v := range pathValues {
		req.SetPathValue(k, v)
	}
	if userID != "" {
		req = req.WithContext(WithUserID(req.Context(), userID))
	}
	return req
}
