package handler

import (
	"net/http"

	"courtbook/config"
	"courtbook/di"
	"courtbook/shared/logger"
)

// Handler is the serverless entrypoint; it serves one request through the same router as cmd/app.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	handler := di.InitializeService()
	handler.ServeHTTP(w, r)
}
