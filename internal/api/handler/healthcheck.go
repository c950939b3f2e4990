package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Pinger é satisfeito pela conexão com o banco
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		}

		code := http.StatusOK
		if db != nil {
			if err := db.Ping(r.Context()); err != nil {
				logrus.WithError(err).Warn("Healthcheck sem acesso ao banco")
				status["database"] = "unavailable"
				code = http.StatusServiceUnavailable
			}
		}

		writeJSON(w, code, status)
	})
}
