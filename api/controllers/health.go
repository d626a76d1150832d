package controllers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/multierr"

	"github.com/shopzo-app/shopzo-backend/api/responses"
	"github.com/shopzo-app/shopzo-backend/pkg/config"
	"github.com/shopzo-app/shopzo-backend/pkg/db"
	pkgerrors "github.com/shopzo-app/shopzo-backend/pkg/errors"
	"github.com/shopzo-app/shopzo-backend/pkg/logger"
)

const readyProbeTimeout = 3 * time.Second

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Shopzo-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady probes every hard dependency and fails closed when any of them
// is unreachable.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, redisP db.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Shopzo-Env", cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), readyProbeTimeout)
		defer cancel()

		var probeErr error
		if dbP != nil {
			if err := dbP.Ping(ctx); err != nil {
				probeErr = multierr.Append(probeErr, fmt.Errorf("database: %w", err))
			}
		}
		if redisP != nil {
			if err := redisP.Ping(ctx); err != nil {
				probeErr = multierr.Append(probeErr, fmt.Errorf("redis: %w", err))
			}
		}

		if probeErr != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, probeErr, "readiness probe failed"))
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
