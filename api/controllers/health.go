package controllers

import (
	"net/http"

	"github.com/reachly-hq/reachly-portal/api/responses"
	"github.com/reachly-hq/reachly-portal/pkg/config"
	pkgerrors "github.com/reachly-hq/reachly-portal/pkg/errors"
	"github.com/reachly-hq/reachly-portal/pkg/logger"
	"github.com/reachly-hq/reachly-portal/pkg/redis"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Reachly-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config, pinger redis.Pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Reachly-Env", cfg.App.Env)
		if pinger != nil {
			if err := pinger.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis ping"))
				return
			}
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
