package controllers

import (
	"net/http"

	"github.com/reachly-hq/reachly-portal/api/middleware"
	"github.com/reachly-hq/reachly-portal/api/responses"
	"github.com/reachly-hq/reachly-portal/internal/buyer"
	pkgerrors "github.com/reachly-hq/reachly-portal/pkg/errors"
	"github.com/reachly-hq/reachly-portal/pkg/logger"
)

// BuyerDashboard serves the session buyer's profile and matched vendors.
func BuyerDashboard(svc buyer.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "buyer service unavailable"))
			return
		}

		view, err := svc.Dashboard(
			r.Context(),
			middleware.BackendTokenFromContext(r.Context()),
			middleware.EmailFromContext(r.Context()),
		)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, view)
	}
}
