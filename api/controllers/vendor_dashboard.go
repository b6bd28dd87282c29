package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/reachly-hq/reachly-portal/api/middleware"
	"github.com/reachly-hq/reachly-portal/api/responses"
	"github.com/reachly-hq/reachly-portal/api/validators"
	"github.com/reachly-hq/reachly-portal/internal/export"
	"github.com/reachly-hq/reachly-portal/internal/vendor"
	"github.com/reachly-hq/reachly-portal/pkg/enums"
	pkgerrors "github.com/reachly-hq/reachly-portal/pkg/errors"
	"github.com/reachly-hq/reachly-portal/pkg/logger"
)

type decisionBody struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected"`
}

// VendorDashboard serves the session vendor's matches grouped by tab.
func VendorDashboard(svc vendor.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "vendor service unavailable"))
			return
		}

		filter, err := validators.ParseFilter(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.Dashboard(
			r.Context(),
			middleware.BackendTokenFromContext(r.Context()),
			middleware.EmailFromContext(r.Context()),
			filter,
		)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, view)
	}
}

// VendorDecision records an accept/reject on one matched buyer.
func VendorDecision(svc vendor.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "vendor service unavailable"))
			return
		}

		var body decisionBody
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		status, err := enums.ParseMatchStatus(body.Status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status"))
			return
		}

		result, err := svc.Decide(r.Context(), vendor.DecisionRequest{
			Token:       middleware.BackendTokenFromContext(r.Context()),
			VendorEmail: middleware.EmailFromContext(r.Context()),
			BuyerEmail:  chi.URLParam(r, "buyerEmail"),
			Status:      status,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// VendorExportMatches streams the visible tab as a CSV download.
func VendorExportMatches(svc vendor.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "vendor service unavailable"))
			return
		}

		tab, err := validators.ParseTab(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		filter, err := validators.ParseFilter(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		file, err := svc.ExportMatches(
			r.Context(),
			middleware.BackendTokenFromContext(r.Context()),
			middleware.EmailFromContext(r.Context()),
			tab,
			filter,
		)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteCSV(w, file.Name, export.ContentType, file.Content)
	}
}
