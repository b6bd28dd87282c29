package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/reachly-hq/reachly-portal/api/middleware"
	"github.com/reachly-hq/reachly-portal/api/responses"
	"github.com/reachly-hq/reachly-portal/api/validators"
	"github.com/reachly-hq/reachly-portal/internal/admin"
	"github.com/reachly-hq/reachly-portal/internal/export"
	pkgerrors "github.com/reachly-hq/reachly-portal/pkg/errors"
	"github.com/reachly-hq/reachly-portal/pkg/logger"
)

type addLeadsBody struct {
	Leads int `json:"leads" validate:"required,min=1"`
}

// AdminOverview serves the filtered vendor and buyer tables with totals.
func AdminOverview(svc admin.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "admin service unavailable"))
			return
		}

		filter, err := validators.ParseFilter(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		overview, err := svc.Overview(r.Context(), middleware.BackendTokenFromContext(r.Context()), filter)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, overview)
	}
}

// AdminAddLeads credits a vendor and returns the refreshed overview.
func AdminAddLeads(svc admin.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "admin service unavailable"))
			return
		}

		var body addLeadsBody
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		overview, err := svc.AddLeads(
			r.Context(),
			middleware.BackendTokenFromContext(r.Context()),
			chi.URLParam(r, "email"),
			body.Leads,
		)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, overview)
	}
}

// AdminToggleActivation flips one account and returns the refreshed overview.
func AdminToggleActivation(svc admin.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "admin service unavailable"))
			return
		}

		overview, err := svc.ToggleActivation(
			r.Context(),
			middleware.BackendTokenFromContext(r.Context()),
			chi.URLParam(r, "email"),
		)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, overview)
	}
}

// AdminVendorDetail serves the expanded vendor dialog payload.
func AdminVendorDetail(svc admin.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "admin service unavailable"))
			return
		}

		detail, err := svc.VendorDetail(r.Context(), middleware.BackendTokenFromContext(r.Context()), chi.URLParam(r, "email"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, detail)
	}
}

// AdminBuyerDetail serves the expanded buyer dialog payload.
func AdminBuyerDetail(svc admin.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "admin service unavailable"))
			return
		}

		detail, err := svc.BuyerDetail(r.Context(), middleware.BackendTokenFromContext(r.Context()), chi.URLParam(r, "email"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, detail)
	}
}

// AdminExportVendors streams the vendor table as a CSV download.
func AdminExportVendors(svc admin.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "admin service unavailable"))
			return
		}

		filter, err := validators.ParseFilter(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		file, err := svc.ExportVendors(r.Context(), middleware.BackendTokenFromContext(r.Context()), filter)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteCSV(w, file.Name, export.ContentType, file.Content)
	}
}

// AdminExportBuyers streams the buyer table as a CSV download.
func AdminExportBuyers(svc admin.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "admin service unavailable"))
			return
		}

		filter, err := validators.ParseFilter(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		file, err := svc.ExportBuyers(r.Context(), middleware.BackendTokenFromContext(r.Context()), filter)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteCSV(w, file.Name, export.ContentType, file.Content)
	}
}
