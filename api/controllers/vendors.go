package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/reachly-hq/reachly-portal/api/middleware"
	"github.com/reachly-hq/reachly-portal/api/responses"
	"github.com/reachly-hq/reachly-portal/api/validators"
	"github.com/reachly-hq/reachly-portal/internal/vendor"
	"github.com/reachly-hq/reachly-portal/pkg/backend"
	pkgerrors "github.com/reachly-hq/reachly-portal/pkg/errors"
	"github.com/reachly-hq/reachly-portal/pkg/logger"
)

// VendorRegister handles the public registration form.
func VendorRegister(svc vendor.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "vendor service unavailable"))
			return
		}

		var form backend.VendorForm
		if err := validators.DecodeJSONBody(r, &form); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := validators.CheckVendorForm(form); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Register(r.Context(), form); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]string{"message": "vendor registered"})
	}
}

// VendorPrefill returns the stored profile for the edit form.
func VendorPrefill(svc vendor.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "vendor service unavailable"))
			return
		}

		profile, err := svc.Prefill(r.Context(), middleware.BackendTokenFromContext(r.Context()), chi.URLParam(r, "email"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, profile)
	}
}

// VendorUpdate replaces the stored profile with the submitted form.
func VendorUpdate(svc vendor.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "vendor service unavailable"))
			return
		}

		var form backend.VendorForm
		if err := validators.DecodeJSONBody(r, &form); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := validators.CheckVendorForm(form); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		err := svc.Update(r.Context(), middleware.BackendTokenFromContext(r.Context()), chi.URLParam(r, "email"), form)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"message": "vendor updated"})
	}
}
