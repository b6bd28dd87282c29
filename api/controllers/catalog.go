package controllers

import (
	"net/http"

	"github.com/reachly-hq/reachly-portal/api/responses"
	"github.com/reachly-hq/reachly-portal/internal/catalog"
)

// Catalog publishes the canonical industry and service lists the registration
// form renders.
func Catalog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string][]string{
			"industries": catalog.Industries(),
			"services":   catalog.Services(),
		})
	}
}
