package validators

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/reachly-hq/reachly-portal/internal/matches"
	pkgerrors "github.com/reachly-hq/reachly-portal/pkg/errors"
)

func ParseQueryInt(r *http.Request, key string, defaultVal, min, max int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultVal, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be numeric").WithDetails(map[string]any{"field": key})
	}
	if value < min || value > max {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter out of range").WithDetails(map[string]any{"field": key, "min": min, "max": max})
	}
	return value, nil
}

// ParseFilter reads the shared list-filter parameters. Month is zero-based,
// matching the picker the dashboards render.
func ParseFilter(r *http.Request) (matches.Filter, error) {
	filter := matches.Filter{
		Search:   strings.TrimSpace(r.URL.Query().Get("search")),
		Industry: strings.TrimSpace(r.URL.Query().Get("industry")),
		Service:  strings.TrimSpace(r.URL.Query().Get("service")),
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("month")); raw != "" {
		month, err := ParseQueryInt(r, "month", 0, 0, 11)
		if err != nil {
			return matches.Filter{}, err
		}
		filter.Month = &month
	}
	return filter, nil
}

// ParseTab reads the match-group selector, defaulting to the new tab.
func ParseTab(r *http.Request) (matches.Tab, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("tab"))
	if raw == "" {
		return matches.TabNew, nil
	}
	tab, err := matches.ParseTab(raw)
	if err != nil {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "tab must be new, accepted or rejected")
	}
	return tab, nil
}
