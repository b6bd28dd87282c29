package matches

import (
	"strings"
	"time"

	"github.com/reachly-hq/reachly-portal/pkg/backend"
)

// Filter is the dashboard filter set. Empty fields match everything, so the
// zero Filter passes any record.
type Filter struct {
	Search   string
	Month    *int // zero-based calendar month
	Industry string
	Service  string
}

// IsZero reports whether no filter field is set.
func (f Filter) IsZero() bool {
	return f.Search == "" && f.Month == nil && f.Industry == "" && f.Service == ""
}

// Candidate is the filterable surface shared by vendor and buyer profiles.
type Candidate struct {
	FullName    string
	CompanyName string
	CreatedAt   time.Time
	Industries  []string
	Services    []string
}

// VendorCandidate projects a vendor profile into the filterable surface.
func VendorCandidate(v backend.Vendor) Candidate {
	return Candidate{
		FullName:    v.FullName(),
		CompanyName: v.CompanyName,
		CreatedAt:   v.CreatedAt,
		Industries:  v.SelectedIndustries,
		Services:    v.SelectedServices,
	}
}

// BuyerCandidate projects a buyer profile into the filterable surface.
// Services are matched by name regardless of their active flag.
func BuyerCandidate(b backend.Buyer) Candidate {
	return Candidate{
		FullName:    b.FullName(),
		CompanyName: b.CompanyName,
		CreatedAt:   b.CreatedAt,
		Industries:  b.Industries,
		Services:    b.ServiceNames(),
	}
}

// Matches applies every set field; the conditions are ANDed.
func (f Filter) Matches(c Candidate) bool {
	if f.Search != "" {
		query := strings.ToLower(f.Search)
		name := strings.ToLower(c.FullName)
		company := strings.ToLower(c.CompanyName)
		if !strings.Contains(name, query) && !strings.Contains(company, query) {
			return false
		}
	}
	if f.Industry != "" && !containsString(c.Industries, f.Industry) {
		return false
	}
	if f.Service != "" && !containsString(c.Services, f.Service) {
		return false
	}
	if f.Month != nil && int(c.CreatedAt.Month())-1 != *f.Month {
		return false
	}
	return true
}

// FilterVendors returns the vendor records passing the filter, order preserved.
func FilterVendors(records []backend.VendorRecord, f Filter) []backend.VendorRecord {
	if f.IsZero() {
		return records
	}
	out := make([]backend.VendorRecord, 0, len(records))
	for _, rec := range records {
		if f.Matches(VendorCandidate(rec.Vendor)) {
			out = append(out, rec)
		}
	}
	return out
}

// FilterBuyers returns the buyer records passing the filter, order preserved.
func FilterBuyers(records []backend.BuyerRecord, f Filter) []backend.BuyerRecord {
	if f.IsZero() {
		return records
	}
	out := make([]backend.BuyerRecord, 0, len(records))
	for _, rec := range records {
		if f.Matches(BuyerCandidate(rec.Buyer)) {
			out = append(out, rec)
		}
	}
	return out
}

// FilterMatches returns the match rows whose buyer passes the filter, order preserved.
func FilterMatches(list []backend.MatchedBuyer, f Filter) []backend.MatchedBuyer {
	if f.IsZero() {
		return list
	}
	out := make([]backend.MatchedBuyer, 0, len(list))
	for _, m := range list {
		if f.Matches(BuyerCandidate(m.Buyer)) {
			out = append(out, m)
		}
	}
	return out
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
