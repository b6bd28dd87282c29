package matches

import (
	"math"

	"github.com/reachly-hq/reachly-portal/pkg/backend"
	"github.com/reachly-hq/reachly-portal/pkg/enums"
)

// VendorStats are the per-vendor match counts shown on the admin dashboard.
type VendorStats struct {
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
	Pending  int `json:"pending"`
	Total    int `json:"total"`
}

// ComputeVendorStats classifies each match ref in a single pass. Absent and
// empty statuses count as pending, the same rule the partition uses.
func ComputeVendorStats(refs []backend.MatchRef) VendorStats {
	stats := VendorStats{Total: len(refs)}
	for _, ref := range refs {
		switch ref.Status {
		case enums.MatchStatusAccepted:
			stats.Accepted++
		case enums.MatchStatusRejected:
			stats.Rejected++
		default:
			stats.Pending++
		}
	}
	return stats
}

// Totals are the dashboard-wide summary numbers.
type Totals struct {
	Vendors int `json:"vendors"`
	Buyers  int `json:"buyers"`
	Matches int `json:"matches"`
	Leads   int `json:"leads"`
}

// ComputeTotals reduces over the full fetched collections. Recomputed on
// every fetch; nothing is cached.
func ComputeTotals(vendors []backend.VendorRecord, buyers []backend.BuyerRecord) Totals {
	totals := Totals{
		Vendors: len(vendors),
		Buyers:  len(buyers),
	}
	for _, rec := range vendors {
		totals.Matches += len(rec.Vendor.MatchedBuyers)
		totals.Leads += rec.Vendor.Leads
	}
	return totals
}

// LeadUsageRate expresses used leads as a percentage of the vendor's total,
// to one decimal place. Zero totals and overuse both read as 100.
func LeadUsageRate(leads, used int) float64 {
	if leads == 0 || used >= leads {
		return 100
	}
	rate := float64(used) / float64(leads) * 100
	return math.Round(rate*10) / 10
}
