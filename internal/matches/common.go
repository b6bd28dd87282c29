package matches

import "github.com/reachly-hq/reachly-portal/pkg/backend"

// CommonIndustries lists the industries shared by a vendor and a buyer, in
// the vendor's selection order.
func CommonIndustries(vendor backend.Vendor, buyer backend.Buyer) []string {
	return intersect(vendor.SelectedIndustries, buyer.Industries)
}

// CommonServices lists the services shared by a vendor and a buyer, ignoring
// the buyer's per-service active flags.
func CommonServices(vendor backend.Vendor, buyer backend.Buyer) []string {
	return intersect(vendor.SelectedServices, buyer.ServiceNames())
}

// AllServicesInactive reports whether the buyer has switched off every
// service interest. Vacuously false for an empty service list.
func AllServicesInactive(buyer backend.Buyer) bool {
	if len(buyer.Services) == 0 {
		return false
	}
	for _, s := range buyer.Services {
		if s.Active {
			return false
		}
	}
	return true
}

func intersect(first, second []string) []string {
	present := make(map[string]struct{}, len(second))
	for _, s := range second {
		present[s] = struct{}{}
	}
	out := make([]string, 0, len(first))
	seen := make(map[string]struct{}, len(first))
	for _, s := range first {
		if _, ok := present[s]; !ok {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
