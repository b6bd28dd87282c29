package matches

import (
	"fmt"

	"github.com/reachly-hq/reachly-portal/pkg/backend"
	"github.com/reachly-hq/reachly-portal/pkg/enums"
)

// Tab names one of the three dashboard groups.
type Tab string

const (
	TabNew      Tab = "new"
	TabAccepted Tab = "accepted"
	TabRejected Tab = "rejected"
)

// ParseTab converts raw input into a Tab.
func ParseTab(value string) (Tab, error) {
	switch Tab(value) {
	case TabNew, TabAccepted, TabRejected:
		return Tab(value), nil
	}
	return "", fmt.Errorf("invalid tab %q", value)
}

// Label returns the display form used in exports.
func (t Tab) Label() string {
	switch t {
	case TabNew:
		return "New"
	case TabAccepted:
		return "Accepted"
	case TabRejected:
		return "Rejected"
	}
	return string(t)
}

// StatusFor looks up the vendor's recorded decision for a buyer. An absent
// entry or empty status reads as pending.
func StatusFor(refs []backend.MatchRef, buyerEmail string) enums.MatchStatus {
	for _, ref := range refs {
		if ref.BuyerEmail == buyerEmail {
			if ref.Status == "" {
				return enums.MatchStatusPending
			}
			return ref.Status
		}
	}
	return enums.MatchStatusPending
}

func tabFor(status enums.MatchStatus) Tab {
	switch status {
	case enums.MatchStatusAccepted:
		return TabAccepted
	case enums.MatchStatusRejected:
		return TabRejected
	}
	return TabNew
}

// Partition holds the three disjoint match groups, each in input order.
type Partition struct {
	New      []backend.MatchedBuyer
	Accepted []backend.MatchedBuyer
	Rejected []backend.MatchedBuyer
}

// PartitionMatches splits the match rows by the vendor's recorded decisions.
// Absent and pending statuses land in New.
func PartitionMatches(list []backend.MatchedBuyer, refs []backend.MatchRef) Partition {
	var p Partition
	for _, m := range list {
		switch tabFor(StatusFor(refs, m.Buyer.Email)) {
		case TabAccepted:
			p.Accepted = append(p.Accepted, m)
		case TabRejected:
			p.Rejected = append(p.Rejected, m)
		default:
			p.New = append(p.New, m)
		}
	}
	return p
}

// Group returns the slice for the named tab.
func (p Partition) Group(t Tab) []backend.MatchedBuyer {
	switch t {
	case TabAccepted:
		return p.Accepted
	case TabRejected:
		return p.Rejected
	}
	return p.New
}

// Total is the number of matches across all groups.
func (p Partition) Total() int {
	return len(p.New) + len(p.Accepted) + len(p.Rejected)
}

// VendorRefPartition holds the buyer-side match groups.
type VendorRefPartition struct {
	New      []backend.VendorMatchRef
	Accepted []backend.VendorMatchRef
	Rejected []backend.VendorMatchRef
}

// PartitionVendorRefs splits a buyer's matched vendors by status.
func PartitionVendorRefs(refs []backend.VendorMatchRef) VendorRefPartition {
	var p VendorRefPartition
	for _, ref := range refs {
		status := ref.Status
		if status == "" {
			status = enums.MatchStatusPending
		}
		switch tabFor(status) {
		case TabAccepted:
			p.Accepted = append(p.Accepted, ref)
		case TabRejected:
			p.Rejected = append(p.Rejected, ref)
		default:
			p.New = append(p.New, ref)
		}
	}
	return p
}
