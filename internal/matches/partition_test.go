package matches

import (
	"testing"

	"github.com/reachly-hq/reachly-portal/pkg/backend"
	"github.com/reachly-hq/reachly-portal/pkg/enums"
)

func matchRow(email string) backend.MatchedBuyer {
	return backend.MatchedBuyer{Buyer: backend.Buyer{Email: email}}
}

func TestPartitionMatchesThreeWay(t *testing.T) {
	list := []backend.MatchedBuyer{
		matchRow("a@x.com"), // accepted
		matchRow("b@x.com"), // no ref at all
		matchRow("c@x.com"), // explicit pending
		matchRow("d@x.com"), // rejected
		matchRow("e@x.com"), // empty status ref
	}
	refs := []backend.MatchRef{
		{BuyerEmail: "a@x.com", Status: enums.MatchStatusAccepted},
		{BuyerEmail: "c@x.com", Status: enums.MatchStatusPending},
		{BuyerEmail: "d@x.com", Status: enums.MatchStatusRejected},
		{BuyerEmail: "e@x.com"},
	}

	p := PartitionMatches(list, refs)

	if p.Total() != len(list) {
		t.Fatalf("group sizes must sum to input length: %d != %d", p.Total(), len(list))
	}
	if len(p.Accepted) != 1 || p.Accepted[0].Buyer.Email != "a@x.com" {
		t.Fatalf("unexpected accepted group %v", p.Accepted)
	}
	if len(p.Rejected) != 1 || p.Rejected[0].Buyer.Email != "d@x.com" {
		t.Fatalf("unexpected rejected group %v", p.Rejected)
	}
	if len(p.New) != 3 {
		t.Fatalf("absent, pending and empty statuses all belong to new, got %d", len(p.New))
	}
	// input order preserved within the group
	if p.New[0].Buyer.Email != "b@x.com" || p.New[1].Buyer.Email != "c@x.com" || p.New[2].Buyer.Email != "e@x.com" {
		t.Fatalf("new group order changed: %v", p.New)
	}

	seen := map[string]int{}
	for _, group := range [][]backend.MatchedBuyer{p.New, p.Accepted, p.Rejected} {
		for _, m := range group {
			seen[m.Buyer.Email]++
		}
	}
	for email, count := range seen {
		if count != 1 {
			t.Fatalf("groups are not disjoint: %s appears %d times", email, count)
		}
	}
}

func TestStatusForAbsentRef(t *testing.T) {
	refs := []backend.MatchRef{{BuyerEmail: "a@x.com", Status: enums.MatchStatusAccepted}}
	if got := StatusFor(refs, "ghost@x.com"); got != enums.MatchStatusPending {
		t.Fatalf("absent ref should read pending, got %s", got)
	}
	if got := StatusFor(refs, "a@x.com"); got != enums.MatchStatusAccepted {
		t.Fatalf("expected accepted, got %s", got)
	}
}

func TestParseTab(t *testing.T) {
	for _, valid := range []string{"new", "accepted", "rejected"} {
		if _, err := ParseTab(valid); err != nil {
			t.Fatalf("tab %q should parse: %v", valid, err)
		}
	}
	if _, err := ParseTab("archived"); err == nil {
		t.Fatal("unknown tab should fail")
	}
}

func TestPartitionVendorRefs(t *testing.T) {
	refs := []backend.VendorMatchRef{
		{Status: enums.MatchStatusAccepted},
		{},
		{Status: enums.MatchStatusRejected},
		{Status: enums.MatchStatusPending},
	}
	p := PartitionVendorRefs(refs)
	if len(p.Accepted) != 1 || len(p.Rejected) != 1 || len(p.New) != 2 {
		t.Fatalf("unexpected partition %+v", p)
	}
}
