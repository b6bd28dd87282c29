package buyer

import (
	"context"
	"fmt"
	"strings"

	"github.com/reachly-hq/reachly-portal/internal/matches"
	"github.com/reachly-hq/reachly-portal/pkg/backend"
	"github.com/reachly-hq/reachly-portal/pkg/enums"
	pkgerrors "github.com/reachly-hq/reachly-portal/pkg/errors"
)

// Service defines the behavior needed by the buyer controller.
type Service interface {
	Dashboard(ctx context.Context, token, buyerEmail string) (*DashboardView, error)
}

// VendorView is one matched vendor row on the buyer dashboard.
type VendorView struct {
	Vendor backend.Vendor    `json:"vendor"`
	Status enums.MatchStatus `json:"status"`
}

// DashboardView is the buyer dashboard payload. Buyers see which vendors
// accepted them; pending and rejected counts are summary numbers only.
type DashboardView struct {
	Buyer    backend.Buyer `json:"buyer"`
	Accepted []VendorView  `json:"accepted"`
	Pending  int           `json:"pending"`
	Rejected int           `json:"rejected"`
	Total    int           `json:"total"`
}

type backendGateway interface {
	ListBuyers(ctx context.Context, token string) ([]backend.BuyerRecord, error)
}

type service struct {
	backend backendGateway
}

// ServiceParams bundles the dependencies required to build a buyer service.
type ServiceParams struct {
	Backend backendGateway
}

// NewService constructs a buyer service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Backend == nil {
		return nil, fmt.Errorf("backend gateway is required")
	}
	return &service{backend: params.Backend}, nil
}

func (s *service) Dashboard(ctx context.Context, token, buyerEmail string) (*DashboardView, error) {
	email := strings.ToLower(strings.TrimSpace(buyerEmail))
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "buyer email is required")
	}

	records, err := s.backend.ListBuyers(ctx, token)
	if err != nil {
		return nil, err
	}

	var record *backend.BuyerRecord
	for i := range records {
		if strings.EqualFold(records[i].Buyer.Email, email) {
			record = &records[i]
			break
		}
	}
	if record == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "buyer profile not found")
	}

	partition := matches.PartitionVendorRefs(record.MatchedVendors)

	accepted := make([]VendorView, 0, len(partition.Accepted))
	for _, ref := range partition.Accepted {
		if ref.Vendor == nil {
			continue
		}
		accepted = append(accepted, VendorView{Vendor: *ref.Vendor, Status: enums.MatchStatusAccepted})
	}

	return &DashboardView{
		Buyer:    record.Buyer,
		Accepted: accepted,
		Pending:  len(partition.New),
		Rejected: len(partition.Rejected),
		Total:    len(record.MatchedVendors),
	}, nil
}
