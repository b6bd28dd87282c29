package admin

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/reachly-hq/reachly-portal/internal/export"
	"github.com/reachly-hq/reachly-portal/internal/matches"
	"github.com/reachly-hq/reachly-portal/pkg/backend"
	"github.com/reachly-hq/reachly-portal/pkg/enums"
	pkgerrors "github.com/reachly-hq/reachly-portal/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Service defines the behavior needed by the admin controllers.
type Service interface {
	Overview(ctx context.Context, token string, filter matches.Filter) (*Overview, error)
	AddLeads(ctx context.Context, token, vendorEmail string, leads int) (*Overview, error)
	ToggleActivation(ctx context.Context, token, accountEmail string) (*Overview, error)
	VendorDetail(ctx context.Context, token, vendorEmail string) (*VendorDetail, error)
	BuyerDetail(ctx context.Context, token, buyerEmail string) (*BuyerDetail, error)
	ExportVendors(ctx context.Context, token string, filter matches.Filter) (*export.File, error)
	ExportBuyers(ctx context.Context, token string, filter matches.Filter) (*export.File, error)
}

// VendorRow is one admin table row with its derived stats.
type VendorRow struct {
	Vendor backend.Vendor      `json:"vendor"`
	Stats  matches.VendorStats `json:"stats"`
}

// Overview is the admin dashboard payload.
type Overview struct {
	Vendors []VendorRow           `json:"vendors"`
	Buyers  []backend.BuyerRecord `json:"buyers"`
	Totals  matches.Totals        `json:"totals"`

	// filter dropdown options collected from live data
	Industries []string `json:"industries"`
	Services   []string `json:"services"`
}

// MatchDetail pairs one matched counterpart with the overlap that produced it.
type MatchDetail struct {
	CompanyName      string   `json:"companyName"`
	ContactName      string   `json:"contactName"`
	Email            string   `json:"email"`
	Status           string   `json:"status"`
	CommonIndustries []string `json:"commonIndustries"`
	CommonServices   []string `json:"commonServices"`
}

// VendorDetail is the expanded vendor dialog payload.
type VendorDetail struct {
	Vendor        backend.Vendor      `json:"vendor"`
	Stats         matches.VendorStats `json:"stats"`
	LeadUsageRate float64             `json:"leadUsageRate"`
	Matches       []MatchDetail       `json:"matches"`
}

// BuyerDetail is the expanded buyer dialog payload.
type BuyerDetail struct {
	Buyer     backend.Buyer              `json:"buyer"`
	Partition matches.VendorRefPartition `json:"partition"`
	Matches   []MatchDetail              `json:"matches"`
}

type backendGateway interface {
	ListVendors(ctx context.Context, token string) ([]backend.VendorRecord, error)
	ListBuyers(ctx context.Context, token string) ([]backend.BuyerRecord, error)
	AddLeads(ctx context.Context, token, vendorEmail string, leads int) error
	ToggleActivation(ctx context.Context, token, email string) error
}

type service struct {
	backend backendGateway
	now     func() time.Time
}

// ServiceParams bundles the dependencies required to build an admin service.
type ServiceParams struct {
	Backend backendGateway
	Clock   func() time.Time
}

// NewService constructs an admin service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Backend == nil {
		return nil, fmt.Errorf("backend gateway is required")
	}
	clock := params.Clock
	if clock == nil {
		clock = time.Now
	}
	return &service{backend: params.Backend, now: clock}, nil
}

// fetchAll loads both collections in parallel.
func (s *service) fetchAll(ctx context.Context, token string) ([]backend.VendorRecord, []backend.BuyerRecord, error) {
	var (
		vendors []backend.VendorRecord
		buyers  []backend.BuyerRecord
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		vendors, err = s.backend.ListVendors(groupCtx, token)
		return err
	})
	group.Go(func() error {
		var err error
		buyers, err = s.backend.ListBuyers(groupCtx, token)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, nil, err
	}
	return vendors, buyers, nil
}

func (s *service) Overview(ctx context.Context, token string, filter matches.Filter) (*Overview, error) {
	vendors, buyers, err := s.fetchAll(ctx, token)
	if err != nil {
		return nil, err
	}
	return buildOverview(vendors, buyers, filter), nil
}

func buildOverview(vendors []backend.VendorRecord, buyers []backend.BuyerRecord, filter matches.Filter) *Overview {
	industries, services := collectFilterOptions(vendors, buyers)

	visibleVendors := matches.FilterVendors(vendors, filter)
	visibleBuyers := matches.FilterBuyers(buyers, filter)

	rows := make([]VendorRow, 0, len(visibleVendors))
	for _, rec := range visibleVendors {
		rows = append(rows, VendorRow{
			Vendor: rec.Vendor,
			Stats:  matches.ComputeVendorStats(rec.Vendor.MatchedBuyers),
		})
	}

	return &Overview{
		Vendors:    rows,
		Buyers:     visibleBuyers,
		Totals:     matches.ComputeTotals(vendors, buyers),
		Industries: industries,
		Services:   services,
	}
}

// collectFilterOptions gathers the distinct industries and services present
// in the live collections, first-seen order.
func collectFilterOptions(vendors []backend.VendorRecord, buyers []backend.BuyerRecord) ([]string, []string) {
	var industries, services []string
	seenIndustry := make(map[string]struct{})
	seenService := make(map[string]struct{})

	addIndustry := func(name string) {
		if _, ok := seenIndustry[name]; ok || name == "" {
			return
		}
		seenIndustry[name] = struct{}{}
		industries = append(industries, name)
	}
	addService := func(name string) {
		if _, ok := seenService[name]; ok || name == "" {
			return
		}
		seenService[name] = struct{}{}
		services = append(services, name)
	}

	for _, rec := range vendors {
		for _, name := range rec.Vendor.SelectedIndustries {
			addIndustry(name)
		}
		for _, name := range rec.Vendor.SelectedServices {
			addService(name)
		}
	}
	for _, rec := range buyers {
		for _, name := range rec.Buyer.Industries {
			addIndustry(name)
		}
		for _, sel := range rec.Buyer.Services {
			addService(sel.Service)
		}
	}
	return industries, services
}

// AddLeads credits a vendor and re-fetches both collections, returning the
// refreshed overview.
func (s *service) AddLeads(ctx context.Context, token, vendorEmail string, leads int) (*Overview, error) {
	if strings.TrimSpace(vendorEmail) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vendor email is required")
	}
	if leads <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "leads must be a positive number")
	}
	if err := s.backend.AddLeads(ctx, token, vendorEmail, leads); err != nil {
		return nil, err
	}
	return s.Overview(ctx, token, matches.Filter{})
}

// ToggleActivation flips one account and re-fetches both collections.
func (s *service) ToggleActivation(ctx context.Context, token, accountEmail string) (*Overview, error) {
	if strings.TrimSpace(accountEmail) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "account email is required")
	}
	if err := s.backend.ToggleActivation(ctx, token, accountEmail); err != nil {
		return nil, err
	}
	return s.Overview(ctx, token, matches.Filter{})
}

func (s *service) VendorDetail(ctx context.Context, token, vendorEmail string) (*VendorDetail, error) {
	vendors, buyers, err := s.fetchAll(ctx, token)
	if err != nil {
		return nil, err
	}

	var vendor *backend.Vendor
	for i := range vendors {
		if vendors[i].Vendor.Email == vendorEmail {
			vendor = &vendors[i].Vendor
			break
		}
	}
	if vendor == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "vendor not found")
	}

	buyersByEmail := make(map[string]backend.Buyer, len(buyers))
	for _, rec := range buyers {
		buyersByEmail[rec.Buyer.Email] = rec.Buyer
	}

	stats := matches.ComputeVendorStats(vendor.MatchedBuyers)
	details := make([]MatchDetail, 0, len(vendor.MatchedBuyers))
	for _, ref := range vendor.MatchedBuyers {
		detail := MatchDetail{
			Email:  ref.BuyerEmail,
			Status: matches.StatusFor(vendor.MatchedBuyers, ref.BuyerEmail).String(),
		}
		if buyer, ok := buyersByEmail[ref.BuyerEmail]; ok {
			detail.CompanyName = buyer.CompanyName
			detail.ContactName = buyer.FullName()
			detail.CommonIndustries = matches.CommonIndustries(*vendor, buyer)
			detail.CommonServices = matches.CommonServices(*vendor, buyer)
		}
		details = append(details, detail)
	}

	return &VendorDetail{
		Vendor:        *vendor,
		Stats:         stats,
		LeadUsageRate: matches.LeadUsageRate(vendor.Leads, stats.Accepted),
		Matches:       details,
	}, nil
}

func (s *service) BuyerDetail(ctx context.Context, token, buyerEmail string) (*BuyerDetail, error) {
	vendors, buyers, err := s.fetchAll(ctx, token)
	if err != nil {
		return nil, err
	}

	var record *backend.BuyerRecord
	for i := range buyers {
		if buyers[i].Buyer.Email == buyerEmail {
			record = &buyers[i]
			break
		}
	}
	if record == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "buyer not found")
	}

	vendorsByEmail := make(map[string]backend.Vendor, len(vendors))
	for _, rec := range vendors {
		vendorsByEmail[rec.Vendor.Email] = rec.Vendor
	}

	details := make([]MatchDetail, 0, len(record.MatchedVendors))
	for _, ref := range record.MatchedVendors {
		status := ref.Status
		if status == "" {
			status = enums.MatchStatusPending
		}
		detail := MatchDetail{Status: status.String()}
		if ref.Vendor != nil {
			detail.Email = ref.Vendor.Email
			detail.CompanyName = ref.Vendor.CompanyName
			detail.ContactName = ref.Vendor.FullName()
			if full, ok := vendorsByEmail[ref.Vendor.Email]; ok {
				detail.CommonIndustries = matches.CommonIndustries(full, record.Buyer)
				detail.CommonServices = matches.CommonServices(full, record.Buyer)
			} else {
				detail.CommonIndustries = matches.CommonIndustries(*ref.Vendor, record.Buyer)
				detail.CommonServices = matches.CommonServices(*ref.Vendor, record.Buyer)
			}
		}
		details = append(details, detail)
	}

	return &BuyerDetail{
		Buyer:     record.Buyer,
		Partition: matches.PartitionVendorRefs(record.MatchedVendors),
		Matches:   details,
	}, nil
}

func (s *service) ExportVendors(ctx context.Context, token string, filter matches.Filter) (*export.File, error) {
	vendors, err := s.backend.ListVendors(ctx, token)
	if err != nil {
		return nil, err
	}
	return export.VendorsCSV(matches.FilterVendors(vendors, filter), s.now())
}

func (s *service) ExportBuyers(ctx context.Context, token string, filter matches.Filter) (*export.File, error) {
	buyers, err := s.backend.ListBuyers(ctx, token)
	if err != nil {
		return nil, err
	}
	return export.BuyersCSV(matches.FilterBuyers(buyers, filter), s.now())
}
