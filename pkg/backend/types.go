package backend

import (
	"time"

	"github.com/reachly-hq/reachly-portal/pkg/enums"
)

// ServiceSelection is a buyer's service interest with its active flag.
type ServiceSelection struct {
	Service string `json:"service"`
	Active  bool   `json:"active"`
}

// MatchRef is the vendor-side record of a decision on a matched buyer.
// An empty status means the vendor has not decided yet.
type MatchRef struct {
	BuyerEmail string            `json:"buyerEmail"`
	Status     enums.MatchStatus `json:"status,omitempty"`
}

// Vendor mirrors the backend vendor document.
type Vendor struct {
	FirstName          string     `json:"firstName"`
	LastName           string     `json:"lastName"`
	Email              string     `json:"email"`
	CompanyName        string     `json:"companyName"`
	Phone              string     `json:"phone"`
	CompanyWebsite     string     `json:"companyWebsite,omitempty"`
	MinimumBudget      string     `json:"minimumBudget"`
	AdditionalInfo     string     `json:"additionalInfo,omitempty"`
	SelectedIndustries []string   `json:"selectedIndustries"`
	SelectedServices   []string   `json:"selectedServices"`
	Leads              int        `json:"leads"`
	Active             bool       `json:"active"`
	CreatedAt          time.Time  `json:"createdAt"`
	MatchedBuyers      []MatchRef `json:"matchedBuyers,omitempty"`
}

// FullName joins first and last name the way the dashboards display it.
func (v Vendor) FullName() string {
	return v.FirstName + " " + v.LastName
}

// Buyer mirrors the backend buyer document.
type Buyer struct {
	FirstName      string             `json:"firstName"`
	LastName       string             `json:"lastName"`
	Email          string             `json:"email"`
	CompanyName    string             `json:"companyName"`
	CompanyWebsite string             `json:"companyWebsite,omitempty"`
	CompanySize    string             `json:"companySize"`
	Industries     []string           `json:"industries"`
	Services       []ServiceSelection `json:"services"`
	Active         bool               `json:"active"`
	CreatedAt      time.Time          `json:"createdAt"`
}

// FullName joins first and last name the way the dashboards display it.
func (b Buyer) FullName() string {
	return b.FirstName + " " + b.LastName
}

// ServiceNames lists the buyer's service names regardless of the active flag.
func (b Buyer) ServiceNames() []string {
	names := make([]string, 0, len(b.Services))
	for _, s := range b.Services {
		names = append(names, s.Service)
	}
	return names
}

// VendorRecord is one element of the admin vendor collection.
type VendorRecord struct {
	Vendor Vendor `json:"vendor"`
}

// VendorMatchRef is the buyer-side view of a match with the vendor profile attached.
type VendorMatchRef struct {
	Status enums.MatchStatus `json:"status,omitempty"`
	Vendor *Vendor           `json:"vendor,omitempty"`
}

// BuyerRecord is one element of the admin buyer collection.
type BuyerRecord struct {
	Buyer          Buyer            `json:"buyer"`
	MatchedVendors []VendorMatchRef `json:"matchedVendors,omitempty"`
}

// MatchedBuyer is one match row on the vendor dashboard.
type MatchedBuyer struct {
	Buyer        Buyer    `json:"buyer"`
	MatchReasons []string `json:"matchReasons"`
}

// VendorMatches is the vendor dashboard payload.
type VendorMatches struct {
	Vendor        Vendor         `json:"vendor"`
	MatchedBuyers []MatchedBuyer `json:"matchedBuyers"`
}

// VendorForm is the registration/update payload for vendors.
type VendorForm struct {
	CompanyName        string   `json:"companyName"`
	FirstName          string   `json:"firstName"`
	LastName           string   `json:"lastName"`
	Email              string   `json:"email"`
	Phone              string   `json:"phone"`
	CompanyWebsite     string   `json:"companyWebsite,omitempty"`
	MinimumBudget      string   `json:"minimumBudget"`
	SelectedIndustries []string `json:"selectedIndustries"`
	SelectedServices   []string `json:"selectedServices"`
	AdditionalInfo     string   `json:"additionalInfo,omitempty"`
	AgreeToTerms       bool     `json:"agreeToTerms"`
}

// LoginResult is the payload returned by the backend on a successful login.
type LoginResult struct {
	Token string            `json:"token"`
	Role  enums.AccountRole `json:"role"`
	Email string            `json:"email"`
}
