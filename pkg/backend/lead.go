package backend

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/reachly-hq/reachly-portal/pkg/enums"
	pkgerrors "github.com/reachly-hq/reachly-portal/pkg/errors"
)

// ListVendors fetches the full vendor collection with match records.
func (c *Client) ListVendors(ctx context.Context, token string) ([]VendorRecord, error) {
	var resp struct {
		Vendors []VendorRecord `json:"vendors"`
	}
	if err := c.do(ctx, http.MethodGet, "/lead/getAllVendors", token, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Vendors, nil
}

// ListBuyers fetches the full buyer collection with match records.
func (c *Client) ListBuyers(ctx context.Context, token string) ([]BuyerRecord, error) {
	var resp struct {
		Buyers []BuyerRecord `json:"buyers"`
	}
	if err := c.do(ctx, http.MethodGet, "/lead/getAllBuyers", token, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Buyers, nil
}

// AddLeads credits additional leads to a vendor account.
func (c *Client) AddLeads(ctx context.Context, token, vendorEmail string, leads int) error {
	if strings.TrimSpace(vendorEmail) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "vendor email is required")
	}
	if leads <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "leads must be a positive number")
	}
	body := map[string]int{"leads": leads}
	return c.do(ctx, http.MethodPost, "/lead/addLeads/"+url.PathEscape(vendorEmail), token, body, nil)
}

// GetVendorMatches fetches the vendor profile with its matched buyers and reasons.
func (c *Client) GetVendorMatches(ctx context.Context, token, vendorEmail string) (*VendorMatches, error) {
	if strings.TrimSpace(vendorEmail) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vendor email is required")
	}
	var resp VendorMatches
	if err := c.do(ctx, http.MethodGet, "/lead/vendor/"+url.PathEscape(vendorEmail)+"/matches", token, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateMatchStatus records the vendor's decision on a matched buyer.
func (c *Client) UpdateMatchStatus(ctx context.Context, token, vendorEmail, buyerEmail string, status enums.MatchStatus) error {
	if strings.TrimSpace(vendorEmail) == "" || strings.TrimSpace(buyerEmail) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "vendor and buyer emails are required")
	}
	if !status.IsDecision() {
		return pkgerrors.New(pkgerrors.CodeValidation, "status must be accepted or rejected")
	}
	body := map[string]string{"status": status.String()}
	path := "/lead/vendor/" + url.PathEscape(vendorEmail) + "/match/" + url.PathEscape(buyerEmail)
	return c.do(ctx, http.MethodPut, path, token, body, nil)
}

// GetVendor fetches a single vendor profile for form prefill.
func (c *Client) GetVendor(ctx context.Context, token, vendorEmail string) (*Vendor, error) {
	if strings.TrimSpace(vendorEmail) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vendor email is required")
	}
	var resp Vendor
	if err := c.do(ctx, http.MethodGet, "/lead/vendor/"+url.PathEscape(vendorEmail), token, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateVendor submits a new vendor registration.
func (c *Client) CreateVendor(ctx context.Context, form VendorForm) error {
	return c.do(ctx, http.MethodPost, "/lead/vendor", "", form, nil)
}

// UpdateVendor submits changes to an existing vendor registration.
func (c *Client) UpdateVendor(ctx context.Context, token, vendorEmail string, form VendorForm) error {
	if strings.TrimSpace(vendorEmail) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "vendor email is required")
	}
	return c.do(ctx, http.MethodPut, "/lead/updateVendor/"+url.PathEscape(vendorEmail), token, form, nil)
}
