package validators

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/reachly-hq/reachly-portal/internal/matches"
	"github.com/reachly-hq/reachly-portal/pkg/backend"
	pkgerrors "github.com/reachly-hq/reachly-portal/pkg/errors"
)

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	type loginBody struct {
		Email    string `json:"email" validate:"required,portal_email"`
		Password string `json:"password" validate:"required"`
	}

	r := httptest.NewRequest("POST", "/login", strings.NewReader(`{"email":"a@b.com","password":"p","extra":1}`))
	var body loginBody
	err := DecodeJSONBody(r, &body)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("unknown fields should fail validation, got %v", err)
	}
}

func TestDecodeJSONBodyAppliesCustomTags(t *testing.T) {
	type contactBody struct {
		Phone   string `json:"phone" validate:"required,phone"`
		Website string `json:"website" validate:"omitempty,website"`
	}

	r := httptest.NewRequest("POST", "/x", strings.NewReader(`{"phone":"555-1234"}`))
	var body contactBody
	err := DecodeJSONBody(r, &body)
	typed := pkgerrors.As(err)
	if typed == nil {
		t.Fatalf("dashes in a phone number should fail, got %v", err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok || details["phone"] == "" {
		t.Fatalf("expected a per-field message, got %v", typed.Details())
	}

	r = httptest.NewRequest("POST", "/x", strings.NewReader(`{"phone":"5551234","website":"https://acme.dev"}`))
	if err := DecodeJSONBody(r, &body); err != nil {
		t.Fatalf("valid body should pass: %v", err)
	}
}

func validForm() backend.VendorForm {
	return backend.VendorForm{
		CompanyName:        "Acme",
		FirstName:          "Ana",
		LastName:           "Reyes",
		Email:              "ana@acme.com",
		Phone:              "5551234",
		MinimumBudget:      "5000",
		SelectedIndustries: []string{"Healthcare"},
		SelectedServices:   []string{"Cybersecurity Services"},
		AgreeToTerms:       true,
	}
}

func TestCheckVendorFormMessages(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*backend.VendorForm)
		message string
	}{
		{"missing company", func(f *backend.VendorForm) { f.CompanyName = "" }, MsgFillAllFields},
		{"no industries", func(f *backend.VendorForm) { f.SelectedIndustries = nil }, MsgFillAllFields},
		{"terms unchecked", func(f *backend.VendorForm) { f.AgreeToTerms = false }, MsgAgreeToTerms},
		{"bad email", func(f *backend.VendorForm) { f.Email = "not-an-email" }, MsgInvalidEmail},
		{"bad phone", func(f *backend.VendorForm) { f.Phone = "555-1234" }, MsgInvalidPhone},
		{"bad website", func(f *backend.VendorForm) { f.CompanyWebsite = "not a url" }, MsgInvalidWebsite},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := validForm()
			tc.mutate(&form)
			err := CheckVendorForm(form)
			typed := pkgerrors.As(err)
			if typed == nil || typed.Message() != tc.message {
				t.Fatalf("expected %q, got %v", tc.message, err)
			}
		})
	}

	if err := CheckVendorForm(validForm()); err != nil {
		t.Fatalf("valid form should pass: %v", err)
	}

	form := validForm()
	form.CompanyWebsite = "acme.dev"
	if err := CheckVendorForm(form); err != nil {
		t.Fatalf("scheme-less website should pass: %v", err)
	}
}

func TestParseFilter(t *testing.T) {
	r := httptest.NewRequest("GET", "/x?search=acme&month=2&industry=Healthcare&service=Web%20Development", nil)
	filter, err := ParseFilter(r)
	if err != nil {
		t.Fatalf("parse filter: %v", err)
	}
	if filter.Search != "acme" || filter.Industry != "Healthcare" || filter.Service != "Web Development" {
		t.Fatalf("unexpected filter %+v", filter)
	}
	if filter.Month == nil || *filter.Month != 2 {
		t.Fatalf("month should parse zero-based, got %v", filter.Month)
	}

	r = httptest.NewRequest("GET", "/x", nil)
	filter, err = ParseFilter(r)
	if err != nil {
		t.Fatalf("parse empty filter: %v", err)
	}
	if !filter.IsZero() {
		t.Fatalf("empty query should yield a zero filter, got %+v", filter)
	}

	r = httptest.NewRequest("GET", "/x?month=12", nil)
	if _, err := ParseFilter(r); err == nil {
		t.Fatal("month 12 is out of range for a zero-based month")
	}
}

func TestParseTab(t *testing.T) {
	r := httptest.NewRequest("GET", "/x", nil)
	tab, err := ParseTab(r)
	if err != nil || tab != matches.TabNew {
		t.Fatalf("default tab should be new, got %v %v", tab, err)
	}

	r = httptest.NewRequest("GET", "/x?tab=rejected", nil)
	tab, err = ParseTab(r)
	if err != nil || tab != matches.TabRejected {
		t.Fatalf("unexpected tab %v %v", tab, err)
	}

	r = httptest.NewRequest("GET", "/x?tab=archived", nil)
	if _, err := ParseTab(r); err == nil {
		t.Fatal("unknown tab must fail")
	}
}
