package validators

import (
	"strings"

	"github.com/reachly-hq/reachly-portal/pkg/backend"
	pkgerrors "github.com/reachly-hq/reachly-portal/pkg/errors"
)

// Browser-facing messages, kept verbatim so the UI copy never drifts.
const (
	MsgFillAllFields  = "Please fill in all fields"
	MsgAgreeToTerms   = "Please agree to the terms and conditions"
	MsgInvalidEmail   = "Please enter a valid email address."
	MsgInvalidPhone   = "Please enter a valid phone number."
	MsgInvalidWebsite = "Please enter a valid website URL."
)

// CheckVendorForm enforces the registration-form rules in their original
// order: completeness, terms, then field formats. The company website is
// optional.
func CheckVendorForm(form backend.VendorForm) error {
	required := []string{
		form.CompanyName,
		form.FirstName,
		form.LastName,
		form.Email,
		form.Phone,
		form.MinimumBudget,
	}
	for _, value := range required {
		if strings.TrimSpace(value) == "" {
			return pkgerrors.New(pkgerrors.CodeValidation, MsgFillAllFields)
		}
	}
	if len(form.SelectedIndustries) == 0 || len(form.SelectedServices) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, MsgFillAllFields)
	}
	if !form.AgreeToTerms {
		return pkgerrors.New(pkgerrors.CodeValidation, MsgAgreeToTerms)
	}
	if !emailPattern.MatchString(form.Email) {
		return pkgerrors.New(pkgerrors.CodeValidation, MsgInvalidEmail)
	}
	if !phonePattern.MatchString(form.Phone) {
		return pkgerrors.New(pkgerrors.CodeValidation, MsgInvalidPhone)
	}
	if form.CompanyWebsite != "" && !websitePattern.MatchString(form.CompanyWebsite) {
		return pkgerrors.New(pkgerrors.CodeValidation, MsgInvalidWebsite)
	}
	return nil
}
