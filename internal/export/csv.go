package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/reachly-hq/reachly-portal/internal/matches"
	"github.com/reachly-hq/reachly-portal/pkg/backend"
	pkgerrors "github.com/reachly-hq/reachly-portal/pkg/errors"
)

// ContentType is the MIME type served with every export.
const ContentType = "text/csv; charset=utf-8"

// File is a rendered CSV document ready to download.
type File struct {
	Name    string
	Content string
}

var vendorHeaders = []string{
	"Company Name", "Contact Person", "Email", "Created Date",
	"Available Leads", "Matched Buyers", "Industries", "Services",
}

var buyerHeaders = []string{
	"Company Name", "Contact Person", "Email", "Created Date",
	"Company Size", "Industries", "Services", "Matched Vendors",
}

var matchHeaders = []string{
	"Company Name", "Contact Person", "Email", "Company Size",
	"Industries", "Services", "Status", "Match Date", "Match Reasons",
}

// VendorsCSV renders the admin vendor export.
func VendorsCSV(records []backend.VendorRecord, now time.Time) (*File, error) {
	if len(records) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "no data to export")
	}
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		v := rec.Vendor
		rows = append(rows, []string{
			v.CompanyName,
			v.FullName(),
			v.Email,
			formatDate(v.CreatedAt),
			strconv.Itoa(v.Leads),
			strconv.Itoa(len(v.MatchedBuyers)),
			strings.Join(v.SelectedIndustries, ", "),
			strings.Join(v.SelectedServices, ", "),
		})
	}
	return &File{
		Name:    fmt.Sprintf("vendor_data_%s.csv", fileDate(now)),
		Content: render(vendorHeaders, rows),
	}, nil
}

// BuyersCSV renders the admin buyer export.
func BuyersCSV(records []backend.BuyerRecord, now time.Time) (*File, error) {
	if len(records) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "no data to export")
	}
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		b := rec.Buyer
		rows = append(rows, []string{
			b.CompanyName,
			b.FullName(),
			b.Email,
			formatDate(b.CreatedAt),
			b.CompanySize,
			strings.Join(b.Industries, ", "),
			strings.Join(b.ServiceNames(), ", "),
			strconv.Itoa(len(rec.MatchedVendors)),
		})
	}
	return &File{
		Name:    fmt.Sprintf("buyer_data_%s.csv", fileDate(now)),
		Content: render(buyerHeaders, rows),
	}, nil
}

// MatchesCSV renders the vendor's per-tab match export.
func MatchesCSV(list []backend.MatchedBuyer, tab matches.Tab, now time.Time) (*File, error) {
	if len(list) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "no data to export")
	}
	rows := make([][]string, 0, len(list))
	for _, m := range list {
		b := m.Buyer
		rows = append(rows, []string{
			b.CompanyName,
			b.FullName(),
			b.Email,
			b.CompanySize,
			strings.Join(b.Industries, ", "),
			strings.Join(b.ServiceNames(), ", "),
			tab.Label(),
			formatDate(b.CreatedAt),
			strings.Join(m.MatchReasons, "; "),
		})
	}
	return &File{
		Name:    fmt.Sprintf("matched_buyers_%s_%s.csv", tab, fileDate(now)),
		Content: render(matchHeaders, rows),
	}, nil
}

// render joins the header and rows with every value wrapped in double quotes
// verbatim. Values never contain quotes in this domain, so no escaping is
// applied and the output stays byte-compatible with existing consumers.
func render(headers []string, rows [][]string) string {
	var sb strings.Builder
	sb.WriteString(strings.Join(headers, ","))
	for _, row := range rows {
		sb.WriteByte('\n')
		for i, value := range row {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteByte('"')
			sb.WriteString(value)
			sb.WriteByte('"')
		}
	}
	return sb.String()
}

// formatDate renders M/D/YYYY, matching the display locale of the dashboards.
func formatDate(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
}

// fileDate is the filename-safe form of formatDate.
func fileDate(t time.Time) string {
	return fmt.Sprintf("%d-%d-%d", int(t.Month()), t.Day(), t.Year())
}
