package catalog

// Canonical marketplace taxonomies. The registration form enforces
// membership, and the admin filter dropdowns are seeded from live data, so
// any drift here surfaces as an empty filter rather than an error.

var industries = []string{
	"Information Technology (IT)",
	"Financial Services",
	"Healthcare",
	"Education (EdTech)",
	"Retail & E-commerce",
	"Marketing & Advertising",
	"Human Resources (HRTech)",
	"Manufacturing & Supply Chain",
	"Real Estate",
	"Professional Services",
}

var services = []string{
	"Customer Relationship Management Solutions",
	"Marketing Automation Platforms",
	"Sales Enablement Tools",
	"Financial Planning and Analysis Services",
	"Accounting and Bookkeeping Services",
	"Payroll Processing Services",
	"Recruitment and Talent Acquisition Services",
	"Project Management Tools",
	"Supply Chain Management Solutions",
	"Logistics and Transportation Services",
	"E-commerce Platforms",
	"Business Intelligence and Analytics Tools",
	"Enterprise Resource Planning (ERP) Systems",
	"Open-Source Intelligence (OSINT) Services",
	"Physical Security and Surveillance Systems",
	"Access Control Solutions",
	"Cybersecurity Services",
	"Cloud Computing Services",
	"Payment Processing Solutions",
	"Manufacturing Automation Solutions",
}

// Industries returns a copy of the industry taxonomy.
func Industries() []string {
	out := make([]string, len(industries))
	copy(out, industries)
	return out
}

// Services returns a copy of the service taxonomy.
func Services() []string {
	out := make([]string, len(services))
	copy(out, services)
	return out
}

// IsIndustry reports whether the name is a catalog industry.
func IsIndustry(name string) bool {
	return contains(industries, name)
}

// IsService reports whether the name is a catalog service.
func IsService(name string) bool {
	return contains(services, name)
}

func contains(list []string, name string) bool {
	for _, s := range list {
		if s == name {
			return true
		}
	}
	return false
}
