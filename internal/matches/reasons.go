package matches

import "strings"

// ReasonKind classifies a match reason.
type ReasonKind string

const (
	ReasonIndustry ReasonKind = "industry"
	ReasonService  ReasonKind = "service"
	ReasonOther    ReasonKind = "other"
)

// Reason is the structured form of one backend match reason.
type Reason struct {
	Kind   ReasonKind `json:"kind"`
	Values []string   `json:"values"`
}

// ParseReason decodes the backend's wire format, e.g.
// "industryMatch: Healthcare, Education (EdTech)". Unknown prefixes come
// back as ReasonOther with the raw text as the single value.
func ParseReason(raw string) Reason {
	kind := ReasonOther
	body := raw
	switch {
	case strings.HasPrefix(raw, "industryMatch:"):
		kind = ReasonIndustry
		body = strings.TrimPrefix(raw, "industryMatch:")
	case strings.HasPrefix(raw, "serviceMatch:"):
		kind = ReasonService
		body = strings.TrimPrefix(raw, "serviceMatch:")
	}

	if kind == ReasonOther {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			return Reason{Kind: ReasonOther}
		}
		return Reason{Kind: ReasonOther, Values: []string{trimmed}}
	}

	values := make([]string, 0, 4)
	for _, part := range strings.Split(body, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return Reason{Kind: kind, Values: values}
}

// ParseReasons decodes every reason, preserving order.
func ParseReasons(raws []string) []Reason {
	out := make([]Reason, 0, len(raws))
	for _, raw := range raws {
		out = append(out, ParseReason(raw))
	}
	return out
}
