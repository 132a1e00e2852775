package catalog

import (
	"encoding/json"
	"strconv"
)

// EllipsisMark is rendered in place of skipped page numbers.
const EllipsisMark = "…"

const maxVisiblePages = 5

// Indicator is one entry of the page strip: either a page number or a gap.
type Indicator struct {
	Page     int
	Ellipsis bool
}

// PageNumber returns an indicator for page n.
func PageNumber(n int) Indicator { return Indicator{Page: n} }

// Gap returns an ellipsis indicator.
func Gap() Indicator { return Indicator{Ellipsis: true} }

func (i Indicator) String() string {
	if i.Ellipsis {
		return EllipsisMark
	}
	return strconv.Itoa(i.Page)
}

// MarshalJSON renders pages as numbers and gaps as the ellipsis string.
func (i Indicator) MarshalJSON() ([]byte, error) {
	if i.Ellipsis {
		return json.Marshal(EllipsisMark)
	}
	return json.Marshal(i.Page)
}

// PageIndicators computes the page strip for a listing. It returns nil when
// there is at most one page, every page when there are few, and otherwise the
// first page, the neighbours of current and the last page with gaps between.
func PageIndicators(current, totalPages int) []Indicator {
	if totalPages <= 1 {
		return nil
	}

	out := make([]Indicator, 0, maxVisiblePages+2)
	if totalPages <= maxVisiblePages {
		for p := 1; p <= totalPages; p++ {
			out = append(out, PageNumber(p))
		}
		return out
	}

	out = append(out, PageNumber(1))
	if current > 3 {
		out = append(out, Gap())
	}

	start := max(2, current-1)
	end := min(totalPages-1, current+1)
	for p := start; p <= end; p++ {
		out = append(out, PageNumber(p))
	}

	if current < totalPages-2 {
		out = append(out, Gap())
	}
	return append(out, PageNumber(totalPages))
}
