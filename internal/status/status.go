// Package status maps lifecycle status codes to the display vocabulary the
// SPA renders (badge colors and human labels).
package status

// Color names understood by the frontend badge component.
const (
	ColorWarning = "warning"
	ColorSuccess = "success"
	ColorError   = "error"
	ColorPrimary = "primary"
)

var colors = map[string]string{
	"pending":     ColorWarning,
	"reviewing":   ColorWarning,
	"negotiating": ColorWarning,
	"accepted":    ColorSuccess,
	"rejected":    ColorError,
	"completed":   ColorSuccess,
	"paid":        ColorSuccess,
	"unpaid":      ColorError,
	"processing":  ColorWarning,
	"active":      ColorSuccess,
	"inactive":    ColorError,
	"open":        ColorError,
}

var labels = map[string]string{
	"pending":     "Pending Review",
	"reviewing":   "Reviewing",
	"negotiating": "Under Negotiation",
	"accepted":    "Accepted",
	"rejected":    "Rejected",
	"completed":   "Completed",
	"paid":        "Paid",
	"unpaid":      "Unpaid",
	"processing":  "Processing",
}

// Color returns the badge color for a status. Unrecognized statuses fall back
// to primary rather than failing, so new statuses never break rendering.
func Color(status string) string {
	if c, ok := colors[status]; ok {
		return c
	}
	return ColorPrimary
}

// Label returns the display label for a status, or the raw status string when
// no label is registered.
func Label(status string) string {
	if l, ok := labels[status]; ok {
		return l
	}
	return status
}
