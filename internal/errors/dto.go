package errors

import (
	"encoding/json"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrorResponse is the JSON envelope every failed request returns.
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

// ErrorDetail carries the user-facing message plus any structured details
// attached with WithReportableDetails.
type ErrorDetail struct {
	Display string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// NewErrorResponse builds the envelope for err. The display message is the
// innermost non-empty hint on the chain; details are recovered from the
// tagged safe-detail payloads.
func NewErrorResponse(err error) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Error: ErrorDetail{
			Display: displayMessage(err),
			Details: safeDetails(err),
		},
	}
}

func displayMessage(err error) string {
	// GetAllHints traverses post-order, so the deepest hint comes first.
	for _, hint := range errors.GetAllHints(err) {
		if hint = strings.TrimSpace(hint); hint != "" {
			return hint
		}
	}
	return "An unexpected error occurred"
}

func safeDetails(err error) map[string]any {
	details := make(map[string]any)
	for _, sdp := range errors.GetAllSafeDetails(err) {
		for _, payload := range sdp.SafeDetails {
			if !strings.HasPrefix(payload, jsonDetailPrefix) {
				continue
			}
			var decoded map[string]any
			if uerr := json.Unmarshal([]byte(payload[len(jsonDetailPrefix):]), &decoded); uerr == nil {
				for k, v := range decoded {
					details[k] = v
				}
			}
		}
	}
	return details
}
