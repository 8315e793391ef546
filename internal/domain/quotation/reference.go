package quotation

import (
	"fmt"
	"math/rand"
	"regexp"
	"time"
)

var referencePattern = regexp.MustCompile(`^COT-\d{4}-\d{4}$`)

// NewReference returns a human-readable code of the form COT-<year>-<nnnn>.
// Codes are assigned once per saved quotation; uniqueness is best-effort,
// which matches how the documents are used (a visual tag, not a key).
func NewReference(now time.Time) string {
	return fmt.Sprintf("COT-%d-%04d", now.Year(), rand.Intn(10000))
}

// ValidReference reports whether s has the COT-YYYY-NNNN shape.
func ValidReference(s string) bool {
	return referencePattern.MatchString(s)
}
