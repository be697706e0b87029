package booking

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"
)

const trackingPrefix = "PRCL"

// GenerateTrackingID produces a human-readable identifier of the form
// PRCL-YYYYMMDD-XXXXXX: UTC date plus 6 uppercase hex characters from a
// cryptographically strong source. The generator performs no uniqueness
// check; the unique transaction index on the payments collection is the
// backstop.
func GenerateTrackingID() (string, error) {
	date := time.Now().UTC().Format("20060102")

	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate tracking suffix: %w", err)
	}
	suffix := strings.ToUpper(fmt.Sprintf("%02x%02x%02x", buf[0], buf[1], buf[2]))

	return fmt.Sprintf("%s-%s-%s", trackingPrefix, date, suffix), nil
}
