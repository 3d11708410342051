package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-offline-store/models"
)

// QueryFingerprint identifies the result set of a query for delta tracking.
// It is the hex-encoded SHA-256 of the canonical JSON of the query's filter.
// Sort, skip and limit do not take part: they change the order or the window
// of the result, not which entities belong to it.
//
// A nil query and a query without conditions share one fingerprint.
//
// Example usage:
//
//	fp, err := utils.QueryFingerprint(models.NewQuery().Where("done", models.OpEqual, false))
func QueryFingerprint(query *models.Query) (string, error) {
	filter := []models.Condition{}
	if query != nil && len(query.Filter) > 0 {
		filter = query.Filter
	}

	// encoding/json sorts map keys, so nested values encode the same way
	// every time.
	canonical, err := json.Marshal(filter)
	if err != nil {
		return "", fmt.Errorf("error encoding query filter: %w", err)
	}

	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}
