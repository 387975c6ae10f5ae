package cache

import (
	"bonus-route-planner/internal/domain"
	"bonus-route-planner/internal/ports"
	"errors"
	"strings"
)

// uniqueOrigins trims origins and drops blanks and repeats, keeping order.
func uniqueOrigins(origins []domain.Location) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(origins))
	for _, o := range origins {
		s := strings.TrimSpace(string(o))
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func checkFingerprint(fingerprint string) error {
	if strings.TrimSpace(fingerprint) == "" {
		return errors.New("fingerprint must not be empty")
	}
	return nil
}

func addEntry(out map[domain.Location]ports.DistanceRow, origin, dest string, t float64) {
	row, ok := out[domain.Location(origin)]
	if !ok {
		row = ports.DistanceRow{}
		out[domain.Location(origin)] = row
	}
	row[domain.Location(dest)] = t
}
