package pricing

import (
	"strings"

	"inspection_billing/internal/domain/entities"
)

// DiffFees compares two pricing item lists by fee identity (type, service and
// name) and returns the display names of the fees added and removed. Duplicate
// fees are counted, so adding a second copy of an existing fee reports it as added.
func DiffFees(before, after []entities.PricingItem) (added, removed []string) {
	remaining := make(map[string]int, len(before))
	for _, it := range before {
		remaining[feeKey(it)]++
	}
	for _, it := range after {
		k := feeKey(it)
		if remaining[k] > 0 {
			remaining[k]--
			continue
		}
		added = append(added, it.Name)
	}

	seen := make(map[string]int, len(after))
	for _, it := range after {
		seen[feeKey(it)]++
	}
	for _, it := range before {
		k := feeKey(it)
		if seen[k] > 0 {
			seen[k]--
			continue
		}
		removed = append(removed, it.Name)
	}
	return added, removed
}

func feeKey(it entities.PricingItem) string {
	name := it.Name
	if it.Type == entities.PricingItemAddon && it.AddonName != "" {
		name = it.AddonName
	}
	return string(it.Type) + "|" + strings.TrimSpace(it.ServiceID) + "|" + strings.ToLower(strings.TrimSpace(name))
}
