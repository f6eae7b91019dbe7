// Package match implements the name matching used to link extracted entities
// to suppliers and to filter suppliers in queries. Matching is deliberately
// simple and deterministic: casefold both sides, then substring containment.
package match

import (
	"strings"

	"github.com/chainsight/riskgraph/backend/pkg/common"
)

// Normalize lowercases a name and collapses internal whitespace so matching
// is insensitive to case and spacing variance.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Contains reports whether needle occurs in hay after normalization.
// An empty needle never matches.
func Contains(hay, needle string) bool {
	needle = Normalize(needle)
	if needle == "" {
		return false
	}
	return strings.Contains(Normalize(hay), needle)
}

// SupplierMatches reports whether an extracted entity name refers to the
// supplier: the supplier's name or any of its aliases must contain the
// entity string.
func SupplierMatches(s common.SupplierRef, entity string) bool {
	if Contains(s.Name, entity) {
		return true
	}
	for _, alias := range s.Aliases {
		if Contains(alias, entity) {
			return true
		}
	}
	return false
}

// LinkEntities returns the ids of all suppliers matched by any of the
// extracted entity names. One entity may match multiple suppliers and one
// supplier may match multiple entities; each supplier id appears once.
func LinkEntities(suppliers []common.SupplierRef, entities []string) []string {
	seen := make(map[string]struct{})
	ids := make([]string, 0)

	for _, s := range suppliers {
		for _, ent := range entities {
			if !SupplierMatches(s, ent) {
				continue
			}
			if _, ok := seen[s.ID]; !ok {
				seen[s.ID] = struct{}{}
				ids = append(ids, s.ID)
			}
			break
		}
	}

	return ids
}
