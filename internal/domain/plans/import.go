package plans

import "strings"

// ImportResolver picks the plan to attach to a migrated client that arrives
// with an expiration date but no reliable plan reference.
// It returns nil when no plan can be chosen.
type ImportResolver func(candidates []Plan, hint string) *Plan

// ByNameThenKeyword builds the default import strategy.
// Priority:
// 1. Exact case-insensitive name match of hint
// 2. A plan whose name contains keyword (e.g. the monthly plan)
// 3. Any plan (lowest id) as a last resort
func ByNameThenKeyword(keyword string) ImportResolver {
	keyword = normalizeName(keyword)

	return func(candidates []Plan, hint string) *Plan {
		if len(candidates) == 0 {
			return nil
		}

		if h := normalizeName(hint); h != "" {
			if p := firstMatch(candidates, func(p Plan) bool { return normalizeName(p.Name) == h }); p != nil {
				return p
			}
		}

		if keyword != "" {
			if p := firstMatch(candidates, func(p Plan) bool { return strings.Contains(normalizeName(p.Name), keyword) }); p != nil {
				return p
			}
		}

		return firstMatch(candidates, func(Plan) bool { return true })
	}
}

// firstMatch returns the lowest-id plan satisfying ok, independent of input order.
func firstMatch(candidates []Plan, ok func(Plan) bool) *Plan {
	var best *Plan
	for i := range candidates {
		p := &candidates[i]
		if !ok(*p) {
			continue
		}
		if best == nil || p.ID < best.ID {
			best = p
		}
	}
	return best
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
