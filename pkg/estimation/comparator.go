package estimation

// ComparisonResult is the engine output: the standard route cost, and the
// alternate only when it is strictly cheaper overall.
type ComparisonResult struct {
	Standard RouteCost
	// Alternate is nil when no alternate route was supplied or the alternate
	// is not strictly cheaper than the standard.
	Alternate *RouteCost
	// Savings = standard total - alternate total, > 0 whenever Alternate is set.
	Savings float64
	// ExtraTimeMin = alternate duration - standard duration; may be negative.
	ExtraTimeMin float64
}

// Compare folds the two aggregated costs into the recommendation. An
// alternate that exists but costs the same or more (a toll-free detour whose
// extra fuel eats the toll savings) is not worth surfacing, so the standard
// only result is returned. Strict inequality: ties stay unsurfaced.
func Compare(standard RouteCost, alternate *RouteCost) ComparisonResult {
	result := ComparisonResult{Standard: standard}
	if alternate == nil {
		return result
	}
	if alternate.TotalCost >= standard.TotalCost {
		return result
	}
	result.Alternate = alternate
	result.Savings = standard.TotalCost - alternate.TotalCost
	result.ExtraTimeMin = alternate.Route.DurationMin() - standard.Route.DurationMin()
	return result
}
