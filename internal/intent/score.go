package intent

// Score weights.
const (
	QuantityWeight     = 25
	PlatformWeight     = 25
	ServiceTypeWeight  = 25
	TargetWeight       = 18
	CompletenessBonus  = 7
	MaxMatchPercentage = 100
)

// Score turns the set of extracted fields into a 0-100 confidence value.
// The completeness bonus applies when quantity, platform and service type
// are all present.
func Score(hasQuantity, hasPlatform, hasServiceType, hasTarget bool) int {
	score := 0
	if hasQuantity {
		score += QuantityWeight
	}
	if hasPlatform {
		score += PlatformWeight
	}
	if hasServiceType {
		score += ServiceTypeWeight
	}
	if hasTarget {
		score += TargetWeight
	}
	if hasQuantity && hasPlatform && hasServiceType {
		score += CompletenessBonus
	}
	return min(score, MaxMatchPercentage)
}
