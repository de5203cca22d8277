package warp

// Aliases exposing internal helpers to the external test package.
var (
	ClosestOnSegment = closestOnSegment
	ClosestOnPath    = closestOnPath
	ValidatePins     = validatePins
)
