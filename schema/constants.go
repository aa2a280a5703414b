package schema

// Custom string types for type safety.
type (
	// Tack represents which side the wind strikes the boat from.
	Tack string

	// SegmentKind represents the type of a track segment.
	SegmentKind string

	// EstimationMethod represents how a wind direction was derived.
	EstimationMethod string

	// PointOfSail represents the sailing angle category relative to true wind.
	PointOfSail string

	// DetectorStrategy represents which turn detection scan to run.
	DetectorStrategy string

	// WindConvention represents how wind direction is derived from the tacking axis.
	WindConvention string

	// OutputMode represents the format of the output.
	OutputMode string
)

// All tack labels supported.
const (
	PortTack      Tack = "port"
	StarboardTack Tack = "starboard"
	UnknownTack   Tack = "unknown"
	MixedTack     Tack = "mixed" // Segment-level only: equal port/starboard counts
)

// All segment kinds supported.
const (
	StraightSegment SegmentKind = "straight"
	TurnSegment     SegmentKind = "turn"
)

// All wind estimation methods supported.
const (
	TackingPatternMethod EstimationMethod = "tacking_pattern"
	DominantCourseMethod EstimationMethod = "dominant_course"
	FallbackMedianMethod EstimationMethod = "fallback_median"
	ForcedMethod         EstimationMethod = "forced"
)

// All points of sail, plus the special label applied to turn segments.
const (
	CloseHauled PointOfSail = "Close Hauled"
	CloseReach  PointOfSail = "Close Reach"
	BeamReach   PointOfSail = "Beam Reach"
	BroadReach  PointOfSail = "Broad Reach"
	Run         PointOfSail = "Run"
	Turning     PointOfSail = "Turning"
)

// All turn detector strategies supported.
//
// The two scans share the same contract (a turn is a large, sustained,
// time-bounded, then-stabilizing course change) but differ in entry
// threshold sensitivity and end-index convention: the single-phase scan
// stores the stabilization course index + 1 so that its end index lands in
// point-index space rather than course-index space.
const (
	TwoPhaseDetector    DetectorStrategy = "two-phase" // default
	SinglePhaseDetector DetectorStrategy = "single-phase"
)

// All wind derivation conventions supported. They are not equivalent:
// OppositeAxis reads the wind as blowing against the tacking axis bisector,
// PerpendicularAxis picks whichever of axis±90 lies closer to north.
const (
	OppositeAxis      WindConvention = "opposite" // default
	PerpendicularAxis WindConvention = "perpendicular"
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	CSVOut  OutputMode = "csv"
	JSONOut OutputMode = "json"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	CSVOut:  {},
	JSONOut: {},
}

// ValidDetectorStrategies lists all valid detector strategies.
var ValidDetectorStrategies = map[DetectorStrategy]struct{}{
	TwoPhaseDetector:    {},
	SinglePhaseDetector: {},
}

// ValidWindConventions lists all valid wind conventions.
var ValidWindConventions = map[WindConvention]struct{}{
	OppositeAxis:      {},
	PerpendicularAxis: {},
}
