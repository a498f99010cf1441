package background

// Per-frame clock increments, in radians of phase per frame.
const (
	GradientTimeStep      = 0.003
	WaveTimeStep          = 0.008
	AuroraTimeStep        = 0.005
	LightGradientTimeStep = 0.002
)

// Pointer interaction
const (
	// AttractRadius is how close a particle must be before the pointer pulls it
	AttractRadius = 150.0
	// AttractStrength scales the pull per frame
	AttractStrength = 0.02
	// StarPointerRadius links stars within reach of the pointer
	StarPointerRadius = 180.0

	GradientGlowRadius = 200.0
	MinimalGlowRadius  = 300.0
	DotsGlowRadius     = 150.0
)

// Pair linking thresholds
const (
	ParticleLinkDistance = 120.0
	StarLinkDistance     = 80.0
)

// Path sampling and layout
const (
	WaveStep       = 5.0
	WaveLayerShift = 80.0
	AuroraStep     = 3.0
	GridSize       = 40.0

	// AuroraNoise is the full width of the per-pixel luminance jitter
	AuroraNoise = 5.0
)
