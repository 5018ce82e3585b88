package config

// DomainConfig holds all configurable business rules and constraints
type DomainConfig struct {
	// Content constraints
	MaxTitleLength    int
	MaxNameLength     int
	MaxLocationLength int

	// Graph constraints
	MaxScenesPerStoryboard int
	MaxEdgesPerScene       int

	// Scene constraints
	MaxVariantsPerScene   int
	MaxElementsPerVariant int

	// Validation settings
	AllowEmptyHeading bool
}

// DefaultDomainConfig returns the default domain configuration
func DefaultDomainConfig() *DomainConfig {
	return &DomainConfig{
		MaxTitleLength:    100,
		MaxNameLength:     100,
		MaxLocationLength: 120,

		MaxScenesPerStoryboard: 10000,
		MaxEdgesPerScene:       500,

		MaxVariantsPerScene:   50,
		MaxElementsPerVariant: 1000,

		AllowEmptyHeading: true,
	}
}
