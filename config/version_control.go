package config

// Version system:
// vMAJOR.MINOR.PATCH

// Centralized version control
const (
	// Executible
	Main_version = "v1.0.0"

	// Modular tools
	Benchmark        = "v1.0.0"
	Protein_Gen      = "v1.1.0"
	Candidate_Screen = "v1.0.0"
	Backbone_Trace   = "v1.0.0"
	Panel_Report     = "v1.0.0"
	Self_Check       = "v1.0.0"
)
