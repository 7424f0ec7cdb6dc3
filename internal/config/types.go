package config

// Limits defines operational boundaries for the loop runtime.
type Limits struct {
	MaxDepth        int    `yaml:"max_depth"`        // control stack capacity
	UnrollThreshold uint64 `yaml:"unroll_threshold"` // max iteration count eligible for full unroll
}

// Config represents the .cyon/runtime.yaml file.
type Config struct {
	Limits Limits `yaml:"limits"`
}
