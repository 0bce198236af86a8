package types

import "time"

// SimulationReport is the JSON document written for a single simulation
type SimulationReport struct {
	ID           string           `json:"id"`
	Planet       PlanetInfo       `json:"planet"`
	NumTerms     int              `json:"num_terms"`
	Sampling     string           `json:"sampling"`
	Coefficients CoefficientTable `json:"coefficients"`
	Deviation    DeviationStats   `json:"deviation"`
	Exact        CurveData        `json:"exact"`
	Approx       CurveData        `json:"approx"`
	Metadata     ReportMetadata   `json:"metadata"`
	Timestamp    time.Time        `json:"timestamp"`
}

// PlanetInfo describes the simulated body
type PlanetInfo struct {
	Name          string  `json:"name"`
	SemiMajorAxis float64 `json:"semi_major_axis"` // AU
	Eccentricity  float64 `json:"eccentricity"`
	PeriodDays    float64 `json:"period_days"`
	Color         string  `json:"color"`
	Perihelion    float64 `json:"perihelion"` // AU
	Aphelion      float64 `json:"aphelion"`   // AU
}

// CoefficientTable holds the four coefficient sequences, index 0 is the mean term
type CoefficientTable struct {
	A []float64 `json:"a"`
	B []float64 `json:"b"`
	C []float64 `json:"c"`
	D []float64 `json:"d"`
}

// DeviationStats compares the approximate curve with the exact one
type DeviationStats struct {
	Max float64 `json:"max"` // AU
	RMS float64 `json:"rms"` // AU
}

// CurveData is a sampled curve in the orbital plane
type CurveData struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
}

// PointRecord is one line of the streamed JSONL export
type PointRecord struct {
	Index   int     `json:"index"`
	ExactX  float64 `json:"exact_x"`
	ExactY  float64 `json:"exact_y"`
	ApproxX float64 `json:"approx_x"`
	ApproxY float64 `json:"approx_y"`
}

// ReportMetadata contains metadata about the run
type ReportMetadata struct {
	ExactPoints  int    `json:"exact_points"`
	ApproxPoints int    `json:"approx_points"`
	Version      string `json:"version"`
}
