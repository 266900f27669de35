package cmd

import (
	"time"

	"personalfinancedss/internal/core/analytics"
	"personalfinancedss/internal/core/engine"
)

// baselineStart anchors every CLI-driven scenario run's start date so
// repeated runs of the same day count are trivially comparable.
func baselineStart(days int) time.Time {
	return time.Now().UTC().AddDate(0, 0, -days).Truncate(24 * time.Hour)
}

// buildPacket assembles the spec's output packet from a completed engine
// run and its daily balance series, with no cross-scenario percentile
// data (a single run has no population to take percentiles over; the
// sweep command supplies that).
func buildPacket(eng *engine.Engine, balances []float64) *analytics.Packet {
	return analytics.GeneratePacket(eng.Result(), balances, nil)
}
