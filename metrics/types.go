// Package metrics aggregates per-card generation statistics for a run.
// This file contains pure data types with no behavior.
package metrics

import "time"

// CardRecord represents a single card generation attempt chain.
type CardRecord struct {
	// Card is the card display name
	Card string `json:"card"`

	// Status indicates the outcome: "success" or "error"
	Status string `json:"status"`

	// Seed is the sampler seed used for the card
	Seed int64 `json:"seed"`

	// Attempts is the number of API calls made, including retries
	Attempts int `json:"attempts"`

	// Duration is the total wall time from first attempt to written file
	Duration time.Duration `json:"duration"`

	// ErrorMsg contains error details if Status is "error"
	ErrorMsg string `json:"error_msg,omitempty"`
}

// RunStats represents aggregated statistics over a generation run.
type RunStats struct {
	// TotalCards is the number of card generations recorded
	TotalCards int64 `json:"total_cards"`

	// TotalSuccess is the count of cards generated successfully
	TotalSuccess int64 `json:"total_success"`

	// TotalErrors is the count of cards that ultimately failed
	TotalErrors int64 `json:"total_errors"`

	// TotalRetries is the count of extra API attempts beyond the first
	TotalRetries int64 `json:"total_retries"`

	// SuccessRate is the percentage of successful cards (0-100)
	SuccessRate float64 `json:"success_rate"`

	// AvgDuration is the average wall time per card
	AvgDuration time.Duration `json:"avg_duration"`
}

// Status constants for CardRecord
const (
	CardStatusSuccess = "success"
	CardStatusError   = "error"
)
