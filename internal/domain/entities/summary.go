package entities

import (
	"github.com/samber/lo"

	"helpinject/internal/domain"
)

// Result is the outcome of one injection record.
type Result struct {
	File     string
	Language LanguageCode
	Outcome  domain.Outcome
	Err      error
}

// Summary collects the results of a run in processing order.
type Summary struct {
	Results []Result
}

// Succeeded counts the files that were (or would be) patched.
func (s Summary) Succeeded() int {
	return lo.CountBy(s.Results, func(r Result) bool { return r.Outcome.Applied() })
}

// Failed counts the files that hit an I/O or verification failure.
func (s Summary) Failed() int {
	return lo.CountBy(s.Results, func(r Result) bool { return r.Outcome == domain.OutcomeFailed })
}

// Skipped counts the files left alone on purpose.
func (s Summary) Skipped() int {
	return lo.CountBy(s.Results, func(r Result) bool { return r.Outcome.Skipped() })
}
