// Package budget decides which violations become annotations under the
// global and per-bucket caps.
package budget

import "github.com/ludo-technologies/csannotate/domain"

// Allocate folds one violation of the given bucket into the counters.
// The global cap is checked first; a violation skipped there never touches
// its bucket counter. Bucket counters keep counting past their cap so the
// summary can report how many were omitted.
func Allocate(c domain.Counters, b domain.Bucket, limits domain.Limits) (domain.Counters, domain.Decision) {
	c.Total++
	if c.Total > limits.Total {
		c.Skipped++
		return c, domain.DecisionSkippedGlobal
	}

	var n int
	switch b {
	case domain.BucketWarning:
		c.Warnings++
		n = c.Warnings
	case domain.BucketNotice:
		c.Notices++
		n = c.Notices
	default:
		c.Errors++
		n = c.Errors
	}

	if n > limits.For(b) {
		c.Skipped++
		return c, domain.DecisionSkippedBucket
	}
	return c, domain.DecisionAdmitted
}

// Allocator carries the running state of one pass
type Allocator struct {
	limits      domain.Limits
	counters    domain.Counters
	foundErrors bool
}

// NewAllocator creates an allocator with zeroed counters
func NewAllocator(limits domain.Limits) *Allocator {
	return &Allocator{limits: limits}
}

// Next decides the fate of the next violation in encounter order
func (a *Allocator) Next(v domain.Violation) domain.Decision {
	if v.IsError() {
		a.foundErrors = true
	}
	var d domain.Decision
	a.counters, d = Allocate(a.counters, v.Bucket, a.limits)
	return d
}

// Counters returns a snapshot of the counters
func (a *Allocator) Counters() domain.Counters {
	return a.counters
}

// Limits returns the caps in use
func (a *Allocator) Limits() domain.Limits {
	return a.limits
}

// FoundErrors reports whether any violation had raw severity "error",
// admitted or not.
func (a *Allocator) FoundErrors() bool {
	return a.foundErrors
}

// Fold runs a whole sequence through a fresh allocator
func Fold(violations []domain.Violation, limits domain.Limits) (domain.Counters, []domain.Decision) {
	a := NewAllocator(limits)
	decisions := make([]domain.Decision, len(violations))
	for i, v := range violations {
		decisions[i] = a.Next(v)
	}
	return a.Counters(), decisions
}
