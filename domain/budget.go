package domain

// Default annotation caps, matching the limits GitHub applies per step
const (
	DefaultTotalLimit   = 50
	DefaultErrorLimit   = 10
	DefaultWarningLimit = 10
	DefaultNoticeLimit  = 30
)

// Limits holds the global and per-bucket annotation caps
type Limits struct {
	Total   int `json:"total" yaml:"total"`
	Error   int `json:"error" yaml:"error"`
	Warning int `json:"warning" yaml:"warning"`
	Notice  int `json:"notice" yaml:"notice"`
}

// DefaultLimits returns the stock caps (50 total, 10/10/30 per bucket)
func DefaultLimits() Limits {
	return Limits{
		Total:   DefaultTotalLimit,
		Error:   DefaultErrorLimit,
		Warning: DefaultWarningLimit,
		Notice:  DefaultNoticeLimit,
	}
}

// For returns the cap of a bucket
func (l Limits) For(b Bucket) int {
	switch b {
	case BucketWarning:
		return l.Warning
	case BucketNotice:
		return l.Notice
	default:
		return l.Error
	}
}

// Counters accumulates the allocator state over one run.
// Bucket counters include attempts beyond their cap.
type Counters struct {
	Errors   int `json:"errors" yaml:"errors"`
	Warnings int `json:"warnings" yaml:"warnings"`
	Notices  int `json:"notices" yaml:"notices"`
	Total    int `json:"total" yaml:"total"`
	Skipped  int `json:"skipped" yaml:"skipped"`
}

// Bucket returns the counter of a bucket
func (c Counters) Bucket(b Bucket) int {
	switch b {
	case BucketWarning:
		return c.Warnings
	case BucketNotice:
		return c.Notices
	default:
		return c.Errors
	}
}

// Admitted is the number of violations emitted as annotations
func (c Counters) Admitted() int {
	return c.Total - c.Skipped
}

// Decision is the allocator verdict for one violation
type Decision string

const (
	DecisionAdmitted      Decision = "admitted"
	DecisionSkippedGlobal Decision = "skipped_global"
	DecisionSkippedBucket Decision = "skipped_bucket"
)

// IsAdmitted reports whether the violation becomes an annotation
func (d Decision) IsAdmitted() bool {
	return d == DecisionAdmitted
}

// BucketBreakdown is the reported/omitted split of one bucket
type BucketBreakdown struct {
	Bucket   Bucket `json:"bucket" yaml:"bucket"`
	Count    int    `json:"count" yaml:"count"`
	Limit    int    `json:"limit" yaml:"limit"`
	Reported int    `json:"reported" yaml:"reported"`
	Omitted  int    `json:"omitted" yaml:"omitted"`
}

// Breakdown computes the per-bucket split in summary order
func (c Counters) Breakdown(limits Limits) []BucketBreakdown {
	out := make([]BucketBreakdown, 0, len(Buckets))
	for _, b := range Buckets {
		count, limit := c.Bucket(b), limits.For(b)
		bd := BucketBreakdown{Bucket: b, Count: count, Limit: limit, Reported: count}
		if count > limit {
			bd.Reported = limit
			bd.Omitted = count - limit
		}
		out = append(out, bd)
	}
	return out
}
