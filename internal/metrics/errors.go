package metrics

import (
	"fmt"

	"github.com/rotisserie/eris"
)

// ErrMissingProfile is returned when no user profile is supplied. Fatal.
var ErrMissingProfile = eris.New("metrics: user profile not provided")

// InvalidMetricError reports a division-by-zero or otherwise undefined
// arithmetic step for a single metric. It is always recovered locally: the
// metric is flagged and the rest of the computation proceeds.
type InvalidMetricError struct {
	Metric string
	Cause  string
}

func (e *InvalidMetricError) Error() string {
	return fmt.Sprintf("cannot compute %q due to invalid (possibly zero) value of %q", e.Metric, e.Cause)
}

func invalidMetric(metric, cause string) error {
	return &InvalidMetricError{Metric: metric, Cause: cause}
}

// ProjectionError reports out-of-domain configuration or profile values in
// the retirement-corpus projection. Fatal for the profile being analysed.
type ProjectionError struct {
	Reason string
}

func (e *ProjectionError) Error() string {
	return "metrics: retirement projection: " + e.Reason
}
