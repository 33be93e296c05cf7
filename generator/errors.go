package generator

import "errors"

// Errors surfaced by generation. Configuration errors are never retried;
// infeasibility errors appear only after the bounded search loops give up.
var (
	// ErrNoRepsAvailable means a territory ended up with zero reps, which can
	// only happen when the rep count is too low for the territory count.
	ErrNoRepsAvailable = errors.New("no reps available for territory")

	// ErrInfeasibleReconciliation means the per-account opportunity count band
	// is too narrow to reach the global opportunity total.
	ErrInfeasibleReconciliation = errors.New("cannot reconcile opportunity counts")

	// ErrPipelineTargetUnreachable means no amount-generation attempt landed
	// the realized pipeline total inside the configured range.
	ErrPipelineTargetUnreachable = errors.New("total pipeline target unreachable")
)
