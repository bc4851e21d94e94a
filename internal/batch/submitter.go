// Package batch provides fixed-size batch submission for test result records,
// turning "N results, submit up to K at a time" into an ordered sequence of
// grouped submission calls without dictating the transport.
//
// SUBMISSION MODEL:
// Records are partitioned left to right into contiguous batches of at most
// the configured size; the final batch may be shorter. Batches are submitted
// strictly sequentially through a caller-supplied submit function, and the
// outcome of every batch is collected into a summary. A failing batch is
// recorded and does not abort the run, so a reporting pipeline can inspect
// partial success after the full pass completes.
//
// The package performs no network I/O and no protocol encoding itself: the
// submit function is the sole extension point, supplied by whichever client
// (REST/JSON bulk endpoint, XML-RPC call-per-result loop) owns the actual
// transport. Retry policy, if any, belongs to that collaborator.
package batch

import (
	"fmt"
)

// SubmitFunc submits one batch of records to a backend. Implementations own
// all transport concerns including encoding, authentication, and retries.
// A returned error marks the batch as failed in the submission summary.
type SubmitFunc[R any] func(records []R) error

// Outcome records the result of submitting a single batch: its position in
// the partition order, how many records it carried, and the transport error
// if the submission failed.
type Outcome struct {
	Index int   // Zero-based batch position in partition order
	Size  int   // Number of records in this batch
	Err   error // Non-nil when the collaborator failed this batch
}

// Failed reports whether this batch's submission failed.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// Summary aggregates per-batch outcomes in the same order the batches were
// formed and submitted. Callers inspect it after a full run to determine
// which batches succeeded and which need attention.
type Summary []Outcome

// Succeeded returns the number of batches that were submitted successfully.
func (s Summary) Succeeded() int {
	n := 0
	for _, o := range s {
		if !o.Failed() {
			n++
		}
	}
	return n
}

// Failed returns the number of batches whose submission failed.
func (s Summary) Failed() int {
	return len(s) - s.Succeeded()
}

// Ok reports whether every batch in the run was submitted successfully.
// An empty summary is Ok: there was nothing to submit and nothing failed.
func (s Summary) Ok() bool {
	return s.Failed() == 0
}

// InvalidBatchSizeError reports a non-positive maximum batch size. Raised
// before any submission is attempted; the run never starts with a
// configuration that cannot partition the input.
type InvalidBatchSizeError struct {
	Size int // The rejected batch size
}

func (e *InvalidBatchSizeError) Error() string {
	return fmt.Sprintf("batch size must be positive, got %d", e.Size)
}

// Count returns the number of batches produced when n records are partitioned
// into groups of at most size, i.e. ceil(n/size). Returns 0 for empty input.
func Count(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// Partition splits records into ordered, contiguous groups of at most size
// elements. Every group except possibly the last has exactly size elements,
// and concatenating the groups in order reproduces the input with no loss,
// duplication, or reordering. The returned slices share the input's backing
// array. Returns nil for empty input or a non-positive size.
func Partition[R any](records []R, size int) [][]R {
	if len(records) == 0 || size <= 0 {
		return nil
	}

	batches := make([][]R, 0, Count(len(records), size))
	for start := 0; start < len(records); start += size {
		end := start + size
		if end > len(records) {
			end = len(records)
		}
		batches = append(batches, records[start:end])
	}
	return batches
}

// SubmitAll partitions records into batches of at most maxBatchSize and
// submits each batch, in order, through the supplied submit function. Each
// batch is submitted exactly once; submission is synchronous and sequential
// so side effects on the collaborator match batch order.
//
// A batch-level failure is captured in the returned Summary and the run
// continues with the remaining batches. SubmitAll itself only fails fast for
// an invalid configuration: a non-positive maxBatchSize returns an
// InvalidBatchSizeError before any submission happens. Empty records yield
// an empty Summary with zero submit invocations.
func SubmitAll[R any](records []R, maxBatchSize int, submit SubmitFunc[R]) (Summary, error) {
	if maxBatchSize <= 0 {
		return nil, &InvalidBatchSizeError{Size: maxBatchSize}
	}

	batches := Partition(records, maxBatchSize)
	if len(batches) == 0 {
		return Summary{}, nil
	}

	summary := make(Summary, 0, len(batches))
	for i, b := range batches {
		summary = append(summary, Outcome{
			Index: i,
			Size:  len(b),
			Err:   submit(b),
		})
	}
	return summary, nil
}
