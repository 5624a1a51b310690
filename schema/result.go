package schema

import (
	"encoding/json"
	"strings"
)

// ResultKind classifies the outcome of a single routing attempt.
type ResultKind string

const (
	// ResultSuccess indicates the transfer completed.
	ResultSuccess ResultKind = "success"
	// ResultSkipped indicates the destination existed and the mode keeps it.
	ResultSkipped ResultKind = "skipped"
	// ResultFailed indicates the transfer did not complete.
	ResultFailed ResultKind = "failed"
)

// Result is the outcome of one routing attempt. Its external form is a
// single string: "Success", "Skipped", or "Failed: <reason>".
type Result struct {
	Kind   ResultKind
	Reason string
}

// Success returns a successful result.
func Success() Result {
	return Result{Kind: ResultSuccess}
}

// SkippedExists returns a skipped result for an existing destination.
func SkippedExists() Result {
	return Result{Kind: ResultSkipped}
}

// Failed returns a failed result with the given reason.
func Failed(reason string) Result {
	return Result{Kind: ResultFailed, Reason: strings.TrimSpace(reason)}
}

// Succeeded reports whether the attempt completed.
func (r Result) Succeeded() bool {
	return r.Kind == ResultSuccess
}

// String renders the external form.
func (r Result) String() string {
	switch r.Kind {
	case ResultSuccess:
		return "Success"
	case ResultSkipped:
		return "Skipped"
	default:
		if r.Reason == "" {
			return "Failed"
		}
		return "Failed: " + r.Reason
	}
}

// ParseResult decodes the external form. Unrecognized strings decode as a
// failure carrying the raw string, so foreign documents import losslessly.
func ParseResult(value string) Result {
	trimmed := strings.TrimSpace(value)
	switch {
	case strings.EqualFold(trimmed, "Success"):
		return Success()
	case strings.EqualFold(trimmed, "Skipped"):
		return SkippedExists()
	case strings.EqualFold(trimmed, "Failed"):
		return Failed("")
	}
	lower := strings.ToLower(trimmed)
	if strings.HasPrefix(lower, "failed:") {
		return Failed(trimmed[len("failed:"):])
	}
	return Failed(trimmed)
}

// MarshalJSON encodes the result as its external string form.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// UnmarshalJSON decodes the external string form.
func (r *Result) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*r = ParseResult(value)
	return nil
}
