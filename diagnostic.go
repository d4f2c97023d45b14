package wallparse

import "fmt"

// DiagnosticKind classifies a non-fatal problem found while extracting.
type DiagnosticKind string

// DiagnosticKind constants.
const (
	DiagnosticUnrecognizedElement DiagnosticKind = "unrecognized-element"
	DiagnosticUnrecognizedClass   DiagnosticKind = "unrecognized-class"
	DiagnosticUnrecognizedEntity  DiagnosticKind = "unrecognized-entity"
	DiagnosticUnbalancedScope     DiagnosticKind = "unbalanced-scope"
	DiagnosticMisplacedScope      DiagnosticKind = "misplaced-scope"
	DiagnosticInvalidRecord       DiagnosticKind = "invalid-record"
)

// Diagnostic is a human readable warning about the input document.
// Diagnostics never alter the records that are produced.
type Diagnostic struct {
	Kind DiagnosticKind `json:"kind"`

	// Element is the tag name the diagnostic refers to, if any.
	Element string `json:"element,omitempty"`

	// Value is the offending class value, entity name, or scope.
	Value string `json:"value,omitempty"`

	Message string `json:"message"`
}

// String formats the diagnostic for display.
func (d Diagnostic) String() string {
	switch {
	case d.Element != "" && d.Value != "":
		return fmt.Sprintf("%s: %s:%s: %s", d.Kind, d.Element, d.Value, d.Message)
	case d.Element != "":
		return fmt.Sprintf("%s: %s: %s", d.Kind, d.Element, d.Message)
	case d.Value != "":
		return fmt.Sprintf("%s: %s: %s", d.Kind, d.Value, d.Message)
	}
	return fmt.Sprintf("%s: %s", d.Kind, d.Message)
}

// DiagnosticSink receives diagnostics as they are found.
type DiagnosticSink interface {
	Report(d Diagnostic)
}

// DiagnosticFunc adapts a function to a DiagnosticSink.
type DiagnosticFunc func(d Diagnostic)

// Report calls f(d).
func (f DiagnosticFunc) Report(d Diagnostic) {
	f(d)
}

// DiscardDiagnostics is a DiagnosticSink that drops everything.
var DiscardDiagnostics DiagnosticSink = DiagnosticFunc(func(Diagnostic) {})
