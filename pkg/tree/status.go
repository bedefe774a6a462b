package tree

import "strings"

// Status is a node's composite outcome bitmask.
//
// The Success, Failure and Running bits record which outcomes the node can
// produce. SuccessZero and FailureZero are tracking bits set while
// aggregating children: they mark that some enabled child lacks the
// corresponding outcome, which is what all-children directives key off.
// They never survive into a node's final status.
type Status uint8

const (
	StatusSuccess Status = 1 << iota
	StatusFailure
	StatusRunning
	StatusSuccessZero
	StatusFailureZero
)

// StatusMask selects the three real outcome bits.
const StatusMask = StatusSuccess | StatusFailure | StatusRunning

// Has reports whether all bits of b are set.
func (s Status) Has(b Status) bool { return s&b == b }

func (s Status) String() string {
	if s == 0 {
		return "none"
	}
	var parts []string
	if s.Has(StatusSuccess) {
		parts = append(parts, "success")
	}
	if s.Has(StatusFailure) {
		parts = append(parts, "failure")
	}
	if s.Has(StatusRunning) {
		parts = append(parts, "running")
	}
	if s.Has(StatusSuccessZero) {
		parts = append(parts, "success-zero")
	}
	if s.Has(StatusFailureZero) {
		parts = append(parts, "failure-zero")
	}
	return strings.Join(parts, "|")
}
