package btschema

import "fmt"

// StatusRule is one status composition directive from a node definition.
//
// Directives declare how a node's possible runtime outcomes (success,
// failure, running) derive from its own nature and from its children's
// aggregated outcomes. Keeping them as an enum makes the composition switch
// exhaustive instead of re-matching directive strings per node.
type StatusRule uint8

const (
	// RuleInvalid is the zero value; it never appears in a parsed definition.
	RuleInvalid StatusRule = iota

	// RuleSuccess, RuleFailure and RuleRunning declare the node's own outcomes.
	RuleSuccess
	RuleFailure
	RuleRunning

	// RuleNotSuccess sets the node's success from its children's failure,
	// RuleNotFailure the node's failure from its children's success
	// (negation propagation, e.g. an inverter decorator).
	RuleNotSuccess
	RuleNotFailure

	// RuleAnySuccess, RuleAnyFailure and RuleAnyRunning set the node's bit
	// when any enabled child carries the corresponding outcome.
	RuleAnySuccess
	RuleAnyFailure
	RuleAnyRunning

	// RuleAllSuccess and RuleAllFailure set the node's bit only when every
	// enabled child carries the corresponding outcome.
	RuleAllSuccess
	RuleAllFailure
)

var statusRuleNames = map[StatusRule]string{
	RuleSuccess:    "success",
	RuleFailure:    "failure",
	RuleRunning:    "running",
	RuleNotSuccess: "!success",
	RuleNotFailure: "!failure",
	RuleAnySuccess: "|success",
	RuleAnyFailure: "|failure",
	RuleAnyRunning: "|running",
	RuleAllSuccess: "&success",
	RuleAllFailure: "&failure",
}

var statusRuleValues = func() map[string]StatusRule {
	m := make(map[string]StatusRule, len(statusRuleNames))
	for r, n := range statusRuleNames {
		m[n] = r
	}
	return m
}()

// ParseStatusRule parses a directive string such as "&success".
func ParseStatusRule(s string) (StatusRule, error) {
	if r, ok := statusRuleValues[s]; ok {
		return r, nil
	}
	return RuleInvalid, fmt.Errorf("unknown status directive %q", s)
}

// String returns the directive form of the rule.
func (r StatusRule) String() string {
	if n, ok := statusRuleNames[r]; ok {
		return n
	}
	return fmt.Sprintf("StatusRule(%d)", uint8(r))
}
