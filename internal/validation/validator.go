package validation

// DefaultMessage is reported when a failing Rule has no message of its own.
const DefaultMessage = "Invalid input, please try again."

// Predicate reports whether a raw input string is acceptable.
type Predicate func(string) bool

// Rule pairs a predicate with the message shown when it rejects input.
type Rule struct {
	Predicate Predicate
	Message   string // Empty means DefaultMessage
}

// Validator is an ordered predicate chain owned by a single field.
type Validator struct {
	rules []Rule
}

// New creates a Validator from rules, evaluated in the given order.
func New(rules ...Rule) *Validator {
	copied := make([]Rule, len(rules))
	copy(copied, rules)
	return &Validator{rules: copied}
}

// Len returns the number of rules in the chain.
func (v *Validator) Len() int {
	if v == nil {
		return 0
	}
	return len(v.rules)
}

// Validate runs the rules against input and returns the first failure.
// Rules after the first failing one are not evaluated. A nil Validator
// accepts everything.
func (v *Validator) Validate(input string) error {
	if v == nil {
		return nil
	}
	for i, rule := range v.rules {
		if rule.Predicate == nil || rule.Predicate(input) {
			continue
		}
		msg := rule.Message
		if msg == "" {
			msg = DefaultMessage
		}
		return &Error{Message: msg, Input: input, Rule: i}
	}
	return nil
}
