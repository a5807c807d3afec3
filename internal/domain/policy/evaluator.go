package policy

// Evaluator dispatches a category to its rule. Unknown categories are INVALID.
type Evaluator struct {
	policy Policy
	rules  map[Category]Rule
}

func NewEvaluator(p Policy) *Evaluator {
	rules := map[Category]Rule{
		NewClient:                newClient,
		RecurringCustomer:        recurringCustomer,
		IncreasePercentage:       increasePercentage,
		ClientAge:                clientAge,
		MembersAccordingToPolicy: membersAccordingToPolicy,
		MinimumAndMaximumAmount:  minimumAndMaximumAmount,
		RequestedAmount:          requestedAmount,
		Gender:                   gender,
	}
	for _, c := range pending {
		rules[c] = alwaysGreen
	}
	return &Evaluator{policy: p.clone(), rules: rules}
}

func (e *Evaluator) Evaluate(c Category, s Subject) Verdict {
	rule, ok := e.rules[c]
	if !ok {
		return Invalid
	}
	return rule(e.policy, s)
}

// Known reports whether c has a rule.
func (e *Evaluator) Known(c Category) bool {
	_, ok := e.rules[c]
	return ok
}
