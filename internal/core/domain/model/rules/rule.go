package rules

// Events that trigger rule evaluation.
const (
	// EventOrderTransition is evaluated for every requested order transition.
	EventOrderTransition = "order_transition"
)

// ConditionKind identifies how a Condition compares or combines values.
type ConditionKind string

// Leaf comparison kinds compare a resolved subject field against the
// condition's literal value; composite kinds combine sub-conditions.
const (
	GreaterThan ConditionKind = "greater_than"
	LessThan    ConditionKind = "less_than"
	Equals      ConditionKind = "equals"
	InList      ConditionKind = "in_list"
	Contains    ConditionKind = "contains"
	And         ConditionKind = "and"
	Or          ConditionKind = "or"
)

// Condition is one node of a rule's condition tree. A leaf condition
// (GreaterThan, LessThan, Equals, InList, Contains) compares the named Field
// of the subject against Value. A composite condition (And, Or) ignores Field
// and Value and recursively combines Sub.
type Condition struct {
	Kind  ConditionKind
	Field string
	Value any
	Sub   []Condition
}

// ActionKind identifies what a triggered rule action does when executed.
type ActionKind string

const (
	// RequireReview blocks the transition and records a review reason.
	RequireReview ActionKind = "require_review"

	// CalculateTax computes amount * rate into the result's tax slot.
	// When several tax actions trigger, the last one executed wins the slot.
	CalculateTax ActionKind = "calculate_tax"

	// BlockTransition blocks the transition and records a reason.
	BlockTransition ActionKind = "block_transition"

	// AddMetadata merges the action's data parameters into the result metadata.
	AddMetadata ActionKind = "add_metadata"

	// SendNotification records that a notification should be sent. Actual
	// delivery is an external concern; execution only marks the result.
	SendNotification ActionKind = "send_notification"
)

// Action is one effect a matched rule produces. Priority orders execution
// among all triggered actions across every matched rule (lower runs first);
// it is not scoped per rule.
type Action struct {
	Kind     ActionKind
	Params   map[string]any
	Priority int
}

// Rule is a declarative business rule: when Event fires and every top-level
// condition holds (implicit AND), all of the rule's actions are triggered.
// A rule with no conditions always matches. Disabled rules are never
// evaluated.
type Rule struct {
	ID          string
	Name        string
	Description string
	Event       string
	Conditions  []Condition
	Actions     []Action
	Enabled     bool
	Priority    int
}
