package rules

import (
	"sort"
)

// Result is the outcome of executing a list of triggered actions.
// Blocked short-circuits nothing inside the engine itself; the orchestrator
// treats any blocked result as an immediate rejection carrying BlockReason.
type Result struct {
	Blocked      bool
	BlockReason  string
	Metadata     map[string]any
	Calculations map[string]any
}

// Engine evaluates catalog rules against a fact map and folds triggered
// actions into a Result. It is pure and synchronous: Evaluate and Execute
// never touch storage and never fail.
//
// Example:
//
//	engine := rules.NewEngine(rules.DefaultCatalog())
//	actions := engine.Evaluate(ord.Facts(), rules.EventOrderTransition, "start_preparation")
//	result := engine.Execute(actions, ord.Facts(), nil)
//	if result.Blocked {
//	    // reject the transition with result.BlockReason
//	}
type Engine struct {
	catalog *Catalog
}

// NewEngine creates an Engine evaluating rules from the given catalog.
func NewEngine(catalog *Catalog) *Engine {
	return &Engine{catalog: catalog}
}

// Catalog returns the catalog this engine evaluates.
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

// Evaluate selects the enabled rules registered for event, tests each rule's
// condition list against the facts, and collects every action of every
// matching rule. A rule's top-level conditions are AND-ed; a rule with no
// conditions always matches.
//
// The returned list is sorted ascending by action priority; the sort is
// stable, so ties keep catalog discovery order.
func (e *Engine) Evaluate(facts Facts, event, action string) []Action {
	triggered := make([]Action, 0)

	for _, rule := range e.catalog.ByEvent(event) {
		if conditionsMatch(facts, rule.Conditions, action) {
			triggered = append(triggered, rule.Actions...)
		}
	}

	sort.SliceStable(triggered, func(i, j int) bool {
		return triggered[i].Priority < triggered[j].Priority
	})
	return triggered
}

// conditionsMatch tests a top-level condition list with AND semantics.
// An empty list always matches.
func conditionsMatch(facts Facts, conditions []Condition, action string) bool {
	for _, c := range conditions {
		if !conditionMatches(facts, c, action) {
			return false
		}
	}
	return true
}

// conditionMatches evaluates one condition node, recursing into composites.
// An unrecognized kind never matches.
func conditionMatches(facts Facts, c Condition, action string) bool {
	switch c.Kind {
	case And:
		for _, sub := range c.Sub {
			if !conditionMatches(facts, sub, action) {
				return false
			}
		}
		return true

	case Or:
		for _, sub := range c.Sub {
			if conditionMatches(facts, sub, action) {
				return true
			}
		}
		return false
	}

	fieldValue := resolveField(facts, c.Field, action)

	switch c.Kind {
	case GreaterThan:
		return valueGreater(fieldValue, c.Value)
	case LessThan:
		return valueLess(fieldValue, c.Value)
	case Equals:
		return valuesEqual(fieldValue, c.Value)
	case InList:
		return valueInList(fieldValue, c.Value)
	case Contains:
		return valueContains(fieldValue, c.Value)
	}

	return false
}

// Execute folds the triggered actions into a Result, in the order Evaluate
// produced them.
//
// Folding semantics: RequireReview and BlockTransition both mark the result
// blocked and record a reason. CalculateTax writes the single "tax"
// calculation slot, so when multiple tax actions trigger the last one wins;
// AddMetadata, by contrast, merges keys, which is how stacking rules (for
// example the luxury surcharge) leave their mark without accumulating tax
// amounts. SendNotification only records that a notification is due.
// Unrecognized kinds are deliberate no-ops so a newer catalog cannot break
// an older engine.
//
// The context map carries caller information for future action kinds; no
// built-in action reads it today.
func (e *Engine) Execute(actions []Action, facts Facts, _ map[string]any) Result {
	result := Result{
		Metadata:     make(map[string]any),
		Calculations: make(map[string]any),
	}

	for _, action := range actions {
		switch action.Kind {
		case RequireReview:
			result.Blocked = true
			result.BlockReason = stringParam(action.Params, "reason", "Review required")

		case BlockTransition:
			result.Blocked = true
			result.BlockReason = stringParam(action.Params, "reason", "Transition not allowed")

		case CalculateTax:
			rate, _ := toFloat(action.Params["rate"])
			amount, _ := toFloat(facts["amount"])
			taxAmount := amount * rate
			result.Calculations["tax"] = map[string]any{
				"rate":           rate,
				"amount":         taxAmount,
				"total_with_tax": amount + taxAmount,
			}

		case AddMetadata:
			if data, ok := action.Params["data"].(map[string]any); ok {
				for k, v := range data {
					result.Metadata[k] = v
				}
			}

		case SendNotification:
			result.Metadata["notification_sent"] = true
			result.Metadata["notification_type"] = stringParam(action.Params, "type", "email")
		}
	}

	return result
}

// stringParam reads a string parameter with a fallback default.
func stringParam(params map[string]any, key, fallback string) string {
	if s, ok := params[key].(string); ok && s != "" {
		return s
	}
	return fallback
}
