package rules

import (
	"sync"

	"orderflow/internal/pkg/errs"
)

// Catalog is the mutable, in-memory collection of business rules. It is
// process-wide state owned by whoever constructs the orchestrator: pass it
// explicitly, never reach for a global.
//
// All methods are safe for concurrent use. Rules keep their insertion order;
// ByEvent returns enabled rules in that order, which is what makes the
// engine's stable priority sort deterministic across runs.
type Catalog struct {
	mu    sync.RWMutex
	rules []Rule
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// NewCatalogWithRules creates a catalog pre-populated with the given rules in
// the given order.
func NewCatalogWithRules(rules []Rule) *Catalog {
	c := &Catalog{rules: make([]Rule, len(rules))}
	copy(c.rules, rules)
	return c
}

// All returns a copy of every rule in catalog order, including disabled ones.
func (c *Catalog) All() []Rule {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Rule, len(c.rules))
	copy(out, c.rules)
	return out
}

// ByID returns the rule with the given id.
// Returns an ObjectNotFoundError if no such rule exists.
func (c *Catalog) ByID(id string) (Rule, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, r := range c.rules {
		if r.ID == id {
			return r, nil
		}
	}
	return Rule{}, errs.NewObjectNotFoundError("rule", id)
}

// ByEvent returns the enabled rules whose Event matches, in catalog order.
func (c *Catalog) ByEvent(event string) []Rule {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Rule, 0)
	for _, r := range c.rules {
		if r.Event == event && r.Enabled {
			out = append(out, r)
		}
	}
	return out
}

// Add appends a rule to the catalog.
// Returns a ValueIsInvalidError if a rule with the same id already exists.
func (c *Catalog) Add(rule Rule) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, r := range c.rules {
		if r.ID == rule.ID {
			return errs.NewValueIsInvalidError("rule id already exists: " + rule.ID)
		}
	}
	c.rules = append(c.rules, rule)
	return nil
}

// Update replaces the rule with the given id, keeping its position.
// Returns an ObjectNotFoundError if no such rule exists.
func (c *Catalog) Update(id string, updated Rule) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, r := range c.rules {
		if r.ID == id {
			c.rules[i] = updated
			return nil
		}
	}
	return errs.NewObjectNotFoundError("rule", id)
}

// Delete removes the rule with the given id.
// Returns an ObjectNotFoundError if no such rule exists.
func (c *Catalog) Delete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, r := range c.rules {
		if r.ID == id {
			c.rules = append(c.rules[:i], c.rules[i+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("rule", id)
}

// Toggle enables or disables the rule with the given id.
// Returns an ObjectNotFoundError if no such rule exists.
func (c *Catalog) Toggle(id string, enabled bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, r := range c.rules {
		if r.ID == id {
			c.rules[i].Enabled = enabled
			return nil
		}
	}
	return errs.NewObjectNotFoundError("rule", id)
}
