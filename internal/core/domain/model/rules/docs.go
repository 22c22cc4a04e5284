// Package rules implements the declarative business-rule engine that gates
// order transitions.
//
// The package includes:
//   - Rule/Condition/Action: the declarative rule model; conditions form a
//     recursive tree of leaf comparisons combined with and/or composites
//   - Catalog: the mutable, concurrency-safe, in-memory rule collection
//   - Engine: pure evaluation (which actions trigger) and execution (folding
//     triggered actions into a blocked/metadata/calculations result)
//   - DefaultCatalog: the built-in transition rule set (review threshold,
//     tax tiers, luxury surcharge, cancellation notification)
//
// The engine evaluates against a Facts map rather than domain types, so a
// rule field like "customer.id" is just a path into nested maps and unknown
// fields resolve to nil instead of failing.
package rules
