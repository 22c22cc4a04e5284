package rules

import (
	"reflect"
	"strings"
)

// Facts is the flattened view of a subject the engine evaluates against.
// Aggregates expose one (see order.Order.Facts); the engine never touches
// domain types directly, which keeps condition evaluation deterministic and
// trivially testable.
type Facts map[string]any

// highValueUnitPrice is the line-item price above which an order is
// considered to carry a high-value product.
const highValueUnitPrice = 500.0

// resolveField resolves a condition field name against the facts.
//
// Resolution order: the synthetic "action" field (the action parameter of the
// evaluation, not a subject attribute); a direct fact key such as "amount" or
// "current_state"; a dotted path ("customer.id") traversed through nested
// maps, nil on any missing hop; the computed fields "total_products" and
// "has_high_value_product" derived from the "items" fact. Anything else
// resolves to nil.
func resolveField(facts Facts, field, action string) any {
	if field == "action" {
		return action
	}

	if v, ok := facts[field]; ok {
		return v
	}

	if strings.Contains(field, ".") {
		return resolvePath(facts, strings.Split(field, "."))
	}

	switch field {
	case "total_products":
		return len(factItems(facts))
	case "has_high_value_product":
		for _, item := range factItems(facts) {
			if price, ok := toFloat(item["unit_price"]); ok && price > highValueUnitPrice {
				return true
			}
		}
		return false
	}

	return nil
}

// resolvePath walks nested fact maps. Any missing or non-map hop yields nil.
func resolvePath(facts Facts, parts []string) any {
	var current any = map[string]any(facts)
	for _, part := range parts {
		m, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current, ok = m[part]
		if !ok {
			return nil
		}
	}
	return current
}

// factItems returns the line-item maps under the "items" fact, if any.
func factItems(facts Facts) []map[string]any {
	raw, ok := facts["items"].([]any)
	if !ok {
		return nil
	}
	items := make([]map[string]any, 0, len(raw))
	for _, entry := range raw {
		if m, ok := entry.(map[string]any); ok {
			items = append(items, m)
		}
	}
	return items
}

// toFloat coerces the numeric types that appear in facts and rule literals
// to float64 for ordering comparisons.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	}
	return 0, false
}

// valuesEqual compares a resolved field value against a rule literal.
// Numbers compare by value regardless of concrete type; everything else goes
// through reflect.DeepEqual.
func valuesEqual(fieldValue, literal any) bool {
	if fv, ok := toFloat(fieldValue); ok {
		if lv, ok := toFloat(literal); ok {
			return fv == lv
		}
		return false
	}
	return reflect.DeepEqual(fieldValue, literal)
}

// valueInList reports whether the resolved field value is a member of the
// literal list. Non-slice literals never match.
func valueInList(fieldValue, literal any) bool {
	rv := reflect.ValueOf(literal)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return false
	}
	for i := 0; i < rv.Len(); i++ {
		if valuesEqual(fieldValue, rv.Index(i).Interface()) {
			return true
		}
	}
	return false
}

// valueContains implements the contains comparison: substring match when the
// field resolves to a string, membership when it resolves to a list.
func valueContains(fieldValue, literal any) bool {
	if s, ok := fieldValue.(string); ok {
		needle, ok := literal.(string)
		return ok && strings.Contains(s, needle)
	}

	rv := reflect.ValueOf(fieldValue)
	if rv.IsValid() && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) {
		for i := 0; i < rv.Len(); i++ {
			if valuesEqual(rv.Index(i).Interface(), literal) {
				return true
			}
		}
	}
	return false
}

// valueLess reports fieldValue < literal under numeric or lexical ordering.
// Unordered operands (nil, mixed types) are never less.
func valueLess(fieldValue, literal any) bool {
	if fv, ok := toFloat(fieldValue); ok {
		if lv, ok := toFloat(literal); ok {
			return fv < lv
		}
		return false
	}
	if fs, ok := fieldValue.(string); ok {
		if ls, ok := literal.(string); ok {
			return fs < ls
		}
	}
	return false
}

// valueGreater reports fieldValue > literal under numeric or lexical ordering.
// Unordered operands (nil, mixed types) are never greater.
func valueGreater(fieldValue, literal any) bool {
	if fv, ok := toFloat(fieldValue); ok {
		if lv, ok := toFloat(literal); ok {
			return fv > lv
		}
		return false
	}
	if fs, ok := fieldValue.(string); ok {
		if ls, ok := literal.(string); ok {
			return fs > ls
		}
	}
	return false
}
