package rules

// DefaultCatalog builds the built-in rule set for order transitions.
// Rule and action priorities are tuned so that, after the engine's stable
// sort, blocking actions run before tax calculations and the luxury tax
// overrides the base tax slot while stacking its metadata flags.
func DefaultCatalog() *Catalog {
	return NewCatalogWithRules([]Rule{
		{
			ID:          "rule_001",
			Name:        "High Value Order Review",
			Description: "Orders over $1000 must go through review process",
			Event:       EventOrderTransition,
			Conditions: []Condition{
				{Kind: GreaterThan, Field: "amount", Value: 1000.0},
				{Kind: Equals, Field: "action", Value: "start_preparation"},
				{Kind: Equals, Field: "current_state", Value: "pending"},
			},
			Actions: []Action{
				{
					Kind:     BlockTransition,
					Params:   map[string]any{"reason": "Orders over $1000 require review"},
					Priority: 1,
				},
				{
					Kind: AddMetadata,
					Params: map[string]any{
						"data": map[string]any{
							"requires_review":  true,
							"review_threshold": 1000.0,
						},
					},
					Priority: 2,
				},
			},
			Enabled:  true,
			Priority: 1,
		},
		{
			ID:          "rule_002",
			Name:        "Standard Tax Calculation",
			Description: "Apply 10% tax for orders between $100 and $1000",
			Event:       EventOrderTransition,
			Conditions: []Condition{
				{
					Kind: And,
					Sub: []Condition{
						{Kind: GreaterThan, Field: "amount", Value: 100.0},
						{Kind: LessThan, Field: "amount", Value: 1000.0},
					},
				},
				{Kind: InList, Field: "action", Value: []any{"start_preparation", "approve"}},
			},
			Actions: []Action{
				{
					Kind: CalculateTax,
					Params: map[string]any{
						"rate":        0.10,
						"description": "Standard tax rate",
					},
					Priority: 3,
				},
			},
			Enabled:  true,
			Priority: 2,
		},
		{
			ID:          "rule_003",
			Name:        "Premium Tax Calculation",
			Description: "Apply 15% tax for orders over $1000",
			Event:       EventOrderTransition,
			Conditions: []Condition{
				{Kind: GreaterThan, Field: "amount", Value: 1000.0},
				{Kind: InList, Field: "action", Value: []any{"approve", "start_preparation"}},
			},
			Actions: []Action{
				{
					Kind: CalculateTax,
					Params: map[string]any{
						"rate":        0.15,
						"description": "Premium tax rate for high-value orders",
					},
					Priority: 3,
				},
			},
			Enabled:  true,
			Priority: 2,
		},
		{
			ID:          "rule_004",
			Name:        "Luxury Product Tax",
			Description: "Additional 5% tax when any line item exceeds $500",
			Event:       EventOrderTransition,
			Conditions: []Condition{
				{Kind: Equals, Field: "has_high_value_product", Value: true},
				{Kind: InList, Field: "action", Value: []any{"start_preparation", "approve"}},
			},
			Actions: []Action{
				{
					Kind: CalculateTax,
					Params: map[string]any{
						"rate":        0.05,
						"description": "Luxury product surcharge",
					},
					Priority: 4,
				},
				{
					Kind: AddMetadata,
					Params: map[string]any{
						"data": map[string]any{
							"luxury_items":           true,
							"additional_tax_applied": true,
						},
					},
					Priority: 5,
				},
			},
			Enabled:  true,
			Priority: 3,
		},
		{
			ID:          "rule_005",
			Name:        "Cancellation Notification",
			Description: "Send notification when order is cancelled",
			Event:       EventOrderTransition,
			Conditions: []Condition{
				{Kind: Equals, Field: "action", Value: "cancel"},
			},
			Actions: []Action{
				{
					Kind: SendNotification,
					Params: map[string]any{
						"type":       "email",
						"template":   "order_cancelled",
						"recipients": []any{"customer", "admin"},
					},
					Priority: 1,
				},
				{
					Kind: AddMetadata,
					Params: map[string]any{
						"data": map[string]any{
							"notification_sent":      true,
							"cancellation_processed": true,
						},
					},
					Priority: 2,
				},
			},
			Enabled:  true,
			Priority: 1,
		},
		{
			ID:          "rule_006",
			Name:        "Large Order Metadata",
			Description: "Flag orders with more than 10 line items",
			Event:       EventOrderTransition,
			Conditions: []Condition{
				{Kind: GreaterThan, Field: "total_products", Value: 10},
			},
			Actions: []Action{
				{
					Kind: AddMetadata,
					Params: map[string]any{
						"data": map[string]any{"large_order": true},
					},
					Priority: 6,
				},
			},
			Enabled:  true,
			Priority: 4,
		},
	})
}
