package rules_test

import (
	"errors"
	"testing"

	"orderflow/internal/core/domain/model/rules"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRule(id string) rules.Rule {
	return rules.Rule{
		ID:      id,
		Name:    "Sample " + id,
		Event:   rules.EventOrderTransition,
		Actions: []rules.Action{{Kind: rules.AddMetadata, Priority: 1}},
		Enabled: true,
	}
}

func TestCatalogAdd(t *testing.T) {
	t.Run("should keep insertion order", func(t *testing.T) {
		catalog := rules.NewCatalog()

		require.NoError(t, catalog.Add(sampleRule("b")))
		require.NoError(t, catalog.Add(sampleRule("a")))

		all := catalog.All()
		require.Len(t, all, 2)
		assert.Equal(t, "b", all[0].ID)
		assert.Equal(t, "a", all[1].ID)
	})

	t.Run("should reject duplicate ids", func(t *testing.T) {
		var invalidErr *errs.ValueIsInvalidError
		catalog := rules.NewCatalog()
		require.NoError(t, catalog.Add(sampleRule("a")))

		err := catalog.Add(sampleRule("a"))

		require.Error(t, err)
		assert.True(t, errors.As(err, &invalidErr))
		assert.Len(t, catalog.All(), 1)
	})
}

func TestCatalogByID(t *testing.T) {
	catalog := rules.NewCatalogWithRules([]rules.Rule{sampleRule("a")})

	t.Run("should find existing rule", func(t *testing.T) {
		rule, err := catalog.ByID("a")

		require.NoError(t, err)
		assert.Equal(t, "a", rule.ID)
	})

	t.Run("should return not found for unknown id", func(t *testing.T) {
		var notFoundErr *errs.ObjectNotFoundError

		_, err := catalog.ByID("missing")

		require.Error(t, err)
		assert.True(t, errors.As(err, &notFoundErr))
	})
}

func TestCatalogByEvent(t *testing.T) {
	t.Run("should return only enabled rules for the event", func(t *testing.T) {
		disabled := sampleRule("b")
		disabled.Enabled = false
		other := sampleRule("c")
		other.Event = "other_event"

		catalog := rules.NewCatalogWithRules([]rules.Rule{sampleRule("a"), disabled, other})

		matched := catalog.ByEvent(rules.EventOrderTransition)

		require.Len(t, matched, 1)
		assert.Equal(t, "a", matched[0].ID)
	})
}

func TestCatalogUpdate(t *testing.T) {
	t.Run("should replace rule in place", func(t *testing.T) {
		catalog := rules.NewCatalogWithRules([]rules.Rule{sampleRule("a"), sampleRule("b")})

		updated := sampleRule("a")
		updated.Name = "Renamed"
		require.NoError(t, catalog.Update("a", updated))

		all := catalog.All()
		assert.Equal(t, "Renamed", all[0].Name)
		assert.Equal(t, "b", all[1].ID)
	})

	t.Run("should return not found for unknown id", func(t *testing.T) {
		catalog := rules.NewCatalog()

		require.Error(t, catalog.Update("missing", sampleRule("missing")))
	})
}

func TestCatalogDelete(t *testing.T) {
	t.Run("should remove the rule", func(t *testing.T) {
		catalog := rules.NewCatalogWithRules([]rules.Rule{sampleRule("a"), sampleRule("b")})

		require.NoError(t, catalog.Delete("a"))

		all := catalog.All()
		require.Len(t, all, 1)
		assert.Equal(t, "b", all[0].ID)
	})

	t.Run("should return not found for unknown id", func(t *testing.T) {
		catalog := rules.NewCatalog()

		require.Error(t, catalog.Delete("missing"))
	})
}

func TestCatalogToggle(t *testing.T) {
	t.Run("should disable and re-enable a rule", func(t *testing.T) {
		catalog := rules.NewCatalogWithRules([]rules.Rule{sampleRule("a")})

		require.NoError(t, catalog.Toggle("a", false))
		assert.Empty(t, catalog.ByEvent(rules.EventOrderTransition))

		require.NoError(t, catalog.Toggle("a", true))
		assert.Len(t, catalog.ByEvent(rules.EventOrderTransition), 1)
	})

	t.Run("should return not found for unknown id", func(t *testing.T) {
		catalog := rules.NewCatalog()

		require.Error(t, catalog.Toggle("missing", true))
	})
}
