package observability_test

import (
	"context"
	"testing"

	"github.com/aretw0/asciiwalk"
	"github.com/aretw0/asciiwalk/pkg/adapters/memory"
	"github.com/aretw0/asciiwalk/pkg/domain"
	"github.com/aretw0/asciiwalk/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Hooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)
	eng := asciiwalk.New(asciiwalk.WithLifecycleHooks(m.Hooks()))
	ctx := context.Background()

	_, err := eng.Walk(ctx, "@\n|\nA\n|\nx")
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.WalksStarted))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.Steps))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Letters))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Walks.WithLabelValues(observability.OutcomeCompleted)))

	// No start marker: nothing is recorded.
	_, err = eng.Walk(ctx, "A-x")
	assert.ErrorIs(t, err, domain.ErrStartNotFound)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.WalksStarted))

	count, err := testutil.GatherAndCount(reg, "asciiwalk_walk_steps")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMetrics_StepLimitOutcome(t *testing.T) {
	m := observability.NewMetrics(prometheus.NewRegistry())
	eng := asciiwalk.New(asciiwalk.WithLifecycleHooks(m.Hooks()), asciiwalk.WithMaxSteps(5))

	_, err := eng.Walk(context.Background(), "@-+\n| |\n+-+")
	assert.ErrorIs(t, err, domain.ErrStepLimitExceeded)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Walks.WithLabelValues(observability.OutcomeStepLimit)))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.Steps))
}

func TestMetrics_CacheHits(t *testing.T) {
	m := observability.NewMetrics(prometheus.NewRegistry())
	eng := asciiwalk.New(
		asciiwalk.WithLifecycleHooks(m.Hooks()),
		asciiwalk.WithStore(memory.NewStore()),
	)
	ctx := context.Background()

	for range 3 {
		_, err := eng.Walk(ctx, "@\n|\nA\n|\nx")
		require.NoError(t, err)
	}

	assert.Equal(t, 3.0, testutil.ToFloat64(m.WalksStarted))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.Walks.WithLabelValues(observability.OutcomeCompleted)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CacheHits))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.Steps), "cached walks add no steps")
}

func TestChain(t *testing.T) {
	var order []string
	a := domain.LifecycleHooks{OnStep: func(context.Context, *domain.StepEvent) { order = append(order, "a") }}
	b := domain.LifecycleHooks{
		OnStep:    func(context.Context, *domain.StepEvent) { order = append(order, "b") },
		OnWalkEnd: func(context.Context, *domain.WalkEvent) { order = append(order, "end") },
	}

	eng := asciiwalk.New(asciiwalk.WithLifecycleHooks(observability.Chain(a, b)))
	_, err := eng.Walk(context.Background(), "@x")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "end"}, order)
}
