package asciiwalk_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/asciiwalk"
	"github.com/aretw0/asciiwalk/pkg/adapters/memory"
	"github.com/aretw0/asciiwalk/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mapBasic = `
@---A---+
        |
x-B-+   C
    |   |
    +---+
`

const mapLoop = "@-+\n| |\n+-+"

func TestFollow(t *testing.T) {
	letters, chars, ok := asciiwalk.Follow(mapBasic)
	require.True(t, ok)
	assert.Equal(t, "ACB", letters)
	assert.Equal(t, "@---A---+|C|+---+|+-B-x", chars)

	_, _, ok = asciiwalk.Follow("")
	assert.False(t, ok)

	_, _, ok = asciiwalk.Follow("-A-x")
	assert.False(t, ok)
}

func TestEngine_Walk(t *testing.T) {
	eng := asciiwalk.New()
	ctx := context.Background()

	res, err := eng.Walk(ctx, "@\n|\n|\n|\nA\n|\nx")
	require.NoError(t, err)
	assert.Equal(t, "A", res.Letters)
	assert.Equal(t, "@|||A|x", res.Characters)
	assert.Equal(t, 6, res.Steps)
	assert.Nil(t, res.Trace, "trace is opt-in")

	_, err = eng.Walk(ctx, "no start here")
	assert.ErrorIs(t, err, domain.ErrStartNotFound)
}

func TestEngine_WithTrace(t *testing.T) {
	eng := asciiwalk.New(asciiwalk.WithTrace(true))

	res, err := eng.Walk(context.Background(), "@-x")
	require.NoError(t, err)
	assert.Equal(t, []domain.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}, res.Trace)
}

func TestEngine_Store(t *testing.T) {
	store := memory.NewStore()
	steps := 0
	eng := asciiwalk.New(
		asciiwalk.WithStore(store),
		asciiwalk.WithLifecycleHooks(domain.LifecycleHooks{
			OnStep: func(context.Context, *domain.StepEvent) { steps++ },
		}),
	)
	ctx := context.Background()

	first, err := eng.Walk(ctx, mapBasic)
	require.NoError(t, err)
	walked := steps
	require.Positive(t, walked)

	keys, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{domain.MapKey(mapBasic)}, keys)

	second, err := eng.Walk(ctx, mapBasic)
	require.NoError(t, err)
	assert.Equal(t, walked, steps, "second walk must be served from the store")
	assert.Equal(t, first.Letters, second.Letters)
	assert.Equal(t, first.Characters, second.Characters)
}

func TestEngine_MaxSteps(t *testing.T) {
	store := memory.NewStore()
	eng := asciiwalk.New(asciiwalk.WithMaxSteps(8), asciiwalk.WithStore(store))
	ctx := context.Background()

	res, err := eng.Walk(ctx, mapLoop)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrStepLimitExceeded))
	require.NotNil(t, res)
	assert.Equal(t, 8, res.Steps)

	keys, _ := store.List(ctx)
	assert.Empty(t, keys, "incomplete walks are not cached")
}

func TestEngine_MaxStepsSharedStore(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	full, err := asciiwalk.New(asciiwalk.WithStore(store)).Walk(ctx, mapBasic)
	require.NoError(t, err)
	require.Greater(t, full.Steps, 3)

	t.Run("Lower limit walks again", func(t *testing.T) {
		res, err := asciiwalk.New(asciiwalk.WithStore(store), asciiwalk.WithMaxSteps(3)).Walk(ctx, mapBasic)
		assert.ErrorIs(t, err, domain.ErrStepLimitExceeded)
		require.NotNil(t, res)
		assert.Equal(t, 3, res.Steps)
	})

	t.Run("Higher limit uses the store", func(t *testing.T) {
		steps := 0
		eng := asciiwalk.New(
			asciiwalk.WithStore(store),
			asciiwalk.WithMaxSteps(full.Steps),
			asciiwalk.WithLifecycleHooks(domain.LifecycleHooks{
				OnStep: func(context.Context, *domain.StepEvent) { steps++ },
			}),
		)
		res, err := eng.Walk(ctx, mapBasic)
		require.NoError(t, err)
		assert.Equal(t, full.Characters, res.Characters)
		assert.Zero(t, steps)
	})

	stored, err := store.Load(ctx, domain.MapKey(mapBasic))
	require.NoError(t, err)
	assert.Equal(t, full.Steps, stored.Steps, "a bounded walk must not overwrite the stored result")
}

func TestEngine_StoreHitFiresWalkHooks(t *testing.T) {
	var ends []*domain.WalkEvent
	eng := asciiwalk.New(
		asciiwalk.WithStore(memory.NewStore()),
		asciiwalk.WithLifecycleHooks(domain.LifecycleHooks{
			OnWalkEnd: func(_ context.Context, e *domain.WalkEvent) { ends = append(ends, e) },
		}),
	)
	ctx := context.Background()

	for range 2 {
		_, err := eng.Walk(ctx, mapBasic)
		require.NoError(t, err)
	}

	require.Len(t, ends, 2)
	assert.False(t, ends[0].Cached)
	assert.True(t, ends[1].Cached)
	assert.Equal(t, ends[0].Steps, ends[1].Steps)
	assert.Equal(t, ends[0].Start, ends[1].Start)
}

func TestEngine_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := asciiwalk.New().Walk(ctx, mapLoop)
	assert.ErrorIs(t, err, context.Canceled)
}
