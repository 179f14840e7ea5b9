package mirror

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/mirrorskill/core"
	"github.com/hupe1980/mirrorskill/internal/testutil"
	"github.com/hupe1980/mirrorskill/persistence"
)

func TestLoadStateInterceptor_CompletePair(t *testing.T) {
	store := seeded(t, core.State{Name: "Snow White", Characteristic: "prettiest"})
	in := testutil.NewEnvelopeBuilder().Input(store)

	require.NoError(t, LoadStateInterceptor{}.Process(in))
	assert.Equal(t, core.State{Name: "Snow White", Characteristic: "prettiest"}, in.Attributes.SessionState())
}

func TestLoadStateInterceptor_Idempotent(t *testing.T) {
	store := seeded(t, core.State{Name: "Snow White", Characteristic: "prettiest"})
	in := testutil.NewEnvelopeBuilder().Input(store)

	require.NoError(t, LoadStateInterceptor{}.Process(in))
	first := in.Attributes.SessionState()
	require.NoError(t, LoadStateInterceptor{}.Process(in))
	assert.Equal(t, first, in.Attributes.SessionState())

	// a fresh turn with the same persisted state yields the same session state
	again := testutil.NewEnvelopeBuilder().Input(store)
	require.NoError(t, LoadStateInterceptor{}.Process(again))
	assert.Equal(t, first, again.Attributes.SessionState())
}

func TestLoadStateInterceptor_IncompletePairLeavesSession(t *testing.T) {
	for _, persisted := range []core.State{{}, {Name: "Snow White"}, {Characteristic: "prettiest"}} {
		store := seeded(t, persisted)
		in := testutil.NewEnvelopeBuilder().Input(store)
		require.NoError(t, LoadStateInterceptor{}.Process(in))
		assert.True(t, in.Attributes.SessionState().IsZero())
	}
}

func TestLoadStateInterceptor_NeverWrites(t *testing.T) {
	store := persistence.NewInMemoryStore()
	in := testutil.NewEnvelopeBuilder().Input(store)
	require.NoError(t, LoadStateInterceptor{}.Process(in))
	assert.Equal(t, 0, store.Len())

	got, err := store.Get(context.Background(), testutil.DefaultUserID)
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}
