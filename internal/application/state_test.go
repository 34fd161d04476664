package application

import (
	"testing"

	"github.com/bnema/repara-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func effectKinds(effects []Effect) []EffectKind {
	kinds := make([]EffectKind, 0, len(effects))
	for _, effect := range effects {
		kinds = append(kinds, effect.Kind)
	}
	return kinds
}

func TestProbeSucceededInitialLoadsLiveWithoutNotice(t *testing.T) {
	t.Parallel()

	next, effects := ProbeSucceeded(ProbeInitial)(NewState())

	assert.Equal(t, domain.ConnConnected, next.Conn)
	assert.Equal(t, []EffectKind{EffectLoadLive, EffectReloadStatistics}, effectKinds(effects))
}

func TestProbeSucceededAfterOfflineClearsRetryAndNotifies(t *testing.T) {
	t.Parallel()

	state := State{Conn: domain.ConnOffline, RetryShown: true, Loaded: true}

	next, effects := ProbeSucceeded(ProbePeriodic)(state)

	assert.Equal(t, domain.ConnConnected, next.Conn)
	assert.False(t, next.RetryShown)
	require.Len(t, effects, 3)
	assert.Equal(t, EffectNotify, effects[2].Kind)
	assert.Equal(t, domain.NoticeSuccess, effects[2].Notice.Level)
	assert.Contains(t, effects[2].Notice.Message, "restaurada")
}

func TestProbeFailedInitialLoadsLocal(t *testing.T) {
	t.Parallel()

	next, effects := ProbeFailed(ProbeInitial)(NewState())

	assert.Equal(t, domain.ConnOffline, next.Conn)
	assert.False(t, next.RetryShown)
	assert.Equal(t, []EffectKind{EffectLoadLocal, EffectReloadStatistics}, effectKinds(effects))
}

func TestProbeFailedPeriodicShowsRetryOnce(t *testing.T) {
	t.Parallel()

	state := State{Conn: domain.ConnOffline, Loaded: true}

	state, first := ProbeFailed(ProbePeriodic)(state)
	state, second := ProbeFailed(ProbePeriodic)(state)

	assert.True(t, state.RetryShown)
	require.Len(t, first, 1)
	assert.Equal(t, EffectShowRetry, first[0].Kind)
	assert.Equal(t, domain.NoticeActionRetry, first[0].Notice.Action)
	assert.Empty(t, second)
}

func TestProbeFailedManualReportsError(t *testing.T) {
	t.Parallel()

	state := State{Conn: domain.ConnOffline, Loaded: true, RetryShown: true}

	next, effects := ProbeFailed(ProbeManual)(state)

	assert.Equal(t, domain.ConnOffline, next.Conn)
	require.Len(t, effects, 1)
	assert.Equal(t, domain.NoticeError, effects[0].Notice.Level)
}

func TestForcedOfflineMatchesFailedInitialProbe(t *testing.T) {
	t.Parallel()

	forced, forcedEffects := ForcedOffline(NewState())
	failed, failedEffects := ProbeFailed(ProbeInitial)(NewState())

	assert.True(t, forced.Forced)
	assert.Equal(t, failed.Conn, forced.Conn)
	assert.Equal(t, failedEffects, forcedEffects)
}

func TestRemoteFailedNotifiesOnlyWhenConnected(t *testing.T) {
	t.Parallel()

	next, effects := RemoteFailed(State{Conn: domain.ConnConnected})
	assert.Equal(t, domain.ConnOffline, next.Conn)
	require.Len(t, effects, 1)
	assert.Equal(t, domain.NoticeWarning, effects[0].Notice.Level)

	next, effects = RemoteFailed(next)
	assert.Equal(t, domain.ConnOffline, next.Conn)
	assert.Empty(t, effects)
}

func TestToggledFlipsBothWays(t *testing.T) {
	t.Parallel()

	offline, effects := Toggled(State{Conn: domain.ConnConnected})
	assert.Equal(t, domain.ConnOffline, offline.Conn)
	assert.True(t, offline.Forced)
	assert.Equal(t, []EffectKind{EffectLoadDemo, EffectReloadStatistics, EffectNotify}, effectKinds(effects))

	online, effects := Toggled(offline)
	assert.Equal(t, domain.ConnConnected, online.Conn)
	assert.False(t, online.Forced)
	assert.Equal(t, []EffectKind{EffectLoadLive, EffectReloadStatistics, EffectNotify}, effectKinds(effects))
}

func TestTransitionsDoNotMutateInput(t *testing.T) {
	t.Parallel()

	state := State{Conn: domain.ConnConnected, All: domain.DemoTickets()}
	_, _ = RemoteFailed(state)

	assert.Equal(t, domain.ConnConnected, state.Conn)
}
