package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextAcceptedTransitions(t *testing.T) {
	cases := []struct {
		from  State
		event Event
		to    State
		scene SceneKind
	}{
		{Start, ShowMenu, Start, SceneFresh},
		{Cutscene, ShowMenu, Start, SceneFresh},
		{Gameplay, ShowMenu, Start, SceneFresh},
		{Lose, ShowMenu, Start, SceneFresh},
		{Start, Play, Cutscene, SceneFresh},
		{Cutscene, Advance, Gameplay, SceneGameplay},
		{Gameplay, Defeat, Lose, SceneFresh},
	}

	for _, tc := range cases {
		t.Run(tc.from.String()+"/"+tc.event.String(), func(t *testing.T) {
			plan, err := Next(tc.from, tc.event)
			require.NoError(t, err)
			assert.Equal(t, tc.from, plan.From)
			assert.Equal(t, tc.to, plan.To)
			assert.Equal(t, tc.scene, plan.Scene)
		})
	}
}

func TestNextRejectsOutOfOrderEvents(t *testing.T) {
	cases := []struct {
		from  State
		event Event
	}{
		{Start, Advance},
		{Start, Defeat},
		{Cutscene, Play},
		{Gameplay, Play},
		{Gameplay, Advance},
		{Lose, Defeat},
		{Lose, Advance},
	}

	for _, tc := range cases {
		_, err := Next(tc.from, tc.event)
		assert.ErrorIs(t, err, ErrInvalidTransition, "%s in %s", tc.event, tc.from)
	}

	_, err := Next(Start, Event(42))
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestPlansDetachBeforeActivateAndReleaseAfterReady(t *testing.T) {
	for _, from := range []State{Start, Cutscene, Gameplay, Lose} {
		for _, ev := range []Event{ShowMenu, Play, Advance, Defeat} {
			plan, err := Next(from, ev)
			if err != nil {
				continue
			}

			detach := plan.Index(DetachInput)
			activate := plan.Index(Activate)
			ready := plan.Index(AwaitReady)
			release := plan.Index(ReleasePrevious)

			require.NotEqual(t, -1, detach, "%s/%s", from, ev)
			require.NotEqual(t, -1, activate, "%s/%s", from, ev)
			assert.Less(t, detach, activate, "%s/%s", from, ev)
			assert.Less(t, ready, release, "%s/%s", from, ev)
			assert.Less(t, release, activate, "%s/%s", from, ev)
		}
	}
}

func TestGameplayPlanAwaitsBuildBeforeActivating(t *testing.T) {
	plan, err := Next(Cutscene, Advance)
	require.NoError(t, err)

	assert.Equal(t, -1, plan.Index(BuildScene))
	assert.Less(t, plan.Index(AwaitGameplay), plan.Index(AwaitReady))
	assert.Less(t, plan.Index(Activate), plan.Index(SpawnPlayer))
	assert.Equal(t, len(plan.Effects)-1, plan.Index(HideLoading))
}

func TestCutscenePlanStartsBuildFirst(t *testing.T) {
	plan, err := Next(Start, Play)
	require.NoError(t, err)

	assert.Equal(t, 0, plan.Index(StartGameplayBuild))
	assert.Equal(t, -1, plan.Index(ShowLoading))
	assert.Equal(t, -1, plan.Index(AwaitGameplay))
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "Gameplay", Gameplay.String())
	assert.Equal(t, "Unknown", State(9).String())
	assert.Equal(t, "Defeat", Defeat.String())
	assert.Equal(t, "AwaitGameplay", AwaitGameplay.String())
}
