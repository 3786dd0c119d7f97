// Package state defines the application screens and the transition table
// between them. Planning a transition is pure; executing the returned effects
// is the orchestrator's job.
package state

import (
	"errors"
	"fmt"
)

// State is the top-level application screen
type State int

const (
	Start State = iota
	Cutscene
	Gameplay
	Lose
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case Start:
		return "Start"
	case Cutscene:
		return "Cutscene"
	case Gameplay:
		return "Gameplay"
	case Lose:
		return "Lose"
	default:
		return "Unknown"
	}
}

// Event requests a transition
type Event int

const (
	ShowMenu Event = iota // go to the start menu
	Play                  // leave the menu for the cutscene
	Advance               // leave the cutscene for gameplay
	Defeat                // leave gameplay for the lose screen
)

// String returns the string representation of the event
func (e Event) String() string {
	switch e {
	case ShowMenu:
		return "ShowMenu"
	case Play:
		return "Play"
	case Advance:
		return "Advance"
	case Defeat:
		return "Defeat"
	default:
		return "Unknown"
	}
}

// SceneKind tells the orchestrator where the incoming scene comes from
type SceneKind int

const (
	// SceneFresh is built on entry and disposed on the next transition.
	SceneFresh SceneKind = iota
	// SceneGameplay is the cached gameplay scene; it is retained when left.
	SceneGameplay
)

// Effect is one step of a transition
type Effect int

const (
	ShowLoading Effect = iota
	StartGameplayBuild
	DetachInput
	BuildScene
	AwaitGameplay
	AwaitReady
	HideLoading
	ReleasePrevious
	Activate
	SpawnPlayer
)

// String returns the string representation of the effect
func (e Effect) String() string {
	switch e {
	case ShowLoading:
		return "ShowLoading"
	case StartGameplayBuild:
		return "StartGameplayBuild"
	case DetachInput:
		return "DetachInput"
	case BuildScene:
		return "BuildScene"
	case AwaitGameplay:
		return "AwaitGameplay"
	case AwaitReady:
		return "AwaitReady"
	case HideLoading:
		return "HideLoading"
	case ReleasePrevious:
		return "ReleasePrevious"
	case Activate:
		return "Activate"
	case SpawnPlayer:
		return "SpawnPlayer"
	default:
		return "Unknown"
	}
}

// Plan is the outcome of a transition request
type Plan struct {
	From    State
	To      State
	Scene   SceneKind
	Effects []Effect
}

// ErrInvalidTransition is returned when an event is not accepted in the current state
var ErrInvalidTransition = errors.New("invalid transition")

// Next computes the plan for handling ev while in current.
func Next(current State, ev Event) (Plan, error) {
	plan := Plan{From: current}

	switch ev {
	case ShowMenu:
		plan.To = Start
		plan.Scene = SceneFresh
		plan.Effects = []Effect{ShowLoading, DetachInput, BuildScene, AwaitReady, HideLoading, ReleasePrevious, Activate}

	case Play:
		if current != Start {
			return Plan{}, fmt.Errorf("%w: %s in %s", ErrInvalidTransition, ev, current)
		}
		plan.To = Cutscene
		plan.Scene = SceneFresh
		plan.Effects = []Effect{StartGameplayBuild, DetachInput, BuildScene, AwaitReady, ReleasePrevious, Activate}

	case Advance:
		if current != Cutscene {
			return Plan{}, fmt.Errorf("%w: %s in %s", ErrInvalidTransition, ev, current)
		}
		plan.To = Gameplay
		plan.Scene = SceneGameplay
		plan.Effects = []Effect{ShowLoading, DetachInput, AwaitGameplay, AwaitReady, ReleasePrevious, Activate, SpawnPlayer, HideLoading}

	case Defeat:
		if current != Gameplay {
			return Plan{}, fmt.Errorf("%w: %s in %s", ErrInvalidTransition, ev, current)
		}
		plan.To = Lose
		plan.Scene = SceneFresh
		plan.Effects = []Effect{ShowLoading, DetachInput, BuildScene, AwaitReady, HideLoading, ReleasePrevious, Activate}

	default:
		return Plan{}, fmt.Errorf("%w: unknown event %d", ErrInvalidTransition, int(ev))
	}

	return plan, nil
}

// Index returns the position of e in the plan, or -1.
func (p Plan) Index(e Effect) int {
	for i, effect := range p.Effects {
		if effect == e {
			return i
		}
	}
	return -1
}
