// internal/system/state.go
package system

import (
	"go-lane-defense/internal/component"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/event"
)

// StateSystem переключает фазу партии по событиям волн и конца игры.
type StateSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *StateSystem {
	ss := &StateSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(event.WaveStarted, ss)
	eventDispatcher.Subscribe(event.WaveStopped, ss)
	eventDispatcher.Subscribe(event.WaveCompleted, ss)
	eventDispatcher.Subscribe(event.GameOver, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveStarted:
		if data, ok := e.Data.(event.WaveStartedData); ok {
			s.ecs.GameState.Wave = data.Wave
		}
		s.SwitchToWaveState()
	case event.WaveStopped, event.WaveCompleted:
		s.SwitchToBuildState()
	case event.GameOver:
		if data, ok := e.Data.(event.GameOverData); ok {
			s.ecs.GameState.Won = data.Won
		}
		s.ecs.GameState.Phase = component.OverState
	}
}

func (s *StateSystem) SwitchToBuildState() {
	if s.ecs.GameState.Phase == component.OverState {
		return
	}
	s.ecs.GameState.Phase = component.BuildState
}

func (s *StateSystem) SwitchToWaveState() {
	if s.ecs.GameState.Phase == component.OverState {
		return
	}
	s.ecs.GameState.Phase = component.WaveState
}

func (s *StateSystem) Current() component.GamePhase {
	return s.ecs.GameState.Phase
}
