// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State - экран хоста: меню, игра или пауза.
type State interface {
	Enter()
	Update(deltaTime float64) // секунды
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine держит стек экранов. Обновляется только верхний,
// рисуются все снизу вверх: пауза лежит поверх замороженной игры.
type StateMachine struct {
	stack []State
}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState закрывает все экраны стека сверху вниз и открывает newState.
// nil оставляет стек пустым.
func (sm *StateMachine) SetState(newState State) {
	for len(sm.stack) > 0 {
		sm.pop()
	}
	if newState != nil {
		sm.Push(newState)
	}
}

// Push кладёт экран поверх текущего; нижний не получает Exit.
func (sm *StateMachine) Push(s State) {
	sm.stack = append(sm.stack, s)
	s.Enter()
}

// Pop закрывает верхний экран. Последний экран не снимается: хосту
// всегда есть что рисовать.
func (sm *StateMachine) Pop() bool {
	if len(sm.stack) < 2 {
		return false
	}
	sm.pop()
	return true
}

func (sm *StateMachine) pop() {
	top := sm.stack[len(sm.stack)-1]
	sm.stack[len(sm.stack)-1] = nil
	sm.stack = sm.stack[:len(sm.stack)-1]
	top.Exit()
}

// Current - верхний экран или nil.
func (sm *StateMachine) Current() State {
	if len(sm.stack) == 0 {
		return nil
	}
	return sm.stack[len(sm.stack)-1]
}

func (sm *StateMachine) Depth() int { return len(sm.stack) }

func (sm *StateMachine) Update(deltaTime float64) {
	if top := sm.Current(); top != nil {
		top.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	for _, s := range sm.stack {
		s.Draw(screen)
	}
}
