package system

import "github.com/milk9111/platformer/component"

// Observer receives advisory notifications for cross-cutting concerns such as
// sound and logging. Implementations must not mutate the physics state.
type Observer interface {
	OnJumpSuccess(a *component.Actor, d JumpDecision)
	OnInvalidCollision(c InvalidCollision)
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are ignored.
type ObserverFuncs struct {
	JumpSuccess      func(a *component.Actor, d JumpDecision)
	InvalidCollision func(c InvalidCollision)
}

func (f ObserverFuncs) OnJumpSuccess(a *component.Actor, d JumpDecision) {
	if f.JumpSuccess != nil {
		f.JumpSuccess(a, d)
	}
}

func (f ObserverFuncs) OnInvalidCollision(c InvalidCollision) {
	if f.InvalidCollision != nil {
		f.InvalidCollision(c)
	}
}

// MultiObserver fans notifications out in order.
type MultiObserver []Observer

func (m MultiObserver) OnJumpSuccess(a *component.Actor, d JumpDecision) {
	for _, o := range m {
		if o != nil {
			o.OnJumpSuccess(a, d)
		}
	}
}

func (m MultiObserver) OnInvalidCollision(c InvalidCollision) {
	for _, o := range m {
		if o != nil {
			o.OnInvalidCollision(c)
		}
	}
}

type nopObserver struct{}

func (nopObserver) OnJumpSuccess(*component.Actor, JumpDecision) {}
func (nopObserver) OnInvalidCollision(InvalidCollision)          {}
