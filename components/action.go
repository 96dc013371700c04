package components

import (
	"github.com/automoto/gridrunner/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// StateTag classifies action states: FreeMove states accept transitions at
// any time, Blocking states refuse them until IsExit reports true.
type StateTag int

const (
	FreeMove StateTag = iota
	Blocking
)

// ActionState is one state of the runner's action machine. Exactly one state
// is active at any time.
type ActionState interface {
	Name() string
	Tag() StateTag
	Enter()
	Update(dt float64)
	IsExit() bool
}

// entryGate is implemented by states that may refuse activation (the attack
// cooldown). A refused transition leaves the machine where it was.
type entryGate interface {
	ready() bool
}

// IdleState is the free-move rest state. It never exits on its own and is
// always re-enterable.
type IdleState struct{}

func (s *IdleState) Name() string      { return "idle" }
func (s *IdleState) Tag() StateTag     { return FreeMove }
func (s *IdleState) Enter()            {}
func (s *IdleState) Update(dt float64) {}
func (s *IdleState) IsExit() bool      { return false }

// JumpState blocks for Duration seconds and exposes the aerial window during
// which ground placements cannot hit the runner.
type JumpState struct {
	Duration    float64
	WindowStart float64 // normalized [0,1]
	WindowEnd   float64 // normalized [0,1]

	elapsed float64
}

func (s *JumpState) Name() string      { return "jump" }
func (s *JumpState) Tag() StateTag     { return Blocking }
func (s *JumpState) Enter()            { s.elapsed = 0 }
func (s *JumpState) Update(dt float64) { s.elapsed += dt }
func (s *JumpState) IsExit() bool      { return s.elapsed >= s.Duration }

// InAerialWindow reports whether the normalized jump progress is inside
// [WindowStart, WindowEnd].
func (s *JumpState) InAerialWindow() bool {
	if s.Duration <= 0 {
		return false
	}
	t := s.elapsed / s.Duration
	return t >= s.WindowStart && t <= s.WindowEnd
}

// Progress returns normalized jump time, for the presentation layer.
func (s *JumpState) Progress() float64 {
	if s.Duration <= 0 {
		return 1
	}
	t := s.elapsed / s.Duration
	if t > 1 {
		t = 1
	}
	return t
}

// SlideState blocks for Duration seconds and drives a speed boost curve the
// progression step samples every tick.
type SlideState struct {
	Duration float64

	boostStart float64
	tween      *gween.Tween
	mult       float64
	elapsed    float64
}

// NewSlideState builds a slide whose multiplier eases from boostStart down to
// boostEnd over the slide duration.
func NewSlideState(duration, boostStart, boostEnd float64) *SlideState {
	return &SlideState{
		Duration:   duration,
		boostStart: boostStart,
		tween:      gween.New(float32(boostStart), float32(boostEnd), float32(duration), ease.OutQuad),
		mult:       boostStart,
	}
}

func (s *SlideState) Name() string  { return "slide" }
func (s *SlideState) Tag() StateTag { return Blocking }

func (s *SlideState) Enter() {
	s.elapsed = 0
	s.mult = s.boostStart
	s.tween.Reset()
}

func (s *SlideState) Update(dt float64) {
	s.elapsed += dt
	v, _ := s.tween.Update(float32(dt))
	s.mult = float64(v)
}

func (s *SlideState) IsExit() bool { return s.elapsed >= s.Duration }

// SpeedMultiplier is sampled by the progression step while the slide is
// active.
func (s *SlideState) SpeedMultiplier() float64 { return s.mult }

// AttackState blocks for Duration seconds and re-arms a cooldown on entry.
// While the cooldown runs, entry is refused and the machine stays put.
type AttackState struct {
	Duration float64
	Cooldown float64

	elapsed      float64
	cooldownLeft float64
}

func (s *AttackState) Name() string  { return "attack" }
func (s *AttackState) Tag() StateTag { return Blocking }

func (s *AttackState) Enter() {
	s.elapsed = 0
	s.cooldownLeft = s.Cooldown
}

func (s *AttackState) Update(dt float64) { s.elapsed += dt }
func (s *AttackState) IsExit() bool      { return s.elapsed >= s.Duration }

func (s *AttackState) ready() bool { return s.cooldownLeft <= 0 }

// tickCooldown runs every machine tick, active or not.
func (s *AttackState) tickCooldown(dt float64) {
	if s.cooldownLeft <= 0 {
		return
	}
	s.cooldownLeft -= dt
	if s.cooldownLeft < 0 {
		s.cooldownLeft = 0
	}
}

// CooldownRemaining returns seconds until the next attack may fire.
func (s *AttackState) CooldownRemaining() float64 { return s.cooldownLeft }

// ActionMachine owns the single active action state. Transitions out of a
// Blocking state are refused until the state signals exit; the machine then
// returns to Idle on its own during Tick.
type ActionMachine struct {
	Idle   *IdleState
	Jump   *JumpState
	Slide  *SlideState
	Attack *AttackState

	// Notify is a one-way, fire-and-forget state-name callback for the
	// presentation layer. May be nil.
	Notify func(stateName string)

	current        ActionState
	exitedBlocking bool
}

var Action = donburi.NewComponentType[ActionMachine]()

// NewActionMachine builds the four states from the action config and starts
// in Idle.
func NewActionMachine() ActionMachine {
	cfg := config.Action
	m := ActionMachine{
		Idle: &IdleState{},
		Jump: &JumpState{
			Duration:    cfg.JumpDuration,
			WindowStart: cfg.JumpWindowStart,
			WindowEnd:   cfg.JumpWindowEnd,
		},
		Slide:  NewSlideState(cfg.SlideDuration, cfg.SlideBoostStart, cfg.SlideBoostEnd),
		Attack: &AttackState{Duration: cfg.AttackDuration, Cooldown: cfg.AttackCooldown},
	}
	m.current = m.Idle
	return m
}

// Current returns the active state.
func (m *ActionMachine) Current() ActionState { return m.current }

// TransitionTo attempts to activate target. It is a no-op success when target
// is already active, and fails without side effects when the active state is
// Blocking and not exit-ready, or when the target refuses entry.
func (m *ActionMachine) TransitionTo(target ActionState) bool {
	if target == nil {
		return false
	}
	if target == m.current {
		return true
	}
	if m.current.Tag() == Blocking && !m.current.IsExit() {
		return false
	}
	if gate, ok := target.(entryGate); ok && !gate.ready() {
		return false
	}
	m.current = target
	target.Enter()
	if m.Notify != nil {
		m.Notify(target.Name())
	}
	return true
}

// Tick updates the active state, runs the attack cooldown regardless of
// activity, and auto-returns to Idle once the active state signals exit.
func (m *ActionMachine) Tick(dt float64) {
	m.current.Update(dt)
	m.Attack.tickCooldown(dt)

	if !m.current.IsExit() {
		return
	}
	wasBlocking := m.current.Tag() == Blocking
	m.TransitionTo(m.Idle)
	if wasBlocking {
		m.exitedBlocking = true
	}
}

// ConsumeBlockingExit reports whether a Blocking state finished since the
// last call, clearing the flag. The input arbiter drains its buffer on it.
func (m *ActionMachine) ConsumeBlockingExit() bool {
	exited := m.exitedBlocking
	m.exitedBlocking = false
	return exited
}
