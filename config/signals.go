package config

import "github.com/hajimehoshi/ebiten/v2"

// SignalID identifies a decoded logical input signal. The core consumes these;
// raw device polling happens only in the client.
type SignalID int

const (
	SignalJump SignalID = iota
	SignalSlide
	SignalAttack
	SignalMoveLeft
	SignalMoveRight
	SignalPause

	SignalCount
)

// SignalName maps signals to display names for logs and the HUD.
var SignalName = map[SignalID]string{
	SignalJump:      "jump",
	SignalSlide:     "slide",
	SignalAttack:    "attack",
	SignalMoveLeft:  "left",
	SignalMoveRight: "right",
	SignalPause:     "pause",
}

// SignalBinding maps a signal to the keys that trigger it.
type SignalBinding struct {
	Keys []ebiten.Key
}

// Bindings is iterated by the client decode system in declaration order;
// Jump before Slide before Attack keeps the priority policy for inputs
// arriving on the same tick.
var Bindings = []struct {
	Signal  SignalID
	Binding SignalBinding
}{
	{SignalJump, SignalBinding{Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyW, ebiten.KeyUp}}},
	{SignalSlide, SignalBinding{Keys: []ebiten.Key{ebiten.KeyS, ebiten.KeyDown}}},
	{SignalAttack, SignalBinding{Keys: []ebiten.Key{ebiten.KeyJ, ebiten.KeyEnter}}},
	{SignalMoveLeft, SignalBinding{Keys: []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft}}},
	{SignalMoveRight, SignalBinding{Keys: []ebiten.Key{ebiten.KeyD, ebiten.KeyRight}}},
	{SignalPause, SignalBinding{Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP}}},
}
