package components

import (
	"github.com/automoto/gridrunner/config"
	"github.com/yohamta/donburi"
)

// InputDecodeData stores the current and previous frame's pressed state per
// logical signal. Rising edges become decoded signals for the arbiter; the
// core never sees raw device input.
type InputDecodeData struct {
	Current  [config.SignalCount]bool
	Previous [config.SignalCount]bool
}

var InputDecode = donburi.NewComponentType[InputDecodeData]()

// JustPressed reports a rising edge for sig this frame.
func (d *InputDecodeData) JustPressed(sig config.SignalID) bool {
	return d.Current[sig] && !d.Previous[sig]
}
