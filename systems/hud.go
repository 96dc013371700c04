package systems

import (
	"fmt"

	"github.com/automoto/gridrunner/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD prints the run readout. Debug text keeps the client free of font
// assets; the core has no say in presentation anyway.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	progEntry, ok := components.Progression.First(e.World)
	if !ok {
		return
	}
	statusEntry, ok := components.RunStatus.First(e.World)
	if !ok {
		return
	}
	machineEntry, ok := components.Action.First(e.World)
	if !ok {
		return
	}

	prog := components.Progression.Get(progEntry)
	status := components.RunStatus.Get(statusEntry)
	machine := components.Action.Get(machineEntry)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("distance %6.1f   gear %d   speed %4.1f", prog.Distance, prog.Gear, prog.Speed), 8, 8)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("score %d   state %s", status.Score, machine.Current().Name()), 8, 24)
	if cd := machine.Attack.CooldownRemaining(); cd > 0 {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("attack ready in %.1fs", cd), 8, 40)
	}
	if status.Best > 0 {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("best %6.1f", status.Best), 8, 56)
	}
	if status.Paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED - press Esc to resume", 240, 170)
	}
}
