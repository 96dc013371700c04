package systems

import (
	"image/color"

	"github.com/automoto/gridrunner/components"
	"github.com/automoto/gridrunner/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/colornames"
)

const (
	trackTop     = 110.0
	laneHeight   = 44.0
	runnerX      = 6.0  // runner's fixed distance offset from the window start
	windowLength = 40.0 // distance units visible on screen
)

// worldToScreenX maps a track distance into screen space for the current
// camera window.
func worldToScreenX(distance, windowStart float64, screenWidth int) float32 {
	return float32((distance - windowStart) * float64(screenWidth) / windowLength)
}

func laneCenterY(lane int) float32 {
	return float32(trackTop + (float64(lane)+0.5)*laneHeight)
}

// DrawRun renders the track, live placements and the runner.
func DrawRun(e *ecs.ECS, screen *ebiten.Image) {
	progEntry, ok := components.Progression.First(e.World)
	if !ok {
		return
	}
	runnerEntry, ok := components.Runner.First(e.World)
	if !ok {
		return
	}
	stageEntry, ok := components.Stage.First(e.World)
	if !ok {
		return
	}
	machineEntry, ok := components.Action.First(e.World)
	if !ok {
		return
	}

	prog := components.Progression.Get(progEntry)
	runner := components.Runner.Get(runnerEntry)
	stage := components.Stage.Get(stageEntry)
	machine := components.Action.Get(machineEntry)

	w := screen.Bounds().Dx()
	windowStart := prog.Distance - runnerX

	// Lane strips and dividers.
	for lane := 0; lane < runner.LaneCount; lane++ {
		top := float32(trackTop + float64(lane)*laneHeight)
		vector.DrawFilledRect(screen, 0, top, float32(w), float32(laneHeight), color.RGBA{30, 30, 40, 255}, false)
		vector.StrokeLine(screen, 0, top, float32(w), top, 1, colornames.Dimgray, false)
	}
	bottom := float32(trackTop + float64(runner.LaneCount)*laneHeight)
	vector.StrokeLine(screen, 0, bottom, float32(w), bottom, 1, colornames.Dimgray, false)

	// Finish line.
	if finish := config.Run.FinishDistance; finish >= windowStart && finish <= windowStart+windowLength {
		x := worldToScreenX(finish, windowStart, w)
		vector.StrokeLine(screen, x, float32(trackTop), x, bottom, 3, colornames.Lime, false)
	}

	// Placements.
	if stage.Registry != nil {
		stage.Registry.Each(func(_ components.PlacementID, p components.Placement) {
			dist, lane := p.GetPosition()
			if dist < windowStart || dist > windowStart+windowLength {
				return
			}
			x := worldToScreenX(dist, windowStart, w)
			y := laneCenterY(lane)
			switch obj := p.(type) {
			case *components.Coin:
				if obj.Collected() {
					return
				}
				vector.DrawFilledCircle(screen, x, y, 6, colornames.Gold, true)
			case *components.Hazard:
				clr := colornames.Orangered
				if obj.Kind() == components.KindBarrier {
					clr = colornames.Firebrick
				}
				vector.DrawFilledRect(screen, x-6, y-14, 12, 28, clr, false)
			}
		})
	}

	// Runner: jumps lift it off the strip, slides flatten it.
	rx := worldToScreenX(prog.Distance, windowStart, w)
	ry := laneCenterY(runner.Lane)
	rw, rh := float32(14), float32(26)
	switch machine.Current() {
	case machine.Jump:
		t := machine.Jump.Progress()
		ry -= float32(4 * t * (1 - t) * 60)
	case machine.Slide:
		rw, rh = 22, 12
	case machine.Attack:
		rw = 20
	}
	vector.DrawFilledRect(screen, rx-rw/2, ry-rh/2, rw, rh, colornames.Deepskyblue, false)
}
