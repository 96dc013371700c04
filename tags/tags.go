package tags

import "github.com/yohamta/donburi"

var (
	Runner = donburi.NewTag().SetName("Runner")
	Stage  = donburi.NewTag().SetName("Stage")
	Run    = donburi.NewTag().SetName("Run")
	Input  = donburi.NewTag().SetName("Input")
)
