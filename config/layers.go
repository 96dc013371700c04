package config

import "github.com/yohamta/donburi/ecs"

// Default is the single ECS layer the game uses.
const Default = ecs.LayerDefault
