package config

// RunConfig contains progression and run-wide tuning values
type RunConfig struct {
	// Speed ramp
	MinSpeed         float64 // units/second at gear 0
	MaxSpeed         float64 // units/second at MaxGear
	GearStepDistance float64 // distance per gear step
	MaxGear          int

	// Lanes
	LaneCount int
	StartLane int

	// Win condition
	FinishDistance float64

	// Scoring
	CoinScore int
}

// StageConfig contains world streaming configuration
type StageConfig struct {
	BlockLength     float64 // length of one block in distance units
	Lookahead       float64 // distance units generated ahead of the player
	RetentionMargin int     // blocks kept behind the current block

	// Template delivery mailbox; a full mailbox drops the delivery
	MailboxSize int

	// Seed for per-block template selection
	TemplateSeed int64

	// Placement pool size per kind
	PoolSizePerKind int
}

// ActionConfig contains action state machine tuning values
type ActionConfig struct {
	// Jump
	JumpDuration    float64
	JumpWindowStart float64 // normalized [0,1]
	JumpWindowEnd   float64 // normalized [0,1]

	// Slide
	SlideDuration   float64
	SlideBoostStart float64 // speed multiplier at slide start
	SlideBoostEnd   float64 // speed multiplier at slide end

	// Attack
	AttackDuration float64
	AttackCooldown float64
}

// InputConfig contains input arbitration tuning values
type InputConfig struct {
	QueueCapacity int     // buffered inputs kept while an action blocks
	BufferWindow  float64 // seconds a buffered input stays honorable
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Autopilot   bool   // steer the runner automatically (headless demo)
	ConfigPath  string // optional YAML override file
	WatchConfig bool   // hot-reload the override file on change
}

// Config holds general game configuration
type Config struct {
	Width    int
	Height   int
	TickRate int
}

// Global configuration instances
var C *Config
var Run RunConfig
var Stage StageConfig
var Action ActionConfig
var Input InputConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:    640,
		Height:   360,
		TickRate: 60,
	}

	Run = RunConfig{
		MinSpeed:         8.0,
		MaxSpeed:         22.0,
		GearStepDistance: 250.0,
		MaxGear:          8,
		LaneCount:        3,
		StartLane:        1,
		FinishDistance:   5000.0,
		CoinScore:        10,
	}

	Stage = StageConfig{
		BlockLength:     100.0,
		Lookahead:       300.0,
		RetentionMargin: 2,
		MailboxSize:     32,
		TemplateSeed:    1,
		PoolSizePerKind: 64,
	}

	Action = ActionConfig{
		JumpDuration:    1.0,
		JumpWindowStart: 0.1,
		JumpWindowEnd:   0.8,
		SlideDuration:   0.7,
		SlideBoostStart: 1.35,
		SlideBoostEnd:   1.0,
		AttackDuration:  0.4,
		AttackCooldown:  1.5,
	}

	Input = InputConfig{
		QueueCapacity: 3,
		BufferWindow:  0.25,
	}

	Debug = DebugConfig{}
}
