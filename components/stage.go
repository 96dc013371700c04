package components

import (
	"log"
	"math"

	"github.com/automoto/gridrunner/config"
	"github.com/yohamta/donburi"
)

// PlacementGrid is a dense (cell, lane) table of placement ids. Templates
// store kind ids; generated blocks store live instance ids.
type PlacementGrid struct {
	Cells int
	Lanes int
	IDs   []PlacementID
}

// NewPlacementGrid returns an all-empty grid.
func NewPlacementGrid(cells, lanes int) PlacementGrid {
	return PlacementGrid{Cells: cells, Lanes: lanes, IDs: make([]PlacementID, cells*lanes)}
}

// At returns the id at (cell, lane); 0 for out-of-range coordinates.
func (g PlacementGrid) At(cell, lane int) PlacementID {
	if cell < 0 || cell >= g.Cells || lane < 0 || lane >= g.Lanes {
		return 0
	}
	return g.IDs[cell*g.Lanes+lane]
}

// Set writes id at (cell, lane). Out-of-range writes are dropped.
func (g *PlacementGrid) Set(cell, lane int, id PlacementID) {
	if cell < 0 || cell >= g.Cells || lane < 0 || lane >= g.Lanes {
		return
	}
	g.IDs[cell*g.Lanes+lane] = id
}

// TemplateResult delivers a requested block template, possibly much later
// than the request and possibly from another goroutine.
type TemplateResult struct {
	Block int
	Grid  PlacementGrid // kind ids
	Err   error
}

// TemplateProvider hands out block templates asynchronously. deliver may be
// called from any goroutine and must never be called twice for one request;
// the stream applies it on the tick thread.
type TemplateProvider interface {
	RequestBlockTemplate(block int, deliver func(TemplateResult))
}

// StageBlock is one fixed-length track segment. Owned exclusively by the
// stage stream.
type StageBlock struct {
	ID             int
	OriginDistance float64
	Grid           PlacementGrid // instance ids, valid once Ready
	Ready          bool
	Empty          bool // template failed; queries return 0 forever

	instances []PlacementID
}

// StageStreamData generates blocks ahead of the player and evicts them
// behind, keeping block ids a contiguous window around the current block.
type StageStreamData struct {
	Length    float64 // block length in distance units, whole cells
	Lookahead float64
	Retention int // blocks kept behind the current block

	Provider TemplateProvider
	Registry *PlacementRegistry
	Pool     *PlacementPool

	blocks        map[int]*StageBlock
	lastGenerated int
	results       chan TemplateResult
	inert         bool
}

var Stage = donburi.NewComponentType[StageStreamData]()

// NewStageStream wires the stream to its collaborators. A missing
// collaborator disables the stream permanently: generation and queries become
// no-ops instead of panicking mid-run.
func NewStageStream(provider TemplateProvider, registry *PlacementRegistry, pool *PlacementPool) StageStreamData {
	s := StageStreamData{
		Length:        config.Stage.BlockLength,
		Lookahead:     config.Stage.Lookahead,
		Retention:     config.Stage.RetentionMargin,
		Provider:      provider,
		Registry:      registry,
		Pool:          pool,
		blocks:        make(map[int]*StageBlock),
		lastGenerated: -1,
		results:       make(chan TemplateResult, config.Stage.MailboxSize),
	}
	if provider == nil || registry == nil || pool == nil {
		log.Printf("stage stream missing a collaborator; world streaming disabled")
		s.inert = true
	}
	return s
}

// CellsPerBlock returns how many unit cells one block spans.
func (s *StageStreamData) CellsPerBlock() int { return int(s.Length) }

// CurrentBlock returns the block index containing distance.
func (s *StageStreamData) CurrentBlock(distance float64) int {
	return int(math.Floor(distance / s.Length))
}

// AdvanceFrontier generates every missing block up to the lookahead frontier,
// in increasing id order.
func (s *StageStreamData) AdvanceFrontier(distance float64) {
	if s.inert {
		return
	}
	frontier := s.CurrentBlock(distance) + int(math.Ceil(s.Lookahead/s.Length))
	for id := s.lastGenerated + 1; id <= frontier; id++ {
		s.generate(id)
	}
	if frontier > s.lastGenerated {
		s.lastGenerated = frontier
	}
}

func (s *StageStreamData) generate(id int) {
	block := &StageBlock{ID: id, OriginDistance: float64(id) * s.Length}
	s.blocks[id] = block

	s.Provider.RequestBlockTemplate(id, func(res TemplateResult) {
		res.Block = id
		select {
		case s.results <- res:
		default:
			// Degraded content beats a blocked delivery goroutine.
			log.Printf("template mailbox full, dropping delivery for block %d", id)
		}
	})
}

// DrainTemplates applies every delivered template. Runs on the tick thread
// only. Deliveries for evicted or already-resolved blocks are discarded.
func (s *StageStreamData) DrainTemplates() {
	if s.inert {
		return
	}
	for {
		select {
		case res := <-s.results:
			s.resolve(res)
		default:
			return
		}
	}
}

func (s *StageStreamData) resolve(res TemplateResult) {
	block, ok := s.blocks[res.Block]
	if !ok || block.Ready || block.Empty {
		return
	}
	if res.Err != nil {
		log.Printf("block %d template failed, leaving it empty: %v", res.Block, res.Err)
		block.Empty = true
		return
	}
	s.materialize(block, res.Grid)
}

// materialize copies the template into the block, acquiring a live instance
// per occupied cell. Pool exhaustion omits the cell.
func (s *StageStreamData) materialize(block *StageBlock, tpl PlacementGrid) {
	cells := s.CellsPerBlock()
	block.Grid = NewPlacementGrid(cells, tpl.Lanes)

	for cell := 0; cell < cells && cell < tpl.Cells; cell++ {
		for lane := 0; lane < tpl.Lanes; lane++ {
			kind := KindID(tpl.At(cell, lane))
			if kind == KindNone {
				continue
			}
			inst := s.Pool.Acquire(kind)
			if inst == nil {
				log.Printf("placement pool exhausted for %s, omitting cell (%d,%d) of block %d",
					KindName[kind], cell, lane, block.ID)
				continue
			}
			if rs, ok := inst.(resettable); ok {
				rs.reset(block.OriginDistance+float64(cell)+0.5, lane)
			}
			id := s.Registry.Register(inst)
			block.Grid.Set(cell, lane, id)
			block.instances = append(block.instances, id)
		}
	}
	block.Ready = true
}

// Evict destroys every block strictly behind the retention margin, returning
// its placement instances to the pool.
func (s *StageStreamData) Evict(currentBlock int) {
	if s.inert {
		return
	}
	cutoff := currentBlock - s.Retention
	for id, block := range s.blocks {
		if id >= cutoff {
			continue
		}
		for _, inst := range block.instances {
			if p := s.Registry.Resolve(inst); p != nil {
				s.Pool.Release(p)
			}
			s.Registry.Unregister(inst)
		}
		delete(s.blocks, id)
	}
}

// QueryPlacement resolves the placement id at a discrete cell. Absent,
// pending, failed and evicted blocks all answer 0.
func (s *StageStreamData) QueryPlacement(distanceIndex, lane int) PlacementID {
	if s.inert || distanceIndex < 0 {
		return 0
	}
	cells := s.CellsPerBlock()
	blockID := distanceIndex / cells
	block, ok := s.blocks[blockID]
	if !ok || !block.Ready {
		return 0
	}
	return block.Grid.At(distanceIndex-blockID*cells, lane)
}

// Block returns the registered block for id, or nil. Test and HUD helper.
func (s *StageStreamData) Block(id int) *StageBlock { return s.blocks[id] }

// Window returns the lowest and highest registered block ids. ok is false
// while no blocks exist.
func (s *StageStreamData) Window() (lo, hi int, ok bool) {
	first := true
	for id := range s.blocks {
		if first {
			lo, hi, first = id, id, false
			continue
		}
		if id < lo {
			lo = id
		}
		if id > hi {
			hi = id
		}
	}
	return lo, hi, !first
}
