package components

// PlacementID identifies a live placement instance; 0 means none.
type PlacementID = int

// ObjType classifies what touching a placement does.
type ObjType int

const (
	ObjSafe ObjType = iota
	ObjDamage
)

// KindID identifies a placement kind as authored in block templates.
type KindID int

const (
	KindNone KindID = iota
	KindCoin
	KindSpike
	KindBarrier
)

// KindByName maps template object names to kinds.
var KindByName = map[string]KindID{
	"coin":    KindCoin,
	"spike":   KindSpike,
	"barrier": KindBarrier,
}

// KindName is the reverse of KindByName, for logs and the game-over cause.
var KindName = map[KindID]string{
	KindCoin:    "coin",
	KindSpike:   "spike",
	KindBarrier: "barrier",
}

// Placement is the capability object a grid cell resolves to. Implementations
// live outside the hit path; the detector only ever calls these three.
type Placement interface {
	ObjType() ObjType
	GetPosition() (distance float64, lane int)
	Action()
}

// Kinded exposes the template kind of a placement, for pooling and display.
type Kinded interface {
	Kind() KindID
}

// resettable lets the pool re-stage recycled instances at a new cell.
type resettable interface {
	reset(distance float64, lane int)
}

// Coin is a Safe placement that scores once and ignores repeat hits. It
// manages its own scoring through the progress sink.
type Coin struct {
	distance float64
	lane     int
	value    int
	taken    bool
	sink     ProgressSink
}

// NewCoin builds a coin worth value points reporting into sink.
func NewCoin(value int, sink ProgressSink) *Coin {
	return &Coin{value: value, sink: sink}
}

func (c *Coin) ObjType() ObjType              { return ObjSafe }
func (c *Coin) Kind() KindID                  { return KindCoin }
func (c *Coin) GetPosition() (float64, int)   { return c.distance, c.lane }
func (c *Coin) Collected() bool               { return c.taken }
func (c *Coin) reset(distance float64, lane int) {
	c.distance = distance
	c.lane = lane
	c.taken = false
}

func (c *Coin) Action() {
	if c.taken {
		return
	}
	c.taken = true
	if c.sink != nil {
		c.sink.AddScore(c.value)
	}
}

// Hazard is a Damage placement. Its Action only marks the hit for the
// presentation layer; the hit detector reports the game over.
type Hazard struct {
	kind     KindID
	distance float64
	lane     int
	hit      bool
}

// NewHazard builds a hazard of the given kind.
func NewHazard(kind KindID) *Hazard {
	return &Hazard{kind: kind}
}

func (h *Hazard) ObjType() ObjType            { return ObjDamage }
func (h *Hazard) Kind() KindID                { return h.kind }
func (h *Hazard) GetPosition() (float64, int) { return h.distance, h.lane }
func (h *Hazard) Triggered() bool             { return h.hit }
func (h *Hazard) Action()                     { h.hit = true }

func (h *Hazard) reset(distance float64, lane int) {
	h.distance = distance
	h.lane = lane
	h.hit = false
}

// PlacementRegistry assigns ids to live placement instances. Ids are never
// reused within a run, so a query against an evicted block can only miss,
// never alias a newer instance.
type PlacementRegistry struct {
	byID   map[PlacementID]Placement
	nextID PlacementID
}

// NewPlacementRegistry returns an empty registry. Id 0 stays reserved.
func NewPlacementRegistry() *PlacementRegistry {
	return &PlacementRegistry{byID: make(map[PlacementID]Placement), nextID: 1}
}

// Register stores p and returns its id.
func (r *PlacementRegistry) Register(p Placement) PlacementID {
	id := r.nextID
	r.nextID++
	r.byID[id] = p
	return id
}

// Resolve returns the instance for id, or nil.
func (r *PlacementRegistry) Resolve(id PlacementID) Placement {
	return r.byID[id]
}

// Unregister drops id. Unknown ids are ignored.
func (r *PlacementRegistry) Unregister(id PlacementID) {
	delete(r.byID, id)
}

// Each visits every registered placement, for the renderer.
func (r *PlacementRegistry) Each(fn func(PlacementID, Placement)) {
	for id, p := range r.byID {
		fn(id, p)
	}
}

// Len returns the number of live instances.
func (r *PlacementRegistry) Len() int { return len(r.byID) }

// PlacementPool recycles placement instances between blocks. Acquire returns
// nil once a kind hits its build cap with nothing free; the caller omits the
// placement.
type PlacementPool struct {
	build      func(KindID) Placement
	free       map[KindID][]Placement
	built      map[KindID]int
	capPerKind int
}

// NewPlacementPool builds a pool creating instances through build, at most
// capPerKind live instances per kind.
func NewPlacementPool(capPerKind int, build func(KindID) Placement) *PlacementPool {
	return &PlacementPool{
		build:      build,
		free:       make(map[KindID][]Placement),
		built:      make(map[KindID]int),
		capPerKind: capPerKind,
	}
}

// Acquire returns a free or freshly built instance of kind, or nil on
// exhaustion.
func (p *PlacementPool) Acquire(kind KindID) Placement {
	if list := p.free[kind]; len(list) > 0 {
		inst := list[len(list)-1]
		p.free[kind] = list[:len(list)-1]
		return inst
	}
	if p.built[kind] >= p.capPerKind {
		return nil
	}
	inst := p.build(kind)
	if inst != nil {
		p.built[kind]++
	}
	return inst
}

// Release returns an instance to its kind's free list.
func (p *PlacementPool) Release(inst Placement) {
	k, ok := inst.(Kinded)
	if !ok {
		return
	}
	p.free[k.Kind()] = append(p.free[k.Kind()], inst)
}

// FreeCount returns how many instances of kind are waiting for reuse.
func (p *PlacementPool) FreeCount(kind KindID) int { return len(p.free[kind]) }
