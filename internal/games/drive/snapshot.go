package drive

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"github.com/vovakirdan/neon-drive/internal/core"
)

// Snapshot is a read-only copy of everything a renderer needs after a
// tick. Slices are copies; mutating them does not affect the run.
type Snapshot struct {
	Phase      Phase
	StageIndex int
	StageKind  StageKind
	World      core.Vec2

	Vehicle Vehicle
	Corners [4]core.Vec2

	Obstacles []Obstacle
	Hazards   []Hazard
	Gates     []Gate
	GateSpan  float64 // half-height of a gate's clean window
	Target    TargetZone

	HasLight bool
	Light    LightPhase
	LightPos core.Vec2

	Shake   float64
	Elapsed float64
	Penalty float64
	Combo   float64
	WinHold float64
}

// Snapshot copies the current state.
func (r *Run) Snapshot() Snapshot {
	snap := Snapshot{
		Phase: r.phase,
		World: core.V(r.cfg.World.Width, r.cfg.World.Height),
	}
	rs := r.rs
	if rs == nil {
		return snap
	}

	snap.StageIndex = rs.StageIndex
	snap.StageKind = rs.Stage.Kind
	snap.Vehicle = rs.Vehicle
	snap.Corners = rs.Vehicle.Corners(r.cfg.Vehicle)
	snap.Obstacles = append([]Obstacle(nil), rs.Stage.Obstacles...)
	snap.Hazards = append([]Hazard(nil), rs.Stage.Hazards...)
	snap.Target = rs.Stage.Target
	if rs.Stage.Slalom != nil {
		snap.Gates = append([]Gate(nil), rs.Stage.Slalom.Gates...)
		snap.GateSpan = r.cfg.Slalom.GateRadius
	}
	if l := rs.Stage.Light; l != nil {
		snap.HasLight = true
		snap.Light = l.Phase
		snap.LightPos = l.Pos
	}
	snap.Shake = rs.Score.Shake
	snap.Elapsed = rs.Elapsed()
	snap.Penalty = rs.Score.Penalty
	snap.Combo = rs.Score.ComboValue()
	snap.WinHold = rs.WinHold
	return snap
}

// Hash folds the simulation-relevant fields for determinism tests.
func (s *Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	put := func(f float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		_, _ = h.Write(buf[:])
	}

	put(float64(s.Phase))
	put(float64(s.StageIndex))
	put(s.Vehicle.Pos.X)
	put(s.Vehicle.Pos.Y)
	put(s.Vehicle.Heading)
	put(s.Vehicle.Speed)
	put(s.Vehicle.Steer)
	put(float64(s.Vehicle.Gear))
	put(s.Penalty)
	put(s.Combo)
	for _, hz := range s.Hazards {
		put(hz.Center.X)
		put(hz.Center.Y)
		if hz.Hit {
			put(1)
		} else {
			put(0)
		}
	}
	return h.Sum64()
}
