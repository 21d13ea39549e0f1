package drive

import (
	"github.com/vovakirdan/neon-drive/internal/core"
)

// ContactKind says what the vehicle touched this tick.
type ContactKind int

const (
	ContactNone ContactKind = iota
	ContactBoundary
	ContactObstacle
	ContactHazard
)

func (k ContactKind) String() string {
	switch k {
	case ContactBoundary:
		return "boundary"
	case ContactObstacle:
		return "obstacle"
	case ContactHazard:
		return "hazard"
	default:
		return "none"
	}
}

// Contact is the single correction applied during a tick. Index points
// into Stage.Obstacles or Stage.Hazards; it is -1 otherwise.
type Contact struct {
	Kind  ContactKind
	Index int
}

var noContact = Contact{Kind: ContactNone, Index: -1}

// Resolve tests the vehicle against world bounds, obstacles and hazards,
// in that order, and applies the first match only.
func Resolve(rs *RunState) Contact {
	v := &rs.Vehicle
	w, h := rs.cfg.World.Width, rs.cfg.World.Height
	cc := rs.cfg.Collision

	margin := cc.BoundsMargin
	if v.Pos.X < -margin || v.Pos.X > w+margin || v.Pos.Y < -margin || v.Pos.Y > h+margin {
		rs.penalize(rs.cfg.Penalties.Boundary, PenaltyBoundary, "Out of bounds")
		v.Pos.X = core.ClampF(v.Pos.X, cc.ClampInset, w-cc.ClampInset)
		v.Pos.Y = core.ClampF(v.Pos.Y, cc.ClampInset, h-cc.ClampInset)
		v.Speed *= cc.Bounce
		return Contact{Kind: ContactBoundary, Index: -1}
	}

	corners := v.Corners(rs.cfg.Vehicle)

	for i, ob := range rs.Stage.Obstacles {
		for _, p := range corners {
			if !ob.Box.ContainsStrict(p) {
				continue
			}
			rs.penalize(rs.cfg.Penalties.Wall, PenaltyWall, "Collision")
			v.Pos = v.Pos.Sub(travelDir(v).Scale(cc.PushBack))
			v.Speed *= cc.Bounce
			return Contact{Kind: ContactObstacle, Index: i}
		}
	}

	for i := range rs.Stage.Hazards {
		hz := &rs.Stage.Hazards[i]
		if hz.Hit {
			continue
		}
		for _, p := range corners {
			if p.Dist(hz.Center) >= hz.Radius+cc.ConeMargin {
				continue
			}
			hz.Hit = true
			rs.penalize(rs.cfg.Penalties.Cone, PenaltyCone, "Cone hit")
			return Contact{Kind: ContactHazard, Index: i}
		}
	}

	return noContact
}

// travelDir is the unit vector the vehicle is moving along: the heading
// in drive, its reverse when backing up. A stopped vehicle counts as
// moving forward.
func travelDir(v *Vehicle) core.Vec2 {
	d := core.FromAngle(v.Heading)
	if v.Speed < 0 {
		return d.Scale(-1)
	}
	return d
}
