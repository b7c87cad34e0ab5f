package system

import (
	"math"

	"github.com/younwookim/neko/internal/domain/anim"
	"github.com/younwookim/neko/internal/domain/entity"
	"github.com/younwookim/neko/internal/infrastructure/config"
)

// fixedOne is the fixed-point unit used for the step computation
const fixedOne = 1000

// SteeringSystem decides the pet's animation and moves it toward the
// pointer, one animation tick per Update.
type SteeringSystem struct {
	config config.SteeringConfig
	cursor entity.Size
}

// NewSteeringSystem creates a steering system. cursor is the pointer
// footprint; the pet chases its centre.
func NewSteeringSystem(cfg config.SteeringConfig, cursor entity.Size) *SteeringSystem {
	return &SteeringSystem{
		config: cfg,
		cursor: cursor,
	}
}

// Update runs one animation tick and returns what to draw.
// A paused pet keeps animating but neither turns nor moves. The dead zone
// only forces Idle; the pet still steps toward the pointer inside it.
func (s *SteeringSystem) Update(pet *entity.Pet, pointer entity.Point, screen entity.Screen) entity.RenderCommand {
	if pet.Paused {
		pet.Hold()
		return pet.Command(pet.Player.Tick())
	}

	dx, dy := s.Displacement(pet.Position, pointer)
	distSq := int64(dx)*int64(dx) + int64(dy)*int64(dy)
	inDeadZone := distSq <= s.deadZoneSq()

	wanted := anim.Idle
	if !inDeadZone {
		wanted = Classify(dx, dy)
	}
	target := s.Target(pet.Player.Current(), wanted, pet.Position, screen)

	pet.Player.SwitchTo(target)
	cell := pet.Player.Tick()

	if pet.Player.Current() == anim.Startled {
		pet.Hold()
		return pet.Command(cell)
	}

	stepX, stepY := s.Step(dx, dy, distSq)
	pet.MoveTo(pet.Position.Add(stepX, stepY))
	return pet.Command(cell)
}

// Displacement returns the vector from the pet to the cursor centre.
func (s *SteeringSystem) Displacement(pet, pointer entity.Point) (dx, dy int) {
	dx = (pointer.X - s.cursor.W/2) - pet.X
	dy = (pointer.Y - s.cursor.H/2) - pet.Y
	return dx, dy
}

// Target resolves the animation to request given the classifier output.
// Leaving Idle always goes through Startled first, and a pet sitting
// exactly on a screen border scratches it instead.
func (s *SteeringSystem) Target(current, wanted anim.Kind, pos entity.Point, screen entity.Screen) anim.Kind {
	if current == anim.Idle && wanted != anim.Idle {
		wanted = anim.Startled
	}

	switch screen.EdgeAt(pos) {
	case entity.EdgeLeft:
		return anim.ScratchLeft
	case entity.EdgeRight:
		return anim.ScratchRight
	case entity.EdgeTop:
		return anim.ScratchDown
	case entity.EdgeBottom:
		return anim.ScratchUp
	}
	return wanted
}

// Step scales (dx, dy) to a vector of length Speed. Each component is
// rounded by adding half a unit before the truncating division, so
// negative halves round toward zero: a leftward step of Speed 5 is -4.
func (s *SteeringSystem) Step(dx, dy int, distSq int64) (stepX, stepY int) {
	if distSq > math.MaxUint32 {
		distSq = math.MaxUint32
	}
	length := int64(ISqrt(uint32(distSq)))
	if length == 0 {
		return 0, 0
	}

	speed := int64(s.config.Speed)
	stepX = roundFixed(int64(dx) * speed * fixedOne / length)
	stepY = roundFixed(int64(dy) * speed * fixedOne / length)
	return stepX, stepY
}

func (s *SteeringSystem) deadZoneSq() int64 {
	r := int64(s.config.DeadZone)
	return r * r
}

func roundFixed(v int64) int {
	return int((v + fixedOne/2) / fixedOne)
}
