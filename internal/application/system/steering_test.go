package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/neko/internal/domain/anim"
	"github.com/younwookim/neko/internal/domain/entity"
	"github.com/younwookim/neko/internal/infrastructure/config"
)

var testScreen = entity.Screen{Width: 800, Height: 600}

func createTestSteering() *SteeringSystem {
	return NewSteeringSystem(config.DefaultSteering(), entity.Size{W: 1, H: 1})
}

func createTestPet(x, y int) *entity.Pet {
	return entity.NewPet(anim.DefaultCatalog(), entity.Point{X: x, Y: y}, entity.Size{W: 32, H: 32})
}

func TestSteering_RunsTowardPointer(t *testing.T) {
	s := createTestSteering()
	pet := createTestPet(100, 100)
	require.True(t, pet.Player.SwitchTo(anim.RunRight))

	dx, dy := s.Displacement(pet.Position, entity.Point{X: 200, Y: 100})
	assert.Equal(t, 100, dx)
	assert.Equal(t, 0, dy)
	assert.Equal(t, anim.RunRight, Classify(dx, dy))

	cmd := s.Update(pet, entity.Point{X: 200, Y: 100}, testScreen)

	assert.Equal(t, anim.RunRight, pet.Player.Current())
	assert.Equal(t, entity.Point{X: 105, Y: 100}, pet.Position)
	assert.Equal(t, entity.Point{X: 100, Y: 100}, cmd.EraseAt)
	assert.Equal(t, entity.Point{X: 105, Y: 100}, cmd.DrawAt)
	assert.Equal(t, entity.Size{W: 32, H: 32}, cmd.Footprint)
	assert.Equal(t, anim.Cell{Col: 4, Row: 1}, cmd.Cell)
}

func TestSteering_IdleToMotionStartlesFirst(t *testing.T) {
	s := createTestSteering()
	pet := createTestPet(100, 100)
	pointer := entity.Point{X: 200, Y: 100}

	startledTicks := int(anim.DefaultCatalog().Lookup(anim.Startled).Frames[0].Duration)

	for i := 0; i < startledTicks-1; i++ {
		s.Update(pet, pointer, testScreen)
		require.Equal(t, anim.Startled, pet.Player.Current(), "tick %d", i)
		require.Equal(t, entity.Point{X: 100, Y: 100}, pet.Position, "pet freezes while startled")
	}

	// the startled frame finishes on this tick, so the run takes over
	s.Update(pet, pointer, testScreen)
	assert.Equal(t, anim.RunRight, pet.Player.Current())
	assert.Equal(t, entity.Point{X: 105, Y: 100}, pet.Position)
}

func TestSteering_SleepingPetIsStartled(t *testing.T) {
	s := createTestSteering()
	pet := createTestPet(100, 100)
	for i := 0; i < 100; i++ {
		s.Update(pet, entity.Point{X: 100, Y: 100}, testScreen)
	}
	require.Equal(t, anim.Idle, pet.Player.Current())
	require.Greater(t, pet.Player.FrameIndex(), 4, "pet should be asleep")

	s.Update(pet, entity.Point{X: 100, Y: 400}, testScreen)
	assert.Equal(t, anim.Startled, pet.Player.Current())
}

func TestSteering_DeadZoneForcesIdle(t *testing.T) {
	tests := []struct {
		name    string
		pointer entity.Point
		want    anim.Kind
		wantPos entity.Point
	}{
		{"on top", entity.Point{X: 100, Y: 100}, anim.Idle, entity.Point{X: 100, Y: 100}},
		{"inside", entity.Point{X: 130, Y: 120}, anim.Idle, entity.Point{X: 104, Y: 103}},
		{"exactly on radius", entity.Point{X: 140, Y: 100}, anim.Idle, entity.Point{X: 105, Y: 100}},
		{"diagonal inside", entity.Point{X: 72, Y: 72}, anim.Idle, entity.Point{X: 97, Y: 97}},
		{"just outside", entity.Point{X: 141, Y: 100}, anim.RunRight, entity.Point{X: 105, Y: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := createTestSteering()
			pet := createTestPet(100, 100)
			pet.Player.SwitchTo(anim.RunRight)

			cmd := s.Update(pet, tt.pointer, testScreen)
			assert.Equal(t, tt.want, pet.Player.Current())
			assert.Equal(t, tt.wantPos, pet.Position)
			assert.Equal(t, entity.Point{X: 100, Y: 100}, cmd.EraseAt)
		})
	}
}

func TestSteering_IdlePetKeepsSteppingInDeadZone(t *testing.T) {
	s := createTestSteering()
	pet := createTestPet(100, 100)
	pointer := entity.Point{X: 130, Y: 120}

	for i := 0; i < 4; i++ {
		before := pet.Position
		s.Update(pet, pointer, testScreen)
		require.Equal(t, anim.Idle, pet.Player.Current(), "tick %d", i)
		require.NotEqual(t, before, pet.Position, "tick %d", i)
	}
}

func TestSteering_EdgeOverrides(t *testing.T) {
	tests := []struct {
		name string
		pos  entity.Point
		want anim.Kind
	}{
		{"left edge", entity.Point{X: 0, Y: 300}, anim.ScratchLeft},
		{"right edge", entity.Point{X: 800, Y: 300}, anim.ScratchRight},
		{"top edge", entity.Point{X: 400, Y: 0}, anim.ScratchDown},
		{"bottom edge", entity.Point{X: 400, Y: 600}, anim.ScratchUp},
		{"corner prefers left", entity.Point{X: 0, Y: 0}, anim.ScratchLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := createTestSteering()
			pet := createTestPet(tt.pos.X, tt.pos.Y)

			// pointer far away and pointer on top both scratch
			s.Update(pet, entity.Point{X: 400, Y: 300}, testScreen)
			assert.Equal(t, tt.want, pet.Player.Current())

			pet.Reset()
			s.Update(pet, tt.pos, testScreen)
			assert.Equal(t, tt.want, pet.Player.Current())
		})
	}
}

func TestSteering_OvershootMissesEdge(t *testing.T) {
	s := createTestSteering()
	pet := createTestPet(3, 300)
	pet.Player.SwitchTo(anim.RunLeft)

	// a leftward step of 4 jumps from x=3 to x=-1 without touching x=0
	s.Update(pet, entity.Point{X: -200, Y: 300}, entity.Screen{Width: 800, Height: 600})
	assert.Equal(t, -1, pet.Position.X)

	s.Update(pet, entity.Point{X: -200, Y: 300}, entity.Screen{Width: 800, Height: 600})
	assert.Equal(t, anim.RunLeft, pet.Player.Current())
}

func TestSteering_PausedPetAnimatesInPlace(t *testing.T) {
	s := createTestSteering()
	pet := createTestPet(100, 100)
	pet.Player.SwitchTo(anim.RunRight)
	pet.Pause()

	cmd := s.Update(pet, entity.Point{X: 100, Y: 500}, testScreen)

	assert.Equal(t, anim.RunRight, pet.Player.Current())
	assert.Equal(t, 1, pet.Player.TicksInFrame())
	assert.Equal(t, entity.Point{X: 100, Y: 100}, pet.Position)
	assert.Equal(t, cmd.EraseAt, cmd.DrawAt)

	pet.Resume()
	s.Update(pet, entity.Point{X: 100, Y: 500}, testScreen)
	assert.Equal(t, anim.RunDown, pet.Player.Current())
	assert.Equal(t, entity.Point{X: 100, Y: 105}, pet.Position)
}

func TestSteering_Step(t *testing.T) {
	s := createTestSteering()

	tests := []struct {
		name         string
		dx, dy       int
		wantX, wantY int
	}{
		{"right", 100, 0, 5, 0},
		{"left", -100, 0, -4, 0},
		{"down", 0, 100, 0, 5},
		{"up", 0, -100, 0, -4},
		{"3-4-5", 3, 4, 3, 4},
		{"diagonal", 70, 70, 4, 4},
		{"diagonal up left", -70, -70, -3, -3},
		{"negative half rounds toward zero", -3, -4, -2, -3},
		{"zero", 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			distSq := int64(tt.dx)*int64(tt.dx) + int64(tt.dy)*int64(tt.dy)
			x, y := s.Step(tt.dx, tt.dy, distSq)
			assert.Equal(t, tt.wantX, x)
			assert.Equal(t, tt.wantY, y)
		})
	}
}

func TestSteering_StepHugeDistance(t *testing.T) {
	s := createTestSteering()

	x, y := s.Step(100000, 0, 100000*100000)
	assert.Equal(t, 0, y)
	assert.Greater(t, x, 0)
}

func TestSteering_DisplacementCentresCursor(t *testing.T) {
	s := NewSteeringSystem(config.DefaultSteering(), entity.Size{W: 16, H: 16})

	dx, dy := s.Displacement(entity.Point{X: 100, Y: 100}, entity.Point{X: 200, Y: 100})
	assert.Equal(t, 92, dx)
	assert.Equal(t, -8, dy)
}

func TestSteering_ConvergesOnPointer(t *testing.T) {
	s := createTestSteering()
	pet := createTestPet(100, 100)
	pointer := entity.Point{X: 500, Y: 400}

	for i := 0; i < 1000; i++ {
		s.Update(pet, pointer, testScreen)
	}

	assert.Equal(t, pointer, pet.Position)
	assert.Equal(t, anim.Idle, pet.Player.Current())
}

func TestSteering_UpdateDoesNotAllocate(t *testing.T) {
	s := createTestSteering()
	pet := createTestPet(100, 100)
	pointers := []entity.Point{{X: 500, Y: 100}, {X: 100, Y: 500}, {X: 100, Y: 100}}
	i := 0

	allocs := testing.AllocsPerRun(1000, func() {
		s.Update(pet, pointers[(i/50)%len(pointers)], testScreen)
		i++
	})
	assert.Zero(t, allocs)
}

func BenchmarkSteering_Update(b *testing.B) {
	s := createTestSteering()
	pet := createTestPet(100, 100)
	pointer := entity.Point{X: 700, Y: 500}

	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		if n%200 == 0 {
			pet.Reset()
		}
		s.Update(pet, pointer, testScreen)
	}
}
