package physics

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// groundScene monta uma cena com um piso de atores-caixa em y ∈ [0,1).
func groundScene(t *testing.T) *Scene {
	t.Helper()
	s := NewScene()
	for x := int32(-4); x <= 4; x++ {
		for z := int32(-4); z <= 4; z++ {
			s.AddStaticBox(
				mgl32.Vec3{float32(x) + 0.5, 0.5, float32(z) + 0.5},
				mgl32.Vec3{0.5, 0.5, 0.5},
				Material{},
			)
		}
	}
	return s
}

func playerDesc(foot mgl32.Vec3) CapsuleControllerDesc {
	return CapsuleControllerDesc{
		Position:      foot,
		Radius:        0.375,
		Height:        1.05,
		StepOffset:    0.25,
		SlopeLimitCos: math32.Cos(math32.Pi / 4),
	}
}

func TestControllerFallsAndLands(t *testing.T) {
	s := groundScene(t)
	mgr := NewControllerManager(s)
	c := mgr.CreateController(playerDesc(mgl32.Vec3{0.5, 3, 0.5}))
	defer c.Release()

	// Queda livre até o contato com o piso em y=1.
	landed := false
	for i := 0; i < 60; i++ {
		flags := c.Move(mgl32.Vec3{0, -0.2, 0})
		if flags.Down() {
			landed = true
			break
		}
	}
	if !landed {
		t.Fatal("cápsula nunca reportou contato com o chão")
	}
	if foot := c.FootPosition(); math32.Abs(foot[1]-1) > 1e-3 {
		t.Errorf("pé assentou em y=%v, esperado ~1", foot[1])
	}

	// No chão, o varrido para baixo continua reportando Down.
	if flags := c.Move(mgl32.Vec3{0, -0.2, 0}); !flags.Down() {
		t.Error("cápsula apoiada deveria reportar Down")
	}
}

func TestControllerWallBlocksSides(t *testing.T) {
	s := groundScene(t)
	// Parede de dois blocos em x=2.
	for y := int32(1); y <= 2; y++ {
		s.AddStaticBox(mgl32.Vec3{2.5, float32(y) + 0.5, 0.5}, mgl32.Vec3{0.5, 0.5, 0.5}, Material{})
	}
	mgr := NewControllerManager(s)
	c := mgr.CreateController(playerDesc(mgl32.Vec3{0.5, 1, 0.5}))
	defer c.Release()

	var flags CollisionFlags
	for i := 0; i < 20; i++ {
		flags = c.Move(mgl32.Vec3{0.2, -0.05, 0})
		if flags.Sides() {
			break
		}
	}
	if !flags.Sides() {
		t.Fatal("parede não reportou Sides")
	}
	// O lado esquerdo da parede é x=2; o pé para com a borda encostada.
	if foot := c.FootPosition(); foot[0]+c.Radius() > 2+1e-3 {
		t.Errorf("cápsula atravessou a parede: borda em x=%v", foot[0]+c.Radius())
	}
}

func TestControllerStepsUpSingleBlock(t *testing.T) {
	s := NewScene()
	// Piso em y=[0,1) e um degrau de um quarto de bloco em x=[2,3).
	for x := int32(0); x <= 4; x++ {
		s.AddStaticBox(mgl32.Vec3{float32(x) + 0.5, 0.5, 0.5}, mgl32.Vec3{0.5, 0.5, 0.5}, Material{})
	}
	s.AddStaticBox(mgl32.Vec3{2.5, 1.1, 0.5}, mgl32.Vec3{0.5, 0.1, 0.5}, Material{})

	mgr := NewControllerManager(s)
	c := mgr.CreateController(playerDesc(mgl32.Vec3{0.5, 1, 0.5}))
	defer c.Release()

	for i := 0; i < 30; i++ {
		c.Move(mgl32.Vec3{0.1, -0.05, 0})
	}
	foot := c.FootPosition()
	if foot[0] < 2 {
		t.Errorf("cápsula não avançou sobre o degrau: x=%v", foot[0])
	}
	if foot[1] < 1.15 {
		t.Errorf("cápsula não subiu o degrau: y=%v", foot[1])
	}
}

func TestControllerCeilingReportsUp(t *testing.T) {
	s := groundScene(t)
	// Teto baixo sobre a cápsula.
	s.AddStaticBox(mgl32.Vec3{0.5, 3.5, 0.5}, mgl32.Vec3{0.5, 0.5, 0.5}, Material{})

	mgr := NewControllerManager(s)
	c := mgr.CreateController(playerDesc(mgl32.Vec3{0.5, 1, 0.5}))
	defer c.Release()

	var hitUp bool
	for i := 0; i < 10; i++ {
		if c.Move(mgl32.Vec3{0, 0.3, 0}).Up() {
			hitUp = true
			break
		}
	}
	if !hitUp {
		t.Fatal("teto não reportou Up")
	}
	if top := c.FootPosition()[1] + c.TotalHeight(); top > 3+1e-3 {
		t.Errorf("cápsula entrou no teto: topo em y=%v", top)
	}
}

func TestManagerOwnsControllers(t *testing.T) {
	s := NewScene()
	mgr := NewControllerManager(s)

	a := mgr.CreateController(playerDesc(mgl32.Vec3{}))
	b := mgr.CreateController(playerDesc(mgl32.Vec3{}))
	if got := mgr.ControllerCount(); got != 2 {
		t.Fatalf("%d controladores, esperado 2", got)
	}
	// Cada controlador espelha a cápsula como um ator da cena.
	if got := s.ActorCount(); got != 2 {
		t.Fatalf("%d atores na cena, esperado 2", got)
	}

	a.Release()
	if got := mgr.ControllerCount(); got != 1 {
		t.Errorf("%d controladores após Release, esperado 1", got)
	}
	if got := s.ActorCount(); got != 1 {
		t.Errorf("%d atores após Release, esperado 1", got)
	}

	_ = b
	mgr.Release()
	if got := mgr.ControllerCount(); got != 0 {
		t.Errorf("%d controladores após Release do gerenciador, esperado 0", got)
	}
	if got := s.ActorCount(); got != 0 {
		t.Errorf("%d atores após Release do gerenciador, esperado 0", got)
	}
}

func TestControllerOverlapExcludesSelf(t *testing.T) {
	s := groundScene(t)
	mgr := NewControllerManager(s)
	c := mgr.CreateController(playerDesc(mgl32.Vec3{0.5, 1, 0.5}))
	defer c.Release()

	// Apoiada no piso, a cápsula só encosta nos atores: nada sobrepõe.
	if c.OverlapAtFoot(mgl32.Vec3{0.5, 1, 0.5}) {
		t.Error("cápsula apoiada não deveria sobrepor a cena")
	}
	// Afundada meio bloco, sobrepõe o piso.
	if !c.OverlapAtFoot(mgl32.Vec3{0.5, 0.5, 0.5}) {
		t.Error("cápsula afundada deveria sobrepor o piso")
	}

	// O ator da cápsula acompanha os movimentos e aparece para
	// consultas de terceiros, mas não para as do próprio controlador.
	c.Move(mgl32.Vec3{0.5, 0, 0})
	foot := c.FootPosition()
	center := mgl32.Vec3{foot[0], foot[1] + c.TotalHeight()/2, foot[2]}
	if !s.OverlapBox(center, mgl32.Vec3{0.1, 0.1, 0.1}, 0) {
		t.Error("consulta de terceiro não viu o ator da cápsula")
	}
}
