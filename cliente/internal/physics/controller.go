package physics

import (
	"sync"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// CollisionFlags é o bitmask devolvido por um movimento varrido.
type CollisionFlags uint8

const (
	CollisionSides CollisionFlags = 1 << iota
	CollisionUp
	CollisionDown
)

func (f CollisionFlags) Sides() bool { return f&CollisionSides != 0 }
func (f CollisionFlags) Up() bool    { return f&CollisionUp != 0 }
func (f CollisionFlags) Down() bool  { return f&CollisionDown != 0 }

// CapsuleControllerDesc descreve um controlador de cápsula: Height é a
// porção cilíndrica (altura total = Height + 2*Radius), Position é o pé.
type CapsuleControllerDesc struct {
	Position      mgl32.Vec3
	Radius        float32
	Height        float32
	StepOffset    float32
	SlopeLimitCos float32
	Material      Material
}

// CapsuleController é o controlador cinemático de personagem: movimentos
// são varridos eixo a eixo contra os atores da cena, com tentativa de
// degrau quando um lado bloqueia. A cápsula é espelhada na cena como um
// ator próprio, excluído das consultas do controlador (filtro no-self),
// para que consultas de terceiros a enxerguem.
type CapsuleController struct {
	mgr  *ControllerManager
	desc CapsuleControllerDesc

	mu    sync.Mutex
	foot  mgl32.Vec3
	actor ActorID
}

// ControllerManager cria e possui os controladores de uma cena.
type ControllerManager struct {
	scene *Scene

	mu          sync.Mutex
	controllers map[*CapsuleController]struct{}
}

// NewControllerManager cria o gerenciador sobre a cena dada.
func NewControllerManager(scene *Scene) *ControllerManager {
	return &ControllerManager{
		scene:       scene,
		controllers: make(map[*CapsuleController]struct{}),
	}
}

// CreateController cria um controlador de cápsula a partir da descrição
// e registra o ator correspondente na cena.
func (m *ControllerManager) CreateController(desc CapsuleControllerDesc) *CapsuleController {
	c := &CapsuleController{
		mgr:  m,
		desc: desc,
		foot: desc.Position,
	}
	bb := c.bounds()
	c.actor = m.scene.AddStaticBox(bb.center(), bb.half(), desc.Material)

	m.mu.Lock()
	m.controllers[c] = struct{}{}
	m.mu.Unlock()
	return c
}

// ControllerCount reporta quantos controladores estão vivos.
func (m *ControllerManager) ControllerCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.controllers)
}

// Release libera todos os controladores restantes e os atores deles.
func (m *ControllerManager) Release() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for c := range m.controllers {
		m.scene.RemoveActor(c.actor)
	}
	m.controllers = make(map[*CapsuleController]struct{})
}

// Release devolve o controlador ao gerenciador e remove o ator da cena.
// Usar depois é inválido.
func (c *CapsuleController) Release() {
	c.mgr.scene.RemoveActor(c.actor)
	c.mgr.mu.Lock()
	delete(c.mgr.controllers, c)
	c.mgr.mu.Unlock()
}

// totalHeight é a altura da cápsula com as duas calotas.
func (c *CapsuleController) totalHeight() float32 {
	return c.desc.Height + 2*c.desc.Radius
}

// bounds é o AABB da cápsula, a forma usada nos varridos.
func (c *CapsuleController) bounds() box {
	r := c.desc.Radius
	return box{
		Min: mgl32.Vec3{c.foot[0] - r, c.foot[1], c.foot[2] - r},
		Max: mgl32.Vec3{c.foot[0] + r, c.foot[1] + c.totalHeight(), c.foot[2] + r},
	}
}

// FootPosition devolve a posição do pé da cápsula.
func (c *CapsuleController) FootPosition() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.foot
}

// SetFootPosition teletransporta a cápsula, sem varrido.
func (c *CapsuleController) SetFootPosition(p mgl32.Vec3) {
	c.mu.Lock()
	c.foot = p
	bb := c.bounds()
	c.mu.Unlock()
	c.mgr.scene.setActorBox(c.actor, bb)
}

// OverlapAtFoot reporta se a cápsula, posta com o pé no ponto dado,
// sobreporia algum ator da cena além do próprio.
func (c *CapsuleController) OverlapAtFoot(foot mgl32.Vec3) bool {
	r := c.desc.Radius
	bb := box{
		Min: mgl32.Vec3{foot[0] - r, foot[1], foot[2] - r},
		Max: mgl32.Vec3{foot[0] + r, foot[1] + c.totalHeight(), foot[2] + r},
	}
	return c.mgr.scene.OverlapBox(bb.center(), bb.half(), c.actor)
}

// Radius expõe o raio da cápsula.
func (c *CapsuleController) Radius() float32 { return c.desc.Radius }

// TotalHeight expõe a altura total da cápsula.
func (c *CapsuleController) TotalHeight() float32 { return c.totalHeight() }

// Move varre o deslocamento contra a cena, eixo Y primeiro e depois os
// horizontais, e reporta onde houve contato. Quando um eixo horizontal
// bloqueia, tenta subir o degrau de até StepOffset e repetir o avanço.
func (c *CapsuleController) Move(disp mgl32.Vec3) CollisionFlags {
	c.mu.Lock()
	defer c.mu.Unlock()

	bb := c.bounds()
	candidates := c.mgr.scene.boxesIn(bb.extend(disp), c.actor)

	dy, dx, dz := disp[1], disp[0], disp[2]
	for _, b := range candidates {
		dy = b.clipY(bb, dy)
	}
	bb = bb.translate(mgl32.Vec3{0, dy, 0})
	for _, b := range candidates {
		dx = b.clipX(bb, dx)
	}
	bb = bb.translate(mgl32.Vec3{dx, 0, 0})
	for _, b := range candidates {
		dz = b.clipZ(bb, dz)
	}
	bb = bb.translate(mgl32.Vec3{0, 0, dz})

	hitX := math32.Abs(dx-disp[0]) >= collisionEps
	hitZ := math32.Abs(dz-disp[2]) >= collisionEps

	if (hitX || hitZ) && disp[1] <= 0 && c.desc.StepOffset > 0 {
		if sb, sx, sz, ok := c.tryStep(candidates, disp); ok {
			stepGain := sx*sx + sz*sz
			flatGain := dx*dx + dz*dz
			if stepGain > flatGain {
				bb = sb
				dx, dz = sx, sz
				hitX = math32.Abs(dx-disp[0]) >= collisionEps
				hitZ = math32.Abs(dz-disp[2]) >= collisionEps
			}
		}
	}

	c.foot = mgl32.Vec3{
		(bb.Min[0] + bb.Max[0]) * 0.5,
		bb.Min[1],
		(bb.Min[2] + bb.Max[2]) * 0.5,
	}
	c.mgr.scene.setActorBox(c.actor, c.bounds())

	var flags CollisionFlags
	if hitX || hitZ {
		flags |= CollisionSides
	}
	if math32.Abs(dy-disp[1]) >= collisionEps {
		if disp[1] < 0 {
			flags |= CollisionDown
		} else {
			flags |= CollisionUp
		}
	}
	return flags
}

// tryStep repete o avanço horizontal a partir de um degrau de até
// StepOffset e assenta de volta, como o passo automático de um CCT.
func (c *CapsuleController) tryStep(candidates []box, disp mgl32.Vec3) (box, float32, float32, bool) {
	bb := c.bounds()

	up := c.desc.StepOffset
	for _, b := range candidates {
		up = b.clipY(bb, up)
	}
	if up <= collisionEps {
		return box{}, 0, 0, false
	}
	bb = bb.translate(mgl32.Vec3{0, up, 0})

	dx, dz := disp[0], disp[2]
	for _, b := range candidates {
		dx = b.clipX(bb, dx)
	}
	bb = bb.translate(mgl32.Vec3{dx, 0, 0})
	for _, b := range candidates {
		dz = b.clipZ(bb, dz)
	}
	bb = bb.translate(mgl32.Vec3{0, 0, dz})

	down := -up
	for _, b := range candidates {
		down = b.clipY(bb, down)
	}
	bb = bb.translate(mgl32.Vec3{0, down, 0})

	return bb, dx, dz, true
}
