package player

import (
	"fmt"
	"log"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"VoxelVision/cliente/internal/camera"
	"VoxelVision/cliente/internal/physics"
	"VoxelVision/shared/util"
)

// Dimensões e dinâmica do corpo do jogador.
const (
	Height         = 1.8   // altura total da cápsula
	Width          = 0.75  // diâmetro
	Radius         = Width / 2
	CylinderHeight = 1.05 // porção cilíndrica: Height - 2*Radius
	EyeLevel       = 1.6  // olho acima do pé
	StepOffset     = 0.25

	Gravity   = -20.0
	JumpSpeed = 6.0

	// Passo de tempo preso entre um frame de 60 FPS e 100 ms, para
	// travadas longas não teleportarem o corpo.
	MinDt = 1.0 / 60.0
	MaxDt = 0.1
)

// slopeLimitCos é o limite de inclinação do controlador (45 graus).
var slopeLimitCos = math32.Cos(math32.Pi / 4)

// InputState é o estado de teclas seguradas, amostrado por frame.
type InputState struct {
	Forward, Backward bool
	Left, Right       bool
	Up, Down          bool // só no voo livre
}

// Event é um evento de entrada de borda entregue a OnEvent.
type Event interface{ isEvent() }

// MouseMoveEvent é um delta de mouse em pixels.
type MouseMoveEvent struct{ DX, DY float32 }

// ScrollEvent é um passo da roda do mouse (zoom de FOV).
type ScrollEvent struct{ Delta float32 }

// JumpEvent é o aperto da tecla de pulo.
type JumpEvent struct{}

// ToggleFlyEvent alterna entre voo livre e modo físico.
type ToggleFlyEvent struct{}

func (MouseMoveEvent) isEvent() {}
func (ScrollEvent) isEvent()    {}
func (JumpEvent) isEvent()      {}
func (ToggleFlyEvent) isEvent() {}

// Player é o personagem cinemático: dono do controlador de cápsula e do
// bridge de colisores, e única fonte da posição da câmera.
type Player struct {
	cam *camera.Controller
	sys *physics.System

	solid      physics.SolidFunc
	bridgeHalf util.BlockPos

	controller *physics.CapsuleController
	bridge     *physics.BlockSceneBridge

	walkSpeed float32
	flySpeed  float32

	vY            float32
	onGround      bool
	jumpRequested bool
	freeFly       bool
}

// New cria o jogador ainda sem corpo físico: até AttachToPhysics (pelo
// chamador ou pela auto-recuperação de OnUpdate) só o voo livre
// funciona. solid é a consulta de solidez do mundo e bridgeHalf as
// meias-extensões da janela de colisores.
func New(cam *camera.Controller, sys *physics.System, solid physics.SolidFunc, bridgeHalf util.BlockPos, walkSpeed, flySpeed float32, startFreeFly bool) *Player {
	return &Player{
		cam:        cam,
		sys:        sys,
		solid:      solid,
		bridgeHalf: bridgeHalf,
		walkSpeed:  walkSpeed,
		flySpeed:   flySpeed,
		freeFly:    startFreeFly,
	}
}

// AttachToPhysics cria a cápsula com o olho no ponto de spawn dado e o
// bridge de colisores na janela em volta do pé.
func (p *Player) AttachToPhysics(spawn mgl32.Vec3) error {
	if !p.sys.Initialized() {
		return fmt.Errorf("física não inicializada")
	}
	if p.controller != nil {
		return fmt.Errorf("jogador já tem corpo físico")
	}

	foot := mgl32.Vec3{spawn.X(), spawn.Y() - EyeLevel, spawn.Z()}
	p.controller = p.sys.ControllerManager().CreateController(physics.CapsuleControllerDesc{
		Position:      foot,
		Radius:        Radius,
		Height:        CylinderHeight,
		StepOffset:    StepOffset,
		SlopeLimitCos: slopeLimitCos,
		Material:      p.sys.Material(),
	})

	p.bridge = physics.NewBlockSceneBridge(p.sys.Scene(), p.sys.Material(), p.solid)
	p.bridge.UpdateWindow(util.FloorBlock(foot.X(), foot.Y(), foot.Z()), p.bridgeHalf)

	p.cam.SetPosition(spawn)
	return nil
}

// Detach libera o corpo físico e os colisores. O voo livre segue
// funcionando.
func (p *Player) Detach() {
	if p.controller != nil {
		p.controller.Release()
		p.controller = nil
	}
	if p.bridge != nil {
		p.bridge.Clear()
		p.bridge = nil
	}
}

// FreeFly reporta o modo corrente.
func (p *Player) FreeFly() bool { return p.freeFly }

// OnGround reporta se o último movimento terminou apoiado.
func (p *Player) OnGround() bool { return p.onGround }

// VerticalSpeed expõe a velocidade vertical corrente.
func (p *Player) VerticalSpeed() float32 { return p.vY }

// EyePosition devolve a posição do olho.
func (p *Player) EyePosition() mgl32.Vec3 {
	return p.cam.Position()
}

// Bridge expõe o bridge de colisores para o fluxo de edição de blocos.
func (p *Player) Bridge() *physics.BlockSceneBridge {
	return p.bridge
}

// OnEvent processa um evento de borda: olhar, zoom, pulo e troca de modo.
func (p *Player) OnEvent(ev Event) {
	switch e := ev.(type) {
	case MouseMoveEvent:
		p.cam.OnMouseMove(e.DX, e.DY)
	case ScrollEvent:
		// Rolar para cima abre o FOV em passos fixos de 0.1.
		if e.Delta > 0 {
			p.cam.SetFov(p.cam.Fov() + 0.1)
		} else if e.Delta < 0 {
			p.cam.SetFov(p.cam.Fov() - 0.1)
		}
	case JumpEvent:
		if !p.freeFly {
			p.jumpRequested = true
		}
	case ToggleFlyEvent:
		p.freeFly = !p.freeFly
		// Troca de modo zera o estado vertical: nada de pulo nem
		// velocidade herdada de antes do voo.
		p.vY = 0
		p.onGround = false
		p.jumpRequested = false
		if !p.freeFly && p.controller == nil {
			if err := p.AttachToPhysics(p.cam.Position()); err != nil {
				log.Printf("[Player] corpo físico na troca de modo falhou: %v", err)
			}
		}
	}
}

// OnUpdate avança o jogador um frame: desliza a janela de colisores,
// integra a gravidade, varre o movimento e reata a câmera ao pé. O
// passo de tempo cru é preso a [MinDt, MaxDt]. Modo físico sem corpo se
// auto-recupera criando a cápsula na posição corrente da câmera.
func (p *Player) OnUpdate(input InputState, rawDt float32) {
	dt := util.Clamp(rawDt, MinDt, MaxDt)

	if p.freeFly {
		p.updateFreeFly(input, dt)
		return
	}

	if p.controller == nil {
		log.Printf("[Player] AVISO: modo físico sem corpo, criando na câmera")
		if err := p.AttachToPhysics(p.cam.Position()); err != nil {
			log.Printf("[Player] auto-recuperação falhou: %v", err)
			return
		}
	}

	// A janela de colisores desliza antes do varrido, centrada no pé
	// de antes do movimento.
	foot := p.controller.FootPosition()
	p.bridge.UpdateWindow(util.FloorBlock(foot.X(), foot.Y(), foot.Z()), p.bridgeHalf)

	p.vY += Gravity * dt
	if p.jumpRequested {
		if p.onGround {
			p.vY = JumpSpeed
			p.onGround = false
		}
		p.jumpRequested = false
	}

	walk := p.walkVector(input).Mul(p.walkSpeed * dt)
	disp := mgl32.Vec3{walk.X(), p.vY * dt, walk.Z()}
	flags := p.controller.Move(disp)

	p.onGround = flags.Down()
	if flags.Down() && p.vY < 0 {
		p.vY = 0
	}
	if flags.Up() && p.vY > 0 {
		p.vY = 0
	}

	foot = p.controller.FootPosition()
	p.cam.SetPosition(mgl32.Vec3{foot.X(), foot.Y() + EyeLevel, foot.Z()})

	p.sys.Step(dt)
}

// updateFreeFly move a câmera diretamente, sem colisão nem gravidade.
func (p *Player) updateFreeFly(input InputState, dt float32) {
	dir := p.walkVector(input)
	if input.Up {
		dir[1]++
	}
	if input.Down {
		dir[1]--
	}
	if dir.Len() == 0 {
		return
	}
	p.cam.SetPosition(p.cam.Position().Add(dir.Normalize().Mul(p.flySpeed * dt)))
}

// walkVector compõe a direção de andar no plano a partir do estado de
// teclas e do yaw da câmera.
func (p *Player) walkVector(input InputState) mgl32.Vec3 {
	forward, right := p.cam.WalkVectors()
	var dir mgl32.Vec3
	if input.Forward {
		dir = dir.Add(forward)
	}
	if input.Backward {
		dir = dir.Sub(forward)
	}
	if input.Right {
		dir = dir.Add(right)
	}
	if input.Left {
		dir = dir.Sub(right)
	}
	if l := dir.Len(); l > 1 {
		dir = dir.Mul(1 / l)
	}
	return dir
}

// TestBlockCollision reporta se a cápsula, posta com o olho no ponto
// dado, sobreporia algum ator da cena além do próprio corpo. Sem corpo
// físico (ou em voo livre) nunca colide.
func (p *Player) TestBlockCollision(eye mgl32.Vec3) bool {
	if p.freeFly || p.controller == nil {
		return false
	}
	return p.controller.OverlapAtFoot(mgl32.Vec3{eye.X(), eye.Y() - EyeLevel, eye.Z()})
}

// OverlapsCell reporta se o cubo da célula dada intersecta o corpo do
// jogador, para vetar colocar bloco dentro dele. A consulta passa pela
// cena: a cápsula é um ator próprio, e numa célula de ar é o único que
// pode invadir o cubo (colisores de terreno só encostam na borda). Sem
// corpo físico (ou em voo livre) nunca veta.
func (p *Player) OverlapsCell(pos util.BlockPos) bool {
	if p.freeFly || p.controller == nil {
		return false
	}
	center := mgl32.Vec3{float32(pos.X) + 0.5, float32(pos.Y) + 0.5, float32(pos.Z) + 0.5}
	return p.sys.Scene().OverlapBox(center, mgl32.Vec3{0.5, 0.5, 0.5}, 0)
}
