package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"VoxelVision/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Limites de pitch e FOV da câmera em primeira pessoa.
const (
	maxPitch = 89.0
	minFov   = 69.5
	maxFov   = 71.0
)

// Controller é a câmera em primeira pessoa: posição do olho mais yaw e
// pitch em graus. Quem dita a posição é o dono (o jogador), via
// SetPosition; a câmera nunca é mutada por fora.
type Controller struct {
	position mgl32.Vec3
	yaw      float32 // graus, 0 olhando para +X
	pitch    float32 // graus, positivo para cima

	fov         float32
	Sensitivity float32
}

// New cria a câmera olhando para +X com o FOV dado.
func New(fov float32) *Controller {
	return &Controller{
		yaw:         0,
		pitch:       0,
		fov:         util.Clamp(fov, minFov, maxFov),
		Sensitivity: 0.1,
	}
}

// Position devolve a posição do olho.
func (c *Controller) Position() mgl32.Vec3 {
	return c.position
}

// SetPosition move o olho da câmera. É o único canal de sincronização
// com o corpo do jogador.
func (c *Controller) SetPosition(eye mgl32.Vec3) {
	c.position = eye
}

// Yaw e Pitch expõem a orientação em graus.
func (c *Controller) Yaw() float32   { return c.yaw }
func (c *Controller) Pitch() float32 { return c.pitch }

// OnMouseMove aplica um delta de mouse à orientação, com o pitch preso a
// ±89 graus para não cruzar o zênite.
func (c *Controller) OnMouseMove(dx, dy float32) {
	c.yaw += dx * c.Sensitivity
	c.pitch = util.Clamp(c.pitch-dy*c.Sensitivity, -maxPitch, maxPitch)
}

// Fov devolve o campo de visão vertical em graus.
func (c *Controller) Fov() float32 {
	return c.fov
}

// SetFov ajusta o campo de visão dentro dos limites do zoom.
func (c *Controller) SetFov(fov float32) {
	c.fov = util.Clamp(fov, minFov, maxFov)
}

// Front devolve o vetor de visada unitário.
func (c *Controller) Front() mgl32.Vec3 {
	yaw := mgl32.DegToRad(c.yaw)
	pitch := mgl32.DegToRad(c.pitch)
	return mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}
}

// WalkVectors devolve as direções de andar no plano do chão: frente e
// direita derivadas só do yaw, para o pitch não frear a caminhada.
func (c *Controller) WalkVectors() (forward, right mgl32.Vec3) {
	yaw := mgl32.DegToRad(c.yaw)
	forward = mgl32.Vec3{math32.Cos(yaw), 0, math32.Sin(yaw)}
	right = mgl32.Vec3{-math32.Sin(yaw), 0, math32.Cos(yaw)}
	return forward, right
}

// RLCamera materializa o estado como uma Camera3D do raylib para o
// BeginMode3D do frame.
func (c *Controller) RLCamera() rl.Camera3D {
	front := c.Front()
	target := c.position.Add(front)
	return rl.Camera3D{
		Position:   rl.Vector3{X: c.position.X(), Y: c.position.Y(), Z: c.position.Z()},
		Target:     rl.Vector3{X: target.X(), Y: target.Y(), Z: target.Z()},
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.fov,
		Projection: rl.CameraPerspective,
	}
}
