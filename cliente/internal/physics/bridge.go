package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"VoxelVision/shared/util"
)

// SolidFunc responde se a célula de bloco dada deve ter um ator de
// colisão. É o único conhecimento de voxels que o bridge carrega.
type SolidFunc func(x, y, z int32) bool

// noWindow marca o centro antes da primeira janela (e depois de Clear),
// garantindo que o próximo UpdateWindow sempre varra.
const noWindow = math.MinInt32

// BlockSceneBridge espelha as células sólidas dentro de uma janela
// deslizante como atores-caixa estáticos na cena. Invariante: o conjunto
// de chaves do mapa é exatamente o conjunto de células sólidas dentro da
// janela corrente.
//
// Não é seguro para uso concorrente: o dono chama tudo da thread de
// simulação.
type BlockSceneBridge struct {
	scene    *Scene
	material Material
	solid    SolidFunc

	actors map[util.BlockPos]ActorID
	center util.BlockPos
	half   util.BlockPos
}

// NewBlockSceneBridge cria o bridge sobre a cena dada.
func NewBlockSceneBridge(scene *Scene, material Material, solid SolidFunc) *BlockSceneBridge {
	return &BlockSceneBridge{
		scene:    scene,
		material: material,
		solid:    solid,
		actors:   make(map[util.BlockPos]ActorID),
		center:   util.NewBlockPos(noWindow, noWindow, noWindow),
	}
}

// blockActorBox dá centro e meia-extensão do ator-caixa de uma célula: o
// cubo unitário do bloco.
func blockActorBox(p util.BlockPos) (mgl32.Vec3, mgl32.Vec3) {
	center := mgl32.Vec3{float32(p.X) + 0.5, float32(p.Y) + 0.5, float32(p.Z) + 0.5}
	return center, mgl32.Vec3{0.5, 0.5, 0.5}
}

// inWindow testa pertencimento à janela dada.
func inWindow(p, center, half util.BlockPos) bool {
	return util.Abs(p.X-center.X) <= half.X &&
		util.Abs(p.Y-center.Y) <= half.Y &&
		util.Abs(p.Z-center.Z) <= half.Z
}

// UpdateWindow desliza a janela para o novo centro. Com o centro
// inalterado é não-op. Atores que saíram da nova janela são liberados
// antes da varredura que cria os que faltam, então o espelho nunca
// mantém ator fora da janela corrente.
func (b *BlockSceneBridge) UpdateWindow(center, half util.BlockPos) {
	if center.Equals(b.center) && half.Equals(b.half) {
		return
	}
	b.center = center
	b.half = half

	for pos, id := range b.actors {
		if !inWindow(pos, center, half) {
			b.scene.RemoveActor(id)
			delete(b.actors, pos)
		}
	}

	for x := center.X - half.X; x <= center.X+half.X; x++ {
		for y := center.Y - half.Y; y <= center.Y+half.Y; y++ {
			for z := center.Z - half.Z; z <= center.Z+half.Z; z++ {
				pos := util.NewBlockPos(x, y, z)
				_, exists := b.actors[pos]
				solid := b.solid(x, y, z)
				switch {
				case solid && !exists:
					c, h := blockActorBox(pos)
					b.actors[pos] = b.scene.AddStaticBox(c, h, b.material)
				case !solid && exists:
					// Célula editada desde a última janela.
					b.scene.RemoveActor(b.actors[pos])
					delete(b.actors, pos)
				}
			}
		}
	}
}

// EnsureBlock reconcilia uma única célula depois de uma edição de bloco.
// Fora da janela corrente é não-op; dentro, cria ou libera o ator para
// casar com o estado do voxel. Idempotente.
func (b *BlockSceneBridge) EnsureBlock(pos util.BlockPos) {
	if !inWindow(pos, b.center, b.half) {
		return
	}

	_, exists := b.actors[pos]
	solid := b.solid(pos.X, pos.Y, pos.Z)
	switch {
	case solid && !exists:
		c, h := blockActorBox(pos)
		b.actors[pos] = b.scene.AddStaticBox(c, h, b.material)
	case !solid && exists:
		b.scene.RemoveActor(b.actors[pos])
		delete(b.actors, pos)
	}
}

// Clear libera todos os atores e invalida a janela, forçando o próximo
// UpdateWindow a varrer do zero.
func (b *BlockSceneBridge) Clear() {
	for pos, id := range b.actors {
		b.scene.RemoveActor(id)
		delete(b.actors, pos)
	}
	b.center = util.NewBlockPos(noWindow, noWindow, noWindow)
	b.half = util.BlockPos{}
}

// ActorCount reporta quantos atores o bridge possui.
func (b *BlockSceneBridge) ActorCount() int {
	return len(b.actors)
}

// Contains reporta se a célula tem ator espelhado.
func (b *BlockSceneBridge) Contains(pos util.BlockPos) bool {
	_, ok := b.actors[pos]
	return ok
}
