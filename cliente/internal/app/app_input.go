package app

import (
	"VoxelVision/cliente/internal/player"
	"VoxelVision/shared/blocks"
	"VoxelVision/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// editReach é o alcance de edição de blocos a partir do olho.
const editReach = 5.0

// hotbar são os blocos selecionáveis pelas teclas numéricas.
var hotbar = []blocks.Type{
	blocks.Stone, blocks.Dirt, blocks.Grass, blocks.Sand,
	blocks.Log, blocks.Planks, blocks.Leaves, blocks.Glass, blocks.Water,
}

// updateInput traduz a entrada crua do raylib em eventos do jogador e
// trata a edição de blocos.
func (a *App) updateInput() {
	if delta := rl.GetMouseDelta(); delta.X != 0 || delta.Y != 0 {
		a.player.OnEvent(player.MouseMoveEvent{DX: delta.X, DY: delta.Y})
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		a.player.OnEvent(player.ScrollEvent{Delta: wheel})
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.player.OnEvent(player.JumpEvent{})
	}
	if rl.IsKeyPressed(rl.KeyF) {
		a.player.OnEvent(player.ToggleFlyEvent{})
	}

	for i, t := range hotbar {
		if rl.IsKeyPressed(int32(rl.KeyOne) + int32(i)) {
			a.heldBlock = t
		}
	}

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		a.breakBlock()
	}
	if rl.IsMouseButtonPressed(rl.MouseRightButton) {
		a.placeBlock()
	}
}

// sampleInput amostra as teclas de movimento seguradas.
func (a *App) sampleInput() player.InputState {
	return player.InputState{
		Forward:  rl.IsKeyDown(rl.KeyW),
		Backward: rl.IsKeyDown(rl.KeyS),
		Left:     rl.IsKeyDown(rl.KeyA),
		Right:    rl.IsKeyDown(rl.KeyD),
		Up:       rl.IsKeyDown(rl.KeySpace),
		Down:     rl.IsKeyDown(rl.KeyLeftShift),
	}
}

// raycastBlock marcha o raio de visada célula a célula até o alcance de
// edição. Devolve a primeira célula não-ar e a célula vazia anterior
// (onde um bloco seria colocado).
func (a *App) raycastBlock() (hit, before util.BlockPos, ok bool) {
	eye := a.player.EyePosition()
	dir := a.Cam.Front()

	const step = 0.05
	prev := util.FloorBlock(eye.X(), eye.Y(), eye.Z())
	for t := float32(step); t <= editReach; t += step {
		p := eye.Add(dir.Mul(t))
		cell := util.FloorBlock(p.X(), p.Y(), p.Z())
		if cell.Equals(prev) {
			continue
		}
		if !a.world.BlockAt(cell.X, cell.Y, cell.Z).IsAir() {
			return cell, prev, true
		}
		prev = cell
	}
	return util.BlockPos{}, util.BlockPos{}, false
}

// breakBlock remove o bloco na mira e reconcilia mesh e colisores.
func (a *App) breakBlock() {
	hit, _, ok := a.raycastBlock()
	if !ok {
		return
	}
	if !a.world.SetBlock(hit.X, hit.Y, hit.Z, blocks.Air) {
		return
	}
	a.afterEdit(hit)
}

// placeBlock coloca o bloco da mão na célula vazia diante do alvo, a
// menos que ela atravesse o corpo do jogador.
func (a *App) placeBlock() {
	_, before, ok := a.raycastBlock()
	if !ok {
		return
	}
	if !a.world.BlockAt(before.X, before.Y, before.Z).IsAir() {
		return
	}
	if a.heldBlock.Collidable() && a.player.OverlapsCell(before) {
		return
	}
	if !a.world.SetBlock(before.X, before.Y, before.Z, a.heldBlock) {
		return
	}
	a.afterEdit(before)
}

// afterEdit propaga uma edição de célula para o mesher e para a física.
func (a *App) afterEdit(p util.BlockPos) {
	a.markDirty(p)
	if bridge := a.player.Bridge(); bridge != nil {
		bridge.EnsureBlock(p)
	}
}
