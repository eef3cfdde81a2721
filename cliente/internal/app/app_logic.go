package app

import (
	"VoxelVision/shared/util"
	"VoxelVision/shared/world"
)

// maxGeneratePerFrame limita quantos chunks novos nascem num frame, para
// o streaming não travar o loop.
const maxGeneratePerFrame = 4

// maxUploadsPerFrame limita quantos resultados de mesh sobem à GPU por
// frame.
const maxUploadsPerFrame = 8

// playerChunk devolve o chunk sob o olho do jogador.
func (a *App) playerChunk() util.ChunkPos {
	eye := a.player.EyePosition()
	return world.ChunkPosOf(util.FloorBlock(eye.X(), eye.Y(), eye.Z()))
}

// generateAround gera sincronamente o anel inicial em volta do centro e
// marca tudo para mesh. Usado só no boot.
func (a *App) generateAround(center util.ChunkPos) {
	r := a.Config.ViewRadius
	for x := center.X - r; x <= center.X+r; x++ {
		for z := center.Z - r; z <= center.Z+r; z++ {
			pos := util.NewChunkPos(x, z)
			a.world.Add(a.gen.Generate(pos))
			a.needsMesh[pos] = true
		}
	}
}

// updateStreaming mantém o anel de chunks em volta do jogador: gera os
// que entraram no raio, descarta os que saíram e agenda mesh para os que
// já têm os quatro vizinhos.
func (a *App) updateStreaming() {
	center := a.playerChunk()
	r := a.Config.ViewRadius

	// Geração incremental dos que faltam no anel.
	generated := 0
	for x := center.X - r; x <= center.X+r && generated < maxGeneratePerFrame; x++ {
		for z := center.Z - r; z <= center.Z+r && generated < maxGeneratePerFrame; z++ {
			pos := util.NewChunkPos(x, z)
			if a.world.Chunk(pos) == nil {
				a.world.Add(a.gen.Generate(pos))
				a.needsMesh[pos] = true
				generated++
			}
		}
	}

	// Descarte de quem ficou para trás, com uma folga de histerese.
	drop := r + 2
	if a.frameCount%60 == 0 {
		for _, pos := range a.rendered() {
			if util.Abs(pos.X-center.X) > drop || util.Abs(pos.Z-center.Z) > drop {
				a.world.Remove(pos)
				a.renderer.Remove(pos)
				delete(a.needsMesh, pos)
			}
		}
	}

	// Agenda mesh de quem tem a borda determinada.
	for pos := range a.needsMesh {
		if !a.neighborsPresent(pos) {
			continue
		}
		if a.mesher.Enqueue(pos) {
			delete(a.needsMesh, pos)
		}
	}
}

// rendered lista os chunks residentes no renderer.
func (a *App) rendered() []util.ChunkPos {
	out := make([]util.ChunkPos, 0, len(a.renderer.Models))
	for pos := range a.renderer.Models {
		out = append(out, pos)
	}
	return out
}

// neighborsPresent testa os quatro vizinhos planares de um chunk.
func (a *App) neighborsPresent(pos util.ChunkPos) bool {
	return a.world.Chunk(util.NewChunkPos(pos.X-1, pos.Z)) != nil &&
		a.world.Chunk(util.NewChunkPos(pos.X+1, pos.Z)) != nil &&
		a.world.Chunk(util.NewChunkPos(pos.X, pos.Z-1)) != nil &&
		a.world.Chunk(util.NewChunkPos(pos.X, pos.Z+1)) != nil
}

// processMesherResults drena os meshes prontos para a GPU, com um teto
// por frame.
func (a *App) processMesherResults() {
	for i := 0; i < maxUploadsPerFrame; i++ {
		select {
		case res := <-a.mesher.Results():
			a.renderer.UploadResult(res)
		default:
			return
		}
	}
}

// markDirty agenda re-mesh do chunk da célula editada e dos vizinhos que
// compartilham a borda com ela.
func (a *App) markDirty(p util.BlockPos) {
	pos := world.ChunkPosOf(p)
	a.needsMesh[pos] = true

	lx := util.FloorMod(p.X, world.CX)
	lz := util.FloorMod(p.Z, world.CZ)
	if lx == 0 {
		a.needsMesh[util.NewChunkPos(pos.X-1, pos.Z)] = true
	}
	if lx == world.CX-1 {
		a.needsMesh[util.NewChunkPos(pos.X+1, pos.Z)] = true
	}
	if lz == 0 {
		a.needsMesh[util.NewChunkPos(pos.X, pos.Z-1)] = true
	}
	if lz == world.CZ-1 {
		a.needsMesh[util.NewChunkPos(pos.X, pos.Z+1)] = true
	}
}
