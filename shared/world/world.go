package world

import (
	"sync"

	"VoxelVision/shared/blocks"
	"VoxelVision/shared/util"
)

// World é o armazenamento autoritativo de chunks. O streaming e a edição
// gravam na thread principal enquanto os workers do mesher leem, então
// tanto o mapa quanto os grids são protegidos pelo RWMutex: escritas de
// grid seguram o lock de escrita e builds leem de uma cópia tirada sob o
// lock de leitura (ver SnapshotRegion).
type World struct {
	mu     sync.RWMutex
	chunks map[util.ChunkPos]*Chunk
}

// New cria um mundo vazio.
func New() *World {
	return &World{chunks: make(map[util.ChunkPos]*Chunk)}
}

// Add insere (ou substitui) um chunk.
func (w *World) Add(c *Chunk) {
	w.mu.Lock()
	w.chunks[c.Pos] = c
	w.mu.Unlock()
}

// Remove descarta o chunk na posição dada.
func (w *World) Remove(pos util.ChunkPos) {
	w.mu.Lock()
	delete(w.chunks, pos)
	w.mu.Unlock()
}

// Chunk retorna o chunk na posição dada, ou nil se não estiver carregado.
func (w *World) Chunk(pos util.ChunkPos) *Chunk {
	w.mu.RLock()
	c := w.chunks[pos]
	w.mu.RUnlock()
	return c
}

// Len retorna quantos chunks estão carregados.
func (w *World) Len() int {
	w.mu.RLock()
	n := len(w.chunks)
	w.mu.RUnlock()
	return n
}

// Region é uma cópia isolada dos grids de um chunk e dos seus quatro
// vizinhos planares, tirada de uma vez sob o lock do mundo. Builds de
// mesh leem a cópia enquanto edições seguem mutando os grids vivos, sem
// corrida entre as duas pontas. Vizinhos ausentes ficam nil.
type Region struct {
	Pos util.ChunkPos

	Center *BlockGrid
	Left   *BlockGrid // -X
	Right  *BlockGrid // +X
	Front  *BlockGrid // +Z
	Back   *BlockGrid // -Z

	CenterLight *LightGrid
	LeftLight   *LightGrid
	RightLight  *LightGrid
	FrontLight  *LightGrid
	BackLight   *LightGrid
}

// copyGrids duplica os grids de um chunk. Chamar só com o lock tomado.
func copyGrids(c *Chunk) (*BlockGrid, *LightGrid) {
	if c == nil {
		return nil, nil
	}
	b := c.Blocks
	l := c.Light
	return &b, &l
}

// SnapshotRegion copia o chunk em pos e os quatro vizinhos planares sob
// uma única tomada do lock de leitura. Retorna ok=false se o chunk
// central não estiver carregado.
func (w *World) SnapshotRegion(pos util.ChunkPos) (Region, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	center := w.chunks[pos]
	if center == nil {
		return Region{}, false
	}

	r := Region{Pos: pos}
	r.Center, r.CenterLight = copyGrids(center)
	r.Left, r.LeftLight = copyGrids(w.chunks[util.NewChunkPos(pos.X-1, pos.Z)])
	r.Right, r.RightLight = copyGrids(w.chunks[util.NewChunkPos(pos.X+1, pos.Z)])
	r.Front, r.FrontLight = copyGrids(w.chunks[util.NewChunkPos(pos.X, pos.Z+1)])
	r.Back, r.BackLight = copyGrids(w.chunks[util.NewChunkPos(pos.X, pos.Z-1)])
	return r, true
}

// split converte uma coordenada de bloco do mundo em (chunk, local).
func split(x, z int32) (util.ChunkPos, int, int) {
	cp := util.NewChunkPos(util.FloorDiv(x, CX), util.FloorDiv(z, CZ))
	return cp, int(util.FloorMod(x, CX)), int(util.FloorMod(z, CZ))
}

// ChunkPosOf retorna a posição do chunk que contém a coordenada de bloco.
func ChunkPosOf(p util.BlockPos) util.ChunkPos {
	cp, _, _ := split(p.X, p.Z)
	return cp
}

// BlockAt retorna o bloco na coordenada de mundo. Chunk ausente ou Y fora
// do intervalo contam como ar.
func (w *World) BlockAt(x, y, z int32) blocks.Block {
	if y < 0 || y >= CY {
		return blocks.Block{}
	}
	cp, lx, lz := split(x, z)

	w.mu.RLock()
	defer w.mu.RUnlock()
	c := w.chunks[cp]
	if c == nil {
		return blocks.Block{}
	}
	return c.Blocks[lx][y][lz]
}

// SetBlock grava um tipo na coordenada de mundo, sob o lock de escrita
// para não correr com snapshots de build. Retorna false se o chunk não
// estiver carregado ou Y estiver fora do intervalo.
func (w *World) SetBlock(x, y, z int32, t blocks.Type) bool {
	if y < 0 || y >= CY {
		return false
	}
	cp, lx, lz := split(x, z)

	w.mu.Lock()
	defer w.mu.Unlock()
	c := w.chunks[cp]
	if c == nil {
		return false
	}
	c.Blocks[lx][y][lz] = blocks.Block{Type: t}
	return true
}

// IsSolidAt é o callback consumido pela ponte voxel↔física: reporta se a
// célula contém um bloco colidível.
func (w *World) IsSolidAt(x, y, z int32) bool {
	return w.BlockAt(x, y, z).Collidable()
}

// SurfaceY retorna o Y do primeiro bloco não-ar a partir do topo da
// coluna, ou -1 se a coluna for toda ar (ou o chunk não existir).
func (w *World) SurfaceY(x, z int32) int32 {
	cp, lx, lz := split(x, z)

	w.mu.RLock()
	defer w.mu.RUnlock()
	c := w.chunks[cp]
	if c == nil {
		return -1
	}
	for y := CY - 1; y >= 0; y-- {
		if !c.Blocks[lx][y][lz].IsAir() {
			return int32(y)
		}
	}
	return -1
}
