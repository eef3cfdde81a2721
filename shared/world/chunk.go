package world

import (
	"VoxelVision/shared/blocks"
	"VoxelVision/shared/util"
)

// Dimensões fixas de um chunk em blocos.
const (
	CX = 16
	CY = 128
	CZ = 16
)

// BlockGrid é o grid denso de blocos de um chunk.
type BlockGrid [CX][CY][CZ]blocks.Block

// LightGrid é o grid paralelo de níveis de luz (8 bits por célula).
type LightGrid [CX][CY][CZ]uint8

// Chunk é a unidade de meshing e streaming: uma coluna vertical completa
// de CX×CY×CZ blocos com o grid de luz correspondente.
type Chunk struct {
	Pos    util.ChunkPos
	Blocks BlockGrid
	Light  LightGrid
}

// NewChunk cria um chunk vazio (todo ar, luz zero) na posição dada.
func NewChunk(pos util.ChunkPos) *Chunk {
	return &Chunk{Pos: pos}
}

// InBounds reporta se a coordenada local está dentro do chunk.
func InBounds(x, y, z int) bool {
	return x >= 0 && x < CX && y >= 0 && y < CY && z >= 0 && z < CZ
}

// At retorna o bloco na coordenada local. Fora dos limites retorna ar.
func (c *Chunk) At(x, y, z int) blocks.Block {
	if !InBounds(x, y, z) {
		return blocks.Block{}
	}
	return c.Blocks[x][y][z]
}

// Set grava um tipo de bloco na coordenada local, ignorando coordenadas
// fora dos limites.
func (c *Chunk) Set(x, y, z int, t blocks.Type) {
	if !InBounds(x, y, z) {
		return
	}
	c.Blocks[x][y][z] = blocks.Block{Type: t}
}

// LightAt retorna o nível de luz local, zero fora dos limites.
func (c *Chunk) LightAt(x, y, z int) uint8 {
	if !InBounds(x, y, z) {
		return 0
	}
	return c.Light[x][y][z]
}
