package util

import (
	"fmt"
	"math"
)

// BlockPos representa uma coordenada inteira de bloco no espaço do mundo.
// X = leste/oeste, Y = vertical (para cima), Z = norte/sul
type BlockPos struct {
	X, Y, Z int32
}

// NewBlockPos cria uma nova coordenada de bloco.
func NewBlockPos(x, y, z int32) BlockPos {
	return BlockPos{X: x, Y: y, Z: z}
}

// Add soma duas coordenadas.
func (p BlockPos) Add(other BlockPos) BlockPos {
	return BlockPos{
		X: p.X + other.X,
		Y: p.Y + other.Y,
		Z: p.Z + other.Z,
	}
}

// Sub subtrai duas coordenadas.
func (p BlockPos) Sub(other BlockPos) BlockPos {
	return BlockPos{
		X: p.X - other.X,
		Y: p.Y - other.Y,
		Z: p.Z - other.Z,
	}
}

// Equals verifica igualdade entre coordenadas.
func (p BlockPos) Equals(other BlockPos) bool {
	return p.X == other.X && p.Y == other.Y && p.Z == other.Z
}

// String retorna a representação em string da coordenada.
func (p BlockPos) String() string {
	return fmt.Sprintf("(%d, %d, %d)", p.X, p.Y, p.Z)
}

// ChunkPos representa a posição de um chunk em unidades de chunk.
// Chunks são colunas verticais completas, então só há X e Z.
type ChunkPos struct {
	X, Z int32
}

// NewChunkPos cria uma nova posição de chunk.
func NewChunkPos(x, z int32) ChunkPos {
	return ChunkPos{X: x, Z: z}
}

// String retorna a representação em string da posição.
func (c ChunkPos) String() string {
	return fmt.Sprintf("[%d, %d]", c.X, c.Z)
}

// FloorDiv divide arredondando para baixo (divisão euclidiana),
// necessário para mapear coordenadas negativas do mundo para chunks.
func FloorDiv(a, n int32) int32 {
	q := a / n
	if a%n != 0 && (a < 0) != (n < 0) {
		q--
	}
	return q
}

// FloorMod retorna o resto não-negativo correspondente a FloorDiv.
func FloorMod(a, n int32) int32 {
	return a - FloorDiv(a, n)*n
}

// FloorBlock converte uma posição contínua do mundo para a coordenada
// inteira do bloco que a contém.
func FloorBlock(x, y, z float32) BlockPos {
	return BlockPos{
		X: int32(math.Floor(float64(x))),
		Y: int32(math.Floor(float64(y))),
		Z: int32(math.Floor(float64(z))),
	}
}
