package meshing

import (
	"VoxelVision/shared/blocks"
	"VoxelVision/shared/world"
)

// Neighborhood é a visão somente-leitura sobre o chunk central e seus
// quatro vizinhos planares, com os grids de luz correspondentes. Os
// grids vêm de um snapshot do mundo (world.SnapshotRegion), então o
// build inteiro lê uma cópia estável mesmo com edições em andamento.
type Neighborhood struct {
	Center *world.BlockGrid
	Left   *world.BlockGrid // -X
	Right  *world.BlockGrid // +X
	Front  *world.BlockGrid // +Z
	Back   *world.BlockGrid // -Z

	CenterLight *world.LightGrid
	LeftLight   *world.LightGrid
	RightLight  *world.LightGrid
	FrontLight  *world.LightGrid
	BackLight   *world.LightGrid
}

// Complete reporta se os quatro vizinhos planares estão presentes. Um
// chunk só é meshado com a borda determinada.
func (n *Neighborhood) Complete() bool {
	return n.Left != nil && n.Right != nil && n.Front != nil && n.Back != nil
}

func inYRange(y int) bool {
	return y >= 0 && y < world.CY
}

// BlockAt resolve (x,y,z) para o grid correto, mapeando X/Z fora dos
// limites para os vizinhos. Y fora do intervalo e vizinhos ausentes
// resolvem para ar.
func (n *Neighborhood) BlockAt(x, y, z int) blocks.Block {
	if !inYRange(y) {
		return blocks.Block{}
	}
	switch {
	case x < 0:
		if n.Left == nil {
			return blocks.Block{}
		}
		return n.Left[world.CX-1][y][z]
	case x >= world.CX:
		if n.Right == nil {
			return blocks.Block{}
		}
		return n.Right[0][y][z]
	case z < 0:
		if n.Back == nil {
			return blocks.Block{}
		}
		return n.Back[x][y][world.CZ-1]
	case z >= world.CZ:
		if n.Front == nil {
			return blocks.Block{}
		}
		return n.Front[x][y][0]
	default:
		return n.Center[x][y][z]
	}
}

// LightAt resolve o nível de luz com as mesmas regras de BlockAt,
// retornando 0 onde BlockAt retornaria ar.
func (n *Neighborhood) LightAt(x, y, z int) uint8 {
	if !inYRange(y) {
		return 0
	}
	switch {
	case x < 0:
		if n.LeftLight == nil {
			return 0
		}
		return n.LeftLight[world.CX-1][y][z]
	case x >= world.CX:
		if n.RightLight == nil {
			return 0
		}
		return n.RightLight[0][y][z]
	case z < 0:
		if n.BackLight == nil {
			return 0
		}
		return n.BackLight[x][y][world.CZ-1]
	case z >= world.CZ:
		if n.FrontLight == nil {
			return 0
		}
		return n.FrontLight[x][y][0]
	default:
		return n.CenterLight[x][y][z]
	}
}
