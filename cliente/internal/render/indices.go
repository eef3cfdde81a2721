package render

import (
	"sync"

	"VoxelVision/shared/world"
)

// MaxQuads é o pior caso de quads de um chunk: toda célula com as seis
// faces visíveis. Dimensiona o padrão de índices compartilhado.
const MaxQuads = world.CX * world.CY * world.CZ * 6

// quadPattern é o par de triângulos de um quad, em índices locais.
var quadPattern = [6]uint32{0, 1, 2, 2, 3, 0}

var (
	quadIndicesOnce sync.Once
	quadIndices     []uint32
)

// QuadIndices devolve o padrão de índices compartilhado por todos os
// streams de quads do processo, construído uma única vez: o padrão
// (0,1,2,2,3,0) repetido com offset de 4 por quad, até MaxQuads.
func QuadIndices() []uint32 {
	quadIndicesOnce.Do(func() {
		quadIndices = make([]uint32, 0, MaxQuads*6)
		for q := uint32(0); q < MaxQuads; q++ {
			base := q * 4
			for _, p := range quadPattern {
				quadIndices = append(quadIndices, base+p)
			}
		}
	})
	return quadIndices
}

// IndexCountFor dá quantos índices do padrão um stream de quads consome.
func IndexCountFor(vertexCount int) int {
	return vertexCount / 4 * 6
}
