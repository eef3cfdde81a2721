package meshing

import (
	"VoxelVision/shared/blocks"
)

// emitModel anexa o template de vértices de um bloco de modelo (flores,
// arbustos) ao stream de modelos, transladado pela posição da célula.
// Todos os vértices recebem baseLight (a luz "do céu" vinda da célula
// acima) e o sombreamento de topo com a mesma regra de sombra das faces.
// O stream de modelos é desenhado como triângulos crus, sem índices.
func emitModel(nb *Neighborhood, x, y, z int, t blocks.Type, baseLight uint8, dst *[]Vertex) {
	tpl := blocks.ModelVertices(t)
	if tpl == nil {
		return
	}

	shade := uint8(10)
	if hasShadow(nb, x, y, z) {
		shade -= 2
	}

	for _, mv := range tpl {
		*dst = append(*dst, Vertex{
			Position: [3]uint8{
				uint8(x) + mv.Position[0],
				uint8(y) + mv.Position[1],
				uint8(z) + mv.Position[2],
			},
			UV:    mv.UV,
			Light: baseLight,
			Shade: shade,
		})
	}
}
