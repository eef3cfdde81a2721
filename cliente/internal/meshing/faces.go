package meshing

import (
	"log"

	"VoxelVision/shared/blocks"
	"VoxelVision/shared/world"
)

// faceOffsets dá o deslocamento unitário de cada face, na ordem canônica
// {topo +Y, fundo -Y, frente +Z, trás -Z, esquerda -X, direita +X}.
var faceOffsets = [blocks.FaceCount][3]int{
	blocks.FaceTop:    {0, 1, 0},
	blocks.FaceBottom: {0, -1, 0},
	blocks.FaceFront:  {0, 0, 1},
	blocks.FaceBack:   {0, 0, -1},
	blocks.FaceLeft:   {-1, 0, 0},
	blocks.FaceRight:  {1, 0, 0},
}

// faceShades é a tabela de sombreamento direcional por face: topo mais
// claro, fundo mais escuro.
var faceShades = [blocks.FaceCount]uint8{10, 3, 6, 7, 6, 7}

// quadTemplates contém os quatro cantos de cada face em espaço de cubo
// unitário, já na ordem de emissão (o winding original, com a inversão de
// ordem de vértices do fundo/frente/esquerda embutida na tabela).
var quadTemplates = [blocks.FaceCount][4][3]uint8{
	blocks.FaceTop:    {{0, 1, 0}, {1, 1, 0}, {1, 1, 1}, {0, 1, 1}},
	blocks.FaceBottom: {{0, 0, 1}, {1, 0, 1}, {1, 0, 0}, {0, 0, 0}},
	blocks.FaceFront:  {{0, 1, 1}, {1, 1, 1}, {1, 0, 1}, {0, 0, 1}},
	blocks.FaceBack:   {{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
	blocks.FaceLeft:   {{0, 0, 1}, {0, 0, 0}, {0, 1, 0}, {0, 1, 1}},
	blocks.FaceRight:  {{1, 1, 1}, {1, 1, 0}, {1, 0, 0}, {1, 0, 1}},
}

// reverseUV marca as faces que leem o quad do atlas em ordem invertida
// (último par primeiro), compensando a orientação do atlas.
var reverseUV = [blocks.FaceCount]bool{
	blocks.FaceTop:    false,
	blocks.FaceBottom: true,
	blocks.FaceFront:  true,
	blocks.FaceBack:   false,
	blocks.FaceLeft:   true,
	blocks.FaceRight:  false,
}

// shadowRange é até quantas células acima um bloco que projeta sombra
// escurece a face superior (limitado ao topo do chunk).
const shadowRange = 24

// waterShade é o sentinela de sombreamento de superfícies de água,
// consumido pelo caminho de tingimento do renderer.
const waterShade = 85

// hasShadow reporta se a coluna acima de (x,y,z) tem algum bloco que
// projeta sombra dentro do alcance.
func hasShadow(nb *Neighborhood, x, y, z int) bool {
	for i := y + 1; i < y+shadowRange; i++ {
		if i >= world.CY {
			break
		}
		if nb.Center[x][i][z].CastsShadow() {
			return true
		}
	}
	return false
}

// emitFace anexa os quatro vértices de uma face de célula ao stream de
// destino: posição transladada do template, UVs do atlas (invertidos
// conforme a face), luz idêntica nos quatro vértices e sombreamento
// direcional com as exceções de sombra no topo e de água.
func emitFace(nb *Neighborhood, face blocks.Face, x, y, z int, t blocks.Type, light uint8, dst *[]Vertex) {
	if face >= blocks.FaceCount {
		// Erro de programação do chamador: não emite nada.
		log.Printf("[Mesher] direção de face inválida: %d", face)
		return
	}

	shade := faceShades[face]
	if face == blocks.FaceTop && hasShadow(nb, x, y, z) {
		shade -= 2
	}
	if t == blocks.Water {
		shade = waterShade
	}

	uv := blocks.GetBlockTexture(t, face)
	tpl := &quadTemplates[face]

	for i := 0; i < 4; i++ {
		p := i
		if reverseUV[face] {
			p = 3 - i
		}
		*dst = append(*dst, Vertex{
			Position: [3]uint8{
				uint8(x) + tpl[i][0],
				uint8(y) + tpl[i][1],
				uint8(z) + tpl[i][2],
			},
			UV:    [2]uint16{uv[p*2], uv[p*2+1]},
			Light: light,
			Shade: shade,
		})
	}
}

// faceVisible é a única fonte da regra de visibilidade de faces.
//
// Opaco: a face aparece se o vizinho não for opaco (ar ou transparente).
// Transparente: a face aparece contra ar ou contra um transparente de
// tipo diferente — é o que produz a "casca" de agregados transparentes.
func faceVisible(cur, nb blocks.Block) bool {
	if cur.IsOpaque() {
		return !nb.IsOpaque()
	}
	if nb.IsAir() {
		return true
	}
	return nb.IsTransparent() && nb.Type != cur.Type
}
