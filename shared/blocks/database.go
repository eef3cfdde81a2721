package blocks

// O atlas de texturas é uma grade de 16x16 tiles. As coordenadas UV são
// quantizadas em uint16 cobrindo [0, 65536): cada tile ocupa um span de
// 4096 unidades. O renderer normaliza dividindo por 65536.

const (
	// AtlasTiles é o número de tiles por lado do atlas.
	AtlasTiles = 16
	// TileSpan é a largura de um tile em unidades de UV quantizado.
	TileSpan = 65536 / AtlasTiles
)

// tile identifica a posição (coluna, linha) de um tile no atlas.
type tile struct {
	tx, ty uint16
}

// quad expande um tile para os quatro pares UV de um quad, na ordem
// canônica (u0,v1) (u1,v1) (u1,v0) (u0,v0). A borda superior desconta 1
// para evitar sangria do tile vizinho no filtro da GPU.
func (t tile) quad() [8]uint16 {
	u0 := t.tx * TileSpan
	v0 := t.ty * TileSpan
	u1 := u0 + TileSpan - 1
	v1 := v0 + TileSpan - 1
	return [8]uint16{
		u0, v1,
		u1, v1,
		u1, v0,
		u0, v0,
	}
}

// faceTiles mapeia cada tipo para os tiles de topo, lateral e fundo.
// Tipos de modelo usam apenas o campo side.
type faceTiles struct {
	top, side, bottom tile
}

var atlas = [typeCount]faceTiles{
	Stone:     {top: tile{1, 0}, side: tile{1, 0}, bottom: tile{1, 0}},
	Dirt:      {top: tile{2, 0}, side: tile{2, 0}, bottom: tile{2, 0}},
	Grass:     {top: tile{0, 0}, side: tile{3, 0}, bottom: tile{2, 0}},
	Sand:      {top: tile{2, 1}, side: tile{2, 1}, bottom: tile{2, 1}},
	Gravel:    {top: tile{3, 1}, side: tile{3, 1}, bottom: tile{3, 1}},
	Log:       {top: tile{5, 1}, side: tile{4, 1}, bottom: tile{5, 1}},
	Planks:    {top: tile{4, 0}, side: tile{4, 0}, bottom: tile{4, 0}},
	Leaves:    {top: tile{5, 3}, side: tile{5, 3}, bottom: tile{5, 3}},
	Glass:     {top: tile{1, 3}, side: tile{1, 3}, bottom: tile{1, 3}},
	Water:     {top: tile{13, 12}, side: tile{13, 12}, bottom: tile{13, 12}},
	Dandelion: {side: tile{13, 0}},
	Rose:      {side: tile{12, 0}},
	DeadBush:  {side: tile{7, 3}},
	TallGrass: {side: tile{7, 2}},
}

// GetBlockTexture retorna os quatro pares UV do tile da face pedida.
// O mesher trata o resultado como opaco; a regra de reversão de UV
// fica no emissor de faces.
func GetBlockTexture(t Type, f Face) [8]uint16 {
	if t >= typeCount || f >= FaceCount {
		return [8]uint16{}
	}
	ft := atlas[t]
	switch f {
	case FaceTop:
		return ft.top.quad()
	case FaceBottom:
		return ft.bottom.quad()
	default:
		return ft.side.quad()
	}
}

// ModelVertex é um vértice de template de modelo em espaço de cubo
// unitário. Posições ficam em cantos inteiros do cubo para sobreviver
// ao empacotamento em bytes do vértice final.
type ModelVertex struct {
	Position [3]uint8
	UV       [2]uint16
}

// modelTemplates guarda os templates pré-computados por tipo.
var modelTemplates [typeCount][]ModelVertex

func init() {
	for t := Type(0); t < typeCount; t++ {
		if t.IsModel() {
			modelTemplates[t] = buildCrossTemplate(t)
		}
	}
}

// buildCrossTemplate gera os dois quads diagonais cruzados de um modelo
// (flores, arbustos), já expandidos em triângulos crus: o caminho de
// desenho de modelos não usa quads indexados.
func buildCrossTemplate(t Type) []ModelVertex {
	uv := atlas[t].side.quad()
	corner := func(i int) [2]uint16 {
		return [2]uint16{uv[i*2], uv[i*2+1]}
	}

	// Quad diagonal 1: (0,0,0) -> (1,0,1), quad diagonal 2: (1,0,0) -> (0,0,1)
	planes := [2][4][3]uint8{
		{{0, 0, 0}, {1, 0, 1}, {1, 1, 1}, {0, 1, 0}},
		{{1, 0, 0}, {0, 0, 1}, {0, 1, 1}, {1, 1, 0}},
	}

	verts := make([]ModelVertex, 0, 12)
	for _, p := range planes {
		quad := [4]ModelVertex{
			{Position: p[0], UV: corner(0)},
			{Position: p[1], UV: corner(1)},
			{Position: p[2], UV: corner(2)},
			{Position: p[3], UV: corner(3)},
		}
		// Dois triângulos por quad: 0,1,2 e 2,3,0
		verts = append(verts, quad[0], quad[1], quad[2], quad[2], quad[3], quad[0])
	}
	return verts
}

// ModelVertices retorna o template de vértices do tipo, ou nil se o tipo
// não for um bloco de modelo.
func ModelVertices(t Type) []ModelVertex {
	if t >= typeCount {
		return nil
	}
	return modelTemplates[t]
}
