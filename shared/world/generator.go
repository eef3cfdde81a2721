package world

import (
	"VoxelVision/shared/blocks"
	"VoxelVision/shared/util"

	"github.com/aquilax/go-perlin"
)

// Parâmetros do terreno procedural.
const (
	SeaLevel    = 52   // nível da água
	baseHeight  = 48   // altura média do terreno
	heightAmp   = 26   // amplitude do relevo
	noiseScale  = 0.02 // suavidade do relevo (menor = mais suave)
	floraScale  = 0.35 // frequência do ruído de vegetação
	floraThresh = 0.78 // acima disso nasce flora num bloco de grama
)

// Generator produz chunks de terreno a partir de ruído Perlin.
type Generator struct {
	seed   int64
	height *perlin.Perlin
	flora  *perlin.Perlin
}

// NewGenerator cria um gerador determinístico para a seed dada.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		seed:   seed,
		height: perlin.NewPerlin(2.0, 2.0, 3, seed),
		flora:  perlin.NewPerlin(2.0, 2.0, 2, seed+42),
	}
}

// noise01 converte o ruído de [-1,1] para [0,1].
func noise01(p *perlin.Perlin, x, z float64) float64 {
	return (p.Noise2D(x, z) + 1.0) / 2.0
}

// HeightAt retorna a altura do terreno (Y do bloco de superfície) na
// coluna de mundo dada.
func (g *Generator) HeightAt(wx, wz int32) int32 {
	n := noise01(g.height, float64(wx)*noiseScale, float64(wz)*noiseScale)
	h := baseHeight + int32(n*float64(heightAmp))
	if h < 1 {
		h = 1
	}
	if h >= CY-1 {
		h = CY - 2
	}
	return h
}

// Generate produz o chunk completo na posição dada: colunas de pedra,
// terra e grama, areia perto da água, água até o nível do mar, flora
// esparsa sobre grama e o grid de luz preenchido por coluna.
func (g *Generator) Generate(pos util.ChunkPos) *Chunk {
	c := NewChunk(pos)

	for x := 0; x < CX; x++ {
		for z := 0; z < CZ; z++ {
			wx := pos.X*CX + int32(x)
			wz := pos.Z*CZ + int32(z)
			h := g.HeightAt(wx, wz)

			for y := int32(0); y < h-3; y++ {
				c.Set(x, int(y), z, blocks.Stone)
			}
			for y := h - 3; y < h; y++ {
				if y >= 0 {
					c.Set(x, int(y), z, blocks.Dirt)
				}
			}

			// Superfície: areia junto à água, grama acima dela.
			switch {
			case h <= SeaLevel+1:
				c.Set(x, int(h), z, blocks.Sand)
			default:
				c.Set(x, int(h), z, blocks.Grass)
			}

			// Preenche água até o nível do mar.
			for y := h + 1; y <= SeaLevel; y++ {
				c.Set(x, int(y), z, blocks.Water)
			}

			// Flora sobre grama, escolhida por um segundo ruído.
			if h > SeaLevel+1 && int(h)+1 < CY {
				f := noise01(g.flora, float64(wx)*floraScale, float64(wz)*floraScale)
				if f > floraThresh {
					c.Set(x, int(h)+1, z, pickFlora(wx, wz))
				}
			}

			g.lightColumn(c, x, z)
		}
	}
	return c
}

// pickFlora escolhe deterministicamente o tipo de flora para a coluna.
func pickFlora(wx, wz int32) blocks.Type {
	switch (wx*31 + wz*17) & 3 {
	case 0:
		return blocks.Dandelion
	case 1:
		return blocks.Rose
	default:
		return blocks.TallGrass
	}
}

// lightColumn preenche o grid de luz de uma coluna: céu aberto recebe 15
// e abaixo do primeiro bloco que projeta sombra a luz cai para um nível
// ambiente fixo. A propagação real de luz fica fora deste gerador.
func (g *Generator) lightColumn(c *Chunk, x, z int) {
	const ambient = 4
	level := uint8(15)
	for y := CY - 1; y >= 0; y-- {
		c.Light[x][y][z] = level
		if c.Blocks[x][y][z].CastsShadow() {
			level = ambient
		}
	}
}
