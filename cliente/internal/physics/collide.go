package physics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// collisionEps absorve ruído de float nas comparações de contato.
const collisionEps = 1e-5

// box é um AABB em coordenadas de mundo.
type box struct {
	Min, Max mgl32.Vec3
}

// boxAt monta um AABB a partir do centro e das meias-extensões.
func boxAt(center, half mgl32.Vec3) box {
	return box{Min: center.Sub(half), Max: center.Add(half)}
}

func (b box) center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

func (b box) half() mgl32.Vec3 {
	return b.Max.Sub(b.Min).Mul(0.5)
}

func (b box) translate(v mgl32.Vec3) box {
	return box{Min: b.Min.Add(v), Max: b.Max.Add(v)}
}

// extend cresce o AABB na direção do deslocamento, para a busca de
// candidatos cobrir todo o varrido.
func (b box) extend(v mgl32.Vec3) box {
	out := b
	for i := 0; i < 3; i++ {
		if v[i] < 0 {
			out.Min[i] += v[i]
		} else {
			out.Max[i] += v[i]
		}
	}
	return out
}

func (b box) intersects(o box) bool {
	return b.Min[0] < o.Max[0]-collisionEps && b.Max[0] > o.Min[0]+collisionEps &&
		b.Min[1] < o.Max[1]-collisionEps && b.Max[1] > o.Min[1]+collisionEps &&
		b.Min[2] < o.Max[2]-collisionEps && b.Max[2] > o.Min[2]+collisionEps
}

// clipY recorta um deslocamento vertical do AABB móvel contra este AABB
// estacionário. Só atua quando as projeções X/Z se sobrepõem.
func (b box) clipY(moving box, dy float32) float32 {
	if moving.Max[0] <= b.Min[0]+collisionEps || moving.Min[0] >= b.Max[0]-collisionEps {
		return dy
	}
	if moving.Max[2] <= b.Min[2]+collisionEps || moving.Min[2] >= b.Max[2]-collisionEps {
		return dy
	}
	if dy > 0 && moving.Max[1] <= b.Min[1]+collisionEps {
		if d := b.Min[1] - moving.Max[1] - collisionEps; d < dy {
			dy = math32.Max(d, 0)
		}
	}
	if dy < 0 && moving.Min[1] >= b.Max[1]-collisionEps {
		if d := b.Max[1] - moving.Min[1] + collisionEps; d > dy {
			dy = math32.Min(d, 0)
		}
	}
	return dy
}

func (b box) clipX(moving box, dx float32) float32 {
	if moving.Max[1] <= b.Min[1]+collisionEps || moving.Min[1] >= b.Max[1]-collisionEps {
		return dx
	}
	if moving.Max[2] <= b.Min[2]+collisionEps || moving.Min[2] >= b.Max[2]-collisionEps {
		return dx
	}
	if dx > 0 && moving.Max[0] <= b.Min[0]+collisionEps {
		if d := b.Min[0] - moving.Max[0] - collisionEps; d < dx {
			dx = math32.Max(d, 0)
		}
	}
	if dx < 0 && moving.Min[0] >= b.Max[0]-collisionEps {
		if d := b.Max[0] - moving.Min[0] + collisionEps; d > dx {
			dx = math32.Min(d, 0)
		}
	}
	return dx
}

func (b box) clipZ(moving box, dz float32) float32 {
	if moving.Max[0] <= b.Min[0]+collisionEps || moving.Min[0] >= b.Max[0]-collisionEps {
		return dz
	}
	if moving.Max[1] <= b.Min[1]+collisionEps || moving.Min[1] >= b.Max[1]-collisionEps {
		return dz
	}
	if dz > 0 && moving.Max[2] <= b.Min[2]+collisionEps {
		if d := b.Min[2] - moving.Max[2] - collisionEps; d < dz {
			dz = math32.Max(d, 0)
		}
	}
	if dz < 0 && moving.Min[2] >= b.Max[2]-collisionEps {
		if d := b.Max[2] - moving.Min[2] + collisionEps; d > dz {
			dz = math32.Min(d, 0)
		}
	}
	return dz
}
