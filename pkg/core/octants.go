package core

import "github.com/go-gl/mathgl/mgl32"

// Octants are the eight equal boxes produced by splitting an Aabb at its center.
// Top is +Y, front is +Z and right is +X.
type Octants struct {
	TopFrontLeft     Aabb
	TopFrontRight    Aabb
	TopBackLeft      Aabb
	TopBackRight     Aabb
	BottomFrontLeft  Aabb
	BottomFrontRight Aabb
	BottomBackLeft   Aabb
	BottomBackRight  Aabb
}

// All returns the octants in field order
func (o Octants) All() [8]Aabb {
	return [8]Aabb{
		o.TopFrontLeft, o.TopFrontRight, o.TopBackLeft, o.TopBackRight,
		o.BottomFrontLeft, o.BottomFrontRight, o.BottomBackLeft, o.BottomBackRight,
	}
}

// Partition splits the box into eight octants meeting at its center.
// Partitioning an infinite box returns ErrInfinitePartition.
func (a Aabb) Partition() (Octants, error) {
	if a.IsInfinite() {
		return Octants{}, ErrInfinitePartition
	}

	half := a.Extents.Mul(0.5)
	octant := func(x, y, z float32) Aabb {
		offset := mgl32.Vec3{x * half.X(), y * half.Y(), z * half.Z()}
		return Aabb{Center: a.Center.Add(offset), Extents: half}
	}

	return Octants{
		TopFrontLeft:     octant(-1, 1, 1),
		TopFrontRight:    octant(1, 1, 1),
		TopBackLeft:      octant(-1, 1, -1),
		TopBackRight:     octant(1, 1, -1),
		BottomFrontLeft:  octant(-1, -1, 1),
		BottomFrontRight: octant(1, -1, 1),
		BottomBackLeft:   octant(-1, -1, -1),
		BottomBackRight:  octant(1, -1, -1),
	}, nil
}

// MustPartition is like Partition but panics on an infinite box
func (a Aabb) MustPartition() Octants {
	octants, err := a.Partition()
	if err != nil {
		panic(err)
	}
	return octants
}
