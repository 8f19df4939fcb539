package core

import "github.com/pkg/errors"

var (
	// ErrEmptyMerge is returned when merging an empty list of boxes
	ErrEmptyMerge = errors.New("aabb: merge of empty list")
	// ErrInfinitePartition is returned when partitioning an unbounded box
	ErrInfinitePartition = errors.New("aabb: cannot partition an infinite box")
	// ErrNegativeExtents is the panic value of NewAabb for negative extents
	ErrNegativeExtents = errors.New("aabb: negative extents")
)
