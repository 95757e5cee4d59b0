package service

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

var (
	ErrEmptyDistribution = errors.New("board size distribution is empty")
	ErrInvalidWeight     = errors.New("board size weight must be positive")
)

// SizeWeight is one entry of a SizeDistribution.
type SizeWeight struct {
	Size   int
	Weight int
}

// SizeDistribution is a discrete weighted distribution over board sizes.
type SizeDistribution []SizeWeight

// DefaultSizeDistribution favours small boards: 3:6, 4:4, 5:2, 6:1.
func DefaultSizeDistribution() SizeDistribution {
	return SizeDistribution{
		{Size: 3, Weight: 6},
		{Size: 4, Weight: 4},
		{Size: 5, Weight: 2},
		{Size: 6, Weight: 1},
	}
}

// NewSizeDistribution builds a distribution from size -> weight, ordered by size.
func NewSizeDistribution(weights map[int]int) SizeDistribution {
	dist := make(SizeDistribution, 0, len(weights))
	for size, weight := range weights {
		dist = append(dist, SizeWeight{Size: size, Weight: weight})
	}

	sort.Slice(dist, func(i, j int) bool { return dist[i].Size < dist[j].Size })

	return dist
}

func (that SizeDistribution) Validate() error {
	if len(that) == 0 {
		return ErrEmptyDistribution
	}

	for _, entry := range that {
		if entry.Size < entity.MinBoardSize || entry.Size > entity.MaxBoardSize {
			return fmt.Errorf("%w: %d", entity.ErrInvalidBoardSize, entry.Size)
		}
		if entry.Weight <= 0 {
			return fmt.Errorf("%w: size %d has weight %d", ErrInvalidWeight, entry.Size, entry.Weight)
		}
	}

	return nil
}

func (that SizeDistribution) totalWeight() int {
	total := 0
	for _, entry := range that {
		total += entry.Weight
	}
	return total
}

// Pick draws a size with probability proportional to its weight.
// The distribution must be valid.
func (that SizeDistribution) Pick(rng *rand.Rand) int {
	n := rng.IntN(that.totalWeight())
	for _, entry := range that {
		if n < entry.Weight {
			return entry.Size
		}
		n -= entry.Weight
	}

	return that[len(that)-1].Size
}

// ResolveBoardSize returns fixed when it is set, otherwise a size drawn from dist.
func ResolveBoardSize(fixed int, dist SizeDistribution, rng *rand.Rand) (int, error) {
	if fixed != 0 {
		if fixed < entity.MinBoardSize || fixed > entity.MaxBoardSize {
			return 0, fmt.Errorf("%w: %d", entity.ErrInvalidBoardSize, fixed)
		}
		return fixed, nil
	}

	if err := dist.Validate(); err != nil {
		return 0, fmt.Errorf("invalid board size distribution: %w", err)
	}

	return dist.Pick(rng), nil
}
