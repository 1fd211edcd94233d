package container

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/shipment"
	"packing/internal/pkg/errs"
	"packing/internal/pkg/guard"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrContainerIsNotConstructed is returned when using a zero-value Container.
	ErrContainerIsNotConstructed = errors.New("Container must be created via NewContainer constructor")

	// ErrCenterOfGravityUndefined is returned when the container holds no weight,
	// so the weighted mean of shipment centroids does not exist.
	ErrCenterOfGravityUndefined = errors.New("center of gravity is undefined for a container without weight")
)

// Option configures a Container at construction time.
type Option func(*Container)

// WithStrictBounds makes Pack reject placements whose footprint leaves the grid.
// Without it Pack accepts them and Valid reports the violation.
func WithStrictBounds() Option {
	return func(c *Container) {
		c.strictBounds = true
	}
}

// Container is the aggregate root of a packing arrangement.
//
// A Container owns an ordered list of packed shipments and an occupancy grid of
// length × height cells derived from it. The list is the source of truth; the
// grid only caches how many footprints cover each cell.
//
// Invariants:
//   - length and height are positive and never change
//   - the grid always equals the replay of the shipment list
//   - shipments are kept in the order they were packed; duplicates are allowed
//
// Example:
//
//	c, _ := container.NewContainer(5, 3)
//	box, _ := shipment.NewStandardShipment(2, 2, 10)
//	_ = c.Pack(box, 0, 0)
//	fmt.Println(c.Valid(), c.DegreeOfFilling()) // true 0.7333333333333333
type Container struct { //nolint:recvcheck //using for validation
	length       int
	height       int
	shipments    []PackedShipment
	grid         occupancyGrid
	strictBounds bool

	guard guard.ConstructorGuard
}

// NewContainer creates an empty Container.
//
// Parameters:
//   - length: number of cells along x (must be > 0)
//   - height: number of cells along y (must be > 0)
//   - opts: optional behaviour switches such as WithStrictBounds
//
// Returns:
//   - *Container: an empty container with a zeroed grid
//   - error: every violated dimension rule, joined
func NewContainer(length, height int, opts ...Option) (*Container, error) {
	c := &Container{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(c.setLength(length), c.setHeight(height)); err != nil {
		return nil, err
	}

	for _, opt := range opts {
		opt(c)
	}

	c.grid = newOccupancyGrid(c.length, c.height)

	return c, nil
}

// RestoreContainer rebuilds a Container by packing every placement in order.
// The grid is recomputed, so a restored container is indistinguishable from
// one that received the same Pack calls.
func RestoreContainer(length, height int, packed []PackedShipment, opts ...Option) (*Container, error) {
	c, err := NewContainer(length, height, opts...)
	if err != nil {
		return nil, err
	}

	for i, p := range packed {
		if err := c.Pack(p.Shipment(), p.X(), p.Y()); err != nil {
			return nil, fmt.Errorf("restore placement %d: %w", i, err)
		}
	}

	return c, nil
}

// Validate checks that the Container was built by a constructor.
func (c *Container) Validate() error {
	if c == nil {
		return ErrContainerIsNotConstructed
	}
	return c.guard.Validate(ErrContainerIsNotConstructed)
}

// Length returns the number of cells along x.
func (c *Container) Length() int {
	return c.length
}

// Height returns the number of cells along y.
func (c *Container) Height() int {
	return c.height
}

// StrictBounds reports whether Pack rejects out-of-grid placements.
func (c *Container) StrictBounds() bool {
	return c.strictBounds
}

// Shipments returns a copy of the packed shipments in packing order.
func (c *Container) Shipments() []PackedShipment {
	return append([]PackedShipment(nil), c.shipments...)
}

// Pack places s with its lower-left corner at (x, y).
//
// In the default mode every placement is accepted: cells of the footprint that
// fall outside the grid are skipped, and the arrangement is reported invalid by
// Valid. With WithStrictBounds such placements fail with
// *errs.ValueIsOutOfRangeError and the container is left untouched.
// In both modes a corner whose far edge would overflow int is rejected the same way.
//
// Overlap is never rejected here.
func (c *Container) Pack(s shipment.Shipment, x, y int) error {
	if err := c.Validate(); err != nil {
		return err
	}

	packed, err := NewPackedShipment(s, x, y)
	if err != nil {
		return err
	}

	if c.strictBounds {
		if err := c.checkBounds(packed); err != nil {
			return err
		}
	}

	c.shipments = append(c.shipments, packed)
	c.grid.cover(packed.Footprint())

	return nil
}

func (c *Container) checkBounds(p PackedShipment) error {
	f := p.Footprint()
	if f.X0 < 0 || f.X1 > c.length {
		return errs.NewValueIsOutOfRangeErrorWithCause("x", p.X(), 0, c.length-p.Shipment().Length(),
			fmt.Errorf("%s leaves the container along x", p))
	}
	if f.Y0 < 0 || f.Y1 > c.height {
		return errs.NewValueIsOutOfRangeErrorWithCause("y", p.Y(), 0, c.height-p.Shipment().Height(),
			fmt.Errorf("%s leaves the container along y", p))
	}
	return nil
}

// Valid reports whether every shipment lies inside the container and no two
// footprints share a cell. An empty container is valid.
func (c *Container) Valid() bool {
	for _, p := range c.shipments {
		if !p.Footprint().Within(c.length, c.height) {
			return false
		}
	}

	for i := range c.shipments {
		for j := i + 1; j < len(c.shipments); j++ {
			if c.shipments[i].Footprint().Overlaps(c.shipments[j].Footprint()) {
				return false
			}
		}
	}

	return true
}

// OutOfBoundsShipments returns the placements whose footprint leaves the grid.
func (c *Container) OutOfBoundsShipments() []PackedShipment {
	var out []PackedShipment
	for _, p := range c.shipments {
		if !p.Footprint().Within(c.length, c.height) {
			out = append(out, p)
		}
	}
	return out
}

// OverlappingPairs returns index pairs (i, j), i < j, of placements sharing a cell.
// Indexes refer to the order returned by Shipments.
func (c *Container) OverlappingPairs() [][2]int {
	var pairs [][2]int
	for i := range c.shipments {
		for j := i + 1; j < len(c.shipments); j++ {
			if c.shipments[i].Footprint().Overlaps(c.shipments[j].Footprint()) {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}
	return pairs
}

// TotalVolume returns length × height.
func (c *Container) TotalVolume() int {
	return c.length * c.height
}

// RemainingVolume returns TotalVolume minus the sum of packed shipment volumes.
// Overlaps and out-of-grid parts are not corrected for, so the result may be negative.
func (c *Container) RemainingVolume() int {
	used := 0
	for _, p := range c.shipments {
		used += p.Shipment().Volume()
	}
	return c.TotalVolume() - used
}

// DegreeOfFilling returns RemainingVolume / TotalVolume.
//
// Despite its name this is the empty fraction: 1.0 for an empty container and
// 0.0 for a perfectly full one. Reward values are built on it, so the formula stays.
func (c *Container) DegreeOfFilling() float64 {
	return float64(c.RemainingVolume()) / float64(c.TotalVolume())
}

// Weight returns the summed weight of all packed shipments.
func (c *Container) Weight() int {
	total := 0
	for _, p := range c.shipments {
		total += p.Shipment().Weight()
	}
	return total
}

// CenterOfGravity returns the weight-weighted mean of the shipment centroids.
//
// Returns:
//   - kernel.Position: the center of gravity
//   - error: ErrCenterOfGravityUndefined when the container holds no weight
func (c *Container) CenterOfGravity() (kernel.Position, error) {
	total := c.Weight()
	if total == 0 {
		return kernel.Position{}, ErrCenterOfGravityUndefined
	}

	sum := kernel.NewPosition(0, 0)
	for _, p := range c.shipments {
		sum = sum.Add(p.CenterOfGravity().Mul(float64(p.Shipment().Weight())))
	}

	return sum.Div(float64(total))
}

// OptimalCenterOfGravity returns the target point (length/2, 0):
// horizontally centered and on the floor.
func (c *Container) OptimalCenterOfGravity() kernel.Position {
	return kernel.NewPosition(float64(c.length)/2, 0)
}

// DistanceOptimalCOG measures how far the center of gravity is from the optimum.
//
// The per-axis deltas are summed before squaring, so the value equals
// |Δx + Δy| rather than the Euclidean norm, and opposite deltas cancel out.
//
// Returns:
//   - float64: the non-negative distance
//   - error: ErrCenterOfGravityUndefined when the container holds no weight
func (c *Container) DistanceOptimalCOG() (float64, error) {
	actual, err := c.CenterOfGravity()
	if err != nil {
		return 0, err
	}

	optimal := c.OptimalCenterOfGravity()
	delta := (optimal.X() - actual.X()) + (optimal.Y() - actual.Y())

	return math.Sqrt(delta * delta), nil
}

// Map returns a deep copy of the occupancy grid indexed as [x][y].
// A cell value is the number of footprints covering it.
func (c *Container) Map() [][]int {
	return c.grid.snapshot()
}

// Matrix returns the occupancy grid as a length × height dense matrix,
// so that At(x, y) is the cover count of cell (x, y).
func (c *Container) Matrix() *mat.Dense {
	return c.grid.matrix()
}

// Render writes an ASCII drawing of the grid to w, top row first.
func (c *Container) Render(w io.Writer) error {
	return c.grid.render(w)
}

// RenderMap returns the drawing produced by Render.
func (c *Container) RenderMap() string {
	var sb strings.Builder
	_ = c.Render(&sb)
	return sb.String()
}

func (c *Container) setLength(length int) error {
	if length <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("length", fmt.Errorf("%d is not greater than 0", length))
	}

	c.length = length
	return nil
}

func (c *Container) setHeight(height int) error {
	if height <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("height", fmt.Errorf("%d is not greater than 0", height))
	}

	c.height = height
	return nil
}
