package episode

import (
	"errors"
	"fmt"

	"packing/internal/core/domain/model/container"
	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/shipment"
	"packing/internal/pkg/errs"
	"packing/internal/pkg/guard"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrEpisodeIsNotConstructed is returned when using a zero-value Episode.
	ErrEpisodeIsNotConstructed = errors.New("Episode must be created via NewEpisode constructor")

	// ErrEpisodeTerminated is returned by Step once the episode has ended.
	ErrEpisodeTerminated = errors.New("episode is terminated")

	// ErrShipmentAlreadyPacked is returned by Step for a catalog entry that was already placed.
	ErrShipmentAlreadyPacked = errors.New("shipment is already packed")
)

// Config describes the container size and the shipment catalog of an episode.
type Config struct {
	ContainerLength int
	ContainerHeight int
	Shipments       []shipment.Shipment
}

// Validate checks dimensions and that the catalog holds at least one constructed shipment.
func (c Config) Validate() error {
	var errList []error

	if c.ContainerLength <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"containerLength", fmt.Errorf("%d is not greater than 0", c.ContainerLength)))
	}
	if c.ContainerHeight <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"containerHeight", fmt.Errorf("%d is not greater than 0", c.ContainerHeight)))
	}
	if len(c.Shipments) == 0 {
		errList = append(errList, errs.NewValueIsRequiredError("shipments"))
	}
	for i, s := range c.Shipments {
		if err := s.Validate(); err != nil {
			errList = append(errList, fmt.Errorf("shipment %d: %w", i, err))
		}
	}

	return errors.Join(errList...)
}

func (c Config) clone() Config {
	c.Shipments = append([]shipment.Shipment(nil), c.Shipments...)
	return c
}

// Action asks to pack catalog entry ShipmentIndex with its lower-left corner at (X, Y).
type Action struct {
	ShipmentIndex int
	X             int
	Y             int
}

// Placement is an accepted Action, kept in the order it was applied.
type Placement struct {
	ShipmentIndex int
	X             int
	Y             int
}

// Observation is what a driver sees after each step.
type Observation struct {
	// ContainerState is the occupancy grid, rows indexed by x and columns by y.
	ContainerState *mat.Dense

	// ShipmentInfo has one (length, height, weight) row per catalog entry.
	// Rows of packed shipments are zero.
	ShipmentInfo [][3]int
}

// Episode is the aggregate root of a packing run.
type Episode struct {
	id         kernel.UUID
	config     Config
	container  *container.Container
	available  []bool
	placements []Placement
	status     Status

	guard guard.ConstructorGuard
}

// NewEpisode starts a Running episode with an empty container and every
// catalog shipment available.
//
// Parameters:
//   - id: episode identifier
//   - cfg: container dimensions and the shipment catalog (at least one entry)
//
// Returns:
//   - *Episode: the new episode
//   - error: joined validation errors for id and cfg
//
// Example:
//
//	box, _ := shipment.NewStandardShipment(2, 2, 10)
//	ep, err := episode.NewEpisode(kernel.NewUUID(), episode.Config{
//	    ContainerLength: 5,
//	    ContainerHeight: 3,
//	    Shipments:       []shipment.Shipment{box},
//	})
//	if err != nil {
//	    return err
//	}
//	err = ep.Step(episode.Action{ShipmentIndex: 0, X: 0, Y: 0})
func NewEpisode(id kernel.UUID, cfg Config) (*Episode, error) {
	if err := errors.Join(id.Validate(), cfg.Validate()); err != nil {
		return nil, err
	}

	e := &Episode{
		id:     id,
		config: cfg.clone(),
		guard:  guard.NewConstructorGuard(),
	}
	if err := e.reset(); err != nil {
		return nil, err
	}

	return e, nil
}

// RestoreEpisode rebuilds an episode from persistence by replaying placements.
// The stored status must agree with the replayed state.
func RestoreEpisode(id kernel.UUID, cfg Config, status Status, placements []Placement) (*Episode, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	e, err := NewEpisode(id, cfg)
	if err != nil {
		return nil, err
	}

	for i, p := range placements {
		if err := e.Step(Action(p)); err != nil {
			return nil, fmt.Errorf("replay placement %d: %w", i, err)
		}
	}

	if e.status != status {
		return nil, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("stored %s does not match replayed %s", status, e.status))
	}

	return e, nil
}

// Validate checks that the Episode was built by a constructor.
func (e *Episode) Validate() error {
	if e == nil {
		return ErrEpisodeIsNotConstructed
	}
	return e.guard.Validate(ErrEpisodeIsNotConstructed)
}

// ID returns the episode identifier.
func (e *Episode) ID() kernel.UUID {
	return e.id
}

// Config returns a copy of the episode configuration.
func (e *Episode) Config() Config {
	return e.config.clone()
}

// Status returns the lifecycle state.
func (e *Episode) Status() Status {
	return e.status
}

// Terminated reports whether the episode has ended.
func (e *Episode) Terminated() bool {
	return e.status == Terminated
}

// Placements returns accepted placements in application order.
func (e *Episode) Placements() []Placement {
	return append([]Placement(nil), e.placements...)
}

// IsAvailable reports whether catalog entry i can still be packed.
func (e *Episode) IsAvailable(i int) bool {
	return i >= 0 && i < len(e.available) && e.available[i]
}

// AvailableCount returns how many catalog entries are still unpacked.
func (e *Episode) AvailableCount() int {
	count := 0
	for _, ok := range e.available {
		if ok {
			count++
		}
	}
	return count
}

// Container returns an independent copy of the current container.
func (e *Episode) Container() *container.Container {
	// replaying shipments already accepted by e.container cannot fail
	c, _ := container.RestoreContainer(e.config.ContainerLength, e.config.ContainerHeight, e.container.Shipments())
	return c
}

// Reset empties the container, makes every shipment available again and
// returns the episode to Running.
func (e *Episode) Reset() error {
	if err := e.Validate(); err != nil {
		return err
	}
	return e.reset()
}

func (e *Episode) reset() error {
	c, err := container.NewContainer(e.config.ContainerLength, e.config.ContainerHeight)
	if err != nil {
		return err
	}

	e.container = c
	e.available = make([]bool, len(e.config.Shipments))
	for i := range e.available {
		e.available[i] = true
	}
	e.placements = nil
	e.status = Running

	return nil
}

// Step packs the shipment chosen by a.
//
// The corner must lie inside the container, but the footprint may still stick
// out of it; such a placement is accepted and ends the episode as invalid.
//
// Returns:
//   - ErrEpisodeTerminated when the episode has ended
//   - *errs.ValueIsOutOfRangeError for an unknown index or a corner outside the container
//   - ErrShipmentAlreadyPacked when the shipment was placed before
func (e *Episode) Step(a Action) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if e.status == Terminated {
		return ErrEpisodeTerminated
	}
	if err := e.checkAction(a); err != nil {
		return err
	}

	if err := e.container.Pack(e.config.Shipments[a.ShipmentIndex], a.X, a.Y); err != nil {
		return err
	}
	e.available[a.ShipmentIndex] = false
	e.placements = append(e.placements, Placement(a))

	if e.AvailableCount() == 0 || !e.container.Valid() {
		status, err := e.status.Terminate()
		if err != nil {
			return err
		}
		e.status = status
	}

	return nil
}

func (e *Episode) checkAction(a Action) error {
	n := len(e.config.Shipments)
	if a.ShipmentIndex < 0 || a.ShipmentIndex >= n {
		return errs.NewValueIsOutOfRangeError("shipmentIndex", a.ShipmentIndex, 0, n-1)
	}
	if a.X < 0 || a.X >= e.config.ContainerLength {
		return errs.NewValueIsOutOfRangeError("x", a.X, 0, e.config.ContainerLength-1)
	}
	if a.Y < 0 || a.Y >= e.config.ContainerHeight {
		return errs.NewValueIsOutOfRangeError("y", a.Y, 0, e.config.ContainerHeight-1)
	}
	if !e.available[a.ShipmentIndex] {
		return fmt.Errorf("%w: index %d", ErrShipmentAlreadyPacked, a.ShipmentIndex)
	}
	return nil
}

// Observation returns the grid and the shipment table for the current state.
func (e *Episode) Observation() Observation {
	info := make([][3]int, len(e.config.Shipments))
	for i, s := range e.config.Shipments {
		if e.available[i] {
			info[i] = [3]int{s.Length(), s.Height(), s.Weight()}
		}
	}

	return Observation{
		ContainerState: e.container.Matrix(),
		ShipmentInfo:   info,
	}
}
