package sim

import (
	"fmt"

	"github.com/milk9111/padhop/ecs"
	"github.com/milk9111/padhop/ecs/component"
	"github.com/milk9111/padhop/ecs/entity"
	"github.com/milk9111/padhop/ecs/system"
	"github.com/milk9111/padhop/levels"
	"go.uber.org/zap"
)

// Simulation owns one world built from a level and advances it one fixed
// tick at a time. It is not safe for concurrent use.
type Simulation struct {
	level     *levels.Level
	world     *ecs.World
	scheduler *ecs.Scheduler
	actor     ecs.Entity
	logger    *zap.Logger
	ticks     uint64
}

type Option func(*Simulation)

func WithLogger(logger *zap.Logger) Option {
	return func(s *Simulation) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New validates lvl and spawns its bodies.
func New(lvl *levels.Level, opts ...Option) (*Simulation, error) {
	s := &Simulation{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.build(lvl); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Simulation) build(lvl *levels.Level) error {
	if lvl == nil {
		return fmt.Errorf("sim: %w: nil level", levels.ErrInvalidLevel)
	}
	world := ecs.NewWorld()
	actor, err := entity.LoadLevelToWorld(world, lvl)
	if err != nil {
		return fmt.Errorf("sim: build %q: %w", lvl.Name, err)
	}

	s.level = lvl
	s.world = world
	s.actor = actor
	s.scheduler = system.NewTickScheduler(lvl, s.logger)
	s.ticks = 0

	s.logger.Info("simulation built",
		zap.String("level", lvl.Name),
		zap.Int("obstacles", len(lvl.Obstacles.Items)),
		zap.Float64("dt", lvl.DT()),
		zap.Stringer("actor", actor),
	)
	return nil
}

// Reload replaces the world with one built from lvl. On error the current
// world is kept.
func (s *Simulation) Reload(lvl *levels.Level) error {
	if err := s.build(lvl); err != nil {
		s.logger.Warn("level reload rejected", zap.Error(err))
		return err
	}
	return nil
}

// Tick feeds intent to the actor and runs every stage once.
func (s *Simulation) Tick(intent component.Intent) {
	in, ok := ecs.Get(s.world, s.actor, component.IntentComponent.Kind())
	if !ok {
		panic(fmt.Sprintf("sim: actor %s: missing intent", s.actor))
	}
	*in = intent
	s.scheduler.Update(s.world)
	s.ticks++
}

func (s *Simulation) World() *ecs.World {
	return s.world
}

func (s *Simulation) Level() *levels.Level {
	return s.level
}

// DT is the fixed tick duration in seconds.
func (s *Simulation) DT() float64 {
	return s.level.DT()
}

// Ticks counts ticks since the last build or reload.
func (s *Simulation) Ticks() uint64 {
	return s.ticks
}
