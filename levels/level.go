package levels

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultTickRate   = 50
	defaultGoalRadius = 10.0
	defaultWindowW    = 1280
	defaultWindowH    = 720
)

// ErrInvalidLevel wraps every validation failure.
var ErrInvalidLevel = errors.New("levels: invalid level")

// Level is the read-only configuration a simulation is built from. All
// positions are body centres in world units with y pointing up.
type Level struct {
	Name      string        `yaml:"name"`
	Window    WindowSpec    `yaml:"window"`
	Physics   PhysicsSpec   `yaml:"physics"`
	Walls     WallSpec      `yaml:"walls"`
	Actor     ActorSpec     `yaml:"actor"`
	Obstacles ObstaclesSpec `yaml:"obstacles"`
	Goal      *GoalSpec     `yaml:"goal"`
}

type WindowSpec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type PhysicsSpec struct {
	Gravity  float64 `yaml:"gravity"`
	TickRate int     `yaml:"tick_rate"`
}

type WallSpec struct {
	Thickness float64 `yaml:"thickness"`
	LeftX     float64 `yaml:"left_x"`
	RightX    float64 `yaml:"right_x"`
	BottomY   float64 `yaml:"bottom_y"`
}

// Width is the distance between the centre lines of the side walls.
func (w WallSpec) Width() float64 {
	return w.RightX - w.LeftX
}

// LeftBound is the smallest centre x for a body of the given half width.
func (w WallSpec) LeftBound(halfWidth float64) float64 {
	return w.LeftX + w.Thickness/2 + halfWidth
}

// RightBound is the largest centre x for a body of the given half width.
func (w WallSpec) RightBound(halfWidth float64) float64 {
	return w.RightX - w.Thickness/2 - halfWidth
}

// FloorBound is the smallest centre y for a body of the given half height.
func (w WallSpec) FloorBound(halfHeight float64) float64 {
	return w.BottomY + w.Thickness/2 + halfHeight
}

type ActorSpec struct {
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Size      float64 `yaml:"size"`
	Speed     float64 `yaml:"speed"`
	Mass      float64 `yaml:"mass"`
	JumpForce float64 `yaml:"jump_force"`
}

type ObstaclesSpec struct {
	BaseSpeed float64        `yaml:"base_speed"`
	SpeedStep float64        `yaml:"speed_step"`
	Items     []ObstacleSpec `yaml:"items"`
}

type ObstacleSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
	// Speed and Direction override the index-derived defaults.
	Speed     *float64 `yaml:"speed,omitempty"`
	Direction *float64 `yaml:"direction,omitempty"`
}

// Motion returns the starting direction and horizontal velocity of obstacle i.
// Speed grows with the index; even obstacles start moving right, odd ones left.
func (o ObstaclesSpec) Motion(i int) (direction, vx float64) {
	if i < 0 || i >= len(o.Items) {
		return 0, 0
	}
	item := o.Items[i]

	speed := o.BaseSpeed + float64(i)*o.SpeedStep
	if item.Speed != nil {
		speed = *item.Speed
	}
	direction = 1
	if i%2 == 1 {
		direction = -1
	}
	if item.Direction != nil {
		if *item.Direction < 0 {
			direction = -1
		} else {
			direction = 1
		}
	}
	return direction, direction * speed
}

type GoalSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Radius float64 `yaml:"radius"`
}

// DT is the fixed tick duration in seconds.
func (l *Level) DT() float64 {
	return 1 / float64(l.Physics.TickRate)
}

// Parse decodes, defaults and validates a yaml level.
func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal: %w", err)
	}
	lvl.applyDefaults()
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// Load reads a level by name, preferring levels/<name> on disk over the
// embedded copy so edits are picked up without a rebuild.
func Load(name string) (*Level, error) {
	clean := cleanLevelPath(name)
	data, err := os.ReadFile(diskLevelPath(clean))
	if err != nil {
		data, err = LevelsFS.ReadFile(clean)
		if err != nil {
			return nil, fmt.Errorf("levels: load %s: %w", clean, err)
		}
	}
	lvl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("levels: load %s: %w", clean, err)
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(clean, filepath.Ext(clean))
	}
	return lvl, nil
}

func (l *Level) applyDefaults() {
	if l.Physics.TickRate == 0 {
		l.Physics.TickRate = defaultTickRate
	}
	if l.Window.Width == 0 {
		l.Window.Width = defaultWindowW
	}
	if l.Window.Height == 0 {
		l.Window.Height = defaultWindowH
	}
	if l.Goal != nil && l.Goal.Radius == 0 {
		l.Goal.Radius = defaultGoalRadius
	}
}

// Validate reports every configuration inconsistency that would make the
// simulation meaningless.
func (l *Level) Validate() error {
	if l == nil {
		return fmt.Errorf("%w: nil level", ErrInvalidLevel)
	}
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidLevel}, args...)...))
	}

	if l.Walls.Width() <= 0 {
		fail("level width %.2f must be positive", l.Walls.Width())
	}
	if l.Walls.Thickness <= 0 {
		fail("wall thickness %.2f must be positive", l.Walls.Thickness)
	}
	if l.Physics.TickRate <= 0 {
		fail("tick rate %d must be positive", l.Physics.TickRate)
	}
	if l.Actor.Size <= 0 {
		fail("actor size %.2f must be positive", l.Actor.Size)
	}
	if l.Actor.Mass <= 0 {
		fail("actor mass %.2f must be positive", l.Actor.Mass)
	}
	if l.Actor.Size > 0 && l.Walls.LeftBound(l.Actor.Size/2) > l.Walls.RightBound(l.Actor.Size/2) {
		fail("actor size %.2f does not fit between the walls", l.Actor.Size)
	}
	for i, o := range l.Obstacles.Items {
		if o.W <= 0 || o.H <= 0 {
			fail("obstacle %d size %.2fx%.2f must be positive", i, o.W, o.H)
			continue
		}
		if l.Walls.LeftBound(o.W/2) > l.Walls.RightBound(o.W/2) {
			fail("obstacle %d width %.2f does not fit between the walls", i, o.W)
		}
	}
	if l.Goal != nil && l.Goal.Radius < 0 {
		fail("goal radius %.2f must not be negative", l.Goal.Radius)
	}
	return errors.Join(errs...)
}

func cleanLevelPath(path string) string {
	s := filepath.ToSlash(path)
	s = strings.TrimPrefix(s, "levels/")
	if filepath.Ext(s) == "" {
		s += ".yaml"
	}
	return s
}

func diskLevelPath(clean string) string {
	return filepath.Join("levels", filepath.FromSlash(clean))
}
