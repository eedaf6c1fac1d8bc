package levels

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalLevel = `
physics:
  gravity: 9.8
walls:
  thickness: 20
  left_x: -400
  right_x: 400
  bottom_y: -300
actor:
  size: 30
  mass: 40
  speed: 400
  jump_force: 230
`

func TestLoadEmbeddedDefault(t *testing.T) {
	lvl, err := Load(Default)
	require.NoError(t, err)

	assert.Equal(t, "default", lvl.Name)
	assert.Equal(t, 50, lvl.Physics.TickRate)
	assert.InDelta(t, 0.02, lvl.DT(), 1e-12)
	assert.NotEmpty(t, lvl.Obstacles.Items)
	require.NotNil(t, lvl.Goal)

	again, err := Load("default")
	require.NoError(t, err)
	assert.Equal(t, lvl, again, "extension is optional")
}

func TestParseAppliesDefaults(t *testing.T) {
	lvl, err := Parse([]byte(minimalLevel + "goal: {x: 1, y: 2}\n"))
	require.NoError(t, err)

	assert.Equal(t, defaultTickRate, lvl.Physics.TickRate)
	assert.Equal(t, defaultWindowW, lvl.Window.Width)
	assert.Equal(t, defaultWindowH, lvl.Window.Height)
	assert.Equal(t, defaultGoalRadius, lvl.Goal.Radius)
	assert.Empty(t, lvl.Obstacles.Items, "an empty obstacle list is valid")
}

func TestParseRejectsInvalidLevels(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Level)
		message string
	}{
		{"zero_width", func(l *Level) { l.Walls.RightX = l.Walls.LeftX }, "level width"},
		{"inverted_walls", func(l *Level) { l.Walls.LeftX, l.Walls.RightX = 400, -400 }, "level width"},
		{"no_thickness", func(l *Level) { l.Walls.Thickness = 0 }, "wall thickness"},
		{"negative_tick_rate", func(l *Level) { l.Physics.TickRate = -1 }, "tick rate"},
		{"no_actor_size", func(l *Level) { l.Actor.Size = 0 }, "actor size"},
		{"no_actor_mass", func(l *Level) { l.Actor.Mass = 0 }, "actor mass"},
		{"actor_too_wide", func(l *Level) { l.Actor.Size = 900 }, "does not fit"},
		{"flat_obstacle", func(l *Level) { l.Obstacles.Items = []ObstacleSpec{{W: 10}} }, "obstacle 0 size"},
		{"obstacle_too_wide", func(l *Level) { l.Obstacles.Items = []ObstacleSpec{{W: 1000, H: 10}} }, "obstacle 0 width"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lvl, err := Parse([]byte(minimalLevel))
			require.NoError(t, err)

			tt.mutate(lvl)
			err = lvl.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidLevel))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("walls: [1, 2"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "levels: unmarshal")
}

func TestWallBounds(t *testing.T) {
	walls := WallSpec{Thickness: 20, LeftX: -400, RightX: 400, BottomY: -300}

	assert.Equal(t, 800.0, walls.Width())
	assert.Equal(t, -375.0, walls.LeftBound(15))
	assert.Equal(t, 375.0, walls.RightBound(15))
	assert.Equal(t, -275.0, walls.FloorBound(15))
}

func TestObstacleMotion(t *testing.T) {
	speed := 7.0
	left := -1.0
	spec := ObstaclesSpec{
		BaseSpeed: 100,
		SpeedStep: 25,
		Items: []ObstacleSpec{
			{W: 10, H: 10},
			{W: 10, H: 10},
			{W: 10, H: 10},
			{W: 10, H: 10, Speed: &speed, Direction: &left},
		},
	}

	tests := []struct {
		index   int
		wantDir float64
		wantVX  float64
	}{
		{0, 1, 100},
		{1, -1, -125},
		{2, 1, 150},
		{3, -1, -7},
		{4, 0, 0},
	}
	for _, tt := range tests {
		dir, vx := spec.Motion(tt.index)
		assert.Equal(t, tt.wantDir, dir, "index %d", tt.index)
		assert.Equal(t, tt.wantVX, vx, "index %d", tt.index)
	}
}

func TestWatcherReportsLevelWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))
	target := filepath.Join(dir, "arena.yaml")
	require.NoError(t, os.WriteFile(target, []byte(minimalLevel), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, target, name)
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for level change")
	}
}

func TestIsLevelFile(t *testing.T) {
	assert.True(t, IsLevelFile("levels/a.yaml"))
	assert.True(t, IsLevelFile("B.YML"))
	assert.False(t, IsLevelFile("levels/a.json"))
}
