package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/component"
	"github.com/milk9111/platformer/world"
)

//go:embed *.json
var LevelsFS embed.FS

// DefaultLevel is loaded when no level is named.
const DefaultLevel = "default"

// Level is the json level format: a spawn point, static platforms and
// pickups, in world units with y growing downward.
type Level struct {
	Name      string   `json:"name"`
	Width     float64  `json:"width"`
	Height    float64  `json:"height"`
	Spawn     Point    `json:"spawn"`
	Platforms []Box    `json:"platforms"`
	Pickups   []Pickup `json:"pickups,omitempty"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Box struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

type Pickup struct {
	Box
	Kind       string  `json:"kind"`
	Multiplier float64 `json:"multiplier,omitempty"`
	DurationMs float64 `json:"duration_ms"`
}

// Load reads a level by name, preferring levels/<name>.json on disk over the
// embedded copy.
func Load(name string) (*Level, error) {
	file := levelFile(name)
	if data, err := os.ReadFile(filepath.Join("levels", file)); err == nil {
		return parse(file, data)
	}
	return LoadLevelFromFS(file)
}

func LoadLevelFromFS(name string) (*Level, error) {
	file := levelFile(name)
	data, err := fs.ReadFile(LevelsFS, file)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", file, err)
	}
	return parse(file, data)
}

func parse(file string, data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal %s: %w", file, err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, fmt.Errorf("levels: %s: %w", file, err)
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(file, ".json")
	}
	return &lvl, nil
}

// Names lists the embedded levels.
func Names() []string {
	matches, err := fs.Glob(LevelsFS, "*.json")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(m, ".json"))
	}
	sort.Strings(names)
	return names
}

func levelFile(name string) string {
	if name == "" {
		name = DefaultLevel
	}
	name = strings.TrimPrefix(filepath.ToSlash(name), "levels/")
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	return name
}

// Validate checks that every box has a positive size and that pickups are of a
// known kind.
func (l *Level) Validate() error {
	for i, p := range l.Platforms {
		if p.W <= 0 || p.H <= 0 {
			return fmt.Errorf("platform %d has size %vx%v", i, p.W, p.H)
		}
	}
	for i, p := range l.Pickups {
		if p.W <= 0 || p.H <= 0 {
			return fmt.Errorf("pickup %d has size %vx%v", i, p.W, p.H)
		}
		switch component.PickupKind(p.Kind) {
		case component.PickupJumpBoost:
			if p.Multiplier <= 0 {
				return fmt.Errorf("pickup %d: jump_boost needs a positive multiplier", i)
			}
		case component.PickupInvincibility:
		default:
			return fmt.Errorf("pickup %d: unknown kind %q", i, p.Kind)
		}
	}
	return nil
}

// Layout converts the level into what a world loads.
func (l *Level) Layout() world.Layout {
	if l == nil {
		return world.Layout{}
	}
	layout := world.Layout{
		Spawn:     component.Vector2{X: l.Spawn.X, Y: l.Spawn.Y},
		Obstacles: make([]component.Obstacle, 0, len(l.Platforms)),
		Pickups:   make([]component.Pickup, 0, len(l.Pickups)),
	}
	for _, p := range l.Platforms {
		layout.Obstacles = append(layout.Obstacles, component.NewObstacle(p.X, p.Y, p.W, p.H))
	}
	for _, p := range l.Pickups {
		layout.Pickups = append(layout.Pickups, component.Pickup{
			Position:   component.Vector2{X: p.X, Y: p.Y},
			Size:       component.Size{Width: p.W, Height: p.H},
			Kind:       component.PickupKind(p.Kind),
			Multiplier: p.Multiplier,
			Duration:   time.Duration(p.DurationMs * float64(time.Millisecond)),
		})
	}
	return layout
}

// Bounds is the box enclosing the declared extents and every platform. Like
// the obstacles it maps screen top to B.
func (l *Level) Bounds() cp.BB {
	if l == nil {
		return cp.BB{}
	}
	bb := cp.BB{L: 0, B: 0, R: l.Width, T: l.Height}
	for _, p := range l.Platforms {
		ob := component.NewObstacle(p.X, p.Y, p.W, p.H).Bounds()
		bb = cp.BB{
			L: math.Min(bb.L, ob.L),
			B: math.Min(bb.B, ob.B),
			R: math.Max(bb.R, ob.R),
			T: math.Max(bb.T, ob.T),
		}
	}
	return bb
}
