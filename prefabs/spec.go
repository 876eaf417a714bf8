package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/milk9111/platformer/system"
	"github.com/milk9111/platformer/world"
	"gopkg.in/yaml.v3"
)

// TuningFile is the embedded tuning prefab.
const TuningFile = "tuning.yaml"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// TuningSpec is the yaml form of world.Config. Times are in milliseconds.
type TuningSpec struct {
	Name       string         `yaml:"name"`
	MaxStepMs  float64        `yaml:"max_step_ms"`
	Physics    PhysicsSpec    `yaml:"physics"`
	Validation ValidationSpec `yaml:"validation"`
	Ground     GroundSpec     `yaml:"ground"`
	Jump       JumpSpec       `yaml:"jump"`
	Actor      ActorSpec      `yaml:"actor"`
	Colors     ColorsSpec     `yaml:"colors"`
}

type PhysicsSpec struct {
	Gravity          float64 `yaml:"gravity"`
	TerminalVelocity float64 `yaml:"terminal_velocity"`
	GroundFriction   float64 `yaml:"ground_friction"`
	AirResistance    float64 `yaml:"air_resistance"`
	StopThreshold    float64 `yaml:"stop_threshold"`
}

type ValidationSpec struct {
	Mode                    string  `yaml:"mode"`
	UpwardVelocityTolerance float64 `yaml:"upward_velocity_tolerance"`
	PositionTolerance       float64 `yaml:"position_tolerance"`
}

type GroundSpec struct {
	PositionHeuristic bool    `yaml:"position_heuristic"`
	CanvasHeight      float64 `yaml:"canvas_height"`
	GroundOffset      float64 `yaml:"ground_offset"`
	GroundTolerance   float64 `yaml:"ground_tolerance"`
	MaxJumpHeight     float64 `yaml:"max_jump_height"`
	NearZeroVelocity  float64 `yaml:"near_zero_velocity"`
	PhysicsWeight     float64 `yaml:"physics_weight"`
	PositionWeight    float64 `yaml:"position_weight"`
	VelocityWeight    float64 `yaml:"velocity_weight"`
}

type JumpSpec struct {
	CoyoteTimeMs float64 `yaml:"coyote_time_ms"`
}

type ActorSpec struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	MoveSpeed      float64 `yaml:"move_speed"`
	JumpPower      float64 `yaml:"jump_power"`
	DashSpeed      float64 `yaml:"dash_speed"`
	DashDurationMs float64 `yaml:"dash_duration_ms"`
}

// ColorsSpec holds debug draw colors for the window host.
type ColorsSpec struct {
	Background YAMLColor `yaml:"background"`
	Actor      YAMLColor `yaml:"actor"`
	Platform   YAMLColor `yaml:"platform"`
	Pickup     YAMLColor `yaml:"pickup"`
}

// DefaultTuningSpec mirrors world.DefaultConfig.
func DefaultTuningSpec() TuningSpec {
	cfg := world.DefaultConfig()
	return TuningSpec{
		Name:      "default",
		MaxStepMs: cfg.MaxStepMs,
		Physics: PhysicsSpec{
			Gravity:          cfg.Physics.Gravity,
			TerminalVelocity: cfg.Physics.TerminalVelocity,
			GroundFriction:   cfg.Physics.GroundFriction,
			AirResistance:    cfg.Physics.AirResistance,
			StopThreshold:    cfg.Physics.StopThreshold,
		},
		Validation: ValidationSpec{
			Mode:                    string(cfg.Validation.Mode),
			UpwardVelocityTolerance: cfg.Validation.UpwardVelocityTolerance,
			PositionTolerance:       cfg.Validation.PositionTolerance,
		},
		Ground: GroundSpec{
			PositionHeuristic: cfg.Ground.PositionHeuristic,
			CanvasHeight:      cfg.Ground.CanvasHeight,
			GroundOffset:      cfg.Ground.GroundOffset,
			GroundTolerance:   cfg.Ground.GroundTolerance,
			MaxJumpHeight:     cfg.Ground.MaxJumpHeight,
			NearZeroVelocity:  cfg.Ground.NearZeroVelocity,
			PhysicsWeight:     cfg.Ground.PhysicsWeight,
			PositionWeight:    cfg.Ground.PositionWeight,
			VelocityWeight:    cfg.Ground.VelocityWeight,
		},
		Jump: JumpSpec{CoyoteTimeMs: durationMs(cfg.Jump.CoyoteTime)},
		Actor: ActorSpec{
			Width:          cfg.Actor.Width,
			Height:         cfg.Actor.Height,
			MoveSpeed:      cfg.Actor.MoveSpeed,
			JumpPower:      cfg.Actor.JumpPower,
			DashSpeed:      cfg.Actor.DashSpeed,
			DashDurationMs: durationMs(cfg.Actor.DashDuration),
		},
	}
}

// LoadTuningSpec reads a tuning prefab. Keys missing from the file keep their
// default values.
func LoadTuningSpec(filename string) (*TuningSpec, error) {
	if filename == "" {
		filename = TuningFile
	}
	data, err := Load(filename)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	spec, err := ParseTuningSpec(data)
	if err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	return spec, nil
}

// ParseTuningSpec decodes and validates tuning yaml on top of the defaults.
func ParseTuningSpec(data []byte) (*TuningSpec, error) {
	spec := DefaultTuningSpec()
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Validate rejects tuning the systems cannot run with.
func (s *TuningSpec) Validate() error {
	switch system.ValidationMode(s.Validation.Mode) {
	case system.ModeStrict, system.ModeLenient:
	default:
		return fmt.Errorf("unknown validation mode %q", s.Validation.Mode)
	}
	if s.Physics.TerminalVelocity <= 0 {
		return fmt.Errorf("terminal_velocity must be positive, got %v", s.Physics.TerminalVelocity)
	}
	if s.Actor.Width <= 0 || s.Actor.Height <= 0 {
		return fmt.Errorf("actor size must be positive, got %vx%v", s.Actor.Width, s.Actor.Height)
	}
	if s.Jump.CoyoteTimeMs < 0 {
		return fmt.Errorf("coyote_time_ms must not be negative, got %v", s.Jump.CoyoteTimeMs)
	}
	if s.Ground.PhysicsWeight < 0 || s.Ground.PositionWeight < 0 || s.Ground.VelocityWeight < 0 {
		return fmt.Errorf("ground weights must not be negative")
	}
	return nil
}

func (s *TuningSpec) PhysicsConfig() system.PhysicsConfig {
	return system.PhysicsConfig{
		Gravity:          s.Physics.Gravity,
		TerminalVelocity: s.Physics.TerminalVelocity,
		GroundFriction:   s.Physics.GroundFriction,
		AirResistance:    s.Physics.AirResistance,
		StopThreshold:    s.Physics.StopThreshold,
	}
}

func (s *TuningSpec) ValidationConfig() system.ValidationConfig {
	return system.ValidationConfig{
		Mode:                    system.ValidationMode(s.Validation.Mode),
		UpwardVelocityTolerance: s.Validation.UpwardVelocityTolerance,
		PositionTolerance:       s.Validation.PositionTolerance,
	}
}

func (s *TuningSpec) GroundConfig() system.GroundConfig {
	g := s.Ground
	return system.GroundConfig{
		PositionHeuristic: g.PositionHeuristic,
		CanvasHeight:      g.CanvasHeight,
		GroundOffset:      g.GroundOffset,
		GroundTolerance:   g.GroundTolerance,
		MaxJumpHeight:     g.MaxJumpHeight,
		NearZeroVelocity:  g.NearZeroVelocity,
		PhysicsWeight:     g.PhysicsWeight,
		PositionWeight:    g.PositionWeight,
		VelocityWeight:    g.VelocityWeight,
	}
}

func (s *TuningSpec) JumpConfig() system.JumpConfig {
	return system.JumpConfig{CoyoteTime: msDuration(s.Jump.CoyoteTimeMs)}
}

func (s *TuningSpec) ActorConfig() world.ActorConfig {
	return world.ActorConfig{
		Width:        s.Actor.Width,
		Height:       s.Actor.Height,
		MoveSpeed:    s.Actor.MoveSpeed,
		JumpPower:    s.Actor.JumpPower,
		DashSpeed:    s.Actor.DashSpeed,
		DashDuration: msDuration(s.Actor.DashDurationMs),
	}
}

// WorldConfig builds the full world configuration.
func (s *TuningSpec) WorldConfig() world.Config {
	return world.Config{
		Physics:    s.PhysicsConfig(),
		Validation: s.ValidationConfig(),
		Ground:     s.GroundConfig(),
		Jump:       s.JumpConfig(),
		Actor:      s.ActorConfig(),
		MaxStepMs:  s.MaxStepMs,
	}
}

func msDuration(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}

func durationMs(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// YAMLColor decodes "#rrggbb" or "#rrggbbaa". An absent key leaves Color nil.
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	var rgba [4]uint8
	rgba[3] = 255
	for i := 0; i < len(s)/2; i++ {
		v, err := parse(i * 2)
		if err != nil {
			return fmt.Errorf("invalid color %s: %w", value.Value, err)
		}
		rgba[i] = v
	}

	c.Color = color.NRGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
	return nil
}

// Or returns the decoded color, or fallback when none was set.
func (c YAMLColor) Or(fallback color.Color) color.Color {
	if c.Color == nil {
		return fallback
	}
	return c.Color
}
