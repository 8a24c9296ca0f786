package prefabs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/milk9111/mutant/anim"
	"github.com/milk9111/mutant/mutant"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	return LoadSpecOver(filename, zero)
}

// LoadSpecOver decodes filename on top of base, so keys missing from the file
// keep the values base carries.
func LoadSpecOver[T any](filename string, base T) (T, error) {
	data, err := Load(filename)
	if err != nil {
		return base, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	spec := base
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return base, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type MutantSpec struct {
	Name                string         `yaml:"name"`
	DetectionRange      float64        `yaml:"detection_range"`
	MinApproachDistance float64        `yaml:"min_approach_distance"`
	MaxLeashDistance    float64        `yaml:"max_leash_distance"`
	Gravity             float64        `yaml:"gravity"`
	Speed               float64        `yaml:"speed"`
	AttackRange         float64        `yaml:"attack_range"`
	AttackCooldown      float64        `yaml:"attack_cooldown"`
	Body                BodySpec       `yaml:"body"`
	Navigation          NavigationSpec `yaml:"navigation"`
	Animation           AnimationSpec  `yaml:"animation"`
}

func LoadMutantSpec(name string) (*MutantSpec, error) {
	if name == "" {
		name = "mutant.yaml"
	}
	spec, err := LoadSpecOver(name, DefaultMutantSpec())
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// DefaultMutantSpec carries the agent tuning defaults. Partial prefabs and
// half-saved edits fall back to these instead of zero.
func DefaultMutantSpec() MutantSpec {
	cfg := mutant.DefaultConfig()
	return MutantSpec{
		Name:                "mutant",
		DetectionRange:      cfg.DetectionRange,
		MinApproachDistance: cfg.MinApproachDistance,
		MaxLeashDistance:    cfg.MaxLeashDistance,
		Gravity:             cfg.Gravity,
		Speed:               cfg.Speed,
		AttackRange:         cfg.AttackRange,
		AttackCooldown:      cfg.AttackCooldown,
	}
}

// Config converts the prefab into agent tuning. label overrides the prefab
// name when set.
func (s *MutantSpec) Config(label string) mutant.Config {
	if label == "" {
		label = s.Name
	}
	return mutant.Config{
		Label:               label,
		DetectionRange:      s.DetectionRange,
		MinApproachDistance: s.MinApproachDistance,
		MaxLeashDistance:    s.MaxLeashDistance,
		Gravity:             s.Gravity,
		Speed:               s.Speed,
		AttackRange:         s.AttackRange,
		AttackCooldown:      s.AttackCooldown,
	}
}

type PlayerSpec struct {
	Name      string   `yaml:"name"`
	MoveSpeed float64  `yaml:"move_speed"`
	Gravity   float64  `yaml:"gravity"`
	Body      BodySpec `yaml:"body"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type BodySpec struct {
	Radius   float64 `yaml:"radius"`
	Mass     float64 `yaml:"mass"`
	Friction float64 `yaml:"friction"`
}

type NavigationSpec struct {
	PathDesiredDistance   float64 `yaml:"path_desired_distance"`
	TargetDesiredDistance float64 `yaml:"target_desired_distance"`
	RepathInterval        int     `yaml:"repath_interval"`
	MaxNodes              int     `yaml:"max_nodes"`
}

type AnimationSpec struct {
	Script  string                      `yaml:"script"`
	Current string                      `yaml:"current"`
	Defs    map[string]AnimationDefSpec `yaml:"defs"`
}

type AnimationDefSpec struct {
	FrameCount int     `yaml:"frame_count"`
	FPS        float64 `yaml:"fps"`
	Loop       bool    `yaml:"loop"`
}

// Clips returns the clip definitions sorted by name.
func (s AnimationSpec) Clips() []anim.ClipDef {
	names := make([]string, 0, len(s.Defs))
	for name := range s.Defs {
		names = append(names, name)
	}
	sort.Strings(names)

	clips := make([]anim.ClipDef, 0, len(names))
	for _, name := range names {
		def := s.Defs[name]
		clips = append(clips, anim.ClipDef{
			Name:       name,
			FrameCount: def.FrameCount,
			FPS:        def.FPS,
			Loop:       def.Loop,
		})
	}
	return clips
}

// Mapper loads the condition script, or returns the default mapper when the
// prefab has none.
func (s AnimationSpec) Mapper() (anim.Mapper, error) {
	if strings.TrimSpace(s.Script) == "" {
		return anim.DefaultMapper{}, nil
	}
	src, err := LoadScript(s.Script)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load script %s: %w", s.Script, err)
	}
	return anim.NewScriptMapper(s.Script, src)
}
