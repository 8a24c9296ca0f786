package anim

import (
	"errors"
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/mutant/mutant"
)

var ErrNoConditions = errors.New("anim: script did not define conditions")

// ScriptMapper runs a tengo script per signal. The script reads the global
// `signal` map (state, run, idle, attack, pulse) and must assign a
// `conditions` map of name -> bool.
//
// A compiled script is not safe for concurrent use; give every tree its own
// mapper with Clone.
type ScriptMapper struct {
	name     string
	compiled *tengo.Compiled
}

func NewScriptMapper(name string, src []byte) (*ScriptMapper, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	if err := script.Add("signal", signalMap(mutant.Signal{})); err != nil {
		return nil, fmt.Errorf("anim: script %s: %w", name, err)
	}

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("anim: compile %s: %w", name, err)
	}

	m := &ScriptMapper{name: name, compiled: compiled}
	// dry run so a broken script fails at load instead of on the first tick
	if _, err := m.Map(mutant.Signal{Idle: true}); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *ScriptMapper) Name() string {
	return m.name
}

func (m *ScriptMapper) Clone() *ScriptMapper {
	return &ScriptMapper{name: m.name, compiled: m.compiled.Clone()}
}

func (m *ScriptMapper) Map(sig mutant.Signal) (map[string]bool, error) {
	if err := m.compiled.Set("signal", signalMap(sig)); err != nil {
		return nil, fmt.Errorf("anim: script %s: %w", m.name, err)
	}
	if err := m.compiled.Run(); err != nil {
		return nil, fmt.Errorf("anim: run %s: %w", m.name, err)
	}
	if !m.compiled.IsDefined("conditions") {
		return nil, fmt.Errorf("anim: script %s: %w", m.name, ErrNoConditions)
	}

	raw := m.compiled.Get("conditions").Map()
	if raw == nil {
		return nil, fmt.Errorf("anim: script %s: %w", m.name, ErrNoConditions)
	}
	out := make(map[string]bool, len(raw))
	for k, v := range raw {
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("anim: script %s: condition %q is %T, want bool", m.name, k, v)
		}
		out[k] = b
	}
	return out, nil
}

func signalMap(sig mutant.Signal) map[string]any {
	return map[string]any{
		"state":  sig.State.String(),
		"run":    sig.Run,
		"idle":   sig.Idle,
		"attack": sig.Attack.String(),
		"pulse":  sig.Pulse(),
	}
}
