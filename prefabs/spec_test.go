package prefabs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/mutant/anim"
	"github.com/milk9111/mutant/mutant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useDir(t *testing.T, dir string) {
	t.Helper()
	old := Dir
	Dir = dir
	t.Cleanup(func() { Dir = old })
}

func TestLoadMutantSpecMatchesDefaults(t *testing.T) {
	useDir(t, t.TempDir())

	spec, err := LoadMutantSpec("")
	require.NoError(t, err)

	cfg := spec.Config("")
	want := mutant.DefaultConfig()
	want.Label = "mutant"
	assert.Equal(t, want, cfg)
	assert.NoError(t, cfg.Validate())

	assert.Equal(t, "m1", spec.Config("m1").Label)
	assert.Equal(t, 0.5, spec.Body.Radius)
	assert.Equal(t, 15, spec.Navigation.RepathInterval)
}

func TestAnimationSpecClips(t *testing.T) {
	useDir(t, t.TempDir())

	spec, err := LoadMutantSpec("mutant.yaml")
	require.NoError(t, err)

	clips := spec.Animation.Clips()
	require.Len(t, clips, 4)
	names := make([]string, 0, len(clips))
	for _, c := range clips {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"idle", "punch", "run", "swipe"}, names)
	assert.True(t, clips[0].Loop)
	assert.False(t, clips[3].Loop)
}

func TestAnimationSpecMapper(t *testing.T) {
	useDir(t, t.TempDir())

	spec, err := LoadMutantSpec("prefabs/mutant.yaml")
	require.NoError(t, err)

	m, err := spec.Animation.Mapper()
	require.NoError(t, err)
	_, ok := m.(*anim.ScriptMapper)
	require.True(t, ok)

	conds, err := m.Map(mutant.Signal{State: mutant.Attacking, Attack: mutant.Swipe})
	require.NoError(t, err)
	assert.True(t, conds["swipe"])
	assert.True(t, conds["attacking"])
	assert.False(t, conds["punch"])

	none, err := AnimationSpec{}.Mapper()
	require.NoError(t, err)
	assert.IsType(t, anim.DefaultMapper{}, none)
}

func TestLoadPlayerSpec(t *testing.T) {
	useDir(t, t.TempDir())

	spec, err := LoadPlayerSpec()
	require.NoError(t, err)
	assert.Equal(t, "player", spec.Name)
	assert.Greater(t, spec.MoveSpeed, 0.0)
}

func TestDiskOverride(t *testing.T) {
	dir := t.TempDir()
	useDir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mutant.yaml"), []byte("name: brute\nspeed: 9\n"), 0o644))

	spec, err := LoadMutantSpec("mutant.yaml")
	require.NoError(t, err)
	assert.Equal(t, "brute", spec.Name)
	assert.Equal(t, 9.0, spec.Speed)
}

func TestPartialMutantPrefabKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	useDir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "brute.yaml"), []byte("name: brute\nspeed: 7\n"), 0o644))

	spec, err := LoadMutantSpec("brute.yaml")
	require.NoError(t, err)

	want := mutant.DefaultConfig()
	want.Label = "brute"
	want.Speed = 7
	cfg := spec.Config("")
	assert.Equal(t, want, cfg)
	assert.NoError(t, cfg.Validate())

	// explicit zeros still win over the defaults
	require.NoError(t, os.WriteFile(filepath.Join(dir, "brute.yaml"), []byte("attack_range: 0\n"), 0o644))
	spec, err = LoadMutantSpec("brute.yaml")
	require.NoError(t, err)
	assert.Equal(t, 0.0, spec.AttackRange)
	assert.Equal(t, 10.0, spec.DetectionRange)
	assert.Equal(t, "mutant", spec.Name)
}

func TestLoadSpecErrors(t *testing.T) {
	dir := t.TempDir()
	useDir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("speed: [1"), 0o644))

	_, err := LoadSpec[MutantSpec]("broken.yaml")
	assert.ErrorContains(t, err, "unmarshal broken.yaml")

	_, err = LoadSpec[MutantSpec]("missing.yaml")
	assert.ErrorContains(t, err, "load missing.yaml")
}

func TestCleanScriptPath(t *testing.T) {
	for _, in := range []string{"mutant_anim.tengo", "scripts/mutant_anim.tengo", "prefabs/scripts/mutant_anim.tengo"} {
		assert.Equal(t, "scripts/mutant_anim.tengo", cleanScriptPath(in), in)
	}
	assert.Equal(t, "", cleanScriptPath(""))
}
