package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadEmptyDirReturnsDefaults(t *testing.T) {
	r, err := Load("")
	require.NoError(t, err)
	require.NoError(t, r.Validate())
	require.Len(t, r.Champions, 4)
}

func TestLoadMissingDirFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
}

func TestLoadOverlaysItemByID(t *testing.T) {
	dir := t.TempDir()
	body := `
items:
  - id: long-sword
    name: Long Sword
    cost: 999
    stats:
      attackDamage: 12
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "items.yaml"), []byte(body), 0o644))

	r, err := Load(dir)
	require.NoError(t, err)
	require.NoError(t, r.Validate())

	item, ok := r.Item("long-sword")
	require.True(t, ok)
	require.Equal(t, 999, item.Cost)
	require.Equal(t, 12.0, item.Stats.AttackDamage)

	// Untouched entries keep their defaults.
	tome, ok := r.Item("amplifying-tome")
	require.True(t, ok)
	require.Equal(t, 435, tome.Cost)
}

func TestLoadAddsNewUnit(t *testing.T) {
	dir := t.TempDir()
	body := `
units:
  - id: razorback
    name: Razorback
    stats:
      maxHealth: 777
      attackDamage: 33
      attackSpeed: 0.8
      moveSpeed: 340
      attackRange: 140
    radius: 45
    sightRange: 800
    gold: 28
    xp: 75
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "units.yaml"), []byte(body), 0o644))

	r, err := Load(dir)
	require.NoError(t, err)
	require.NoError(t, r.Validate())

	u, ok := r.Unit("razorback")
	require.True(t, ok)
	require.Equal(t, 777.0, u.Stats.MaxHealth)
}

func TestLoadConstantsOverlaysFieldWise(t *testing.T) {
	dir := t.TempDir()
	body := "killGold: 450\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "constants.yaml"), []byte(body), 0o644))

	r, err := Load(dir)
	require.NoError(t, err)
	require.Equal(t, 450, r.Constants.KillGold)
	// Absent keys keep defaults.
	require.Equal(t, 150, r.Constants.AssistGold)
	require.Equal(t, 8.0, r.Constants.RecallChannelSec)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "items.yaml"), []byte("items: ["), 0o644))
	_, err := Load(dir)
	require.Error(t, err)
}

func TestLoadedOverlayStillCrossValidated(t *testing.T) {
	dir := t.TempDir()
	body := `
champions:
  - id: broken
    name: Broken
    base:
      maxHealth: 500
      attackDamage: 50
      attackSpeed: 0.7
      moveSpeed: 330
      attackRange: 550
    growth: {}
    radius: 50
    sightRange: 1200
    attackKeyframe: 0.2
    attackAnimation: 0.5
    abilities:
      Q: no-such-ability
      W: no-such-ability
      E: no-such-ability
      R: no-such-ability
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "champions.yaml"), []byte(body), 0o644))

	r, err := Load(dir)
	require.NoError(t, err)
	require.Error(t, r.Validate())
}
