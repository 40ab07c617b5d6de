package gamedata

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/automoto/starwave/shared/behavior"
	"github.com/automoto/starwave/shared/run"
	"github.com/automoto/starwave/shared/weapon"
)

const charactersYAML = `
characters:
  - name: captain
    health: 100
    speed: 200
    collider: {x: 10, y: 10}
    weapon:
      ammunition: {kind: blast, faction: ally}
      reload_time: 0.5
      count: 1
      fire_mode: manual
`

const mobsYAML = `
mobs:
  - type: drone
    behaviors: [move_down]
    health: 10
  - type: carrier
    behaviors: [move_down, spawn_mob]
    behavior_sequence:
      - {behaviors: [move_down], duration: 1}
      - {behaviors: [spawn_mob], duration: 2}
    mob_spawner: {mob: drone, period: 1}
    health: 50
    weapon:
      ammunition: {kind: bullet, faction: enemy}
      reload_time: 1
      count: 2
`

const phasesYAML = `
phases:
  - {name: Wave, kind: formation, duration: 5, spawn_period: 1, mobs: [drone]}
  - {name: Boss, kind: boss, boss: carrier}
`

func testFS(files map[string]string) fstest.MapFS {
	fsys := fstest.MapFS{
		"data/characters.yaml": {Data: []byte(charactersYAML)},
		"data/mobs.yaml":       {Data: []byte(mobsYAML)},
		"data/phases.yaml":     {Data: []byte(phasesYAML)},
	}
	for name, body := range files {
		fsys["data/"+name] = &fstest.MapFile{Data: []byte(body)}
	}
	return fsys
}

func TestLoad(t *testing.T) {
	db, err := Load(testFS(nil), "data")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	c, err := db.Character("captain")
	if err != nil {
		t.Fatalf("Character: %v", err)
	}
	if c.Weapon.FireMode != weapon.Manual || c.Weapon.Ammunition.Faction != weapon.Ally {
		t.Errorf("character weapon: %+v", c.Weapon)
	}

	carrier, err := db.Mob("carrier")
	if err != nil {
		t.Fatalf("Mob: %v", err)
	}
	if carrier.Weapon == nil || carrier.Weapon.Count != 2 {
		t.Errorf("carrier weapon: %+v", carrier.Weapon)
	}
	if len(carrier.Sequence) != 2 || !carrier.Sequence[1].Behaviors.Has(behavior.SpawnMob) {
		t.Errorf("carrier sequence: %+v", carrier.Sequence)
	}
	if carrier.Spawner == nil || carrier.Spawner.Mob != "drone" {
		t.Errorf("carrier spawner: %+v", carrier.Spawner)
	}

	if len(db.Phases) != 2 || db.Phases[1].Kind != run.Boss {
		t.Errorf("phases: %+v", db.Phases)
	}
}

func TestLoadLookupErrors(t *testing.T) {
	db, err := Load(testFS(nil), "data")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := db.Character("ghost"); !errors.Is(err, ErrUnknownCharacter) {
		t.Errorf("expected ErrUnknownCharacter, got %v", err)
	}
	if _, err := db.Mob("ghost"); !errors.Is(err, ErrUnknownMob) {
		t.Errorf("expected ErrUnknownMob, got %v", err)
	}
}

func TestLoadRejectsBadData(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		body    string
		wantErr error
	}{
		{
			name:    "phase references unknown mob",
			file:    PhasesFile,
			body:    "phases:\n  - {name: W, kind: formation, duration: 1, spawn_period: 1, mobs: [ghost]}\n",
			wantErr: ErrUnknownMob,
		},
		{
			name:    "spawner references unknown mob",
			file:    MobsFile,
			body:    "mobs:\n  - {type: a, health: 1, mob_spawner: {mob: ghost, period: 1}}\n",
			wantErr: ErrUnknownMob,
		},
		{
			name:    "negative reload",
			file:    CharactersFile,
			body:    "characters:\n  - {name: x, health: 1, weapon: {reload_time: -1, count: 1}}\n",
			wantErr: weapon.ErrInvalidWeapon,
		},
		{
			name:    "duplicate character",
			file:    CharactersFile,
			body:    "characters:\n  - {name: x, health: 1, weapon: {count: 1}}\n  - {name: x, health: 1, weapon: {count: 1}}\n",
			wantErr: ErrInvalidData,
		},
		{
			name:    "duplicate mob",
			file:    MobsFile,
			body:    "mobs:\n  - {type: drone, health: 1}\n  - {type: drone, health: 1}\n  - {type: carrier, health: 1}\n",
			wantErr: ErrInvalidData,
		},
		{
			name:    "boss phase without boss",
			file:    PhasesFile,
			body:    "phases:\n  - {name: B, kind: boss}\n",
			wantErr: run.ErrInvalidPhase,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(testFS(map[string]string{tt.file: tt.body}), "data")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadReportsParseErrors(t *testing.T) {
	_, err := Load(testFS(map[string]string{MobsFile: "mobs:\n  - {type: a, behaviors: [dance]}\n"}), "data")
	if err == nil || !strings.Contains(err.Error(), MobsFile) {
		t.Errorf("expected parse error naming %s, got %v", MobsFile, err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	fsys := testFS(nil)
	delete(fsys, "data/phases.yaml")
	if _, err := Load(fsys, "data"); err == nil {
		t.Error("expected error for missing phases file")
	}
}
