package weapon

import (
	"errors"
	"testing"

	"gopkg.in/yaml.v3"
)

const weaponYAML = `
ammunition: {kind: bullet, faction: enemy}
damage: 6
position: {mode: local, offset: {x: 0, y: 12}}
reload_time: 1.25
initial_time: 0.5
speed: 180
direction: 1.5708
despawn_time: 4
count: 3
spread_weights: {x: 1, y: 0.5}
fire_mode: manual
capacity: 9
max_spread_arc: 0.8
projectile_gap: 0.2
`

func TestWeaponDataDecodesFromYAML(t *testing.T) {
	var data WeaponData
	if err := yaml.Unmarshal([]byte(weaponYAML), &data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if data.Ammunition != (ProjectileType{Kind: Bullet, Faction: Enemy}) {
		t.Errorf("ammunition: got %+v", data.Ammunition)
	}
	if data.Position.Mode != Local || data.Position.Offset.Y != 12 {
		t.Errorf("position: got %+v", data.Position)
	}
	if data.FireMode != Manual {
		t.Errorf("fire mode: got %v", data.FireMode)
	}
	if data.ReloadTime != 1.25 || data.InitialTime != 0.5 || data.Count != 3 || data.Capacity != 9 {
		t.Errorf("numbers: got %+v", data)
	}
	if err := data.Validate(); err != nil {
		t.Errorf("validate: %v", err)
	}
}

func TestWeaponDataRejectsUnknownEnums(t *testing.T) {
	for _, doc := range []string{
		"fire_mode: burst",
		"ammunition: {kind: laser}",
		"ammunition: {faction: pirates}",
		"position: {mode: orbit}",
	} {
		var data WeaponData
		if err := yaml.Unmarshal([]byte(doc), &data); err == nil {
			t.Errorf("expected error decoding %q", doc)
		}
	}
}

func TestWeaponDataValidate(t *testing.T) {
	valid := WeaponData{Count: 1}
	tests := []struct {
		name   string
		mutate func(*WeaponData)
	}{
		{"negative reload", func(d *WeaponData) { d.ReloadTime = -1 }},
		{"negative initial", func(d *WeaponData) { d.InitialTime = -0.1 }},
		{"negative despawn", func(d *WeaponData) { d.DespawnTime = -2 }},
		{"zero count", func(d *WeaponData) { d.Count = 0 }},
		{"negative capacity", func(d *WeaponData) { d.Capacity = -1 }},
		{"negative gap", func(d *WeaponData) { d.ProjectileGap = -0.1 }},
	}

	if err := valid.Validate(); err != nil {
		t.Fatalf("baseline should be valid: %v", err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := valid
			tt.mutate(&d)
			if err := d.Validate(); !errors.Is(err, ErrInvalidWeapon) {
				t.Errorf("expected ErrInvalidWeapon, got %v", err)
			}
		})
	}
}

func TestProjectileTypeString(t *testing.T) {
	if got := (ProjectileType{Kind: Blast, Faction: Ally}).String(); got != "ally_blast" {
		t.Errorf("got %q", got)
	}
}
