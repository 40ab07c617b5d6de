package gamedata

import (
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/automoto/starwave/shared/run"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownMob       = errors.New("unknown mob type")
	ErrUnknownCharacter = errors.New("unknown character")
	ErrInvalidData      = errors.New("invalid game data")
)

const (
	CharactersFile = "characters.yaml"
	MobsFile       = "mobs.yaml"
	PhasesFile     = "phases.yaml"
)

type charactersDoc struct {
	Characters []Character `yaml:"characters"`
}

type mobsDoc struct {
	Mobs []MobData `yaml:"mobs"`
}

type phasesDoc struct {
	Phases []run.Phase `yaml:"phases"`
}

// Load reads and validates the data files in dir. It takes an fs.FS so
// callers can pass the embedded assets or a directory on disk.
func Load(fsys fs.FS, dir string) (*Database, error) {
	var chars charactersDoc
	if err := decodeFile(fsys, path.Join(dir, CharactersFile), &chars); err != nil {
		return nil, err
	}
	var mobs mobsDoc
	if err := decodeFile(fsys, path.Join(dir, MobsFile), &mobs); err != nil {
		return nil, err
	}
	var phases phasesDoc
	if err := decodeFile(fsys, path.Join(dir, PhasesFile), &phases); err != nil {
		return nil, err
	}

	db := &Database{
		Characters: chars.Characters,
		Mobs:       make(map[string]MobData, len(mobs.Mobs)),
	}
	for _, m := range mobs.Mobs {
		if _, dup := db.Mobs[m.Type]; dup {
			return nil, fmt.Errorf("%w: duplicate mob type %q", ErrInvalidData, m.Type)
		}
		db.Mobs[m.Type] = m
	}
	db.Phases = phases.Phases

	if err := db.Validate(); err != nil {
		return nil, err
	}
	return db, nil
}

func decodeFile(fsys fs.FS, name string, out any) error {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

// Validate checks every record and the references between them.
func (db *Database) Validate() error {
	if len(db.Characters) == 0 {
		return fmt.Errorf("%w: no characters defined", ErrInvalidData)
	}
	seen := make(map[string]bool, len(db.Characters))
	for _, c := range db.Characters {
		if c.Name == "" {
			return fmt.Errorf("%w: character without a name", ErrInvalidData)
		}
		if seen[c.Name] {
			return fmt.Errorf("%w: duplicate character %q", ErrInvalidData, c.Name)
		}
		seen[c.Name] = true
		if c.Health <= 0 {
			return fmt.Errorf("%w: character %q has no health", ErrInvalidData, c.Name)
		}
		if err := c.Weapon.Validate(); err != nil {
			return fmt.Errorf("character %q: %w", c.Name, err)
		}
	}

	for name, m := range db.Mobs {
		if m.Health <= 0 {
			return fmt.Errorf("%w: mob %q has no health", ErrInvalidData, name)
		}
		if m.Weapon != nil {
			if err := m.Weapon.Validate(); err != nil {
				return fmt.Errorf("mob %q: %w", name, err)
			}
		}
		if len(m.Sequence) > 0 {
			if err := m.Sequence.Validate(); err != nil {
				return fmt.Errorf("mob %q: %w", name, err)
			}
		}
		if m.Spawner != nil {
			if _, ok := db.Mobs[m.Spawner.Mob]; !ok {
				return fmt.Errorf("mob %q spawns %q: %w", name, m.Spawner.Mob, ErrUnknownMob)
			}
			if m.Spawner.Period <= 0 {
				return fmt.Errorf("%w: mob %q has a non-positive spawn period", ErrInvalidData, name)
			}
		}
	}

	for _, p := range db.Phases {
		if err := p.Validate(); err != nil {
			return err
		}
		for _, mob := range p.Mobs {
			if _, ok := db.Mobs[mob]; !ok {
				return fmt.Errorf("phase %q: %w %q", p.Name, ErrUnknownMob, mob)
			}
		}
		if p.Boss != "" {
			if _, ok := db.Mobs[p.Boss]; !ok {
				return fmt.Errorf("phase %q: %w %q", p.Name, ErrUnknownMob, p.Boss)
			}
		}
	}
	return nil
}

// Character looks up a character by name.
func (db *Database) Character(name string) (Character, error) {
	for _, c := range db.Characters {
		if c.Name == name {
			return c, nil
		}
	}
	return Character{}, fmt.Errorf("%w %q", ErrUnknownCharacter, name)
}

// Mob looks up a mob type.
func (db *Database) Mob(name string) (MobData, error) {
	m, ok := db.Mobs[name]
	if !ok {
		return MobData{}, fmt.Errorf("%w %q", ErrUnknownMob, name)
	}
	return m, nil
}
