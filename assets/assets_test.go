package assets

import "testing"

func TestEmbeddedDataLoads(t *testing.T) {
	db, err := LoadDatabase()
	if err != nil {
		t.Fatalf("LoadDatabase: %v", err)
	}
	if _, err := db.Character("captain"); err != nil {
		t.Errorf("captain: %v", err)
	}
	if len(db.Phases) == 0 {
		t.Error("expected phases")
	}
}

func TestEmbeddedArenaLoads(t *testing.T) {
	arena, err := LoadArena()
	if err != nil {
		t.Fatalf("LoadArena: %v", err)
	}
	if arena.Width != 640 || arena.Height != 352 {
		t.Errorf("unexpected arena size %dx%d", arena.Width, arena.Height)
	}
	if len(arena.MobSpawns) != 5 {
		t.Errorf("expected 5 mob lanes, got %d", len(arena.MobSpawns))
	}
}

func TestInputBindingsPresent(t *testing.T) {
	raw, err := InputBindings()
	if err != nil || len(raw) == 0 {
		t.Fatalf("InputBindings: %v (len %d)", err, len(raw))
	}
}
