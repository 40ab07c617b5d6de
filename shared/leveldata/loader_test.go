package leveldata

import (
	"errors"
	"testing"
	"testing/fstest"
)

const arenaTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="8" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="PlayerSpawn">
  <object id="1" x="80" y="100">
   <properties><property name="spawnIndex" type="int" value="0"/></properties>
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="2" name="MobSpawn">
  <object id="2" x="120" y="-10"><point/></object>
  <object id="3" x="20" y="-10"><point/></object>
  <object id="4" x="80" y="-30">
   <properties><property name="boss" type="bool" value="true"/></properties>
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="3" name="Barrier">
  <object id="5" x="0" y="128" width="160" height="8">
   <properties><property name="kind" value="bottom"/></properties>
  </object>
  <object id="6" x="-8" y="0" width="8" height="128"/>
 </objectgroup>
</map>
`

const emptyTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="8" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="MobSpawn"/>
</map>
`

func TestLoadArena(t *testing.T) {
	fsys := fstest.MapFS{"levels/arena.tmx": {Data: []byte(arenaTMX)}}

	arena, err := LoadArena(fsys, "levels/arena.tmx")
	if err != nil {
		t.Fatalf("LoadArena: %v", err)
	}

	if arena.Width != 160 || arena.Height != 128 {
		t.Errorf("size: got %dx%d", arena.Width, arena.Height)
	}
	if len(arena.PlayerSpawn) != 1 || arena.PlayerSpawn[0].X != 80 {
		t.Errorf("player spawn: got %+v", arena.PlayerSpawn)
	}
	if len(arena.MobSpawns) != 2 {
		t.Fatalf("expected 2 mob lanes, got %+v", arena.MobSpawns)
	}
	if arena.MobSpawns[0].X != 20 || arena.MobSpawns[1].X != 120 || arena.MobSpawns[1].Index != 1 {
		t.Errorf("mob lanes not sorted left-to-right: %+v", arena.MobSpawns)
	}
	if arena.BossSpawn.X != 80 || arena.BossSpawn.Y != -30 {
		t.Errorf("boss spawn: got %+v", arena.BossSpawn)
	}
	if len(arena.Barriers) != 2 {
		t.Fatalf("expected 2 barriers, got %+v", arena.Barriers)
	}
	if arena.Barriers[0].Kind != BarrierBottom || arena.Barriers[1].Kind != BarrierSide {
		t.Errorf("barrier kinds: got %+v", arena.Barriers)
	}
}

func TestLoadArenaRequiresPlayerSpawn(t *testing.T) {
	fsys := fstest.MapFS{"arena.tmx": {Data: []byte(emptyTMX)}}
	if _, err := LoadArena(fsys, "arena.tmx"); !errors.Is(err, ErrNoPlayerSpawn) {
		t.Errorf("expected ErrNoPlayerSpawn, got %v", err)
	}
}

func TestLoadArenaMissingFile(t *testing.T) {
	if _, err := LoadArena(fstest.MapFS{}, "nope.tmx"); err == nil {
		t.Error("expected error for missing file")
	}
}
