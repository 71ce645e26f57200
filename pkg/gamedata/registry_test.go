package gamedata_test

import (
	"errors"
	"image/color"
	"testing"

	"github.com/OCharnyshevich/voxel-terrain/pkg/gamedata"
)

func TestRegistryRegisterAndGet(t *testing.T) {
	reg := gamedata.NewBlockRegistry()
	if err := reg.Register(gamedata.Block{Name: "stone", Top: gamedata.TileAt(1), Side: gamedata.TileAt(1), Bottom: gamedata.TileAt(1)}); err != nil {
		t.Fatalf("register stone: %v", err)
	}

	b, err := reg.Get("stone")
	if err != nil {
		t.Fatalf("get stone: %v", err)
	}
	if i, ok := b.Top.Index(); !ok || i != 1 {
		t.Errorf("stone top = (%d, %v), want (1, true)", i, ok)
	}
	if !reg.Exists("stone") {
		t.Error("Exists(stone) = false, want true")
	}
	if reg.Exists("dirt") {
		t.Error("Exists(dirt) = true, want false")
	}
}

func TestRegistryDuplicateRejected(t *testing.T) {
	reg := gamedata.NewBiomeRegistry()
	flat := func(_, _ int) int { return 0 }
	if err := reg.Register(gamedata.Biome{Name: "plains", Height: flat}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	err := reg.Register(gamedata.Biome{Name: "plains", DisplayName: "Other", Height: flat})
	if !errors.Is(err, gamedata.ErrDuplicateRegistration) {
		t.Fatalf("second register err = %v, want ErrDuplicateRegistration", err)
	}

	b, _ := reg.Get("plains")
	if b.DisplayName != "" {
		t.Errorf("duplicate registration replaced entry: display name %q", b.DisplayName)
	}
}

func TestRegistryEmptyNameRejected(t *testing.T) {
	reg := gamedata.NewBlockRegistry()
	if err := reg.Register(gamedata.Block{}); err == nil {
		t.Fatal("expected error for empty name")
	}
}

func TestRegistryNotFound(t *testing.T) {
	reg := gamedata.NewBlockRegistry()
	_, err := reg.Get("missing")
	if !errors.Is(err, gamedata.ErrNotFound) {
		t.Fatalf("Get(missing) err = %v, want ErrNotFound", err)
	}
	if got := reg.Order("missing"); got != -1 {
		t.Errorf("Order(missing) = %d, want -1", got)
	}
}

func TestRegistryAllReturnsEachOnceInOrder(t *testing.T) {
	reg := gamedata.NewBlockRegistry()
	names := []string{"grass", "dirt", "stone", "sand"}
	for _, n := range names {
		if err := reg.Register(gamedata.Block{Name: n}); err != nil {
			t.Fatalf("register %s: %v", n, err)
		}
	}

	all := reg.All()
	if len(all) != len(names) {
		t.Fatalf("All() returned %d entries, want %d", len(all), len(names))
	}
	seen := make(map[string]int)
	for i, b := range all {
		seen[b.Name]++
		if b.Name != names[i] {
			t.Errorf("All()[%d] = %s, want %s", i, b.Name, names[i])
		}
		if got := reg.Order(b.Name); got != i {
			t.Errorf("Order(%s) = %d, want %d", b.Name, got, i)
		}
	}
	for _, n := range names {
		if seen[n] != 1 {
			t.Errorf("%s returned %d times", n, seen[n])
		}
	}

	// The returned slice is a copy.
	all[0].Name = "changed"
	if _, err := reg.Get("grass"); err != nil {
		t.Errorf("mutating All() result affected registry: %v", err)
	}
	if reg.Len() != len(names) {
		t.Errorf("Len() = %d, want %d", reg.Len(), len(names))
	}
}

func TestBlockFaceTile(t *testing.T) {
	grass := gamedata.Block{Name: "grass", Top: gamedata.TileAt(0), Side: gamedata.TileAt(3), Bottom: gamedata.NoTile}

	tests := []struct {
		face   gamedata.Face
		tile   int
		ok     bool
		hasErr bool
	}{
		{gamedata.FaceTop, 0, true, false},
		{gamedata.FaceSide, 3, true, false},
		{gamedata.FaceBottom, -1, false, false},
		{gamedata.Face(7), 0, false, true},
		{gamedata.Face(-1), 0, false, true},
	}
	for _, tt := range tests {
		tile, ok, err := grass.FaceTile(tt.face)
		if (err != nil) != tt.hasErr {
			t.Errorf("FaceTile(%s) err = %v, wantErr %v", tt.face, err, tt.hasErr)
			continue
		}
		if tt.hasErr && !errors.Is(err, gamedata.ErrInvalidFace) {
			t.Errorf("FaceTile(%s) err = %v, want ErrInvalidFace", tt.face, err)
		}
		if tile != tt.tile || ok != tt.ok {
			t.Errorf("FaceTile(%s) = (%d, %v), want (%d, %v)", tt.face, tile, ok, tt.tile, tt.ok)
		}
	}
}

func TestBlockWithoutTilesHasNone(t *testing.T) {
	b := gamedata.Block{Name: "glass"}
	for _, face := range []gamedata.Face{gamedata.FaceTop, gamedata.FaceSide, gamedata.FaceBottom} {
		if _, ok, err := b.FaceTile(face); ok || err != nil {
			t.Errorf("FaceTile(%s) on unset block = (ok %v, err %v), want no tile", face, ok, err)
		}
	}

	if i, ok := gamedata.TileAt(0).Index(); !ok || i != 0 {
		t.Errorf("TileAt(0).Index() = (%d, %v), want (0, true)", i, ok)
	}
	if _, ok := gamedata.NoTile.Index(); ok {
		t.Error("NoTile.Index() ok = true")
	}
}

func TestGameDataValidate(t *testing.T) {
	gd := gamedata.New()
	_ = gd.Blocks.Register(gamedata.Block{Name: "grass"})
	_ = gd.Biomes.Register(gamedata.Biome{
		Name:       "plains",
		Height:     func(_, _ int) int { return 0 },
		Surface:    "grass",
		Subsurface: "dirt",
	})

	err := gd.Validate()
	if !errors.Is(err, gamedata.ErrNotFound) {
		t.Fatalf("Validate() err = %v, want ErrNotFound for dirt", err)
	}

	_ = gd.Blocks.Register(gamedata.Block{Name: "dirt"})
	if err := gd.Validate(); err != nil {
		t.Fatalf("Validate() after registering dirt: %v", err)
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := gamedata.ParseHexColor("#8B5A2B")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := color.RGBA{R: 0x8b, G: 0x5a, B: 0x2b, A: 0xff}
	if c != want {
		t.Errorf("ParseHexColor = %v, want %v", c, want)
	}
	if _, err := gamedata.ParseHexColor("not-a-color"); err == nil {
		t.Error("expected error for invalid color")
	}
}

func TestTintedEndpoints(t *testing.T) {
	base := color.RGBA{R: 200, G: 100, B: 50, A: 0xff}
	tint := color.RGBA{R: 0, G: 255, B: 0, A: 0xff}

	if got := gamedata.Tinted(base, tint, 0); got != base {
		t.Errorf("Tinted(amount=0) = %v, want %v", got, base)
	}
	if got := gamedata.Tinted(base, tint, 1); got != tint {
		t.Errorf("Tinted(amount=1) = %v, want %v", got, tint)
	}
}
