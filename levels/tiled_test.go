package levels

import (
	"testing"
	"testing/fstest"

	"github.com/lafriks/go-tiled"
	"github.com/milk9111/bludbourne/common"
)

const testMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="16" tileheight="16" infinite="0" nextlayerid="4" nextobjectid="6">
 <objectgroup id="1" name="MAP_COLLISION_LAYER">
  <object id="1" x="16" y="16" width="16" height="32"/>
  <object id="2" x="40" y="8" width="8" height="8">
   <ellipse/>
  </object>
 </objectgroup>
 <objectgroup id="2" name="MAP_PORTAL_LAYER">
  <object id="3" name="TOWN" x="0" y="0" width="16" height="16"/>
 </objectgroup>
 <objectgroup id="3" name="MAP_SPAWNS_LAYER">
  <object id="4" name="PLAYER_START" x="32" y="16" width="16" height="16"/>
  <object id="5" name="player_start" x="48" y="32" width="16" height="16"/>
 </objectgroup>
</map>
`

func TestLoadFromFS(t *testing.T) {
	fsys := fstest.MapFS{"maps/test.tmx": {Data: []byte(testMap)}}

	m, err := LoadFromFS(fsys, "maps/test.tmx")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	w, h := PixelSize(m)
	if w != 64 || h != 48 {
		t.Fatalf("expected 64x48 pixels, got %dx%d", w, h)
	}

	cases := []struct {
		layer string
		rects int
	}{
		{CollisionLayer, 1},
		{PortalLayer, 1},
		{SpawnsLayer, 2},
	}
	for _, c := range cases {
		t.Run(c.layer, func(t *testing.T) {
			layer := ObjectLayer(m, c.layer)
			if layer == nil {
				t.Fatalf("layer %s missing", c.layer)
			}
			if got := len(Rects(layer)); got != c.rects {
				t.Fatalf("expected %d rects, got %d", c.rects, got)
			}
		})
	}

	portal := ObjectLayer(m, PortalLayer).Objects[0]
	if portal.Name != "TOWN" {
		t.Fatalf("expected portal named TOWN, got %q", portal.Name)
	}
	want := common.Rect{X: 16, Y: 16, Width: 16, Height: 32}
	if got := Rects(ObjectLayer(m, CollisionLayer))[0]; got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestLoadFromFSMissing(t *testing.T) {
	if _, err := LoadFromFS(fstest.MapFS{}, "maps/none.tmx"); err == nil {
		t.Fatalf("expected error for missing map")
	}
}

func TestObjectLayerAbsent(t *testing.T) {
	if ObjectLayer(nil, CollisionLayer) != nil {
		t.Fatalf("nil map should have no layers")
	}
	m := &tiled.Map{ObjectGroups: []*tiled.ObjectGroup{{Name: PortalLayer}}}
	if ObjectLayer(m, CollisionLayer) != nil {
		t.Fatalf("unexpected collision layer")
	}
	if Rects(nil) != nil {
		t.Fatalf("nil layer should have no rects")
	}
}

func TestIsRect(t *testing.T) {
	cases := []struct {
		name string
		obj  *tiled.Object
		want bool
	}{
		{"nil", nil, false},
		{"rect", &tiled.Object{Width: 4, Height: 4}, true},
		{"ellipse", &tiled.Object{Ellipse: &tiled.Ellipse{}}, false},
		{"tile", &tiled.Object{GID: 3}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := IsRect(c.obj); got != c.want {
				t.Fatalf("IsRect = %v, want %v", got, c.want)
			}
		})
	}
}
