package levels

import (
	"testing"

	"github.com/milk9111/bludbourne/assets"
)

func TestShippedMaps(t *testing.T) {
	destinations := map[string]bool{"TOP_WORLD": true, "TOWN": true, "CASTLE_OF_DOOM": true}

	for _, path := range []string{"maps/town.tmx", "maps/topworld.tmx", "maps/castle_of_doom.tmx"} {
		t.Run(path, func(t *testing.T) {
			m, err := LoadFromFS(assets.FS(), path)
			if err != nil {
				t.Fatalf("load failed: %v", err)
			}

			collision := Rects(ObjectLayer(m, CollisionLayer))
			portals := ObjectLayer(m, PortalLayer)
			spawns := ObjectLayer(m, SpawnsLayer)
			if len(collision) == 0 || portals == nil || spawns == nil {
				t.Fatalf("expected collision, portal and spawn layers")
			}

			for _, p := range portals.Objects {
				if !destinations[p.Name] {
					t.Errorf("portal %d leads to unknown map %q", p.ID, p.Name)
				}
			}

			starts := 0
			for _, s := range spawns.Objects {
				if s.Name != PlayerStart {
					continue
				}
				starts++
				marker := Rect(s)
				for _, r := range collision {
					if marker.Intersects(r) {
						t.Errorf("start %d at (%v,%v) is inside a wall", s.ID, s.X, s.Y)
					}
				}
				for _, p := range Rects(portals) {
					if marker.Intersects(p) {
						t.Errorf("start %d at (%v,%v) is inside a portal", s.ID, s.X, s.Y)
					}
				}
			}
			if starts == 0 {
				t.Fatalf("no %s markers", PlayerStart)
			}
		})
	}
}
