package obj

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/lafriks/go-tiled"
	"github.com/milk9111/bludbourne/assets"
	"github.com/milk9111/bludbourne/common"
	"github.com/milk9111/bludbourne/levels"
)

// Symbolic names of the shipped maps.
const (
	TopWorld     = "TOP_WORLD"
	Town         = "TOWN"
	CastleOfDoom = "CASTLE_OF_DOOM"
)

var ErrUnknownMap = errors.New("obj: unknown map")

// MapManager owns the single active tiled map and remembers, per map, where
// the player should re-enter it.
type MapManager struct {
	assets     *assets.Manager
	paths      map[string]string
	defaultMap string

	// startLocations holds the recorded spawn per map name, in raw pixels.
	// A map is absent until a spawn marker has been picked for it.
	startLocations map[string]cp.Vector
	// playerStart is the pending spawn for the active map, in raw pixels.
	playerStart cp.Vector

	currentMap     *tiled.Map
	currentMapName string
	currentMapPath string

	collisionLayer *tiled.ObjectGroup
	portalLayer    *tiled.ObjectGroup
	spawnsLayer    *tiled.ObjectGroup

	log *slog.Logger
}

// NewMapManager creates a manager resolving map names through paths. The
// default map is loaded lazily by CurrentMap.
func NewMapManager(am *assets.Manager, paths map[string]string, defaultMap string, logger *slog.Logger) *MapManager {
	if logger == nil {
		logger = slog.Default()
	}
	table := make(map[string]string, len(paths))
	for name, path := range paths {
		table[name] = path
	}
	return &MapManager{
		assets:         am,
		paths:          table,
		defaultMap:     defaultMap,
		startLocations: make(map[string]cp.Vector),
		log:            logger.With("component", "MapManager"),
	}
}

// LoadMap makes name the active map. An unknown name, a missing file or a
// file that fails to decode leaves the previous map active and returns an
// error wrapping ErrUnknownMap, assets.ErrNotExist or assets.ErrNotLoaded.
// The previous map is released only once the new one is decoded.
func (m *MapManager) LoadMap(name string) error {
	m.playerStart = cp.Vector{}

	path, ok := m.paths[name]
	if !ok || path == "" {
		m.log.Debug("map is invalid", "map", name)
		return fmt.Errorf("%w: %q", ErrUnknownMap, name)
	}
	if !m.assets.Exists(path) {
		m.log.Debug("map doesn't exist", "map", name, "path", path)
		return fmt.Errorf("obj: load map %s: %w", name, assets.ErrNotExist)
	}

	previous := m.currentMapPath
	samePath := m.currentMap != nil && assets.CleanPath(previous) == assets.CleanPath(path)
	if samePath {
		if !m.assets.Reload(path, assets.KindMap) {
			m.log.Debug("map not reloaded", "map", name, "path", path)
			return fmt.Errorf("obj: reload map %s: %w", name, assets.ErrNotLoaded)
		}
	} else {
		m.assets.Load(path, assets.KindMap)
	}

	tm, ok := assets.Get[*tiled.Map](m.assets, path)
	if !ok {
		m.log.Debug("map not loaded", "map", name, "path", path)
		return fmt.Errorf("obj: load map %s: %w", name, assets.ErrNotLoaded)
	}
	if m.currentMap != nil && !samePath {
		m.assets.Unload(previous)
	}

	m.currentMap = tm
	m.currentMapName = name
	m.currentMapPath = path

	m.collisionLayer = levels.ObjectLayer(tm, levels.CollisionLayer)
	if m.collisionLayer == nil {
		m.log.Debug("no collision layer", "map", name)
	}

	m.portalLayer = levels.ObjectLayer(tm, levels.PortalLayer)
	if m.portalLayer == nil {
		m.log.Debug("no portal layer", "map", name)
	}

	m.spawnsLayer = levels.ObjectLayer(tm, levels.SpawnsLayer)
	if m.spawnsLayer == nil {
		m.log.Debug("no spawn layer", "map", name)
		return nil
	}

	start, ok := m.startLocations[name]
	if !ok {
		m.setClosestStartPosition(m.playerStart)
		start = m.startLocations[name]
	}
	m.playerStart = start
	return nil
}

// ReloadCurrent reloads the active map from disk.
func (m *MapManager) ReloadCurrent() error {
	if m.currentMapName == "" {
		return nil
	}
	return m.LoadMap(m.currentMapName)
}

// CurrentMap returns the active map, loading the default map on first use.
// It returns nil if no map could be loaded.
func (m *MapManager) CurrentMap() *tiled.Map {
	if m.currentMap == nil {
		if err := m.LoadMap(m.defaultMap); err != nil {
			m.log.Debug("default map unavailable", "map", m.defaultMap, "error", err)
		}
	}
	return m.currentMap
}

func (m *MapManager) CurrentMapName() string { return m.currentMapName }
func (m *MapManager) CurrentMapPath() string { return m.currentMapPath }

func (m *MapManager) CollisionLayer() *tiled.ObjectGroup { return m.collisionLayer }
func (m *MapManager) PortalLayer() *tiled.ObjectGroup    { return m.portalLayer }
func (m *MapManager) SpawnsLayer() *tiled.ObjectGroup    { return m.spawnsLayer }

// PlayerStartUnitScaled returns the pending spawn in map units.
func (m *MapManager) PlayerStartUnitScaled() cp.Vector {
	return common.ToMapUnits(m.playerStart)
}

// StartLocation returns the recorded spawn for name in raw pixels.
func (m *MapManager) StartLocation(name string) (cp.Vector, bool) {
	v, ok := m.startLocations[name]
	return v, ok
}

// SetClosestStartPositionFromScaledUnits records, for the active map, the
// spawn marker nearest to position (in map units).
func (m *MapManager) SetClosestStartPositionFromScaledUnits(position cp.Vector) {
	if common.UnitScale <= 0 {
		return
	}
	m.setClosestStartPosition(common.ToPixels(position))
}

// setClosestStartPosition records the PLAYER_START marker nearest to
// position (raw pixels) as the active map's spawn. Equal distances keep the
// first marker seen. Nothing is recorded if the map has no marker.
func (m *MapManager) setClosestStartPosition(position cp.Vector) {
	if m.spawnsLayer == nil {
		return
	}

	var closest cp.Vector
	shortest := 0.0
	found := false
	for _, o := range m.spawnsLayer.Objects {
		if o == nil || !strings.EqualFold(o.Name, levels.PlayerStart) {
			continue
		}
		candidate := cp.Vector{X: o.X, Y: o.Y}
		distance := position.DistanceSq(candidate)
		if !found || distance < shortest {
			closest = candidate
			shortest = distance
			found = true
		}
	}

	if !found {
		m.log.Debug("no player start on spawn layer", "map", m.currentMapName)
		return
	}
	m.startLocations[m.currentMapName] = closest
}

func (m *MapManager) disposeCurrent() {
	if m.currentMap == nil {
		return
	}
	m.assets.Unload(m.currentMapPath)
	m.currentMap = nil
	m.collisionLayer = nil
	m.portalLayer = nil
	m.spawnsLayer = nil
}

// Dispose releases the active map.
func (m *MapManager) Dispose() {
	m.disposeCurrent()
	m.currentMapName = ""
	m.currentMapPath = ""
}
