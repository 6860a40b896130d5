package replay

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Metadata is the JSON header on the first line of a .fafreplay container.
// The server writes more fields than these; unknown ones are ignored.
type Metadata struct {
	UID         int64               `json:"uid"`
	Title       string              `json:"title"`
	MapName     string              `json:"mapname"`
	FeaturedMod string              `json:"featured_mod"`
	GameVersion string              `json:"game_version"`
	Recorder    string              `json:"recorder"`
	NumPlayers  int                 `json:"num_players"`
	LaunchedAt  float64             `json:"launched_at"`
	Teams       map[string][]string `json:"teams"`

	// Container version and stream encoding, present in v2 headers only.
	Version     int    `json:"version"`
	Compression string `json:"compression"`
}

func parseMetadata(line []byte) (*Metadata, error) {
	var meta Metadata
	if err := json.Unmarshal(line, &meta); err != nil {
		return nil, fmt.Errorf("%w: malformed metadata header: %v", ErrCorruptReplay, err)
	}
	return &meta, nil
}

// Players flattens the team map into a single list, ordered by team key so the
// output is stable across runs.
func (m *Metadata) Players() []string {
	if m == nil || len(m.Teams) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m.Teams))
	for key := range m.Teams {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	var players []string
	for _, key := range keys {
		players = append(players, m.Teams[key]...)
	}
	return players
}

// defaultReplayID matches the placeholder id the desktop client passes when a
// replay was never registered with the server.
const defaultReplayID = 12345

// ReplayID returns the id to hand to the engine.
func (m *Metadata) ReplayID() int64 {
	if m == nil || m.UID == 0 {
		return defaultReplayID
	}
	return m.UID
}
