package replay

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMetadataIgnoresUnknownFields(t *testing.T) {
	meta, err := parseMetadata([]byte(`{"uid": 7, "title": "x", "state": "PLAYING", "sim_mods": {}, "complete": true}`))
	require.NoError(t, err)
	require.EqualValues(t, 7, meta.UID)
	require.Equal(t, "x", meta.Title)
}

func TestParseMetadataRejectsGarbage(t *testing.T) {
	_, err := parseMetadata([]byte("definitely not json"))
	require.ErrorIs(t, err, ErrCorruptReplay)
}

func TestPlayersOrderedByTeam(t *testing.T) {
	meta := &Metadata{Teams: map[string][]string{
		"2": {"Rhiza", "QAI"},
		"1": {"Brackman"},
	}}
	require.Equal(t, []string{"Brackman", "Rhiza", "QAI"}, meta.Players())
}

func TestPlayersEmpty(t *testing.T) {
	require.Nil(t, (*Metadata)(nil).Players())
	require.Nil(t, (&Metadata{}).Players())
}

func TestReplayIDFallback(t *testing.T) {
	require.EqualValues(t, defaultReplayID, (*Metadata)(nil).ReplayID())
	require.EqualValues(t, defaultReplayID, (&Metadata{}).ReplayID())
	require.EqualValues(t, 9000123, (&Metadata{UID: 9000123}).ReplayID())
}
