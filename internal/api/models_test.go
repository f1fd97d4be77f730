package api

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDirectoryMarshalPreservesOrder(t *testing.T) {
	d := Directory{
		{Name: "Chess Club", Activity: ActivityView{MaxParticipants: 12, Participants: []string{"michael@mergington.edu"}}},
		{Name: "Art Studio", Activity: ActivityView{MaxParticipants: 15, Participants: []string{}}},
		{Name: "Basketball Team", Activity: ActivityView{MaxParticipants: 15, Participants: []string{}}},
	}

	raw, err := json.Marshal(d)
	require.NoError(t, err)

	body := string(raw)
	require.True(t, strings.Index(body, `"Chess Club"`) < strings.Index(body, `"Art Studio"`))
	require.True(t, strings.Index(body, `"Art Studio"`) < strings.Index(body, `"Basketball Team"`))

	// Stays decodable as a plain name-keyed object.
	var decoded map[string]ActivityView
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Len(t, decoded, 3)
	require.Equal(t, 12, decoded["Chess Club"].MaxParticipants)
}

func TestDirectoryMarshalEmpty(t *testing.T) {
	raw, err := json.Marshal(Directory{})
	require.NoError(t, err)
	require.Equal(t, "{}", string(raw))
}
