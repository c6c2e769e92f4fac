package assets

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissions(t *testing.T) {
	entries, err := fs.ReadDir(Missions(), ".")
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Contains(t, names, "mars.planet")
	assert.Contains(t, names, "curiosity.rover")

	b, err := fs.ReadFile(Missions(), "mars.planet")
	require.NoError(t, err)
	assert.Equal(t, "5x4\n2,0 0,3\n", string(b))
}
