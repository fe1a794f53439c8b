package detour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodePolyIdRoundTrip(t *testing.T) {
	mesh, err := buildMeshFromData(4, singlePolyTileData(0, 0))
	require.NoError(t, err)

	salt, tile, poly := mesh.DecodePolyId(mesh.EncodePolyId(7, 2, 3))
	assert.EqualValues(t, 7, salt)
	assert.EqualValues(t, 2, tile)
	assert.EqualValues(t, 3, poly)

	ref := mesh.EncodePolyId(mesh.m_tiles[0].salt, 0, 0)
	assert.EqualValues(t, 0, mesh.DecodePolyIdPoly(ref))
	assert.EqualValues(t, 0, mesh.DecodePolyIdTile(ref))
	assert.EqualValues(t, mesh.m_tiles[0].salt, mesh.DecodePolyIdSalt(ref))
}

func TestGetPolyRefBaseMatchesInstalledTile(t *testing.T) {
	mesh, err := buildMeshFromData(4, singlePolyTileData(0, 0))
	require.NoError(t, err)

	tile := mesh.GetTile(0)
	require.NotNil(t, tile.Header)

	base := mesh.GetPolyRefBase(tile)
	ref := base | DtPolyRef(0)
	assert.True(t, mesh.IsValidPolyRef(ref))

	gotTile, gotPoly := mesh.GetTileAndPolyByRefUnsafe(ref)
	assert.Same(t, tile, gotTile)
	assert.Same(t, tile.Polys[0], gotPoly)
}

func TestIsValidPolyRefRejectsStaleSalt(t *testing.T) {
	mesh, err := buildMeshFromData(4, singlePolyTileData(0, 0))
	require.NoError(t, err)

	tile := mesh.GetTile(0)
	staleRef := mesh.EncodePolyId(tile.salt+1, 0, 0)
	assert.False(t, mesh.IsValidPolyRef(staleRef))

	assert.False(t, mesh.IsValidPolyRef(0))
}
