package detour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavMeshDataRoundTrip(t *testing.T) {
	original := twoPolyTileData(3, -2)

	encoded := original.ToBin()
	require.NotEmpty(t, encoded)

	decoded := &NavMeshData{}
	require.NoError(t, decoded.FromBin(encoded))

	require.Equal(t, original.Header.PolyCount, decoded.Header.PolyCount)
	assert.Equal(t, original.Header.X, decoded.Header.X)
	assert.Equal(t, original.Header.Y, decoded.Header.Y)
	assert.Equal(t, original.Header.Bmin, decoded.Header.Bmin)
	assert.Equal(t, original.Header.Bmax, decoded.Header.Bmax)
	assert.Equal(t, original.NavVerts, decoded.NavVerts)
	assert.Equal(t, original.NavDTris, decoded.NavDTris)

	require.Len(t, decoded.NavPolys, len(original.NavPolys))
	for i := range original.NavPolys {
		assert.Equal(t, original.NavPolys[i].Verts, decoded.NavPolys[i].Verts)
		assert.Equal(t, original.NavPolys[i].Neis, decoded.NavPolys[i].Neis)
		assert.Equal(t, original.NavPolys[i].Flags, decoded.NavPolys[i].Flags)
		assert.Equal(t, original.NavPolys[i].VertCount, decoded.NavPolys[i].VertCount)
	}

	require.Len(t, decoded.NavDMeshes, len(original.NavDMeshes))
	for i := range original.NavDMeshes {
		assert.Equal(t, original.NavDMeshes[i].TriBase, decoded.NavDMeshes[i].TriBase)
		assert.Equal(t, original.NavDMeshes[i].TriCount, decoded.NavDMeshes[i].TriCount)
	}
}

func TestNavMeshDataFromBinRejectsBadMagic(t *testing.T) {
	data := singlePolyTileData(0, 0)
	encoded := data.ToBin()
	encoded[0] ^= 0xff

	decoded := &NavMeshData{}
	err := decoded.FromBin(encoded)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadFormat)
}

func TestNavMeshDataFromBinRejectsTruncatedPayload(t *testing.T) {
	data := singlePolyTileData(0, 0)
	encoded := data.ToBin()

	decoded := &NavMeshData{}
	err := decoded.FromBin(encoded[:len(encoded)-8])
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadFormat)
}

func TestDtBVNodeRoundTrip(t *testing.T) {
	data := singlePolyTileData(0, 0)
	data.NavBvtree = []*DtBVNode{
		{Bmin: [3]uint16{1, 2, 3}, Bmax: [3]uint16{10, 20, 30}, I: 0},
	}
	data.Header.BvNodeCount = 1

	encoded := data.ToBin()
	decoded := &NavMeshData{}
	require.NoError(t, decoded.FromBin(encoded))
	require.Len(t, decoded.NavBvtree, 1)
	assert.Equal(t, data.NavBvtree[0].Bmin, decoded.NavBvtree[0].Bmin)
	assert.Equal(t, data.NavBvtree[0].Bmax, decoded.NavBvtree[0].Bmax)
	assert.Equal(t, data.NavBvtree[0].I, decoded.NavBvtree[0].I)
}
