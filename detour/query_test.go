package detour

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindPathSinglePolyTrivialCase(t *testing.T) {
	mesh, err := buildMeshFromData(4, singlePolyTileData(0, 0))
	require.NoError(t, err)

	query := NewDtNavMeshQuery(mesh, 64)
	filter := NewDtQueryFilter()

	base := mesh.GetPolyRefBase(mesh.GetTile(0))
	ref := base | DtPolyRef(0)

	path := make([]DtPolyRef, 8)
	n, status := query.FindPath(ref, ref, []float32{2, 0, 2}, []float32{2, 0, 2}, filter, path, int32(len(path)))
	require.True(t, status.DtStatusSucceed())
	require.EqualValues(t, 1, n)
	assert.Equal(t, ref, path[0])
}

func TestFindPathTwoAdjacentPolysCorridor(t *testing.T) {
	mesh, err := buildMeshFromData(4, twoPolyTileData(0, 0))
	require.NoError(t, err)

	query := NewDtNavMeshQuery(mesh, 64)
	filter := NewDtQueryFilter()

	base := mesh.GetPolyRefBase(mesh.GetTile(0))
	startRef := base | DtPolyRef(0)
	endRef := base | DtPolyRef(1)

	path := make([]DtPolyRef, 8)
	n, status := query.FindPath(startRef, endRef, []float32{2, 0, 5}, []float32{18, 0, 5}, filter, path, int32(len(path)))
	require.True(t, status.DtStatusSucceed())
	require.EqualValues(t, 2, n)
	assert.Equal(t, startRef, path[0])
	assert.Equal(t, endRef, path[1])
}

func TestFindStraightPathFunnelsThroughSharedEdge(t *testing.T) {
	mesh, err := buildMeshFromData(4, twoPolyTileData(0, 0))
	require.NoError(t, err)

	query := NewDtNavMeshQuery(mesh, 64)
	filter := NewDtQueryFilter()

	base := mesh.GetPolyRefBase(mesh.GetTile(0))
	startRef := base | DtPolyRef(0)
	endRef := base | DtPolyRef(1)
	startPos := []float32{2, 0, 5}
	endPos := []float32{18, 0, 5}

	path := make([]DtPolyRef, 8)
	n, status := query.FindPath(startRef, endRef, startPos, endPos, filter, path, int32(len(path)))
	require.True(t, status.DtStatusSucceed())

	straightPath := make([]float32, 3*8)
	straightFlags := make([]int32, 8)
	straightRefs := make([]DtPolyRef, 8)
	spCount, status := query.FindStraightPath(startPos, endPos, path[:n], n, straightPath, straightFlags, straightRefs, 8)
	require.True(t, status.DtStatusSucceed())
	require.GreaterOrEqual(t, spCount, int32(2))

	firstX := straightPath[0]
	lastIdx := (spCount - 1) * 3
	lastX := straightPath[lastIdx]
	assert.InDelta(t, startPos[0], firstX, 0.01)
	assert.InDelta(t, endPos[0], lastX, 0.01)
}

func TestFindPathUnreachableGoalReturnsPartialResult(t *testing.T) {
	mesh, err := buildMeshFromData(4, singlePolyTileData(0, 0), singlePolyTileData(5, 5))
	require.NoError(t, err)

	query := NewDtNavMeshQuery(mesh, 64)
	filter := NewDtQueryFilter()

	startBase := mesh.GetPolyRefBase(mesh.GetTile(0))
	endBase := mesh.GetPolyRefBase(mesh.GetTile(1))
	startRef := startBase | DtPolyRef(0)
	endRef := endBase | DtPolyRef(0)

	path := make([]DtPolyRef, 8)
	n, status := query.FindPath(startRef, endRef, []float32{2, 0, 2}, []float32{2, 0, 2}, filter, path, int32(len(path)))
	assert.True(t, status.DtStatusSucceed())
	assert.True(t, status.DtStatusDetail(DT_PARTIAL_RESULT))
	require.EqualValues(t, 1, n)
	assert.Equal(t, startRef, path[0])
}

func TestFindNearestPolySingleTile(t *testing.T) {
	mesh, err := buildMeshFromData(4, singlePolyTileData(0, 0))
	require.NoError(t, err)

	query := NewDtNavMeshQuery(mesh, 64)
	filter := NewDtQueryFilter()

	nearestPt := make([]float32, 3)
	ref, status := query.FindNearestPoly([]float32{5, 0, 5}, []float32{1, 1, 1}, filter, nearestPt)
	require.True(t, status.DtStatusSucceed())

	base := mesh.GetPolyRefBase(mesh.GetTile(0))
	assert.Equal(t, base|DtPolyRef(0), ref)
}

func TestNodePoolReusedAcrossSearches(t *testing.T) {
	mesh, err := buildMeshFromData(4, twoPolyTileData(0, 0))
	require.NoError(t, err)

	query := NewDtNavMeshQuery(mesh, 64).(*DtNavMeshQuery)
	filter := NewDtQueryFilter()

	base := mesh.GetPolyRefBase(mesh.GetTile(0))
	startRef := base | DtPolyRef(0)
	endRef := base | DtPolyRef(1)
	path := make([]DtPolyRef, 8)

	for i := 0; i < 3; i++ {
		n, status := query.FindPath(startRef, endRef, []float32{2, 0, 5}, []float32{18, 0, 5}, filter, path, int32(len(path)))
		require.True(t, status.DtStatusSucceed())
		require.EqualValues(t, 2, n)
	}

	assert.LessOrEqual(t, query.GetNodePool().GetNodeCount(), int32(2))
}

func TestRaycastAcrossTileBorder(t *testing.T) {
	a, b := borderTilePair()
	mesh, err := buildMeshFromData(4, a, b)
	require.NoError(t, err)

	query := NewDtNavMeshQuery(mesh, 64)
	filter := NewDtQueryFilter()

	baseA := mesh.GetPolyRefBase(mesh.GetTile(0))
	startRef := baseA | DtPolyRef(0)

	var hitT float32
	hitNormal := make([]float32, 3)
	path := make([]DtPolyRef, 8)
	var pathCount int32

	status := query.Raycast(startRef, []float32{5, 0, 5}, []float32{15, 0, 5}, filter, &hitT, hitNormal, path, &pathCount, int32(len(path)))
	require.True(t, status.DtStatusSucceed())
	assert.GreaterOrEqual(t, pathCount, int32(2))
	assert.True(t, hitT > 1.0 || hitT == float32(math.MaxFloat32))
}
