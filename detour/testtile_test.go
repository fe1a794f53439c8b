package detour

// Helpers for building small, fully in-memory navmesh tiles for tests.
// Every tile round-trips through NavMeshData.ToBin/FromBin so the tests
// exercise the wire codec, not just the in-memory structs.

// twoPolyTileData builds a single-tile NavMeshData containing two adjacent
// quads sharing one internal edge, forming a 20x10 rectangle split at x=10:
//
//	(0,0,10)---(10,0,10)---(20,0,10)
//	   |   poly0   |   poly1   |
//	(0,0,0) ---(10,0,0) ---(20,0,0)
//
// poly0 = verts[0,1,2,3], poly1 = verts[1,4,5,2] (shared edge 1-2).
func twoPolyTileData(tx, ty int32) *NavMeshData {
	verts := []float32{
		0, 0, 0, // 0
		10, 0, 0, // 1
		10, 0, 10, // 2
		0, 0, 10, // 3
		20, 0, 0, // 4
		20, 0, 10, // 5
	}

	poly0 := &DtPoly{
		Verts:     [DT_VERTS_PER_POLYGON]uint16{0, 1, 2, 3},
		Neis:      [DT_VERTS_PER_POLYGON]uint16{0, 2, 0, 0}, // edge 1 (1->2) borders poly1 (index+1=2)
		Flags:     1,
		VertCount: 4,
	}
	poly1 := &DtPoly{
		Verts:     [DT_VERTS_PER_POLYGON]uint16{1, 4, 5, 2},
		Neis:      [DT_VERTS_PER_POLYGON]uint16{0, 0, 0, 1}, // edge 3 (2->1) borders poly0 (index+1=1)
		Flags:     1,
		VertCount: 4,
	}

	detailTris := []uint8{
		0, 1, 2, 0,
		0, 2, 3, 0,
		0, 1, 2, 0,
		0, 2, 3, 0,
	}
	detailMeshes := []*DtPolyDetail{
		{VertBase: 0, TriBase: 0, VertCount: 0, TriCount: 2},
		{VertBase: 0, TriBase: 2, VertCount: 0, TriCount: 2},
	}

	header := &DtMeshHeader{
		Magic:           DT_NAVMESH_MAGIC,
		Version:         DT_NAVMESH_VERSION,
		X:               tx,
		Y:               ty,
		Layer:           0,
		PolyCount:       2,
		VertCount:       int32(len(verts) / 3),
		MaxLinkCount:    8,
		DetailMeshCount: 2,
		DetailVertCount: 0,
		DetailTriCount:  4,
		BvNodeCount:     0,
		OffMeshConCount: 0,
		WalkableHeight:  2,
		WalkableRadius:  0.5,
		WalkableClimb:   0.5,
		Bmin:            [3]float32{0, 0, 0},
		Bmax:            [3]float32{20, 0, 10},
		BvQuantFactor:   1,
	}

	return &NavMeshData{
		Header:      header,
		NavVerts:    verts,
		NavPolys:    []*DtPoly{poly0, poly1},
		NavDMeshes:  detailMeshes,
		NavDVerts:   nil,
		NavBvtree:   nil,
		NavDTris:    detailTris,
		OffMeshCons: nil,
	}
}

// singlePolyTileData builds a single-tile NavMeshData with one quad
// polygon covering [0,10]x[0,10] and no neighbours, for tests that only
// need one reachable polygon.
func singlePolyTileData(tx, ty int32) *NavMeshData {
	verts := []float32{
		0, 0, 0,
		10, 0, 0,
		10, 0, 10,
		0, 0, 10,
	}
	poly := &DtPoly{
		Verts:     [DT_VERTS_PER_POLYGON]uint16{0, 1, 2, 3},
		Flags:     1,
		VertCount: 4,
	}
	detailTris := []uint8{
		0, 1, 2, 0,
		0, 2, 3, 0,
	}
	detailMeshes := []*DtPolyDetail{
		{VertBase: 0, TriBase: 0, VertCount: 0, TriCount: 2},
	}
	header := &DtMeshHeader{
		Magic:           DT_NAVMESH_MAGIC,
		Version:         DT_NAVMESH_VERSION,
		X:               tx,
		Y:               ty,
		Layer:           0,
		PolyCount:       1,
		VertCount:       int32(len(verts) / 3),
		MaxLinkCount:    4,
		DetailMeshCount: 1,
		DetailTriCount:  2,
		WalkableHeight:  2,
		WalkableRadius:  0.5,
		WalkableClimb:   0.5,
		Bmin:            [3]float32{0, 0, 0},
		Bmax:            [3]float32{10, 0, 10},
		BvQuantFactor:   1,
	}
	return &NavMeshData{
		Header:     header,
		NavVerts:   verts,
		NavPolys:   []*DtPoly{poly},
		NavDMeshes: detailMeshes,
		NavDTris:   detailTris,
	}
}

// borderTilePair builds two single-poly tiles side by side along x, each a
// 10x10 quad, sharing the border at x=10: tileA (grid 0,0) covers
// x:[0,10], tileB (grid 1,0) covers x:[10,20]. tileA's east edge carries
// DT_EXT_LINK|0 (side 0, +x); tileB's west edge carries DT_EXT_LINK|4
// (side 4, -x) so AddTile's cross-tile link pass connects them.
func borderTilePair() (a, b *NavMeshData) {
	aVerts := []float32{
		0, 0, 0,
		10, 0, 0,
		10, 0, 10,
		0, 0, 10,
	}
	aPoly := &DtPoly{
		Verts:     [DT_VERTS_PER_POLYGON]uint16{0, 1, 2, 3},
		Neis:      [DT_VERTS_PER_POLYGON]uint16{0, uint16(DT_EXT_LINK) | 0, 0, 0},
		Flags:     1,
		VertCount: 4,
	}
	aHeader := &DtMeshHeader{
		Magic: DT_NAVMESH_MAGIC, Version: DT_NAVMESH_VERSION,
		X: 0, Y: 0, PolyCount: 1, VertCount: int32(len(aVerts) / 3),
		MaxLinkCount: 4, DetailMeshCount: 1, DetailTriCount: 2,
		WalkableHeight: 2, WalkableRadius: 0.5, WalkableClimb: 0.5,
		Bmin: [3]float32{0, 0, 0}, Bmax: [3]float32{10, 0, 10}, BvQuantFactor: 1,
	}
	a = &NavMeshData{
		Header:     aHeader,
		NavVerts:   aVerts,
		NavPolys:   []*DtPoly{aPoly},
		NavDMeshes: []*DtPolyDetail{{VertBase: 0, TriBase: 0, VertCount: 0, TriCount: 2}},
		NavDTris:   []uint8{0, 1, 2, 0, 0, 2, 3, 0},
	}

	bVerts := []float32{
		10, 0, 0,
		20, 0, 0,
		20, 0, 10,
		10, 0, 10,
	}
	bPoly := &DtPoly{
		Verts:     [DT_VERTS_PER_POLYGON]uint16{0, 1, 2, 3},
		Neis:      [DT_VERTS_PER_POLYGON]uint16{0, 0, 0, uint16(DT_EXT_LINK) | 4},
		Flags:     1,
		VertCount: 4,
	}
	bHeader := &DtMeshHeader{
		Magic: DT_NAVMESH_MAGIC, Version: DT_NAVMESH_VERSION,
		X: 1, Y: 0, PolyCount: 1, VertCount: int32(len(bVerts) / 3),
		MaxLinkCount: 4, DetailMeshCount: 1, DetailTriCount: 2,
		WalkableHeight: 2, WalkableRadius: 0.5, WalkableClimb: 0.5,
		Bmin: [3]float32{10, 0, 0}, Bmax: [3]float32{20, 0, 10}, BvQuantFactor: 1,
	}
	b = &NavMeshData{
		Header:     bHeader,
		NavVerts:   bVerts,
		NavPolys:   []*DtPoly{bPoly},
		NavDMeshes: []*DtPolyDetail{{VertBase: 0, TriBase: 0, VertCount: 0, TriCount: 2}},
		NavDTris:   []uint8{0, 1, 2, 0, 0, 2, 3, 0},
	}
	return a, b
}

// buildMeshFromData round-trips data through ToBin/FromBin, then installs
// it into a freshly initialized multi-tile DtNavMesh.
func buildMeshFromData(maxTiles int32, datas ...*NavMeshData) (*DtNavMesh, error) {
	params := &NavMeshParams{
		Orig:       [3]float32{0, 0, 0},
		TileWidth:  20,
		TileHeight: 10,
		MaxTiles:   maxTiles,
		MaxPolys:   1 << 16,
	}
	m, status := NewDtNavMeshWithParams(params)
	if status.DtStatusFailed() {
		return nil, StatusToError(status)
	}
	mesh := m.(*DtNavMesh)

	for _, d := range datas {
		encoded := d.ToBin()
		decoded := &NavMeshData{}
		if err := decoded.FromBin(encoded); err != nil {
			return nil, err
		}
		if _, status := mesh.AddTile(decoded, DT_TILE_FREE_DATA, 0); status.DtStatusFailed() {
			return nil, StatusToError(status)
		}
	}
	return mesh, nil
}
