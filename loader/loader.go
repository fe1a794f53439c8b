// Package loader defines the external collaborator the query engine
// consumes but never implements: something that hands back the raw bytes
// for a map's NavMesh params and for a given tile, keyed by map id and tile
// coordinates. Resource naming, file layout, and caching are the caller's
// concern -- this package only names the contract and the two decode
// helpers a concrete TileLoader needs to turn its bytes into the types
// detour operates on.
package loader

import (
	"context"

	"navquery/detour"
)

// TileLoader supplies tile and parameter bytes for a map. Implementations
// own resource naming (file paths, object store keys, ...); this package
// only consumes what they return.
type TileLoader interface {
	// LoadParams returns the 28-byte NavMesh params blob for mapID.
	LoadParams(ctx context.Context, mapID string) ([28]byte, error)
	// LoadTile returns the raw tile blob (envelope + payload) for the tile
	// at (tx, ty) within mapID.
	LoadTile(ctx context.Context, mapID string, tx, ty int32) ([]byte, error)
}

// LoadNavMeshParams fetches and decodes a map's NavMesh params via l.
func LoadNavMeshParams(ctx context.Context, l TileLoader, mapID string) (*detour.NavMeshParams, error) {
	raw, err := l.LoadParams(ctx, mapID)
	if err != nil {
		return nil, err
	}
	return detour.DecodeNavMeshParams(raw)
}

// LoadTile fetches and decodes a single tile via l, returning data ready to
// pass to DtNavMesh.AddTile.
func LoadTile(ctx context.Context, l TileLoader, mapID string, tx, ty int32) (*detour.NavMeshData, error) {
	raw, err := l.LoadTile(ctx, mapID, tx, ty)
	if err != nil {
		return nil, err
	}
	return detour.DecodeTile(raw)
}
