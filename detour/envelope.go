package detour

import (
	"fmt"

	"navquery/common/rw"
)

// TileEnvelope is the 20-byte wrapper a TileLoader's raw blob carries ahead
// of the mesh header: a format tag, the decoder/format versions that blob
// was produced with, the payload size, and a flags word (liquid data, etc).
type TileEnvelope struct {
	Magic          uint32
	DecoderVersion uint32
	FormatVersion  uint32
	PayloadSize    uint32
	Flags          uint32
}

const (
	mmapMagic          = uint32('M')<<24 | uint32('M')<<16 | uint32('A')<<8 | uint32('P')
	mmapFormatVersion  = 8
	tileEnvelopeSize   = 20
	navMeshParamsSize  = 28
)

// DecodeTileEnvelope parses the 20-byte envelope at the front of a tile blob
// and returns it along with the remaining payload bytes (mesh header and
// sections). It rejects bad magic, a format version this decoder doesn't
// understand, and a blob shorter than the envelope declares -- without ever
// panicking.
func DecodeTileEnvelope(data []byte) (*TileEnvelope, []byte, error) {
	if len(data) < tileEnvelopeSize {
		return nil, nil, fmt.Errorf("%w: blob shorter than the %d-byte envelope", ErrBadFormat, tileEnvelopeSize)
	}

	r := rw.NewNavMeshDataBinReader(data[:tileEnvelopeSize])
	env := &TileEnvelope{
		Magic:          r.ReadUInt32(),
		DecoderVersion: r.ReadUInt32(),
		FormatVersion:  r.ReadUInt32(),
		PayloadSize:    r.ReadUInt32(),
		Flags:          r.ReadUInt32(),
	}

	if env.Magic != mmapMagic {
		return nil, nil, ErrBadFormat
	}
	if env.FormatVersion != mmapFormatVersion {
		return nil, nil, ErrVersionMismatch
	}

	payload := data[tileEnvelopeSize:]
	if uint32(len(payload)) < env.PayloadSize {
		return nil, nil, fmt.Errorf("%w: payload shorter than envelope declares (have %d, want %d)",
			ErrBadFormat, len(payload), env.PayloadSize)
	}

	return env, payload[:env.PayloadSize], nil
}

// DecodeTile parses a full tile blob: envelope, mesh header, and every
// section in the fixed 4-byte-aligned order. It is the composition a
// TileLoader's caller reaches for -- DecodeTileEnvelope followed by
// NavMeshData.FromBin -- exposed as one call since the two always go
// together outside of tests that want to inspect the envelope itself.
func DecodeTile(data []byte) (*NavMeshData, error) {
	_, payload, err := DecodeTileEnvelope(data)
	if err != nil {
		return nil, err
	}
	tile := &NavMeshData{}
	if err := tile.FromBin(payload); err != nil {
		return nil, err
	}
	return tile, nil
}

// DecodeNavMeshParams parses the 28-byte NavMesh params blob a TileLoader's
// LoadParams returns.
func DecodeNavMeshParams(data [navMeshParamsSize]byte) (*NavMeshParams, error) {
	r := rw.NewNavMeshDataBinReader(data[:])
	params := &NavMeshParams{}
	params.FromBin(r)
	return params, nil
}
