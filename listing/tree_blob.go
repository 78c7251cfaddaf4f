package listing

import (
	"context"
	"encoding/binary"
	"fmt"
	"hash/crc32"

	"github.com/hupe1980/skycat/blobstore"
	"github.com/hupe1980/skycat/healpix"
	"github.com/hupe1980/skycat/pixeltree"
)

const (
	treeMagic   = 0x54504B53 // "SKPT"
	treeVersion = 1

	treeHeaderSize = 24
)

// EncodeTree serializes a tree.
//
// Format (little endian):
//
//	Magic (4 bytes)
//	Version (2 bytes)
//	Compression (1 byte)
//	Order (1 byte)
//	Count (4 bytes) - number of intervals
//	RawLength (4 bytes) - uncompressed body length
//	Checksum (4 bytes) - CRC32 of the uncompressed body
//	BodyLength (4 bytes)
//	Body: per interval, uvarint(start - previous end), uvarint(length)
func EncodeTree(tree *pixeltree.Tree, c Compression) ([]byte, error) {
	raw := make([]byte, 0, tree.Len()*3)
	var prevEnd int64
	for i := 0; i < tree.Len(); i++ {
		iv := tree.Interval(i)
		raw = binary.AppendUvarint(raw, uint64(iv.Start-prevEnd))
		raw = binary.AppendUvarint(raw, uint64(iv.Len()))
		prevEnd = iv.End
	}

	body, used, err := compress(raw, c)
	if err != nil {
		return nil, err
	}

	out := make([]byte, treeHeaderSize, treeHeaderSize+len(body))
	binary.LittleEndian.PutUint32(out[0:4], treeMagic)
	binary.LittleEndian.PutUint16(out[4:6], treeVersion)
	out[6] = byte(used)
	out[7] = byte(tree.Order())
	binary.LittleEndian.PutUint32(out[8:12], uint32(tree.Len()))
	binary.LittleEndian.PutUint32(out[12:16], uint32(len(raw)))
	binary.LittleEndian.PutUint32(out[16:20], crc32.ChecksumIEEE(raw))
	binary.LittleEndian.PutUint32(out[20:24], uint32(len(body)))
	return append(out, body...), nil
}

// DecodeTree parses a blob written by EncodeTree. The decoded intervals go
// through pixeltree.FromIntervals, so a corrupted body that still passes the
// checksum cannot produce a malformed tree.
func DecodeTree(data []byte) (*pixeltree.Tree, error) {
	if len(data) < treeHeaderSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the header", ErrInvalidBlob, len(data))
	}
	if magic := binary.LittleEndian.Uint32(data[0:4]); magic != treeMagic {
		return nil, fmt.Errorf("%w: invalid magic %x", ErrInvalidBlob, magic)
	}
	if version := binary.LittleEndian.Uint16(data[4:6]); version != treeVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}
	c := Compression(data[6])
	order := int(data[7])
	count := int(binary.LittleEndian.Uint32(data[8:12]))
	rawLen := int(binary.LittleEndian.Uint32(data[12:16]))
	checksum := binary.LittleEndian.Uint32(data[16:20])
	bodyLen := int(binary.LittleEndian.Uint32(data[20:24]))

	if err := healpix.ValidateOrder(order); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBlob, err)
	}
	if len(data)-treeHeaderSize != bodyLen {
		return nil, fmt.Errorf("%w: body is %d bytes, header says %d", ErrInvalidBlob, len(data)-treeHeaderSize, bodyLen)
	}
	// Every interval takes two uvarints: at least two bytes, at most
	// 2*MaxVarintLen64. The header is untrusted, so rawLen is bounded before
	// anything is allocated.
	if count > rawLen/2 {
		return nil, fmt.Errorf("%w: %d intervals cannot fit in %d bytes", ErrInvalidBlob, count, rawLen)
	}
	if maxRaw := count * 2 * binary.MaxVarintLen64; rawLen > maxRaw {
		return nil, fmt.Errorf("%w: %d bytes is too long for %d intervals", ErrInvalidBlob, rawLen, count)
	}

	raw, err := decompress(data[treeHeaderSize:], c, rawLen)
	if err != nil {
		return nil, err
	}
	if crc32.ChecksumIEEE(raw) != checksum {
		return nil, ErrChecksumMismatch
	}

	intervals := make([]healpix.Interval, count)
	var pos int
	var prevEnd int64
	for i := range intervals {
		gap, n := binary.Uvarint(raw[pos:])
		if n <= 0 {
			return nil, fmt.Errorf("%w: interval %d: bad start", ErrInvalidBlob, i)
		}
		pos += n
		length, n := binary.Uvarint(raw[pos:])
		if n <= 0 {
			return nil, fmt.Errorf("%w: interval %d: bad length", ErrInvalidBlob, i)
		}
		pos += n

		start := prevEnd + int64(gap)
		intervals[i] = healpix.Interval{Start: start, End: start + int64(length)}
		prevEnd = intervals[i].End
	}
	if pos != len(raw) {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrInvalidBlob, len(raw)-pos)
	}
	return pixeltree.FromIntervals(order, intervals)
}

// ReadTree loads partition_tree.bin from a store.
func ReadTree(ctx context.Context, store blobstore.BlobStore) (*pixeltree.Tree, error) {
	data, err := blobstore.ReadAll(ctx, store, PartitionTreeFile)
	if err != nil {
		return nil, err
	}
	return DecodeTree(data)
}

// WriteTree stores partition_tree.bin.
func WriteTree(ctx context.Context, store blobstore.BlobStore, tree *pixeltree.Tree, c Compression) error {
	data, err := EncodeTree(tree, c)
	if err != nil {
		return err
	}
	return store.Put(ctx, PartitionTreeFile, data)
}
