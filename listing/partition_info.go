package listing

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hupe1980/skycat/blobstore"
	"github.com/hupe1980/skycat/healpix"
)

// ParsePartitionInfo reads a partition list with a Norder,Dir,Npix header.
// The Dir column is optional and, when present, ignored: it is derived from Npix.
func ParsePartitionInfo(r io.Reader) ([]healpix.Tile, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty file", ErrMalformedListing)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedListing, err)
	}
	cols, err := columns(header, OrderKey, PixelKey)
	if err != nil {
		return nil, err
	}

	var tiles []healpix.Tile
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedListing, err)
		}
		t, err := parseTile(rec, cols[0], cols[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		tiles = append(tiles, t)
	}
	return tiles, nil
}

// FormatPartitionInfo writes tiles as Norder,Dir,Npix rows, in the given order.
func FormatPartitionInfo(w io.Writer, tiles []healpix.Tile) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{OrderKey, DirectoryKey, PixelKey}); err != nil {
		return err
	}
	for _, t := range tiles {
		if err := cw.Write([]string{
			strconv.Itoa(t.Order),
			strconv.FormatInt(t.DirectoryNumber(), 10),
			strconv.FormatInt(t.Pixel, 10),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadPartitionInfo loads partition_info.csv from a store.
func ReadPartitionInfo(ctx context.Context, store blobstore.BlobStore) ([]healpix.Tile, error) {
	data, err := blobstore.ReadAll(ctx, store, PartitionInfoFile)
	if err != nil {
		return nil, err
	}
	return ParsePartitionInfo(bytes.NewReader(data))
}

// WritePartitionInfo stores partition_info.csv.
func WritePartitionInfo(ctx context.Context, store blobstore.BlobStore, tiles []healpix.Tile) error {
	var buf bytes.Buffer
	if err := FormatPartitionInfo(&buf, tiles); err != nil {
		return err
	}
	return store.Put(ctx, PartitionInfoFile, buf.Bytes())
}

// columns returns the index of every wanted header name.
func columns(header []string, names ...string) ([]int, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		pos[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	idx := make([]int, len(names))
	for i, n := range names {
		p, ok := pos[n]
		if !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrMalformedListing, n)
		}
		idx[i] = p
	}
	return idx, nil
}

func parseTile(rec []string, orderCol, pixelCol int) (healpix.Tile, error) {
	if orderCol >= len(rec) || pixelCol >= len(rec) {
		return healpix.Tile{}, fmt.Errorf("%w: short record %v", ErrMalformedListing, rec)
	}
	order, err := strconv.Atoi(strings.TrimSpace(rec[orderCol]))
	if err != nil {
		return healpix.Tile{}, fmt.Errorf("%w: order %q", ErrMalformedListing, rec[orderCol])
	}
	pixel, err := strconv.ParseInt(strings.TrimSpace(rec[pixelCol]), 10, 64)
	if err != nil {
		return healpix.Tile{}, fmt.Errorf("%w: pixel %q", ErrMalformedListing, rec[pixelCol])
	}
	t := healpix.Tile{Order: order, Pixel: pixel}
	if err := t.Validate(); err != nil {
		return healpix.Tile{}, err
	}
	return t, nil
}
