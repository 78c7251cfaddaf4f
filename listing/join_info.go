package listing

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/hupe1980/skycat/blobstore"
	"github.com/hupe1980/skycat/healpix"
	"github.com/hupe1980/skycat/pixeltree"
)

// Join list column names.
const (
	PrimaryOrderColumn = "primary_Norder"
	PrimaryPixelColumn = "primary_Npix"
	JoinOrderColumn    = "join_Norder"
	JoinPixelColumn    = "join_Npix"
)

// JoinRow pairs a tile of the primary catalog with a tile of the joined
// catalog whose data must be read together.
type JoinRow struct {
	Primary healpix.Tile
	Join    healpix.Tile
}

// JoinRowsFromAlignment keeps the rows where both sides are present, one per
// aligned tile, in aligned-tree order.
func JoinRowsFromAlignment(al *pixeltree.Alignment) []JoinRow {
	rows := make([]JoinRow, 0, len(al.Rows))
	for _, r := range al.Rows {
		l, lok := r.Left.Get()
		j, rok := r.Right.Get()
		if lok && rok {
			rows = append(rows, JoinRow{Primary: l, Join: j})
		}
	}
	return rows
}

// ParseJoinInfo reads a join list.
func ParseJoinInfo(r io.Reader) ([]JoinRow, error) {
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
	cols, err := columns(header, PrimaryOrderColumn, PrimaryPixelColumn, JoinOrderColumn, JoinPixelColumn)
	if err != nil {
		return nil, err
	}

	var rows []JoinRow
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedListing, err)
		}
		p, err := parseTile(rec, cols[0], cols[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		j, err := parseTile(rec, cols[2], cols[3])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rows = append(rows, JoinRow{Primary: p, Join: j})
	}
	return rows, nil
}

// FormatJoinInfo writes join rows with a header.
func FormatJoinInfo(w io.Writer, rows []JoinRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{PrimaryOrderColumn, PrimaryPixelColumn, JoinOrderColumn, JoinPixelColumn}); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write([]string{
			strconv.Itoa(r.Primary.Order),
			strconv.FormatInt(r.Primary.Pixel, 10),
			strconv.Itoa(r.Join.Order),
			strconv.FormatInt(r.Join.Pixel, 10),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadJoinInfo loads partition_join_info.csv from a store.
func ReadJoinInfo(ctx context.Context, store blobstore.BlobStore) ([]JoinRow, error) {
	data, err := blobstore.ReadAll(ctx, store, PartitionJoinInfoFile)
	if err != nil {
		return nil, err
	}
	return ParseJoinInfo(bytes.NewReader(data))
}

// WriteJoinInfo stores partition_join_info.csv.
func WriteJoinInfo(ctx context.Context, store blobstore.BlobStore, rows []JoinRow) error {
	var buf bytes.Buffer
	if err := FormatJoinInfo(&buf, rows); err != nil {
		return err
	}
	return store.Put(ctx, PartitionJoinInfoFile, buf.Bytes())
}
