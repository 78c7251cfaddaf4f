package listing

import (
	"fmt"
	"path"
	"regexp"
	"strconv"

	"github.com/hupe1980/skycat/healpix"
)

// Well-known file names below a catalog root.
const (
	CatalogInfoFile       = "catalog_info.json"
	PartitionInfoFile     = "partition_info.csv"
	PartitionJoinInfoFile = "partition_join_info.csv"
	PartitionTreeFile     = "partition_tree.bin"
	ProvenanceInfoFile    = "provenance_info.json"
)

// Hive partition keys.
const (
	OrderKey     = "Norder"
	DirectoryKey = "Dir"
	PixelKey     = "Npix"
)

// PixelDirectory returns base/Norder=<order>/Dir=<directory number>.
func PixelDirectory(base string, t healpix.Tile) string {
	return path.Join(base,
		fmt.Sprintf("%s=%d", OrderKey, t.Order),
		fmt.Sprintf("%s=%d", DirectoryKey, t.DirectoryNumber()),
	)
}

// PixelFile returns the data file of a tile:
// base/Norder=<order>/Dir=<directory number>/Npix=<pixel>.parquet.
func PixelFile(base string, t healpix.Tile) string {
	return path.Join(PixelDirectory(base, t), fmt.Sprintf("%s=%d.parquet", PixelKey, t.Pixel))
}

// PixelFiles returns the data files of many tiles, in input order.
func PixelFiles(base string, tiles []healpix.Tile) []string {
	out := make([]string, len(tiles))
	for i, t := range tiles {
		out[i] = PixelFile(base, t)
	}
	return out
}

var tilePathRE = regexp.MustCompile(`Norder=(\d+).*Npix=(\d+)`)

// TileFromPath recovers the tile from a path written by PixelFile.
func TileFromPath(p string) (healpix.Tile, error) {
	m := tilePathRE.FindStringSubmatch(p)
	if m == nil {
		return healpix.Tile{}, fmt.Errorf("%w: %q", ErrNoTileInPath, p)
	}
	order, err := strconv.Atoi(m[1])
	if err != nil {
		return healpix.Tile{}, fmt.Errorf("%w: %q: %v", ErrNoTileInPath, p, err)
	}
	pixel, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return healpix.Tile{}, fmt.Errorf("%w: %q: %v", ErrNoTileInPath, p, err)
	}
	t := healpix.Tile{Order: order, Pixel: pixel}
	if err := t.Validate(); err != nil {
		return healpix.Tile{}, err
	}
	return t, nil
}
