// Package parse loads the external inputs of a sampling run: the fixed-column
// molecular structure file and the line-oriented options file. Both parsers
// are lenient; lines they do not recognize are skipped, not errors.
package parse

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/san-kum/fieldtopo/internal/field"
	"github.com/san-kum/fieldtopo/internal/geom"
)

// PDB column offsets of the coordinate and charge fields, each 8 wide. The
// charge rides in the occupancy column, as the structure preparation tools
// write it.
const (
	colX      = 31
	colY      = 39
	colZ      = 47
	colCharge = 55
	colWidth  = 8
)

// ReadPDB extracts one point charge per ATOM/HETATM record. Records too short
// or with unparseable numeric fields are dropped silently.
func ReadPDB(r io.Reader) ([]field.PointCharge, error) {
	var charges []field.PointCharge

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if !strings.HasPrefix(line, "ATOM") && !strings.HasPrefix(line, "HETATM") {
			continue
		}
		if len(line) < colCharge+colWidth {
			continue
		}

		x, errX := column(line, colX)
		y, errY := column(line, colY)
		z, errZ := column(line, colZ)
		q, errQ := column(line, colCharge)
		if errX != nil || errY != nil || errZ != nil || errQ != nil {
			continue
		}

		charges = append(charges, field.PointCharge{
			Coordinate: geom.Vec3{X: x, Y: y, Z: z},
			Charge:     q,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return charges, nil
}

func column(line string, offset int) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(line[offset:offset+colWidth]), 64)
}
