package parse

import (
	"bufio"
	"io"
	"math/rand"
	"strconv"
	"strings"

	"github.com/san-kum/fieldtopo/internal/geom"
	"github.com/san-kum/fieldtopo/internal/system"
	"github.com/san-kum/fieldtopo/internal/volume"
)

// ReadOptions parses the keyword-per-line options file:
//
//	center x y z
//	v1 x y z
//	v2 x y z
//	volume box dx dy dz
//	sample n
//
// Unknown or malformed lines are ignored. The generator seeds the region's
// random stream.
func ReadOptions(r io.Reader, rng *rand.Rand) (system.Options, error) {
	opts := system.DefaultOptions()

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "center":
			if v, ok := vec3(fields[1:]); ok {
				opts.Center = v
			}
		case "v1":
			if v, ok := vec3(fields[1:]); ok {
				opts.V1 = v
			}
		case "v2":
			if v, ok := vec3(fields[1:]); ok {
				opts.V2 = v
			}
		case "volume":
			if len(fields) >= 5 && fields[1] == "box" {
				if v, ok := vec3(fields[2:]); ok {
					opts.Region = volume.NewBox(v.X, v.Y, v.Z, rng)
				}
			}
		case "sample":
			if len(fields) >= 2 {
				if n, err := strconv.Atoi(fields[1]); err == nil {
					opts.Samples = n
				}
			}
		}
	}
	if err := sc.Err(); err != nil {
		return opts, err
	}

	return opts, nil
}

func vec3(fields []string) (geom.Vec3, bool) {
	if len(fields) < 3 {
		return geom.Vec3{}, false
	}
	x, errX := strconv.ParseFloat(fields[0], 64)
	y, errY := strconv.ParseFloat(fields[1], 64)
	z, errZ := strconv.ParseFloat(fields[2], 64)
	if errX != nil || errY != nil || errZ != nil {
		return geom.Vec3{}, false
	}
	return geom.Vec3{X: x, Y: y, Z: z}, true
}
