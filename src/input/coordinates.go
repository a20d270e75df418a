// Package input reads shape coordinates: one point per line, coordinates
// separated by commas.
package input

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"shapecheck/src/physics/geometry"
)

var (
	ErrFormat   = errors.New("input: malformed coordinates")
	ErrNotFound = errors.New("input: coordinate file not found")
)

// Parse reads points from r. Blank lines and lines starting with '#' are
// skipped.
func Parse(r io.Reader) ([]geometry.Point, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var points []geometry.Point
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFormat, err)
		}
		line, _ := cr.FieldPos(0)
		p := make(geometry.Point, len(record))
		for i, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %q is not a number", ErrFormat, line, field)
			}
			p[i] = v
		}
		points = append(points, p)
	}
	return points, nil
}

// ReadFile parses the coordinate file at path.
func ReadFile(path string) ([]geometry.Point, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	points, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return points, nil
}

// Split separates the defining points of a shape from the query point on the
// last line. 2D input needs at least four lines, 3D input at least five.
func Split(points []geometry.Point) (defining []geometry.Point, query geometry.Point, err error) {
	if len(points) == 0 {
		return nil, nil, fmt.Errorf("%w: no points", geometry.ErrArity)
	}
	var n int
	switch dim := len(points[0]); {
	case dim == 2 && len(points) > 3:
		n = 3
	case dim == 3 && len(points) > 4:
		n = 4
	default:
		return nil, nil, fmt.Errorf("%w: %d points of dimension %d", geometry.ErrUnknownShape, len(points), dim)
	}
	if err := geometry.CheckDims(len(points[0]), points[:n]...); err != nil {
		return nil, nil, err
	}
	return points[:n], points[len(points)-1], nil
}
