// Package render writes the outcome of a shape check for people (text) or
// for other programs (yaml).
package render

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"shapecheck/src/physics/geometry"
)

type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatYAML:
		return f, nil
	default:
		return "", formatError(f)
	}
}

// Report is the result of checking one shape against one query point.
// Inside and Diagonal are only set when the shape is valid.
type Report struct {
	Kind     geometry.Kind    `yaml:"-"`
	Shape    string           `yaml:"shape"`
	Points   []geometry.Point `yaml:"points,flow"`
	Query    geometry.Point   `yaml:"query,flow"`
	Valid    bool             `yaml:"valid"`
	Inside   *bool            `yaml:"inside,omitempty"`
	Diagonal *float64         `yaml:"diagonal,omitempty"`
}

// NewReport records an invalid shape. Use WithResults for a valid one.
func NewReport(s geometry.Shape, query geometry.Point) Report {
	return Report{
		Kind:   s.Kind(),
		Shape:  s.Kind().String(),
		Points: s.Points(),
		Query:  query,
	}
}

// WithResults marks the report valid and records the containment and
// diagonal results.
func (r Report) WithResults(inside bool, diagonal float64) Report {
	r.Valid = true
	r.Inside = &inside
	r.Diagonal = &diagonal
	return r
}

// Write renders r to w in the given format.
func Write(w io.Writer, f Format, r Report) (err error) {
	defer CheckError(&err)

	switch f {
	case FormatText:
		return Text(w, r)
	case FormatYAML:
		return YAML(w, r)
	default:
		return formatError(f)
	}
}

// Text writes the human readable status lines.
func Text(w io.Writer, r Report) error {
	name, label := "rectangle", "ABC"
	if r.Kind == geometry.KindCuboid {
		name, label = "cuboid", "ABCD"
	}
	if !r.Valid {
		_, err := fmt.Fprintf(w, "The points do not form a %s.\n", name)
		return err
	}
	not := ""
	if r.Inside == nil || !*r.Inside {
		not = "not "
	}
	if _, err := fmt.Fprintf(w, "Point X is %sinside %s %s.\n", not, name, label); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Diagonal length: %g\n", *r.Diagonal)
	return err
}

// YAML writes r as a single YAML document.
func YAML(w io.Writer, r Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}
