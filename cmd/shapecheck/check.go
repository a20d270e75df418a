package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shapecheck/src/config"
	"shapecheck/src/input"
	"shapecheck/src/physics/geometry"
	"shapecheck/src/render"
)

func runCheck(cmd *cobra.Command, args []string) error {
	path := cfg.Input
	if len(args) == 1 {
		path = args[0]
	}

	logger.Debug("Reading coordinates", zap.String("path", path))
	points, err := input.ReadFile(path)
	if err != nil {
		return err
	}
	defining, query, err := input.Split(points)
	if err != nil {
		return err
	}
	shape, err := geometry.NewShape(defining)
	if err != nil {
		return err
	}
	logger.Debug("Classified input",
		zap.Stringer("kind", shape.Kind()),
		zap.Int("points", len(points)),
		zap.Stringer("query", query))

	report, err := check(shape, query, cfg)
	if err != nil {
		return err
	}
	f, err := render.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	return render.Write(cmd.OutOrStdout(), f, report)
}

// check validates s and, if it is valid, tests query against it.
func check(s geometry.Shape, query geometry.Point, c *config.Config) (render.Report, error) {
	mode := c.Containment
	report := render.NewReport(s, query)
	if !valid(s, c.Cuboid) {
		logger.Info("Points do not form a shape", zap.Stringer("kind", s.Kind()))
		return report, nil
	}

	inside, err := contains(s, query, mode)
	if err != nil {
		return report, err
	}
	diagonal := s.DiagonalLength()
	logger.Debug("Shape checked",
		zap.Stringer("kind", s.Kind()),
		zap.String("containment", mode),
		zap.Bool("inside", inside),
		zap.Float64("diagonal", diagonal))
	return report.WithResults(inside, diagonal), nil
}

// valid validates s, using the configured form for cuboids.
func valid(s geometry.Shape, form string) bool {
	if cu, ok := s.(*geometry.Cuboid); ok && form == config.CuboidFaceHeight {
		return cu.ValidateFaceHeight()
	}
	return s.Validate()
}

func contains(s geometry.Shape, p geometry.Point, mode string) (bool, error) {
	switch s := s.(type) {
	case *geometry.Rectangle:
		if mode == config.ContainmentBounds {
			return s.IsInsideBounds(p)
		}
		return s.IsInside(p)
	case *geometry.Cuboid:
		if mode == config.ContainmentBounds {
			return s.IsInside(p)
		}
		return s.IsInsideOriented(p)
	}
	return s.IsInside(p)
}
