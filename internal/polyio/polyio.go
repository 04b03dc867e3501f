// Package polyio reads a polygon and a list of query points from text, SVG or
// YAML input.
package polyio

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/polycontain/internal"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Input struct {
	Polygon []internal.Point
	// Query points given alongside the polygon. May be empty.
	Points []internal.Point
}

// Read a file, picking the format from its extension: .svg, .yaml or .yml, and
// plain text for anything else.
func ReadFile(path string) (*Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	var input *Input
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		input, err = ReadSVG(f)
	case ".yaml", ".yml":
		input, err = ReadYAML(f)
	default:
		input, err = ReadText(f)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return input, nil
}

// Text input has one "x y" point per line. The first block of lines is the
// polygon. An optional second block, after a blank line, holds query points.
func ReadText(r io.Reader) (*Input, error) {
	var blocks [][]internal.Point
	var points []internal.Point
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}

		// If it's empty, and we collected any points, this is the end of the block
		if line == "" {
			if len(points) > 0 {
				blocks = append(blocks, points)
				points = nil
			}
			continue
		}

		point, err := parsePoint(strings.Fields(line))
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	// Handle trailing block if any
	if len(points) > 0 {
		blocks = append(blocks, points)
	}

	switch len(blocks) {
	case 0:
		return nil, errors.New("no polygon found")
	case 1:
		return &Input{Polygon: blocks[0]}, nil
	case 2:
		return &Input{Polygon: blocks[0], Points: blocks[1]}, nil
	}
	return nil, errors.Errorf("expected at most 2 blocks of points, got %d", len(blocks))
}

// SVG input uses the points of the first <polygon> element. Any <circle>
// elements are taken as query points. This is not a full svg parser: transforms
// and other shapes are ignored.
func ReadSVG(r io.Reader) (*Input, error) {
	rootEl, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parse svg")
	}

	// Find the first polygon
	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		return nil, errors.New("no polygon element found")
	}
	fields := strings.FieldsFunc(polygons[0].Attributes["points"], func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in polygon points: %d", len(fields))
	}
	input := &Input{Polygon: make([]internal.Point, 0, len(fields)/2)}
	for i := 0; i < len(fields); i += 2 {
		point, err := parsePoint(fields[i : i+2])
		if err != nil {
			return nil, errors.Wrapf(err, "polygon point %d", i/2)
		}
		input.Polygon = append(input.Polygon, point)
	}

	for i, circleEl := range rootEl.FindAll("circle") {
		point, err := parsePoint([]string{circleEl.Attributes["cx"], circleEl.Attributes["cy"]})
		if err != nil {
			return nil, errors.Wrapf(err, "circle %d", i)
		}
		input.Points = append(input.Points, point)
	}
	return input, nil
}

type yamlInput struct {
	Polygon [][]float64 `yaml:"polygon"`
	Points  [][]float64 `yaml:"points"`
}

// YAML input is a mapping with a "polygon" list of [x, y] pairs and an
// optional "points" list of query points.
func ReadYAML(r io.Reader) (*Input, error) {
	var doc yamlInput
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decode yaml")
	}
	if len(doc.Polygon) == 0 {
		return nil, errors.New("no polygon found")
	}

	input := &Input{}
	var err error
	if input.Polygon, err = pairsToPoints(doc.Polygon); err != nil {
		return nil, errors.Wrap(err, "polygon")
	}
	if input.Points, err = pairsToPoints(doc.Points); err != nil {
		return nil, errors.Wrap(err, "points")
	}
	return input, nil
}

func pairsToPoints(pairs [][]float64) ([]internal.Point, error) {
	var points []internal.Point
	for i, pair := range pairs {
		if len(pair) != 2 {
			return nil, errors.Errorf("point %d has %d coordinates", i, len(pair))
		}
		points = append(points, internal.Point{X: pair[0], Y: pair[1]})
	}
	return points, nil
}

// Parse "x,y" or "x y".
func ParsePoint(s string) (internal.Point, error) {
	return parsePoint(strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' '
	}))
}

func parsePoint(parts []string) (internal.Point, error) {
	if len(parts) != 2 {
		return internal.Point{}, errors.Errorf("expected 2 coordinates, got %d", len(parts))
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return internal.Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return internal.Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return internal.Point{X: x, Y: y}, nil
}
