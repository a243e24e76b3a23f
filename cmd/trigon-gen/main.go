// Command trigon-gen generates random simple polygons, runs them through the
// triangulation pipeline, and prints the resulting face and stroke meshes to stdout as
// JSON. The first polygon is centered in the box given by the --minx/--maxx/--miny/--maxy
// flags and sized to fit it; each further polygon is shifted right by 2.5 radii so the
// polygons do not overlap, which places them to the right of --maxx. It exists to
// exercise the pipeline end to end against varied input without requiring a caller to
// hand-author test geometry.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand/v2"
	"os"

	"github.com/go-trigon/trigon"
	"github.com/go-trigon/trigon/options"
	"github.com/go-trigon/trigon/point"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:      "trigon-gen",
		Usage:     "Generates random polygons and triangulates them, printing the result as JSON",
		UsageText: "trigon-gen --shapes <value> --sides <value> --maxx <value> --minx <value> --maxy <value> --miny <value>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "shapes",
				Usage:    "The number of polygons to generate",
				Value:    3,
				Aliases:  []string{"n"},
				OnlyOnce: true,
				Validator: func(v int64) error {
					if v <= 0 {
						return fmt.Errorf("shapes must be greater than zero")
					}
					return nil
				},
			},
			&cli.IntFlag{
				Name:     "sides",
				Usage:    "The number of vertices per generated polygon",
				Value:    5,
				OnlyOnce: true,
				Validator: func(v int64) error {
					if v < 3 {
						return fmt.Errorf("sides must be at least 3")
					}
					return nil
				},
			},
			&cli.FloatFlag{Name: "maxx", Usage: "The maximum X value of the plane", OnlyOnce: true, Value: 100},
			&cli.FloatFlag{Name: "minx", Usage: "The minimum X value of the plane", OnlyOnce: true, Value: 0},
			&cli.FloatFlag{Name: "maxy", Usage: "The maximum Y value of the plane", OnlyOnce: true, Value: 100},
			&cli.FloatFlag{Name: "miny", Usage: "The minimum Y value of the plane", OnlyOnce: true, Value: 0},
			&cli.FloatFlag{
				Name:     "miter-limit",
				Usage:    "Miter limit applied to stroke joins before falling back to a bevel",
				OnlyOnce: true,
				Value:    float64(options.DefaultMiterLimit),
			},
		},
		HideVersion: true,
		Action:      run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	minX, maxX := cmd.Float("minx"), cmd.Float("maxx")
	minY, maxY := cmd.Float("miny"), cmd.Float("maxy")
	shapes := cmd.Int("shapes")
	sides := cmd.Int("sides")

	if minX >= maxX {
		return fmt.Errorf("maxx must be greater than minx")
	}
	if minY >= maxY {
		return fmt.Errorf("maxy must be greater than miny")
	}

	cx := float32((minX + maxX) / 2)
	cy := float32((minY + maxY) / 2)
	maxRadius := float32(math.Min(maxX-minX, maxY-minY)) / 2

	polygons := make([][]point.Point, shapes)
	for i := range polygons {
		offsetX := cx + float32(i)*maxRadius*2.5
		polygons[i] = randomStarPolygon(offsetX, cy, maxRadius, int(sides))
	}

	face, strokes, err := trigon.TriangulatePolygonsWithEdge(
		ctx,
		polygons,
		options.WithMiterLimit(float32(cmd.Float("miter-limit"))),
	)
	if err != nil {
		return err
	}

	b, err := json.Marshal(struct {
		Polygons [][]point.Point       `json:"polygons"`
		Face     trigon.FaceResult     `json:"face"`
		Strokes  []trigon.StrokeResult `json:"strokes"`
	}{Polygons: polygons, Face: face, Strokes: strokes})
	if err != nil {
		return err
	}
	fmt.Print(string(b))
	return nil
}

// randomStarPolygon generates a simple (non-self-intersecting) polygon by sampling n
// points at strictly increasing angles around (cx, cy), each at a random radius up to
// maxRadius. Strictly increasing angles guarantee the boundary never crosses itself,
// while the per-vertex radius jitter keeps the shape non-convex ("star-shaped") so
// generated input exercises the sweep's Split and Merge events, not just Start/End.
func randomStarPolygon(cx, cy, maxRadius float32, n int) []point.Point {
	pts := make([]point.Point, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		radius := maxRadius * (0.4 + 0.6*rand.Float32())
		pts[i] = point.New(
			cx+radius*float32(math.Cos(angle)),
			cy+radius*float32(math.Sin(angle)),
		)
	}
	return pts
}
