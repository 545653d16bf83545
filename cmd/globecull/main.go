// SPDX-License-Identifier: MIT

// Command globecull selects the tiles of a geographic pyramid that a camera above the
// WGS84 globe would draw, and prints them as JSON.
package main

import (
	"math"
	"os"
	"reflect"
	"time"

	"github.com/aukilabs/go-tooling/pkg/cli"
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/katalvlaran/globekit/cull"
	"github.com/katalvlaran/globekit/geo"
	"github.com/katalvlaran/globekit/geom"
	"github.com/katalvlaran/globekit/matrix"
	"github.com/katalvlaran/globekit/tile"
	"github.com/segmentio/encoding/json"
)

// Keeps the config field names readable to the cli package under obfuscating builds.
var _ = reflect.TypeOf(config{})

type config struct {
	LogLevel         string  `cli:""        env:"GLOBECULL_LOG_LEVEL"         help:"Log level (debug|info|warning|error)."`
	LogIndent        bool    `cli:""        env:"GLOBECULL_LOG_INDENT"        help:"Indent logs and output."`
	Latitude         float64 `cli:""        env:"GLOBECULL_LATITUDE"          help:"Eye latitude in degrees."`
	Longitude        float64 `cli:""        env:"GLOBECULL_LONGITUDE"         help:"Eye longitude in degrees."`
	Altitude         float64 `cli:""        env:"GLOBECULL_ALTITUDE"          help:"Eye altitude above the ellipsoid in metres."`
	TargetLatitude   float64 `cli:""        env:"GLOBECULL_TARGET_LATITUDE"   help:"Latitude of the looked-at surface point in degrees."`
	TargetLongitude  float64 `cli:""        env:"GLOBECULL_TARGET_LONGITUDE"  help:"Longitude of the looked-at surface point in degrees."`
	FieldOfView      float64 `cli:""        env:"GLOBECULL_FIELD_OF_VIEW"     help:"Vertical field of view in degrees."`
	ViewportWidth    int     `cli:""        env:"GLOBECULL_VIEWPORT_WIDTH"    help:"Viewport width in pixels."`
	ViewportHeight   int     `cli:""        env:"GLOBECULL_VIEWPORT_HEIGHT"   help:"Viewport height in pixels."`
	TileSize         int     `cli:""        env:"GLOBECULL_TILE_SIZE"         help:"Tile width and height in pixels."`
	TargetResolution float64 `cli:""        env:"GLOBECULL_TARGET_RESOLUTION" help:"Finest pyramid resolution in degrees per pixel."`
	DetailFactor     float64 `cli:",hidden" env:"GLOBECULL_DETAIL_FACTOR"     help:"Pixels per texel before a tile is refined."`
	Pyramid          bool    `cli:""        env:"-"                           help:"Include the pyramid levels in the output."`
	Help             bool    `cli:""        env:"-"                           help:"Show help."`
}

type output struct {
	Eye     mgl64.Vec3        `json:"eye"`
	Pyramid []tile.TileMatrix `json:"pyramid,omitempty"`
	Tiles   []cull.Tile       `json:"tiles"`
	Stats   stats             `json:"stats"`
}

type stats struct {
	SphereTests   int    `json:"sphere_tests"`
	SphereRejects int    `json:"sphere_rejects"`
	BoxTests      int    `json:"box_tests"`
	BoxRejects    int    `json:"box_rejects"`
	CachedBoxes   int    `json:"cached_boxes"`
	SelectTime    string `json:"select_time"`
}

func main() {
	conf := config{
		LogLevel:         logs.InfoLevel.String(),
		Altitude:         1e7,
		FieldOfView:      45,
		ViewportWidth:    1280,
		ViewportHeight:   720,
		TileSize:         256,
		TargetResolution: 1e-3,
		DetailFactor:     cull.DefaultDetailFactor,
	}

	cli.Register().
		Help("Prints the globe tiles visible from a camera.").
		Options(&conf)
	cli.Load()

	logs.SetLevel(logs.ParseLevel(conf.LogLevel))
	logs.Encoder = json.Marshal
	if conf.LogIndent {
		logs.Encoder = func(v any) ([]byte, error) {
			return json.MarshalIndent(v, "", "  ")
		}
	}

	errors.Encoder = json.Marshal

	if err := validateConfig(conf); err != nil {
		logs.Fatal(err)
	}

	if err := run(conf); err != nil {
		logs.Fatal(err)
	}
}

func validateConfig(conf config) error {
	switch {
	case conf.FieldOfView <= 0 || conf.FieldOfView >= 180:
		return errors.New("field of view out of range").WithTag("field_of_view", conf.FieldOfView)
	case conf.ViewportWidth <= 0 || conf.ViewportHeight <= 0:
		return errors.New("empty viewport").
			WithTag("width", conf.ViewportWidth).
			WithTag("height", conf.ViewportHeight)
	case conf.TileSize <= 0:
		return errors.New("tile size must be positive").WithTag("tile_size", conf.TileSize)
	case conf.Altitude <= 0:
		return errors.New("eye must be above the surface").WithTag("altitude", conf.Altitude)
	case math.Abs(conf.Latitude) > 90 || math.Abs(conf.TargetLatitude) > 90:
		return errors.New("latitude out of range").
			WithTag("latitude", conf.Latitude).
			WithTag("target_latitude", conf.TargetLatitude)
	}

	return nil
}

func run(conf config) error {
	globe := geo.WGS84()

	set, err := tile.FromTilePyramid(geo.FullSphere(), 2, 1, conf.TileSize, conf.TileSize, conf.TargetResolution)
	if err != nil {
		return errors.New("error building tile pyramid").
			WithTag("target_resolution", conf.TargetResolution).
			Wrap(err)
	}
	logs.WithTag("levels", set.Len()).
		WithTag("finest_resolution", set.At(set.Len()-1).Resolution()).
		Debug("tile pyramid built")

	selector, err := cull.NewSelector(set, globe, cull.WithDetailFactor(conf.DetailFactor))
	if err != nil {
		return errors.New("error creating selector").Wrap(err)
	}

	frustum, eye, err := camera(conf, globe)
	if err != nil {
		return errors.New("error setting up camera").Wrap(err)
	}

	tiles := selector.Select(cull.Frame{
		Frustum:        frustum,
		EyePoint:       eye,
		PixelSizeScale: cull.PixelSizeScale(conf.FieldOfView, conf.ViewportHeight),
	})

	st := selector.Stats()
	out := output{
		Eye:   eye,
		Tiles: tiles,
		Stats: stats{
			SphereTests:   st.SphereTests,
			SphereRejects: st.SphereRejects,
			BoxTests:      st.BoxTests,
			BoxRejects:    st.BoxRejects,
			CachedBoxes:   selector.CachedBoxes(),
			SelectTime:    st.SelectTime.String(),
		},
	}
	if conf.Pyramid {
		out.Pyramid = set.Matrices()
	}

	start := time.Now()
	enc := json.NewEncoder(os.Stdout)
	if conf.LogIndent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(out); err != nil {
		return errors.New("error writing tiles").Wrap(err)
	}
	st.AddDrawTime(time.Since(start))

	drawTime, draws := st.DrawStats()
	logs.WithTag("tiles", len(tiles)).
		WithTag("draws", draws).
		WithTag("draw_time", drawTime.String()).
		Info("tiles written")

	return nil
}

// camera builds the frustum of a perspective camera at the configured eye, looking
// at the target surface point with north up.
func camera(conf config, globe geo.Ellipsoid) (*geom.Frustum, mgl64.Vec3, error) {
	eye := globe.GeographicToCartesian(conf.Latitude, conf.Longitude, conf.Altitude)
	target := globe.GeographicToCartesian(conf.TargetLatitude, conf.TargetLongitude, 0)

	local := globe.GeographicToCartesianTransform(conf.Latitude, conf.Longitude, conf.Altitude)
	up := local.Column(1)
	if dir := target.Sub(eye).Normalize(); math.Abs(dir.Dot(up)) > 0.999 {
		up = local.Column(0)
	}

	// near clips at a fraction of the altitude, far reaches past the globe's back side
	near := math.Max(1, 0.01*conf.Altitude)
	far := eye.Len() + globe.EquatorialRadius()
	aspect := float64(conf.ViewportWidth) / float64(conf.ViewportHeight)

	projection, err := matrix.Perspective(conf.FieldOfView, aspect, near, far)
	if err != nil {
		return nil, eye, err
	}

	frustum := geom.NewFrustum()
	frustum.SetToModelviewProjection(projection, matrix.LookAt(eye, target, up),
		geom.Viewport{Width: conf.ViewportWidth, Height: conf.ViewportHeight})

	return frustum, eye, nil
}
