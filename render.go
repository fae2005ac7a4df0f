package main

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"os"
	"strings"

	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/output"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/urfave/cli"
)

var renderFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "scene, s",
		Value: "single-sphere",
		Usage: "built-in scene name (see the scenes command)",
	},
	cli.StringFlag{
		Name:  "scene-file",
		Usage: "JSON scene file, takes precedence over --scene",
	},
	cli.IntFlag{
		Name:  "width",
		Usage: "image width in pixels",
	},
	cli.Float64Flag{
		Name:  "aspect",
		Usage: "aspect ratio, width / height",
	},
	cli.Float64Flag{
		Name:  "vfov",
		Usage: "vertical field of view in degrees",
	},
	cli.IntFlag{
		Name:  "spp",
		Usage: "samples per pixel",
	},
	cli.IntFlag{
		Name:  "depth",
		Usage: "maximum bounces per path",
	},
	cli.Int64Flag{
		Name:  "seed",
		Usage: "random seed",
	},
	cli.Float64Flag{
		Name:  "defocus-angle",
		Usage: "aperture cone angle in degrees, 0 disables depth of field",
	},
	cli.Float64Flag{
		Name:  "focus-dist",
		Usage: "distance to the plane of perfect focus",
	},
	cli.StringFlag{
		Name:  "mode",
		Value: "path",
		Usage: "integrator: path or normals",
	},
	cli.StringFlag{
		Name:  "out, o",
		Value: "-",
		Usage: "output file, - for stdout",
	},
	cli.StringFlag{
		Name:  "format",
		Usage: "ppm, png, bmp or tiff (default: from the --out extension)",
	},
	cli.StringFlag{
		Name:  "preview",
		Usage: "also write a downscaled preview image to this file",
	},
	cli.UintFlag{
		Name:  "preview-width",
		Value: 160,
		Usage: "preview width in pixels",
	},
	cli.StringFlag{
		Name:   "s3-bucket",
		Usage:  "upload the rendered image to this bucket",
		EnvVar: "S3_BUCKET",
	},
	cli.StringFlag{
		Name:  "s3-key",
		Usage: "object key for the upload (default: scene name and format)",
	},
	cli.StringFlag{
		Name:   "s3-endpoint",
		Usage:  "endpoint of an S3 compatible store",
		EnvVar: "S3_ENDPOINT",
	},
	cli.StringFlag{
		Name:   "s3-region",
		Value:  "us-east-1",
		Usage:  "bucket region",
		EnvVar: "S3_REGION",
	},
}

// Render a single image.
func renderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := createScene(ctx.String("scene"), ctx.String("scene-file"))
	if err != nil {
		return err
	}

	integ, err := createIntegrator(ctx.String("mode"))
	if err != nil {
		return err
	}

	rt, err := renderer.NewRaytracer(sc, integ, renderOptions(ctx), log.NewPrinter(logger))
	if err != nil {
		return err
	}

	outPath := ctx.String("out")
	format := output.FormatFromPath(outPath)
	if ctx.IsSet("format") {
		if format, err = output.ParseFormat(ctx.String("format")); err != nil {
			return err
		}
	}

	out, err := output.Create(outPath)
	if err != nil {
		return err
	}

	// PPM streams straight to the output; everything else is encoded from
	// the collected image once rendering finishes.
	img := output.NewImageWriter()
	sinks := output.MultiWriter{img}
	var ppm *output.PPMWriter
	if format == output.FormatPPM {
		ppm = output.NewPPMWriter(out)
		sinks = append(sinks, ppm)
	}

	progress := renderer.NewLogProgress(logger, rt.Camera().ImageHeight())
	stats, err := rt.Render(sinks, progress)
	if err != nil {
		out.Close()
		return err
	}

	if ppm != nil {
		err = ppm.Flush()
	} else {
		err = output.Encode(out, img.Image(), format)
	}
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	logger.Noticef("render statistics\n%s", stats.Table())

	if preview := ctx.String("preview"); preview != "" {
		if err := writePreview(preview, img.Image(), ctx.Uint("preview-width")); err != nil {
			return err
		}
	}

	if bucket := ctx.String("s3-bucket"); bucket != "" {
		key := ctx.String("s3-key")
		if key == "" {
			key = sc.Name + "." + string(format)
		}
		if err := upload(ctx, bucket, key, img.Image(), format); err != nil {
			return err
		}
	}

	return nil
}

// renderOptions maps the camera and sampling flags to overrides. Unset flags
// stay zero and keep the scene's values.
func renderOptions(ctx *cli.Context) renderer.Options {
	return renderer.Options{
		Camera: geometry.CameraConfig{
			Width:         ctx.Int("width"),
			AspectRatio:   ctx.Float64("aspect"),
			VFov:          ctx.Float64("vfov"),
			DefocusAngle:  defocusOverride(ctx),
			FocusDistance: ctx.Float64("focus-dist"),
		},
		Sampling: scene.SamplingConfig{
			SamplesPerPixel: ctx.Int("spp"),
			MaxDepth:        ctx.Int("depth"),
			Seed:            ctx.Int64("seed"),
		},
	}
}

// defocusOverride turns an explicit --defocus-angle 0 into a negative angle.
// A zero override would keep the scene's aperture, and any angle <= 0 disables
// depth of field.
func defocusOverride(ctx *cli.Context) float64 {
	angle := ctx.Float64("defocus-angle")
	if ctx.IsSet("defocus-angle") && angle == 0 {
		return -1
	}
	return angle
}

func createIntegrator(mode string) (integrator.Integrator, error) {
	switch strings.ToLower(mode) {
	case "path":
		return integrator.NewPathTracingIntegrator(), nil
	case "normals":
		return integrator.NewNormalsIntegrator(), nil
	}
	return nil, fmt.Errorf("unknown render mode %q", mode)
}

func writePreview(path string, img image.Image, width uint) error {
	out, err := output.Create(path)
	if err != nil {
		return err
	}
	err = output.Encode(out, output.Thumbnail(img, width), output.FormatFromPath(path))
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("writing preview %s: %w", path, err)
	}
	logger.Infof("preview written to %s", path)
	return nil
}

func upload(ctx *cli.Context, bucket, key string, img image.Image, format output.Format) error {
	uploader, err := output.NewS3Uploader(output.S3Config{
		Bucket:    bucket,
		Endpoint:  ctx.String("s3-endpoint"),
		Region:    ctx.String("s3-region"),
		AccessKey: os.Getenv("S3_ACCESS_KEY"),
		SecretKey: os.Getenv("S3_SECRET_KEY"),
	})
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := output.Encode(&buf, img, format); err != nil {
		return err
	}
	if err := uploader.Upload(context.Background(), key, buf.Bytes(), format.ContentType()); err != nil {
		return err
	}
	logger.Noticef("uploaded s3://%s/%s (%d bytes)", bucket, key, buf.Len())
	return nil
}
