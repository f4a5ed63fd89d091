package main

import (
	"fmt"
	"image"
	"image/gif"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/codegangsta/cli"

	"github.com/newjordan/dotcanvas"
)

func main() {
	app := cli.NewApp()
	app.Version = "0.1.0"
	app.Name = "dotcanvas"
	app.Usage = "A command-line tool for rendering images as unicode braille symbols."
	app.UsageText = "1) dotcanvas [options] [file|url]\n" +
		/*      */ "   2) dotcanvas [options] < [file]"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "fit,f",
			Usage: "`FIT` = 80,25 renders the image into 80 columns and 25 lines. Defaults to the terminal size.",
		},
		cli.Float64Flag{
			Name:  "gamma,g",
			Usage: "`GAMMA` = 1.0 gives the original image. Valid range is 0.1 to 3.0.",
			Value: 1.0,
		},
		cli.Float64Flag{
			Name:  "brightness,b",
			Usage: "`BRIGHTNESS` = 1.0 gives the original image. 0.0 gives black, 2.0 doubles each channel.",
			Value: 1.0,
		},
		cli.Float64Flag{
			Name:  "contrast,c",
			Usage: "`CONTRAST` = 1.0 gives the original image. 0.0 gives flat gray, 2.0 doubles the spread.",
			Value: 1.0,
		},
		cli.StringFlag{
			Name:  "dither,d",
			Usage: "`ALGORITHM` is one of floyd-steinberg, atkinson, bayer. Uses automatic thresholding when unset.",
		},
		cli.IntFlag{
			Name:  "threshold,t",
			Usage: "`THRESHOLD` = 0..255 is a fixed binarization cutoff instead of the automatic one.",
			Value: -1,
		},
		cli.StringFlag{
			Name:  "color",
			Usage: "`MODE` is one of auto, none, 16, 256, truecolor.",
			Value: "auto",
		},
		cli.BoolFlag{
			Name:  "invert,i",
			Usage: "Inverts the image.",
		},
		cli.BoolFlag{
			Name:  "stretch",
			Usage: "Stretches the image to fill the grid instead of letterboxing.",
		},
		cli.BoolFlag{
			Name:  "play,p",
			Usage: "Animates gifs in the terminal. CTRL-C to quit.",
		},
	}
	app.Action = run
	if err := app.Run(os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cols, lines := fitSize(c, logger)
	opts := renderOptions(c, colorMode(c, logger))

	input := c.Args().First()

	if c.Bool("play") {
		playGIF(input, opts)
		return nil
	}

	src, err := loadImage(input)
	if err != nil {
		return err
	}
	renderer, err := dotcanvas.NewRenderer(cols, lines, opts...)
	if err != nil {
		return err
	}
	grid, err := renderer.Render(src)
	if err != nil {
		return err
	}
	return dotcanvas.NewEncoder(os.Stdout, opts...).EncodeGrid(grid)
}

func playGIF(input string, opts []dotcanvas.Option) {
	var reader io.Reader = os.Stdin
	if input != "" {
		f, err := os.Open(input)
		if err != nil {
			exit(err.Error(), 1)
		}
		defer f.Close()
		reader = f
	}
	giff, err := gif.DecodeAll(reader)
	if err != nil {
		exit(err.Error(), 1)
	}
	if err := dotcanvas.PlayGIF(os.Stdout, giff, opts...); err != nil {
		exit(err.Error(), 1)
	}
}

func loadImage(input string) (image.Image, error) {
	if input == "" {
		return dotcanvas.DecodeImage(os.Stdin)
	}
	return dotcanvas.OpenImage(input)
}

// fitSize resolves the target grid from the fit flag or the terminal,
// reserving one line for the shell prompt as the original tool did.
func fitSize(c *cli.Context, logger *slog.Logger) (cols, lines int) {
	if c.IsSet("fit") {
		parts := strings.Split(c.String("fit"), ",")
		if len(parts) != 2 {
			exit("fit option must be comma separated", 1)
		}
		cols, _ = strconv.Atoi(strings.TrimSpace(parts[0]))
		lines, _ = strconv.Atoi(strings.TrimSpace(parts[1]))
		if cols > 0 && lines > 0 {
			return cols, lines
		}
		exit("fit option must name two positive integers", 1)
	}
	cols, lines, ok := dotcanvas.DetectSize(int(os.Stdout.Fd()))
	if !ok {
		logger.Warn("terminal size detection failed, using default", "cols", cols, "lines", lines)
	}
	return cols, lines - 1
}

func colorMode(c *cli.Context, logger *slog.Logger) dotcanvas.Capability {
	switch mode := c.String("color"); mode {
	case "auto":
		capability := dotcanvas.DetectCapability(os.Getenv)
		if capability == dotcanvas.Monochrome {
			logger.Warn("no color support detected, rendering monochrome")
		}
		return capability
	case "none":
		return dotcanvas.Monochrome
	case "16":
		return dotcanvas.ANSI16
	case "256":
		return dotcanvas.ANSI256
	case "truecolor":
		return dotcanvas.TrueColor
	default:
		exit(fmt.Sprintf("unknown color mode %q", mode), 1)
		return dotcanvas.Monochrome
	}
}

func renderOptions(c *cli.Context, capability dotcanvas.Capability) []dotcanvas.Option {
	opts := []dotcanvas.Option{
		dotcanvas.WithBrightness(c.Float64("brightness")),
		dotcanvas.WithContrast(c.Float64("contrast")),
		dotcanvas.WithGamma(c.Float64("gamma")),
		dotcanvas.WithCapability(capability),
	}
	if c.IsSet("dither") {
		switch alg := c.String("dither"); alg {
		case "floyd-steinberg":
			opts = append(opts, dotcanvas.WithDither(dotcanvas.FloydSteinberg))
		case "atkinson":
			opts = append(opts, dotcanvas.WithDither(dotcanvas.Atkinson))
		case "bayer":
			opts = append(opts, dotcanvas.WithDither(dotcanvas.Bayer4x4))
		default:
			exit(fmt.Sprintf("unknown dither algorithm %q", alg), 1)
		}
	} else if t := c.Int("threshold"); t >= 0 {
		if t > 255 {
			exit("threshold must be 0..255", 1)
		}
		opts = append(opts, dotcanvas.WithThreshold(uint8(t)))
	}
	if c.Bool("invert") {
		opts = append(opts, dotcanvas.WithInvert())
	}
	if c.Bool("stretch") {
		opts = append(opts, dotcanvas.WithStretch())
	}
	return opts
}

func exit(msg string, code int) {
	fmt.Println(msg)
	os.Exit(code)
}
