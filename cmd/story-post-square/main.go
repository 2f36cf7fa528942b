package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/farzanhk9/Story-Post-Square/internal/batch"
	"github.com/farzanhk9/Story-Post-Square/internal/config"
	"github.com/farzanhk9/Story-Post-Square/internal/infra"
)

func main() {
	opts := config.Defaults()

	flag.StringVar(&opts.InputDir, "input", "", "folder with source images (required)")
	flag.StringVar(&opts.OutputDir, "output", "", "folder processed images are written to (required)")
	flag.StringVar(&opts.Preset, "preset", "", "canvas preset: story, post or square")
	flag.IntVar(&opts.Longest, "longest", 0, "resize so the longest side equals this many pixels instead of using a preset")
	flag.IntVar(&opts.SafePad, "safe-pad", opts.SafePad, "inset padding in pixels inside the canvas")
	flag.StringVar(&opts.BGColor, "bgcolor", opts.BGColor, "letterbox fill as a 3- or 6-digit hex color")
	flag.StringVar(&opts.LogoPath, "logo", "", "overlay image stamped onto every output")
	flag.StringVar(&opts.LogoPos, "logo-pos", opts.LogoPos, "logo corner: top-left, top-right, bottom-left or bottom-right")
	flag.Float64Var(&opts.LogoScale, "logo-scale", opts.LogoScale, "logo width as a fraction of the output width")
	flag.IntVar(&opts.LogoMargin, "logo-margin", opts.LogoMargin, "logo distance from the edges in pixels")
	flag.IntVar(&opts.Quality, "quality", opts.Quality, "jpeg quality from 1 to 100")
	flag.BoolVar(&opts.Optimize, "optimize", false, "spend extra effort compressing the output")
	flag.BoolVar(&opts.StripEXIF, "strip-exif", false, "drop camera metadata from the output")
	flag.StringVar(&opts.Ext, "ext", opts.Ext, "output format: jpg or png")
	flag.StringVar(&opts.Rename, "rename", "", "output name template, e.g. brand_{index:03d} or {name}")
	flag.StringVar(&opts.ZipName, "zip", "", "also bundle the outputs into this archive inside the output folder")
	flag.BoolVar(&opts.Verbose, "verbose", false, "enable debug logging")
	flag.Parse()

	if err := opts.Validate(); err != nil {
		exitWithError(err)
	}

	logger := infra.NewLogger(opts.Verbose).With().Str("run_id", uuid.NewString()).Logger()

	driver, err := batch.New(opts, logger)
	if err != nil {
		exitWithError(err)
	}
	report, err := driver.Run()
	if err != nil {
		exitWithError(err)
	}

	fmt.Printf("Processed %d of %d files into %s\n", report.Succeeded, report.Attempted, opts.OutputDir)
	if report.Failed > 0 {
		fmt.Printf("%d files failed, see log for details\n", report.Failed)
	}
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
