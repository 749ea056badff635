// Command imgfilter sharpens, degrades and restores grayscale images.
//
// Usage:
//
//	imgfilter <command> [flags]
//
// Commands:
//
//	usm       unsharp masking with spatial or frequency-domain smoothing
//	degrade   Gaussian blur plus white noise at a given SNR
//	restore   inverse or Wiener restoration for a Gaussian blur
//	stats     intensity statistics of an image
//	spectrum  centered log-magnitude spectrum, or a blur kernel's response
//	backends  list FFT backends, convolution strategies and restoration methods
//
// Examples:
//
//	imgfilter usm -in lena.png -out sharp.png -strategy spatial -size 5 -scale 1.5
//	imgfilter degrade -in lena.png -out blurred.png -dev 1.5 -snr 20
//	imgfilter restore -in blurred.png -out restored.png -method wiener -dev 1.5 -snr 20 -ref lena.png
//	imgfilter spectrum -in lena.png -out lena-fft.png -window hann
//
// The defaults for -backend and -workers come from IMGFILTER_BACKEND and
// IMGFILTER_WORKERS, which may also be set in a .env file in the working
// directory.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"
)

var errUsage = errors.New("usage: imgfilter <usm|degrade|restore|stats|spectrum|backends> [flags]")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.SetFlags(0)
		log.SetPrefix("imgfilter: ")
		log.Fatal(err)
	}
}

type env struct {
	stdout io.Writer
	stderr io.Writer
	log    *log.Logger
	cfg    config
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	lookup, err := envLookup(envFile)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(lookup)
	if err != nil {
		return err
	}

	e := &env{
		stdout: stdout,
		stderr: stderr,
		log:    log.New(stderr, "imgfilter: ", 0),
		cfg:    cfg,
	}

	switch args[0] {
	case "usm":
		return e.usm(args[1:])
	case "degrade":
		return e.degrade(args[1:])
	case "restore":
		return e.restore(args[1:])
	case "stats":
		return e.stats(args[1:])
	case "spectrum":
		return e.spectrum(args[1:])
	case "backends":
		return e.backends()
	case "help", "-h", "-help", "--help":
		fmt.Fprintln(stdout, errUsage)
		return nil
	default:
		return fmt.Errorf("unknown command %q\n%w", args[0], errUsage)
	}
}

// done logs the pixel count and elapsed time of a finished command.
func (e *env) done(cmd string, pixels int, start time.Time) {
	elapsed := durafmt.Parse(time.Since(start)).LimitFirstN(2)
	e.log.Printf("%s: %s pixels in %s", cmd, humanize.Comma(int64(pixels)), elapsed)
}
