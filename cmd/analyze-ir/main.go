// Command analyze-ir prints the taps, gain and magnitude response of a
// cabinet impulse response as it would be loaded at a given sample rate.
//
// Usage:
//
//	analyze-ir cab.wav
//	analyze-ir --rate 44100 --fft 4096 --bins 32 cab.wav
package main

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
	"github.com/tphakala/simd/cpu"

	"github.com/tphakala/go-audio-dsp/impulse"
	"github.com/tphakala/go-audio-dsp/internal/mathutil"
)

const (
	// Display limits
	maxTapsToShow = 8
	minFFTSize    = 2

	// floorDB is printed for bins with no energy.
	floorDB = -200.0
)

// CLI defines the command-line interface.
type CLI struct {
	IR      string  `arg:"" name:"ir" help:"Impulse response (mono PCM WAV)" type:"existingfile"`
	Rate    float64 `help:"Processing sample rate in Hz" default:"48000"`
	FFT     int     `help:"FFT size for the magnitude response" name:"fft" default:"8192"`
	Bins    int     `help:"Number of response rows to print" default:"24"`
	Verbose bool    `help:"Verbose output" short:"v"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("analyze-ir"),
		kong.Description("Analyze a cabinet impulse response"),
		kong.UsageOnError(),
	)

	if cli.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	ctx.FatalIfErrorf(analyze(os.Stdout, &cli))
}

func analyze(w io.Writer, cli *CLI) error {
	if cli.FFT < minFFTSize {
		return fmt.Errorf("fft size %d must be at least %d", cli.FFT, minFFTSize)
	}
	if cli.Bins < 1 {
		return fmt.Errorf("bins must be positive, got %d", cli.Bins)
	}

	ir := impulse.NewFromFile[float64](cli.IR, cli.Rate)
	if err := ir.Err(); err != nil {
		return fmt.Errorf("%s: %w (%s)", cli.IR, err, ir.LoadResult())
	}

	raw := ir.Data()
	weights := ir.Weights()

	fmt.Fprintln(w, "=== Impulse Response ===")
	fmt.Fprintf(w, "  File:        %s\n", cli.IR)
	fmt.Fprintf(w, "  Source:      %d samples at %.0f Hz\n", len(raw.Samples), raw.SampleRate)
	fmt.Fprintf(w, "  Processing:  %d taps at %.0f Hz\n", len(weights), ir.SampleRate())
	fmt.Fprintf(w, "  Gain:        %.6f (%.2f dB)\n", ir.Gain(), mathutil.AmplitudeToDB(ir.Gain()))
	fmt.Fprintf(w, "  DC gain:     %.6f\n", ir.DCGain())
	fmt.Fprintf(w, "  SIMD:        %s\n\n", cpu.Info())

	// Weights are stored newest-last, so the first taps sit at the end.
	fmt.Fprintln(w, "First taps:")
	for i := range min(maxTapsToShow, len(weights)) {
		fmt.Fprintf(w, "  h[%d] = % .8f\n", i, weights[len(weights)-1-i])
	}

	response := ir.MagnitudeResponse(cli.FFT)
	fmt.Fprintf(w, "\nMagnitude response (%d-point FFT):\n", cli.FFT)
	step := max(1, len(response)/cli.Bins)
	binHz := ir.SampleRate() / float64(cli.FFT)
	for k := 0; k < len(response); k += step {
		fmt.Fprintf(w, "  %8.1f Hz  %7.2f dB\n", float64(k)*binHz, magnitudeDB(response[k]))
	}

	return nil
}

// magnitudeDB converts a linear magnitude to dB, flooring silence.
func magnitudeDB(m float64) float64 {
	if m <= 0 || math.IsNaN(m) {
		return floorDB
	}
	return max(mathutil.AmplitudeToDB(m), floorDB)
}
