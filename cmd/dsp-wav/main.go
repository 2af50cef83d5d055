// Command dsp-wav runs a WAV file through the amp processing chain: noise
// gate, low cut, peaking EQ and an optional cabinet impulse response.
//
// Usage:
//
//	dsp-wav input.wav output.wav
//	dsp-wav --ir cab.wav --threshold -50 input.wav output.wav
//	dsp-wav --no-gate --peak-freq 800 --peak-gain 4 input.wav output.wav
//	dsp-wav --fast input.wav output.wav   # float32 processing
//	dsp-wav --config settings.json input.wav output.wav
//
// Flags may also be read from a JSON file whose keys are the long flag names.
package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	audiodsp "github.com/tphakala/go-audio-dsp"
	"github.com/tphakala/go-audio-dsp/impulse"
	"github.com/tphakala/go-audio-dsp/noisegate"
)

// CLI defines the command-line interface.
type CLI struct {
	Input  string `arg:"" name:"input" help:"Input WAV file" type:"existingfile"`
	Output string `arg:"" name:"output" help:"Output WAV file" type:"path"`

	IR     string `help:"Cabinet impulse response (mono PCM WAV)" type:"existingfile"`
	NoGate bool   `help:"Disable the noise gate" name:"no-gate"`

	Threshold float64 `help:"Gate threshold in dB" default:"-60"`
	Ratio     float64 `help:"Gate ratio (dB of reduction per dB below threshold)" default:"1.5"`
	Open      float64 `help:"Gate open time in seconds" default:"0.002"`
	Hold      float64 `help:"Gate hold time in seconds" default:"0.05"`
	Close     float64 `help:"Gate close time in seconds" default:"0.05"`

	LowCut   float64 `help:"Low cut frequency in Hz (0 disables)" name:"low-cut" default:"20"`
	PeakFreq float64 `help:"Peaking EQ center frequency in Hz" name:"peak-freq" default:"1000"`
	PeakGain float64 `help:"Peaking EQ gain in dB" name:"peak-gain" default:"0"`
	PeakQ    float64 `help:"Peaking EQ quality factor" name:"peak-q" default:"0.707"`

	Block   int             `help:"Block size in frames" default:"512"`
	Fast    bool            `help:"Use float32 precision"`
	Verbose bool            `help:"Verbose output" short:"v"`
	Config  kong.ConfigFlag `help:"Load flags from a JSON file" short:"c"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("dsp-wav"),
		kong.Description("Process a WAV file through noise gate, EQ and cabinet impulse response"),
		kong.UsageOnError(),
		kong.Configuration(kong.JSON),
	)

	if cli.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	ctx.FatalIfErrorf(run(&cli))
}

func run(cli *CLI) error {
	if cli.Block < 1 || cli.Block > maxBlockSize {
		return fmt.Errorf("block size %d out of range [1, %d]", cli.Block, maxBlockSize)
	}

	params := cli.ampParams()

	logrus.WithFields(logrus.Fields{
		"function":  "run",
		"input":     cli.Input,
		"output":    cli.Output,
		"ir":        cli.IR,
		"gate":      params.GateEnabled,
		"block":     cli.Block,
		"precision": precisionName(cli.Fast),
	}).Debug("Starting")

	start := time.Now()
	var stats *processStats
	var err error
	if cli.Fast {
		stats, err = processWAV[float32](cli.Input, cli.Output, cli.IR, params, cli.Block)
	} else {
		stats, err = processWAV[float64](cli.Input, cli.Output, cli.IR, params, cli.Block)
	}
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("Processed %s -> %s\n", filepath.Base(cli.Input), filepath.Base(cli.Output))
	fmt.Printf("  %d Hz, %d channels, %d-bit, %d stages\n",
		stats.sampleRate, stats.channels, stats.bitDepth, stats.stages)
	fmt.Printf("  %d frames in %d blocks\n", stats.frames, stats.blocks)
	if elapsed > 0 && stats.sampleRate > 0 {
		fmt.Printf("  Duration: %.2fs, Speed: %.1fx realtime\n",
			elapsed.Seconds(),
			float64(stats.frames)/float64(stats.sampleRate)/elapsed.Seconds())
	}

	return nil
}

// ampParams maps the flags onto chain parameters.
func (cli *CLI) ampParams() audiodsp.AmpParams {
	return audiodsp.AmpParams{
		GateEnabled: !cli.NoGate,
		Gate: noisegate.TriggerParams{
			Time:      noisegate.DefaultTime,
			Threshold: cli.Threshold,
			Ratio:     cli.Ratio,
			OpenTime:  cli.Open,
			HoldTime:  cli.Hold,
			CloseTime: cli.Close,
		},
		LowCut:        cli.LowCut,
		PeakFrequency: cli.PeakFreq,
		PeakGainDB:    cli.PeakGain,
		PeakQuality:   cli.PeakQ,
	}
}

func precisionName(fast bool) string {
	if fast {
		return "float32"
	}
	return "float64"
}

type processStats struct {
	sampleRate int
	channels   int
	bitDepth   int
	stages     int
	frames     int64
	blocks     int64
}

// Float constraint for generic processing.
type Float interface {
	float32 | float64
}

func processWAV[F Float](inputPath, outputPath, irPath string, params audiodsp.AmpParams, blockSize int) (stats *processStats, err error) {
	// 1. Decode input
	input, err := readWAVInput(inputPath)
	if err != nil {
		return nil, err
	}

	// 2. Load the impulse response, if any
	var ir impulse.RawAudio
	if irPath != "" {
		var result impulse.LoadResult
		ir, result = impulse.LoadWAV(irPath)
		if !result.OK() {
			return nil, fmt.Errorf("failed to load impulse response %s: %s", irPath, result)
		}
	}

	// 3. Build the chain
	chain, err := audiodsp.NewAmpChain[F](float64(input.rate), ir, params)
	if err != nil {
		return nil, err
	}

	// 4. Create output writer
	output, err := createWAVOutput(outputPath, input.rate, input.bitDepth, input.channels)
	if err != nil {
		return nil, err
	}
	// Close output, capturing close errors on success path (important for WAV header updates)
	defer func() {
		if closeErr := output.Close(); err == nil {
			err = closeErr
		}
	}()

	// 5. Process block by block
	buffers := newBlockBuffers[F](input.channels, input.bitDepth, blockSize)
	progress := newProgressTracker(input.frames)
	stats = &processStats{
		sampleRate: input.rate,
		channels:   input.channels,
		bitDepth:   input.bitDepth,
		stages:     chain.Len(),
	}

	for pos := 0; pos < input.frames; pos += blockSize {
		n := min(blockSize, input.frames-pos)
		block := buffers.load(input.data[pos*input.channels:(pos+n)*input.channels], n)

		out, err := chain.Process(block, input.channels, n)
		if err != nil {
			return nil, fmt.Errorf("block at frame %d: %w", pos, err)
		}

		written := interleaveInto(out, buffers.outputIntBuf, buffers.maxVal)
		if err := output.WriteSamples(buffers.outputIntBuf[:written]); err != nil {
			return nil, fmt.Errorf("failed to write output: %w", err)
		}

		stats.frames += int64(n)
		stats.blocks++
		progress.reportIfNeeded(pos + n)
	}

	return stats, nil
}
