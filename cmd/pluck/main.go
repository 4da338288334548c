package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/vskvj3/deques/internal/persistence"
	"github.com/vskvj3/deques/internal/synth"
	"github.com/vskvj3/deques/internal/utils"
)

func main() {
	configPtr := flag.String("config", utils.DefaultConfigPath(), "Path of the YAML config file")
	melodyPtr := flag.String("melody", "", "Keys to play, overriding the config melody")
	outPtr := flag.String("out", "", "Sample log to append to")
	seedPtr := flag.Int64("seed", time.Now().UnixNano(), "Seed for pluck noise")
	flag.Parse()

	config, err := utils.LoadConfig(*configPtr)
	if err != nil {
		utils.NewLogger("", true).Error("Error loading configuration: " + err.Error())
		return
	}
	logger := utils.NewLogger(config.LogFile, config.Debug)

	melody := config.Melody
	if *melodyPtr != "" {
		melody = *melodyPtr
	}
	output := config.Output
	if *outPtr != "" {
		output = *outPtr
	}

	player, err := synth.NewPlayer(config.SampleRate, config.Decay, rand.New(rand.NewSource(*seedPtr)), logger)
	if err != nil {
		logger.Error("Failed to tune strings: " + err.Error())
		return
	}

	logger.Info(fmt.Sprintf("Rendering %q at %d Hz, %d ms per note", melody, config.SampleRate, config.NoteMs))
	samples := player.Render(melody, config.SamplesPerNote())

	if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
		logger.Error("Failed to create output directory: " + err.Error())
		return
	}
	sampleLog, err := persistence.OpenSampleLog(output)
	if err != nil {
		logger.Error("Failed to open sample log: " + err.Error())
		return
	}
	defer sampleLog.Close()

	frames := 0
	for start := 0; start < len(samples); start += config.FrameSize {
		end := min(start+config.FrameSize, len(samples))
		if err := sampleLog.Append(samples[start:end]); err != nil {
			logger.Error("Failed to write frame: " + err.Error())
			return
		}
		frames++
	}
	logger.Info(fmt.Sprintf("Wrote %d samples in %d frames to %s", len(samples), frames, output))
}
