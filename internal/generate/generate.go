package generate

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"

	"flatland/internal/domain"
	"flatland/internal/flatlander"
	"flatland/internal/world"
)

// Config holds generation parameters.
type Config struct {
	Seed    int64        // Random seed (0 = random)
	Angle   domain.Angle // Light angle written to the header
	Count   int          // Number of inhabitants
	Spacing int          // Maximum gap between neighbours
}

// DefaultConfig returns a small, reproducible document.
func DefaultConfig() Config {
	return Config{
		Seed:    42,
		Angle:   45,
		Count:   100,
		Spacing: 20,
	}
}

var errBadConfig = errors.New("generate: invalid config")

// Validate reports whether cfg describes a document that flatland accepts.
func (cfg Config) Validate() error {
	if cfg.Angle < world.MinAngle || cfg.Angle > world.MaxAngle {
		return fmt.Errorf("%w: angle %d not in [%d, %d]", errBadConfig, cfg.Angle, world.MinAngle, world.MaxAngle)
	}
	if cfg.Count < int(world.MinCapacity) || cfg.Count > int(world.MaxCapacity) {
		return fmt.Errorf("%w: count %d not in [%d, %d]", errBadConfig, cfg.Count, world.MinCapacity, world.MaxCapacity)
	}
	if cfg.Spacing < 1 {
		return fmt.Errorf("%w: spacing must be at least 1", errBadConfig)
	}
	return nil
}

// Records returns cfg.Count records with non-decreasing positions.
func Records(cfg Config) ([]domain.Record, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	rng := rand.New(rand.NewSource(seed))
	noise := opensimplex.NewNormalized(seed)

	span := float64(flatlander.MaxHeight - flatlander.MinHeight)
	out := make([]domain.Record, cfg.Count)
	pos := int64(flatlander.MinPosition)
	for i := range out {
		n := octaveNoise(noise, float64(i), 3, 0.05, 0.5)
		h := flatlander.MinHeight + uint32(n*span+0.5)
		out[i] = domain.Record{
			Position: int32(pos),
			Height:   min(max(h, flatlander.MinHeight), flatlander.MaxHeight),
		}
		pos = min(pos+int64(rng.Intn(cfg.Spacing))+1, int64(flatlander.MaxPosition))
	}
	return out, nil
}

// Write writes a complete document for cfg to w.
func Write(w io.Writer, cfg Config) error {
	recs, err := Records(cfg)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", cfg.Angle, len(recs))
	for _, r := range recs {
		fmt.Fprintf(bw, "%d %d\n", r.Position, r.Height)
	}
	return bw.Flush()
}

// octaveNoise layers several frequencies of 1-D noise, normalized to [0, 1].
func octaveNoise(noise opensimplex.Noise, x float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, 0) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}
