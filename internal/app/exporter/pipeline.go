// Package exporter runs the edict2 -> edict2.js conversion: index the
// dictionary, sort it by reading and write the sorted script.
package exporter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/peetscott/edict2-browser/internal/config"
	"github.com/peetscott/edict2-browser/internal/domain"
	"github.com/peetscott/edict2-browser/internal/edict"
)

// Result summarises a completed run.
type Result struct {
	RunID        uuid.UUID
	Version      string
	Indexed      int
	WithReading  int
	Written      int
	Skipped      int
	KanaCoverage int // index initials that have at least one entry
	Duration     time.Duration
}

// Pipeline converts one dictionary file into one script file.
type Pipeline struct {
	log *slog.Logger
	cfg config.ExportConfig
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, cfg config.ExportConfig) *Pipeline {
	return &Pipeline{log: log, cfg: cfg}
}

// Run indexes and sorts the source, then emits it to the output path.
// The output file is replaced only when every step succeeds.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	result := Result{RunID: uuid.New()}
	log := p.log.With(slog.String("run_id", result.RunID.String()))

	// Phase 1: index.
	phaseStart := time.Now()
	log.Info("starting phase", slog.String("phase", "index"), slog.String("source", p.cfg.SourcePath))

	idx, err := p.index()
	if err != nil {
		return result, err
	}
	result.Version = idx.Version
	result.Indexed = idx.Stats.Lines
	result.WithReading = idx.Stats.WithReading

	log.Info("phase completed",
		slog.String("phase", "index"),
		slog.Int("records", idx.Stats.Lines),
		slog.Int("with_reading", idx.Stats.WithReading),
		slog.Duration("duration", time.Since(phaseStart)),
	)

	// Phase 2: sort.
	phaseStart = time.Now()
	edict.Sort(idx.Records)
	log.Info("phase completed", slog.String("phase", "sort"), slog.Duration("duration", time.Since(phaseStart)))

	if err := ctx.Err(); err != nil {
		return result, err
	}

	// Phase 3: emit.
	phaseStart = time.Now()
	log.Info("starting phase",
		slog.String("phase", "emit"),
		slog.String("output", p.cfg.OutputPath),
		slog.Bool("subset", p.cfg.Subset),
	)

	stats, err := p.emit(ctx, idx)
	if err != nil {
		return result, err
	}
	result.Written = stats.Written
	result.Skipped = stats.Skipped

	for _, pos := range edict.KanaIndex(stats.Emitted) {
		if pos >= 0 {
			result.KanaCoverage++
		}
	}

	log.Info("phase completed",
		slog.String("phase", "emit"),
		slog.Int("written", stats.Written),
		slog.Int("skipped", stats.Skipped),
		slog.Int("kana_coverage", result.KanaCoverage),
		slog.Duration("duration", time.Since(phaseStart)),
	)

	result.Duration = time.Since(start)
	return result, nil
}

func (p *Pipeline) index() (edict.Index, error) {
	src, err := os.Open(p.cfg.SourcePath)
	if err != nil {
		return edict.Index{}, fmt.Errorf("%w: %w", domain.ErrInputNotFound, domain.NewIOError("open", p.cfg.SourcePath, err))
	}
	defer src.Close()

	idx, err := edict.BuildIndex(src)
	if err != nil {
		if errors.Is(err, domain.ErrMalformedLine) {
			return edict.Index{}, fmt.Errorf("index %s: %w", p.cfg.SourcePath, err)
		}
		return edict.Index{}, domain.NewIOError("read", p.cfg.SourcePath, err)
	}
	return idx, nil
}

func (p *Pipeline) emit(ctx context.Context, idx edict.Index) (edict.EmitStats, error) {
	src, err := os.Open(p.cfg.SourcePath)
	if err != nil {
		return edict.EmitStats{}, domain.NewIOError("reopen", p.cfg.SourcePath, err)
	}
	defer src.Close()

	out, err := createOutput(p.cfg.OutputPath, p.cfg.BufferSize)
	if err != nil {
		return edict.EmitStats{}, err
	}
	defer out.Abort()

	emitter := edict.NewEmitter(src, edict.EmitOptions{Subset: p.cfg.Subset})
	stats, err := emitter.Emit(ctx, out, idx.Version, idx.Records)
	if err != nil {
		return stats, fmt.Errorf("emit %s: %w", p.cfg.OutputPath, err)
	}

	if err := out.Commit(); err != nil {
		return stats, err
	}
	return stats, nil
}
