// Package batch drives a whole run: enumerate the input folder, push every
// file through the pipeline, name and persist the results.
package batch

import (
	"fmt"
	"path/filepath"

	"github.com/farzanhk9/Story-Post-Square/internal/config"
	"github.com/farzanhk9/Story-Post-Square/internal/domain"
	"github.com/farzanhk9/Story-Post-Square/internal/infra"
	"github.com/farzanhk9/Story-Post-Square/internal/pipeline"
	"github.com/farzanhk9/Story-Post-Square/internal/storage"
	"github.com/farzanhk9/Story-Post-Square/pkg/zip"
)

// Driver walks one input folder through the pipeline. A failed file is
// logged and skipped; the batch always runs to the end.
type Driver struct {
	opts   config.Options
	pipe   *pipeline.Pipeline
	logger infra.Logger
}

// New assembles a Driver from validated options.
func New(opts config.Options, logger infra.Logger) (*Driver, error) {
	mode, err := opts.ResolveMode()
	if err != nil {
		return nil, err
	}
	bg, err := config.ParseHexColor(opts.BGColor)
	if err != nil {
		return nil, fmt.Errorf("--bgcolor: %w", err)
	}

	transform := pipeline.Transform{
		Mode:       mode,
		Longest:    opts.Longest,
		SafePad:    opts.SafePad,
		Background: bg,
	}
	if mode == domain.ModeCanvas {
		spec, ok := domain.PresetByName(opts.Preset)
		if !ok {
			return nil, fmt.Errorf("unknown preset %q", opts.Preset)
		}
		transform.Canvas = spec
	}

	return &Driver{
		opts:   opts,
		pipe:   &pipeline.Pipeline{Geometry: transform},
		logger: logger,
	}, nil
}

// Run processes every supported file under the input folder and reports the
// outcome. The output folder is only created once the input folder is known
// to hold work.
func (d *Driver) Run() (domain.BatchReport, error) {
	var report domain.BatchReport

	if d.opts.ModeConflict() {
		d.logger.Warn().Int("longest", d.opts.Longest).Str("preset", d.opts.Preset).
			Msg("batch: both modes requested, longest-side wins")
	}

	files, err := ListInputs(d.opts.InputDir)
	if err != nil {
		return report, err
	}

	store, err := storage.NewFileStore(d.opts.OutputDir)
	if err != nil {
		return report, err
	}

	d.pipe.Overlay = d.loadOverlay()
	namer := NewNamer(d.opts.Rename, d.opts.Ext)

	d.logger.Info().Int("files", len(files)).Str("input", d.opts.InputDir).Msg("batch: started")

	var bundle []zip.Entry
	for i, path := range files {
		report.Attempted++

		name, fellBack := namer.Next(i+1, path)
		if fellBack {
			d.logger.Warn().Str("pattern", d.opts.Rename).Str("fallback", name).
				Msg("batch: rename pattern failed, using sequential name")
		}

		spec := domain.OutputSpec{
			Basename:  name,
			Format:    domain.OutputFormat(d.opts.Ext),
			Quality:   d.opts.Quality,
			Optimize:  d.opts.Optimize,
			StripEXIF: d.opts.StripEXIF,
		}

		data, err := d.pipe.Process(path, spec)
		if err != nil {
			report.Failed++
			d.logger.Error().Err(err).Str("file", filepath.Base(path)).Msg("batch: processing failed")
			continue
		}
		if _, err := store.Write(name, data); err != nil {
			report.Failed++
			d.logger.Error().Err(err).Str("file", filepath.Base(path)).Msg("batch: write failed")
			continue
		}

		report.Succeeded++
		if d.opts.ZipName != "" {
			bundle = append(bundle, zip.Entry{Filename: name, Data: data})
		}
		d.logger.Info().Str("file", filepath.Base(path)).Str("output", name).Msg("batch: processed")
	}

	d.writeBundle(store, bundle)

	d.logger.Info().Int("attempted", report.Attempted).Int("succeeded", report.Succeeded).
		Int("failed", report.Failed).Msg("batch: finished")
	return report, nil
}

// writeBundle archives the run's outputs next to them when --zip was given.
// A bundle failure is logged but never fails a batch that already wrote its
// files.
func (d *Driver) writeBundle(store *storage.FileStore, bundle []zip.Entry) {
	if d.opts.ZipName == "" || len(bundle) == 0 {
		return
	}
	data, err := zip.Archive(bundle)
	if err != nil {
		d.logger.Error().Err(err).Msg("batch: bundle failed")
		return
	}
	if _, err := store.Write(d.opts.ZipName, data); err != nil {
		d.logger.Error().Err(err).Str("zip", d.opts.ZipName).Msg("batch: bundle write failed")
		return
	}
	d.logger.Info().Str("zip", d.opts.ZipName).Int("entries", len(bundle)).Msg("batch: bundle written")
}

// loadOverlay resolves the optional logo once for the whole run.
func (d *Driver) loadOverlay() pipeline.Overlay {
	overlay := pipeline.Overlay{
		Position: domain.LogoPosition(d.opts.LogoPos),
		Scale:    d.opts.LogoScale,
		Margin:   d.opts.LogoMargin,
	}
	if d.opts.LogoPath == "" {
		return overlay
	}

	logo, err := pipeline.LoadLogo(d.opts.LogoPath)
	if err != nil {
		d.logger.Warn().Err(err).Str("logo", d.opts.LogoPath).Msg("batch: logo unusable, continuing without overlay")
		return overlay
	}
	if logo == nil {
		d.logger.Debug().Str("logo", d.opts.LogoPath).Msg("batch: logo file missing, continuing without overlay")
		return overlay
	}

	overlay.Logo = logo
	return overlay
}
