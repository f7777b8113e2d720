package wad

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// ExtractStats summarizes an Extract call.
type ExtractStats struct {
	// Files is the number of lumps written.
	Files int
	// Bytes is the total payload size written.
	Bytes uint64
	// Skipped is the number of lumps whose destination already existed.
	Skipped int
}

// Extract writes every lump of v into destDir, creating it if needed.
//
// Lump i is written as "NNNN_NAME.lmp", where NNNN is i zero-padded to
// four digits and NAME is the display name with characters outside
// [A-Za-z0-9_-] replaced by '_'. Files are written to a temp file and
// renamed into place.
//
// By default, existing files are skipped (use ExtractWithOverwrite to
// overwrite). Without overwrite the temp file is hard-linked into place, so a
// file created concurrently at the destination is kept and counted as skipped.
// An invalid record aborts the extraction.
func Extract(v View, destDir string, opts ...ExtractOption) (ExtractStats, error) {
	cfg := newExtractConfig(opts)

	if destDir == "" {
		return ExtractStats{}, errors.New("extract: destDir is empty")
	}
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return ExtractStats{}, fmt.Errorf("extract: %w", err)
	}

	var files, skipped atomic.Int64
	var written atomic.Uint64

	var g errgroup.Group
	g.SetLimit(cfg.workers)
	for i := range v.Len() {
		g.Go(func() error {
			entry, err := v.entryAt(i)
			if err != nil {
				return err
			}
			dest := filepath.Join(destDir, LumpFileName(i, entry.ID))
			if !cfg.overwrite {
				if _, err := os.Lstat(dest); err == nil {
					cfg.logger.Debug("skipping existing lump file", "path", dest)
					skipped.Add(1)
					return nil
				}
			}
			if err := writeFileAtomic(dest, entry.Lump, cfg.overwrite); err != nil {
				if !cfg.overwrite && errors.Is(err, fs.ErrExist) {
					cfg.logger.Debug("skipping existing lump file", "path", dest)
					skipped.Add(1)
					return nil
				}
				return err
			}
			files.Add(1)
			written.Add(uint64(len(entry.Lump)))
			return nil
		})
	}
	err := g.Wait()

	stats := ExtractStats{
		Files:   int(files.Load()),
		Bytes:   written.Load(),
		Skipped: int(skipped.Load()),
	}
	cfg.logger.Debug("extracted lumps", "dir", destDir, "files", stats.Files, "bytes", stats.Bytes, "skipped", stats.Skipped)
	return stats, err
}

// LumpFileName returns the file name Extract uses for lump i.
func LumpFileName(i int, id ID) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		default:
			return '_'
		}
	}, id.String())
	return fmt.Sprintf("%04d_%s.lmp", i, name)
}

// writeFileAtomic writes data to destPath using a temp file. With overwrite
// the temp file is renamed over destPath; otherwise it is linked to destPath
// and an existing destPath yields an error matching fs.ErrExist.
func writeFileAtomic(destPath string, data []byte, overwrite bool) error {
	tmp, err := os.CreateTemp(filepath.Dir(destPath), ".wad-")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	success := false
	defer func() {
		if !success {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("writing content: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if !overwrite {
		if err := os.Link(tmpPath, destPath); err != nil {
			return fmt.Errorf("linking to destination: %w", err)
		}
		_ = os.Remove(tmpPath)
		success = true
		return nil
	}

	// On Windows, os.Rename fails if destination exists. Refuse to replace
	// a directory with a file.
	if info, err := os.Stat(destPath); err == nil && info.IsDir() {
		return &fs.PathError{Op: "extract", Path: destPath, Err: errors.New("is a directory")}
	}
	_ = os.Remove(destPath)

	if err := os.Rename(tmpPath, destPath); err != nil {
		return fmt.Errorf("renaming to destination: %w", err)
	}
	success = true
	return nil
}
