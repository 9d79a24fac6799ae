package output

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/okbase16/internal/compression"
	"github.com/jmylchreest/okbase16/internal/security"
)

// WriteOptions controls how generated files reach the disk.
type WriteOptions struct {
	// Dir is used for plugins without their own output directory.
	Dir string
	// DryRun generates everything but writes nothing.
	DryRun bool
	// Compress writes every file xz-compressed with an added ".xz" suffix.
	Compress bool
	// Backup renames an existing file to <name>.backup before overwriting it.
	Backup bool
	// TemplateBase, when set, is passed to every TemplatePlugin.
	TemplateBase string
	Logger       hclog.Logger
}

// WrittenFile describes one generated file.
type WrittenFile struct {
	Plugin string
	Path   string
	Size   int
	// Written is false for dry runs.
	Written bool
}

// Result is the outcome of running one plugin.
type Result struct {
	Plugin string
	Files  []WrittenFile
	Err    error
}

// Run generates and writes the output of every plugin. A failing plugin does
// not stop the others; all failures are joined into the returned error.
// Post-write hook failures are logged as warnings.
func Run(ctx context.Context, plugins []Plugin, theme *Theme, opts WriteOptions) ([]Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	results := make([]Result, 0, len(plugins))
	var errs []error
	for _, p := range plugins {
		plog := logger.Named(p.Name())
		if lp, ok := p.(LoggerPlugin); ok {
			lp.SetLogger(plog)
		}
		if tp, ok := p.(TemplatePlugin); ok && opts.TemplateBase != "" {
			tp.SetTemplateBase(opts.TemplateBase)
		}

		files, err := generate(p, theme, opts, plog)
		if err != nil {
			err = fmt.Errorf("%s: %w", p.Name(), err)
			errs = append(errs, err)
		}
		if err == nil && !opts.DryRun {
			postWrite(ctx, p, files, plog)
		}
		results = append(results, Result{Plugin: p.Name(), Files: files, Err: err})
	}
	return results, errors.Join(errs...)
}

func postWrite(ctx context.Context, p Plugin, files []WrittenFile, logger hclog.Logger) {
	hook, ok := p.(PostWriteHook)
	if !ok {
		return
	}
	paths := make([]string, 0, len(files))
	for _, f := range files {
		paths = append(paths, f.Path)
	}
	if err := hook.PostWrite(ctx, paths); err != nil {
		logger.Warn("post-write hook failed", "error", err)
	}
}

func generate(p Plugin, theme *Theme, opts WriteOptions, logger hclog.Logger) ([]WrittenFile, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	files, err := p.Generate(theme)
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	dir := p.OutputDir()
	if dir == "" {
		dir = opts.Dir
	}
	if dir == "" {
		dir = "."
	}
	dir, err = ExpandHome(dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	written := make([]WrittenFile, 0, len(names))
	for _, name := range names {
		if err := security.ValidateFilePath(name, dir); err != nil {
			return written, err
		}

		content := files[name]
		if opts.Compress {
			content, err = compression.Compress(content)
			if err != nil {
				return written, err
			}
			name += compression.Ext
		}

		path := filepath.Join(dir, name)
		wf := WrittenFile{Plugin: p.Name(), Path: path, Size: len(content)}
		if opts.DryRun {
			logger.Debug("dry run, not writing", "path", path, "bytes", len(content))
			written = append(written, wf)
			continue
		}

		if err := WriteFile(path, content, opts.Backup, logger); err != nil {
			return written, err
		}
		logger.Debug("wrote file", "path", path, "bytes", len(content))
		wf.Written = true
		written = append(written, wf)
	}
	return written, nil
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path[1:], "/")), nil
}

// WriteFile writes content to path, creating parent directories as needed.
func WriteFile(path string, content []byte, backup bool, logger hclog.Logger) error {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if backup {
		if _, err := os.Stat(path); err == nil {
			backupPath := path + ".backup"
			if err := os.Rename(path, backupPath); err != nil {
				logger.Warn("could not create backup", "path", path, "error", err)
			} else {
				logger.Info("created backup", "path", backupPath)
			}
		}
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
