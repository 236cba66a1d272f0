// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package render

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-public-env/internal/logger"
)

// Route binds a page to a URL path.
type Route struct {
	Path string
	Page Page
}

// ExportReport lists what [Export] wrote and skipped.
type ExportReport struct {
	Written []string
	Skipped map[string]error
}

// Export pre-renders routes into dir as <path>/index.html. Pages that turn
// out dynamic or do not render with status 200 are skipped and reported;
// the returned error is reserved for I/O failures.
func Export(ctx context.Context, r *Renderer, routes []Route, dir string) (ExportReport, error) {
	log := logger.FromContext(ctx)
	report := ExportReport{Skipped: make(map[string]error)}

	for _, route := range routes {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		var buf bytes.Buffer
		res, err := r.Render(ctx, &buf, "", route.Page)
		if err != nil {
			return report, fmt.Errorf("error rendering %s: %w", route.Path, err)
		}

		switch {
		case res.Dynamic:
			report.Skipped[route.Path] = ErrDynamicPage
			log.Info().Str("path", route.Path).Msg("skipped dynamic page")
			continue
		case res.Status != 200:
			report.Skipped[route.Path] = fmt.Errorf("status %d", res.Status)
			log.Info().Str("path", route.Path).Int("status", res.Status).Msg("skipped page")
			continue
		}

		file := exportPath(dir, route.Path)
		if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
			return report, fmt.Errorf("error creating export dir: %w", err)
		}
		if err := os.WriteFile(file, buf.Bytes(), 0o644); err != nil {
			return report, fmt.Errorf("error writing %s: %w", file, err)
		}

		report.Written = append(report.Written, file)
		log.Info().Str("path", route.Path).Str("file", file).Msg("exported page")
	}

	return report, nil
}

func exportPath(dir, urlPath string) string {
	clean := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	return filepath.Join(dir, filepath.FromSlash(clean), "index.html")
}
