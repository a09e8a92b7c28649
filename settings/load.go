package settings

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/hgupta2363/metabase/error_helpers"
	"github.com/hgupta2363/metabase/getter"
	"github.com/hgupta2363/metabase/telemetry"
)

const maxParallelLoads = 5

// LoadDocument fetches a settings document from source and parses it according
// to its file extension. The source may be a local path or any go-getter url
// (http, git, s3 and friends). Remote documents are downloaded into a unique
// sub-directory of tmpDir.
//
// Supported extensions are .json, .yaml, .yml and .hcl.
func LoadDocument(ctx context.Context, source, tmpDir string) ([]*ColumnSetting, error) {
	ctx, span := telemetry.StartSpan(ctx, "metabase", "LoadDocument (%s)", source)
	defer span.End()

	localPath, err := getter.GetFile(ctx, source, tmpDir)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(localPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings document %s: %s", localPath, err.Error())
	}

	ext := strings.ToLower(filepath.Ext(localPath))
	switch ext {
	case ".json":
		return ParseJSON(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".hcl":
		return ParseHCL(localPath, data)
	default:
		return nil, fmt.Errorf("unsupported settings document extension %q", ext)
	}
}

// LoadDocuments loads every source and concatenates the results. The sources
// are fetched in parallel but the returned settings preserve source order, so
// a column setting from an earlier source always sorts before one from a
// later source.
func LoadDocuments(ctx context.Context, sources []string, tmpDir string) ([]*ColumnSetting, error) {
	ctx, span := telemetry.StartSpan(ctx, "metabase", "LoadDocuments (%d sources)", len(sources))
	defer span.End()

	var loadWg sync.WaitGroup

	// control how many documents are loaded in parallel
	sem := semaphore.NewWeighted(maxParallelLoads)

	results := make([][]*ColumnSetting, len(sources))
	errors := make([]error, len(sources))
	for i, source := range sources {
		loadWg.Add(1)
		go func(i int, source string) {
			defer loadWg.Done()

			if err := sem.Acquire(ctx, 1); err != nil {
				errors[i] = err
				return
			}
			defer sem.Release(1)

			results[i], errors[i] = LoadDocument(ctx, source, tmpDir)
		}(i, source)
	}
	loadWg.Wait()

	if err := error_helpers.CombineErrorsWithPrefix("failed to load settings documents", errors...); err != nil {
		return nil, err
	}

	var columnSettings []*ColumnSetting
	for _, result := range results {
		columnSettings = append(columnSettings, result...)
	}
	return columnSettings, nil
}
