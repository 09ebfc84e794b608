package batch

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/verance/rtac/internal/rtacxml"
)

// Result is the aggregate of one batch run. Aggregate embeds every
// file's devices, points and tag mappings in file order; Skipped counts
// files that failed to read or parse.
type Result struct {
	Aggregate rtacxml.ParseResult
	Files     int
	Skipped   int
	RunID     string
}

// ResolveDir resolves every .xml file under dir (recursively, sorted
// path order). logger may be nil.
func ResolveDir(dir string, logger *slog.Logger) (*Result, error) {
	files, err := findXMLFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no XML files found in %s", dir)
	}
	return ResolveFiles(files, logger)
}

// ResolveFiles runs the two-pass resolution over the given files.
//
// Pass 1 parses every file and collects the set of declared device map
// names, ignoring points. Pass 2 re-parses; points from files that
// declared no devices and carry no map name are matched against the
// known set with the rule "point name starts with mapName + '.'" - the
// first match (in sorted map-name order, for reproducibility) wins.
// Points from device-declaring files are left untouched.
//
// Pass 1 always completes before Pass 2 starts; the inference depends
// on the complete map-name set.
func ResolveFiles(files []string, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}
	result := &Result{Files: len(files), RunID: uuid.NewString()}
	logger = logger.With("run_id", result.RunID)

	// Pass 1: collect map names.
	mapNameSet := make(map[string]bool)
	for _, file := range files {
		parsed, err := parseFile(file)
		if err != nil {
			logger.Warn("skipping file", "file", file, "error", err)
			continue
		}
		for _, dev := range parsed.Devices {
			mapNameSet[dev.MapName] = true
		}
	}

	mapNames := make([]string, 0, len(mapNameSet))
	for name := range mapNameSet {
		mapNames = append(mapNames, name)
	}
	sort.Strings(mapNames)

	// Pass 2: aggregate, inferring map names for orphaned points.
	for _, file := range files {
		parsed, err := parseFile(file)
		if err != nil {
			logger.Warn("skipping file", "file", file, "error", err)
			result.Skipped++
			continue
		}

		if len(parsed.Devices) == 0 {
			for i := range parsed.Points {
				p := &parsed.Points[i]
				if p.MapName != "" {
					continue
				}
				p.MapName = inferMapName(p.Name, mapNames)
			}
		}

		agg := &result.Aggregate
		agg.Devices = append(agg.Devices, parsed.Devices...)
		agg.Points = append(agg.Points, parsed.Points...)
		agg.TagMappings = append(agg.TagMappings, parsed.TagMappings...)
	}

	logger.Info("batch resolved",
		"files", result.Files,
		"skipped", result.Skipped,
		"devices", len(result.Aggregate.Devices),
		"points", len(result.Aggregate.Points),
		"tag_mappings", len(result.Aggregate.TagMappings),
	)
	return result, nil
}

func inferMapName(pointName string, mapNames []string) string {
	for _, mapName := range mapNames {
		if strings.HasPrefix(pointName, mapName+".") {
			return mapName
		}
	}
	return ""
}

func parseFile(path string) (*rtacxml.ParseResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return rtacxml.Parse(data, filepath.Base(path))
}

// findXMLFiles walks dir and returns every .xml file, sorted for
// deterministic batch order.
func findXMLFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".xml") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}
	sort.Strings(files)
	return files, nil
}
