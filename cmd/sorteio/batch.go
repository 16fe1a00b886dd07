package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/sorteio/internal/cli"
	"github.com/Veraticus/sorteio/internal/common"
	"github.com/Veraticus/sorteio/internal/config"
	"github.com/Veraticus/sorteio/internal/draw"
	"github.com/Veraticus/sorteio/internal/export"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	errNoInputFiles = errors.New("no files found to process")
	errNoTickets    = errors.New("no valid ticket in file")
	errNameTaken    = errors.New("export name already used by")
)

// batchExtensions are the file types picked up when a directory is given.
var batchExtensions = map[string]bool{
	".txt": true,
	".csv": true,
}

// batchResult summarizes one processed draw file.
type batchResult struct {
	err          error
	file         string
	contemplated []string
	paths        []string
	tickets      int
	codes        int
	withinLimit  int
}

func batchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch <files...>",
		Short: "Derive and export the codes of many draw files",
		Long: `Process one draw per file and write its CSV exports next to each other in
the export directory, named after the input file (e.g. sorteio-03_numeros_gerados.csv).

Arguments can be files, glob patterns or directories; directories are walked
for .txt and .csv files. Every file is analyzed with the same group size,
limit and quotas.`,
		Example: `  sorteio batch resultados/*.txt
  sorteio batch -g 5000 --export-dir saida/ resultados/`,
		Args: cobra.MinimumNArgs(1),
		RunE: runBatch,
	}
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	drawCfg, err := config.LoadDrawConfig(viper.GetViper())
	if err != nil {
		return err
	}
	dir, err := config.ExportDir(viper.GetViper())
	if err != nil {
		return err
	}

	files, err := expandInputs(args)
	if err != nil {
		return err
	}

	common.LogInfo("Processing draw files", common.Fields{"file_count": len(files), "export_dir": dir})

	results, err := processBatch(ctx, cmd.ErrOrStderr(), drawCfg, dir, files)
	if err != nil {
		return err
	}

	return renderBatchSummary(cmd.OutOrStdout(), results)
}

// expandInputs resolves files, glob patterns and directories into a sorted,
// de-duplicated list of files.
func expandInputs(args []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, pattern := range args {
		info, err := os.Stat(pattern)
		if err == nil && info.IsDir() {
			err = filepath.Walk(pattern, func(path string, fileInfo os.FileInfo, err error) error {
				if err != nil {
					return err
				}
				if !fileInfo.IsDir() && batchExtensions[strings.ToLower(filepath.Ext(path))] {
					add(path)
				}
				return nil
			})
			if err != nil {
				return nil, fmt.Errorf("failed to walk directory %s: %w", pattern, err)
			}
			continue
		}

		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			common.LogWarn("No files found matching pattern", common.Fields{"pattern": pattern})
			continue
		}
		for _, m := range matches {
			add(m)
		}
	}

	if len(files) == 0 {
		return nil, errNoInputFiles
	}
	sort.Strings(files)
	return files, nil
}

// processBatch analyzes every file and exports its codes. A file that fails
// is recorded in its result and does not stop the batch.
func processBatch(ctx context.Context, progressOut io.Writer, cfg draw.Config, dir string, files []string) ([]batchResult, error) {
	bar := cli.NewBatchProgress(progressOut, len(files))
	results := make([]batchResult, 0, len(files))
	prefixes := exportPrefixes(files)
	claimed := make(map[string]string, len(files))

	for i, file := range files {
		if err := ctx.Err(); err != nil {
			return results, fmt.Errorf("batch interrupted: %w", err)
		}

		var res batchResult
		if owner, taken := claimed[prefixes[i]]; taken {
			res = batchResult{file: file, err: fmt.Errorf("%w %s", errNameTaken, filepath.Base(owner))}
		} else {
			claimed[prefixes[i]] = file
			res = processDrawFile(cfg, dir, file, prefixes[i])
		}
		if res.err != nil {
			common.LogError(res.err, "Failed to process draw file", common.Fields{"file": file})
		}
		results = append(results, res)

		if err := bar.Add(1); err != nil {
			common.LogDebug("failed to update progress bar", common.Fields{"error": err})
		}
	}

	if err := bar.Finish(); err != nil {
		common.LogDebug("failed to finish progress bar", common.Fields{"error": err})
	}
	return results, nil
}

func processDrawFile(cfg draw.Config, dir, file, prefix string) batchResult {
	res := batchResult{file: file}

	data, err := os.ReadFile(file) //nolint:gosec // Paths come from the user
	if err != nil {
		res.err = fmt.Errorf("failed to read file: %w", err)
		return res
	}

	analysis, err := draw.Analyze(cfg, string(data))
	if err != nil {
		res.err = err
		return res
	}
	if analysis.Empty() {
		res.err = errNoTickets
		return res
	}

	res.tickets = len(analysis.Tickets)
	res.codes = len(analysis.Full)
	res.withinLimit = len(analysis.Filtered)
	res.contemplated = analysis.Contemplated()

	res.paths, res.err = export.WriteAnalysis(dir, prefix, analysis)
	return res
}

// batchPrefix names exports after the input file without its extension.
func batchPrefix(file string) string {
	base := filepath.Base(file)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// exportPrefixes names each file's exports after its base name. Files sharing
// a base name are named after their path below their closest common directory
// instead, so a/draw.txt and b/draw.txt export as a-draw and b-draw. When that
// still clashes (draw.txt next to draw.csv) the extension is kept as well.
func exportPrefixes(files []string) []string {
	prefixes := make([]string, len(files))
	byBase := make(map[string][]int)
	for i, f := range files {
		prefixes[i] = batchPrefix(f)
		byBase[prefixes[i]] = append(byBase[prefixes[i]], i)
	}

	for _, group := range byBase {
		if len(group) < 2 {
			continue
		}

		rels := make([]string, len(group))
		paths := make([]string, len(group))
		for j, i := range group {
			paths[j] = absPath(files[i])
		}
		root := commonDir(paths)

		seen := make(map[string]int, len(group))
		for j, i := range group {
			rel, err := filepath.Rel(root, paths[j])
			if err != nil {
				rel = paths[j]
			}
			rels[j] = rel
			prefixes[i] = flattenPath(strings.TrimSuffix(rel, filepath.Ext(rel)))
			seen[prefixes[i]]++
		}
		for j, i := range group {
			if seen[prefixes[i]] > 1 {
				ext := filepath.Ext(rels[j])
				prefixes[i] = flattenPath(strings.TrimSuffix(rels[j], ext)) + "-" + strings.ToLower(strings.TrimPrefix(ext, "."))
			}
		}
	}
	return prefixes
}

func absPath(file string) string {
	abs, err := filepath.Abs(file)
	if err != nil {
		return filepath.Clean(file)
	}
	return abs
}

// commonDir returns the deepest directory containing every path.
func commonDir(paths []string) string {
	dir := filepath.Dir(paths[0])
	for _, p := range paths[1:] {
		for !within(dir, p) {
			parent := filepath.Dir(dir)
			if parent == dir {
				return dir
			}
			dir = parent
		}
	}
	return dir
}

func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func flattenPath(p string) string {
	return strings.ReplaceAll(filepath.ToSlash(p), "/", "-")
}

func renderBatchSummary(w io.Writer, results []batchResult) error {
	var failed int

	fmt.Fprintln(w, cli.FormatTitle("Batch summary")) //nolint:forbidigo // User-facing output
	fmt.Fprintln(w)                                   //nolint:forbidigo // User-facing output

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", //nolint:forbidigo // User-facing output
		cli.TableHeaderStyle.Render("File"),
		cli.TableHeaderStyle.Render("Tickets"),
		cli.TableHeaderStyle.Render("Codes"),
		cli.TableHeaderStyle.Render("Within limit"),
		cli.TableHeaderStyle.Render("My quotas drawn"))
	for _, r := range results {
		if r.err != nil {
			failed++
			fmt.Fprintf(tw, "%s\t%s\t\t\t\n", filepath.Base(r.file), cli.ErrorStyle.Render(r.err.Error())) //nolint:forbidigo // User-facing output
			continue
		}
		drawn := "-"
		if len(r.contemplated) > 0 {
			drawn = strings.Join(r.contemplated, ", ")
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\n", filepath.Base(r.file), r.tickets, r.codes, r.withinLimit, drawn) //nolint:forbidigo // User-facing output
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w) //nolint:forbidigo // User-facing output
	msg := fmt.Sprintf("%d of %d file(s) exported", len(results)-failed, len(results))
	if failed > 0 {
		fmt.Fprintln(w, cli.FormatWarning(msg)) //nolint:forbidigo // User-facing output
		return nil
	}
	fmt.Fprintln(w, cli.FormatSuccess(msg)) //nolint:forbidigo // User-facing output
	return nil
}
