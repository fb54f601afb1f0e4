// glyphinfo - glyph metadata catalog tool
//
// Usage:
//
//	glyphinfo convert [flags] IN... OUT         Ingest GlyphData XML and write a snapshot
//	glyphinfo lookup -snapshot SRC [flags] KEY... Look up records in a snapshot
//	glyphinfo export -snapshot SRC [flags]      Write live records as JSON Lines
//
// IN, OUT and SRC are file paths or blob locations:
//
//	file:///var/lib/glyphinfo/glyphdata.snap
//	s3://bucket/prefix/glyphdata.snap?region=eu-central-1
//	minio://localhost:9000/bucket/prefix/glyphdata.snap?insecure=true
//
// Inputs are read concurrently and ingested in argument order. With
// -cache-dir, remote inputs and snapshots are read through a local cache.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/runenames"

	"github.com/hupe1980/glyphinfo"
	"github.com/hupe1980/glyphinfo/blobstore"
	"github.com/hupe1980/glyphinfo/blobstore/location"
	"github.com/hupe1980/glyphinfo/codec"
	"github.com/hupe1980/glyphinfo/snapshot"
)

// maxConcurrentReads bounds parallel input reads.
const maxConcurrentReads = 8

var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if errors.Is(err, errUsage) {
		os.Exit(2)
	}
	if err != nil {
		fatal("%v", err)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) < 1 {
		printUsage(stderr)
		return errUsage
	}

	switch args[0] {
	case "convert":
		return cmdConvert(ctx, args[1:], stderr)
	case "lookup":
		return cmdLookup(ctx, args[1:], stdout, stderr)
	case "export":
		return cmdExport(ctx, args[1:], stdout, stderr)
	case "help", "-h", "--help":
		printUsage(stdout)
		return nil
	default:
		fmt.Fprintf(stderr, "glyphinfo: unknown command: %s\n", args[0])
		printUsage(stderr)
		return errUsage
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `Usage:
  glyphinfo convert [flags] IN... OUT
  glyphinfo lookup -snapshot SRC [-by name|production|alt|unicode] KEY...
  glyphinfo export -snapshot SRC [-codec json|go-json]

Run "glyphinfo COMMAND -h" for the flags of a command.`)
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "glyphinfo: "+format+"\n", args...)
	os.Exit(1)
}

// commonFlags are shared by every command.
type commonFlags struct {
	logLevel  string
	logFormat string
	cacheDir  string
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	fs.StringVar(&c.logFormat, "log-format", "text", "log format (text, json)")
	fs.StringVar(&c.cacheDir, "cache-dir", "", "local directory caching remote inputs and snapshots")
}

func (c *commonFlags) logger(stderr io.Writer) (*glyphinfo.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.logLevel)); err != nil {
		return nil, fmt.Errorf("invalid -log-level %q", c.logLevel)
	}
	switch c.logFormat {
	case "text":
		return glyphinfo.NewTextLogger(stderr, level), nil
	case "json":
		return glyphinfo.NewJSONLogger(stderr, level), nil
	default:
		return nil, fmt.Errorf("invalid -log-format %q", c.logFormat)
	}
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return errUsage
		}
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	return nil
}

func cmdConvert(ctx context.Context, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		common             commonFlags
		strictDuplicates   = fs.Bool("strict-duplicates", false, "reject a source that defines a glyph name twice")
		requireDescription = fs.Bool("require-description", false, "treat records without a description as invalid")
		strictRecords      = fs.Bool("strict-records", false, "reject a source with an invalid record instead of skipping it")
		format             = fs.String("format", "binary", "snapshot format (binary, cbor)")
		compression        = fs.String("compression", "none", "snapshot compression (none, lz4, zstd)")
	)
	common.register(fs)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		fmt.Fprintln(stderr, "glyphinfo convert: need at least one input and one output")
		return errUsage
	}

	logger, err := common.logger(stderr)
	if err != nil {
		return err
	}
	f, err := snapshot.ParseFormat(*format)
	if err != nil {
		return err
	}
	c, err := snapshot.ParseCompression(*compression)
	if err != nil {
		return err
	}

	opts := []glyphinfo.Option{
		glyphinfo.WithLogger(logger),
		glyphinfo.WithSnapshotFormat(f),
		glyphinfo.WithCompression(c),
	}
	if *strictDuplicates {
		opts = append(opts, glyphinfo.WithStrictDuplicateNames())
	}
	if *requireDescription {
		opts = append(opts, glyphinfo.WithRequireDescription())
	}
	if *strictRecords {
		opts = append(opts, glyphinfo.WithStrictRecords())
	}

	inputs := fs.Args()[:fs.NArg()-1]
	output := fs.Arg(fs.NArg() - 1)

	sources, err := readSources(ctx, inputs, common.cacheDir, logger)
	if err != nil {
		return err
	}
	gd, err := glyphinfo.FromXML(ctx, sources, opts...)
	if err != nil {
		return err
	}

	bs, name, err := location.Open(ctx, output)
	if err != nil {
		return err
	}
	if err := gd.SaveSnapshot(ctx, bs, name, opts...); err != nil {
		return err
	}
	logger.InfoContext(ctx, "snapshot written",
		"output", output,
		"records", gd.Len(),
		"names", gd.NameCount(),
	)
	return nil
}

// readSources fetches inputs concurrently. The result keeps argument order.
func readSources(ctx context.Context, inputs []string, cacheDir string, logger *glyphinfo.Logger) ([]glyphinfo.Source, error) {
	sources := make([]glyphinfo.Source, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentReads)
	for i, in := range inputs {
		g.Go(func() error {
			bs, name, err := openStore(gctx, in, cacheDir, logger)
			if err != nil {
				return err
			}
			data, err := blobstore.ReadAll(gctx, bs, name)
			if err != nil {
				return fmt.Errorf("read %s: %w", in, err)
			}
			sources[i] = glyphinfo.Source{Name: in, Data: data}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sources, nil
}

// openStore connects to the store holding raw and returns it with the blob
// name. Remote stores are wrapped in a local cache when cacheDir is set.
func openStore(ctx context.Context, raw, cacheDir string, logger *glyphinfo.Logger) (blobstore.BlobStore, string, error) {
	loc, err := location.Parse(raw)
	if err != nil {
		return nil, "", err
	}
	bs, err := loc.Open(ctx)
	if err != nil {
		return nil, "", err
	}
	if cacheDir != "" && loc.Scheme != location.SchemeFile {
		root := filepath.Join(cacheDir, string(loc.Scheme), loc.Bucket, filepath.FromSlash(loc.Prefix))
		bs = blobstore.NewCachingStore(bs, blobstore.NewLocalStore(root), logger.Logger)
	}
	return bs, loc.Name, nil
}

// openSnapshot loads the snapshot at raw.
func openSnapshot(ctx context.Context, raw, cacheDir string, logger *glyphinfo.Logger) (*glyphinfo.GlyphData, error) {
	bs, name, err := openStore(ctx, raw, cacheDir, logger)
	if err != nil {
		return nil, err
	}
	return glyphinfo.LoadSnapshot(ctx, bs, name, glyphinfo.WithLogger(logger))
}

func cmdLookup(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("lookup", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		common commonFlags
		src    = fs.String("snapshot", "", "snapshot path or location (required)")
		by     = fs.String("by", "name", "lookup key (name, production, alt, unicode)")
	)
	common.register(fs)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *src == "" || fs.NArg() == 0 {
		fmt.Fprintln(stderr, "glyphinfo lookup: need -snapshot and at least one key")
		return errUsage
	}

	lookup, err := lookupFunc(*by)
	if err != nil {
		return err
	}
	logger, err := common.logger(stderr)
	if err != nil {
		return err
	}
	gd, err := openSnapshot(ctx, *src, common.cacheDir, logger)
	if err != nil {
		return err
	}

	missing := 0
	for _, key := range fs.Args() {
		rec, ok, err := lookup(gd, key)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintf(stdout, "%s\tnot found\n", key)
			missing++
			continue
		}
		fmt.Fprintf(stdout, "%s\t%s\n", key, formatRecord(rec))
	}
	if missing > 0 {
		return fmt.Errorf("%d of %d keys not found", missing, fs.NArg())
	}
	return nil
}

type lookupFn func(gd *glyphinfo.GlyphData, key string) (glyphinfo.Record, bool, error)

func lookupFunc(by string) (lookupFn, error) {
	switch by {
	case "name":
		return func(gd *glyphinfo.GlyphData, key string) (glyphinfo.Record, bool, error) {
			rec, ok := gd.RecordForName(key)
			return rec, ok, nil
		}, nil
	case "production":
		return func(gd *glyphinfo.GlyphData, key string) (glyphinfo.Record, bool, error) {
			rec, ok := gd.RecordForProductionName(key)
			return rec, ok, nil
		}, nil
	case "alt":
		return func(gd *glyphinfo.GlyphData, key string) (glyphinfo.Record, bool, error) {
			rec, ok := gd.RecordForAlternativeName(key)
			return rec, ok, nil
		}, nil
	case "unicode":
		return func(gd *glyphinfo.GlyphData, key string) (glyphinfo.Record, bool, error) {
			cp, err := parseCodepoint(key)
			if err != nil {
				return glyphinfo.Record{}, false, err
			}
			rec, ok := gd.RecordForUnicode(cp)
			return rec, ok, nil
		}, nil
	default:
		return nil, fmt.Errorf("invalid -by %q", by)
	}
}

// parseCodepoint accepts "17F6", "U+17F6" and "u+17f6".
func parseCodepoint(s string) (rune, error) {
	hex := strings.TrimPrefix(strings.TrimPrefix(s, "U+"), "u+")
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || v > 0x10FFFF {
		return 0, fmt.Errorf("invalid codepoint %q", s)
	}
	return rune(v), nil
}

func formatRecord(rec glyphinfo.Record) string {
	var b strings.Builder
	if cp, ok := rec.Codepoint(); ok {
		fmt.Fprintf(&b, "U+%04X %s\t", cp, runenames.Name(cp))
	} else {
		b.WriteString("-\t")
	}
	b.WriteString(rec.Category.String())
	if rec.SubCategory != 0 {
		b.WriteString("/" + rec.SubCategory.String())
	}
	for _, field := range []string{rec.Case.String(), rec.Script.String(), rec.Direction.String()} {
		if field != "" {
			b.WriteString("\t" + field)
		}
	}
	if rec.ProductionName != "" {
		b.WriteString("\tproduction=" + rec.ProductionName)
	}
	if rec.Description != "" {
		b.WriteString("\t" + strconv.Quote(rec.Description))
	}
	return b.String()
}

func cmdExport(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		common    commonFlags
		src       = fs.String("snapshot", "", "snapshot path or location (required)")
		codecName = fs.String("codec", codec.Default.Name(), "output codec ("+strings.Join(codec.Names(), ", ")+")")
	)
	common.register(fs)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *src == "" {
		fmt.Fprintln(stderr, "glyphinfo export: need -snapshot")
		return errUsage
	}

	c, ok := codec.ByName(*codecName)
	if !ok {
		return fmt.Errorf("unknown codec %q", *codecName)
	}
	logger, err := common.logger(stderr)
	if err != nil {
		return err
	}
	gd, err := openSnapshot(ctx, *src, common.cacheDir, logger)
	if err != nil {
		return err
	}

	n, err := gd.Export(stdout, c)
	if err != nil {
		return err
	}
	logger.InfoContext(ctx, "export completed", "records", n)
	return nil
}
