package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/introspec-io/introspec"
	"github.com/introspec-io/introspec/assembler"
	"github.com/introspec-io/introspec/gather"
	"github.com/introspec-io/introspec/internal/mcpserver"
	"github.com/introspec-io/introspec/resource"
	"github.com/introspec-io/introspec/service"
	"github.com/introspec-io/introspec/spec"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("introspec v%s\n", introspec.BuildDetails())
	case "help", "-h", "--help":
		printUsage()
	case "generate":
		if err := handleGenerate(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "serve":
		if err := handleServe(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := handleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean: %s?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// generateFlags contains flags for the generate command
type generateFlags struct {
	output           string
	format           string
	title            string
	version          string
	host             string
	basePath         string
	supportLevel     string
	excludeUtilities bool
	stripPrefixes    string
	excludePrefixes  string
}

func setupGenerateFlags() (*flag.FlagSet, *generateFlags) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	flags := &generateFlags{}

	fs.StringVar(&flags.output, "o", "", "output file (default stdout; .yaml/.yml extension selects YAML)")
	fs.StringVar(&flags.format, "format", "", "output format: json or yaml (overrides the output extension)")
	fs.StringVar(&flags.title, "title", "", "document info title")
	fs.StringVar(&flags.version, "version", "", "document info version")
	fs.StringVar(&flags.host, "host", "", "document host")
	fs.StringVar(&flags.basePath, "base-path", "/", "document basePath")
	fs.StringVar(&flags.supportLevel, "support-level", "DEPRECATED", "minimum route support level to document (NOTSUPPORTED, DEPRECATED, SUPPORTED)")
	fs.BoolVar(&flags.excludeUtilities, "exclude-utilities", false, "drop the synthesized utility sub-paths")
	fs.StringVar(&flags.stripPrefixes, "strip-prefixes", "", "comma-separated kind prefixes stripped from schema definition names")
	fs.StringVar(&flags.excludePrefixes, "exclude-prefixes", "", "comma-separated resource path prefixes excluded from the document")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: introspec generate [flags] <batch-file>\n\n")
		_, _ = fmt.Fprintf(output, "Assemble a Swagger 2.0 document from a resource metadata batch file.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  introspec generate batch.yaml\n")
		_, _ = fmt.Fprintf(output, "  introspec generate -o swagger.yaml -title \"Widgets API\" batch.yaml\n")
		_, _ = fmt.Fprintf(output, "  introspec generate -support-level SUPPORTED -exclude-utilities batch.json\n")
	}

	return fs, flags
}

func handleGenerate(args []string) error {
	fs, flags := setupGenerateFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("generate command requires exactly one batch file path")
	}

	level, err := resource.ParseSupportLevel(flags.supportLevel)
	if err != nil {
		return err
	}

	batch, err := gather.LoadBatch(fs.Arg(0))
	if err != nil {
		return err
	}

	asm := assembler.New().
		SetHost(flags.host).
		SetBasePath(flags.basePath).
		SetSupportLevel(level).
		SetExcludeUtilities(flags.excludeUtilities).
		SetStripPrefixes(splitList(flags.stripPrefixes)...).
		SetExcludedPrefixes(splitList(flags.excludePrefixes)...).
		WithLogger(spec.NewSlogAdapter(nil))
	if flags.title != "" || flags.version != "" {
		asm.SetInfo(&spec.Info{Title: flags.title, Version: flags.version})
	}

	doc, err := asm.Assemble(batch)
	if err != nil {
		return err
	}

	data, err := spec.Encode(doc, outputFormat(flags.format, flags.output))
	if err != nil {
		return err
	}

	if flags.output == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(flags.output, data, 0o600); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	fmt.Printf("Wrote %s (%d paths, %d definitions)\n", flags.output, len(doc.Paths), len(doc.Definitions))
	return nil
}

// outputFormat picks the encoding from the -format flag, falling back to the
// output file extension, then JSON.
func outputFormat(format, output string) spec.Format {
	if format != "" {
		return spec.NegotiateFormat(format)
	}
	switch filepath.Ext(output) {
	case ".yaml", ".yml":
		return spec.FormatYAML
	}
	return spec.FormatJSON
}

// suggestCommand returns the closest known command within edit distance 2,
// or "" when nothing is close enough.
func suggestCommand(input string) string {
	commands := []string{"generate", "serve", "mcp", "version", "help"}
	best := ""
	bestDist := 3
	for _, cmd := range commands {
		if d := editDistance(input, cmd); d < bestDist {
			best = cmd
			bestDist = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// serveFlags contains flags for the serve command
type serveFlags struct {
	addr     string
	title    string
	version  string
	basePath string
}

func setupServeFlags() (*flag.FlagSet, *serveFlags) {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	flags := &serveFlags{}

	fs.StringVar(&flags.addr, "addr", ":8080", "listen address")
	fs.StringVar(&flags.title, "title", "", "document info title")
	fs.StringVar(&flags.version, "version", "", "document info version")
	fs.StringVar(&flags.basePath, "base-path", "/", "document basePath")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: introspec serve [flags] <batch-file>\n\n")
		_, _ = fmt.Fprintf(output, "Serve the assembled document over HTTP; each request re-reads nothing,\n")
		_, _ = fmt.Fprintf(output, "the batch file is loaded once at startup.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  introspec serve batch.yaml\n")
		_, _ = fmt.Fprintf(output, "  introspec serve -addr :9090 -title \"Widgets API\" batch.yaml\n")
	}

	return fs, flags
}

func handleServe(args []string) error {
	fs, flags := setupServeFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("serve command requires exactly one batch file path")
	}

	source, err := gather.NewFileSource(fs.Arg(0))
	if err != nil {
		return err
	}

	asm := assembler.New().SetBasePath(flags.basePath)
	if flags.title != "" || flags.version != "" {
		asm.SetInfo(&spec.Info{Title: flags.title, Version: flags.version})
	}

	logger := slog.Default()
	handler := service.NewHandler(source, asm).WithLogger(spec.NewSlogAdapter(logger))

	server := &http.Server{
		Addr:              flags.addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("serving document", "addr", flags.addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func handleMCP(args []string) error {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: introspec mcp\n\n")
		_, _ = fmt.Fprintf(output, "Run the MCP server over stdio. Defaults are configured via INTROSPEC_* env vars.\n")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}

func printUsage() {
	fmt.Println(`introspec - Swagger document assembly from resource metadata

Usage:
  introspec <command> [options]

Commands:
  generate    Assemble a document from a batch file and write it out
  serve       Serve the assembled document over HTTP
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  introspec generate batch.yaml
  introspec generate -o swagger.yaml -support-level SUPPORTED batch.yaml
  introspec serve -addr :9090 batch.yaml

Run 'introspec <command> --help' for more information on a command.`)
}
