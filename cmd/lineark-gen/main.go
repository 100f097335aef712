package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/lineark/lineark-go/internal/gen"
	"github.com/lineark/lineark-go/internal/introspection"
	"github.com/lineark/lineark-go/internal/schema"
	"github.com/lineark/lineark-go/telemetry"
)

const rootUsage = `lineark-gen — Linear GraphQL schema & client generation tools

USAGE:
  lineark-gen <command> [flags]

COMMANDS:
  fetch-sdl        Fetch the schema via introspection and render it as SDL
  generate         Generate Go types from an SDL schema file
  help             Show help for any command

A lineark-gen.yml file in the working directory supplies defaults;
flags override it.
`

const fetchSDLUsage = `fetch-sdl FLAGS:
  -endpoint <url>        GraphQL endpoint (default: https://api.linear.app/graphql)
  -token <token>         API token (default: $LINEAR_API_TOKEN)
  -token-env <name>      Read the token from this environment variable
  -out <file>            Write SDL to file (default: stdout)
  -otel.endpoint <addr>  OTLP collector endpoint
  -otel.service <name>   OpenTelemetry service name (default: lineark-gen)
`

const generateUsage = `generate FLAGS:
  -sdl <file>   SDL schema file to read (required)
  -pkg <name>   Package name for generated code (default: generated)
  -out <file>   Write generated Go source to file (default: stdout)
  -strict       Treat parse warnings as errors
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	global := flag.NewFlagSet("lineark-gen", flag.ContinueOnError)
	global.SetOutput(new(bytes.Buffer)) // silence automatic output
	if err := global.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, rootUsage)
		return err
	}
	remaining := global.Args()
	if len(remaining) == 0 {
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("missing command")
	}

	cmd := remaining[0]
	cmdArgs := remaining[1:]
	switch cmd {
	case "fetch-sdl":
		return cmdFetchSDL(cmdArgs)
	case "generate":
		return cmdGenerate(cmdArgs)
	case "help":
		return cmdHelp(cmdArgs)
	default:
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func cmdHelp(args []string) error {
	if len(args) == 0 {
		fmt.Print(rootUsage)
		return nil
	}
	switch args[0] {
	case "fetch-sdl":
		fmt.Print(fetchSDLUsage)
	case "generate":
		fmt.Print(generateUsage)
	default:
		return fmt.Errorf("unknown help topic %q", args[0])
	}
	return nil
}

func cmdFetchSDL(args []string) error {
	cfg := loadConfig(configFile)

	endpoint := cfg.endpointOr("https://api.linear.app/graphql")
	token := ""
	tokenEnv := cfg.TokenEnv
	outFile := cfg.Out
	otelEndpoint := ""
	otelService := "lineark-gen"

	fs := flag.NewFlagSet("fetch-sdl", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))
	fs.StringVar(&endpoint, "endpoint", endpoint, "GraphQL endpoint")
	fs.StringVar(&token, "token", token, "API token")
	fs.StringVar(&tokenEnv, "token-env", tokenEnv, "Environment variable holding the token")
	fs.StringVar(&outFile, "out", outFile, "Write SDL to file")
	fs.StringVar(&otelEndpoint, "otel.endpoint", otelEndpoint, "OTLP collector endpoint")
	fs.StringVar(&otelService, "otel.service", otelService, "OpenTelemetry service name")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, fetchSDLUsage)
		return err
	}

	if token == "" {
		if tokenEnv == "" {
			tokenEnv = "LINEAR_API_TOKEN"
		}
		token = os.Getenv(tokenEnv)
	}
	if token == "" {
		fmt.Fprint(os.Stderr, fetchSDLUsage)
		return fmt.Errorf("no API token: pass -token or set $%s", tokenEnv)
	}

	shutdown, err := telemetry.Setup(otelEndpoint, otelService)
	if err != nil {
		return fmt.Errorf("otel setup: %w", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	doc, err := introspection.Fetch(context.Background(), http.DefaultClient, endpoint, token)
	if err != nil {
		return fmt.Errorf("fetch schema: %w", err)
	}
	sdl := introspection.RenderSDL(doc)
	if outFile == "" {
		fmt.Print(sdl)
		return nil
	}
	return os.WriteFile(outFile, []byte(sdl), 0644)
}

func cmdGenerate(args []string) error {
	cfg := loadConfig(configFile)

	sdlFile := ""
	pkg := cfg.packageOr("generated")
	outFile := cfg.Out
	strict := false

	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))
	fs.StringVar(&sdlFile, "sdl", sdlFile, "SDL schema file")
	fs.StringVar(&pkg, "pkg", pkg, "Package name for generated code")
	fs.StringVar(&outFile, "out", outFile, "Write generated source to file")
	fs.BoolVar(&strict, "strict", strict, "Treat parse warnings as errors")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, generateUsage)
		return err
	}
	if sdlFile == "" {
		fmt.Fprint(os.Stderr, generateUsage)
		return fmt.Errorf("-sdl is required")
	}

	sdl, err := os.ReadFile(sdlFile)
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}

	s := schema.Parse(string(sdl))
	for _, w := range s.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w.Message)
	}
	if strict && len(s.Warnings) > 0 {
		return fmt.Errorf("%d parse warning(s) with -strict", len(s.Warnings))
	}

	src, err := gen.Generate(s, pkg)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	if outFile == "" {
		fmt.Print(string(src))
		return nil
	}
	return os.WriteFile(outFile, src, 0644)
}
