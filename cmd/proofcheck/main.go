// Command proofcheck verifies a file of declarations and dumps the
// resulting global environment. Usage: proofcheck [-dump path]
// [-db path] [-no-cache] [source]
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/funvibe/proofcheck/internal/cache"
	"github.com/funvibe/proofcheck/internal/config"
	"github.com/funvibe/proofcheck/internal/driver"
	"github.com/funvibe/proofcheck/internal/dump"
	"github.com/funvibe/proofcheck/internal/lexer"
	"github.com/funvibe/proofcheck/internal/parser"
	"github.com/funvibe/proofcheck/internal/pipeline"
)

func main() {
	sourcePath := config.DefaultSourcePath
	dumpPath := config.DefaultDumpPath
	dbPath := config.DefaultCachePath
	noCache := false

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "-dump" && i+1 < len(args):
			i++
			dumpPath = args[i]
		case args[i] == "-db" && i+1 < len(args):
			i++
			dbPath = args[i]
		case args[i] == "-no-cache":
			noCache = true
		case strings.HasPrefix(args[i], "-"):
			fmt.Fprintf(os.Stderr, "unrecognized flag: %s\n", args[i])
			os.Exit(1)
		default:
			sourcePath = args[i]
		}
	}

	source, err := os.ReadFile(sourcePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading %s: %s\n", sourcePath, err)
		os.Exit(1)
	}

	var ch *cache.Cache
	if !noCache {
		ch, err = cache.Open(dbPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: incremental cache disabled: %s\n", err)
			ch = nil
		} else {
			defer ch.Close()
		}
	}

	runID := uuid.New().String()
	start := time.Now()

	ctx := pipeline.NewContext(string(source))
	ctx.FilePath = sourcePath

	pl := pipeline.New(
		lexer.Stage{},
		parser.Stage{},
		driver.Stage{Out: os.Stdout, Cache: ch, RunID: runID, Now: start},
	)

	// No partial environment is dumped on failure: the
	// dump below only runs once every declaration has checked.
	if derr := pl.Run(ctx); derr != nil {
		derr.File = sourcePath
		derr.RunID = runID
		fmt.Fprintln(os.Stderr, derr.Error())
		os.Exit(1)
	}

	doc := dump.Build(ctx.Env, runID, time.Now())
	data, err := dump.Marshal(doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error building dump: %s\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(dumpPath, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "error writing %s: %s\n", dumpPath, err)
		os.Exit(1)
	}
}
