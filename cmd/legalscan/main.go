package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gabriel-vasile/mimetype"
	"github.com/joho/godotenv"

	"github.com/Ojas37/Legal-AI-Analyzer/config"
	"github.com/Ojas37/Legal-AI-Analyzer/model"
	"github.com/Ojas37/Legal-AI-Analyzer/pkg/logger"
	"github.com/Ojas37/Legal-AI-Analyzer/render"
	"github.com/Ojas37/Legal-AI-Analyzer/service"
	"github.com/Ojas37/Legal-AI-Analyzer/workflow"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	text := flag.String("text", "", "analyze the given plain text instead of a PDF file")
	flag.Usage = usage
	flag.Parse()

	// A missing .env is fine, values fall back to the config file
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Init(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	printer := render.NewPrinter(os.Stdout)
	client := service.NewAnalyzerClient(&cfg.API)

	ctx := context.Background()

	if *text != "" {
		result, err := client.AnalyzeText(ctx, *text)
		if err != nil {
			printer.Error(err.Error())
			os.Exit(1)
		}
		printer.Print(render.Render(result))
		return
	}

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	doc, file, err := openDocument(path)
	if err != nil {
		printer.Error(err.Error())
		os.Exit(1)
	}
	defer file.Close()

	poller := workflow.NewPoller(client, cfg.Poll.Interval(), cfg.Poll.MaxAttempts)
	controller := workflow.NewController(client, poller, printer.Progress)

	result, err := controller.Analyze(ctx, doc)
	printer.ProgressDone()
	if err != nil {
		printer.Error(err.Error())
		os.Exit(1)
	}

	printer.Print(render.Render(result))
}

// openDocument stats the file and sniffs its MIME type from content. The
// caller closes the returned file once the upload is done.
func openDocument(path string) (*model.Document, *os.File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot detect file type of %s: %w", path, err)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open %s: %w", path, err)
	}

	return &model.Document{
		Name:      info.Name(),
		MIMEType:  mtype.String(),
		SizeBytes: info.Size(),
		Content:   file,
	}, file, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] <document.pdf>\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Uploads a PDF to the analysis service and renders the results.\n\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
}
