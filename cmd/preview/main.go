// Command preview renders a landing page source to static HTML so authors
// can inspect the layout a given state produces without mounting the page in
// a host application.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"

	landing "github.com/goliatone/go-landing"
	"github.com/goliatone/go-landing/pkg/page"
	"github.com/goliatone/go-landing/pkg/ui"
)

type assignList []page.Assignment

func (a *assignList) String() string {
	parts := make([]string, 0, len(*a))
	for _, assignment := range *a {
		parts = append(parts, assignment.Test+"="+assignment.Variant)
	}
	return strings.Join(parts, ",")
}

func (a *assignList) Set(value string) error {
	test, variant, ok := strings.Cut(value, "=")
	if !ok || strings.TrimSpace(test) == "" || strings.TrimSpace(variant) == "" {
		return fmt.Errorf("expected test=variant, got %q", value)
	}
	*a = append(*a, page.Assignment{
		Test:    strings.TrimSpace(test),
		Variant: strings.TrimSpace(variant),
	})
	return nil
}

func main() {
	var assignments assignList

	var (
		filePath    = flag.String("file", "", "Landing page source to render")
		emailStatus = flag.String("email-status", "idle", "Email capture status: idle, sending, accepted, rejected")
		emailDraft  = flag.String("email", "", "Current email draft text")
		outPath     = flag.String("out", "", "Write HTML here instead of stdout")
		logLevel    = flag.String("log-level", "info", "Log level for the gologger provider")
		logFormat   = flag.String("log-format", "console", "Log format: json, console, pretty")
	)
	flag.Var(&assignments, "assign", "Experiment assignment as test=variant (repeatable)")

	flag.Parse()

	if *filePath == "" {
		log.Fatalf("--file is required")
	}

	status, ok := page.ParseEmailStatus(*emailStatus)
	if !ok {
		log.Fatalf("unknown --email-status %q", *emailStatus)
	}

	source, err := os.ReadFile(*filePath)
	if err != nil {
		log.Fatalf("read page source: %v", err)
	}

	cfg := landing.DefaultConfig()
	cfg.Logging = landing.LoggingConfig{
		Provider: "gologger",
		Level:    *logLevel,
		Format:   *logFormat,
	}

	module, err := landing.New(cfg)
	if err != nil {
		log.Fatalf("bootstrap module: %v", err)
	}

	st := landing.State{
		Visitor:     uuid.New(),
		EmailDraft:  *emailDraft,
		EmailStatus: status,
		Experiments: assignments,
	}

	element, err := module.RenderPage(context.Background(), source, st)
	if err != nil {
		log.Fatalf("render page: %v", err)
	}

	html, err := ui.EncodeHTML(element)
	if err != nil {
		log.Fatalf("encode html: %v", err)
	}

	if *outPath == "" {
		fmt.Fprintln(os.Stdout, html)
		return
	}
	if err := os.WriteFile(*outPath, []byte(html+"\n"), 0o644); err != nil {
		log.Fatalf("write output: %v", err)
	}
}
