package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	goerrors "github.com/goliatone/go-errors"

	mdrender "github.com/goliatone/go-mdrender"
	"github.com/goliatone/go-mdrender/pkg/interfaces"
)

type previewRequest struct {
	File       string
	ContentDir string
	Engine     string
}

func (r previewRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Engine, validation.In("", "safe", "goldmark").
			Error("engine must be safe or goldmark")),
		validation.Field(&r.ContentDir, validation.By(func(value any) error {
			if r.File != "" && r.ContentDir == "" {
				return validation.NewError("mdrender.preview.content_dir_required", "content-dir is required when previewing a file")
			}
			return nil
		})),
	)
	if err == nil {
		return nil
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "preview input validation failed").
		WithTextCode("PREVIEW_VALIDATION_FAILED")
}

func main() {
	var (
		filePath   = flag.String("file", "", "Markdown file to preview (relative to the content root); reads stdin when empty")
		contentDir = flag.String("content-dir", "content", "Path to the markdown content root")
		engine     = flag.String("engine", "safe", "Rendering engine: safe or goldmark")
		hardWraps  = flag.Bool("hard-wraps", false, "Render newlines inside paragraphs as <br> elements")
	)

	flag.Parse()

	req := previewRequest{
		File:       *filePath,
		ContentDir: *contentDir,
		Engine:     *engine,
	}
	if err := req.Validate(); err != nil {
		log.Fatalf("validate input: %v", err)
	}

	cfg := mdrender.DefaultConfig()
	cfg.Render.Engine = req.Engine
	cfg.Render.HardWraps = *hardWraps
	cfg.Logging.Level = os.Getenv("LOG_LEVEL")
	cfg.Markdown.Enabled = req.File != ""
	cfg.Markdown.ContentDir = req.ContentDir

	module, err := mdrender.New(cfg)
	if err != nil {
		log.Fatalf("bootstrap module: %v", err)
	}

	ctx := mdrender.WithRequestID(context.Background(), "")

	if req.File == "" {
		renderStdin(ctx, module)
		return
	}

	doc, err := module.Markdown().Load(ctx, req.File, interfaces.LoadOptions{})
	if err != nil {
		log.Fatalf("load markdown document: %v", err)
	}

	fmt.Fprintf(os.Stdout, "Path: %s\nChecksum: %x\n\n", doc.FilePath, doc.Checksum)

	if doc.FrontMatter.Raw != nil {
		meta, err := json.MarshalIndent(doc.FrontMatter.Raw, "", "  ")
		if err == nil {
			fmt.Fprintf(os.Stdout, "Frontmatter:\n%s\n\n", meta)
		}
	}

	fmt.Fprintf(os.Stdout, "Rendered HTML:\n%s\n", string(doc.BodyHTML))
}

func renderStdin(ctx context.Context, module *mdrender.Module) {
	source, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatalf("read stdin: %v", err)
	}

	html, err := module.Render(ctx, string(source))
	if err != nil {
		log.Fatalf("render markdown: %v", err)
	}

	fmt.Fprintln(os.Stdout, html)
}
