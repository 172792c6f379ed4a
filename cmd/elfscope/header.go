package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/samcharles93/elfscope/internal/logger"
	"github.com/samcharles93/elfscope/internal/objfile"
	"github.com/samcharles93/elfscope/pkg/ehdr"
)

type headerOptions struct {
	strict bool
	format string
}

type fileSummary struct {
	File   string       `json:"file"`
	Header ehdr.Summary `json:"header"`
}

func headerCmd() *cli.Command {
	var opts headerOptions

	return &cli.Command{
		Name:      "header",
		Aliases:   []string{"h"},
		Usage:     "Print the ELF header of one or more files",
		ArgsUsage: "FILE [FILE...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "strict",
				Usage:       "require the \\x7fELF magic and a 64-bit class",
				Destination: &opts.strict,
			},
			&cli.StringFlag{
				Name:        "format",
				Aliases:     []string{"o"},
				Usage:       "output format (text, json)",
				Value:       "text",
				Destination: &opts.format,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			applyHeaderConfig(cmd, appConfig, &opts.strict, &opts.format)

			paths := cmd.Args().Slice()
			if len(paths) == 0 {
				return cli.Exit("error: no input file", 2)
			}
			if err := reportHeaders(ctx, outWriter(cmd), paths, opts); err != nil {
				if isDecodeError(err) {
					return cli.Exit("error: invalid header: "+err.Error(), 1)
				}
				return cli.Exit("error: "+err.Error(), 1)
			}
			return nil
		},
	}
}

// reportHeaders loads, decodes and prints every path. It stops at the first
// failure; output already written for earlier files stays written.
func reportHeaders(ctx context.Context, w io.Writer, paths []string, opts headerOptions) error {
	log := logger.FromContext(ctx)

	format := strings.ToLower(opts.format)
	if format != "text" && format != "json" {
		return fmt.Errorf("unknown format %q (want text or json)", opts.format)
	}

	decode := ehdr.Decode
	if opts.strict {
		decode = ehdr.DecodeStrict
	}

	summaries := make([]fileSummary, 0, len(paths))
	for i, path := range paths {
		data, err := objfile.ReadHeader(path)
		if err != nil {
			log.Error("load failed", "path", path, "error", err)
			return err
		}
		h, err := decode(data)
		if err != nil {
			log.Error("decode failed", "path", path, "size", len(data), "error", err)
			return fmt.Errorf("%s: %w", path, err)
		}
		log.Debug("decoded header", "path", path, "class", h.Ident.Class, "data", h.Ident.Data, "machine", h.Machine)

		if format == "json" {
			summaries = append(summaries, fileSummary{File: path, Header: ehdr.Summarize(h)})
			continue
		}
		if len(paths) > 1 {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "File: %s\n", path)
		}
		if err := ehdr.Write(w, h); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	if format == "json" {
		var v any = summaries
		if len(summaries) == 1 {
			v = summaries[0]
		}
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s\n", b); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	return nil
}

// isDecodeError reports whether err came from header decoding rather than
// from loading the file.
func isDecodeError(err error) bool {
	return errors.Is(err, ehdr.ErrTruncatedInput) ||
		errors.Is(err, ehdr.ErrUnsupportedEncoding) ||
		errors.Is(err, ehdr.ErrInvalidMagic) ||
		errors.Is(err, ehdr.ErrUnsupportedClass)
}
