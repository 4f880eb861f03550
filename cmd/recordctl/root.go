package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	record "github.com/awslabs/record-go"
	"github.com/awslabs/record-go/document"
	documentjson "github.com/awslabs/record-go/document/json"
	documentyaml "github.com/awslabs/record-go/document/yaml"
	"github.com/awslabs/record-go/logging"
	"github.com/awslabs/record-go/logging/zaplogger"
	"github.com/awslabs/record-go/model"
)

// app carries what every subcommand needs once flags are resolved.
type app struct {
	cfg    Config
	stdin  io.Reader
	stdout io.Writer

	schema *record.Schema
}

func newRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout}
	var flush func()

	root := &cobra.Command{
		Use:           "recordctl",
		Short:         "`recordctl` converts record payloads described by a YAML model",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v, err := newViper(cmd.Flags())
			if err != nil {
				return err
			}
			a.cfg.InitFromViper(v)
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			var logger logging.Logger
			logger, flush = newLogger(a.cfg, stderr)

			m, err := model.LoadFile(a.cfg.Model)
			if err != nil {
				return err
			}
			s, ok := m.Shape(a.cfg.Shape)
			if !ok {
				return fmt.Errorf("model %s has no shape %s", a.cfg.Model, a.cfg.Shape)
			}
			if s.Type() != record.ShapeTypeStructure {
				return fmt.Errorf("shape %s is a %v, not a structure", a.cfg.Shape, s.Type())
			}
			a.schema = s

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx = zaplogger.ContextWithFields(ctx, "shape", s.ID().String())
			cmd.SetContext(logging.SetLogger(ctx, logger))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if flush != nil {
				flush()
			}
		},
	}

	a.cfg.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newDecodeCommand(a),
		newEncodeCommand(a),
		newHeadersCommand(a),
		newQueryCommand(a),
	)
	return root
}

// readPayload reads the payload named by path, "-" or no path reads stdin.
func (a *app) readPayload(args []string) (document.Value, error) {
	var (
		p   []byte
		err error
	)
	if len(args) == 0 || args[0] == "-" {
		p, err = io.ReadAll(a.stdin)
	} else {
		p, err = os.ReadFile(args[0])
	}
	if err != nil {
		return document.Value{}, fmt.Errorf("failed to read payload, %w", err)
	}

	if a.cfg.InputFormat == formatYAML {
		return documentyaml.Decode(p)
	}
	return documentjson.Decode(p)
}

func (a *app) documentOptions(ctx context.Context) func(*record.DocumentOptions) {
	return func(o *record.DocumentOptions) {
		o.UseJSONName = a.cfg.JSONName
		o.Logger = logging.GetLogger(ctx)
		if a.cfg.StrictUnknown {
			o.UnknownFields = record.UnknownFieldsError
		}
	}
}

// decodeRecord reads the payload into a record of the configured shape.
func (a *app) decodeRecord(cmd *cobra.Command, args []string) (*record.Record, error) {
	v, err := a.readPayload(args)
	if err != nil {
		return nil, err
	}
	return record.FromDocument(a.schema, v, a.documentOptions(cmd.Context()))
}

func (a *app) writeDocument(v document.Value) error {
	var (
		p   []byte
		err error
	)
	if a.cfg.OutputFormat == formatYAML {
		p, err = documentyaml.Encode(v)
	} else {
		p, err = documentjson.NewEncoder(func(o *documentjson.EncoderOptions) {
			o.Indent = "  "
		}).Encode(v)
		p = append(p, '\n')
	}
	if err != nil {
		return err
	}
	_, err = a.stdout.Write(p)
	return err
}
