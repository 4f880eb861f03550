package main

import (
	"fmt"
	"strings"

	gojson "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	record "github.com/awslabs/record-go"
	"github.com/awslabs/record-go/httpbinding"
	"github.com/awslabs/record-go/query"
	"github.com/awslabs/record-go/rand"
	"github.com/awslabs/record-go/traits"
)

const redacted = "*** Sensitive Information Redacted ***"

func newDecodeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decode [payload]",
		Short: "`decode` prints the presence and value of every member",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.decodeRecord(cmd, args)
			if err != nil {
				return err
			}

			obj, _ := r.ToDocument().AsObject()
			for _, m := range r.Schema().Members() {
				name := m.MemberName()
				if !r.IsSet(name) {
					fmt.Fprintf(a.stdout, "%s: <unset>\n", name)
					continue
				}
				if _, ok := record.SchemaTrait[*traits.Sensitive](m); ok {
					fmt.Fprintf(a.stdout, "%s: %s\n", name, redacted)
					continue
				}
				v, _ := obj.Get(name)
				fmt.Fprintf(a.stdout, "%s: %s\n", name, v.GoString())
			}
			return nil
		},
	}
}

func newEncodeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "encode [payload]",
		Short: "`encode` validates required members and re-serializes the payload canonically",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.decodeRecord(cmd, args)
			if err != nil {
				return err
			}
			if a.cfg.FillTokens {
				if err := record.ApplyIdempotencyTokens(r, rand.NewUUIDIdempotencyToken(rand.Reader)); err != nil {
					return err
				}
			}
			if err := record.ValidateRequired(r); err != nil {
				return err
			}
			return a.writeDocument(r.ToDocument(a.documentOptions(cmd.Context())))
		},
	}
}

func newHeadersCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "headers [payload]",
		Short: "`headers` prints the header fields the payload projects",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.decodeRecord(cmd, args)
			if err != nil {
				return err
			}
			fields := httpbinding.BuildHeaders(r)
			for _, f := range fields.All() {
				fmt.Fprintf(a.stdout, "%s: %s\n", f.Name(), f.Value())
			}
			return nil
		},
	}
}

func newQueryCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "query <expression> [payload]",
		Short: "`query` evaluates a JMESPath expression against the payload",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, err := query.Compile(args[0])
			if err != nil {
				return err
			}
			r, err := a.decodeRecord(cmd, args[1:])
			if err != nil {
				return err
			}

			out, err := expr.Search(r, a.documentOptions(cmd.Context()))
			if err != nil {
				return err
			}
			p, err := gojson.Marshal(out)
			if err != nil {
				return fmt.Errorf("failed to encode result, %w", err)
			}
			fmt.Fprintln(a.stdout, strings.TrimSpace(string(p)))
			return nil
		},
	}
}
