package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/contractkit/pkg/config"
	"github.com/dmitrymomot/contractkit/pkg/logger"
	"github.com/dmitrymomot/contractkit/pkg/spec"
)

// ErrNonConforming is returned when at least one document fails its schema.
var ErrNonConforming = errors.New("documents do not conform to the schema")

func rootCmd(out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Check documents against contract schemas",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(out)

	cmd.AddCommand(validateCmd(), describeCmd(), &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	})
	return cmd
}

func validateCmd() *cobra.Command {
	var (
		schemaPath string
		envFiles   []string
	)

	cmd := &cobra.Command{
		Use:   "validate --schema SCHEMA FILE...",
		Short: "Validate every document in FILE against SCHEMA",
		Long: `Validate reads each FILE as a stream of YAML documents (JSON is accepted)
and checks every document against the schema document given by --schema.

Exit status is 1 when any document fails.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadEnv(envFiles...); err != nil {
				return err
			}
			settings, err := config.LoadSettings()
			if err != nil {
				return err
			}
			log := logger.New(append(settings.LoggerOptions(), logger.WithOutput(cmd.ErrOrStderr()))...)

			schema, err := spec.LoadSchemaFile(schemaPath)
			if err != nil {
				return err
			}
			return validateFiles(cmd.OutOrStdout(), log, schema, args)
		},
	}

	cmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "Schema document path (YAML)")
	cmd.Flags().StringSliceVar(&envFiles, "env-file", nil, "Additional .env files to load")
	_ = cmd.MarkFlagRequired("schema")
	return cmd
}

func describeCmd() *cobra.Command {
	var schemaPath string

	cmd := &cobra.Command{
		Use:   "describe --schema SCHEMA",
		Short: "List the fields of a schema document and their accepted alternatives",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			schema, err := spec.LoadSchemaFile(schemaPath)
			if err != nil {
				return err
			}
			describe(cmd.OutOrStdout(), schema)
			return nil
		},
	}

	cmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "Schema document path (YAML)")
	_ = cmd.MarkFlagRequired("schema")
	return cmd
}

// validateFiles reports one line per document and returns ErrNonConforming
// when any document fails.
func validateFiles(out io.Writer, log *slog.Logger, schema *spec.Schema, paths []string) error {
	alts := []spec.Spec{spec.Nested(schema)}
	failed := 0

	for _, path := range paths {
		docs, err := readDocuments(path)
		if err != nil {
			return err
		}
		for i, doc := range docs {
			ref := fmt.Sprintf("%s#%d", path, i+1)
			outcome, err := spec.Match(doc, alts...)
			switch {
			case err != nil:
				failed++
				fmt.Fprintf(out, "%s: FAIL: %v\n", ref, err)
			case !outcome.Status:
				failed++
				fmt.Fprintf(out, "%s: FAIL: %s\n", ref, outcome.Message)
			case outcome.Warning:
				log.Warn("document accepted with warning",
					slog.String("document", ref),
					logger.Reason(outcome.Message),
				)
				fmt.Fprintf(out, "%s: ok (warning: %s)\n", ref, outcome.Message)
			default:
				fmt.Fprintf(out, "%s: ok\n", ref)
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d failed", ErrNonConforming, failed)
	}
	return nil
}

func readDocuments(path string) ([]any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var docs []any
	dec := yaml.NewDecoder(f)
	for {
		var doc any
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func describe(out io.Writer, schema *spec.Schema) {
	for _, f := range schema.Fields() {
		marker := ""
		if f.Optional {
			marker = " (optional)"
		}
		fmt.Fprintf(out, "%s%s: %s\n", f.Name, marker, spec.Describe(f.Alternatives...))
	}
}
