package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/personakit/personakit/pkg/charfile"
	"github.com/personakit/personakit/pkg/charschema"
	"github.com/personakit/personakit/pkg/jsonvalue"
	"github.com/personakit/personakit/pkg/personaerrors"
	"github.com/personakit/personakit/pkg/treetui"
)

const validateExample = `  # Validate a character file
  persona validate bot.json

  # Validate several files at once
  persona validate characters/*.json

  # Constrain clients and model providers to an allowed set
  persona validate --enums allowed.yaml bot.json
`

// Max concurrent file validations.
const validateConcurrency = 4

// NewValidateCmd returns the validate command.
func NewValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "validate <file>...",
		Short:   "Validate character files against the schema",
		Example: validateExample,
		Args:    cobra.MinimumNArgs(1),
		RunE:    runValidate,
	}

	cmd.Flags().BoolP("quiet", "q", false, "Plain output without panels")
	cmd.Flags().String("enums", "", "YAML file constraining allowed clients and model providers")

	if err := cmd.MarkFlagFilename("enums", "yaml", "yml"); err != nil {
		panic(err)
	}

	return cmd
}

// fileOutcome is the result of validating one file.
type fileOutcome struct {
	loadErr error
	doc     *jsonvalue.Value
	path    string
	hints   []string
	result  charschema.Result
}

func runValidate(cc *cobra.Command, args []string) error {
	var merr error

	flags := cc.Flags()

	quiet, err := flags.GetBool("quiet")
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	enumsPath, err := flags.GetString("enums")
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	if merr != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, merr)
	}

	schema, err := loadSchema(enumsPath)
	if err != nil {
		return err
	}

	outcomes := validateFiles(schema, args)

	pretty := !quiet && isatty.IsTerminal(os.Stdout.Fd())
	invalid := 0

	for _, o := range outcomes {
		switch {
		case o.loadErr != nil:
			invalid++

			cc.Printf("✗ %s: %v\n", o.path, o.loadErr)

		case o.result.Valid():
			cc.Println(renderSummary(o.path, o.result.Config, pretty))

			if pretty && o.doc != nil {
				cc.Println(treetui.Render(o.doc, false))
			}

		default:
			invalid++

			report := charschema.BuildReport(o.result.Errors)
			cc.Println(renderErrorReport(o.path, report, o.hints, pretty))
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%w: %d of %d files invalid", personaerrors.ErrInvalidCharacter, invalid, len(outcomes))
	}

	return nil
}

// loadSchema builds the validation schema, optionally constrained by an
// enums config file.
func loadSchema(path string) (*charschema.Schema, error) {
	if path == "" {
		return charschema.DefaultSchema, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", personaerrors.ErrReadFile, err)
	}

	cfg, err := charschema.ParseSchemaConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", personaerrors.ErrInvalidFormat, err)
	}

	return charschema.NewSchema(cfg), nil
}

// validateFiles validates each file with bounded concurrency, preserving
// input order in the returned outcomes.
func validateFiles(schema *charschema.Schema, paths []string) []fileOutcome {
	outcomes := make([]fileOutcome, len(paths))

	g := &errgroup.Group{}
	g.SetLimit(validateConcurrency)

	for i, path := range paths {
		g.Go(func() error {
			outcomes[i] = validateFile(schema, path)

			return nil
		})
	}

	// Workers never return errors; failures live in the outcomes.
	_ = g.Wait()

	return outcomes
}

func validateFile(schema *charschema.Schema, path string) fileOutcome {
	o := fileOutcome{path: path}

	data, err := charfile.Load(path)
	if err != nil {
		o.loadErr = err

		return o
	}

	o.result = schema.ValidateJSON(data)

	if doc, err := jsonvalue.Parse(data); err == nil {
		o.doc = doc
		o.hints = charschema.KeyHints(doc)
	}

	return o
}
