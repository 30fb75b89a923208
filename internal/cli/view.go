package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/personakit/personakit/pkg/charfile"
	"github.com/personakit/personakit/pkg/charschema"
	"github.com/personakit/personakit/pkg/jsonvalue"
	"github.com/personakit/personakit/pkg/personaerrors"
	"github.com/personakit/personakit/pkg/treetui"
)

const viewExample = `  # Validate a character file, then browse it as a collapsible tree
  persona view bot.json

  # Browse without validating
  persona view --raw notes.json

  # Start with every node expanded
  persona view --all bot.json
`

// NewViewCmd returns the view command.
func NewViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "view <file>",
		Short:   "Browse a character file as a collapsible tree",
		Example: viewExample,
		Args:    cobra.ExactArgs(1),
		RunE:    runView,
	}

	cmd.Flags().Bool("raw", false, "Skip validation and view the document as-is")
	cmd.Flags().Bool("expand", true, "Start with the root expanded")
	cmd.Flags().Bool("all", false, "Start with every node expanded")
	cmd.Flags().BoolP("quiet", "q", false, "Print the tree as plain text instead of opening the viewer")

	return cmd
}

func runView(cc *cobra.Command, args []string) error {
	var merr error

	flags := cc.Flags()

	raw, err := flags.GetBool("raw")
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	expand, err := flags.GetBool("expand")
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	all, err := flags.GetBool("all")
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	quiet, err := flags.GetBool("quiet")
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	if merr != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, merr)
	}

	path := args[0]
	pretty := !quiet && isatty.IsTerminal(os.Stdout.Fd())

	data, err := charfile.Load(path)
	if err != nil {
		return err
	}

	doc, err := jsonvalue.Parse(data)
	if err != nil {
		// Unparseable input gets the same report as validate.
		res := charschema.DefaultSchema.ValidateJSON(data)
		cc.Println(renderErrorReport(path, charschema.BuildReport(res.Errors), nil, pretty))

		return fmt.Errorf("%w: %s", personaerrors.ErrInvalidCharacter, path)
	}

	title := filepath.Base(path)

	if !raw {
		res := charschema.DefaultSchema.Validate(doc)
		if !res.Valid() {
			report := charschema.BuildReport(res.Errors)
			cc.Println(renderErrorReport(path, report, charschema.KeyHints(doc), pretty))

			return fmt.Errorf("%w: %s", personaerrors.ErrInvalidCharacter, path)
		}

		title = fmt.Sprintf("%s — %s", res.Config.Name, title)
	}

	if !quiet && isatty.IsTerminal(os.Stdout.Fd()) {
		m := treetui.NewModel(title, doc, expand)
		if all {
			m.ExpandAll()
		}

		return treetui.Run(os.Stdout, m)
	}

	cc.Println(treetui.Render(doc, all))

	return nil
}
