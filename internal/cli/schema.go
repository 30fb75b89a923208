package cli

import (
	"github.com/spf13/cobra"

	"github.com/personakit/personakit/pkg/charfile"
	"github.com/personakit/personakit/pkg/charschema"
)

// NewSchemaCmd returns the schema command.
func NewSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the character file JSON Schema",
		RunE: func(cc *cobra.Command, _ []string) error {
			data, err := charschema.GenerateJSONSchema()
			if err != nil {
				return err
			}

			cc.Println(string(data))

			return nil
		},
	}
}

// NewSampleCmd returns the sample command.
func NewSampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sample",
		Short: "Print the bundled sample character file",
		Run: func(cc *cobra.Command, _ []string) {
			cc.Print(string(charfile.Sample()))
		},
	}
}
