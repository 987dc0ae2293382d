package commands

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rentledger-dev/rentledger/internal/importer"
	"github.com/rentledger-dev/rentledger/internal/model"
)

func newImportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a JSON database or a tab-delimited ledger",
		Long: `Import replaces the current state with the contents of a file.

A .json file is read as a full database export; a .txt or .csv file is read
as a tab-delimited ledger whose rows are reverse-aggregated back into
property records. On any parse failure the current state is left untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}

			path := args[0]
			parser := importer.DefaultRegistry().ForPath(path)
			if parser == nil {
				return fmt.Errorf("unsupported import file %q (want .json, .txt, or .csv)", path)
			}

			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("opening %s: %w", path, err)
			}
			defer f.Close()

			imported, err := parser.Parse(f)
			if err != nil {
				log.WithError(err).WithField("file", path).Error("import failed; state unchanged")
				return fmt.Errorf("importing %s: %w", path, err)
			}

			e.store.Replace(*imported)
			if err := e.save(); err != nil {
				return err
			}
			e.audit("import", model.Property{}, fmt.Sprintf("%s: %d properties, %d journal rows",
				path, len(imported.Properties), len(imported.JournalEntries)))

			fmt.Printf("Imported %d properties and %d journal entries from %s\n",
				len(imported.Properties), len(imported.JournalEntries), path)
			return nil
		},
	}

	return cmd
}
