package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-fillets/internal/config"
	"github.com/vovakirdan/tui-fillets/internal/games/fillets/levels/formats"
)

var flagSchemaConfig bool

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the level file JSON schema",
	Long: `Print the JSON schema describing level files, for editor completion and
validation. With --default-config the default configuration file is printed instead.

Examples:
  fillets schema > level.schema.json
  fillets schema --default-config > ~/.fillets/configs/fillets.yaml`,
	Run: runSchema,
}

func init() {
	schemaCmd.Flags().BoolVar(&flagSchemaConfig, "default-config", false, "Print the default config YAML instead")
}

func runSchema(cmd *cobra.Command, args []string) {
	if flagSchemaConfig {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	data, err := formats.SchemaJSON()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(data))
}
