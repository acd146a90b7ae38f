package flatcompat

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/flatcompat/pkg/compat"
	"github.com/arthur-debert/flatcompat/pkg/config"
	"github.com/arthur-debert/flatcompat/pkg/envs"
	"github.com/arthur-debert/flatcompat/pkg/resolver"
)

func newTranslateCmd() *cobra.Command {
	var (
		format   string
		envFiles []string
	)

	cmd := &cobra.Command{
		Use:   "translate <config-file>",
		Short: MsgTranslateShort,
		Long:  MsgTranslateLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			workDir, err := os.Getwd()
			if err != nil {
				return err
			}

			cfg, err := config.Load(workDir)
			if err != nil {
				return err
			}
			if format != "" {
				cfg.Output.Format = format
			}

			table, err := loadEnvTable(envFiles)
			if err != nil {
				return err
			}

			userConfig, err := resolver.LoadFile(args[0])
			if err != nil {
				return err
			}

			c := compat.New(compat.Options{
				BaseDirectory: workDir,
				Environments:  table,
			})
			elements, err := c.Config(userConfig)
			if err != nil {
				return err
			}

			return writeElements(cmd.OutOrStdout(), elements, cfg.Output)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", MsgFlagFormat)
	cmd.Flags().StringArrayVar(&envFiles, "envs", nil, MsgFlagEnvs)

	return cmd
}

// loadEnvTable merges extension tables onto the builtin table
func loadEnvTable(paths []string) (envs.Table, error) {
	table := envs.Builtin()
	for _, path := range paths {
		extra, err := envs.LoadFile(path)
		if err != nil {
			return nil, err
		}
		table = table.Merge(extra)
	}
	return table, nil
}
