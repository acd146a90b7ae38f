package flatcompat

import (
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/flatcompat/pkg/config"
)

func newGenConfigCmd() *cobra.Command {
	var effective bool

	cmd := &cobra.Command{
		Use:   "gen-config",
		Short: MsgGenConfigShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !effective {
				cmd.Print(config.GetDefaultConfigContent())
				return nil
			}

			// resolve the effective config: defaults, file, env vars
			workDir, err := os.Getwd()
			if err != nil {
				return err
			}
			cfg, err := config.Load(workDir)
			if err != nil {
				return err
			}

			data, err := toml.Marshal(cfg)
			if err != nil {
				return err
			}
			cmd.Print(string(data))
			return nil
		},
	}

	cmd.Flags().BoolVar(&effective, "effective", false,
		"Print the effective configuration after file and env overrides")

	return cmd
}
