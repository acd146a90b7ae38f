package flatcompat

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/flatcompat/pkg/style"
)

func newEnvsCmd() *cobra.Command {
	var envFiles []string

	cmd := &cobra.Command{
		Use:   "envs",
		Short: MsgEnvsShort,
		Long:  MsgEnvsLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := loadEnvTable(envFiles)
			if err != nil {
				return err
			}

			names := make([]string, 0, len(table))
			for name := range table {
				names = append(names, name)
			}
			sort.Strings(names)

			cmd.Println(style.TitleStyle.Render("Known environments:"))
			for _, name := range names {
				cmd.Printf("  %s\n", name)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&envFiles, "envs", nil, MsgFlagEnvs)

	return cmd
}
