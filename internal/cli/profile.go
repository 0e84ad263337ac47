package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/riskcalc/config"
)

func newProfileCmd(rc *RootConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the calculator profile file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init <path>",
		Short: "Write a default profile file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.Default().SaveToFile(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective profile (file + env + flags)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadProfile(rc)
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			cmd.OutOrStdout().Write(data)
			return nil
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}
