package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"ami-promoter/cmd/describe"
	"ami-promoter/cmd/promote"
)

func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ami-promoter",
		Short: "Promote golden images across regions",
		Long: `ami-promoter copies the newest golden image from ap-northeast-1 to
ap-northeast-3 and carries its tags over. Settings are read from the
TAG_KEY, TAG_VAL, NAME_PREFIX and DST_KMS environment variables, a .env
file in the working directory, or the equivalent flags.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// A missing .env file is fine; variables already set win.
			if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
				return err
			}
			return nil
		},
	}

	cmd.AddCommand(promote.New())
	cmd.AddCommand(describe.New())
	return cmd
}

func Execute() {
	if err := NewCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
