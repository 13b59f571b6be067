package promote

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"ami-promoter/cmd/common"
	"ami-promoter/promoter"
)

type Options struct {
	common.BaseOptions
	common.ConfigOptions
}

func New() *cobra.Command {
	o := Options{}

	cmd := &cobra.Command{
		Use:   "promote",
		Short: "Copy the newest golden image to the destination region",
		Long: `Finds the newest image tagged as golden in the source region, requests
a copy in the destination region and tags the copy with the source tags
plus a SourceAmi tag. The copy is not waited for.`,
		PreRun: func(cmd *cobra.Command, args []string) {
			o.ConfigureLogging()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.Run(cmd, args)
		},
	}

	o.BaseOptions.SetFlags(cmd.Flags())
	o.ConfigOptions.SetFlags(cmd.Flags())
	return cmd
}

func (o *Options) Run(cmd *cobra.Command, args []string) error {
	ctx, cancel := o.Context(cmd)
	defer cancel()

	p, err := promoter.Open(ctx, o.Config(), o.ClientOptions()...)
	if err != nil {
		return err
	}

	result, err := p.Promote(ctx)
	if err != nil {
		return err
	}

	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(output))
	return nil
}
