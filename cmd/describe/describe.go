package describe

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"ami-promoter/cmd/common"
	"ami-promoter/promoter"
	"ami-promoter/promoter/aws/client"
)

type Options struct {
	common.BaseOptions
	common.ConfigOptions
}

func New() *cobra.Command {
	o := Options{}

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Show the configuration and the golden image candidates",
		Long: `Lists the golden images in the source region, newest first, and marks
the one a promotion would copy. Nothing is copied or tagged.`,
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

	cfg := o.Config()

	src, err := client.New(ctx, cfg.SourceRegion, o.ClientOptions()...)
	if err != nil {
		return err
	}

	account, err := src.Identity(ctx)
	if err != nil {
		return err
	}

	// Listing candidates never touches the destination region.
	images, err := promoter.New(src.Services.EC2, nil, cfg).Candidates(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Account:     %s\n", account)
	fmt.Fprintf(out, "Source:      %s\n", cfg.SourceRegion)
	fmt.Fprintf(out, "Destination: %s\n", cfg.DestinationRegion)
	fmt.Fprintf(out, "Filter:      tag:%s=%s\n", cfg.TagKey, cfg.TagValue)
	fmt.Fprintf(out, "Name prefix: %s\n", cfg.NamePrefix)
	if cfg.Encrypted() {
		fmt.Fprintf(out, "KMS key:     %s\n", cfg.KMSKeyID)
	} else {
		fmt.Fprintf(out, "KMS key:     (destination default)\n")
	}
	fmt.Fprintln(out)

	if len(images) == 0 {
		fmt.Fprintln(out, "No golden image.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "\tIMAGE\tCREATED\tNAME")
	for i, image := range images {
		marker := ""
		if i == 0 {
			marker = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", marker, image.ID, image.CreationDate, image.Name)
	}
	return w.Flush()
}
