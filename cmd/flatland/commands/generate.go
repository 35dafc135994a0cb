package commands

import (
	"io"

	"github.com/spf13/cobra"

	"flatland/internal/domain"
	"flatland/internal/generate"
)

func generateCmd(stdout io.Writer) *cobra.Command {
	gen := generate.DefaultConfig()
	var angle int32

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic input document to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen.Angle = domain.Angle(angle)
			return generate.Write(stdout, gen)
		},
	}
	cmd.Flags().Int64Var(&gen.Seed, "seed", gen.Seed, "random seed (0 = random)")
	cmd.Flags().Int32Var(&angle, "angle", int32(gen.Angle), "light angle in degrees")
	cmd.Flags().IntVar(&gen.Count, "count", gen.Count, "number of inhabitants")
	cmd.Flags().IntVar(&gen.Spacing, "spacing", gen.Spacing, "maximum gap between neighbours")
	return cmd
}
