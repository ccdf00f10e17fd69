package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"helixd/internal/dna"
)

// buildRootCmd constructs the Cobra command tree: the serve daemon plus a few
// sequence utilities handy for scripting and debugging.
func buildRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "helixd",
		Short:         "Gesture-controlled DNA visualization backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(buildServeCmd())
	root.AddCommand(buildSeqCmd())
	return root
}

func buildSeqCmd() *cobra.Command {
	seqCmd := &cobra.Command{
		Use:   "seq",
		Short: "Sequence utilities",
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("seq requires a subcommand: gen|validate")
		},
	}

	var length int
	gen := &cobra.Command{
		Use:     "gen",
		Short:   "Generate a random sequence and print it as JSON",
		Example: "  helixd seq gen --length 20",
		RunE: func(cmd *cobra.Command, args []string) error {
			if length < dna.MinLength || length > dna.MaxLength {
				return dna.ErrInvalidLength(length)
			}
			seq := dna.Build(dna.Random(length), dna.Geometry{
				HelixRadius:      2.5,
				BasePairDistance: 0.34,
			})
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(seq)
		},
	}
	gen.Flags().IntVar(&length, "length", 20, "Number of base pairs (1-100)")

	validate := &cobra.Command{
		Use:     "validate <sequence>",
		Short:   "Check a sequence against the DNA alphabet",
		Example: "  helixd seq validate ATGCATGC",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := dna.Validate(args[0])
			if err != nil {
				return err
			}
			if !v.Valid() {
				return fmt.Errorf("invalid bases found: %s", string(v.Invalid))
			}
			fmt.Printf("valid length=%d gc=%.1f%% tm=%.1f°C complement=%s\n",
				len(v.Sequence),
				dna.GCContent(v.Sequence),
				dna.MeltingTemperature(v.Sequence),
				dna.Complement(v.Sequence))
			return nil
		},
	}

	seqCmd.AddCommand(gen, validate)
	return seqCmd
}

// envOr returns the environment value for key, or def when unset.
func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
