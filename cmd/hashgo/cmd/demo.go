package cmd

import (
	"fmt"

	"github.com/dchest/siphash"
	"github.com/spf13/cobra"

	"github.com/hupe1980/hashgo"
	"github.com/hupe1980/hashgo/fnv"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Hash a fixed sample tuple with each algorithm",
	Run: func(cmd *cobra.Command, args []string) {
		// A fixed (number, text) pair: tuples hash their components in
		// sequence, so this exercises the numeric and text rules at once.
		v := hashgo.Pair[hashgo.Uint64, hashgo.String]{
			First:  2016,
			Second: "wat",
		}

		fmt.Fprintf(cmd.OutOrStdout(), "fnv32:   %08x\n", fnv.Hash32(v))
		fmt.Fprintf(cmd.OutOrStdout(), "fnv64:   %016x\n", fnv.Hash64(v))

		// SipHash reference over the same pair, serialized naively.
		msg := fmt.Appendf(nil, "%d:%s", 2016, "wat")
		fmt.Fprintf(cmd.OutOrStdout(), "siphash: %016x\n",
			siphash.Hash(0x0706050403020100, 0x0f0e0d0c0b0a0908, msg))
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
