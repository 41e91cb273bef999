package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stakeSwap/internal/amount"
	"stakeSwap/internal/pool"
)

func newCurveCmd() *cobra.Command {
	curveCmd := &cobra.Command{
		Use:   "curve",
		Short: "Print the fee curve over a reserve sweep",
		RunE:  runCurve,
	}

	curveCmd.Flags().Uint64("min-fee", 0, "fee at or above the liquidity target (1000000 = 100%)")
	curveCmd.Flags().Uint64("max-fee", 0, "fee at empty reserve (1000000 = 100%)")
	curveCmd.Flags().Uint64("liquidity-target", 0, "underlying reserve target")
	curveCmd.Flags().Int("steps", 10, "number of sweep steps up to the target")

	return curveCmd
}

func runCurve(cmd *cobra.Command, _ []string) error {
	minFee, _ := cmd.Flags().GetUint64("min-fee")
	maxFee, _ := cmd.Flags().GetUint64("max-fee")
	target, _ := cmd.Flags().GetUint64("liquidity-target")
	steps, _ := cmd.Flags().GetInt("steps")

	if target == 0 {
		return fmt.Errorf("liquidity target must be greater than zero")
	}
	if minFee > maxFee {
		return fmt.Errorf("min fee %d exceeds max fee %d", minFee, maxFee)
	}
	if steps <= 0 {
		return fmt.Errorf("steps must be positive")
	}

	fmt.Printf("%-20s %-12s %s\n", "reserve", "fee", "fee %")
	for i := 0; i <= steps; i++ {
		reserve := target / uint64(steps) * uint64(i)
		if i == steps {
			reserve = target
		}
		fee := pool.FeeCurve(
			amount.Fee(minFee),
			amount.Fee(maxFee),
			amount.TokenAmount(target),
			amount.TokenAmount(reserve),
		)
		fmt.Printf("%-20d %-12d %.4f%%\n", reserve, fee.Raw(), float64(fee.Raw())/amount.Scale*100)
	}

	return nil
}
