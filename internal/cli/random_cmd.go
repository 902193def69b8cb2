// SPDX-License-Identifier: MIT
package cli

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlath/builder"
	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/lsap"
)

// newRandomCmd wires the random subcommand: build a complete K_{n1,n2}
// bipartite fixture with integer weights in [min, max), then either print it
// or solve it immediately depending on --solve.
func newRandomCmd() *cobra.Command {
	var n1, n2 int
	var seed int64
	var minWeight, maxWeight int64
	var solve bool

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate a random complete bipartite cost matrix",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			if maxWeight <= minWeight {
				return fmt.Errorf("lsapctl: --max-weight must be > --min-weight")
			}
			span := maxWeight - minWeight
			weightFn := func(r *rand.Rand) int64 { return minWeight + r.Int63n(span) }

			g, err := builder.BuildGraph(
				[]core.GraphOption{core.WithWeighted()},
				[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightFn(weightFn)},
				builder.CompleteBipartite(n1, n2),
			)
			if err != nil {
				return fmt.Errorf("lsapctl: random: %w", err)
			}
			rowIDs := idRange("L", n1)
			colIDs := idRange("R", n2)
			logger.WithField("n1", n1).WithField("n2", n2).WithField("seed", seed).Debug("lsapctl: generated bipartite fixture")

			if !solve {
				return printGraphEdges(g, rowIDs, colIDs)
			}

			res, err := lsap.SolveGraph(g, rowIDs, colIDs)
			if err != nil {
				return fmt.Errorf("lsapctl: solve random fixture: %w", err)
			}
			return writeResultJSON(res.Row4Col, res.Col4Row, res.U, res.V)
		},
	}

	cmd.Flags().IntVar(&n1, "n1", 3, "left partition size")
	cmd.Flags().IntVar(&n2, "n2", 3, "right partition size (must be >= n1)")
	cmd.Flags().Int64Var(&seed, "seed", 1, "RNG seed for deterministic weight draws")
	cmd.Flags().Int64Var(&minWeight, "min-weight", 0, "minimum edge weight (inclusive)")
	cmd.Flags().Int64Var(&maxWeight, "max-weight", 20, "maximum edge weight (exclusive)")
	cmd.Flags().BoolVar(&solve, "solve", false, "solve the generated fixture instead of printing its edges")

	return cmd
}

func idRange(prefix string, n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("%s%d", prefix, i)
	}
	return ids
}

func printGraphEdges(g *core.Graph, rowIDs, colIDs []string) error {
	rows := make(map[string]bool, len(rowIDs))
	for _, id := range rowIDs {
		rows[id] = true
	}
	for _, e := range g.Edges() {
		if rows[e.From] {
			fmt.Printf("%s,%s,%d\n", e.From, e.To, e.Weight)
		}
	}
	return nil
}
