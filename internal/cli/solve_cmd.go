// SPDX-License-Identifier: MIT
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlath/lsap"
)

// newSolveCmd wires the solve subcommand. configPath is a pointer into
// root's persistent --config flag, read after cobra has parsed all flags.
func newSolveCmd(configPath *string) *cobra.Command {
	var maximize bool
	var forceDoubles bool

	cmd := &cobra.Command{
		Use:   "solve <cost-matrix.json|.csv>",
		Short: "Solve an assignment problem for a cost matrix file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			fileCfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("maximize") {
				maximize = fileCfg.Maximize
			}
			if !cmd.Flags().Changed("force-doubles") {
				forceDoubles = fileCfg.ForceDoubles
			}

			m, err := readCostMatrix(args[0])
			if err != nil {
				return err
			}
			logger.WithField("rows", m.Rows()).WithField("cols", m.Cols()).Debug("lsapctl: loaded cost matrix")

			opts := []lsap.Option{}
			if maximize {
				opts = append(opts, lsap.WithMaximize())
			}
			if forceDoubles {
				opts = append(opts, lsap.WithForceDoubles())
			}
			verbose := false
			if v, err := cmd.Root().PersistentFlags().GetBool("verbose"); err == nil && v {
				verbose = true
				opts = append(opts, lsap.WithVerbose())
			}
			if verbose {
				// m.String() renders the full row-major dump; cheap next to the
				// solve itself, and only built when --verbose asked for it.
				logger.Debug("lsapctl: cost matrix\n" + m.String())
			}

			res, err := lsap.SolveMatrix(m, opts...)
			if err != nil {
				return fmt.Errorf("lsapctl: solve: %w", err)
			}

			return writeResultJSON(res.Row4Col, res.Col4Row, res.U, res.V)
		},
	}

	cmd.Flags().BoolVar(&maximize, "maximize", false, "solve as a maximization problem instead of minimization")
	cmd.Flags().BoolVar(&forceDoubles, "force-doubles", false, "do not narrow the input matrix's precision")

	return cmd
}
