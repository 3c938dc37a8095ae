package main

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/viant/featsim/engine"
	"github.com/viant/featsim/pairwise"
	"github.com/viant/featsim/report"
)

const version = "0.1.0"

func (a *app) compareCmd() *cobra.Command {
	var (
		output   string
		parallel int
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare every configured pair of records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := a.loadDataSet()
			if err != nil {
				return err
			}
			ev, err := pairwise.NewEvaluator(ds.Schema())
			if err != nil {
				return err
			}
			rows, err := report.Build(cmd.Context(), ev, ds.ResolvePairs(),
				report.WithLogger(a.logger),
				report.WithParallelism(parallel),
			)
			if err != nil {
				return err
			}
			switch output {
			case "table":
				fmt.Fprintln(cmd.OutOrStdout(), report.RenderTable(rows))
				return nil
			case "json":
				return report.RenderJSON(cmd.OutOrStdout(), rows)
			default:
				return fmt.Errorf("unsupported output %q (want table or json)", output)
			}
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format: table or json")
	cmd.Flags().IntVarP(&parallel, "parallel", "p", 0, "pairs evaluated concurrently (0 = GOMAXPROCS)")
	return cmd
}

func (a *app) projectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "project",
		Short: "Show the vector, bitmask and set of every record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := a.loadDataSet()
			if err != nil {
				return err
			}
			schema := ds.Schema()
			t := newTable("record", "vector", "bits", "set")
			for _, r := range ds.Records {
				p := schema.Project(r.Weights)
				vec := make([]string, len(p.Vector))
				for i, v := range p.Vector {
					vec[i] = report.FormatValue(v)
				}
				t.Row(r.Label,
					"["+strings.Join(vec, ", ")+"]",
					p.BitString()+" ("+strconv.FormatUint(p.Bits, 10)+")",
					"{"+strings.Join(p.Set.Names(), ", ")+"}",
				)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "features: "+strings.Join(schema.Names(), ", "))
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
}

func (a *app) sqlCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sql QUERY",
		Short: "Run a SQL query over the projected records",
		Long: `Loads the data set into an in-memory table

  records(label TEXT, vector BLOB, bits INTEGER, feats TEXT)

and runs QUERY with the feat_euclidean, feat_manhattan, feat_cosine,
feat_hamming, feat_jaccard and feat_dice functions available.`,
		Example: `  featsim sql "SELECT a.label, b.label, feat_cosine(a.vector, b.vector)
    FROM records a JOIN records b ON a.label < b.label"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ds, err := a.loadDataSet()
			if err != nil {
				return err
			}
			if err := engine.RegisterMetricFunctions(); err != nil {
				return err
			}
			db, err := engine.OpenMemory()
			if err != nil {
				return err
			}
			defer db.Close()

			records := make([]engine.Labeled, 0, len(ds.Records))
			for _, r := range ds.Records {
				records = append(records, engine.Labeled{Label: r.Label, Record: r.Weights})
			}
			if err := engine.LoadRecords(ctx, db, ds.Schema(), records); err != nil {
				return err
			}
			a.logger.Debug("records loaded", "count", len(records))

			rows, err := db.QueryContext(ctx, args[0])
			if err != nil {
				return err
			}
			defer rows.Close()
			cols, err := rows.Columns()
			if err != nil {
				return err
			}
			t := newTable(cols...)
			for rows.Next() {
				values := make([]any, len(cols))
				ptrs := make([]any, len(cols))
				for i := range values {
					ptrs[i] = &values[i]
				}
				if err := rows.Scan(ptrs...); err != nil {
					return err
				}
				cells := make([]string, len(values))
				for i, v := range values {
					cells[i] = formatSQLValue(v)
				}
				t.Row(cells...)
			}
			if err := rows.Err(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "featsim %s\n", version)
		},
	}
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

func formatSQLValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case float64:
		return report.FormatValue(pairwise.Round(x))
	case int64:
		return strconv.FormatInt(x, 10)
	case []byte:
		return "x'" + hex.EncodeToString(x) + "'"
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}
