package main

import (
	"cmp"
	"maps"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fixture-generator/internal/analyze"
	"fixture-generator/internal/diagnostic"
)

type checkOptions struct {
	dir        string
	strategies []string
}

func (a *app) newCheckCmd() *cobra.Command {
	var opts checkOptions

	cmd := &cobra.Command{
		Use:   "check [packages...]",
		Short: "Validate the fixture struct tags of Go packages",
		Long: `Loads the given packages (default ".") and parses the fixture tag of every
field of every exported struct. Malformed tags and impossible values are
errors; attributes that have no effect on the field type are warnings.

With --strategies, strategy names the tags refer to are checked as well.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}

			return a.runCheck(cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.dir, "dir", "", "directory the package patterns are resolved in")
	cmd.Flags().StringSliceVar(&opts.strategies, "strategies", nil, "registered strategy names")

	return cmd
}

func (a *app) runCheck(cmd *cobra.Command, opts checkOptions, patterns []string) error {
	analyzer := analyze.NewAnalyzer()
	analyzer.Dir = opts.dir

	graph, err := analyzer.LoadPackages(patterns...)
	if err != nil {
		return err
	}

	var diags diagnostic.Diagnostics
	checkGraph(&diags, graph, opts.strategies)

	order, cyclic := analyze.DependencyOrder(graph)
	for _, id := range cyclic {
		diags.AddInfo("recursive_type", "holds itself through its fields, nesting stops at max_depth", id.PkgPath, id.Name)
	}

	a.logger.Debug("check finished",
		zap.Strings("patterns", patterns),
		zap.Int("types", len(graph.Types)),
		zap.Stringers("order", order),
		zap.Int("diagnostics", diags.Len()),
	)

	return summarize(cmd.OutOrStdout(), &diags, "check")
}

// checkGraph validates the fixture tags of every struct in the graph.
func checkGraph(diags *diagnostic.Diagnostics, graph *analyze.TypeGraph, strategies []string) {
	stringer := analyze.NewTypeStringer()

	ids := make([]analyze.TypeID, 0, len(graph.Types))
	for id := range graph.Types {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b analyze.TypeID) int {
		return cmp.Compare(a.String(), b.String())
	})

	for _, id := range ids {
		info := graph.Types[id]
		if info.Kind != analyze.TypeKindStruct {
			continue
		}

		paths := stringer.BuildFieldPaths(info, 0)
		for _, path := range slices.Sorted(maps.Keys(paths)) {
			field := paths[path]
			if _, ok := field.FixtureTag(); !ok {
				continue
			}

			ov, err := field.Override()
			if err != nil {
				diags.AddError("invalid_tag", err.Error(), id.PkgPath, path)
				continue
			}

			checkOverride(diags, ov, field, strategies, id.PkgPath, path)
		}
	}
}
