package main

import (
	"maps"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"fixture-generator/internal/analyze"
	"fixture-generator/internal/diagnostic"
	"fixture-generator/internal/match"
	"fixture-generator/options"
)

type overridesOptions struct {
	dir        string
	packages   []string
	strategies []string
}

func (a *app) newOverridesCmd() *cobra.Command {
	var opts overridesOptions

	cmd := &cobra.Command{
		Use:   "overrides FILE...",
		Short: "Validate YAML override files",
		Long: `Parses and validates each configuration file. With --packages the types
and fields the overrides name are looked up in the loaded packages, and the
attributes are checked against the field types.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runOverrides(cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.dir, "dir", "", "directory the package patterns are resolved in")
	cmd.Flags().StringSliceVar(&opts.packages, "packages", nil, "packages declaring the overridden types")
	cmd.Flags().StringSliceVar(&opts.strategies, "strategies", nil, "registered strategy names")

	return cmd
}

type loaded struct {
	cfg options.Config
	err error
}

func (a *app) runOverrides(cmd *cobra.Command, opts overridesOptions, files []string) error {
	var (
		g       errgroup.Group
		graph   *analyze.TypeGraph
		results = make([]loaded, len(files))
	)

	if len(opts.packages) > 0 {
		g.Go(func() error {
			analyzer := analyze.NewAnalyzer()
			analyzer.Dir = opts.dir

			var err error
			graph, err = analyzer.LoadPackages(opts.packages...)
			return err
		})
	}

	for i, file := range files {
		g.Go(func() error {
			cfg, err := options.Load(file)
			results[i] = loaded{cfg: cfg, err: err}
			a.logger.Debug("config loaded", zap.String("file", file), zap.Error(err))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	var diags diagnostic.Diagnostics
	for i, file := range files {
		if err := results[i].err; err != nil {
			diags.AddError("invalid_config", err.Error(), file, "")
			continue
		}

		checkConfig(&diags, results[i].cfg, graph, opts.strategies, file)
	}

	return summarize(cmd.OutOrStdout(), &diags, "overrides")
}

// checkConfig validates the overrides of a loaded configuration. Without a
// graph only strategy names are checked.
func checkConfig(diags *diagnostic.Diagnostics, cfg options.Config, graph *analyze.TypeGraph, strategies []string, source string) {
	stringer := analyze.NewTypeStringer()

	for _, o := range cfg.Overrides {
		var fields map[string]*analyze.FieldInfo
		if graph != nil {
			info, ok := graph.Lookup(o.Type)
			switch {
			case !ok:
				diags.AddError("unknown_type", "type "+o.Type+" is not declared in the loaded packages", source, o.Type,
					match.Suggest(o.Type, graph.Names(), match.DefaultThreshold, 3)...)
				continue
			case info.Kind != analyze.TypeKindStruct:
				underlying := info
				if info.Underlying != nil {
					underlying = info.Underlying
				}
				diags.AddError("not_a_struct", "type "+o.Type+" is "+stringer.TypeString(underlying)+", not a struct", source, o.Type)
				continue
			}
			fields = fieldsOf(info)
		}

		for _, name := range slices.Sorted(maps.Keys(o.Fields)) {
			path := o.Type + "." + name

			ov, err := o.Fields[name].Override()
			if err != nil {
				diags.AddError("invalid_tag", err.Error(), source, path)
				continue
			}

			if graph == nil {
				checkStrategies(diags, ov, strategies, source, path)
				continue
			}

			field, ok := fields[name]
			if !ok {
				diags.AddWarning("unknown_field", "no field "+name+" in "+o.Type, source, path,
					match.Suggest(name, slices.Sorted(maps.Keys(fields)), match.DefaultThreshold, 3)...)
				continue
			}

			checkOverride(diags, ov, field, strategies, source, path)
		}
	}
}
