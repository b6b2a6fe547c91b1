// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvshape/geom"
	"github.com/katalvlaran/lvshape/query"
	"github.com/katalvlaran/lvshape/render"
)

// rangeFlag is a pair of --min-X/--max-X flags; unset bounds are open.
type rangeFlag struct {
	name     string
	min, max float64
}

func (r *rangeFlag) register(f *pflag.FlagSet, what string) {
	f.Float64Var(&r.min, "min-"+r.name, math.Inf(-1), "minimum "+what)
	f.Float64Var(&r.max, "max-"+r.name, math.Inf(1), "maximum "+what)
}

func (r *rangeFlag) set(f *pflag.FlagSet) bool {
	return f.Changed("min-"+r.name) || f.Changed("max-"+r.name)
}

func (r *rangeFlag) rng() query.Range { return query.Range{Min: r.min, Max: r.max} }

func newQueryCmd(a *app) *cobra.Command {
	var (
		id, name      string
		firstQuadrant bool
		sortBy        string
		reverse       bool

		area      = rangeFlag{name: "area"}
		perimeter = rangeFlag{name: "perimeter"}
		volume    = rangeFlag{name: "volume"}
		distance  = rangeFlag{name: "distance"}
	)

	cmd := &cobra.Command{
		Use:   "query [file]",
		Short: "List shapes matching every given filter",
		Long: `Filters combine with AND. Metric filters read the cached metrics:
area applies to triangles and pyramids (surface area), perimeter to
triangles only, volume to pyramids only. --min-distance/--max-distance
match shapes with at least one vertex at that distance from the origin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			if f.Changed("sort") {
				a.cfg.Sort = sortBy
			}
			cmp, err := query.ParseComparator(a.cfg.Sort)
			if err != nil {
				return err
			}
			plane, err := geom.ParsePlane(a.cfg.Cut.Plane)
			if err != nil {
				return err
			}
			if reverse {
				cmp = query.Reverse(cmp)
			}

			_, repo, store, err := a.load(args)
			if err != nil {
				return err
			}

			var specs []query.Specification
			if f.Changed("id") {
				specs = append(specs, query.ByID{ID: id})
			}
			if f.Changed("name") {
				specs = append(specs, query.ByName{Name: name})
			}
			if firstQuadrant {
				specs = append(specs, query.InFirstQuadrant{})
			}
			if area.set(f) {
				specs = append(specs, query.AreaInRange{Source: store, Range: area.rng()})
			}
			if perimeter.set(f) {
				specs = append(specs, query.PerimeterInRange{Source: store, Range: perimeter.rng()})
			}
			if volume.set(f) {
				specs = append(specs, query.VolumeInRange{Source: store, Range: volume.rng()})
			}
			if distance.set(f) {
				specs = append(specs, query.DistanceFromOriginInRange{Range: distance.rng()})
			}

			spec := query.And(specs...)
			var matched []geom.Shape
			for _, s := range repo.Sort(cmp) {
				if spec.IsSatisfiedBy(s) {
					matched = append(matched, s)
				}
			}

			out := cmd.OutOrStdout()
			r := render.New(out,
				render.WithColor(a.colored()),
				render.WithCut(plane, a.cfg.Cut.Offset),
				render.WithMetrics(store))
			if err := r.Shapes(matched); err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "%d of %d shapes matched\n", len(matched), repo.Len())
			return err
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&id, "id", "", "exact shape id")
	fs.StringVar(&name, "name", "", "shape name: Triangle|Pyramid")
	fs.BoolVar(&firstQuadrant, "first-quadrant", false, "every vertex has x > 0 and y > 0")
	fs.StringVar(&sortBy, "sort", "", "order: id|name|x|y")
	fs.BoolVar(&reverse, "reverse", false, "reverse the order")
	area.register(fs, "area")
	perimeter.register(fs, "perimeter")
	volume.register(fs, "volume")
	distance.register(fs, "vertex distance from the origin")
	return cmd
}
