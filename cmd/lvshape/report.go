// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvshape/geom"
	"github.com/katalvlaran/lvshape/query"
	"github.com/katalvlaran/lvshape/render"
)

func newReportCmd(a *app) *cobra.Command {
	var (
		plane   string
		offset  float64
		sortBy  string
		reverse bool
	)

	cmd := &cobra.Command{
		Use:   "report [file]",
		Short: "Print metrics for every valid shape and list invalid lines",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("plane") {
				a.cfg.Cut.Plane = plane
			}
			if flags.Changed("offset") {
				a.cfg.Cut.Offset = offset
			}
			if flags.Changed("sort") {
				a.cfg.Sort = sortBy
			}

			p, err := geom.ParsePlane(a.cfg.Cut.Plane)
			if err != nil {
				return err
			}
			cmp, err := query.ParseComparator(a.cfg.Sort)
			if err != nil {
				return err
			}
			if reverse {
				cmp = query.Reverse(cmp)
			}

			res, repo, store, err := a.load(args)
			if err != nil {
				return err
			}

			r := render.New(cmd.OutOrStdout(),
				render.WithColor(a.colored()),
				render.WithCut(p, a.cfg.Cut.Offset),
				render.WithMetrics(store))
			if err := r.Shapes(repo.Sort(cmp)); err != nil {
				return err
			}
			return r.Errors(res.Errors)
		},
	}

	f := cmd.Flags()
	f.StringVar(&plane, "plane", "", "cut plane for the volume ratio: XY|XZ|YZ")
	f.Float64Var(&offset, "offset", 0, "cut plane offset from point1 along the plane normal")
	f.StringVar(&sortBy, "sort", "", "order: id|name|x|y")
	f.BoolVar(&reverse, "reverse", false, "reverse the order")
	return cmd
}
