// Copyright (c) 2025 obtree authors
// SPDX-License-Identifier: MIT

// Command obtree is a small demonstration CLI over the obtree package:
// it builds an int set from a list of values and prints it, either as
// the nested-list debug dump or as JSON.
package main

import (
	"cmp"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/conradludgate/obtree"
	"github.com/spf13/cobra"
)

var (
	fanout  int
	verbose bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "obtree",
		Short:         "Build and inspect an in-memory ordered B-tree set",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}
	root.PersistentFlags().IntVar(&fanout, "fanout", 8, "B-tree fanout M (must be even, > 1)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newDumpCmd(), newJSONCmd())
	return root
}

func buildTree(values []string) (*obtree.Tree[int], error) {
	t := obtree.New[int](fanout, cmp.Compare[int])
	for _, s := range values {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("obtree: parse %q: %w", s, err)
		}
		slog.Debug("inserting", "value", v)
		t.Insert(v)
	}
	return t, nil
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump [values...]",
		Short: "insert the given integers and print the tree's nested-list dump",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := buildTree(args)
			if err != nil {
				return err
			}
			live, total := t.PoolStats()
			slog.Debug("pool stats", "live", live, "total", total)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), t.String())
			return err
		},
	}
}

func newJSONCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "json [values...]",
		Short: "insert the given integers and print the tree as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := buildTree(args)
			if err != nil {
				return err
			}
			buf, err := t.MarshalJSON()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(buf))
			return err
		},
	}
}
