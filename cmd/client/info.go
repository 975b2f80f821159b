// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print client and server build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printBuildInfo(a.out)

			result, err := a.client.Version(cmd.Context())
			if err != nil {
				return err
			}
			if a.jsonOutput {
				return printJSON(a.out, result)
			}

			fmt.Fprintf(a.out, "Server version: %s\n", result.Data.Version)
			return nil
		},
	}
}

func newHealthCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server and storage status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := a.client.Health(cmd.Context())
			if err != nil {
				return err
			}
			if a.jsonOutput {
				return printJSON(a.out, result)
			}

			fmt.Fprintf(a.out, "Status:  %s\nStorage: %s\n", result.Data.Status, result.Data.Storage)
			return nil
		},
	}
}
