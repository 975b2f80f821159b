// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/MKhiriev/go-books-api/internal/adapter"
	"github.com/MKhiriev/go-books-api/models"
	"github.com/spf13/cobra"
)

func newRegisterCmd(a *app) *cobra.Command {
	var req models.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and print its bearer token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := a.client.Register(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.printAuth(result)
		},
	}

	cmd.Flags().StringVar(&req.Username, "username", "", "account username")
	cmd.Flags().StringVar(&req.Email, "email", "", "account email")
	cmd.Flags().StringVar(&req.Password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLoginCmd(a *app) *cobra.Command {
	var req models.LoginRequest

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Exchange credentials for a bearer token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := a.client.Login(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.printAuth(result)
		},
	}

	cmd.Flags().StringVar(&req.Username, "username", "", "account username")
	cmd.Flags().StringVar(&req.Password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newWhoAmICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the identity bound to the current token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := a.client.Me(cmd.Context())
			if err != nil {
				return err
			}
			if a.jsonOutput {
				return printJSON(a.out, result)
			}

			fmt.Fprintf(a.out, "Username: %s\nEmail:    %s\nEnabled:  %t\n",
				result.Data.Username, result.Data.Email, result.Data.Enabled)
			return nil
		},
	}
}

func (a *app) printAuth(result adapter.Result[models.AuthResponse]) error {
	if a.jsonOutput {
		return printJSON(a.out, result)
	}

	printHeader(a.out, result)
	fmt.Fprintf(a.out, "Token: %s\n", a.client.Token())
	fmt.Fprintln(a.out, "Export it as BOOKCTL_TOKEN or pass it with --token.")
	return nil
}
