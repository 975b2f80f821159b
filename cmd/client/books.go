package main

import (
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-books-api/internal/adapter"
	"github.com/MKhiriev/go-books-api/models"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newBooksCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "books",
		Aliases: []string{"book"},
		Short:   "List, inspect and modify books",
	}

	cmd.AddCommand(
		newBooksListCmd(a),
		newBooksGetCmd(a),
		newBooksCreateCmd(a),
		newBooksUpdateCmd(a),
		newBooksDeleteCmd(a),
	)

	return cmd
}

func newBooksListCmd(a *app) *cobra.Command {
	var ifNoneMatch string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all books",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := a.client.ListBooks(cmd.Context(), ifNoneMatch)
			if err != nil {
				return err
			}
			if a.jsonOutput {
				return printJSON(a.out, result)
			}

			printHeader(a.out, result)
			return printBooks(a.out, result.Data)
		},
	}
	cmd.Flags().StringVar(&ifNoneMatch, "etag", "", "only fetch when the collection no longer matches this ETag")

	return cmd
}

func newBooksGetCmd(a *app) *cobra.Command {
	var ifNoneMatch string

	cmd := &cobra.Command{
		Use:   "get ID",
		Short: "Show one book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			result, err := a.client.GetBook(cmd.Context(), id, ifNoneMatch)
			if err != nil {
				return err
			}
			return a.printBook(result)
		},
	}
	cmd.Flags().StringVar(&ifNoneMatch, "etag", "", "only fetch when the book no longer matches this ETag")

	return cmd
}

func newBooksCreateCmd(a *app) *cobra.Command {
	var book models.Book

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a book",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := a.client.CreateBook(cmd.Context(), book)
			if err != nil {
				return err
			}
			return a.printBook(result)
		},
	}
	bindBookFlags(cmd.Flags(), &book)

	return cmd
}

func newBooksUpdateCmd(a *app) *cobra.Command {
	var (
		book    models.Book
		ifMatch string
	)

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Replace a book",
		Long: `Replace every field of a book. Fields left out are cleared.

Pass --if-match with the ETag from a previous get to refuse the update when
someone else changed the book in the meantime.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			result, err := a.client.UpdateBook(cmd.Context(), id, book, ifMatch)
			if err != nil {
				return err
			}
			return a.printBook(result)
		},
	}
	bindBookFlags(cmd.Flags(), &book)
	cmd.Flags().StringVar(&ifMatch, "if-match", "", "ETag the book must still have")

	return cmd
}

func newBooksDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Remove a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			result, err := a.client.DeleteBook(cmd.Context(), id)
			if err != nil {
				return err
			}
			if a.jsonOutput {
				return printJSON(a.out, result)
			}

			printHeader(a.out, result)
			return nil
		},
	}
}

func bindBookFlags(flags *pflag.FlagSet, book *models.Book) {
	flags.StringVar(&book.Title, "title", "", "book title")
	flags.StringVar(&book.Author, "author", "", "author name")
	flags.StringVar(&book.Category, "category", "", "genre or shelf label")
	flags.IntVar(&book.Year, "year", 0, "publication year")
	flags.Float64Var(&book.Price, "price", 0, "list price")
}

func (a *app) printBook(result adapter.Result[models.Book]) error {
	if a.jsonOutput {
		return printJSON(a.out, result)
	}

	printHeader(a.out, result)
	if result.NotModified {
		return nil
	}
	return printBooks(a.out, []models.Book{result.Data})
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid book id %q", raw)
	}
	return id, nil
}
