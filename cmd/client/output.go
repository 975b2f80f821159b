package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/MKhiriev/go-books-api/internal/adapter"
	"github.com/MKhiriev/go-books-api/models"
)

// jsonResult is what --json prints for every command.
type jsonResult struct {
	Message     string `json:"message,omitempty"`
	ETag        string `json:"etag,omitempty"`
	NotModified bool   `json:"not_modified,omitempty"`
	Data        any    `json:"data,omitempty"`
}

func printJSON[T any](w io.Writer, r adapter.Result[T]) error {
	out := jsonResult{Message: r.Message, ETag: r.ETag, NotModified: r.NotModified}
	if !r.NotModified {
		out.Data = r.Data
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// printHeader writes the envelope message and the validator, if any.
func printHeader[T any](w io.Writer, r adapter.Result[T]) {
	if r.NotModified {
		fmt.Fprintln(w, "Not modified")
	} else if r.Message != "" {
		fmt.Fprintln(w, r.Message)
	}
	if r.ETag != "" {
		fmt.Fprintf(w, "ETag: %s\n", r.ETag)
	}
}

func printBooks(w io.Writer, books []models.Book) error {
	if len(books) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tAUTHOR\tCATEGORY\tYEAR\tPRICE")
	for _, b := range books {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			b.ID, b.Title, b.Author, b.Category, yearString(b.Year), strconv.FormatFloat(b.Price, 'f', 2, 64))
	}
	return tw.Flush()
}

func yearString(year int) string {
	if year == 0 {
		return "-"
	}
	return strconv.Itoa(year)
}
