// Command bookctl is a command-line client for the books API.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-books-api/internal/adapter"
	"github.com/MKhiriev/go-books-api/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	a := &app{
		out:       os.Stdout,
		log:       logger.NewConsoleLogger("bookctl"),
		newClient: adapter.NewHTTPBooksClient,
	}

	if err := newRootCmd(a).Execute(); err != nil {
		os.Exit(1)
	}
}

func printBuildInfo(w io.Writer) {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Fprintf(w, "Build version: %s\n", buildVersion)
	fmt.Fprintf(w, "Build date: %s\n", buildDate)
	fmt.Fprintf(w, "Build commit: %s\n", buildCommit)
}
