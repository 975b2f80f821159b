// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables (a .env file is loaded into the environment first)
//  3. JSON config file
//  4. Command-line flags
//
// The main entry points are [GetStructuredConfig] for server configuration
// and [GetClientConfig] for the bookctl client.
package config
