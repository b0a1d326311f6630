// Package config provides configuration loading, merging, and validation
// facilities for the holidays client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Fields left empty after merging receive package defaults. The main entry
// point is [GetClientConfig], which returns the validated [ClientConfig]
// view consumed by the adapter, validator, and logger constructors.
package config
