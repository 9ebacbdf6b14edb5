// Package paramfile loads request parameters from files for the CLI.
//
// The format is chosen by extension:
//   - .json: key order is preserved as written
//   - .yaml, .yml: key order is preserved (goccy/go-yaml ordered maps)
//   - .toml: tables are decoded into maps, so keys come out sorted
//
// Every loader produces a params.Value ready for client.GetJSON and friends.
package paramfile
