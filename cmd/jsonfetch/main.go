// Command jsonfetch issues one JSON request and prints the parsed response.
//
// Usage:
//
//	jsonfetch get    https://api.example.com/items --params query.yaml
//	jsonfetch post   https://api.example.com/items --data '{"name":"widget"}'
//	jsonfetch put    https://api.example.com/items/1 --params item.json
//	jsonfetch delete https://api.example.com/items/1
//	jsonfetch encode --params query.toml
//
// Settings come from the environment (see internal/config); --timeout and
// --dev override them.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/GriffinCanCode/jsonfetch/client"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode is 2 for a non-200 response and 1 for anything else.
func exitCode(err error) int {
	var httpErr *client.HTTPError
	if errors.As(err, &httpErr) {
		return 2
	}
	return 1
}
