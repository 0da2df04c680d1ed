// Command structindex generates positional field access for struct
// declarations.
package main

import (
	"fmt"
	"os"

	"github.com/sdboyer/structindex/cmd/structindex/cmd"
	"github.com/sdboyer/structindex/internal/logging"
)

func main() {
	err := cmd.NewRootCmd().Execute()
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
