// Command expensectl runs the extraction engine from the command line:
// statement files in, JSON records or the accounting CSV out.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
