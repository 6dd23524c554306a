// Command htmlhelper truncates, cleans and strips HTML fragments read
// from a file or stdin, and converts form field names to ids and segments.
//
// Usage:
//
//	htmlhelper limit -n 100 page.html
//	htmlhelper clean < comment.html
//	htmlhelper strip page.html
//	htmlhelper name 'user[location][city]'
package main

import (
	"fmt"
	"os"

	"github.com/njchilds90/htmlhelper/internal/cli"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "htmlhelper: %v\n", err)
		os.Exit(1)
	}
}
