// Command md5 computes the MD5 digest of a message supplied inline or
// as a file, printing it to stdout or writing it to a file.
package main

import (
	"fmt"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/hexsum/md5/internal/cli"
)

func main() {
	app := kingpin.New("md5", "Compute the MD5 digest of a message.")
	app.UsageWriter(os.Stderr)
	app.ErrorWriter(os.Stderr)
	cmd := cli.NewCommand(app)

	if _, err := app.Parse(os.Args[1:]); err != nil {
		fatalUsage(app, err)
	}

	req, err := cmd.Validate()
	if err != nil {
		fatalUsage(app, err)
	}

	if err := req.Run(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "md5:", err)
		os.Exit(1)
	}
}

func fatalUsage(app *kingpin.Application, err error) {
	fmt.Fprintln(os.Stderr, "md5:", err)
	app.Usage(nil)
	os.Exit(1)
}
