// Package cli wires the md5 command line surface: flag definitions,
// argument validation, and digest output routing.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/hexsum/md5"
)

// Command holds the raw flag values as kingpin parses them. Presence
// is tracked separately from the values so that --message="" still
// counts as a provided, empty message.
type Command struct {
	Message     string
	MessageFile string
	OutputFile  string

	HasMessage     bool
	HasMessageFile bool
	HasOutputFile  bool
}

// NewCommand registers the md5 flags on app. Unknown flags, malformed
// tokens, and repeated flags are rejected by kingpin during parsing,
// before any validation or hashing runs.
func NewCommand(app *kingpin.Application) *Command {
	c := new(Command)

	app.Flag("message", "Text whose bytes are the message to digest.").
		PlaceHolder("\"...\"").Action(noted(&c.HasMessage)).StringVar(&c.Message)
	app.Flag("messageFile", "Path to a file whose raw bytes are the message to digest.").
		PlaceHolder("\"...\"").Action(noted(&c.HasMessageFile)).StringVar(&c.MessageFile)
	app.Flag("outputFile", "Path to write the hex digest to instead of stdout.").
		PlaceHolder("\"...\"").Action(noted(&c.HasOutputFile)).StringVar(&c.OutputFile)

	return c
}

func noted(flag *bool) kingpin.Action {
	return func(*kingpin.ParseContext) error {
		*flag = true
		return nil
	}
}

// Validate enforces that exactly one message source was given and
// materializes the message bytes.
func (c *Command) Validate() (*Request, error) {
	if c.HasMessage && c.HasMessageFile {
		return nil, errors.New("both --message and --messageFile provided")
	}
	if !c.HasMessage && !c.HasMessageFile {
		return nil, errors.New("no message provided")
	}

	req := &Request{
		OutputFile: c.OutputFile,
		ToFile:     c.HasOutputFile,
	}

	if c.HasMessageFile {
		data, err := os.ReadFile(c.MessageFile)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to read message file %q", c.MessageFile)
		}
		req.Message = data
	} else {
		req.Message = []byte(c.Message)
	}

	return req, nil
}

// Request is a validated run: the message bytes and the destination
// for the digest.
type Request struct {
	Message    []byte
	OutputFile string
	ToFile     bool
}

// Run computes the digest and routes it to the selected destination.
// Console output goes to stdout.
func (r *Request) Run(stdout io.Writer) error {
	digest := md5.SumHex(r.Message)

	if !r.ToFile {
		_, err := fmt.Fprintf(stdout, "hash: %s\n", digest)
		return err
	}

	fmt.Fprintf(stdout, "Writing hash to %s...", r.OutputFile)
	if err := os.WriteFile(r.OutputFile, []byte(digest), 0644); err != nil {
		fmt.Fprintln(stdout)
		return errors.Wrapf(err, "unable to write output file %q", r.OutputFile)
	}
	fmt.Fprintln(stdout, " Done.")
	return nil
}
