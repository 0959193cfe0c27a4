package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"version-counter/core/storage"

	"golang.org/x/term"
)

// Prompter collects values from the operator during bootstrap.
type Prompter interface {
	// Ask reads a visible value.
	Ask(label string) (string, error)
	// AskSecret reads a value without echoing it.
	AskSecret(label string) (string, error)
	// Echo shows a message to the operator.
	Echo(message string)
}

// TerminalPrompter prompts on a reader/writer pair, typically stdin/stdout.
// Secrets are read with echo disabled when the input is a terminal.
type TerminalPrompter struct {
	in       *bufio.Reader
	out      io.Writer
	fd       int
	terminal bool
}

// NewTerminalPrompter creates a prompter reading from in and writing to out.
func NewTerminalPrompter(in io.Reader, out io.Writer) *TerminalPrompter {
	p := &TerminalPrompter{
		in:  bufio.NewReader(in),
		out: out,
	}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.fd = int(f.Fd())
		p.terminal = true
	}
	return p
}

func (p *TerminalPrompter) Ask(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p *TerminalPrompter) AskSecret(label string) (string, error) {
	if !p.terminal {
		return p.Ask(label)
	}
	fmt.Fprintf(p.out, "%s: ", label)
	b, err := term.ReadPassword(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

func (p *TerminalPrompter) Echo(message string) {
	fmt.Fprintln(p.out, message)
}

type bucketField struct {
	name   string
	label  string
	secret bool
	set    func(*storage.Config, string)
}

// bucketFields is the prompt order.
var bucketFields = []bucketField{
	{"region", "Region identifier", false, func(c *storage.Config, v string) { c.Region.Region = v }},
	{"endpoint", "Endpoint URL", false, func(c *storage.Config, v string) { c.Region.Endpoint = v }},
	{"name", "Bucket name", false, func(c *storage.Config, v string) { c.Name = v }},
	{"access-key", "Access key", true, func(c *storage.Config, v string) { c.Credentials.AccessKey = v }},
	{"secret-key", "Secret key", true, func(c *storage.Config, v string) { c.Credentials.SecretKey = v }},
}

// completeBucket asks for every missing field of current and returns the
// completed copy. Empty answers are asked again.
func completeBucket(p Prompter, current *storage.Config, missing []string) (*storage.Config, error) {
	bucket := storage.Config{}
	if current != nil {
		bucket = *current
	}

	want := make(map[string]bool, len(missing))
	for _, m := range missing {
		want[m] = true
	}

	for _, f := range bucketFields {
		if !want[f.name] {
			continue
		}
		for {
			var (
				value string
				err   error
			)
			if f.secret {
				value, err = p.AskSecret(f.label)
			} else {
				value, err = p.Ask(f.label)
			}
			if err != nil {
				return nil, fmt.Errorf("reading %s: %w", f.name, err)
			}
			if value != "" {
				f.set(&bucket, value)
				break
			}
			p.Echo(f.label + " must not be empty.")
		}
	}

	p.Echo(fmt.Sprintf("Using bucket %q in region %q at %s", bucket.Name, bucket.Region.Region, bucket.Region.Endpoint))
	return &bucket, nil
}
