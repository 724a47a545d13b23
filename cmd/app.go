// Package cmd implements the CLI application to compute rates of return.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/xirr"
	"github.com/google/subcommands"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Commands are the subcommands of the application.
// A main package registers them and calls Execute() on the user-selected one.
var Commands = []subcommands.Command{
	&xirrCmd{},
	&absoluteCmd{},
	&topicCmd{},
}

// printMarkdown renders md for the terminal, or prints it raw if it cannot.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// newLogger returns a development logger when verbose, and a no-op one otherwise.
func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create logger: %v\n", err)
		return zap.NewNop()
	}
	return logger
}

// config is the content of a solver configuration file.
type config struct {
	Method        string `yaml:"method"`
	Workers       int    `yaml:"workers"`
	MaxIterations int    `yaml:"max_iterations"`
}

// decodeConfig decodes a YAML configuration. An empty document is a valid, empty, configuration.
func decodeConfig(r io.Reader) (config, error) {
	var c config
	if err := yaml.NewDecoder(r).Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return c, nil
}

// loadConfig reads the configuration file at path.
func loadConfig(path string) (config, error) {
	f, err := os.Open(path)
	if err != nil {
		return config{}, err
	}
	defer f.Close()
	return decodeConfig(f)
}

// apply overrides the options set in c.
func (c config) apply(o *xirr.Options) error {
	if c.Method != "" {
		m, err := xirr.ParseMethod(c.Method)
		if err != nil {
			return err
		}
		o.Method = m
	}
	if c.Workers > 0 {
		o.Workers = c.Workers
	}
	if c.MaxIterations > 0 {
		o.MaxIterations = c.MaxIterations
	}
	return nil
}
