package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/xirr/docs"
	"github.com/google/subcommands"
)

type topicCmd struct {
	raw bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `irr topic [<topic>...]

Show documentation for the given topics, or the list of topics.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "Print raw markdown.")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var doc string
	var err error
	if topics := f.Args(); len(topics) > 0 {
		doc, err = docs.GetTopics(topics...)
	} else {
		doc, err = index()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.raw {
		fmt.Print(doc)
	} else {
		printMarkdown(doc)
	}
	return subcommands.ExitSuccess
}

// index returns the readme followed by the title of every topic.
func index() (string, error) {
	readme, err := docs.GetTopic("readme")
	if err != nil {
		return "", err
	}
	topics, err := docs.GetAllTopics()
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString(readme)
	b.WriteString("\n## Index\n\n")
	for _, topic := range topics {
		title, err := docs.Title(topic)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "* `%s`: %s\n", topic, title)
	}
	return b.String(), nil
}
