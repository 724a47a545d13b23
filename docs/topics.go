// Package docs embeds the user documentation of the irr command.
package docs

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

//go:embed *.md
var docs embed.FS

// readme is the topic shown when none is asked for.
const readme = "readme"

// GetTopic returns the markdown content of a documentation topic.
//
// The special topic "*" returns all topics.
func GetTopic(topic string) (string, error) {
	if topic == "*" {
		topics, err := GetAllTopics()
		if err != nil {
			return "", err
		}
		return GetTopics(topics...)
	}
	content, err := docs.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", topic, err)
	}
	return string(content), nil
}

// GetTopics returns the content of several topics, one after the other.
func GetTopics(topics ...string) (string, error) {
	var b bytes.Buffer
	for _, topic := range topics {
		content, err := GetTopic(topic)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// GetAllTopics returns the sorted names of all topics but the readme.
func GetAllTopics() ([]string, error) {
	files, err := fs.Glob(docs, "*.md")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, file := range files {
		if topic := strings.TrimSuffix(path.Base(file), ".md"); topic != readme {
			topics = append(topics, topic)
		}
	}
	slices.Sort(topics)
	return topics, nil
}

// Title returns the text of the first level 1 heading of a topic.
func Title(topic string) (string, error) {
	content, err := GetTopic(topic)
	if err != nil {
		return "", err
	}
	source := []byte(content)
	root := goldmark.DefaultParser().Parse(text.NewReader(source))

	var title string
	err = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		h, ok := n.(*ast.Heading)
		if !entering || !ok || h.Level != 1 {
			return ast.WalkContinue, nil
		}
		var b strings.Builder
		for i := 0; i < h.Lines().Len(); i++ {
			line := h.Lines().At(i)
			b.Write(line.Value(source))
		}
		title = strings.TrimSpace(b.String())
		return ast.WalkStop, nil
	})
	if err != nil {
		return "", err
	}
	if title == "" {
		return "", fmt.Errorf("topic %q has no title", topic)
	}
	return title, nil
}
