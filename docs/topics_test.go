package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"
)

func TestTopics(t *testing.T) {
	// This test ensures that the documentation is consistent:
	// 1. Every topic listed in readme.md can be loaded and has a title.
	// 2. Every .md file (but readme.md) is listed in readme.md.

	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
			if _, err := Title(topic); err != nil {
				t.Errorf("failed to get title of %q: %v", topic, err)
			}
		})
	}

	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatalf("failed to glob *.md: %v", err)
	}
	for _, file := range files {
		topic := strings.TrimSuffix(filepath.Base(file), ".md")
		if topic != readme && !slices.Contains(topicsInReadme, topic) {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
}

func TestGetAllTopics(t *testing.T) {
	got, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() unexpected error: %v", err)
	}
	want := []string{"absolute", "config", "xirr"}
	if !slices.Equal(got, want) {
		t.Errorf("GetAllTopics() = %v, want %v", got, want)
	}
}

func TestTitle(t *testing.T) {
	got, err := Title("xirr")
	if err != nil {
		t.Fatalf("Title() unexpected error: %v", err)
	}
	if got != "Computing the XIRR" {
		t.Errorf("Title() = %q, want %q", got, "Computing the XIRR")
	}
}

func TestGetTopic_Unknown(t *testing.T) {
	if _, err := GetTopic("nope"); err == nil {
		t.Error("GetTopic(\"nope\") expected an error")
	}
}

func TestGetTopic_All(t *testing.T) {
	all, err := GetTopic("*")
	if err != nil {
		t.Fatalf("GetTopic(\"*\") unexpected error: %v", err)
	}
	for _, title := range []string{"# Computing the XIRR", "# Absolute return", "# Solver configuration"} {
		if !strings.Contains(all, title) {
			t.Errorf("GetTopic(\"*\") missing %q", title)
		}
	}
}
