package fs

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

const frontmatterDelimiter = "---"

// splitFrontmatter separates YAML frontmatter from the Markdown body.
// Content without an opening delimiter is all body.
func splitFrontmatter(content []byte) (map[string]any, string, error) {
	reader := bufio.NewReader(bytes.NewReader(content))

	firstLine, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, "", err
	}
	if strings.TrimSpace(firstLine) != frontmatterDelimiter {
		return nil, string(content), nil
	}

	var header strings.Builder
	for {
		line, err := reader.ReadString('\n')
		if strings.TrimSpace(line) == frontmatterDelimiter {
			break
		}
		if err != nil {
			return nil, "", fmt.Errorf("unterminated frontmatter: %w", err)
		}
		header.WriteString(line)
	}

	meta := make(map[string]any)
	if err := yaml.Unmarshal([]byte(header.String()), &meta); err != nil {
		return nil, "", fmt.Errorf("invalid frontmatter: %w", err)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, "", err
	}
	return meta, strings.TrimLeft(string(body), "\r\n"), nil
}

// entryFrontmatter is what capture writes at the top of an inbox body.
type entryFrontmatter struct {
	UUID string   `yaml:"uuid"`
	Date string   `yaml:"date,omitempty"`
	Mood *float64 `yaml:"mood"`
}

// joinFrontmatter renders frontmatter and body as one Markdown document.
func joinFrontmatter(meta entryFrontmatter, body string) ([]byte, error) {
	header, err := yaml.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("encoding frontmatter: %w", err)
	}
	var buf bytes.Buffer
	buf.WriteString(frontmatterDelimiter + "\n")
	buf.Write(header)
	buf.WriteString(frontmatterDelimiter + "\n\n")
	buf.WriteString(body)
	return buf.Bytes(), nil
}
