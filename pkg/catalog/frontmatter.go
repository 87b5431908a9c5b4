package catalog

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	frontmatterDelimiter = "---"
	bulletPrefix         = "- "
)

// ParseStage splits a stage file into YAML frontmatter and a markdown body.
// The body holds the summary paragraph followed by "- " bullet lines.
func ParseStage(content string) (*Stage, error) {
	content = strings.TrimSpace(content)

	if !strings.HasPrefix(content, frontmatterDelimiter) {
		return nil, fmt.Errorf("missing frontmatter")
	}

	rest := content[len(frontmatterDelimiter):]
	idx := strings.Index(rest, "\n"+frontmatterDelimiter)
	if idx == -1 {
		return nil, fmt.Errorf("unclosed frontmatter delimiter")
	}

	yamlContent := rest[:idx]
	body := rest[idx+len("\n"+frontmatterDelimiter):]

	var stage Stage
	if err := yaml.Unmarshal([]byte(yamlContent), &stage); err != nil {
		return nil, fmt.Errorf("parsing frontmatter YAML: %w", err)
	}

	stage.Summary, stage.Bullets = parseBody(body)
	return &stage, nil
}

func parseBody(body string) (string, []string) {
	var summary []string
	var bullets []string
	// inBullet is set while the previous line belonged to a bullet
	inBullet := false
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			inBullet = false
		case strings.HasPrefix(line, bulletPrefix):
			if item := strings.TrimSpace(line[len(bulletPrefix):]); item != "" {
				bullets = append(bullets, item)
				inBullet = true
			}
		case inBullet:
			// Wrapped continuation of the previous bullet
			bullets[len(bullets)-1] += " " + line
		default:
			summary = append(summary, line)
		}
	}
	return strings.Join(summary, " "), bullets
}

// SerializeStage renders a Stage back to markdown with YAML frontmatter.
func SerializeStage(s *Stage) (string, error) {
	yamlBytes, err := yaml.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("serializing frontmatter YAML: %w", err)
	}

	var b strings.Builder
	b.WriteString(frontmatterDelimiter)
	b.WriteString("\n")
	b.WriteString(strings.TrimRight(string(yamlBytes), "\n"))
	b.WriteString("\n")
	b.WriteString(frontmatterDelimiter)
	b.WriteString("\n")
	if s.Summary != "" {
		b.WriteString("\n")
		b.WriteString(s.Summary)
		b.WriteString("\n")
	}
	if len(s.Bullets) > 0 {
		b.WriteString("\n")
		for _, item := range s.Bullets {
			b.WriteString(bulletPrefix)
			b.WriteString(item)
			b.WriteString("\n")
		}
	}

	return b.String(), nil
}
