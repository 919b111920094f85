package recipemd

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-yaml"
)

// Frontmatter is the YAML metadata block note-taking tools index.
type Frontmatter struct {
	Title    string   `yaml:"title"`
	Source   string   `yaml:"source,omitempty"`
	Servings string   `yaml:"servings,omitempty"`
	PrepTime string   `yaml:"prep_time,omitempty"`
	CookTime string   `yaml:"cook_time,omitempty"`
	Created  string   `yaml:"created,omitempty"`
	Tags     []string `yaml:"tags,omitempty"`
}

type Document struct {
	Frontmatter Frontmatter
	// display-ready ingredient lines, in recipe order
	Ingredients  []string
	Instructions []string
}

// Render produces a Markdown document with a YAML frontmatter block.
// Writing it anywhere is the caller's business.
func Render(doc Document) ([]byte, error) {
	frontmatter, err := yaml.Marshal(doc.Frontmatter)
	if err != nil {
		return nil, fmt.Errorf("marshal frontmatter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(frontmatter)
	buf.WriteString("---\n\n")
	fmt.Fprintf(&buf, "# %s\n", doc.Frontmatter.Title)

	buf.WriteString("\n## Ingredients\n\n")
	for _, line := range doc.Ingredients {
		fmt.Fprintf(&buf, "- %s\n", line)
	}

	buf.WriteString("\n## Instructions\n\n")
	for i, step := range doc.Instructions {
		fmt.Fprintf(&buf, "%d. %s\n", i+1, step)
	}

	return buf.Bytes(), nil
}
