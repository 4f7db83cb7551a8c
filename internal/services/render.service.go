package services

import (
	"fmt"
	"strings"

	"promptstudio/internal/models"
)

// SelectedFile is one file included in a rendered prompt document.
type SelectedFile struct {
	Path    string `json:"path"`
	Content string `json:"content"`
	Tokens  int    `json:"tokens"`
}

// RenderMarkdown assembles the selection into a Markdown document: a
// summary table followed by one fenced section per file.
func RenderMarkdown(files []SelectedFile) string {
	var sb strings.Builder

	sb.WriteString("# Prompt\n\n")
	sb.WriteString("## Selected Files\n\n")
	sb.WriteString("| Path | Tokens |\n")
	sb.WriteString("| --- | --- |\n")
	total := 0
	for _, file := range files {
		fmt.Fprintf(&sb, "| %s | %d |\n", file.Path, file.Tokens)
		total += file.Tokens
	}
	fmt.Fprintf(&sb, "| **Total** | **%d** |\n\n", total)

	for _, file := range files {
		fmt.Fprintf(&sb, "## %s\n\n", file.Path)
		sb.WriteString("```\n")
		sb.WriteString(file.Content)
		if !strings.HasSuffix(file.Content, "\n") {
			sb.WriteString("\n")
		}
		sb.WriteString("```\n\n")
	}

	return sb.String()
}

// xmlSection maps a prompt category to its document section tag.
func xmlSection(category models.PromptCategory) string {
	switch category {
	case models.CategoryPrompt:
		return "purpose"
	case models.CategoryInstructions:
		return "instructions"
	case models.CategoryPRD:
		return "prd"
	case models.CategoryExample:
		return "examples"
	}
	return "codebase"
}

var xmlSectionOrder = []string{"purpose", "instructions", "prd", "codebase", "examples"}

// RenderXML assembles the selection into a tag-delimited document with
// purpose, instructions, prd, codebase and examples sections. Each file's
// basename is matched against the prompt-record category map; files
// without a category land in the codebase section. Content is embedded
// verbatim: the output is a prompt scaffold, not strict XML.
func RenderXML(files []SelectedFile, categories map[string]models.PromptCategory) string {
	sections := make(map[string][]SelectedFile, len(xmlSectionOrder))
	for _, file := range files {
		section := "codebase"
		if category, ok := categories[baseName(file.Path)]; ok {
			section = xmlSection(category)
		}
		sections[section] = append(sections[section], file)
	}

	var sb strings.Builder
	sb.WriteString("<prompt>\n")
	for _, section := range xmlSectionOrder {
		grouped := sections[section]
		if len(grouped) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "  <%s>\n", section)
		for _, file := range grouped {
			fmt.Fprintf(&sb, "    <file path=%q>\n", file.Path)
			sb.WriteString(file.Content)
			if !strings.HasSuffix(file.Content, "\n") {
				sb.WriteString("\n")
			}
			sb.WriteString("    </file>\n")
		}
		fmt.Fprintf(&sb, "  </%s>\n", section)
	}
	sb.WriteString("</prompt>\n")

	return sb.String()
}

// CategoryMap indexes prompt records by filename for the XML renderer.
func CategoryMap(prompts []models.PromptRecord) map[string]models.PromptCategory {
	categories := make(map[string]models.PromptCategory, len(prompts))
	for _, prompt := range prompts {
		categories[prompt.Filename] = prompt.Category
	}
	return categories
}
