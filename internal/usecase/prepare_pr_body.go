package usecase

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"strings"
	"text/template"

	"github.com/prforge/prforge/internal/domain"
)

// PreparePRBodyUseCase renders the pull request description from a proposal.
type PreparePRBodyUseCase struct {
}

// sanitizeMarkdown sanitizes caller-supplied text to prevent template
// injection and XSS while preserving common markdown constructs.
func (uc *PreparePRBodyUseCase) sanitizeMarkdown(text string) string {
	if text == "" {
		return ""
	}
	// HTML escape first so no HTML/JavaScript survives.
	sanitized := html.EscapeString(text)
	// Unescape characters that are safe and needed for markdown rendering.
	// Angle brackets stay escaped.
	replacements := map[string]string{
		"&#34;": "\"",
		"&#39;": "'",
		"&amp;": "&",
	}
	lines := strings.Split(sanitized, "\n")
	for i, line := range lines {
		// Blockquote markers are only restored at the start of a line.
		if after, ok := strings.CutPrefix(line, "&gt; "); ok {
			lines[i] = "> " + after
			continue
		}
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(line, "#") ||
			strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
			for escaped, original := range replacements {
				lines[i] = strings.ReplaceAll(lines[i], escaped, original)
			}
		}
	}
	return strings.Join(lines, "\n")
}

// Execute runs the use case.
func (uc *PreparePRBodyUseCase) Execute(_ context.Context, proposal *domain.Proposal) (string, error) {
	if proposal == nil {
		return "", fmt.Errorf("proposal cannot be nil")
	}
	paths := make([]string, 0, len(proposal.Files))
	for _, file := range proposal.Files {
		paths = append(paths, uc.sanitizeMarkdown(file.Path))
	}
	safeData := struct {
		Body  string
		Files []string
		Head  string
	}{
		Body:  uc.sanitizeMarkdown(proposal.Body),
		Files: paths,
		Head:  uc.sanitizeMarkdown(proposal.HeadBranch),
	}

	tmpl := template.New("pr-body")
	tmpl = tmpl.Option("missingkey=error")
	parsedTmpl, err := tmpl.Parse(prBodyTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse PR body template: %w", err)
	}

	var buf bytes.Buffer
	if err := parsedTmpl.Execute(&buf, safeData); err != nil {
		return "", fmt.Errorf("failed to execute PR body template: %w", err)
	}

	// Final check: nothing template- or script-shaped may survive rendering.
	output := buf.String()
	if strings.Contains(strings.ToLower(output), "<script") ||
		strings.Contains(strings.ToLower(output), "javascript:") ||
		strings.Contains(output, "{{") || strings.Contains(output, "}}") {
		return "", fmt.Errorf("potential injection detected in PR body output")
	}

	return strings.TrimSpace(output) + "\n", nil
}

const prBodyTemplate = `
{{.Body}}

### Files changed

{{range .Files}}- {{.}}
{{end}}
Opened from branch {{.Head}}.
`
