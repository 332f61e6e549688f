package prompt

import (
	"fmt"
	"strings"

	"contentcraft-be/internal/apperrors"
)

// Mode selects which generation surface a prompt is built for.
type Mode string

const (
	ModeIdeas   Mode = "ideas"
	ModeOutline Mode = "outline"
	ModeDraft   Mode = "draft"
)

// Request carries the user parameters a prompt is assembled from.
// Niche is the only mandatory field across all modes.
type Request struct {
	Niche    string
	Audience string
	Title    string
	Outline  string
}

// Prompt is the fixed per-mode generation policy plus the assembled text.
// The builder itself is deterministic; randomness belongs to the provider.
type Prompt struct {
	System      string
	User        string
	MaxTokens   int
	Temperature float64
}

const (
	ideasSystem   = "You are an expert content strategist specializing in creating viral and engaging blog post titles that drive traffic and engagement."
	outlineSystem = "You are an expert content strategist who creates detailed, actionable blog post outlines that ensure comprehensive coverage and reader engagement."
	draftSystem   = "You are an expert copywriter and content creator who writes engaging, high-converting blog posts that provide real value to readers and rank well in search engines."
)

// Build assembles the system instruction, user prompt and generation
// parameters for the given mode. Optional fields are interpolated only
// when non-empty so the prompt never carries placeholder artifacts.
func Build(mode Mode, req Request) (*Prompt, error) {
	niche := strings.TrimSpace(req.Niche)
	if niche == "" {
		return nil, apperrors.NewValidation("Niche is required")
	}

	clean := Request{
		Niche:    niche,
		Audience: strings.TrimSpace(req.Audience),
		Title:    strings.TrimSpace(req.Title),
		Outline:  strings.TrimSpace(req.Outline),
	}

	switch mode {
	case ModeIdeas:
		return &Prompt{
			System:      ideasSystem,
			User:        buildIdeasPrompt(clean),
			MaxTokens:   800,
			Temperature: 0.8, // Higher creativity for ideas
		}, nil
	case ModeOutline:
		return &Prompt{
			System:      outlineSystem,
			User:        buildOutlinePrompt(clean),
			MaxTokens:   1000,
			Temperature: 0.6, // Balanced creativity and structure
		}, nil
	case ModeDraft:
		return &Prompt{
			System:      draftSystem,
			User:        buildDraftPrompt(clean),
			MaxTokens:   2500, // More tokens for full draft
			Temperature: 0.7, // Balanced for quality writing
		}, nil
	default:
		return nil, apperrors.NewValidation(fmt.Sprintf("Unknown generation mode: %s", mode))
	}
}

func buildIdeasPrompt(req Request) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate 10 engaging blog post title ideas for the niche: %q", req.Niche)
	if req.Audience != "" {
		fmt.Fprintf(&b, " targeting %s", req.Audience)
	}
	b.WriteString(".\n\n")

	b.WriteString("Make the titles:\n")
	b.WriteString("- Click-worthy and engaging\n")
	b.WriteString("- SEO-friendly\n")
	b.WriteString("- Specific and actionable\n")
	b.WriteString("- Varied in style (how-to, listicles, questions, case studies, etc.)\n\n")
	b.WriteString("Format as a numbered list with brief explanations for each title.")

	return b.String()
}

func buildOutlinePrompt(req Request) string {
	var b strings.Builder

	b.WriteString("Create a detailed blog post outline for ")
	if req.Title != "" {
		fmt.Fprintf(&b, "the title: %q", req.Title)
	} else {
		fmt.Fprintf(&b, "the niche: %q", req.Niche)
	}
	if req.Audience != "" {
		fmt.Fprintf(&b, " targeting %s", req.Audience)
	}
	b.WriteString(".\n\n")

	b.WriteString("Include:\n")
	b.WriteString("- A compelling title (if not provided)\n")
	b.WriteString("- Hook for the introduction\n")
	b.WriteString("- 4-6 main sections with:\n")
	b.WriteString("  * Clear subheadings\n")
	b.WriteString("  * 2-3 bullet points per section\n")
	b.WriteString("  * Key takeaways\n")
	b.WriteString("- Strong conclusion with call-to-action\n")
	b.WriteString("- Estimated word count for each section\n")
	b.WriteString("- SEO keywords to target\n\n")
	b.WriteString("Make it comprehensive, actionable, and structured for maximum reader engagement.")

	return b.String()
}

func buildDraftPrompt(req Request) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Write a complete, high-quality blog post for the niche: %q", req.Niche)
	if req.Audience != "" {
		fmt.Fprintf(&b, " targeting %s", req.Audience)
	}
	if req.Title != "" {
		fmt.Fprintf(&b, " with the title: %q", req.Title)
	}
	if req.Outline != "" {
		fmt.Fprintf(&b, "\n\nUse this outline as a guide:\n%s", req.Outline)
	}
	b.WriteString(".\n\n")

	b.WriteString("Requirements:\n")
	b.WriteString("- 1000-1500 words\n")
	b.WriteString("- Engaging introduction with a strong hook\n")
	b.WriteString("- Well-structured sections with clear subheadings (H2, H3)\n")
	b.WriteString("- Actionable tips and practical insights\n")
	b.WriteString("- Examples and case studies where relevant\n")
	b.WriteString("- Strong conclusion with clear call-to-action\n")
	b.WriteString("- SEO-optimized and reader-friendly\n")
	b.WriteString("- Professional yet conversational tone\n")
	b.WriteString("- Include relevant statistics or data points\n\n")
	b.WriteString("Make it comprehensive, valuable, and ready to publish.")

	return b.String()
}
