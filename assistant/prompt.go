package assistant

import (
	"fmt"
	"strings"

	"github.com/BALAJIISWAROOP/Snap-Shots/models"
)

// PromptStarters are the canned questions offered before the first turn.
// They go through the same Submit path as typed questions.
var PromptStarters = []string{
	"What is the main theme of this series?",
	"Describe the main character's journey.",
	"Is this a good series for comedy fans?",
	"Tell me a fun fact based on the synopsis.",
}

// BuildPrompt renders the single-shot grounding prompt: the series metadata
// as authoritative context, then the literal user question, under an
// instruction that forbids inventing facts.
func BuildPrompt(series models.Series, question string) string {
	episodes := make([]string, len(series.Episodes))
	for i, e := range series.Episodes {
		episodes[i] = fmt.Sprintf("- %s (%s)", e.Title, e.Duration)
	}

	return fmt.Sprintf(`You are a cinematic expert and a helpful assistant for 'Snapshots', a streaming platform for short series.
Your task is to answer user questions about a specific series based ONLY on the information provided below.
Do not invent any details. If the information is not available in the context, clearly state that.
Keep your answers concise, engaging, and in a slightly cinematic tone.

---
SERIES INFORMATION:
Title: %s
Creator: %s
Genre: %s
Synopsis: %s
Cast: %s
Episodes:
%s
---

USER QUESTION:
%s
`,
		series.Title,
		series.Creator,
		series.Genre,
		series.Synopsis,
		strings.Join(series.Cast, ", "),
		strings.Join(episodes, "\n"),
		question,
	)
}
