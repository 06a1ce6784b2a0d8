// Package prompt assembles the grounding prompt sent to the model.
//
// Assembly is a pure function of its inputs: the same instructions and
// knowledge base always produce the same prompt, so behavior changes only
// when the stored configuration changes.
package prompt

import "strings"

// knowledgePreamble introduces the knowledge base section and instructs the
// model to ground its answers in it.
const knowledgePreamble = "Hier is de kennisbank waar je je antwoorden op moet baseren:"

// delimiter fences the knowledge base so its content cannot bleed into the
// instruction text.
const delimiter = "---"

// Assemble builds the system prompt: the behavioral instructions first,
// then the knowledge base fenced between delimiters. The instructions come
// first so they frame how the knowledge is used.
func Assemble(instructions, knowledgeBase string) string {
	var b strings.Builder
	b.Grow(len(instructions) + len(knowledgeBase) + len(knowledgePreamble) + 16)

	b.WriteString(instructions)
	b.WriteString("\n\n")
	b.WriteString(knowledgePreamble)
	b.WriteString("\n")
	b.WriteString(delimiter)
	b.WriteString("\n")
	b.WriteString(knowledgeBase)
	b.WriteString("\n")
	b.WriteString(delimiter)

	return b.String()
}
