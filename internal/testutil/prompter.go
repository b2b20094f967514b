package testutil

import "io"

// ScriptedPrompter answers prompts from a fixed list of replies and returns
// io.EOF once the list is exhausted, like a closed stdin.
type ScriptedPrompter struct {
	replies []string
	// Prompts records every prompt text asked, in order.
	Prompts []string
}

// NewScriptedPrompter returns a ScriptedPrompter that replays replies.
func NewScriptedPrompter(replies ...string) *ScriptedPrompter {
	return &ScriptedPrompter{replies: replies}
}

// Ask records prompt and returns the next scripted reply.
func (p *ScriptedPrompter) Ask(prompt string) (string, error) {
	p.Prompts = append(p.Prompts, prompt)
	if len(p.replies) == 0 {
		return "", io.EOF
	}
	reply := p.replies[0]
	p.replies = p.replies[1:]
	return reply, nil
}
