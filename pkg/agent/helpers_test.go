package agent

import (
	"context"
	"errors"

	"github.com/hector-oviedo/open-research/pkg/llm"
)

// scriptedCaller replays canned responses in order and records every request.
type scriptedCaller struct {
	responses []llm.Response
	errs      []error
	calls     []llm.Request
}

func (c *scriptedCaller) ChatCompletion(_ context.Context, req llm.Request) (llm.Response, error) {
	c.calls = append(c.calls, req)
	i := len(c.calls) - 1
	if i < len(c.errs) && c.errs[i] != nil {
		return llm.Response{}, c.errs[i]
	}
	if i < len(c.responses) {
		return c.responses[i], nil
	}
	return llm.Response{}, errors.New("no scripted response left")
}

func respond(contents ...string) *scriptedCaller {
	responses := make([]llm.Response, 0, len(contents))
	for _, content := range contents {
		responses = append(responses, llm.Response{Content: content})
	}
	return &scriptedCaller{responses: responses}
}
