package models

import (
	"bytes"
	"encoding/json"
)

// Tool-call envelope used by the voice assistant's function-calling
// mechanism. The assistant POSTs a message wrapping one or more tool calls;
// we answer with one result per call, matched by toolCallId.

type ToolCallPayload struct {
	Message ToolCallMessage `json:"message"`
}

type ToolCallMessage struct {
	ToolCalls []ToolCall `json:"toolCalls"`
}

type ToolCall struct {
	ID       string           `json:"id"`
	Function ToolCallFunction `json:"function"`
}

type ToolCallFunction struct {
	Name string `json:"name"`
	// Arguments arrives either as a JSON object or as a JSON string
	// containing an object, depending on the assistant's serializer.
	Arguments json.RawMessage `json:"arguments"`
}

// ArgumentsMap decodes the function arguments, tolerating both encodings.
// A missing or malformed arguments field yields an empty map, never an error,
// so a single bad tool call cannot fail the whole envelope.
func (f ToolCallFunction) ArgumentsMap() map[string]any {
	raw := bytes.TrimSpace(f.Arguments)
	if len(raw) == 0 {
		return map[string]any{}
	}
	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return map[string]any{}
		}
		raw = []byte(inner)
	}
	args := map[string]any{}
	if err := json.Unmarshal(raw, &args); err != nil {
		return map[string]any{}
	}
	return args
}

type ToolCallResponse struct {
	Results []ToolCallResult `json:"results"`
}

type ToolCallResult struct {
	ToolCallID string `json:"toolCallId"`
	Result     any    `json:"result"`
}
