package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aretw0/automaton"
	"github.com/aretw0/automaton/pkg/adapters/memory"
	"github.com/aretw0/automaton/pkg/domain"
	"github.com/aretw0/automaton/pkg/dsl"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	b := dsl.New("div3").Sigma('0', '1')
	b.Add("q0").Start().Final().
		On('0', "q0").
		On('1', "q1").
		Add("q1").
		On('0', "q2").
		On('1', "q0").
		Add("q2").
		On('0', "q1").
		On('1', "q2")

	cat, err := automaton.New("", automaton.WithLoader(memory.NewStore(b.Definition())))
	require.NoError(t, err)
	return NewServer(cat)
}

func call(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func text(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)
	content, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])
	return content.Text
}

func TestHandleList(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleList(context.Background(), call(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `["div3"]`, text(t, result))
}

func TestHandleDescribe(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	result, err := s.handleDescribe(ctx, call(map[string]any{"name": "div3"}))
	require.NoError(t, err)
	assert.Contains(t, text(t, result), "Q={q0q1q2}\n")

	result, err = s.handleDescribe(ctx, call(map[string]any{"name": "div3", "format": "json"}))
	require.NoError(t, err)
	var def domain.Definition
	require.NoError(t, json.Unmarshal([]byte(text(t, result)), &def))
	assert.Equal(t, []string{"q0"}, def.Final)

	result, err = s.handleDescribe(ctx, call(map[string]any{"name": "nope"}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHandleAccepts(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	resp, err := s.handleAccepts(ctx, call(nil), map[string]interface{}{"name": "div3", "input": "1001"})
	require.NoError(t, err)
	assert.True(t, resp.Accepted)
	assert.Equal(t, 4, resp.Consumed)

	resp, err = s.handleAccepts(ctx, call(nil), map[string]interface{}{"name": "div3", "input": "1x"})
	require.NoError(t, err)
	assert.False(t, resp.Accepted)
	assert.Equal(t, 1, resp.Consumed)
	assert.NotEmpty(t, resp.Reason)

	_, err = s.handleAccepts(ctx, call(nil), map[string]interface{}{"name": "nope", "input": ""})
	assert.ErrorIs(t, err, domain.ErrAutomatonNotFound)
}

func TestHandleSwap(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	result, err := s.handleSwap(ctx, call(map[string]any{"name": "div3", "a": "0", "b": "1"}))
	require.NoError(t, err)
	assert.Contains(t, text(t, result), "q0\tq1\tq0\n")

	result, err = s.handleSwap(ctx, call(map[string]any{"name": "div3", "a": "", "b": "1"}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHandleGraph(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleGraph(context.Background(), call(map[string]any{"name": "div3", "input": "10"}))
	require.NoError(t, err)
	out := text(t, result)
	assert.Contains(t, out, "graph LR")
	assert.Contains(t, out, "class s2 current;")
}

func TestHandleCheck(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	valid := `{"states":["s"],"sigma":["a"],"start":"s","final":["s"],
		"transitions":[{"from":"s","to":"s","on":"a"}],
		"cases":[{"input":"aa","accept":true}]}`
	resp, err := s.handleCheck(ctx, call(nil), map[string]interface{}{"definition": valid})
	require.NoError(t, err)
	assert.True(t, resp.Valid)
	assert.Empty(t, resp.Problems)
	assert.Contains(t, resp.Canonical, "Q={s}")

	failing := `{"states":["s"],"sigma":["a"],"start":"s",
		"cases":[{"input":"","accept":true},{"input":"a","accept":true}]}`
	resp, err = s.handleCheck(ctx, call(nil), map[string]interface{}{"definition": failing})
	require.NoError(t, err)
	assert.False(t, resp.Valid)
	assert.Len(t, resp.Problems, 2)

	invalid := `{"states":["s","s"],"sigma":["ab"]}`
	resp, err = s.handleCheck(ctx, call(nil), map[string]interface{}{"definition": invalid})
	require.NoError(t, err)
	assert.False(t, resp.Valid)
	assert.Len(t, resp.Problems, 2)

	resp, err = s.handleCheck(ctx, call(nil), map[string]interface{}{"definition": "not json"})
	require.NoError(t, err)
	assert.False(t, resp.Valid)
	assert.Len(t, resp.Problems, 1)
}
