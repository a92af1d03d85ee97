package anthropic

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	calls int
	resp  *MessageResponse
	err   error
}

func (f *fakeClient) CreateMessage(ctx context.Context, req MessageRequest) (*MessageResponse, error) {
	f.calls++
	return f.resp, f.err
}

func TestMessageResponseText(t *testing.T) {
	resp := &MessageResponse{
		Content: []ContentBlock{
			{Type: "text", Text: "hello "},
			{Type: "tool_use", Text: "ignored"},
			{Type: "text", Text: "world"},
		},
	}
	assert.Equal(t, "hello world", resp.Text())
}

func TestEstimateCost(t *testing.T) {
	usage := TokenUsage{InputTokens: 1_000_000, OutputTokens: 1_000_000}

	cost := usage.EstimateCost("claude-sonnet-4-5-20250929")
	assert.InDelta(t, 18.0, cost, 0.001)

	assert.Equal(t, 0.0, usage.EstimateCost("unknown-model"))
}

func TestEstimateCostWithCache(t *testing.T) {
	usage := TokenUsage{
		CacheCreationInputTokens: 1_000_000,
		CacheReadInputTokens:     1_000_000,
	}

	// Write at 1.25x input rate, read at 0.1x.
	cost := usage.EstimateCost("claude-sonnet-4-5-20250929")
	assert.InDelta(t, 3.0*1.25+3.0*0.1, cost, 0.001)
}

func TestRateLimitedClientPassthrough(t *testing.T) {
	fake := &fakeClient{resp: &MessageResponse{ID: "msg_1"}}
	client := NewRateLimitedClient(fake, 600)

	resp, err := client.CreateMessage(context.Background(), MessageRequest{})
	require.NoError(t, err)
	assert.Equal(t, "msg_1", resp.ID)
	assert.Equal(t, 1, fake.calls)
}

func TestRateLimitedClientDisabled(t *testing.T) {
	fake := &fakeClient{}
	assert.Equal(t, Client(fake), NewRateLimitedClient(fake, 0))
}

func TestRateLimitedClientContextCancelled(t *testing.T) {
	fake := &fakeClient{resp: &MessageResponse{}}
	// One request per minute with the bucket already drained by the first call.
	client := NewRateLimitedClient(fake, 1)

	_, err := client.CreateMessage(context.Background(), MessageRequest{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = client.CreateMessage(ctx, MessageRequest{})
	assert.Error(t, err)
}

func TestBuildCachedSystemBlocks(t *testing.T) {
	blocks := BuildCachedSystemBlocks("system prompt")
	require.Len(t, blocks, 1)
	assert.Equal(t, "system prompt", blocks[0].Text)
	require.NotNil(t, blocks[0].CacheControl)
	assert.Equal(t, "1h", blocks[0].CacheControl.TTL)
}
