// Package chatsvc - Test flatten transcript thành prompt theo protocol gốc.
package chatsvc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	chatdto "github.com/werbhq/schello-public/internal/api/chat/dto"
)

func TestBuildPrompt_FlattensTranscript(t *testing.T) {
	entries := []chatdto.TranscriptEntry{
		{Role: chatdto.RoleAI, Message: "Hello, I am your AI Substance Abuse Counselor. How can I help you?"},
		{Role: chatdto.RoleUser, Message: "I need help"},
	}

	prompt := BuildPrompt(entries)

	assert.True(t, strings.HasPrefix(prompt, basePrompt), "prompt phải bắt đầu bằng base prompt")
	assert.Contains(t, prompt, "AI:Hello, I am your AI Substance Abuse Counselor. How can I help you?")
	assert.Contains(t, prompt, "USER:I need help")
	assert.True(t, strings.HasSuffix(prompt, "AI:"), "prompt phải kết thúc bằng AI: để provider điền lượt tiếp")
}

func TestBuildPrompt_OrderPreserved(t *testing.T) {
	entries := []chatdto.TranscriptEntry{
		{Role: chatdto.RoleUser, Message: "một"},
		{Role: chatdto.RoleAI, Message: "hai"},
		{Role: chatdto.RoleUser, Message: "ba"},
	}

	prompt := BuildPrompt(entries)
	first := strings.Index(prompt, "USER:một")
	second := strings.Index(prompt, "AI:hai")
	third := strings.Index(prompt, "USER:ba")

	assert.Greater(t, first, -1)
	assert.Greater(t, second, first)
	assert.Greater(t, third, second)
}

func TestBuildPrompt_EmptyTranscript(t *testing.T) {
	prompt := BuildPrompt(nil)
	assert.Equal(t, basePrompt+" AI:", prompt)
}
