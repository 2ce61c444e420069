package chatsvc

import (
	"context"
	"strings"

	"github.com/sashabaranov/go-openai"

	chatdto "github.com/werbhq/schello-public/internal/api/chat/dto"
	"github.com/werbhq/schello-public/internal/common"
	"github.com/werbhq/schello-public/internal/global"
	"github.com/werbhq/schello-public/internal/logger"
)

// basePrompt là system prompt của counselor, giữ nguyên từ protocol gốc của client
const basePrompt = "The following is a conversation with an AI Substance Abuse Counselor and a USER. The AI is helpful, creative, clever, empathetic and very friendly. AI's objective is counsel the USER."

// CounselorService proxy hội thoại tới provider chat-completions tương thích OpenAI.
// Không lưu hội thoại, không session state: mỗi request mang toàn bộ transcript.
type CounselorService struct {
	client *openai.Client
	model  string
}

// NewCounselorService tạo mới CounselorService từ ServerConfig
func NewCounselorService() *CounselorService {
	cfg := openai.DefaultConfig(global.ServerConfig.OpenAI_APIKey)
	if global.ServerConfig.OpenAI_BaseURL != "" {
		cfg.BaseURL = global.ServerConfig.OpenAI_BaseURL
	}

	return &CounselorService{
		client: openai.NewClientWithConfig(cfg),
		model:  global.ServerConfig.OpenAI_Model,
	}
}

// BuildPrompt flatten transcript thành một prompt duy nhất theo protocol gốc:
// base prompt, các lượt dạng "ROLE:message", kết thúc bằng "AI:" để provider
// điền lượt tiếp theo. Nối bằng khoảng trắng.
func BuildPrompt(entries []chatdto.TranscriptEntry) string {
	parts := make([]string, 0, len(entries)+2)
	parts = append(parts, basePrompt)
	for _, entry := range entries {
		parts = append(parts, entry.Role+":"+entry.Message)
	}
	parts = append(parts, chatdto.RoleAI+":")
	return strings.Join(parts, " ")
}

// SendMessage gửi transcript tới provider và trả về lượt trả lời của counselor.
// Lỗi provider hoặc danh sách choices rỗng trả về ErrChatProxy; không bao giờ
// dùng reply text khi có lỗi.
func (s *CounselorService) SendMessage(ctx context.Context, input *chatdto.ChatMessageInput) (string, error) {
	prompt := BuildPrompt(input.Messages)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		MaxTokens:   512,
		Temperature: 0.7,
		TopP:        1,
	})
	if err != nil {
		logger.WithModule("chat").WithError(err).Error("Provider chat completion thất bại")
		return "", common.NewError(common.ErrCodeExternalChat, "Chat provider trả về lỗi", common.StatusBadGateway, err)
	}

	if len(resp.Choices) == 0 {
		logger.WithModule("chat").Error("Provider trả về danh sách choices rỗng")
		return "", common.ErrChatProxy
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
