package chatdto

// Vai trò trong transcript, theo protocol của client
const (
	RoleUser = "USER"
	RoleAI   = "AI"
)

// TranscriptEntry là một lượt trong hội thoại
type TranscriptEntry struct {
	Role    string `json:"role" validate:"required,oneof=USER AI"`
	Message string `json:"message" validate:"required"`
}

// ChatMessageInput dữ liệu đầu vào của một lượt chat.
// Client gửi toàn bộ transcript mỗi lượt, server không giữ session state
// và không lưu lại hội thoại.
type ChatMessageInput struct {
	Messages []TranscriptEntry `json:"messages" validate:"required,min=1,dive"`
}

// ChatMessageOutput phản hồi của counselor
type ChatMessageOutput struct {
	Message string `json:"message"`
}
