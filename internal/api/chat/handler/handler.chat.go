package chathdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/werbhq/schello-public/internal/api/base/handler"
	chatdto "github.com/werbhq/schello-public/internal/api/chat/dto"
	chatsvc "github.com/werbhq/schello-public/internal/api/chat/service"
)

// ChatHandler xử lý các request chat với counselor
type ChatHandler struct {
	CounselorService *chatsvc.CounselorService
}

// NewChatHandler tạo mới ChatHandler
func NewChatHandler() (*ChatHandler, error) {
	return &ChatHandler{CounselorService: chatsvc.NewCounselorService()}, nil
}

// HandleMessage nhận transcript và trả về lượt trả lời của counselor
// @Summary Chat với counselor
// @Description Proxy transcript tới provider chat-completions, không lưu hội thoại
// @Accept json
// @Produce json
// @Router /chat/message [post]
func (h *ChatHandler) HandleMessage(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		input := new(chatdto.ChatMessageInput)
		if err := basehdl.ParseRequestBody(c, input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		reply, err := h.CounselorService.SendMessage(c.Context(), input)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		basehdl.HandleResponse(c, chatdto.ChatMessageOutput{Message: reply}, nil)
		return nil
	})
}
