package communitydto

// SubmissionInput dữ liệu đầu vào khi cộng đồng gửi nội dung.
// Dùng chung cho cả video và article; shaper quyết định field nào được giữ lại.
// Không validate nội dung field (email, URL, độ dài): writer gốc nhận mọi giá trị
// dạng chuỗi, kiểm tra hình thức là việc của UI. Field thừa ngoài danh sách này
// bị decoder bỏ qua, không bao giờ vào store.
type SubmissionInput struct {
	Title       string `json:"title,omitempty"`
	Author      string `json:"author,omitempty"`
	Email       string `json:"email,omitempty"`
	Description string `json:"description,omitempty"`

	// Chỉ có ý nghĩa với video, article shaper bỏ qua
	Platform  string `json:"platform,omitempty"`
	URL       string `json:"url,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`
}
