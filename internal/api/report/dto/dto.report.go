package reportdto

// ReportLocationInput vị trí sự vụ trong payload báo cáo
type ReportLocationInput struct {
	Lat     float64 `json:"lat" validate:"required,latitude"`
	Lng     float64 `json:"lng" validate:"required,longitude"`
	Address string  `json:"address,omitempty" validate:"omitempty,no_xss,max=500"`
}

// FacialDataInput nhận dạng khuôn mặt trong payload báo cáo
type FacialDataInput struct {
	HairType  string `json:"hairType,omitempty" validate:"omitempty,oneof=STRAIGHT WAVY CURLY KINKY NONE"`
	SkinColor string `json:"skinColor,omitempty" validate:"omitempty,oneof=FAIR OLIVE BROWN LIGHT-BROWN DARK-BROWN NONE"`
	Gender    string `json:"gender,omitempty" validate:"omitempty,oneof=MALE FEMALE NONE"`
	EyeColor  string `json:"eyeColor,omitempty" validate:"omitempty,oneof=BLACK BLUE GREEN SILVER BROWN NONE"`
	FaceShape string `json:"faceShape,omitempty" validate:"omitempty,oneof=DIAMOND OVAL INVERTED_TRIANGLE SQUARE TRIANGLE ROUND NONE"`
}

// ReportCreateInput dữ liệu đầu vào khi tạo báo cáo.
// Khác với submission cộng đồng, payload này được validate chặt:
// category là enum bắt buộc, description bắt buộc, location bắt buộc.
type ReportCreateInput struct {
	DateIncident string               `json:"dateIncident,omitempty" validate:"omitempty,datetime=2006-01-02"`
	TimeFrom     string               `json:"timeFrom,omitempty"`
	TimeTo       string               `json:"timeTo,omitempty"`
	Category     string               `json:"category" validate:"required,report_category"`
	Description  string               `json:"description" validate:"required,no_xss,max=10000"`
	Location     ReportLocationInput  `json:"location" validate:"required"`
	StudentID    string               `json:"studentId,omitempty" validate:"omitempty,max=50"`
	FacialData   *FacialDataInput     `json:"facialData,omitempty"`
	WantedPersonID string             `json:"wantedPersonId,omitempty" validate:"omitempty,max=50"`
}
