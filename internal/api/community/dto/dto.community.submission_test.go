// Package communitydto - Test submission nhận mọi giá trị dạng chuỗi, không validate hình thức.
package communitydto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/werbhq/schello-public/internal/global"
)

func TestSubmissionInput_AcceptsArbitraryStringContent(t *testing.T) {
	global.InitValidator()

	inputs := []SubmissionInput{
		{Email: "not-an-email", URL: "không phải url", Thumbnail: "cũng không"},
		{Title: "<script>alert(1)</script>", Description: "javascript:void(0)"},
		{Author: string(make([]byte, 20000))},
		{},
	}

	for _, input := range inputs {
		err := global.Validate.Struct(input)
		assert.NoError(t, err, "submission %+v phải được nhận nguyên vẹn, không kiểm tra hình thức field", input)
	}
}
