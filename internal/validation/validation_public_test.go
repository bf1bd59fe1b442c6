// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package validation_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/validation"
)

type ValidationPublicTestSuite struct {
	suite.Suite
}

type passwordHolder struct {
	Password string `validate:"strong_password"`
}

func (s *ValidationPublicTestSuite) TestStrongPassword() {
	tests := []struct {
		name     string
		password string
		wantOK   bool
	}{
		{
			name:     "meets all requirements",
			password: "Sup3r$ecret",
			wantOK:   true,
		},
		{
			name:     "too short",
			password: "Ab1$x",
			wantOK:   false,
		},
		{
			name:     "missing upper case",
			password: "sup3r$ecret",
			wantOK:   false,
		},
		{
			name:     "missing lower case",
			password: "SUP3R$ECRET",
			wantOK:   false,
		},
		{
			name:     "missing digit",
			password: "Super$ecret",
			wantOK:   false,
		},
		{
			name:     "missing special character",
			password: "Sup3rSecret",
			wantOK:   false,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			msg, ok := validation.Struct(passwordHolder{Password: tc.password})

			s.Equal(tc.wantOK, ok)
			if !tc.wantOK {
				s.Contains(msg, "strong_password")
			}
		})
	}
}

func (s *ValidationPublicTestSuite) TestStructWithStandardTags() {
	type dto struct {
		Email string `validate:"required,email"`
	}

	_, ok := validation.Struct(dto{Email: "user@example.com"})
	s.True(ok)

	msg, ok := validation.Struct(dto{Email: "not-an-email"})
	s.False(ok)
	s.Contains(msg, "Email")
}

func TestValidationPublicTestSuite(t *testing.T) {
	suite.Run(t, new(ValidationPublicTestSuite))
}
