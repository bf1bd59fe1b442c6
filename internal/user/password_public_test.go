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

package user_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/user"
)

type PasswordPublicTestSuite struct {
	suite.Suite
}

func (s *PasswordPublicTestSuite) TestHashPassword() {
	hash, err := user.HashPassword("Sup3r$ecret")

	s.NoError(err)
	s.NotEmpty(hash)
	s.NotEqual("Sup3r$ecret", hash)
	s.True(strings.HasPrefix(hash, "$2a$"))
}

func (s *PasswordPublicTestSuite) TestHashPasswordIsSalted() {
	first, err := user.HashPassword("Sup3r$ecret")
	s.NoError(err)

	second, err := user.HashPassword("Sup3r$ecret")
	s.NoError(err)

	s.NotEqual(first, second)
}

func (s *PasswordPublicTestSuite) TestCheckPassword() {
	hash, err := user.HashPassword("Sup3r$ecret")
	s.Require().NoError(err)

	s.True(user.CheckPassword(hash, "Sup3r$ecret"))
	s.False(user.CheckPassword(hash, "wrong-password"))
	s.False(user.CheckPassword("not-a-hash", "Sup3r$ecret"))
}

func TestPasswordPublicTestSuite(t *testing.T) {
	suite.Run(t, new(PasswordPublicTestSuite))
}
