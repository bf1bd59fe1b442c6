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

package vehicle_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/vehicle"
)

type TypesPublicTestSuite struct {
	suite.Suite
}

func (s *TypesPublicTestSuite) TestNormalizePlate() {
	tests := []struct {
		name     string
		plate    string
		expected string
	}{
		{
			name:     "lowercase with spaces",
			plate:    "34 abc 123",
			expected: "34ABC123",
		},
		{
			name:     "already normalized",
			plate:    "34ABC123",
			expected: "34ABC123",
		},
		{
			name:     "mixed case",
			plate:    "06 kY 7 42",
			expected: "06KY742",
		},
		{
			name:     "empty",
			plate:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.Equal(tt.expected, vehicle.NormalizePlate(tt.plate))
		})
	}
}

func TestTypesPublicTestSuite(t *testing.T) {
	suite.Run(t, new(TypesPublicTestSuite))
}
