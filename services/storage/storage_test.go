package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"id.png", "id"},
		{"my license (new).pdf", "my_license_new"},
		{"../../../etc/passwd", "passwd"},
		{"صورة الهوية.jpg", "document"},
		{"...", "document"},
		{"weird--name__ok.tar", "weird--name__ok"},
		{"no-extension", "no-extension"},
		{"dir/sub/vehicle.jpeg", "vehicle"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, sanitizeFilename(tc.in), "input %q", tc.in)
	}
}
