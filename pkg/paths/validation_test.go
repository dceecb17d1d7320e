package paths

import (
	"strings"
	"testing"

	"github.com/arthur-debert/sdsync/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		errContains string
	}{
		{"empty path", "", "path cannot be empty"},
		{"valid path", "/home/user/save.dat", ""},
		{"path with null bytes", "/home/user\x00/save.dat", "null bytes"},
		{"excessively long path", "/" + strings.Repeat("a", 4097), "exceeds maximum length"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.path)
			if tt.errContains == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.errContains)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
		})
	}
}

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		title   string
		wantErr bool
	}{
		{"game", false},
		{"Final Fantasy VI", false},
		{"", true},
		{".", true},
		{"..", true},
		{"a/b", true},
		{`a\b`, true},
		{"what?", true},
		{"tab\there", true},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			err := ValidateTitle(tt.title)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateRemoteFilename(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"save.dat", false},
		{"slot1/save.dat", false},
		{"", true},
		{"/etc/passwd", true},
		{"..", true},
		{"../other/save.dat", true},
		{".", true},
		{"a/../../b", true},
		{"bad|name", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRemoteFilename(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
