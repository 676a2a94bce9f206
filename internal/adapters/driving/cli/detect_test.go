package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myanmartools/zuc-cli/internal/core/domain"
)

func TestDetectCmd(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"zawgyi", zgMetta, "zg\n"},
		{"unicode", uniMetta, "uni\n"},
		{"not myanmar", "hello", "none\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newCLIEnv(t)
			out, err := env.run(t, "", "detect", tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestDetectCmd_JSON(t *testing.T) {
	env := newCLIEnv(t)

	out, err := env.run(t, zgMetta, "detect", "--json")
	require.NoError(t, err)

	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "zg", got["encoding"])
	assert.Equal(t, domain.LabelZawgyi, got["label"])
}
