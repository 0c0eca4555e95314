package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/chainlink-calldata-decoder/pkg/logger"
)

func TestCommands_Root(t *testing.T) {
	t.Parallel()

	root, err := New(logger.Nop()).Root()
	require.NoError(t, err)

	assert.Equal(t, "calldata-decoder", root.Use)
	assert.NotEmpty(t, root.Long)

	uses := make([]string, 0, len(root.Commands()))
	for _, sc := range root.Commands() {
		uses = append(uses, sc.Name())
	}
	assert.ElementsMatch(t, []string{"decode", "batch"}, uses)
}

func TestCommands_NilLogger(t *testing.T) {
	t.Parallel()

	_, err := New(nil).Root()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Logger")
}
