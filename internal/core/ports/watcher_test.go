package ports_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/restyle/internal/core/ports"
)

func TestWatchOp_String(t *testing.T) {
	assert.Equal(t, "create", ports.OpCreate.String())
	assert.Equal(t, "write", ports.OpWrite.String())
	assert.Equal(t, "remove", ports.OpRemove.String())
	assert.Equal(t, "rename", ports.OpRename.String())
	assert.Equal(t, "unknown", ports.WatchOp(99).String())
}
