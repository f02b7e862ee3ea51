package prompt

import (
	"testing"

	"github.com/manifoldco/promptui"
	"github.com/stretchr/testify/assert"
)

func TestUintValidator(t *testing.T) {
	v := UintValidator(1, 255)
	assert.NoError(t, v("1"))
	assert.NoError(t, v("255"))
	assert.Error(t, v("0"))
	assert.Error(t, v("256"))
	assert.Error(t, v("abc"))
}

func TestHostPortValidator(t *testing.T) {
	assert.NoError(t, HostPortValidator(":3000"))
	assert.NoError(t, HostPortValidator("239.1.2.3:3000"))
	assert.Error(t, HostPortValidator("3000"))
}

func TestWrapError(t *testing.T) {
	assert.ErrorIs(t, wrapError(promptui.ErrInterrupt), ErrAborted)
	assert.ErrorIs(t, wrapError(promptui.ErrEOF), ErrAborted)
	assert.NoError(t, wrapError(nil))
}
