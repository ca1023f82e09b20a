package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusDictionary(t *testing.T) {
	assert.True(t, IsValidStatus(StatusNew))
	assert.True(t, IsValidStatus(StatusClosed))
	assert.False(t, IsValidStatus(""))
	assert.False(t, IsValidStatus("frozen"))
	// Коды чувствительны к регистру.
	assert.False(t, IsValidStatus("NEW"))
}

func TestLabelsFallBackToCode(t *testing.T) {
	assert.Equal(t, "Новий", StatusLabel(StatusNew))
	assert.Equal(t, "Телефон", ChannelLabel(ChannelPhone))
	assert.Equal(t, "Скарга", RequestTypeLabel(RequestTypeComplaint))

	assert.Equal(t, "mystery", StatusLabel("mystery"))
	assert.Equal(t, "fax", ChannelLabel("fax"))
	assert.Equal(t, "other", RequestTypeLabel("other"))
}
