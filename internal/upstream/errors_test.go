package upstream

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckStatus(t *testing.T) {
	assert.NoError(t, CheckStatus("steam", http.StatusOK, nil))
	assert.NoError(t, CheckStatus("steam", http.StatusNoContent, nil))

	err := CheckStatus("hltb", http.StatusForbidden, []byte("blocked"))
	require.Error(t, err)
	assert.Equal(t, "hltb returned status code 403. Response: blocked", err.Error())
}

func TestIsStatus_Wrapped(t *testing.T) {
	err := fmt.Errorf("search: %w", NewStatusError("hltb", http.StatusBadGateway, nil))

	assert.True(t, IsStatus(err))
	assert.False(t, IsStatus(fmt.Errorf("dial tcp: refused")))
}

func TestNewStatusError_TruncatesBody(t *testing.T) {
	err := NewStatusError("steam", http.StatusInternalServerError, []byte(strings.Repeat("x", 2000)))

	assert.Len(t, err.Body, 512)
}

func TestReadLimited(t *testing.T) {
	body, err := readLimited(strings.NewReader("abcd"), 4)
	require.NoError(t, err)
	assert.Equal(t, []byte("abcd"), body)

	_, err = readLimited(strings.NewReader("abcde"), 4)
	assert.ErrorIs(t, err, ErrBodyTooLarge)
}
