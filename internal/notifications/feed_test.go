package notifications

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/sub-keeper/internal/models"
)

func alert(msg string) models.Alert {
	return models.Alert{Severity: models.SeverityWarning, Message: msg, DisplayDurationMs: 8000}
}

func TestPublishAndList_NewestFirst(t *testing.T) {
	feed := NewFeed(10)

	require.NoError(t, feed.Publish(alert("first")))
	require.NoError(t, feed.Publish(alert("second")))
	require.NoError(t, feed.Publish(alert("third")))

	got := feed.List(0)
	require.Len(t, got, 3)
	assert.Equal(t, "third", got[0].Message)
	assert.Equal(t, "second", got[1].Message)
	assert.Equal(t, "first", got[2].Message)
}

func TestList_Limit(t *testing.T) {
	feed := NewFeed(10)
	for i := 0; i < 5; i++ {
		require.NoError(t, feed.Publish(alert(fmt.Sprintf("msg-%d", i))))
	}

	got := feed.List(2)
	require.Len(t, got, 2)
	assert.Equal(t, "msg-4", got[0].Message)
	assert.Equal(t, "msg-3", got[1].Message)
}

func TestPublish_EvictsOldestAtCapacity(t *testing.T) {
	feed := NewFeed(3)
	for i := 0; i < 5; i++ {
		require.NoError(t, feed.Publish(alert(fmt.Sprintf("msg-%d", i))))
	}

	assert.Equal(t, 3, feed.Len())
	got := feed.List(0)
	require.Len(t, got, 3)
	assert.Equal(t, "msg-4", got[0].Message)
	assert.Equal(t, "msg-2", got[2].Message)
}

func TestList_Empty(t *testing.T) {
	feed := NewFeed(3)
	assert.Empty(t, feed.List(10))
}
