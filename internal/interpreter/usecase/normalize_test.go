package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"friday-assistant/internal/intent"
)

const plainRecord = `{"intent":"add_task","title":"Finish report","date":"2026-10-16","time":"17:00","priority":"high","reply":"Added."}`

func TestNormalize_FenceTolerance(t *testing.T) {
	want, err := normalize(plainRecord)
	require.NoError(t, err)
	wantRec, _, err := intent.Sanitize(want)
	require.NoError(t, err)

	variants := []string{
		"```json\n" + plainRecord + "\n```",
		"```\n" + plainRecord + "\n```",
		"  ```JSON\r\n" + plainRecord + "\r\n```  ",
		"```" + plainRecord + "```",
	}
	for _, v := range variants {
		raw, err := normalize(v)
		require.NoError(t, err, v)
		rec, _, err := intent.Sanitize(raw)
		require.NoError(t, err, v)
		assert.Equal(t, wantRec, rec, v)
	}
}

func TestNormalize_RepairsTrailingComma(t *testing.T) {
	raw, err := normalize(`{"intent":"greeting","reply":"Hi!",}`)
	require.NoError(t, err)

	rec, _, err := intent.Sanitize(raw)
	require.NoError(t, err)
	assert.Equal(t, intent.KindGreeting, rec.Kind)
	assert.Equal(t, "Hi!", rec.Reply)
}

func TestNormalize_ParseFailure(t *testing.T) {
	for _, text := range []string{"I could not understand that.", "[1,2,3]", "```\n\"just a string\"\n```"} {
		_, err := normalize(text)
		require.Error(t, err, text)

		var pf *ParseFailure
		require.True(t, errors.As(err, &pf), text)
		assert.Equal(t, text, pf.Raw)
		assert.NotNil(t, pf.Err)
	}
}

func TestStripFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripFence(` {"a":1} `))
	assert.Equal(t, "```", stripFence("```json\n```\n```"))
}
