package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguages(t *testing.T) {
	codes := Languages()
	assert.Equal(t, []string{"french", "hindi", "spanish"}, codes)
}

func TestLessons_CaseInsensitive(t *testing.T) {
	lower, ok := Lessons("spanish")
	require.True(t, ok)

	mixed, ok := Lessons("Spanish")
	require.True(t, ok)
	assert.Equal(t, lower, mixed)
}

func TestLessons_UnknownLanguage(t *testing.T) {
	_, ok := Lessons("klingon")
	assert.False(t, ok)
}

func TestLessons_Shape(t *testing.T) {
	for _, code := range Languages() {
		lessons, ok := Lessons(code)
		require.True(t, ok, code)
		require.NotEmpty(t, lessons, code)

		for _, lesson := range lessons {
			assert.NotEmpty(t, lesson.ID)
			assert.NotEmpty(t, lesson.Title)
			assert.NotEmpty(t, lesson.Lang, "recognizer language tag required")
			assert.NotEmpty(t, lesson.Words)
			assert.NotEmpty(t, lesson.Sentences)
			for _, word := range lesson.Words {
				assert.NotEmpty(t, word.Word)
				assert.NotEmpty(t, word.Meaning)
				assert.NotEmpty(t, word.Pronunciation)
			}
		}
	}
}
