// Package catalog holds the built-in lesson tables, one JSON file per
// language, embedded at build time and loaded once. The catalog is
// read-only at runtime.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"github.com/bytedance/sonic"
)

//go:embed data/*.json
var lessonData embed.FS

type Word struct {
	Word          string `json:"word"`
	Meaning       string `json:"meaning"`
	Pronunciation string `json:"pronunciation"`
}

type Lesson struct {
	ID    string `json:"id"`
	Level string `json:"level"`
	Title string `json:"title"`
	// Lang is the BCP-47 tag the client hands to its speech recognizer
	// and synthesizer, e.g. "es-ES".
	Lang      string   `json:"lang"`
	Words     []Word   `json:"words"`
	Sentences []string `json:"sentences"`
}

type languageFile struct {
	Language string   `json:"language"`
	Lessons  []Lesson `json:"lessons"`
}

var (
	once      sync.Once
	languages map[string][]Lesson
)

func load() {
	languages = make(map[string][]Lesson)

	entries, err := fs.ReadDir(lessonData, "data")
	if err != nil {
		panic(fmt.Sprintf("catalog: read embedded data: %v", err))
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		raw, err := fs.ReadFile(lessonData, "data/"+entry.Name())
		if err != nil {
			panic(fmt.Sprintf("catalog: read %s: %v", entry.Name(), err))
		}

		var file languageFile
		if err := sonic.Unmarshal(raw, &file); err != nil {
			panic(fmt.Sprintf("catalog: parse %s: %v", entry.Name(), err))
		}

		key := strings.ToLower(strings.TrimSpace(file.Language))
		if key == "" {
			panic(fmt.Sprintf("catalog: %s has no language key", entry.Name()))
		}
		languages[key] = file.Lessons
	}
}

// Lessons returns the ordered lesson list for a language code. Lookup is
// case-insensitive; ok is false for unknown languages.
func Lessons(language string) ([]Lesson, bool) {
	once.Do(load)
	lessons, ok := languages[strings.ToLower(language)]
	return lessons, ok
}

// Languages returns the sorted list of available language codes.
func Languages() []string {
	once.Do(load)
	codes := make([]string, 0, len(languages))
	for code := range languages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
