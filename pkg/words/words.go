// Dictionary loading for the word-building game.
//
// Word lists are plain text, one word per line. Only words made of the
// lowercase letters 'a'-'z' that are longer than one letter are kept
// (every single letter being a word wouldn't make for an interesting game).
// The result is sorted by byte value and deduplicated, which is the order
// the game's binary search expects.
//
// When no file is configured, the small embedded list is used instead.
package words

import (
	"bufio"
	_ "embed"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:embed default_words.txt
var embeddedWords string

// Load reads one word per line, surrounding whitespace is trimmed.
func Load(r io.Reader) ([]string, error) {
	var out []string
	skipped := 0
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if keep(w) {
			out = append(out, w)
		} else if w != "" {
			skipped++
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	out = normalize(out)
	log.Debug().Int("words", len(out)).Int("skipped", skipped).Msg("loaded dictionary")
	return out, nil
}

// LoadFile opens the file at path and loads it with Load.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Default returns the embedded dictionary.
func Default() []string {
	// Reading from a string can't fail
	out, _ := Load(strings.NewReader(embeddedWords))
	return out
}

// keep reports whether w is a playable word: longer than 1 letter, all in 'a'-'z'.
func keep(w string) bool {
	if len(w) <= 1 {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}

// normalize sorts by byte value and removes duplicates.
func normalize(list []string) []string {
	slices.Sort(list)
	return slices.Compact(list)
}
