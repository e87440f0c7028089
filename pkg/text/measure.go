package text

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/fogleman/gg"
)

// FontConfig holds paths to the font files used for text measurement.
type FontConfig struct {
	Regular string
	Bold    string
}

// defaultFontsDir returns the fonts directory relative to this source file.
func defaultFontsDir() string {
	// Try relative to executable first
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Join(filepath.Dir(exe), "..", "fonts")
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	// Fall back to compile-time source location
	_, thisFile, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(thisFile), "..", "..", "fonts")
}

// DefaultFontConfig returns a FontConfig rooted at the bundled fonts
// directory. When the fonts are absent, measurement falls back to a
// deterministic per-character estimate.
func DefaultFontConfig() FontConfig {
	dir := defaultFontsDir()
	return FontConfig{
		Regular: filepath.Join(dir, "Regular.ttf"),
		Bold:    filepath.Join(dir, "Bold.ttf"),
	}
}

var defaultConfig = DefaultFontConfig()

// FontPath returns the configured font file for the given weight.
func FontPath(bold bool) string {
	if bold {
		return defaultConfig.Bold
	}
	return defaultConfig.Regular
}

// MeasureText measures the width and height of text with the given font size
func MeasureText(text string, fontSize float64, fontPath string) (width, height float64) {
	// Use a temporary context for measurement
	dc := gg.NewContext(1000, 1000)

	if err := dc.LoadFontFace(fontPath, fontSize); err != nil {
		// If font loading fails, return rough estimate
		return float64(len(text)) * fontSize * 0.6, fontSize * 1.2
	}

	w, h := dc.MeasureString(text)
	return w, h
}

// MeasureTextWithWeight measures text using the specified font weight
func MeasureTextWithWeight(text string, fontSize float64, bold bool) (width, height float64) {
	fontPath := defaultConfig.Regular
	if bold {
		fontPath = defaultConfig.Bold
	}
	return MeasureText(text, fontSize, fontPath)
}

// LongestWordWidth returns the width of the widest unbreakable word.
// This is the min-content width of a text run.
func LongestWordWidth(text string, fontSize float64, bold bool) float64 {
	widest := 0.0
	for _, word := range SplitIntoWords(text) {
		w, _ := MeasureTextWithWeight(word, fontSize, bold)
		if w > widest {
			widest = w
		}
	}
	return widest
}

// BreakTextIntoLines breaks text into lines that fit within maxWidth.
// A word wider than maxWidth gets a line of its own and overflows.
func BreakTextIntoLines(text string, fontSize float64, bold bool, maxWidth float64) []string {
	textWidth, _ := MeasureTextWithWeight(text, fontSize, bold)
	if textWidth <= maxWidth {
		return []string{strings.TrimSpace(text)}
	}

	words := SplitIntoWords(text)
	if len(words) == 0 {
		return []string{""}
	}

	lines := make([]string, 0)
	currentLine := ""

	for _, word := range words {
		testLine := currentLine
		if testLine != "" {
			testLine += " "
		}
		testLine += word

		lineWidth, _ := MeasureTextWithWeight(testLine, fontSize, bold)
		if lineWidth <= maxWidth {
			currentLine = testLine
		} else {
			// Word doesn't fit, start new line
			if currentLine != "" {
				lines = append(lines, currentLine)
			}
			currentLine = word
		}
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	if len(lines) == 0 {
		return []string{strings.TrimSpace(text)}
	}
	return lines
}

// SplitIntoWords splits text into words at whitespace.
func SplitIntoWords(text string) []string {
	words := make([]string, 0)
	currentWord := ""

	for _, ch := range text {
		if ch == ' ' || ch == '\t' || ch == '\n' {
			if currentWord != "" {
				words = append(words, currentWord)
				currentWord = ""
			}
		} else {
			currentWord += string(ch)
		}
	}

	if currentWord != "" {
		words = append(words, currentWord)
	}

	return words
}
