package parser

import (
	"path/filepath"
	"strings"
)

// Language identifies the grammar used to parse a source file.
//
// TSX is a distinct grammar in tree-sitter rather than a mode flag on
// TypeScript, so it gets its own variant here. JSX needs no variant:
// the JavaScript grammar parses JSX natively.
type Language int

const (
	// LanguageTypeScript represents TypeScript (.ts, .mts, .cts files)
	LanguageTypeScript Language = iota
	// LanguageTSX represents TypeScript with JSX (.tsx files)
	LanguageTSX
	// LanguageJavaScript represents JavaScript (.js, .jsx, .mjs, .cjs files)
	LanguageJavaScript
	// LanguageUnknown represents an unsupported language
	LanguageUnknown
)

// String returns the string representation of the language.
func (l Language) String() string {
	switch l {
	case LanguageTypeScript:
		return "typescript"
	case LanguageTSX:
		return "tsx"
	case LanguageJavaScript:
		return "javascript"
	default:
		return "unknown"
	}
}

// DetectLanguage detects the grammar from a file path.
// Returns LanguageUnknown if the file extension is not recognized.
func DetectLanguage(filePath string) Language {
	ext := strings.ToLower(filepath.Ext(filePath))

	switch ext {
	case ".ts", ".mts", ".cts":
		return LanguageTypeScript
	case ".tsx":
		return LanguageTSX
	case ".js", ".jsx", ".mjs", ".cjs":
		return LanguageJavaScript
	default:
		return LanguageUnknown
	}
}

// ParseLanguageString converts a language string to a Language type.
// Returns LanguageUnknown if the string is not recognized.
func ParseLanguageString(lang string) Language {
	switch strings.ToLower(lang) {
	case "typescript", "ts":
		return LanguageTypeScript
	case "tsx":
		return LanguageTSX
	case "javascript", "js":
		return LanguageJavaScript
	default:
		return LanguageUnknown
	}
}

// SupportedLanguages returns a list of all supported languages.
func SupportedLanguages() []Language {
	return []Language{
		LanguageTypeScript,
		LanguageTSX,
		LanguageJavaScript,
	}
}
