package generator

import (
	"fmt"

	"github.com/ronito741/wordforge/internal/output"
)

// CaseMode selects how letter casing is applied to drawn words.
type CaseMode string

// Supported case modes.
const (
	CaseLower  CaseMode = "lower"
	CaseUpper  CaseMode = "upper"
	CaseTitle  CaseMode = "title"
	CaseRandom CaseMode = "random"
	CaseNone   CaseMode = "none"
)

// Separator selects the join character between composed words.
type Separator string

// Supported separators.
const (
	SeparatorNone       Separator = "none"
	SeparatorDash       Separator = "dash"
	SeparatorUnderscore Separator = "underscore"
	SeparatorDot        Separator = "dot"
)

// InsertBetween selects random material inserted strictly between
// consecutive words, overriding the separator join.
type InsertBetween string

// Supported insert-between modes.
const (
	InsertNone   InsertBetween = "none"
	InsertSymbol InsertBetween = "symbol"
	InsertNumber InsertBetween = "number"
)

// NumType selects how random numeric strings are produced.
type NumType string

// Supported numeric types.
const (
	NumFixed  NumType = "fixed"
	NumRandom NumType = "random"
)

// ParseCaseMode converts a user-supplied case mode name.
func ParseCaseMode(s string) (CaseMode, error) {
	switch CaseMode(s) {
	case CaseLower, CaseUpper, CaseTitle, CaseRandom, CaseNone:
		return CaseMode(s), nil
	default:
		return "", fmt.Errorf("unknown case mode %q (expected lower, upper, title, random or none)", s)
	}
}

// ParseSeparator converts a user-supplied separator name.
func ParseSeparator(s string) (Separator, error) {
	switch Separator(s) {
	case SeparatorNone, SeparatorDash, SeparatorUnderscore, SeparatorDot:
		return Separator(s), nil
	default:
		return "", fmt.Errorf("unknown separator %q (expected none, dash, underscore or dot)", s)
	}
}

// ParseInsertBetween converts a user-supplied insert-between mode name.
func ParseInsertBetween(s string) (InsertBetween, error) {
	switch InsertBetween(s) {
	case InsertNone, InsertSymbol, InsertNumber:
		return InsertBetween(s), nil
	default:
		return "", fmt.Errorf("unknown insert-between mode %q (expected none, symbol or number)", s)
	}
}

// ParseNumType converts a user-supplied numeric type name.
func ParseNumType(s string) (NumType, error) {
	switch NumType(s) {
	case NumFixed, NumRandom:
		return NumType(s), nil
	default:
		return "", fmt.Errorf("unknown number type %q (expected fixed or random)", s)
	}
}

// Config holds every option of a generation run. It is constructed
// once by the host, validated, and passed by value; the pipeline never
// mutates it. Zero numeric fields mean "no constraint" where a
// constraint is optional (word length bounds, minimum length).
type Config struct {
	// Word sources and selection.
	Wordlists              []string
	WordsPerPassword       int
	UniqueWords            bool
	RemoveWordsWithNumbers bool
	RemoveWordsWithSymbols bool
	IncludeRegex           string
	ExcludeRegex           string
	MinWordLen             int
	MaxWordLen             int
	RemoveSourceDuplicates bool

	// Construction mode.
	PatternMode bool
	Pattern     string

	// Word transforms.
	CaseMode      CaseMode
	LeetMode      bool
	ShuffleWords  bool
	Separator     Separator
	InsertBetween InsertBetween

	// Augmentation.
	UseNumbers   bool
	NumType      NumType
	NumLen       int
	NumMax       int
	NumbersAtEnd bool
	UseSymbols   bool
	SymCount     int
	Prefix       string
	Suffix       string

	// Result filtering.
	AvoidDuplicates  bool
	MinLen           int
	ExcludeAmbiguous bool
	SmartMode        bool

	// Run shape.
	Count        int
	Output       string
	OutputFormat output.Format
}

// DefaultConfig returns a configuration matching the historical
// defaults of the tool.
func DefaultConfig() Config {
	return Config{
		WordsPerPassword: 2,
		CaseMode:         CaseLower,
		Separator:        SeparatorNone,
		InsertBetween:    InsertNone,
		Pattern:          "W-W-D-S",
		NumType:          NumFixed,
		NumLen:           2,
		NumMax:           999,
		SymCount:         1,
		AvoidDuplicates:  true,
		ExcludeAmbiguous: true,
		Count:            100,
		Output:           "generated_wordlist.txt",
		OutputFormat:     output.FormatTxt,
	}
}
