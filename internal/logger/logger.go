package logger

// Logging is designed to look and feel like clang's error format. Messages
// are streamed as they happen, each one carries the contents of the
// offending source line, and the total message count can be capped so a
// badly malformed file doesn't flood the terminal.

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"
)

const defaultTerminalWidth = 80

type Log struct {
	AddMsg    func(Msg)
	HasErrors func() bool
	Done      func() []Msg
}

type LogLevel int8

const (
	LevelNone LogLevel = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelSilent
)

type MsgKind uint8

const (
	Error MsgKind = iota
	Warning
	Note
)

func (kind MsgKind) String() string {
	switch kind {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Note:
		return "note"
	default:
		panic("Internal error")
	}
}

type Msg struct {
	Kind  MsgKind
	Data  MsgData
	Notes []MsgData
}

type MsgData struct {
	Text     string
	Location *MsgLocation
}

type MsgLocation struct {
	File     string
	Line     int // 1-based
	Column   int // 0-based, in bytes
	Length   int // in bytes
	LineText string
}

// Loc is the 0-based index of a position from the start of the file, in bytes.
type Loc struct {
	Start int32
}

type Range struct {
	Loc Loc
	Len int32
}

func (r Range) End() int32 {
	return r.Loc.Start + r.Len
}

type SortableMsgs []Msg

func (a SortableMsgs) Len() int      { return len(a) }
func (a SortableMsgs) Swap(i, j int) { a[i], a[j] = a[j], a[i] }

func (a SortableMsgs) Less(i, j int) bool {
	ai, aj := a[i], a[j]
	aiLoc, ajLoc := ai.Data.Location, aj.Data.Location
	if aiLoc == nil || ajLoc == nil {
		return aiLoc == nil && ajLoc != nil
	}
	if aiLoc.Line != ajLoc.Line {
		return aiLoc.Line < ajLoc.Line
	}
	if aiLoc.Column != ajLoc.Column {
		return aiLoc.Column < ajLoc.Column
	}
	return ai.Kind < aj.Kind
}

// Source is the parse input: the bytes the lexer scans and the parser's
// diagnostics point back into.
type Source struct {
	Index int32

	// Used in diagnostics; never used for file-system access.
	PrettyPath string

	Contents string
}

func (s *Source) TextForRange(r Range) string {
	return s.Contents[r.Loc.Start : r.Loc.Start+r.Len]
}

func (s *Source) RangeOfOperatorBefore(loc Loc, op string) Range {
	text := s.Contents[:loc.Start]
	if index := strings.LastIndex(text, op); index >= 0 {
		return Range{Loc: Loc{Start: int32(index)}, Len: int32(len(op))}
	}
	return Range{Loc: loc}
}

func (s *Source) RangeOfOperatorAfter(loc Loc, op string) Range {
	text := s.Contents[loc.Start:]
	if index := strings.Index(text, op); index >= 0 {
		return Range{Loc: Loc{Start: loc.Start + int32(index)}, Len: int32(len(op))}
	}
	return Range{Loc: loc}
}

func (s *Source) RangeOfString(loc Loc) Range {
	text := s.Contents[loc.Start:]
	if len(text) == 0 {
		return Range{Loc: loc}
	}
	quote := text[0]
	if quote == '"' || quote == '\'' {
		for i := 1; i < len(text); i++ {
			switch text[i] {
			case quote:
				return Range{Loc: loc, Len: int32(i + 1)}
			case '\\':
				i++
			}
		}
	}
	return Range{Loc: loc}
}

func (s *Source) RangeOfNumber(loc Loc) (r Range) {
	text := s.Contents[loc.Start:]
	r = Range{Loc: loc}
	if len(text) > 0 {
		if c := text[0]; c >= '0' && c <= '9' {
			r.Len = 1
			for int(r.Len) < len(text) {
				c := text[r.Len]
				if (c < '0' || c > '9') && (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') && c != '.' && c != '_' {
					break
				}
				r.Len++
			}
		}
	}
	return
}

type TerminalInfo struct {
	IsTTY           bool
	UseColorEscapes bool
	Width           int
}

type UseColor uint8

const (
	ColorIfTerminal UseColor = iota
	ColorNever
	ColorAlways
)

type OutputOptions struct {
	MessageLimit  int
	LogLevel      LogLevel
	Color         UseColor
	IncludeSource bool
}

// NewStderrLog renders each message to stderr as it arrives, the same way
// esbuild's CLI front end streams diagnostics while still parsing.
func NewStderrLog(options OutputOptions) Log {
	var mutex sync.Mutex
	var msgs SortableMsgs
	terminalInfo := GetTerminalInfo(os.Stderr)
	hasErrors := false
	remaining := options.MessageLimit
	if remaining == 0 {
		remaining = 0x7FFFFFFF
	}

	switch options.Color {
	case ColorNever:
		terminalInfo.UseColorEscapes = false
	case ColorAlways:
		terminalInfo.UseColorEscapes = SupportsColorEscapes
	}

	return Log{
		AddMsg: func(msg Msg) {
			mutex.Lock()
			defer mutex.Unlock()
			msgs = append(msgs, msg)
			if msg.Kind == Error {
				hasErrors = true
			}
			if remaining == 0 {
				return
			}
			if msg.Kind == Error && options.LogLevel > LevelError {
				return
			}
			if msg.Kind == Warning && options.LogLevel > LevelWarning {
				return
			}
			writeStringWithColor(os.Stderr, msg.String(options, terminalInfo))
			remaining--
		},
		HasErrors: func() bool {
			mutex.Lock()
			defer mutex.Unlock()
			return hasErrors
		},
		Done: func() []Msg {
			mutex.Lock()
			defer mutex.Unlock()
			sort.Stable(msgs)
			return msgs
		},
	}
}

// NewDeferLog collects every message instead of printing it. This is what a
// single parse uses: the caller decides what to do with the first error.
func NewDeferLog() Log {
	var mutex sync.Mutex
	var msgs SortableMsgs
	hasErrors := false

	return Log{
		AddMsg: func(msg Msg) {
			mutex.Lock()
			defer mutex.Unlock()
			msgs = append(msgs, msg)
			if msg.Kind == Error {
				hasErrors = true
			}
		},
		HasErrors: func() bool {
			mutex.Lock()
			defer mutex.Unlock()
			return hasErrors
		},
		Done: func() []Msg {
			mutex.Lock()
			defer mutex.Unlock()
			sort.Stable(msgs)
			return msgs
		},
	}
}

func (log Log) AddError(source *Source, loc Loc, text string) {
	log.AddMsg(Msg{Kind: Error, Data: RangeData(source, Range{Loc: loc}, text)})
}

func (log Log) AddRangeError(source *Source, r Range, text string) {
	log.AddMsg(Msg{Kind: Error, Data: RangeData(source, r, text)})
}

func RangeData(source *Source, r Range, text string) MsgData {
	return MsgData{Text: text, Location: LocationOrNil(source, r)}
}

func LocationOrNil(source *Source, r Range) *MsgLocation {
	if source == nil {
		return nil
	}
	lineCount, columnCount, lineStart, lineEnd := computeLineAndColumn(source.Contents, int(r.Loc.Start))
	return &MsgLocation{
		File:     source.PrettyPath,
		Line:     lineCount + 1,
		Column:   columnCount,
		Length:   int(r.Len),
		LineText: source.Contents[lineStart:lineEnd],
	}
}

func computeLineAndColumn(contents string, offset int) (lineCount int, columnCount int, lineStart int, lineEnd int) {
	if offset > len(contents) {
		offset = len(contents)
	}
	for i, c := range contents[:offset] {
		switch c {
		case '\n':
			lineCount++
			lineStart = i + 1
			columnCount = 0
		case '\r':
		default:
			columnCount++
		}
	}
	lineEnd = len(contents)
	for i := offset; i < len(contents); i++ {
		if c := contents[i]; c == '\n' || c == '\r' {
			lineEnd = i
			break
		}
	}
	return
}

func (msg Msg) String(options OutputOptions, terminalInfo TerminalInfo) string {
	return msgString(options.IncludeSource, terminalInfo, msg.Kind, msg.Data)
}

func msgString(includeSource bool, terminalInfo TerminalInfo, kind MsgKind, data MsgData) string {
	var sb strings.Builder

	if loc := data.Location; loc != nil {
		fmt.Fprintf(&sb, "%s:%d:%d: %s: %s\n", loc.File, loc.Line, loc.Column, kind.String(), data.Text)
		if includeSource && loc.LineText != "" {
			width := terminalInfo.Width
			if width <= 0 {
				width = defaultTerminalWidth
			}
			line := renderTabStops(loc.LineText, 4)
			sb.WriteString(line)
			sb.WriteByte('\n')
			sb.WriteString(strings.Repeat(" ", clampColumn(loc.Column, width)))
			sb.WriteString("^\n")
		}
	} else {
		fmt.Fprintf(&sb, "%s: %s\n", kind.String(), data.Text)
	}

	return sb.String()
}

func clampColumn(column, width int) int {
	if column < 0 {
		return 0
	}
	if column > width {
		return width
	}
	return column
}

func renderTabStops(withTabs string, spacesPerTab int) string {
	if !strings.ContainsRune(withTabs, '\t') {
		return withTabs
	}
	var sb strings.Builder
	column := 0
	for _, c := range withTabs {
		if c == '\t' {
			spaces := spacesPerTab - (column % spacesPerTab)
			sb.WriteString(strings.Repeat(" ", spaces))
			column += spaces
		} else {
			sb.WriteRune(c)
			column += utf8.RuneLen(c)
		}
	}
	return sb.String()
}

