package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mouse-blink/turtle/internal/adapter"
	m "github.com/mouse-blink/turtle/internal/model"
)

// ProgramImporter loads programs from text, JSON or YAML files.
type ProgramImporter struct {
	fs adapter.FSAdapter
}

// NewProgramImporter constructs an importer reading through fs.
func NewProgramImporter(fs adapter.FSAdapter) *ProgramImporter {
	return &ProgramImporter{fs: fs}
}

// ImportFile reads a program file, choosing the decoder from its extension.
// Text programs are named after the file; JSON and YAML documents keep their
// own name unless it is blank.
func (i *ProgramImporter) ImportFile(path m.Path) (*Program, error) {
	data, err := i.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read program file %s: %w", path, err)
	}

	var program *Program

	switch format := adapter.FormatForPath(path); format {
	case adapter.FormatJSON, adapter.FormatYAML:
		doc, decodeErr := adapter.DecodeDocument(format, data)
		if decodeErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, decodeErr)
		}

		if strings.TrimSpace(doc.Name) == "" {
			doc.Name = path.BaseName()
		}

		program, err = FromDocument(doc)
		if err != nil && !errors.Is(err, ErrInvalidFormat) {
			err = fmt.Errorf("%w: %w", ErrInvalidFormat, err)
		}
	default:
		program, err = ParseProgramText(path.BaseName(), data)
	}

	if err != nil {
		return nil, fmt.Errorf("program file %s: %w", path, err)
	}

	return program, nil
}

type programLine struct {
	number int
	level  int
	text   string
}

// ParseProgramText parses the indented program language:
//
//	Move <n>
//	Turn left|right
//	Repeat <n> times
//	RepeatUntil WallAhead|GridEdge
//
// Block bodies are indented by 4 spaces per level.
func ParseProgramText(name string, data []byte) (*Program, error) {
	lines, err := programLines(string(data))
	if err != nil {
		return nil, err
	}

	commands, next, err := parseBlock(lines, 0, 0)
	if err != nil {
		return nil, err
	}

	if next < len(lines) {
		ln := lines[next]
		return nil, invalidFormat("line %d: unexpected indentation: %q", ln.number, ln.text)
	}

	return NewProgram(name, commands)
}

func programLines(text string) ([]programLine, error) {
	var lines []programLine

	for i, raw := range strings.Split(text, "\n") {
		raw = strings.TrimRight(raw, "\r")
		if strings.TrimSpace(raw) == "" {
			continue
		}

		body := strings.TrimLeft(raw, " ")
		spaces := len(raw) - len(body)

		if spaces%indentWidth != 0 || strings.HasPrefix(body, "\t") {
			return nil, invalidFormat("line %d: indentation must be a multiple of %d spaces: %q", i+1, indentWidth, raw)
		}

		lines = append(lines, programLine{
			number: i + 1,
			level:  spaces / indentWidth,
			text:   strings.TrimSpace(body),
		})
	}

	return lines, nil
}

// parseBlock parses consecutive lines at level starting from pos and returns
// the commands and the index of the first line that does not belong to the block.
func parseBlock(lines []programLine, pos, level int) ([]Command, int, error) {
	var commands []Command

	for pos < len(lines) {
		ln := lines[pos]
		if ln.level < level {
			break
		}

		if ln.level > level {
			return nil, pos, invalidFormat("line %d: unexpected indentation: %q", ln.number, ln.text)
		}

		cmd, next, err := parseCommand(lines, pos, level)
		if err != nil {
			return nil, pos, err
		}

		commands = append(commands, cmd)
		pos = next
	}

	return commands, pos, nil
}

func parseCommand(lines []programLine, pos, level int) (Command, int, error) {
	ln := lines[pos]
	fields := strings.Fields(ln.text)

	switch {
	case len(fields) == 2 && fields[0] == "Move":
		steps, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, pos, unknownLine(ln)
		}

		cmd, err := NewMove(steps)
		if err != nil {
			return nil, pos, lineError(ln, err)
		}

		return cmd, pos + 1, nil
	case len(fields) == 2 && fields[0] == "Turn":
		direction, err := m.ParseTurnDirection(fields[1])
		if err != nil {
			return nil, pos, unknownLine(ln)
		}

		cmd, err := NewTurn(direction)
		if err != nil {
			return nil, pos, lineError(ln, err)
		}

		return cmd, pos + 1, nil
	case len(fields) == 3 && fields[0] == "Repeat" && fields[2] == "times":
		times, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, pos, unknownLine(ln)
		}

		children, next, err := parseChildren(lines, pos, level)
		if err != nil {
			return nil, pos, err
		}

		cmd, err := NewRepeat(times, children)
		if err != nil {
			return nil, pos, lineError(ln, err)
		}

		return cmd, next, nil
	case len(fields) == 2 && fields[0] == "RepeatUntil":
		condition, err := m.ParseCondition(fields[1])
		if err != nil {
			return nil, pos, unknownLine(ln)
		}

		children, next, err := parseChildren(lines, pos, level)
		if err != nil {
			return nil, pos, err
		}

		cmd, err := NewRepeatUntil(condition, children)
		if err != nil {
			return nil, pos, lineError(ln, err)
		}

		return cmd, next, nil
	default:
		return nil, pos, unknownLine(ln)
	}
}

func parseChildren(lines []programLine, pos, level int) ([]Command, int, error) {
	children, next, err := parseBlock(lines, pos+1, level+1)
	if err != nil {
		return nil, pos, err
	}

	if len(children) == 0 {
		ln := lines[pos]
		return nil, pos, invalidFormat("line %d: block has no commands: %q", ln.number, ln.text)
	}

	return children, next, nil
}

func unknownLine(ln programLine) error {
	return invalidFormat("line %d: unknown command: %q", ln.number, ln.text)
}

func lineError(ln programLine, err error) error {
	return fmt.Errorf("%w: line %d: %w", ErrInvalidFormat, ln.number, err)
}
