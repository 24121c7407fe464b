package domain

import (
	"fmt"

	m "github.com/mouse-blink/turtle/internal/model"
)

// Built-in sample names.
const (
	SampleBasic    = "basic"
	SampleAdvanced = "advanced"
	SampleExpert   = "expert"
)

// SampleNames lists the built-in programs from simplest to most complex.
func SampleNames() []string {
	return []string{SampleBasic, SampleAdvanced, SampleExpert}
}

// Sample returns a freshly built copy of a built-in program.
func Sample(name string) (*Program, error) {
	switch name {
	case SampleBasic:
		return basicProgram()
	case SampleAdvanced:
		return advancedProgram()
	case SampleExpert:
		return expertProgram()
	default:
		return nil, fmt.Errorf("%w: unknown sample %q", ErrInvalidArgument, name)
	}
}

// basicProgram draws a 10x10 rectangle without loops.
func basicProgram() (*Program, error) {
	var commands []Command
	for range 4 {
		commands = append(commands, must(NewMove(10)), must(NewTurn(m.TurnRight)))
	}

	return NewProgram("Rectangle1", commands)
}

// advancedProgram draws the same rectangle with a single Repeat.
func advancedProgram() (*Program, error) {
	repeat := must(NewRepeat(4, []Command{must(NewMove(10)), must(NewTurn(m.TurnRight))}))

	return NewProgram("Rectangle2", []Command{repeat})
}

func expertProgram() (*Program, error) {
	return NewProgram("Random", []Command{
		must(NewMove(5)),
		must(NewTurn(m.TurnLeft)),
		must(NewTurn(m.TurnLeft)),
		must(NewMove(3)),
		must(NewTurn(m.TurnRight)),
		must(NewRepeat(3, []Command{must(NewMove(1)), must(NewTurn(m.TurnRight))})),
		must(NewRepeat(5, []Command{must(NewMove(2)), must(NewTurn(m.TurnLeft))})),
	})
}

// must is only used with literal arguments known to be valid.
func must(cmd Command, err error) Command {
	if err != nil {
		panic(err)
	}

	return cmd
}
