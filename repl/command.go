// Package repl implements the interactive session: a tokenizer producing
// a closed command set, and the state machine that applies those commands
// to one live configuration and its bound generator.
package repl

import (
	"errors"
	"fmt"
	"strings"
)

type cmdKind uint8

const (
	cmdHelp cmdKind = iota + 1
	cmdShow
	cmdSet
	cmdGenerate
	cmdSave
	cmdLoad
	cmdReset
	cmdExit
)

type setField uint8

const (
	setCount setField = iota + 1
	setSeed
	setDistribution
	setFormat
	setOutput
	setVerbose
	setParam
)

// command is one parsed interactive line. field, param, and value are set
// only for cmdSet.
type command struct {
	kind  cmdKind
	field setField
	param string
	value string
}

// parseCommand tokenizes one non-empty input line. Unrecognized input is
// an error; the session reports it and leaves all state unchanged.
func parseCommand(line string) (command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return command{}, errors.New("empty command")
	}
	switch strings.ToLower(fields[0]) {
	case "exit", "quit", "q":
		return command{kind: cmdExit}, nil
	case "help", "h", "?":
		return command{kind: cmdHelp}, nil
	case "show", "status", "config":
		return command{kind: cmdShow}, nil
	case "generate", "gen", "g":
		return command{kind: cmdGenerate}, nil
	case "save", "save-config":
		return command{kind: cmdSave}, nil
	case "load", "load-config":
		return command{kind: cmdLoad}, nil
	case "reset":
		return command{kind: cmdReset}, nil
	case "set":
		return parseSet(fields)
	}
	return command{}, fmt.Errorf("unknown command: %q, type 'help' for available commands", fields[0])
}

func parseSet(fields []string) (command, error) {
	if len(fields) < 3 {
		return command{}, errors.New("usage: set <parameter> <value>")
	}
	name := strings.ToLower(fields[1])
	value := strings.Join(fields[2:], " ")

	if key, ok := strings.CutPrefix(name, "param."); ok {
		if key == "" {
			return command{}, errors.New("usage: set param.<name> <value>")
		}
		return command{kind: cmdSet, field: setParam, param: key, value: value}, nil
	}

	var f setField
	switch name {
	case "count":
		f = setCount
	case "seed":
		f = setSeed
	case "distribution":
		f = setDistribution
	case "format":
		f = setFormat
	case "output":
		f = setOutput
	case "verbose":
		f = setVerbose
	default:
		return command{}, fmt.Errorf("unknown parameter: %s, type 'help' to see available parameters", name)
	}
	return command{kind: cmdSet, field: f, value: value}, nil
}
