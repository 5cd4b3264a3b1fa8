package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"go.creack.net/nimbus/executor"
	"go.creack.net/nimbus/lexer"
	"go.creack.net/nimbus/parser"
)

const (
	prompt      = "nbs> "
	historyFile = ".nimbus_history"
)

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return historyFile
	}
	return filepath.Join(home, historyFile)
}

// runREPL evaluates lines in a persistent environment until EOF or :quit.
// Failed lines print their diagnostic and leave the environment usable.
func runREPL() error {
	ln := liner.NewLiner()
	defer func() { _ = ln.Close() }()
	ln.SetCtrlCAborts(true)

	histPath := historyPath()
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getwd: %w", err)
	}
	exe := executor.New(wd, os.Stdout)

	for {
		line, err := ln.Prompt(prompt)
		switch {
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case err != nil: // io.EOF on ctrl-d.
			fmt.Println()
			return nil
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.TrimSpace(line) == ":quit" {
			return nil
		}
		ln.AppendHistory(line)

		prog, err := parser.Parse(lexer.New(line))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		if err := exe.Run(prog); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}
