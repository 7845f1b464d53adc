// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"io"
	"os"

	"github.com/ava-labs/avalanchego/utils/logging"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxFileSize    = 8 // megabytes
	maxFileAge     = 7 // days
	maxFileBackups = 3
)

type Config struct {
	Level logging.Level
	// File, if set, receives JSON logs rotated by size.
	File string
	// Quiet mutes the console.
	Quiet bool
}

// New returns a logger writing coloured output to stderr and, if
// configured, JSON to a rotated file.
func New(name string, config Config) logging.Logger {
	var consoleWriter io.WriteCloser = os.Stderr
	if config.Quiet {
		consoleWriter = discardWriteCloser{io.Discard}
	}
	consoleCore := logging.NewWrappedCore(config.Level, consoleWriter, logging.Colors.ConsoleEncoder())
	consoleCore.WriterDisabled = config.Quiet
	cores := []logging.WrappedCore{consoleCore}

	if len(config.File) > 0 {
		rw := &lumberjack.Logger{
			Filename:   config.File,
			MaxSize:    maxFileSize,
			MaxAge:     maxFileAge,
			MaxBackups: maxFileBackups,
			Compress:   true,
		}
		cores = append(cores, logging.NewWrappedCore(config.Level, rw, logging.JSON.FileEncoder()))
	}
	return logging.NewLogger(name, cores...)
}

type discardWriteCloser struct {
	io.Writer
}

func (discardWriteCloser) Close() error {
	return nil
}
