package main

import "errors"

// Sentinel errors for command operations
var (
	ErrInputFileNotExist = errors.New("input file does not exist")
	ErrCheckFailed       = errors.New("check failed")
	ErrNoFixtureDir      = errors.New("no fixture directory configured")
)
