//go:build !linux

package core

func resetTerminalMode() {}
