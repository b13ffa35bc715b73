package main

import "github.com/zyedidia/clipboard"

// clipExternal is true when the system clipboard could be initialized. When
// it cannot (headless terminals, missing xclip), reads and writes fall back
// to a process-local string so copy still behaves sensibly.
var clipExternal bool

var internalClipboard string

// ClipInitialize selects the external clipboard when available. The error
// is not fatal because the internal fallback is used instead.
func ClipInitialize() error {
	err := clipboard.Initialize()
	clipExternal = err == nil
	return err
}

// ClipRead receives the clipboard contents.
func ClipRead() (string, error) {
	if clipExternal {
		return clipboard.ReadAll("clipboard")
	}
	return internalClipboard, nil
}

// ClipWrite sets the clipboard contents.
func ClipWrite(content string) error {
	if clipExternal {
		return clipboard.WriteAll(content, "clipboard")
	}
	internalClipboard = content
	return nil
}
