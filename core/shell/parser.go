// Package shell implements a minimal interactive command interpreter.
//
// Each line of input goes through the same steps:
//
// 1. The shell reads one line of input. Lines may be any length.
//
// 2. The shell breaks the line into words on runs of blanks (space, tab,
// carriage return, newline and bell). There is no quoting, escaping or
// expansion; quote characters are part of the word they appear in.
//
// 3. If the first word names a builtin, the builtin runs inside the shell.
//
// 4. Otherwise the shell starts the named program with the words as its
// argument vector and waits for it to terminate. The program's exit status
// doesn't affect the shell.
//
// Only the exit builtin or the end of input stop the loop.
package shell

import "strings"

// Delimiters holds the characters that separate words on a command line.
const Delimiters = " \t\r\n\a"

func isDelimiter(r rune) bool {
	return strings.ContainsRune(Delimiters, r)
}

// Tokenize splits line into words. Consecutive delimiters collapse, so the
// result never contains empty words; a blank line yields no words.
func Tokenize(line string) []string {
	return strings.FieldsFunc(line, isDelimiter)
}
