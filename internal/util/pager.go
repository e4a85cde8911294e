package util

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"
	"golang.org/x/term"
)

// pagerCmd is the command used to show tables that do not fit the
// terminal. -S truncates long lines and allows horizontal scrolling.
var pagerCmd = []string{"less", "-S"}

// quoteCmd renders a command line for progress messages, hiding any
// argument that spans several lines.
func quoteCmd(cmd []string) string {
	cleanedCmd := make([]string, len(cmd))
	copy(cleanedCmd, cmd)
	for i := range cmd {
		if strings.ContainsRune(cmd[i], '\n') {
			cleanedCmd[i] = "<multiline>"
		}
	}
	return shellquote.Join(cleanedCmd...)
}

// NeedsPager reports whether text that is width bytes wide should be
// shown through the pager: stdout must be a terminal narrower than
// width and the pager must be installed.
func NeedsPager(width int) bool {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return false
	}
	termWidth, _, err := term.GetSize(fd)
	if err != nil || width < termWidth {
		return false
	}
	_, err = exec.LookPath(pagerCmd[0])
	return err == nil
}

// PrintOrPage either prints text to stdout or pipes it through the
// pager, depending on NeedsPager.
func PrintOrPage(text string, width int) error {
	if !NeedsPager(width) {
		_, err := io.WriteString(os.Stdout, text)
		return err
	}

	path, err := exec.LookPath(pagerCmd[0])
	if err != nil {
		return err
	}

	ProgressMsg(quoteCmd(pagerCmd))

	cmd := exec.Cmd{
		Path: path,
		Args: pagerCmd,
		// Docker images often lack LANG, in which case less shows
		// non-ASCII bytes as escape sequences.
		Env:    append(os.Environ(), "LESSCHARSET=utf-8"),
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("connecting pipe to pager stdin: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting pager: %w", err)
	}
	if _, err := io.WriteString(stdin, text); err != nil {
		return fmt.Errorf("writing to pager: %w", err)
	}
	if err := stdin.Close(); err != nil {
		return fmt.Errorf("closing pipe to pager stdin: %w", err)
	}
	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("running pager: %w", err)
	}
	return nil
}
