package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"admin.app/billing/presentation/invoicepage"
)

type consoleNotifier struct {
	out io.Writer
}

var _ invoicepage.Notifier = consoleNotifier{}

func (n consoleNotifier) Success(title, message string) { n.write("ok", title, message) }
func (n consoleNotifier) Error(title, message string)   { n.write("error", title, message) }
func (n consoleNotifier) Warning(title, message string) { n.write("warning", title, message) }

func (n consoleNotifier) write(level, title, message string) {
	fmt.Fprintf(n.out, "[%s] %s: %s\n", level, title, message)
}

// consoleConfirmer prompts on out and reads one answer line from in.
type consoleConfirmer struct {
	in        io.Reader
	out       io.Writer
	assumeYes bool
}

var _ invoicepage.Confirmer = consoleConfirmer{}

func (c consoleConfirmer) Confirm(ctx context.Context, title, message string) (bool, error) {
	if c.assumeYes {
		return true, nil
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}

	fmt.Fprintf(c.out, "%s: %s [y/N] ", title, message)
	answer, err := bufio.NewReader(c.in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes", "s", "si":
		return true, nil
	}
	return false, nil
}
