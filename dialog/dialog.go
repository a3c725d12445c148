package dialog

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
)

// ConfirmationDialogContent is what the user is asked to approve.
type ConfirmationDialogContent struct {
	Prompt          string `json:"prompt"`
	Description     string `json:"description,omitempty"`
	TextAreaContent string `json:"textAreaContent,omitempty"`
}

type Dialog interface {
	Confirm(ctx context.Context, content ConfirmationDialogContent) (bool, error)
}

var _ Dialog = (*Prompt)(nil)

// Prompt asks on the terminal the host runs in.
type Prompt struct {
	Stdin  io.ReadCloser
	Stdout io.WriteCloser
}

func NewPrompt() *Prompt {
	return &Prompt{Stdin: os.Stdin, Stdout: os.Stdout}
}

func (p *Prompt) Confirm(ctx context.Context, content ConfirmationDialogContent) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	fmt.Fprintln(p.Stdout, color.New(color.Bold).Sprint(content.Prompt))
	if len(content.Description) > 0 {
		fmt.Fprintln(p.Stdout, content.Description)
	}
	if len(content.TextAreaContent) > 0 {
		fmt.Fprintln(p.Stdout, color.CyanString(content.TextAreaContent))
	}

	prompt := promptui.Prompt{
		Label:     "Approve",
		IsConfirm: true,
		Stdin:     p.Stdin,
		Stdout:    p.Stdout,
	}
	answer, err := prompt.Run()
	if err != nil {
		// promptui reports a "no" answer as ErrAbort
		if err == promptui.ErrAbort {
			return false, nil
		}
		return false, err
	}
	return strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes"), nil
}

// Fixed answers every confirmation the same way without asking.
type Fixed bool

func (f Fixed) Confirm(ctx context.Context, _ ConfirmationDialogContent) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return bool(f), nil
}

// UIItem is one line of a dialog description.
type UIItem struct {
	Message string
	Value   interface{}
}

// UIMessage renders items as "message value" lines.
func UIMessage(items []UIItem) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("%s %v", item.Message, item.Value))
	}
	return strings.Join(lines, "\n")
}
