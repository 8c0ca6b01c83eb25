package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Veraticus/pocketledger/internal/model"
)

// ErrNoChoice is returned when the user gives up on a selection.
var ErrNoChoice = errors.New("no valid choice made")

const maxAttempts = 3

// Prompter asks for values the user did not pass as flags.
type Prompter struct {
	writer io.Writer
	reader *answerReader
}

// NewPrompter creates a prompter. Nil arguments default to stdin/stdout.
func NewPrompter(reader io.Reader, writer io.Writer) *Prompter {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}
	return &Prompter{
		reader: newAnswerReader(reader),
		writer: writer,
	}
}

// Ask reads one line. An empty answer returns fallback.
func (p *Prompter) Ask(ctx context.Context, label, fallback string) (string, error) {
	prompt := label
	if fallback != "" {
		prompt = fmt.Sprintf("%s [%s]", label, fallback)
	}
	if _, err := fmt.Fprint(p.writer, FormatPrompt(prompt)); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	answer, err := p.reader.next(ctx)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return fallback, nil
	}
	return answer, nil
}

// AskValid repeats Ask until parse accepts the answer.
func (p *Prompter) AskValid(ctx context.Context, label, fallback string, parse func(string) error) (string, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		answer, err := p.Ask(ctx, label, fallback)
		if err != nil {
			return "", err
		}
		if err := parse(answer); err != nil {
			if _, werr := fmt.Fprintln(p.writer, FormatError(err.Error())); werr != nil {
				return "", fmt.Errorf("failed to write error: %w", werr)
			}
			continue
		}
		return answer, nil
	}
	return "", fmt.Errorf("%w: %s", ErrNoChoice, label)
}

// Confirm asks a yes/no question. Anything but y/yes is no.
func (p *Prompter) Confirm(ctx context.Context, question string) (bool, error) {
	answer, err := p.Ask(ctx, question+" (y/N)", "")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// ChooseCategory lists categories with their colours and reads a choice by
// number or name.
func (p *Prompter) ChooseCategory(ctx context.Context, categories []model.Category) (model.Category, error) {
	if len(categories) == 0 {
		return model.Category{}, fmt.Errorf("%w: no categories to choose from", ErrNoChoice)
	}

	for i, c := range categories {
		if _, err := fmt.Fprintf(p.writer, "  %2d. %s %s\n", i+1, CategorySwatch(c.Color), c.Name); err != nil {
			return model.Category{}, fmt.Errorf("failed to write category list: %w", err)
		}
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		answer, err := p.Ask(ctx, "Category", "")
		if err != nil {
			return model.Category{}, err
		}
		if c, ok := matchCategory(categories, answer); ok {
			return c, nil
		}
		if _, err := fmt.Fprintln(p.writer, FormatWarning("Pick a number from the list or type a category name")); err != nil {
			return model.Category{}, fmt.Errorf("failed to write hint: %w", err)
		}
	}
	return model.Category{}, fmt.Errorf("%w: category", ErrNoChoice)
}

func matchCategory(categories []model.Category, answer string) (model.Category, bool) {
	if n, err := strconv.Atoi(answer); err == nil {
		if n >= 1 && n <= len(categories) {
			return categories[n-1], true
		}
		return model.Category{}, false
	}
	for _, c := range categories {
		if strings.EqualFold(c.Name, answer) {
			return c, true
		}
	}
	return model.Category{}, false
}
