// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/katalvlaran/hill/alphabet"
	"github.com/katalvlaran/hill/hill"
	"github.com/katalvlaran/hill/matrix"
	"github.com/spf13/cobra"
)

// errInputClosed is returned when stdin ends before a prompt is answered.
var errInputClosed = errors.New("input closed before the session finished")

// Menu choices.
const (
	choiceEncode = "1"
	choiceDecode = "2"
)

func newInteractiveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Prompt for an operation, a key and a message",
		Long: `Run a guided session: choose encode or decode, enter the text or numbers,
then the key order and the key rows. Invalid sizes and inadmissible keys
are re-prompted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := &prompter{
				in:     bufio.NewScanner(cmd.InOrStdin()),
				out:    cmd.OutOrStdout(),
				logger: a.logger,
			}
			return p.run()
		},
	}
}

// prompter drives one interactive session over line-oriented input.
type prompter struct {
	in     *bufio.Scanner
	out    io.Writer
	logger *log.Logger
}

// ask prints prompt and returns the next input line, trimmed.
func (p *prompter) ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(p.in.Text()), nil
}

func (p *prompter) run() error {
	fmt.Fprintln(p.out, TitleStyle.Render("Welcome to the Encoding/Decoding Program!"))
	choice, err := p.ask("Choose an operation:\n1. Encode a message\n2. Decode a message\nEnter 1 or 2: ")
	if err != nil {
		return err
	}

	switch choice {
	case choiceEncode:
		return p.encode()
	case choiceDecode:
		return p.decode()
	default:
		fmt.Fprintln(p.out, ErrorStyle.Render("Invalid choice. Please restart the program."))
		return usage(fmt.Errorf("invalid choice %q", choice))
	}
}

func (p *prompter) encode() error {
	msg, err := p.message()
	if err != nil {
		return err
	}
	fmt.Fprintln(p.out, "Enter the encoding matrix (2x2 or 3x3). Example for 2x2:")
	fmt.Fprintln(p.out, HintStyle.Render("2 3\n1 1"))

	c, err := p.cipher()
	if err != nil {
		return err
	}
	out, err := c.Encode(msg)
	if err != nil {
		fmt.Fprintln(p.out, ErrorStyle.Render(err.Error()))
		return rejected(err)
	}
	fmt.Fprintf(p.out, "\n%s %s\n", SuccessStyle.Render("Encoded Message:"), formatNumbers(out))
	return nil
}

func (p *prompter) decode() error {
	line, err := p.ask("Enter the encoded numbers (space-separated): ")
	if err != nil {
		return err
	}
	numbers, err := parseNumbers([]string{line})
	if err != nil {
		fmt.Fprintln(p.out, ErrorStyle.Render(err.Error()))
		return usage(err)
	}
	fmt.Fprintln(p.out, "Enter the encoding matrix (2x2 or 3x3) used for encoding:")

	c, err := p.cipher()
	if err != nil {
		return err
	}
	text, err := c.Decode(numbers)
	if err != nil {
		fmt.Fprintln(p.out, ErrorStyle.Render(err.Error()))
		return rejected(err)
	}
	fmt.Fprintf(p.out, "\n%s %s\n", SuccessStyle.Render("Decoded Message:"), text)
	return nil
}

// message asks for the plaintext until it holds only letters and spaces.
func (p *prompter) message() (string, error) {
	for {
		msg, err := p.ask("Enter the message to encode: ")
		if err != nil {
			return "", err
		}
		if _, err := alphabet.ToNumbers(msg); err != nil {
			p.logger.Debug("message rejected", "err", err)
			fmt.Fprintln(p.out, HintStyle.Render("Invalid message. Use letters A-Z and spaces only."))
			continue
		}
		return msg, nil
	}
}

// cipher asks for the order and the rows until an admissible key is entered.
func (p *prompter) cipher() (*hill.Cipher, error) {
	n, err := p.order()
	if err != nil {
		return nil, err
	}
	for {
		key, err := p.readKey(n)
		if err != nil {
			return nil, err
		}
		c, err := hill.NewCipher(key)
		if err == nil {
			p.logger.Debug("key accepted", "det", c.Determinant())
			return c, nil
		}
		det, _ := matrix.Determinant(key)
		p.logger.Debug("key rejected", "det", det, "err", err)
		fmt.Fprintln(p.out, ErrorStyle.Render(fmt.Sprintf("Invalid matrix. Determinant (%d) is not coprime with %d.", det, hill.Modulus)))
		fmt.Fprintln(p.out, HintStyle.Render("Invalid matrix. Please enter a new one."))
	}
}

// order asks for the key order until 2 or 3 is entered.
func (p *prompter) order() (int, error) {
	for {
		line, err := p.ask("Enter matrix size (2 for 2x2, 3 for 3x3): ")
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		switch {
		case err != nil:
			fmt.Fprintln(p.out, HintStyle.Render("Invalid input. Please enter a number (2 or 3)."))
		case n < hill.MinOrder || n > hill.MaxOrder:
			fmt.Fprintln(p.out, HintStyle.Render("Invalid size. Please enter 2 or 3."))
		default:
			return n, nil
		}
	}
}

// readKey reads n rows of n integers, re-asking for any malformed row.
func (p *prompter) readKey(n int) (*matrix.Dense, error) {
	rows := make([][]int, 0, n)
	for i := 0; i < n; {
		line, err := p.ask(fmt.Sprintf("Enter row %d: ", i+1))
		if err != nil {
			return nil, err
		}
		row, err := parseInts(line, errBadKeySpec)
		if err != nil || len(row) != n {
			fmt.Fprintln(p.out, HintStyle.Render(fmt.Sprintf("Invalid row. Please enter %d integers.", n)))
			continue
		}
		rows = append(rows, row)
		i++
	}
	return matrix.NewFromRows(rows)
}
