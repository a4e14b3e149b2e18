package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/AbaydullinAA/Project-Module2/alphabet"
	"github.com/AbaydullinAA/Project-Module2/cipher"
	"github.com/AbaydullinAA/Project-Module2/errtag"
	"github.com/AbaydullinAA/Project-Module2/log"
)

const (
	choiceCaesar = iota + 1
	choiceVigenere
	choiceAtbash
	choiceQuit
)

// menu runs the interactive loop: load an alphabet once, then repeatedly ask
// for a cipher, an operation, a key, and a text. Every prompt retries until
// the input is valid; end of input quits.
func (r *Runner) menu(ctx context.Context, cfg Config, logger log.Logger, _ *cli.Context) error {
	p := &prompter{scanner: bufio.NewScanner(r.in), out: r.out}

	p.printf("==================================================\n")
	p.printf("Text encryption and decryption\n")
	p.printf("==================================================\n")

	a, err := r.promptAlphabet(p, cfg, logger)
	if err != nil {
		return quietOnEOF(err)
	}
	p.printf("Alphabet loaded (%d characters)\n", a.Len())

	for ctx.Err() == nil {
		choice, err := p.promptChoice()
		if err != nil {
			return quietOnEOF(err)
		}
		if choice == choiceQuit {
			p.printf("Bye.\n")
			return nil
		}

		mode, err := p.promptMode()
		if err != nil {
			return quietOnEOF(err)
		}

		ci, err := p.promptCipher(choice, mode, a)
		if err != nil {
			return quietOnEOF(err)
		}
		if ci == nil {
			// Key rejected by the cipher; start over.
			continue
		}

		text, err := p.promptLine("Enter text: ", "Error: text must not be empty")
		if err != nil {
			return quietOnEOF(err)
		}

		result, err := cipher.Apply(ci, mode, text)
		if err != nil {
			reportCipherErr(p, err)
		} else {
			label := "Encrypted"
			if mode == cipher.Decrypt {
				label = "Decrypted"
			}
			p.printf("\n%s text:\n", label)
			p.printf("------------------------------\n")
			p.printf("%s\n", result)
			p.printf("------------------------------\n")
		}

		again, err := p.promptContinue()
		if err != nil {
			return quietOnEOF(err)
		}
		if !again {
			p.printf("Bye.\n")
			return nil
		}
	}

	return ctx.Err()
}

// promptAlphabet tries the configured path first, then prompts until a file
// loads as a valid alphabet.
func (r *Runner) promptAlphabet(p *prompter, cfg Config, logger log.Logger) (*alphabet.Alphabet, error) {
	if cfg.AlphabetPath != "" {
		a, err := alphabet.Load(cfg.AlphabetPath)
		if err == nil {
			return a, nil
		}
		logger.Warn("configured alphabet not usable", "path", cfg.AlphabetPath, "error", err)
	}

	for {
		path, err := p.promptLine("Enter path to alphabet file: ", "Error: path must not be empty")
		if err != nil {
			return nil, err
		}

		a, err := alphabet.Load(path)
		if err == nil {
			return a, nil
		}
		if errtag.HasTag[errtag.NotFound](err) {
			p.printf("Error: file %q not found. Try again.\n", path)
		} else {
			p.printf("Alphabet error: %v. Try again.\n", err)
		}
	}
}

func reportCipherErr(p *prompter, err error) {
	switch {
	case errtag.HasTag[errtag.Alphabet](err):
		p.printf("Text error: %v\n", err)
	case errtag.HasTag[errtag.CipherUsage](err):
		p.printf("Cipher error: %v\n", err)
	default:
		p.printf("Unexpected error: %v\n", err)
	}
}

func quietOnEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func (p *prompter) printf(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}

// readLine prompts and returns the next input line, trimmed. Returns io.EOF
// when input is exhausted.
func (p *prompter) readLine(prompt string) (string, error) {
	p.printf("%s", prompt)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// promptLine retries until a non-empty line is entered.
func (p *prompter) promptLine(prompt string, emptyMsg string) (string, error) {
	for {
		line, err := p.readLine(prompt)
		if err != nil {
			return "", err
		}
		if line != "" {
			return line, nil
		}
		p.printf("%s\n", emptyMsg)
	}
}

func (p *prompter) promptChoice() (int, error) {
	p.printf("\nChoose a cipher:\n")
	p.printf("1. Caesar cipher\n")
	p.printf("2. Vigenère cipher\n")
	p.printf("3. Atbash cipher\n")
	p.printf("4. Quit\n")

	for {
		line, err := p.readLine("Your choice (1-4): ")
		if err != nil {
			return 0, err
		}
		choice, err := strconv.Atoi(line)
		if err != nil {
			p.printf("Error: enter a number\n")
			continue
		}
		if choice < choiceCaesar || choice > choiceQuit {
			p.printf("Error: enter a number from 1 to 4\n")
			continue
		}
		return choice, nil
	}
}

func (p *prompter) promptMode() (cipher.Mode, error) {
	for {
		line, err := p.readLine("Choose operation (1 - encrypt, 2 - decrypt): ")
		if err != nil {
			return 0, err
		}
		switch line {
		case "1":
			return cipher.Encrypt, nil
		case "2":
			return cipher.Decrypt, nil
		}
		p.printf("Error: enter 1 or 2\n")
	}
}

// promptCipher asks for the key appropriate to the chosen cipher and builds
// it. A nil Cipher with a nil error means the key was rejected and the menu
// should start over.
func (p *prompter) promptCipher(choice int, mode cipher.Mode, a *alphabet.Alphabet) (cipher.Cipher, error) {
	switch choice {
	case choiceCaesar:
		key, err := p.promptIntKey()
		if err != nil {
			return nil, err
		}
		return cipher.NewCaesar(a, key), nil

	case choiceVigenere:
		key, err := p.promptLine(fmt.Sprintf("Enter key to %s: ", mode), "Error: key must not be empty")
		if err != nil {
			return nil, err
		}
		v, err := cipher.NewVigenere(a, key)
		if err != nil {
			reportCipherErr(p, err)
			return nil, nil
		}
		return v, nil

	case choiceAtbash:
		return cipher.NewAtbash(a), nil
	}

	return nil, fmt.Errorf("unknown cipher choice %d", choice)
}

func (p *prompter) promptIntKey() (int, error) {
	for {
		line, err := p.readLine("Enter key (integer): ")
		if err != nil {
			return 0, err
		}
		key, err := strconv.Atoi(line)
		if err != nil {
			p.printf("Error: key must be an integer\n")
			continue
		}
		return key, nil
	}
}

func (p *prompter) promptContinue() (bool, error) {
	line, err := p.readLine("\nContinue? (y/n): ")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
