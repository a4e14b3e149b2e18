package console

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/cohesivestack/valgo"
	"github.com/urfave/cli/v2"

	"github.com/AbaydullinAA/Project-Module2/alphabet"
	"github.com/AbaydullinAA/Project-Module2/cipher"
	"github.com/AbaydullinAA/Project-Module2/cipherapi"
	"github.com/AbaydullinAA/Project-Module2/config"
	"github.com/AbaydullinAA/Project-Module2/log"
	"github.com/AbaydullinAA/Project-Module2/server"
	"github.com/AbaydullinAA/Project-Module2/valgoutil"
)

type RunnerConfig struct {
	Logger log.Logger // optional; derived from config when nil
	In     io.Reader  // optional; defaults to stdin
	Out    io.Writer  // optional; defaults to stdout
}

// Runner wires the cipher engine into the cipherctl command line app.
type Runner struct {
	logger log.Logger
	in     io.Reader
	out    io.Writer
}

func NewRunner(cfg RunnerConfig) *Runner {
	if cfg.In == nil {
		cfg.In = os.Stdin
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	return &Runner{
		logger: cfg.Logger,
		in:     cfg.In,
		out:    cfg.Out,
	}
}

func (r *Runner) Run(args []string) error {
	app := cli.NewApp()
	app.Name = "cipherctl"
	app.Usage = "Classical substitution ciphers (Caesar, Vigenère, Atbash) over a custom alphabet"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "path to a YAML config file",
			EnvVars: []string{"CIPHERCTL_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "alphabet",
			Aliases: []string{"a"},
			Usage:   "path to the alphabet file (one line of distinct characters)",
			EnvVars: []string{"CIPHERCTL_ALPHABET"},
		},
		&cli.StringFlag{
			Name:    "log-level",
			Value:   "info",
			Usage:   "log level: debug, info, warn, or error",
			EnvVars: []string{"CIPHERCTL_LOG_LEVEL"},
		},
	}

	decryptFlag := &cli.BoolFlag{
		Name:    "decrypt",
		Aliases: []string{"d"},
		Usage:   "decrypt instead of encrypt",
	}

	app.Commands = []*cli.Command{
		{
			Name:   "menu",
			Usage:  "starts the interactive cipher menu",
			Action: r.execCmd(r.menu),
		},
		{
			Name:      "caesar",
			Usage:     "applies the Caesar cipher to the text arguments",
			ArgsUsage: "text...",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "key",
					Aliases: []string{"k"},
					Usage:   "[required] integer shift key",
				},
				decryptFlag,
			},
			Action: r.execCmd(r.caesar),
		},
		{
			Name:      "vigenere",
			Usage:     "applies the Vigenère cipher to the text arguments",
			ArgsUsage: "text...",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "key",
					Aliases: []string{"k"},
					Usage:   "[required] key word drawn from the alphabet",
				},
				decryptFlag,
			},
			Action: r.execCmd(r.vigenere),
		},
		{
			Name:      "atbash",
			Usage:     "applies the Atbash cipher to the text arguments",
			ArgsUsage: "text...",
			Flags:     []cli.Flag{decryptFlag},
			Action:    r.execCmd(r.atbash),
		},
		{
			Name:  "serve",
			Usage: "serves the cipher HTTP API",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "port",
					Aliases: []string{"p"},
					Usage:   "port to listen on (overrides config)",
				},
			},
			Action: r.execCmd(r.serve),
		},
	}

	// Bare invocation drops into the interactive menu.
	app.Action = r.execCmd(r.menu)

	return app.Run(args)
}

func (r *Runner) execCmd(cmd func(ctx context.Context, cfg Config, logger log.Logger, c *cli.Context) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		cfg := r.loadConfig(c)

		logger := r.logger
		if logger == nil {
			level, _ := log.ParseLevel(cfg.LogLevel)
			logger = log.NewLogger(log.WithDevelopment(), log.WithLevel(level))
		}

		return cmd(ctx, cfg, logger, c)
	}
}

func (r *Runner) loadConfig(c *cli.Context) Config {
	var cfg Config
	config.MustLoad(c.String("config"), &cfg)

	// Flags override both file and environment values.
	if c.IsSet("alphabet") {
		cfg.AlphabetPath = c.String("alphabet")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}

	exitOnInvalidFlags(c, cfg.Validation())
	return cfg
}

func (r *Runner) caesar(_ context.Context, cfg Config, logger log.Logger, c *cli.Context) error {
	exitOnInvalidFlags(c, valgo.Is(valgo.Bool(c.IsSet("key"), "key").True("{{title}} flag is required")))

	a, err := r.loadAlphabet(cfg, logger, c)
	if err != nil {
		return err
	}

	return r.transform(cipher.NewCaesar(a, c.Int("key")), c)
}

func (r *Runner) vigenere(_ context.Context, cfg Config, logger log.Logger, c *cli.Context) error {
	exitOnInvalidFlags(c, valgo.Is(valgo.String(c.String("key"), "key").Not().Blank()))

	a, err := r.loadAlphabet(cfg, logger, c)
	if err != nil {
		return err
	}

	v, err := cipher.NewVigenere(a, c.String("key"))
	if err != nil {
		return err
	}

	return r.transform(v, c)
}

func (r *Runner) atbash(_ context.Context, cfg Config, logger log.Logger, c *cli.Context) error {
	a, err := r.loadAlphabet(cfg, logger, c)
	if err != nil {
		return err
	}

	return r.transform(cipher.NewAtbash(a), c)
}

func (r *Runner) serve(ctx context.Context, cfg Config, logger log.Logger, c *cli.Context) error {
	a, err := r.loadAlphabet(cfg, logger, c)
	if err != nil {
		return err
	}

	port := cfg.Server.Port
	if c.IsSet("port") {
		port = c.Int("port")
	}

	srv, err := server.NewServer(port,
		server.WithLogger(logger),
		server.WithCORS(cfg.Server.CORSOrigins...),
	)
	if err != nil {
		return err
	}
	srv.Register("/v1", cipherapi.NewHandler(a))

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()
	logger.Info("serving cipher api", "port", port, "alphabet_length", a.Len())

	select {
	case err = <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		return srv.Stop(context.Background())
	}
}

func (r *Runner) loadAlphabet(cfg Config, logger log.Logger, c *cli.Context) (*alphabet.Alphabet, error) {
	exitOnInvalidFlags(c, valgo.Is(valgoutil.ReadableFileValidator(cfg.AlphabetPath, "alphabet")))

	a, err := alphabet.Load(cfg.AlphabetPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("alphabet loaded", "path", cfg.AlphabetPath, "length", a.Len())
	return a, nil
}

func (r *Runner) transform(ci cipher.Cipher, c *cli.Context) error {
	mode := cipher.Encrypt
	if c.Bool("decrypt") {
		mode = cipher.Decrypt
	}

	text := strings.Join(c.Args().Slice(), " ")
	result, err := cipher.Apply(ci, mode, text)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(r.out, result)
	return err
}

func exitOnInvalidFlags(c *cli.Context, v *valgo.Validation) {
	if v.ToError() == nil {
		return
	}
	fmt.Fprintln(os.Stderr, "Flag errors:")

	for _, verr := range v.ToError().(*valgo.Error).Errors() {
		fmt.Fprintf(os.Stderr, "  %s: %s\n", verr.Name(), strings.Join(verr.Messages(), ","))
	}

	fmt.Fprintln(os.Stdout) //nolint:errcheck
	cli.ShowAppHelpAndExit(c, 1)
}
