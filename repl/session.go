package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/pvoss/grand/config"
	"github.com/pvoss/grand/output"
	"github.com/pvoss/grand/rng"
)

const helpText = `Available Commands:
  help, h, ?          - Show this help message
  show, status        - Display current configuration
  set <param> <value> - Set a configuration parameter
  generate, gen, g    - Generate random numbers with current settings
  save                - Save current configuration to file
  load                - Reload configuration from file
  reset               - Reset configuration to defaults
  exit, quit, q       - Exit interactive mode

Configuration Parameters (use with 'set'):
  count <n>           - Number of samples (e.g., set count 1000)
  seed <n|none>       - Random seed (e.g., set seed 42)
  distribution <name> - Distribution type (uniform, normal, exponential, binomial, poisson)
  format <fmt>        - Output format (text, csv, json, binary)
  output <path>       - Output file path (or 'stdout' for console)
  verbose <on|off>    - Enable/disable verbose logging
  param.<name> <val>  - Set distribution parameter (e.g., set param.mu 0)`

// Session is the interactive read-eval-print loop. It holds exactly one
// configuration and one generator bound to that configuration's seed; any
// command that changes the seed rebuilds the generator before the next
// sample request.
type Session struct {
	cfg    config.Config
	gen    *rng.Generator
	reg    *rng.Registry
	loader config.Loader
	in     io.Reader
	out    io.Writer
	w      output.Writer
}

// NewSession builds a session over cfg, reading commands from in and
// writing prompts, diagnostics, and stdout-bound samples to out.
func NewSession(cfg config.Config, loader config.Loader, in io.Reader, out io.Writer) *Session {
	s := &Session{
		cfg:    cfg,
		reg:    rng.NewRegistry(),
		loader: loader,
		in:     in,
		out:    out,
		w:      output.Writer{Stdout: out},
	}
	s.rebuildGenerator()
	return s
}

// Config returns a copy of the live configuration.
func (s *Session) Config() config.Config { return s.cfg.Clone() }

func (s *Session) rebuildGenerator() {
	s.gen = rng.NewGenerator(s.reg, s.cfg.Generation.Seed)
}

// Run processes commands until an exit command or end of input. Every
// error is reported at the per-command boundary; nothing short of exit or
// EOF ends the loop. An interrupt during the read step returns to the
// prompt instead of terminating.
func (s *Session) Run() error {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	defer func() {
		// Stop guarantees no further sends on sig, so the close ends
		// the goroutine below.
		signal.Stop(sig)
		close(sig)
	}()
	go func() {
		for range sig {
			fmt.Fprintln(s.out, "\nUse 'exit' to quit.")
		}
	}()

	s.printWelcome()
	sc := bufio.NewScanner(s.in)
	for {
		fmt.Fprint(s.out, "\ngrand> ")
		if !sc.Scan() {
			fmt.Fprintln(s.out, "\nGoodbye!")
			return sc.Err()
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		cmd, err := parseCommand(line)
		if err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
			continue
		}
		if cmd.kind == cmdExit {
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		}
		s.apply(cmd)
	}
}

func (s *Session) apply(cmd command) {
	switch cmd.kind {
	case cmdHelp:
		fmt.Fprintln(s.out, helpText)
	case cmdShow:
		s.showConfig()
	case cmdSet:
		s.applySet(cmd)
	case cmdGenerate:
		s.generate()
	case cmdSave:
		s.save()
	case cmdLoad:
		s.load()
	case cmdReset:
		s.reset()
	default:
		panic("repl: unknown command kind")
	}
}

func (s *Session) applySet(cmd command) {
	switch cmd.field {
	case setCount:
		n, err := strconv.Atoi(cmd.value)
		if err != nil {
			fmt.Fprintf(s.out, "Error: invalid value for count: %q\n", cmd.value)
			return
		}
		s.cfg.Generation.Count = n
		fmt.Fprintf(s.out, "Sample count set to %d\n", n)
	case setSeed:
		switch strings.ToLower(cmd.value) {
		case "none", "null", "random":
			s.cfg.Generation.Seed = nil
			s.rebuildGenerator()
			fmt.Fprintln(s.out, "Random seed cleared")
		default:
			n, err := strconv.ParseInt(cmd.value, 10, 64)
			if err != nil {
				fmt.Fprintf(s.out, "Error: invalid value for seed: %q\n", cmd.value)
				return
			}
			s.cfg.Generation.Seed = &n
			s.rebuildGenerator()
			fmt.Fprintf(s.out, "Random seed set to %d\n", n)
		}
	case setDistribution:
		name := strings.ToLower(cmd.value)
		if !s.reg.IsRegistered(name) {
			fmt.Fprintf(s.out, "Error: unknown distribution %q, available: %s\n",
				cmd.value, strings.Join(s.reg.List(), ", "))
			return
		}
		s.cfg.Distribution.Name = name
		s.cfg.Distribution.Parameters = rng.Params{}
		fmt.Fprintf(s.out, "Distribution set to %s (parameters have been reset)\n", name)
	case setFormat:
		f, err := output.ParseFormat(cmd.value)
		if err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
			return
		}
		s.cfg.Output.Format = f.String()
		fmt.Fprintf(s.out, "Output format set to %s\n", f)
	case setOutput:
		switch strings.ToLower(cmd.value) {
		case "stdout", "console", "none":
			s.cfg.Output.FilePath = ""
			fmt.Fprintln(s.out, "Output set to stdout")
		default:
			s.cfg.Output.FilePath = cmd.value
			fmt.Fprintf(s.out, "Output file set to %s\n", cmd.value)
		}
	case setVerbose:
		switch strings.ToLower(cmd.value) {
		case "on", "true", "1", "yes":
			s.cfg.Verbose = true
		case "off", "false", "0", "no":
			s.cfg.Verbose = false
		default:
			fmt.Fprintf(s.out, "Error: invalid value for verbose: %q, use on, off, true, false, yes, no, 1, or 0\n", cmd.value)
			return
		}
		fmt.Fprintf(s.out, "Verbose logging set to %v\n", s.cfg.Verbose)
	case setParam:
		var val interface{} = cmd.value
		if f, err := strconv.ParseFloat(cmd.value, 64); err == nil {
			val = f
		}
		s.cfg.Distribution.Parameters[cmd.param] = val
		fmt.Fprintf(s.out, "Distribution parameter %q set to %v\n", cmd.param, val)
	default:
		panic("repl: unknown set field")
	}
}

func (s *Session) generate() {
	fmt.Fprintf(s.out, "Generating %d samples from %s distribution...\n",
		s.cfg.Generation.Count, s.cfg.Distribution.Name)

	samples, err := s.gen.Generate(
		s.cfg.Distribution.Name, s.cfg.Generation.Count, s.cfg.Distribution.Parameters)
	if err != nil {
		fmt.Fprintf(s.out, "Generation error: %v\n", err)
		return
	}

	f, err := output.ParseFormat(s.cfg.Output.Format)
	if err != nil {
		fmt.Fprintf(s.out, "Output error: %v\n", err)
		return
	}
	payload, err := output.New(f).Format(samples)
	if err != nil {
		fmt.Fprintf(s.out, "Output error: %v\n", err)
		return
	}
	if err := s.w.Write(payload, s.cfg.Output.FilePath); err != nil {
		fmt.Fprintf(s.out, "Output error: %v\n", err)
		return
	}
	if s.cfg.Output.FilePath != "" {
		fmt.Fprintf(s.out, "Output written to %s\n", s.cfg.Output.FilePath)
	}
}

func (s *Session) save() {
	path, err := s.loader.Save(s.cfg)
	if err != nil {
		fmt.Fprintf(s.out, "Error saving configuration: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Configuration saved to %s\n", path)
}

func (s *Session) load() {
	cfg, err := s.loader.Load()
	if err != nil {
		fmt.Fprintf(s.out, "Error loading configuration: %v\n", err)
		return
	}
	s.cfg = cfg
	s.rebuildGenerator()
	fmt.Fprintln(s.out, "Configuration loaded from file")
	s.showConfig()
}

func (s *Session) reset() {
	s.cfg = config.Default()
	s.rebuildGenerator()
	fmt.Fprintln(s.out, "Configuration reset to defaults")
	s.showConfig()
}

func (s *Session) printWelcome() {
	fmt.Fprintln(s.out, strings.Repeat("=", 60))
	fmt.Fprintln(s.out, "grand interactive mode")
	fmt.Fprintln(s.out, strings.Repeat("=", 60))
	fmt.Fprintln(s.out, "Type 'help' for available commands or 'exit' to quit.")
	s.showConfig()
}

func (s *Session) showConfig() {
	seed := "none"
	if s.cfg.Generation.Seed != nil {
		seed = strconv.FormatInt(*s.cfg.Generation.Seed, 10)
	}
	dest := s.cfg.Output.FilePath
	if dest == "" {
		dest = "stdout"
	}
	fmt.Fprintln(s.out, "\nCurrent Configuration:")
	fmt.Fprintf(s.out, "  Distribution:  %s\n", s.cfg.Distribution.Name)
	fmt.Fprintf(s.out, "  Parameters:    %v\n", s.cfg.Distribution.Parameters)
	fmt.Fprintf(s.out, "  Sample Count:  %d\n", s.cfg.Generation.Count)
	fmt.Fprintf(s.out, "  Random Seed:   %s\n", seed)
	fmt.Fprintf(s.out, "  Output Format: %s\n", s.cfg.Output.Format)
	fmt.Fprintf(s.out, "  Output File:   %s\n", dest)
	fmt.Fprintf(s.out, "  Verbose:       %v\n", s.cfg.Verbose)
}
