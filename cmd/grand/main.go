// Command grand draws pseudo-random samples from named probability
// distributions and writes them as text, CSV, JSON, or fixed-width binary.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/pkg/profile"

	"github.com/pvoss/grand/config"
	"github.com/pvoss/grand/errdefs"
	"github.com/pvoss/grand/output"
	"github.com/pvoss/grand/repl"
	"github.com/pvoss/grand/rng"
)

const formatsDoc = `
CONFIG FORMAT
	The config file is a JSON file with the following schema:
		{
			"generation": {
				"count": SAMPLES_INT,       // must be positive
				"seed": SEED_INT            // null for entropy seeding
			},
			"distribution": {
				"name": NAME_STR,           // uniform, normal, exponential, binomial, poisson
				"parameters": PARAMS_OBJ    // distribution-specific, see below
			},
			"output": {
				"format": FORMAT_STR,       // text, csv, json, binary
				"file_path": PATH_STR       // "" for stdout
			},
			"verbose": BOOL
		}

	Search order: -config path, then ~/.grand/config.json, then
	./grand_config.json. GRAND_* environment variables (GRAND_COUNT,
	GRAND_SEED, GRAND_DISTRIBUTION, GRAND_FORMAT, GRAND_OUTPUT,
	GRAND_VERBOSE) override the file; command-line flags override both.

DISTRIBUTION PARAMETERS
	uniform     low (default 0), high (default 1); samples in [low, high)
	normal      mu (default 0), sigma (default 1, must be positive)
	exponential lambda (default 1, must be positive); mean is 1/lambda
	binomial    trials (default 10, positive integer), p (default 0.5, in [0, 1])
	poisson     lambda (default 1, must be positive)

OUTPUT FORMATS
	text    values joined by newlines
	csv     a "value" header line, then one value per line
	json    a JSON array, or {"data": [...], "metadata": {...}} with -metadata
	binary  fixed-width numbers back to back, no header or trailer; the
	        consumer must know the count, numeric type (-bintype), and byte
	        order (-byteorder) out of band
`

type nopStop struct{}

func (nopStop) Stop() {}

type baseFlags struct {
	profPath string
	prof     string
}

func (f *baseFlags) setupProfiling() interface {
	Stop()
} {
	if f.profPath != "" {
		opts := []func(*profile.Profile){profile.ProfilePath(f.profPath)}
		switch f.prof {
		case "cpu":
			opts = append(opts, profile.CPUProfile)
		case "mem":
			opts = append(opts, profile.MemProfile)
		case "mutex":
			opts = append(opts, profile.MutexProfile)
		case "block":
			opts = append(opts, profile.BlockProfile)
		default:
			// ignore
		}
		return profile.Start(opts...)
	}
	return nopStop{}
}

func (f *baseFlags) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&f.profPath, "profiledir", "", "turn profiling on and write profiles to this directory")
	fs.StringVar(&f.prof, "profile", "cpu", "resource to profile (possible values: cpu, mem, mutex, block)")
}

type commonFlags struct {
	count      int
	seed       int64
	out        string
	format     string
	verbose    bool
	configPath string
	metadata   bool
	compact    bool
	binType    string
	byteOrder  string
	baseFlags
}

func (c *commonFlags) SetFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.count, "n", 100, "number of samples to generate")
	fs.Int64Var(&c.seed, "seed", 0, "random seed for reproducibility (omit for entropy seeding)")
	fs.StringVar(&c.out, "o", "", "output file path (default stdout)")
	fs.StringVar(&c.format, "format", "text", "output format (text, csv, json, binary)")
	fs.BoolVar(&c.verbose, "v", false, "verbose logging")
	fs.StringVar(&c.configPath, "config", "", "config file path")
	fs.BoolVar(&c.metadata, "metadata", false, "include summary metadata in json output")
	fs.BoolVar(&c.compact, "compact", false, "compact json output instead of pretty-printed")
	fs.StringVar(&c.binType, "bintype", "float64", "numeric type for binary output (float32, float64, int16, int32, int64)")
	fs.StringVar(&c.byteOrder, "byteorder", "little", "byte order for binary output (little, big, native)")
	c.baseFlags.SetFlags(fs)
}

// overrides builds the configuration overrides from the flags the user
// actually set, so config-file values survive unless explicitly replaced.
func (c *commonFlags) overrides(fs *flag.FlagSet, dist string, params rng.Params) config.Overrides {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	o := config.Overrides{Parameters: rng.Params{}}
	if dist != "" {
		o.Distribution = &dist
	}
	if set["n"] {
		o.Count = &c.count
	}
	if set["seed"] {
		o.Seed = &c.seed
	}
	if set["o"] {
		o.FilePath = &c.out
	}
	if set["format"] {
		o.Format = &c.format
	}
	if set["v"] {
		o.Verbose = &c.verbose
	}
	for name, v := range params {
		if set[name] {
			o.Parameters[name] = v
		}
	}
	return o
}

// resolveConfig layers file, environment, and flag overrides in order.
func (c *commonFlags) resolveConfig(o config.Overrides) (config.Config, error) {
	loader := config.Loader{Path: c.configPath}
	cfg, err := loader.Load()
	if err != nil {
		return config.Config{}, err
	}
	envO, err := config.FromEnv()
	if err != nil {
		return config.Config{}, err
	}
	cfg = config.Merge(cfg, envO)
	return config.Merge(cfg, o), nil
}

func (c *commonFlags) logger() *log.Logger {
	w := io.Discard
	if c.verbose {
		w = os.Stderr
	}
	return log.New(w, "grand: ", log.LstdFlags)
}

func (c *commonFlags) formatter(cfg config.Config) (output.Formatter, error) {
	f, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	switch f {
	case output.JSON:
		return output.JSONFormatter{Pretty: !c.compact, Metadata: c.metadata}, nil
	case output.Binary:
		typ, err := output.ParseNumType(c.binType)
		if err != nil {
			return nil, err
		}
		order, err := output.ParseByteOrder(c.byteOrder)
		if err != nil {
			return nil, err
		}
		return output.BinaryFormatter{Type: typ, Order: order}, nil
	}
	return output.New(f), nil
}

// paramFlag is one distribution parameter exposed as a float flag; val
// doubles as the default.
type paramFlag struct {
	name  string
	usage string
	val   float64
}

type genCmd struct {
	name     string
	synopsis string
	params   []paramFlag
	commonFlags
}

func (c *genCmd) Name() string     { return c.name }
func (c *genCmd) Synopsis() string { return c.synopsis }
func (c *genCmd) Usage() string {
	return "grand " + c.name + " [flags]:\n  " + c.synopsis + "\n\n"
}

func (c *genCmd) SetFlags(fs *flag.FlagSet) {
	for i := range c.params {
		p := &c.params[i]
		fs.Float64Var(&p.val, p.name, p.val, p.usage)
	}
	c.commonFlags.SetFlags(fs)
}

func (c *genCmd) Execute(_ context.Context, fs *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	defer c.setupProfiling().Stop()
	return exitStatus(c.run(fs))
}

func (c *genCmd) run(fs *flag.FlagSet) error {
	params := rng.Params{}
	for _, p := range c.params {
		params[p.name] = p.val
	}
	cfg, err := c.resolveConfig(c.overrides(fs, c.name, params))
	if err != nil {
		return err
	}
	logger := c.logger()

	gen := rng.NewGenerator(rng.NewRegistry(), cfg.Generation.Seed)
	logger.Printf("generating %d samples from %s with parameters %v",
		cfg.Generation.Count, cfg.Distribution.Name, cfg.Distribution.Parameters)
	samples, err := gen.Generate(cfg.Distribution.Name, cfg.Generation.Count, cfg.Distribution.Parameters)
	if err != nil {
		return err
	}

	fmtr, err := c.formatter(cfg)
	if err != nil {
		return err
	}
	payload, err := fmtr.Format(samples)
	if err != nil {
		return err
	}
	if err := (output.Writer{}).Write(payload, cfg.Output.FilePath); err != nil {
		return err
	}
	if cfg.Output.FilePath != "" {
		logger.Printf("wrote %d samples to %s", samples.Len(), cfg.Output.FilePath)
	}
	return nil
}

func genCommands() []*genCmd {
	return []*genCmd{
		{
			name:     "uniform",
			synopsis: "sample uniformly distributed values in [low, high)",
			params: []paramFlag{
				{name: "low", usage: "lower bound (inclusive)", val: 0.0},
				{name: "high", usage: "upper bound (exclusive)", val: 1.0},
			},
		},
		{
			name:     "normal",
			synopsis: "sample normally distributed values",
			params: []paramFlag{
				{name: "mu", usage: "mean", val: 0.0},
				{name: "sigma", usage: "standard deviation", val: 1.0},
			},
		},
		{
			name:     "exponential",
			synopsis: "sample exponentially distributed values with mean 1/lambda",
			params: []paramFlag{
				{name: "lambda", usage: "rate parameter", val: 1.0},
			},
		},
		{
			name:     "binomial",
			synopsis: "sample success counts from repeated Bernoulli trials",
			params: []paramFlag{
				{name: "trials", usage: "number of trials per sample", val: 10},
				{name: "p", usage: "success probability per trial", val: 0.5},
			},
		},
		{
			name:     "poisson",
			synopsis: "sample Poisson-distributed event counts",
			params: []paramFlag{
				{name: "lambda", usage: "mean event rate", val: 1.0},
			},
		},
	}
}

type interactiveCmd struct {
	commonFlags
}

func (*interactiveCmd) Name() string     { return "interactive" }
func (*interactiveCmd) Synopsis() string { return "start an interactive sampling session" }
func (*interactiveCmd) Usage() string {
	return `grand interactive [flags]:
  Start a read-eval-print loop over the resolved configuration.

`
}

func (c *interactiveCmd) SetFlags(fs *flag.FlagSet) { c.commonFlags.SetFlags(fs) }

func (c *interactiveCmd) Execute(_ context.Context, fs *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	defer c.setupProfiling().Stop()
	cfg, err := c.resolveConfig(c.overrides(fs, "", nil))
	if err != nil {
		return exitStatus(err)
	}
	s := repl.NewSession(cfg, config.Loader{Path: c.configPath}, os.Stdin, os.Stdout)
	return exitStatus(s.Run())
}

type mkconfigCmd struct {
	configPath string
	baseFlags
}

func (*mkconfigCmd) Name() string     { return "mkconfig" }
func (*mkconfigCmd) Synopsis() string { return "create a default config file if none exists" }
func (*mkconfigCmd) Usage() string    { return "grand mkconfig [-config path]\n\n" }

func (c *mkconfigCmd) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.configPath, "config", "", "config file path")
	c.baseFlags.SetFlags(fs)
}

func (c *mkconfigCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	defer c.setupProfiling().Stop()
	path, err := (config.Loader{Path: c.configPath}).CreateDefault()
	if err != nil {
		return exitStatus(err)
	}
	fmt.Println("config file at:", path)
	return subcommands.ExitSuccess
}

type listCmd struct{}

func (listCmd) Name() string           { return "list" }
func (listCmd) Synopsis() string       { return "list the available distributions" }
func (listCmd) Usage() string          { return "grand list\n\n" }
func (listCmd) SetFlags(*flag.FlagSet) {}

func (listCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	for _, name := range rng.NewRegistry().List() {
		fmt.Println(name)
	}
	return subcommands.ExitSuccess
}

type formatsCmd struct{}

func (formatsCmd) Name() string           { return "formats" }
func (formatsCmd) Synopsis() string       { return "describes the config file and output formats" }
func (formatsCmd) Usage() string          { return "" }
func (formatsCmd) SetFlags(*flag.FlagSet) {}

func (formatsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fmt.Fprint(os.Stderr, formatsDoc)
	return subcommands.ExitSuccess
}

// exitStatus maps errors to the process contract: 0 on success, 1 on a
// recognized domain error, 2 on anything unexpected.
func exitStatus(err error) subcommands.ExitStatus {
	if err == nil {
		return subcommands.ExitSuccess
	}
	fmt.Fprintln(os.Stderr, "grand:", err)
	if errdefs.IsDomain(err) {
		return subcommands.ExitFailure
	}
	return subcommands.ExitStatus(2)
}

func main() {
	log.SetPrefix("grand: ")
	log.SetFlags(0)

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	for _, c := range genCommands() {
		subcommands.Register(c, "sampling")
	}
	subcommands.Register(&interactiveCmd{}, "session")
	subcommands.Register(&mkconfigCmd{}, "config")
	subcommands.Register(listCmd{}, "")
	subcommands.Register(formatsCmd{}, "")

	flag.Parse()
	os.Exit(int(subcommands.Execute(context.Background())))
}
