package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/vortex-fintech/go-brmask/binding"
	"github.com/vortex-fintech/go-brmask/config"
	"github.com/vortex-fintech/go-brmask/logger"
	"github.com/vortex-fintech/go-brmask/logutil"
	"github.com/vortex-fintech/go-brmask/mask"
	"github.com/vortex-fintech/go-brmask/metrics"
	"github.com/vortex-fintech/go-brmask/validator"
)

const (
	modeMask     = "mask"
	modeComplete = "complete"
	modeClean    = "clean"
	modeCheck    = "check"
	modeClassify = "classify"
)

var errUsage = errors.New("usage")

type options struct {
	configPath  string
	mode        string
	kind        string
	hint        string
	name        string
	id          string
	placeholder string
	metrics     bool
	values      []string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options

	fs := flag.NewFlagSet("brmask", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", "", "YAML config file (optional)")
	fs.StringVar(&o.mode, "mode", modeMask, "mask | complete | clean | check | classify")
	fs.StringVar(&o.kind, "kind", "auto", "cpf | cnpj | telefone | cep | cpf_cnpj | auto")
	fs.StringVar(&o.hint, "hint", "", "explicit format hint used by -kind auto")
	fs.StringVar(&o.name, "name", "", "field name used by -kind auto")
	fs.StringVar(&o.id, "id", "", "field id used by -kind auto")
	fs.StringVar(&o.placeholder, "placeholder", "", "field placeholder used by -kind auto")
	fs.BoolVar(&o.metrics, "metrics", false, "print counters to stderr on exit")
	if err := fs.Parse(args); err != nil {
		return o, err
	}

	switch o.mode {
	case modeMask, modeComplete, modeClean, modeCheck, modeClassify:
	default:
		return o, fmt.Errorf("%w: unknown mode %q", errUsage, o.mode)
	}
	o.values = fs.Args()
	return o, nil
}

func (o options) attrs() binding.FieldAttrs {
	return binding.FieldAttrs{
		Hint:        o.hint,
		HasHint:     o.hint != "",
		Name:        o.name,
		ID:          o.id,
		Placeholder: o.placeholder,
	}
}

func (o options) resolveKind() (mask.Kind, error) {
	if o.kind == "auto" {
		return mask.Classify(binding.NewTextField(o.attrs(), "")), nil
	}
	k, ok := mask.ParseKind(o.kind)
	if !ok {
		return mask.KindNone, fmt.Errorf("%w: unknown kind %q", errUsage, o.kind)
	}
	return k, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	o, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}

	cfg, err := config.Load(o.configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	log, err := logger.New(cfg.ServiceName, cfg.LogEnv, logger.WithOutputPaths("stderr"))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	defer log.SafeSync()

	kind, err := o.resolveKind()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	if o.mode == modeClassify {
		fmt.Fprintln(stdout, kind.String())
		return 0
	}
	if kind == mask.KindNone {
		fmt.Fprintln(stderr, "field does not map to any mask; pass -kind or more attributes")
		return 2
	}

	reg := prometheus.NewRegistry()
	pm, err := metrics.New(reg, cfg.MetricsNamespace, "cli")
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	p := processor{
		mode: o.mode,
		kind: kind,
		opts: o,
		bindOpts: []binding.Option{
			binding.WithLogger(log),
			binding.WithMetrics(pm),
			binding.WithPasteDelay(cfg.PasteDelay),
		},
	}

	failed := 0
	err = eachValue(o.values, stdin, func(v string) {
		line, ok := p.process(v)
		if !ok {
			failed++
			log.Debugw("value rejected", "mode", o.mode, "value", logutil.MaskDigits(v))
			fmt.Fprintln(stderr, line)
			return
		}
		fmt.Fprintln(stdout, line)
	})
	if err != nil {
		log.Errorw("read input", "err", err)
		return 1
	}

	if o.metrics {
		if err := dumpMetrics(reg, stderr); err != nil {
			log.Warnw("dump metrics", "err", err)
		}
	}

	log.Debugw("done", "mode", o.mode, "kind", kind.String(), "failed", failed)
	if failed > 0 {
		return 1
	}
	return 0
}

type processor struct {
	mode     string
	kind     mask.Kind
	opts     options
	bindOpts []binding.Option
}

// process returns the output line for v and whether it succeeded.
func (p processor) process(v string) (string, bool) {
	switch p.mode {
	case modeComplete:
		out, ok := mask.CompleteKind(p.kind, v)
		if !ok {
			return fmt.Sprintf("%s: incomplete %s value", v, p.kind), false
		}
		return out, true

	case modeClean:
		out, err := mask.CleanKind(p.kind, v)
		if err != nil {
			return err.Error(), false
		}
		return out, true

	case modeCheck:
		if code := validator.Var(v, p.kind.String()); code != "" {
			return v + ": " + code, false
		}
		return v + ": ok", true

	default:
		f := binding.NewTextField(p.opts.attrs(), v)
		binding.New(f, p.kind, p.bindOpts...).HandleBlur()
		return f.Text(), true
	}
}

// eachValue calls fn for every argument, or for every stdin line when there
// are no arguments.
func eachValue(args []string, stdin io.Reader, fn func(string)) error {
	if len(args) > 0 {
		for _, a := range args {
			fn(a)
		}
		return nil
	}

	sc := bufio.NewScanner(stdin)
	for sc.Scan() {
		fn(strings.TrimRight(sc.Text(), "\r"))
	}
	return sc.Err()
}

func dumpMetrics(g prometheus.Gatherer, w io.Writer) error {
	mfs, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
