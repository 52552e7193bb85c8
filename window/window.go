package window

import (
	"fmt"
	"sort"
	"strings"

	gwin "gonum.org/v1/gonum/dsp/window"
)

// Spec names a window together with an optional shape parameter
// (sigma for gaussian, alpha for tukey, cutoff for lanczos).
// A zero Param selects the window's default.
type Spec struct {
	Name  string
	Param float64
}

// String returns the window name, with the parameter when set.
func (s Spec) String() string {
	if s.Param != 0 {
		return fmt.Sprintf("%s(%g)", s.Name, s.Param)
	}
	return s.Name
}

// Option configures window generation.
type Option func(*config)

type config struct {
	cutoff float64
	param  float64
}

func defaultConfig() config {
	return config{cutoff: defaultLanczosCutoff}
}

// WithCutoff sets the cutoff frequency of the Lanczos low-pass window,
// in cycles per sample. Ignored by other windows.
func WithCutoff(fc float64) Option {
	return func(c *config) {
		if fc > 0 {
			c.cutoff = fc
		}
	}
}

// WithParam sets the shape parameter of parametric windows
// (gaussian sigma, tukey alpha).
func WithParam(v float64) Option {
	return func(c *config) {
		if v > 0 {
			c.param = v
		}
	}
}

// standardWindows maps names to the fixed windows of the gonum catalog.
// The gonum transforms multiply a sequence in place, so coefficients are
// obtained by transforming a sequence of ones.
var standardWindows = map[string]func(seq []float64) []float64{
	"boxcar":          gwin.Rectangular,
	"rectangular":     gwin.Rectangular,
	"hann":            gwin.Hann,
	"hanning":         gwin.Hann,
	"hamming":         gwin.Hamming,
	"blackman":        gwin.Blackman,
	"blackmanharris":  gwin.BlackmanHarris,
	"nuttall":         gwin.Nuttall,
	"blackmannuttall": gwin.BlackmanNuttall,
	"flattop":         gwin.FlatTop,
	"sine":            gwin.Sine,
	"triangle":        gwin.Triangular,
	"bartlett":        gwin.Triangular,
}

// Default shape parameters for the parametric gonum windows.
const (
	defaultGaussianSigma = 0.5
	defaultTukeyAlpha    = 0.5
)

// Names returns the sorted set of window names the catalog resolves,
// local entries included.
func Names() []string {
	names := make([]string, 0, len(standardWindows)+4)
	for name := range standardWindows {
		names = append(names, name)
	}
	names = append(names, "lanczos", "lcz", "gaussian", "tukey")
	sort.Strings(names)
	return names
}

// Generate returns the coefficients of the named window. n must be a
// positive odd integer so the window has a center tap. The local registry
// (the Lanczos low-pass family) is consulted first; every other name is
// delegated to the gonum standard catalog.
func Generate(name string, n int, opts ...Option) ([]float64, error) {
	if err := validateLength(n); err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	switch key := strings.ToLower(name); key {
	case "lanczos", "lcz":
		return lanczosLowPass(n, cfg.cutoff)
	case "gaussian":
		sigma := cfg.param
		if sigma == 0 {
			sigma = defaultGaussianSigma
		}
		return gwin.Gaussian{Sigma: sigma}.Transform(ones(n)), nil
	case "tukey":
		alpha := cfg.param
		if alpha == 0 {
			alpha = defaultTukeyAlpha
		}
		return gwin.Tukey{Alpha: alpha}.Transform(ones(n)), nil
	default:
		fn, ok := standardWindows[key]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownWindow, name)
		}
		return fn(ones(n)), nil
	}
}

// GenerateSpec resolves a [Spec] through the catalog.
func GenerateSpec(s Spec, n int) ([]float64, error) {
	switch strings.ToLower(s.Name) {
	case "lanczos", "lcz":
		return Generate(s.Name, n, WithCutoff(s.Param))
	default:
		return Generate(s.Name, n, WithParam(s.Param))
	}
}

func ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}
