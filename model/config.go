package model

// Defaults mirror the reference pipeline's tuned constants.
const (
	// DefaultSigma is the prior standard deviation of latent coordinates.
	DefaultSigma = 1.0

	// DefaultEps keeps link outputs strictly inside (eps, 1−eps).
	DefaultEps = 1e-5

	// DefaultObsEps keeps continuous observations strictly inside (0,1).
	DefaultObsEps = 1e-12

	// DefaultAnchorDist is the Bookstein anchor offset.
	DefaultAnchorDist = 0.3

	// MinHyperbolicEps is the smallest link clamp that survives float64
	// rounding in the exp(−d²) link; below it the clamp silently stops
	// clamping.
	MinHyperbolicEps = 1e-5
)

// Config carries the immutable hyperparameters of one model instance.
// Replace-don't-mutate: validated once by New, then read-only.
type Config struct {
	// N is the number of network nodes; M = N(N−1)/2 edges.
	N int

	// D is the latent dimension; the first D nodes become Bookstein anchors.
	D int

	// Mu is the prior mean of latent coordinates, length D. nil means the
	// origin. Hyperbolic kinds interpret Mu as the point whose hyperboloid
	// lift anchors the tangent-space prior (the tangent draws themselves are
	// centered at zero, as the Lorentz wrapped normal prescribes).
	Mu []float64

	// Sigma is the prior standard deviation of latent coordinates.
	Sigma float64

	// Eps clamps link outputs into (Eps, 1−Eps).
	Eps float64

	// ObsEps clamps continuous observations into (ObsEps, 1−ObsEps).
	ObsEps float64

	// AnchorDist is the Bookstein anchor offset from the origin.
	AnchorDist float64
}

// DefaultConfig returns the reference defaults for n nodes in d dimensions.
func DefaultConfig(n, d int) Config {
	return Config{
		N:          n,
		D:          d,
		Sigma:      DefaultSigma,
		Eps:        DefaultEps,
		ObsEps:     DefaultObsEps,
		AnchorDist: DefaultAnchorDist,
	}
}

// validate fails fast on configuration errors, before any sampling begins.
func (c Config) validate(kind Kind) error {
	if c.D < 2 {
		return ErrBadDimension
	}
	if c.N <= c.D {
		return ErrBadNodeCount
	}
	if len(c.Mu) != 0 && len(c.Mu) != c.D {
		return ErrMuDimension
	}
	if c.Sigma <= 0 {
		return ErrBadSigma
	}
	if c.Eps <= 0 || c.Eps >= 0.5 {
		return ErrBadEps
	}
	if kind.Hyperbolic() && c.Eps < MinHyperbolicEps {
		return ErrEpsUnderflow
	}
	if !kind.Binary() && (c.ObsEps <= 0 || c.ObsEps >= 0.5) {
		return ErrBadObsEps
	}
	if c.AnchorDist <= 0 {
		return ErrBadAnchorDist
	}

	return nil
}

// muVec returns the prior mean as a dense length-D vector (zeros when unset).
func (c Config) muVec() []float64 {
	mu := make([]float64, c.D)
	copy(mu, c.Mu)

	return mu
}

// Edges returns M = N(N−1)/2.
func (c Config) Edges() int {
	return c.N * (c.N - 1) / 2
}

// FreeNodes returns the number of non-anchor nodes, N−D.
func (c Config) FreeNodes() int {
	return c.N - c.D
}
