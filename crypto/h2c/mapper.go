// Package h2c hashes arbitrary byte strings to points of the prime-order
// subgroup G2 of a pairing-friendly curve's quadratic twist.
//
// The map is try-and-increment: the message digest seeds a candidate
// x = x0 + 0*i, and x0 is incremented until x^3 + b' is a square. The
// resulting point is then moved into G2 by a cofactor clearing strategy
// chosen by the curve family (BN, BLS12 or generic). When the curve carries
// an isogeny the search runs on the isogeny's source curve and the point is
// mapped over before cofactor clearing.
//
// This is not the RFC 9380 hash_to_curve construction and its outputs are
// not interchangeable with it. The map is not constant time.
package h2c

import (
	"hash"
	"math/big"

	"github.com/pkg/errors"

	"github.com/eth2030/g2map/crypto/field"
	"github.com/eth2030/g2map/crypto/g2"
	"github.com/eth2030/g2map/log"
	"github.com/eth2030/g2map/metrics"
)

var (
	// ErrUnknownDigest is returned for a Config naming an unsupported digest.
	ErrUnknownDigest = errors.New("h2c: unknown digest")
	// ErrInvalidConfig is returned for an otherwise malformed Config.
	ErrInvalidConfig = errors.New("h2c: invalid config")
	// ErrSearchExhausted is returned when no candidate within
	// Config.MaxSearchIterations yields a curve point.
	ErrSearchExhausted = errors.New("h2c: root search exhausted")
)

var bigOne = big.NewInt(1)

// Mapper hashes messages to G2 of a fixed curve. A Mapper is immutable and
// safe for concurrent use.
type Mapper struct {
	curve   *g2.Curve
	cfg     Config
	newHash func() hash.Hash
	log     *log.Logger
}

// New returns a Mapper for curve.
func New(curve *g2.Curve, cfg Config) (*Mapper, error) {
	if curve == nil {
		return nil, errors.Wrap(ErrInvalidConfig, "nil curve")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	newHash, err := cfg.Digest.hasher()
	if err != nil {
		return nil, err
	}
	level, _ := log.ParseLevel(cfg.LogLevel)
	return &Mapper{
		curve:   curve,
		cfg:     cfg,
		newHash: newHash,
		log:     log.Default().Module("h2c").With("curve", curve.Name()).WithLevel(level),
	}, nil
}

// HashToG2 maps msg onto curve with the default configuration.
func HashToG2(curve *g2.Curve, msg []byte) (*g2.Point, error) {
	m, err := New(curve, DefaultConfig())
	if err != nil {
		return nil, err
	}
	return m.Map(msg)
}

// Curve returns the target curve.
func (m *Mapper) Curve() *g2.Curve { return m.curve }

// Config returns the mapper configuration.
func (m *Mapper) Config() Config { return m.cfg }

// Map hashes msg to a normalised point of G2. Any message is accepted,
// including an empty or nil one. On error the returned point is nil.
func (m *Mapper) Map(msg []byte) (*g2.Point, error) {
	metrics.MapCalls.Inc()
	timer := metrics.NewTimer(metrics.MapTime)
	defer timer.Stop()

	p, iterations, err := m.mapToCurve(msg)
	if err != nil {
		metrics.MapFailures.Inc()
		if errors.Is(err, ErrSearchExhausted) {
			m.log.Warn("root search exhausted", "iterations", iterations)
		}
		return nil, err
	}
	metrics.SearchIterations.Observe(float64(iterations))
	m.log.Debug("root found", "iterations", iterations, "family", m.curve.Family().String())

	return ClearCofactor(m.curve, p), nil
}

// mapToCurve returns a point of the full twist (before cofactor clearing)
// together with the number of candidates tried.
func (m *Mapper) mapToCurve(msg []byte) (*g2.Point, int, error) {
	p, iterations, err := m.search(msg)
	if err != nil {
		return nil, iterations, err
	}
	if m.curve.ConstantTime() {
		p = MapIsogeny(m.curve, p)
	}
	return p, iterations, nil
}

// search derives the seed x0 from the digest of msg and increments it until
// (x0, 0) is the abscissa of a point on the search curve: the twist itself,
// or the isogeny's source curve when one is configured.
func (m *Mapper) search(msg []byte) (*g2.Point, int, error) {
	digest, err := sum(m.newHash, msg)
	if err != nil {
		return nil, 0, err
	}
	f := m.curve.Field()
	n := min(f.ByteLen(), len(digest))
	x0 := f.FromBytes(digest[:n])

	iso := m.curve.Isogeny()
	zero := new(big.Int)
	for i := 1; i <= m.cfg.MaxSearchIterations; i++ {
		x := f.NewElement(x0, zero)
		var rhs *field.Element
		if iso != nil {
			rhs = iso.SourceRHS(f, x)
		} else {
			rhs = m.curve.RHS(x)
		}
		if y, ok := f.Sqrt(rhs); ok {
			return &g2.Point{X: x, Y: y, Z: f.One(), Norm: true}, i, nil
		}
		x0 = f.Reduce(x0.Add(x0, bigOne))
	}
	return nil, m.cfg.MaxSearchIterations, errors.Wrapf(ErrSearchExhausted, "no point after %d candidates", m.cfg.MaxSearchIterations)
}
